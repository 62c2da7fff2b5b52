package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	serviceRepo "github.com/m04kA/BookEasy-Service/internal/infra/storage/service"
	"github.com/m04kA/BookEasy-Service/internal/service/catalog/models"
	"github.com/m04kA/BookEasy-Service/pkg/logger"
	"github.com/m04kA/BookEasy-Service/pkg/ptr"
	"github.com/m04kA/BookEasy-Service/pkg/validation"
)

type fakeServices struct {
	services map[uuid.UUID]*domain.Service
	booked   map[uuid.UUID]bool
	listErr  error
}

func newFakeServices(services ...*domain.Service) *fakeServices {
	f := &fakeServices{
		services: make(map[uuid.UUID]*domain.Service),
		booked:   make(map[uuid.UUID]bool),
	}
	for _, s := range services {
		f.services[s.ID] = s
	}
	return f
}

func (f *fakeServices) Create(_ context.Context, s *domain.Service) (*domain.Service, error) {
	s.ID = uuid.New()
	f.services[s.ID] = s
	return s, nil
}

func (f *fakeServices) GetByID(_ context.Context, id uuid.UUID) (*domain.Service, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	c := *s
	return &c, nil
}

func (f *fakeServices) List(_ context.Context, includeInactive bool) ([]*domain.Service, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := make([]*domain.Service, 0)
	for _, s := range f.services {
		if includeInactive || s.IsActive {
			result = append(result, s)
		}
	}
	return result, nil
}

func (f *fakeServices) Update(_ context.Context, s *domain.Service) (*domain.Service, error) {
	if _, ok := f.services[s.ID]; !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	f.services[s.ID] = s
	return s, nil
}

func (f *fakeServices) HasBookings(_ context.Context, id uuid.UUID) (bool, error) {
	return f.booked[id], nil
}

func (f *fakeServices) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.services[id]; !ok {
		return serviceRepo.ErrServiceNotFound
	}
	delete(f.services, id)
	return nil
}

type passTx struct{}

func (passTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newCut(id uuid.UUID, active bool) *domain.Service {
	return &domain.Service{ID: id, Name: "Coupe", DurationMin: 30, PriceCents: 2500, IsActive: active}
}

func TestCreate_DefaultsToActive(t *testing.T) {
	svc := NewService(newFakeServices(), passTx{}, logger.Nop())

	got, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Name:        "  Coloration ",
		DurationMin: 90,
		PriceCents:  6500,
		Description: ptr.Ptr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, "Coloration", got.Name)
	assert.True(t, got.IsActive)
	assert.Nil(t, got.Description)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newFakeServices(), passTx{}, logger.Nop())

	_, err := svc.Create(context.Background(), &models.CreateServiceRequest{
		Name:        "X",
		DurationMin: 600,
		PriceCents:  -1,
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.Len(t, errs, 3)
}

func TestList_PublicHidesInactive(t *testing.T) {
	svc := NewService(newFakeServices(newCut(uuid.New(), true), newCut(uuid.New(), false)), passTx{}, logger.Nop())

	public, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, public, 1)

	all, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdate_Partial(t *testing.T) {
	id := uuid.New()
	svc := NewService(newFakeServices(newCut(id, true)), passTx{}, logger.Nop())

	got, err := svc.Update(context.Background(), id, &models.UpdateServiceRequest{PriceCents: ptr.Ptr(3000)})
	require.NoError(t, err)

	assert.Equal(t, 3000, got.PriceCents)
	assert.Equal(t, "Coupe", got.Name)
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(newFakeServices(), passTx{}, logger.Nop())

	_, err := svc.Update(context.Background(), uuid.New(), &models.UpdateServiceRequest{})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDelete_HardWithoutBookings(t *testing.T) {
	id := uuid.New()
	repo := newFakeServices(newCut(id, true))
	svc := NewService(repo, passTx{}, logger.Nop())

	got, err := svc.Delete(context.Background(), id)
	require.NoError(t, err)

	assert.False(t, got.SoftDeleted)
	assert.NotContains(t, repo.services, id)
}

func TestDelete_SoftWithBookings(t *testing.T) {
	id := uuid.New()
	repo := newFakeServices(newCut(id, true))
	repo.booked[id] = true
	svc := NewService(repo, passTx{}, logger.Nop())

	got, err := svc.Delete(context.Background(), id)
	require.NoError(t, err)

	assert.True(t, got.SoftDeleted)
	require.Contains(t, repo.services, id)
	assert.False(t, repo.services[id].IsActive)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(newFakeServices(), passTx{}, logger.Nop())

	_, err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_RepositoryError(t *testing.T) {
	repo := newFakeServices()
	repo.listErr = errors.New("db down")
	svc := NewService(repo, passTx{}, logger.Nop())

	_, err := svc.List(context.Background(), true)
	assert.ErrorIs(t, err, ErrInternal)
}
