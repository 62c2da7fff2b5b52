package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	adminRepo "github.com/m04kA/BookEasy-Service/internal/infra/storage/admin"
	"github.com/m04kA/BookEasy-Service/internal/service/auth/models"
	"github.com/m04kA/BookEasy-Service/pkg/logger"
)

type fakeAdmins struct {
	admins map[string]*domain.AdminUser
	err    error
}

func (f *fakeAdmins) GetByEmail(_ context.Context, email string) (*domain.AdminUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.admins[email]
	if !ok {
		return nil, adminRepo.ErrAdminNotFound
	}
	return a, nil
}

func (f *fakeAdmins) GetByID(_ context.Context, id uuid.UUID) (*domain.AdminUser, error) {
	for _, a := range f.admins {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, adminRepo.ErrAdminNotFound
}

type clock struct{ now time.Time }

func (c *clock) Now() time.Time { return c.now }

func newTestService(t *testing.T) (*Service, *domain.AdminUser, *clock) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	admin := &domain.AdminUser{ID: uuid.New(), Email: "admin@bookeasy.com", PasswordHash: string(hash)}
	c := &clock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	repo := &fakeAdmins{admins: map[string]*domain.AdminUser{admin.Email: admin}}

	return NewService(repo, "test-secret", 0, c, logger.Nop()), admin, c
}

func TestLogin_IssuesParsableToken(t *testing.T) {
	svc, admin, c := newTestService(t)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: " Admin@BookEasy.com ", Password: "admin123"})
	require.NoError(t, err)

	assert.Equal(t, admin.ID, resp.Admin.ID)
	assert.Equal(t, c.now.Add(7*24*time.Hour), resp.ExpiresAt)

	claims, err := svc.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID.String(), claims.AdminID)
	assert.Equal(t, admin.Email, claims.Email)
}

func TestLogin_WrongCredentials(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "admin@bookeasy.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "nobody@bookeasy.com", Password: "admin123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_Validation(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "admin", Password: "123"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin_RepositoryError(t *testing.T) {
	svc := NewService(&fakeAdmins{err: errors.New("db down")}, "s", 0, &clock{now: time.Now()}, logger.Nop())

	_, err := svc.Login(context.Background(), &models.LoginRequest{Email: "admin@bookeasy.com", Password: "admin123"})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestParseToken_Expired(t *testing.T) {
	svc, _, c := newTestService(t)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "admin@bookeasy.com", Password: "admin123"})
	require.NoError(t, err)

	c.now = c.now.Add(8 * 24 * time.Hour)
	_, err = svc.ParseToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_RejectsForeignSignature(t *testing.T) {
	svc, admin, c := newTestService(t)

	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		AdminID: admin.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(c.now.Add(time.Hour)),
		},
	}).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = svc.ParseToken(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestMe(t *testing.T) {
	svc, admin, _ := newTestService(t)

	got, err := svc.Me(context.Background(), admin.ID)
	require.NoError(t, err)
	assert.Equal(t, admin.Email, got.Email)

	_, err = svc.Me(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrAdminNotFound)
}
