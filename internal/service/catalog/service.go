package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	serviceRepo "github.com/m04kA/BookEasy-Service/internal/infra/storage/service"
	"github.com/m04kA/BookEasy-Service/internal/service/catalog/models"
	"github.com/m04kA/BookEasy-Service/pkg/validation"
)

// Service сервис каталога услуг
type Service struct {
	serviceRepo ServiceRepository
	txManager   TransactionManager
	validator   *validation.Validator
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		txManager:   txManager,
		validator:   validation.New(),
		logger:      logger,
	}
}

// List возвращает услуги по имени. Публичный список содержит только активные.
func (s *Service) List(ctx context.Context, includeInactive bool) ([]*models.ServiceResponse, error) {
	services, err := s.serviceRepo.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.ServiceResponse, 0, len(services))
	for _, service := range services {
		result = append(result, models.FromDomainService(service))
	}
	return result, nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceResponse, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// Create создает услугу
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	req.Normalize()
	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	created, err := s.serviceRepo.Create(ctx, req.ToDomainService())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: created service id=%s name=%q", created.ID, created.Name)
	return models.FromDomainService(created), nil
}

// Update частично обновляет услугу.
// Снимки названия и цены в уже созданных бронированиях не меняются.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	req.Normalize()
	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - get service: %v", ErrInternal, err)
	}

	req.ApplyTo(service)

	updated, err := s.serviceRepo.Update(ctx, service)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: updated service id=%s", id)
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу. Если на нее есть бронирования, услуга только деактивируется.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*models.DeleteServiceResponse, error) {
	var softDeleted bool

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		service, err := s.serviceRepo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		hasBookings, err := s.serviceRepo.HasBookings(ctx, id)
		if err != nil {
			return err
		}

		if !hasBookings {
			return s.serviceRepo.Delete(ctx, id)
		}

		softDeleted = true
		service.IsActive = false
		_, err = s.serviceRepo.Update(ctx, service)
		return err
	})
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Delete: failed to delete service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if softDeleted {
		s.logger.Info("Delete: service id=%s has bookings, deactivated", id)
	} else {
		s.logger.Info("Delete: deleted service id=%s", id)
	}
	return &models.DeleteServiceResponse{SoftDeleted: softDeleted}, nil
}
