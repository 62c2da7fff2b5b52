package models

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name        string  `json:"name" validate:"min=2,max=100"`
	DurationMin int     `json:"durationMin" validate:"gte=5,lte=480"`
	PriceCents  int     `json:"priceCents" validate:"gte=0"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"isActive"` // по умолчанию true
}

// UpdateServiceRequest запрос на обновление услуги
// Все поля опциональны - обновляются только переданные значения
type UpdateServiceRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2,max=100"`
	DurationMin *int    `json:"durationMin" validate:"omitempty,gte=5,lte=480"`
	PriceCents  *int    `json:"priceCents" validate:"omitempty,gte=0"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	IsActive    *bool   `json:"isActive"`
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DurationMin int       `json:"durationMin"`
	PriceCents  int       `json:"priceCents"`
	Description *string   `json:"description"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DeleteServiceResponse результат удаления
type DeleteServiceResponse struct {
	SoftDeleted bool `json:"softDeleted"` // услуга только деактивирована, т.к. на нее есть бронирования
}

// Методы конвертации

// Normalize обрезает пробелы в текстовых полях
func (r *CreateServiceRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = normalizeText(r.Description)
}

// Normalize обрезает пробелы в текстовых полях
func (r *UpdateServiceRequest) Normalize() {
	if r.Name != nil {
		name := strings.TrimSpace(*r.Name)
		r.Name = &name
	}
	r.Description = normalizeText(r.Description)
}

// ToDomainService конвертирует запрос в доменную услугу
func (r *CreateServiceRequest) ToDomainService() *domain.Service {
	service := &domain.Service{
		Name:        r.Name,
		DurationMin: r.DurationMin,
		PriceCents:  r.PriceCents,
		Description: emptyToNil(r.Description),
		IsActive:    true,
	}
	if r.IsActive != nil {
		service.IsActive = *r.IsActive
	}
	return service
}

// ApplyTo переносит переданные поля на услугу.
// Пустое описание очищает его.
func (r *UpdateServiceRequest) ApplyTo(service *domain.Service) {
	if r.Name != nil {
		service.Name = *r.Name
	}
	if r.DurationMin != nil {
		service.DurationMin = *r.DurationMin
	}
	if r.PriceCents != nil {
		service.PriceCents = *r.PriceCents
	}
	if r.Description != nil {
		service.Description = emptyToNil(r.Description)
	}
	if r.IsActive != nil {
		service.IsActive = *r.IsActive
	}
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:          s.ID,
		Name:        s.Name,
		DurationMin: s.DurationMin,
		PriceCents:  s.PriceCents,
		Description: s.Description,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func normalizeText(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
