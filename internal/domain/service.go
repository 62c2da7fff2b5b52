package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service услуга каталога
type Service struct {
	ID          uuid.UUID
	Name        string
	DurationMin int
	PriceCents  int
	Description *string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsBookable услугу можно бронировать
func (s *Service) IsBookable() bool {
	return s != nil && s.IsActive
}
