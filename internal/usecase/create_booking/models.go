package create_booking

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на создание бронирования
type Request struct {
	ServiceID     uuid.UUID `json:"serviceId"`
	StartAt       time.Time `json:"startAt"` // Должно точно совпадать с началом слота
	CustomerName  string    `json:"customerName" validate:"min=2,max=100"`
	CustomerEmail string    `json:"customerEmail" validate:"required,email"`
	CustomerPhone *string   `json:"customerPhone" validate:"omitempty,max=30"`
	CustomerNote  *string   `json:"customerNote" validate:"omitempty,max=500"`
}
