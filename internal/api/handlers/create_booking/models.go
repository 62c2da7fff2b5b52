package create_booking

import (
	"strings"
	"time"

	"github.com/google/uuid"

	createBooking "github.com/m04kA/BookEasy-Service/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP модель запроса на создание бронирования
type CreateBookingRequest struct {
	ServiceID     string  `json:"serviceId"`
	StartAt       string  `json:"startAt"` // RFC3339
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerPhone *string `json:"customerPhone"`
	CustomerNote  *string `json:"customerNote"`
}

// ToUseCaseRequest разбирает идентификатор услуги и время начала.
// Неразобранное поле остается нулевым, ошибку по нему вернет валидация usecase
// вместе с остальными нарушениями.
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	req := &createBooking.Request{
		CustomerName:  r.CustomerName,
		CustomerEmail: r.CustomerEmail,
		CustomerPhone: r.CustomerPhone,
		CustomerNote:  r.CustomerNote,
	}

	if serviceID, err := uuid.Parse(strings.TrimSpace(r.ServiceID)); err == nil {
		req.ServiceID = serviceID
	}
	if startAt, err := time.Parse(time.RFC3339, strings.TrimSpace(r.StartAt)); err == nil {
		req.StartAt = startAt
	}

	return req
}
