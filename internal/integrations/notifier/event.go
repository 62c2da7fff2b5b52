package notifier

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

// EventBookingCancelled тип события отмены
const EventBookingCancelled = "booking.cancelled"

// BookingCancelledEvent событие отмены бронирования
type BookingCancelledEvent struct {
	EventID       uuid.UUID `json:"eventId"`
	Type          string    `json:"type"`
	BookingID     uuid.UUID `json:"bookingId"`
	ServiceID     uuid.UUID `json:"serviceId"`
	ServiceName   string    `json:"serviceName"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	StartAt       time.Time `json:"startAt"`
	EndAt         time.Time `json:"endAt"`
	CancelledAt   time.Time `json:"cancelledAt"`
}

// NewBookingCancelledEvent собирает событие из отмененного бронирования
func NewBookingCancelledEvent(b *domain.Booking) BookingCancelledEvent {
	cancelledAt := b.UpdatedAt
	if cancelledAt.IsZero() {
		cancelledAt = time.Now()
	}

	return BookingCancelledEvent{
		EventID:       uuid.New(),
		Type:          EventBookingCancelled,
		BookingID:     b.ID,
		ServiceID:     b.ServiceID,
		ServiceName:   b.ServiceName,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		StartAt:       b.StartAt,
		EndAt:         b.EndAt,
		CancelledAt:   cancelledAt,
	}
}
