package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
	StatusCompleted BookingStatus = "COMPLETED"
)

// allowedTransitions допустимые переходы статусов
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

// IsValid статус входит в список известных
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal из статуса нет переходов
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CanTransitionTo разрешен ли переход в статус next
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking бронирование
type Booking struct {
	ID        uuid.UUID
	ServiceID uuid.UUID
	StartAt   time.Time
	EndAt     time.Time

	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	CustomerNote  *string

	Status BookingStatus

	// Денормализованные данные услуги на момент создания
	ServiceName       string
	ServicePriceCents int

	CreatedAt time.Time
	UpdatedAt time.Time

	Service *Service
	Notes   []BookingNote
}

// IsActive бронирование занимает место в расписании
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// Overlaps пересекается ли бронирование с интервалом [start, end).
// Касание границ пересечением не считается.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartAt.Before(end) && b.EndAt.After(start)
}

// BookingNote заметка оператора к бронированию
type BookingNote struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Content   string
	CreatedAt time.Time
}

// BookingPatch частичное обновление бронирования (nil - поле не меняется)
type BookingPatch struct {
	Status        *BookingStatus
	CustomerName  *string
	CustomerEmail *string
	CustomerPhone *string
	CustomerNote  *string
}

// IsEmpty в патче нет изменений
func (p *BookingPatch) IsEmpty() bool {
	return p.Status == nil && p.CustomerName == nil && p.CustomerEmail == nil &&
		p.CustomerPhone == nil && p.CustomerNote == nil
}
