// Package slotgen строит список слотов на дату по правилу, исключению
// и существующим бронированиям. Пакет не обращается к хранилищу.
package slotgen

import (
	"time"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	"github.com/m04kA/BookEasy-Service/pkg/calendar"
)

// Input входные данные генерации
type Input struct {
	DurationMin int
	Rule        *domain.AvailabilityRule      // nil - день нерабочий
	Exception   *domain.AvailabilityException // nil - исключения нет
	Bookings    []*domain.Booking             // бронирования, пересекающие дату
	Date        time.Time
	Now         time.Time
}

// Compute возвращает слоты в порядке возрастания времени начала.
// Слот создается, только если целиком помещается до конца рабочего дня.
func Compute(in Input) []domain.Slot {
	if in.Rule == nil {
		return []domain.Slot{}
	}
	if in.Exception != nil && in.Exception.IsClosed {
		return []domain.Slot{}
	}
	if in.DurationMin <= 0 || in.Rule.SlotStepMin <= 0 {
		return []domain.Slot{}
	}

	startTime, endTime := domain.EffectiveHours(in.Rule, in.Exception)

	startMin, err := startTime.Minutes()
	if err != nil {
		return []domain.Slot{}
	}
	endMin, err := endTime.Minutes()
	if err != nil {
		return []domain.Slot{}
	}

	day := calendar.StartOfDay(in.Date)
	active := activeBookings(in.Bookings)

	slots := make([]domain.Slot, 0)
	for slotStart := startMin; slotStart+in.DurationMin <= endMin; slotStart += in.Rule.SlotStepMin {
		start := calendar.At(day, slotStart)
		end := calendar.At(day, slotStart+in.DurationMin)

		overlapping := countOverlapping(active, start, end)
		remaining := in.Rule.Capacity - overlapping
		if remaining < 0 {
			remaining = 0
		}

		slots = append(slots, domain.Slot{
			StartTime:         start,
			EndTime:           end,
			Available:         remaining > 0 && start.After(in.Now),
			RemainingCapacity: remaining,
		})
	}

	return slots
}

// Find ищет слот с точно совпадающим временем начала
func Find(slots []domain.Slot, startAt time.Time) (domain.Slot, bool) {
	for _, slot := range slots {
		if slot.StartTime.Equal(startAt) {
			return slot, true
		}
	}
	return domain.Slot{}, false
}

func activeBookings(bookings []*domain.Booking) []*domain.Booking {
	active := make([]*domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b != nil && b.IsActive() {
			active = append(active, b)
		}
	}
	return active
}

func countOverlapping(bookings []*domain.Booking, start, end time.Time) int {
	count := 0
	for _, b := range bookings {
		if b.Overlaps(start, end) {
			count++
		}
	}
	return count
}
