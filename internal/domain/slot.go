package domain

import "time"

// Slot интервал длительностью услуги, доступный для бронирования
type Slot struct {
	StartTime         time.Time
	EndTime           time.Time
	Available         bool
	RemainingCapacity int
}

// IsFull в слоте не осталось мест
func (s *Slot) IsFull() bool {
	return s.RemainingCapacity <= 0
}
