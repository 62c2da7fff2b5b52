package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/BookEasy-Service/pkg/ptr"
	"github.com/m04kA/BookEasy-Service/pkg/types"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from, to BookingStatus
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, StatusCompleted.IsValid())
	assert.False(t, BookingStatus("pending").IsValid())
}

func TestBooking_Overlaps(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	b := &Booking{StartAt: day.Add(10 * time.Hour), EndAt: day.Add(11 * time.Hour)}

	assert.True(t, b.Overlaps(day.Add(10*time.Hour), day.Add(10*time.Hour+30*time.Minute)))
	assert.True(t, b.Overlaps(day.Add(9*time.Hour+30*time.Minute), day.Add(10*time.Hour+30*time.Minute)))
	// касание границ не пересечение
	assert.False(t, b.Overlaps(day.Add(11*time.Hour), day.Add(11*time.Hour+30*time.Minute)))
	assert.False(t, b.Overlaps(day.Add(9*time.Hour), day.Add(10*time.Hour)))
}

func TestEffectiveHours(t *testing.T) {
	rule := &AvailabilityRule{StartTime: "09:00", EndTime: "18:00"}

	start, end := EffectiveHours(rule, nil)
	assert.Equal(t, types.TimeString("09:00"), start)
	assert.Equal(t, types.TimeString("18:00"), end)

	exc := &AvailabilityException{CustomStartTime: ptr.Ptr(types.TimeString("12:00"))}
	start, end = EffectiveHours(rule, exc)
	assert.Equal(t, types.TimeString("12:00"), start)
	assert.Equal(t, types.TimeString("18:00"), end)
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 20, 41)
	assert.Equal(t, 3, p.TotalPages)

	assert.Equal(t, 0, NewPagination(1, 20, 0).TotalPages)
}
