package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/pkg/types"
)

// AvailabilityRule рабочие часы для дня недели (0 - понедельник, 6 - воскресенье)
type AvailabilityRule struct {
	ID          uuid.UUID
	DayOfWeek   int
	StartTime   types.TimeString
	EndTime     types.TimeString
	SlotStepMin int
	Capacity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AvailabilityException переопределение расписания на конкретную дату
type AvailabilityException struct {
	ID              uuid.UUID
	Date            time.Time // полночь даты
	IsClosed        bool
	CustomStartTime *types.TimeString
	CustomEndTime   *types.TimeString
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EffectiveHours возвращает рабочие часы с учетом исключения.
// Кастомное время заменяет время правила по каждому полю отдельно.
func EffectiveHours(rule *AvailabilityRule, exc *AvailabilityException) (start, end types.TimeString) {
	start, end = rule.StartTime, rule.EndTime
	if exc == nil {
		return start, end
	}
	if exc.CustomStartTime != nil && !exc.CustomStartTime.IsZero() {
		start = *exc.CustomStartTime
	}
	if exc.CustomEndTime != nil && !exc.CustomEndTime.IsZero() {
		end = *exc.CustomEndTime
	}
	return start, end
}
