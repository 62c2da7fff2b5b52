package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	"github.com/m04kA/BookEasy-Service/pkg/types"
)

// Request модели

// CreateRuleRequest запрос на создание правила
type CreateRuleRequest struct {
	DayOfWeek   *int   `json:"dayOfWeek" validate:"required,gte=0,lte=6"` // 0 - понедельник
	StartTime   string `json:"startTime" validate:"required,hhmm"`
	EndTime     string `json:"endTime" validate:"required,hhmm"`
	SlotStepMin *int   `json:"slotStepMin" validate:"omitempty,gte=5,lte=120"` // по умолчанию 30
	Capacity    *int   `json:"capacity" validate:"omitempty,gte=1,lte=100"`    // по умолчанию 1
}

// UpdateRuleRequest запрос на обновление правила
// Все поля опциональны - обновляются только переданные значения
type UpdateRuleRequest struct {
	DayOfWeek   *int    `json:"dayOfWeek" validate:"omitempty,gte=0,lte=6"`
	StartTime   *string `json:"startTime" validate:"omitempty,hhmm"`
	EndTime     *string `json:"endTime" validate:"omitempty,hhmm"`
	SlotStepMin *int    `json:"slotStepMin" validate:"omitempty,gte=5,lte=120"`
	Capacity    *int    `json:"capacity" validate:"omitempty,gte=1,lte=100"`
}

// CreateExceptionRequest запрос на создание исключения
type CreateExceptionRequest struct {
	Date            string  `json:"date" validate:"required"` // YYYY-MM-DD или RFC3339
	IsClosed        bool    `json:"isClosed"`
	CustomStartTime *string `json:"customStartTime" validate:"omitempty,hhmm"`
	CustomEndTime   *string `json:"customEndTime" validate:"omitempty,hhmm"`
}

// Response модели

// RuleResponse ответ с данными правила
type RuleResponse struct {
	ID          uuid.UUID `json:"id"`
	DayOfWeek   int       `json:"dayOfWeek"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	SlotStepMin int       `json:"slotStepMin"`
	Capacity    int       `json:"capacity"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ExceptionResponse ответ с данными исключения
type ExceptionResponse struct {
	ID              uuid.UUID `json:"id"`
	Date            string    `json:"date"`
	IsClosed        bool      `json:"isClosed"`
	CustomStartTime *string   `json:"customStartTime"`
	CustomEndTime   *string   `json:"customEndTime"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Методы конвертации

// ToDomainRule конвертирует запрос в доменное правило с значениями по умолчанию
func (r *CreateRuleRequest) ToDomainRule() *domain.AvailabilityRule {
	rule := &domain.AvailabilityRule{
		StartTime:   types.TimeString(r.StartTime),
		EndTime:     types.TimeString(r.EndTime),
		SlotStepMin: domain.DefaultSlotStepMin,
		Capacity:    domain.DefaultCapacity,
	}
	if r.DayOfWeek != nil {
		rule.DayOfWeek = *r.DayOfWeek
	}
	if r.SlotStepMin != nil {
		rule.SlotStepMin = *r.SlotStepMin
	}
	if r.Capacity != nil {
		rule.Capacity = *r.Capacity
	}
	return rule
}

// ApplyTo переносит переданные поля на правило
func (r *UpdateRuleRequest) ApplyTo(rule *domain.AvailabilityRule) {
	if r.DayOfWeek != nil {
		rule.DayOfWeek = *r.DayOfWeek
	}
	if r.StartTime != nil {
		rule.StartTime = types.TimeString(*r.StartTime)
	}
	if r.EndTime != nil {
		rule.EndTime = types.TimeString(*r.EndTime)
	}
	if r.SlotStepMin != nil {
		rule.SlotStepMin = *r.SlotStepMin
	}
	if r.Capacity != nil {
		rule.Capacity = *r.Capacity
	}
}

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(r *domain.AvailabilityRule) *RuleResponse {
	if r == nil {
		return nil
	}

	return &RuleResponse{
		ID:          r.ID,
		DayOfWeek:   r.DayOfWeek,
		StartTime:   r.StartTime.String(),
		EndTime:     r.EndTime.String(),
		SlotStepMin: r.SlotStepMin,
		Capacity:    r.Capacity,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// FromDomainException конвертирует domain модель в DTO
func FromDomainException(e *domain.AvailabilityException) *ExceptionResponse {
	if e == nil {
		return nil
	}

	return &ExceptionResponse{
		ID:              e.ID,
		Date:            e.Date.Format(domain.DateFormat),
		IsClosed:        e.IsClosed,
		CustomStartTime: timeOrNil(e.CustomStartTime),
		CustomEndTime:   timeOrNil(e.CustomEndTime),
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func timeOrNil(t *types.TimeString) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.String()
	return &s
}
