package models

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	"github.com/m04kA/BookEasy-Service/pkg/calendar"
	"github.com/m04kA/BookEasy-Service/pkg/validation"
)

// Request модели

// ListBookingsRequest параметры списка бронирований в сыром виде (из query string)
type ListBookingsRequest struct {
	Status    string
	ServiceID string
	DateFrom  string // YYYY-MM-DD или RFC3339
	DateTo    string // YYYY-MM-DD (включительно до конца дня) или RFC3339
	Search    string
	Page      string
	Limit     string
	SortBy    string
	SortOrder string
}

// UpdateBookingRequest частичное обновление бронирования оператором
type UpdateBookingRequest struct {
	Status        *string `json:"status" validate:"omitempty,oneof=PENDING CONFIRMED CANCELLED COMPLETED"`
	CustomerName  *string `json:"customerName" validate:"omitempty,min=2,max=100"`
	CustomerEmail *string `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone *string `json:"customerPhone" validate:"omitempty,max=30"`
	CustomerNote  *string `json:"customerNote" validate:"omitempty,max=500"`
}

// AddNoteRequest новая заметка
type AddNoteRequest struct {
	Content string `json:"content" validate:"min=1,max=1000"`
}

// ToDomainPatch конвертирует запрос в патч
func (r *UpdateBookingRequest) ToDomainPatch() *domain.BookingPatch {
	patch := &domain.BookingPatch{
		CustomerName:  trimmed(r.CustomerName),
		CustomerEmail: trimmed(r.CustomerEmail),
		CustomerPhone: trimmed(r.CustomerPhone),
		CustomerNote:  trimmed(r.CustomerNote),
	}
	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

var sortFields = map[string]bool{
	domain.SortByCreatedAt:    true,
	domain.SortByUpdatedAt:    true,
	domain.SortByStartAt:      true,
	domain.SortByCustomerName: true,
	domain.SortByStatus:       true,
}

// ToDomainQuery проверяет параметры и подставляет значения по умолчанию.
// Даты без времени разбираются в часовом поясе loc. Возвращает все нарушения разом.
func (r *ListBookingsRequest) ToDomainQuery(loc *time.Location) (*domain.BookingQuery, error) {
	var errs validation.Errors

	q := &domain.BookingQuery{
		Search:    strings.TrimSpace(r.Search),
		Page:      domain.DefaultPage,
		Limit:     domain.DefaultPageLimit,
		SortBy:    domain.SortByCreatedAt,
		SortOrder: domain.SortDesc,
	}

	if r.Status != "" {
		status := domain.BookingStatus(strings.ToUpper(r.Status))
		if status.IsValid() {
			q.Status = &status
		} else {
			errs.Add("status", "status must be one of: PENDING CONFIRMED CANCELLED COMPLETED")
		}
	}

	if r.ServiceID != "" {
		id, err := uuid.Parse(r.ServiceID)
		if err != nil {
			errs.Add("serviceId", "serviceId must be a valid UUID")
		} else {
			q.ServiceID = &id
		}
	}

	if r.DateFrom != "" {
		from, _, err := parseDate(r.DateFrom, loc)
		if err != nil {
			errs.Add("dateFrom", "dateFrom must be YYYY-MM-DD or RFC3339")
		} else {
			q.DateFrom = &from
		}
	}

	if r.DateTo != "" {
		to, dateOnly, err := parseDate(r.DateTo, loc)
		if err != nil {
			errs.Add("dateTo", "dateTo must be YYYY-MM-DD or RFC3339")
		} else {
			if dateOnly {
				to = calendar.EndOfDay(to)
			}
			q.DateTo = &to
		}
	}

	if q.DateFrom != nil && q.DateTo != nil && q.DateFrom.After(*q.DateTo) {
		errs.Add("dateTo", "dateTo must not be before dateFrom")
	}

	if r.Page != "" {
		page, err := strconv.Atoi(r.Page)
		if err != nil || page < 1 {
			errs.Add("page", "page must be a positive integer")
		} else {
			q.Page = page
		}
	}

	if r.Limit != "" {
		limit, err := strconv.Atoi(r.Limit)
		if err != nil || limit < 1 || limit > domain.MaxPageLimit {
			errs.Add("limit", "limit must be between 1 and 100")
		} else {
			q.Limit = limit
		}
	}

	if r.SortBy != "" {
		if sortFields[r.SortBy] {
			q.SortBy = r.SortBy
		} else {
			errs.Add("sortBy", "sortBy must be one of: createdAt updatedAt startAt customerName status")
		}
	}

	if r.SortOrder != "" {
		order := strings.ToLower(r.SortOrder)
		if order == domain.SortAsc || order == domain.SortDesc {
			q.SortOrder = order
		} else {
			errs.Add("sortOrder", "sortOrder must be asc or desc")
		}
	}

	if err := errs.OrNil(); err != nil {
		return nil, err
	}
	return q, nil
}

// parseDate разбирает YYYY-MM-DD в loc или RFC3339. dateOnly - был ли указан только день.
func parseDate(s string, loc *time.Location) (t time.Time, dateOnly bool, err error) {
	if t, err = time.ParseInLocation(domain.DateFormat, s, loc); err == nil {
		return t, true, nil
	}
	t, err = time.Parse(time.RFC3339, s)
	return t, false, err
}
