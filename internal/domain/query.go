package domain

import (
	"time"

	"github.com/google/uuid"
)

// Сортировка списка бронирований
const (
	SortByCreatedAt    = "createdAt"
	SortByUpdatedAt    = "updatedAt"
	SortByStartAt      = "startAt"
	SortByCustomerName = "customerName"
	SortByStatus       = "status"

	SortAsc  = "asc"
	SortDesc = "desc"
)

// BookingQuery параметры выборки бронирований для администратора
type BookingQuery struct {
	Status    *BookingStatus
	ServiceID *uuid.UUID
	DateFrom  *time.Time // по startAt, включительно
	DateTo    *time.Time // по startAt, включительно
	Search    string     // подстрока имени или email без учета регистра
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Offset смещение для страницы
func (q *BookingQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// BookingCountFilter фильтр для подсчета бронирований (nil - без ограничения)
type BookingCountFilter struct {
	StartFrom     *time.Time
	StartTo       *time.Time
	UpdatedFrom   *time.Time
	UpdatedTo     *time.Time
	Status        *BookingStatus
	ExcludeStatus *BookingStatus
}

// Pagination метаданные страницы
type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// NewPagination считает число страниц
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}

// BookingPage страница бронирований
type BookingPage struct {
	Data       []*Booking
	Pagination Pagination
}
