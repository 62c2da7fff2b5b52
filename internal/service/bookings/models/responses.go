package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                uuid.UUID       `json:"id"`
	ServiceID         uuid.UUID       `json:"serviceId"`
	StartAt           time.Time       `json:"startAt"`
	EndAt             time.Time       `json:"endAt"`
	CustomerName      string          `json:"customerName"`
	CustomerEmail     string          `json:"customerEmail"`
	CustomerPhone     *string         `json:"customerPhone"`
	CustomerNote      *string         `json:"customerNote"`
	Status            string          `json:"status"`
	ServiceName       string          `json:"serviceName"`
	ServicePriceCents int             `json:"servicePriceCents"`
	Service           *ServiceSummary `json:"service,omitempty"`
	Notes             []NoteResponse  `json:"notes,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// ServiceSummary текущие данные услуги бронирования
type ServiceSummary struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	DurationMin int       `json:"durationMin"`
	PriceCents  int       `json:"priceCents"`
	IsActive    bool      `json:"isActive"`
}

// NoteResponse заметка администратора
type NoteResponse struct {
	ID        uuid.UUID `json:"id"`
	BookingID uuid.UUID `json:"bookingId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// PaginationResponse метаданные страницы
type PaginationResponse struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// BookingListResponse страница бронирований
type BookingListResponse struct {
	Data       []*BookingResponse `json:"data"`
	Pagination PaginationResponse `json:"pagination"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                b.ID,
		ServiceID:         b.ServiceID,
		StartAt:           b.StartAt,
		EndAt:             b.EndAt,
		CustomerName:      b.CustomerName,
		CustomerEmail:     b.CustomerEmail,
		CustomerPhone:     b.CustomerPhone,
		CustomerNote:      b.CustomerNote,
		Status:            string(b.Status),
		ServiceName:       b.ServiceName,
		ServicePriceCents: b.ServicePriceCents,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}

	if b.Service != nil {
		resp.Service = &ServiceSummary{
			ID:          b.Service.ID,
			Name:        b.Service.Name,
			DurationMin: b.Service.DurationMin,
			PriceCents:  b.Service.PriceCents,
			IsActive:    b.Service.IsActive,
		}
	}

	if len(b.Notes) > 0 {
		resp.Notes = make([]NoteResponse, 0, len(b.Notes))
		for i := range b.Notes {
			resp.Notes = append(resp.Notes, *FromDomainNote(&b.Notes[i]))
		}
	}

	return resp
}

// FromDomainBookings конвертирует список бронирований
func FromDomainBookings(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}

// FromDomainNote конвертирует заметку
func FromDomainNote(n *domain.BookingNote) *NoteResponse {
	return &NoteResponse{
		ID:        n.ID,
		BookingID: n.BookingID,
		Content:   n.Content,
		CreatedAt: n.CreatedAt,
	}
}

// FromDomainPage конвертирует страницу бронирований
func FromDomainPage(p *domain.BookingPage) *BookingListResponse {
	return &BookingListResponse{
		Data: FromDomainBookings(p.Data),
		Pagination: PaginationResponse{
			Page:       p.Pagination.Page,
			Limit:      p.Pagination.Limit,
			Total:      p.Pagination.Total,
			TotalPages: p.Pagination.TotalPages,
		},
	}
}
