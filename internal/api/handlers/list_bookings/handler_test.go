package list_bookings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookEasy-Service/internal/api/handlers"
	"github.com/m04kA/BookEasy-Service/internal/domain"
	"github.com/m04kA/BookEasy-Service/internal/service/bookings"
	bookingModels "github.com/m04kA/BookEasy-Service/internal/service/bookings/models"
	"github.com/m04kA/BookEasy-Service/pkg/logger"
	"github.com/m04kA/BookEasy-Service/pkg/validation"
)

type fakeService struct {
	got  *bookingModels.ListBookingsRequest
	page *domain.BookingPage
	err  error
}

func (f *fakeService) List(_ context.Context, req *bookingModels.ListBookingsRequest) (*domain.BookingPage, error) {
	f.got = req
	return f.page, f.err
}

func TestHandle_PassesQueryParams(t *testing.T) {
	svc := &fakeService{page: &domain.BookingPage{
		Data:       []*domain.Booking{{Status: domain.StatusPending}},
		Pagination: domain.NewPagination(2, 10, 11),
	}}
	h := NewHandler(svc, logger.Nop())

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/admin/bookings?status=PENDING&search=marie&page=2&limit=10&sortBy=startAt&sortOrder=asc&dateFrom=2025-06-01", nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "PENDING", svc.got.Status)
	assert.Equal(t, "marie", svc.got.Search)
	assert.Equal(t, "2", svc.got.Page)
	assert.Equal(t, "startAt", svc.got.SortBy)
	assert.Equal(t, "2025-06-01", svc.got.DateFrom)

	var resp bookingModels.BookingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, 11, resp.Pagination.Total)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
}

func TestHandle_InvalidQuery(t *testing.T) {
	err := fmt.Errorf("%w: %w", bookings.ErrInvalidInput, validation.Errors{{Field: "limit", Message: "must be between 1 and 100"}})
	h := NewHandler(&fakeService{err: err}, logger.Nop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings?limit=1000", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "limit", resp.Details[0].Field)
}
