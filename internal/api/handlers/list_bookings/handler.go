package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/BookEasy-Service/internal/api/handlers"
	"github.com/m04kA/BookEasy-Service/internal/service/bookings"
	bookingModels "github.com/m04kA/BookEasy-Service/internal/service/bookings/models"
)

const msgInvalidQuery = "некорректные параметры фильтрации"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Параметры: status, serviceId, dateFrom, dateTo, search, page, limit, sortBy, sortOrder
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &bookingModels.ListBookingsRequest{
		Status:    query.Get("status"),
		ServiceID: query.Get("serviceId"),
		DateFrom:  query.Get("dateFrom"),
		DateTo:    query.Get("dateTo"),
		Search:    query.Get("search"),
		Page:      query.Get("page"),
		Limit:     query.Get("limit"),
		SortBy:    query.Get("sortBy"),
		SortOrder: query.Get("sortOrder"),
	}

	page, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /admin/bookings - Invalid query: %v", err)
			handlers.RespondValidationError(w, msgInvalidQuery, err)
			return
		}
		h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved: count=%d, total=%d", len(page.Data), page.Pagination.Total)
	handlers.RespondJSON(w, http.StatusOK, bookingModels.FromDomainPage(page))
}
