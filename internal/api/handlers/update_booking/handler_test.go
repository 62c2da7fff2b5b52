package update_booking

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	"github.com/m04kA/BookEasy-Service/internal/service/bookings"
	bookingModels "github.com/m04kA/BookEasy-Service/internal/service/bookings/models"
	"github.com/m04kA/BookEasy-Service/pkg/logger"
)

type fakeService struct {
	got     *bookingModels.UpdateBookingRequest
	booking *domain.Booking
	err     error
}

func (f *fakeService) Update(_ context.Context, id uuid.UUID, req *bookingModels.UpdateBookingRequest) (*domain.Booking, error) {
	f.got = req
	if f.booking != nil {
		f.booking.ID = id
	}
	return f.booking, f.err
}

func doPatch(h *Handler, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/bookings/"+id, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_UpdatesStatus(t *testing.T) {
	svc := &fakeService{booking: &domain.Booking{Status: domain.StatusConfirmed}}
	h := NewHandler(svc, logger.Nop())

	rec := doPatch(h, uuid.NewString(), `{"status":"CONFIRMED"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got)
	require.NotNil(t, svc.got.Status)
	assert.Equal(t, "CONFIRMED", *svc.got.Status)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"bad body", `{"status":`, nil, http.StatusBadRequest},
		{"validation", `{"status":"DONE"}`, fmt.Errorf("%w: bad status", bookings.ErrInvalidInput), http.StatusBadRequest},
		{"not found", `{}`, bookings.ErrBookingNotFound, http.StatusNotFound},
		{"transition", `{"status":"PENDING"}`, bookings.ErrInvalidTransition, http.StatusConflict},
		{"internal", `{}`, bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&fakeService{err: tt.err}, logger.Nop())
			rec := doPatch(h, uuid.NewString(), tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
