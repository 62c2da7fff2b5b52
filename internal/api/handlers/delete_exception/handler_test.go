package delete_exception

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/BookEasy-Service/internal/service/availability"
	"github.com/m04kA/BookEasy-Service/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) DeleteException(context.Context, uuid.UUID) error {
	return f.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{"deleted", uuid.NewString(), nil, http.StatusNoContent},
		{"invalid id", "x", nil, http.StatusBadRequest},
		{"not found", uuid.NewString(), availability.ErrExceptionNotFound, http.StatusNotFound},
		{"internal", uuid.NewString(), availability.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/availability-exceptions/"+tt.id, nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.id})
			rec := httptest.NewRecorder()

			NewHandler(&fakeService{err: tt.err}, logger.Nop()).Handle(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
