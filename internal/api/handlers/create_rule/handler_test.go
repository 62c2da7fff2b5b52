package create_rule

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookEasy-Service/internal/service/availability"
	availabilityModels "github.com/m04kA/BookEasy-Service/internal/service/availability/models"
	"github.com/m04kA/BookEasy-Service/pkg/logger"
)

type fakeService struct {
	got  *availabilityModels.CreateRuleRequest
	resp *availabilityModels.RuleResponse
	err  error
}

func (f *fakeService) CreateRule(_ context.Context, req *availabilityModels.CreateRuleRequest) (*availabilityModels.RuleResponse, error) {
	f.got = req
	return f.resp, f.err
}

func doPost(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/availability-rules", strings.NewReader(body)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := &fakeService{resp: &availabilityModels.RuleResponse{ID: uuid.New(), DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00", SlotStepMin: 30, Capacity: 1}}
	h := NewHandler(svc, logger.Nop())

	rec := doPost(h, `{"dayOfWeek":1,"startTime":"09:00","endTime":"18:00"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.got.DayOfWeek)
	assert.Equal(t, 1, *svc.got.DayOfWeek)
	assert.Equal(t, "09:00", svc.got.StartTime)
	assert.Nil(t, svc.got.SlotStepMin)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"bad body", `[]`, nil, http.StatusBadRequest},
		{"validation", `{"dayOfWeek":9}`, fmt.Errorf("%w: dayOfWeek", availability.ErrInvalidInput), http.StatusBadRequest},
		{"duplicate", `{"dayOfWeek":1,"startTime":"09:00","endTime":"18:00"}`, availability.ErrDuplicateRule, http.StatusConflict},
		{"internal", `{"dayOfWeek":1,"startTime":"09:00","endTime":"18:00"}`, availability.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doPost(NewHandler(&fakeService{err: tt.err}, logger.Nop()), tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
