package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/BookEasy-Service/pkg/logger"
)

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(fakePinger{}, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"up"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	NewHandler(fakePinger{err: errors.New("refused")}, logger.Nop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
