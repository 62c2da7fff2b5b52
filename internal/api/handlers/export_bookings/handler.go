package export_bookings

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/m04kA/BookEasy-Service/internal/api/handlers"
	"github.com/m04kA/BookEasy-Service/internal/domain"
)

// utf8BOM нужен Excel, чтобы распознать кодировку
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

type Handler struct {
	service      ReportsService
	timeProvider TimeProvider
	logger       Logger
}

func NewHandler(service ReportsService, timeProvider TimeProvider, logger Logger) *Handler {
	return &Handler{
		service:      service,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Handle GET /api/v1/admin/export/bookings.csv
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Выгрузка собирается в буфер целиком, чтобы ошибка не оборвала уже начатый ответ
	var buf bytes.Buffer
	buf.Write(utf8BOM)

	if err := h.service.ExportCSV(r.Context(), &buf); err != nil {
		h.logger.Error("GET /admin/export/bookings.csv - Failed to export bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("bookings-%s.csv", h.timeProvider.Now().Format(domain.DateFormat))

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())

	h.logger.Info("GET /admin/export/bookings.csv - Export sent: bytes=%d", buf.Len())
}
