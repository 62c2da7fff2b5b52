package get_dashboard

import (
	"context"

	"github.com/m04kA/BookEasy-Service/internal/service/reports"
)

type ReportsService interface {
	Dashboard(ctx context.Context) (*reports.Dashboard, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
