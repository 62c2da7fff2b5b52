package export_bookings

import (
	"context"
	"io"
	"time"
)

type ReportsService interface {
	ExportCSV(ctx context.Context, w io.Writer) error
}

type TimeProvider interface {
	Now() time.Time
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
