package notifier

import (
	"context"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

// LogNotifier только пишет уведомление в лог (бэкенд по умолчанию)
type LogNotifier struct {
	metrics Metrics
	log     Logger
}

// NewLogNotifier создает уведомитель, пишущий в лог
func NewLogNotifier(metrics Metrics, log Logger) *LogNotifier {
	return &LogNotifier{metrics: metricsOrNoop(metrics), log: log}
}

// BookingCancelled пишет строку об отмене
func (n *LogNotifier) BookingCancelled(_ context.Context, b *domain.Booking) error {
	n.log.Info("[NOTIFICATION] Booking %s cancelled. Email to %s <%s> about %s at %s",
		b.ID, b.CustomerName, b.CustomerEmail, b.ServiceName, b.StartAt.Format("2006-01-02 15:04"))
	n.metrics.ObserveNotification(BackendLog, resultOK)
	return nil
}
