package notifier

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics счетчик исходов отправки уведомлений
type Metrics interface {
	ObserveNotification(backend, result string)
}

// Бэкенды уведомлений
const (
	BackendLog     = "log"
	BackendWebhook = "webhook"
	BackendKafka   = "kafka"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

type noopMetrics struct{}

func (noopMetrics) ObserveNotification(string, string) {}

func metricsOrNoop(m Metrics) Metrics {
	if m == nil {
		return noopMetrics{}
	}
	return m
}
