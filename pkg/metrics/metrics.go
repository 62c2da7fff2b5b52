// Package metrics содержит prometheus-коллекторы сервиса.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Результаты допуска бронирования
const (
	AdmissionAccepted           = "accepted"
	AdmissionSlotUnavailable    = "slot_unavailable"
	AdmissionConcurrent         = "concurrent"
	AdmissionServiceUnavailable = "service_unavailable"
	AdmissionInvalid            = "invalid"
	AdmissionError              = "error"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration    *prometheus.HistogramVec
	DBOpenConnections  *prometheus.GaugeVec
	DBInUseConnections *prometheus.GaugeVec
	DBIdleConnections  *prometheus.GaugeVec
	DBWaitCount        *prometheus.GaugeVec
	DBTxRetriesTotal   *prometheus.CounterVec

	BookingAdmissionsTotal *prometheus.CounterVec
	NotificationsTotal     *prometheus.CounterVec
}

// New регистрирует метрики в глобальном реестре prometheus
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует метрики в указанном реестре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBOpenConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBInUseConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBIdleConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBWaitCount: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: constLabels,
		}, []string{"db"}),

		DBTxRetriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_tx_retries_total",
			Help:        "Serializable transactions retried after a serialization failure",
			ConstLabels: constLabels,
		}, []string{"isolation"}),

		BookingAdmissionsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_admissions_total",
			Help:        "Booking admission attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),

		NotificationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "notifications_total",
			Help:        "Cancellation notifications by backend and result",
			ConstLabels: constLabels,
		}, []string{"backend", "result"}),
	}
}

// ObserveAdmission увеличивает счетчик допусков бронирования (безопасно для nil)
func (m *Metrics) ObserveAdmission(outcome string) {
	if m == nil {
		return
	}
	m.BookingAdmissionsTotal.WithLabelValues(outcome).Inc()
}

// ObserveNotification увеличивает счетчик уведомлений (безопасно для nil)
func (m *Metrics) ObserveNotification(backend, result string) {
	if m == nil {
		return
	}
	m.NotificationsTotal.WithLabelValues(backend, result).Inc()
}
