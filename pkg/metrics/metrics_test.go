package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveAdmission(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.ObserveAdmission(AdmissionAccepted)
	m.ObserveAdmission(AdmissionAccepted)
	m.ObserveAdmission(AdmissionSlotUnavailable)
	m.ObserveAdmission(AdmissionConcurrent)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingAdmissionsTotal.WithLabelValues(AdmissionAccepted)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingAdmissionsTotal.WithLabelValues(AdmissionSlotUnavailable)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingAdmissionsTotal.WithLabelValues(AdmissionConcurrent)))
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveAdmission(AdmissionAccepted)
		m.ObserveNotification("kafka", "ok")
	})
}
