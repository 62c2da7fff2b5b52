package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	"github.com/m04kA/BookEasy-Service/pkg/logger"
)

type countingMetrics struct {
	calls map[string]int
}

func (m *countingMetrics) ObserveNotification(backend, result string) {
	if m.calls == nil {
		m.calls = make(map[string]int)
	}
	m.calls[backend+"/"+result]++
}

func cancelledBooking() *domain.Booking {
	start := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:            uuid.New(),
		ServiceID:     uuid.New(),
		ServiceName:   "Coupe",
		CustomerName:  "Marie Curie",
		CustomerEmail: "marie@example.com",
		StartAt:       start,
		EndAt:         start.Add(30 * time.Minute),
		Status:        domain.StatusCancelled,
		UpdatedAt:     start.Add(-time.Hour),
	}
}

func TestWebhookNotifier_PostsEvent(t *testing.T) {
	b := cancelledBooking()

	var received BookingCancelledEvent
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, EventBookingCancelled, r.Header.Get("X-Event-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	m := &countingMetrics{}
	n := NewWebhookNotifier(server.URL, time.Second, m, logger.Nop())

	require.NoError(t, n.BookingCancelled(context.Background(), b))
	assert.Equal(t, b.ID, received.BookingID)
	assert.Equal(t, "marie@example.com", received.CustomerEmail)
	assert.Equal(t, 1, m.calls["webhook/ok"])
}

func TestWebhookNotifier_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	m := &countingMetrics{}
	n := NewWebhookNotifier(server.URL, time.Second, m, logger.Nop())

	err := n.BookingCancelled(context.Background(), cancelledBooking())
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Equal(t, 1, m.calls["webhook/error"])
}

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaNotifier_PublishesKeyedEvent(t *testing.T) {
	b := cancelledBooking()
	writer := &fakeWriter{}
	n := NewKafkaNotifier(writer, nil, logger.Nop())

	require.NoError(t, n.BookingCancelled(context.Background(), b))
	require.Len(t, writer.messages, 1)

	msg := writer.messages[0]
	assert.Equal(t, b.ID.String(), string(msg.Key))

	var event BookingCancelledEvent
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, EventBookingCancelled, event.Type)
	assert.Equal(t, b.UpdatedAt, event.CancelledAt)
}

func TestKafkaNotifier_WriteError(t *testing.T) {
	m := &countingMetrics{}
	n := NewKafkaNotifier(&fakeWriter{err: errors.New("broker down")}, m, logger.Nop())

	err := n.BookingCancelled(context.Background(), cancelledBooking())
	assert.ErrorIs(t, err, ErrPublish)
	assert.Equal(t, 1, m.calls["kafka/error"])
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	b := cancelledBooking()
	n := NewLogNotifier(nil, logger.NewWriter(&buf, logger.LevelInfo, logger.Options{}))

	require.NoError(t, n.BookingCancelled(context.Background(), b))
	assert.Contains(t, buf.String(), "[NOTIFICATION] Booking "+b.ID.String()+" cancelled")
	assert.Contains(t, buf.String(), "marie@example.com")
}
