package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

// WebhookNotifier отправляет событие отмены POST-запросом на внешний URL
type WebhookNotifier struct {
	url        string
	httpClient *http.Client
	metrics    Metrics
	log        Logger
}

// NewWebhookNotifier создает новый экземпляр клиента вебхука
func NewWebhookNotifier(url string, timeout time.Duration, metrics Metrics, log Logger) *WebhookNotifier {
	return &WebhookNotifier{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metricsOrNoop(metrics),
		log:     log,
	}
}

// BookingCancelled отправляет событие отмены
func (n *WebhookNotifier) BookingCancelled(ctx context.Context, b *domain.Booking) error {
	err := n.send(ctx, NewBookingCancelledEvent(b))
	if err != nil {
		n.metrics.ObserveNotification(BackendWebhook, resultError)
		return err
	}

	n.metrics.ObserveNotification(BackendWebhook, resultOK)
	n.log.Info("Webhook: booking id=%s cancellation delivered", b.ID)
	return nil
}

func (n *WebhookNotifier) send(ctx context.Context, event BookingCancelledEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("%w: failed to encode event: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Event-Type", event.Type)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// любой 2xx считается доставкой
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	return nil
}
