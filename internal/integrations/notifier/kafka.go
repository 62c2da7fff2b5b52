package notifier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

// DefaultTopic топик событий отмены
const DefaultTopic = "booking.cancelled"

// MessageWriter часть kafka.Writer, нужная уведомителю
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier публикует события отмены в kafka
type KafkaNotifier struct {
	writer  MessageWriter
	metrics Metrics
	log     Logger
}

// NewKafkaWriter создает writer с балансировкой по ключу (события одного бронирования попадают в одну партицию)
func NewKafkaWriter(brokers []string, topic string, log Logger) *kafka.Writer {
	if topic == "" {
		topic = DefaultTopic
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		Logger:                 kafka.LoggerFunc(func(string, ...interface{}) {}),
		ErrorLogger:            kafka.LoggerFunc(log.Error),
	}
}

// NewKafkaNotifier создает уведомитель поверх writer
func NewKafkaNotifier(writer MessageWriter, metrics Metrics, log Logger) *KafkaNotifier {
	return &KafkaNotifier{
		writer:  writer,
		metrics: metricsOrNoop(metrics),
		log:     log,
	}
}

// BookingCancelled публикует событие отмены с ключом ID бронирования
func (n *KafkaNotifier) BookingCancelled(ctx context.Context, b *domain.Booking) error {
	event := NewBookingCancelledEvent(b)

	value, err := json.Marshal(event)
	if err != nil {
		n.metrics.ObserveNotification(BackendKafka, resultError)
		return fmt.Errorf("%w: failed to encode event: %v", ErrInternal, err)
	}

	msg := kafka.Message{
		Key:   []byte(b.ID.String()),
		Value: value,
		Time:  event.CancelledAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(event.Type)},
			{Key: "event-id", Value: []byte(event.EventID.String())},
		},
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		n.metrics.ObserveNotification(BackendKafka, resultError)
		return fmt.Errorf("%w: booking id=%s: %v", ErrPublish, b.ID, err)
	}

	n.metrics.ObserveNotification(BackendKafka, resultOK)
	n.log.Info("Kafka: booking id=%s cancellation published", b.ID)
	return nil
}

// Close закрывает writer
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
