package reports

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	"github.com/m04kA/BookEasy-Service/pkg/logger"
)

var loc = time.FixedZone("CET", 3600)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type passTx struct{}

func (passTx) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// memBookings считает бронирования в памяти по тем же правилам, что и SQL фильтр
type memBookings struct {
	bookings []*domain.Booking
	err      error
}

func (m *memBookings) Count(_ context.Context, f domain.BookingCountFilter) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := 0
	for _, b := range m.bookings {
		if f.StartFrom != nil && b.StartAt.Before(*f.StartFrom) {
			continue
		}
		if f.StartTo != nil && b.StartAt.After(*f.StartTo) {
			continue
		}
		if f.UpdatedFrom != nil && b.UpdatedAt.Before(*f.UpdatedFrom) {
			continue
		}
		if f.UpdatedTo != nil && b.UpdatedAt.After(*f.UpdatedTo) {
			continue
		}
		if f.Status != nil && b.Status != *f.Status {
			continue
		}
		if f.ExcludeStatus != nil && b.Status == *f.ExcludeStatus {
			continue
		}
		n++
	}
	return n, nil
}

func (m *memBookings) ListRecent(_ context.Context, limit int) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0, limit)
	for _, b := range m.bookings {
		if b.Status != domain.StatusCancelled && len(result) < limit {
			result = append(result, b)
		}
	}
	return result, nil
}

func (m *memBookings) ListAll(_ context.Context) ([]*domain.Booking, error) {
	return m.bookings, m.err
}

func booking(start time.Time, status domain.BookingStatus, updated time.Time) *domain.Booking {
	return &domain.Booking{
		ID:            uuid.New(),
		StartAt:       start,
		EndAt:         start.Add(30 * time.Minute),
		Status:        status,
		ServiceName:   "Coupe",
		CustomerName:  "Marie",
		CustomerEmail: "marie@example.com",
		UpdatedAt:     updated,
	}
}

func TestDashboard_Counters(t *testing.T) {
	// среда 4 марта 2026, 12:00
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, loc)
	repo := &memBookings{bookings: []*domain.Booking{
		booking(time.Date(2026, 3, 4, 9, 0, 0, 0, loc), domain.StatusConfirmed, now),  // сегодня
		booking(time.Date(2026, 3, 4, 15, 0, 0, 0, loc), domain.StatusPending, now),   // сегодня
		booking(time.Date(2026, 3, 4, 16, 0, 0, 0, loc), domain.StatusCancelled, now), // отменено сегодня
		booking(time.Date(2026, 3, 2, 10, 0, 0, 0, loc), domain.StatusCompleted, now), // понедельник
		booking(time.Date(2026, 3, 20, 10, 0, 0, 0, loc), domain.StatusPending, now),  // этот месяц
		booking(time.Date(2026, 4, 2, 10, 0, 0, 0, loc), domain.StatusPending, now),   // следующий месяц
	}}

	svc := NewService(repo, passTx{}, fixedClock{now: now}, logger.Nop())

	got, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, got.Today)
	assert.Equal(t, 3, got.Week)
	assert.Equal(t, 4, got.Month)
	assert.Equal(t, 1, got.CancelledThisWeek)
	assert.Equal(t, 3, got.Pending)
	assert.Len(t, got.Recent, 5)
}

func TestDashboard_RepositoryError(t *testing.T) {
	svc := NewService(&memBookings{err: errors.New("db down")}, passTx{}, fixedClock{now: time.Now()}, logger.Nop())

	_, err := svc.Dashboard(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExportCSV(t *testing.T) {
	start := time.Date(2026, 3, 4, 8, 30, 0, 0, time.UTC)
	b := booking(start, domain.StatusConfirmed, start)
	b.CustomerName = "Dupont; Jean"

	svc := NewService(&memBookings{bookings: []*domain.Booking{b}}, passTx{}, fixedClock{now: time.Now().In(loc)}, logger.Nop())

	var buf bytes.Buffer
	require.NoError(t, svc.ExportCSV(context.Background(), &buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID;Service;Customer;Email;Date;Time;Status", lines[0])
	// время переводится в часовой пояс сервиса, разделитель в значении экранируется
	assert.Equal(t, b.ID.String()+`;Coupe;"Dupont; Jean";marie@example.com;2026-03-04;09:30;CONFIRMED`, lines[1])
}
