package reports

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	"github.com/m04kA/BookEasy-Service/pkg/calendar"
)

// CSVSeparator разделитель колонок выгрузки (открывается в Excel без настройки)
const CSVSeparator = ';'

var csvHeader = []string{"ID", "Service", "Customer", "Email", "Date", "Time", "Status"}

// Dashboard сводка для панели администратора
type Dashboard struct {
	Today             int
	Week              int
	Month             int
	CancelledThisWeek int
	Pending           int
	Recent            []*domain.Booking
}

// Service сервис отчетов
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Dashboard собирает счетчики за день, неделю и месяц по времени начала.
// Отмененные в этих счетчиках не учитываются, отмены недели считаются по времени изменения.
func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	now := s.timeProvider.Now()

	dayStart, dayEnd := calendar.StartOfDay(now), calendar.EndOfDay(now)
	weekStart, weekEnd := calendar.StartOfWeek(now), calendar.EndOfWeek(now)
	monthStart := calendar.StartOfMonth(now)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	cancelled := domain.StatusCancelled
	pending := domain.StatusPending

	dashboard := &Dashboard{}

	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		counters := []struct {
			name   string
			target *int
			filter domain.BookingCountFilter
		}{
			{"today", &dashboard.Today, domain.BookingCountFilter{StartFrom: &dayStart, StartTo: &dayEnd, ExcludeStatus: &cancelled}},
			{"week", &dashboard.Week, domain.BookingCountFilter{StartFrom: &weekStart, StartTo: &weekEnd, ExcludeStatus: &cancelled}},
			{"month", &dashboard.Month, domain.BookingCountFilter{StartFrom: &monthStart, StartTo: &monthEnd, ExcludeStatus: &cancelled}},
			{"cancelledThisWeek", &dashboard.CancelledThisWeek, domain.BookingCountFilter{UpdatedFrom: &weekStart, UpdatedTo: &weekEnd, Status: &cancelled}},
			{"pending", &dashboard.Pending, domain.BookingCountFilter{Status: &pending}},
		}

		for _, c := range counters {
			count, err := s.bookingRepo.Count(ctx, c.filter)
			if err != nil {
				return fmt.Errorf("count %s: %w", c.name, err)
			}
			*c.target = count
		}

		recent, err := s.bookingRepo.ListRecent(ctx, domain.RecentBookingsSize)
		if err != nil {
			return fmt.Errorf("list recent: %w", err)
		}
		dashboard.Recent = recent

		return nil
	})
	if err != nil {
		s.logger.Error("Dashboard: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - %v", ErrInternal, err)
	}

	if dashboard.Recent == nil {
		dashboard.Recent = []*domain.Booking{}
	}

	return dashboard, nil
}

// ExportCSV пишет все бронирования (новые первыми) в w.
// Дата и время выводятся в часовом поясе сервиса.
func (s *Service) ExportCSV(ctx context.Context, w io.Writer) error {
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ExportCSV: repository error: %v", err)
		return fmt.Errorf("%w: ExportCSV - repository error: %v", ErrInternal, err)
	}

	loc := s.timeProvider.Now().Location()

	writer := csv.NewWriter(w)
	writer.Comma = CSVSeparator

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("%w: ExportCSV - write header: %v", ErrInternal, err)
	}

	for _, b := range bookings {
		start := b.StartAt.In(loc)
		record := []string{
			b.ID.String(),
			b.ServiceName,
			b.CustomerName,
			b.CustomerEmail,
			start.Format(domain.DateFormat),
			start.Format(domain.TimeFormat),
			string(b.Status),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("%w: ExportCSV - write record: %v", ErrInternal, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: ExportCSV - flush: %v", ErrInternal, err)
	}

	s.logger.Info("ExportCSV: exported %d bookings", len(bookings))
	return nil
}
