package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	bookingRepo "github.com/m04kA/BookEasy-Service/internal/infra/storage/booking"
	"github.com/m04kA/BookEasy-Service/internal/service/bookings/models"
	"github.com/m04kA/BookEasy-Service/pkg/validation"
)

// DefaultNotifyTimeout время на отправку уведомления об отмене
const DefaultNotifyTimeout = 10 * time.Second

// Service сервис жизненного цикла бронирований (операции администратора)
type Service struct {
	bookingRepo   BookingRepository
	txManager     TransactionManager
	notifier      Notifier
	validator     *validation.Validator
	location      *time.Location
	notifyTimeout time.Duration
	logger        Logger

	// незавершенные уведомления, ждем их при остановке
	notifications sync.WaitGroup
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	location *time.Location,
	notifyTimeout time.Duration,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	if notifyTimeout <= 0 {
		notifyTimeout = DefaultNotifyTimeout
	}

	return &Service{
		bookingRepo:   bookingRepo,
		txManager:     txManager,
		notifier:      notifier,
		validator:     validation.New(),
		location:      location,
		notifyTimeout: notifyTimeout,
		logger:        logger,
	}
}

// GetByID получает бронирование с услугой и заметками (новые сверху)
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.load(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	notes, err := s.bookingRepo.ListNotes(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to list notes for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - list notes: %v", ErrInternal, err)
	}
	booking.Notes = notes

	return booking, nil
}

// GetPublicByID получает бронирование для клиента (без заметок администратора)
func (s *Service) GetPublicByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	return s.load(ctx, "GetPublicByID", id)
}

// List возвращает страницу бронирований по фильтрам
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*domain.BookingPage, error) {
	query, err := req.ToDomainQuery(s.location)
	if err != nil {
		s.logger.Warn("List: invalid query: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	bookings, total, err := s.bookingRepo.List(ctx, query)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrUnknownSortField) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	if bookings == nil {
		bookings = []*domain.Booking{}
	}

	return &domain.BookingPage{
		Data:       bookings,
		Pagination: domain.NewPagination(query.Page, query.Limit, total),
	}, nil
}

// Update частично обновляет бронирование.
// Смена статуса проверяется по таблице переходов, тот же статус ничего не меняет.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateBookingRequest) (*domain.Booking, error) {
	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return s.apply(ctx, "Update", id, req.ToDomainPatch())
}

// Cancel отменяет бронирование и асинхронно уведомляет клиента.
// Повторная отмена возвращает бронирование без изменений.
func (s *Service) Cancel(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	status := domain.StatusCancelled
	return s.apply(ctx, "Cancel", id, &domain.BookingPatch{Status: &status})
}

// AddNote добавляет заметку администратора к бронированию
func (s *Service) AddNote(ctx context.Context, id uuid.UUID, req *models.AddNoteRequest) (*domain.BookingNote, error) {
	req.Content = strings.TrimSpace(req.Content)
	if err := s.validator.Struct(req); err != nil {
		s.logger.Warn("AddNote: validation failed for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if _, err := s.load(ctx, "AddNote", id); err != nil {
		return nil, err
	}

	note, err := s.bookingRepo.AddNote(ctx, &domain.BookingNote{
		BookingID: id,
		Content:   req.Content,
	})
	if err != nil {
		s.logger.Error("AddNote: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: AddNote - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddNote: note id=%s added to booking id=%s", note.ID, id)
	return note, nil
}

// Wait дожидается отправки уже запущенных уведомлений
func (s *Service) Wait() {
	s.notifications.Wait()
}

// apply применяет патч под блокировкой строки бронирования
func (s *Service) apply(ctx context.Context, op string, id uuid.UUID, patch *domain.BookingPatch) (*domain.Booking, error) {
	var cancelled bool

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.bookingRepo.GetByIDForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: %s - get booking: %v", ErrInternal, op, err)
		}

		if patch.Status != nil {
			next := *patch.Status
			switch {
			case next == current.Status:
				// тот же статус - без перехода
				patch.Status = nil
			case !current.Status.CanTransitionTo(next):
				s.logger.Warn("%s: booking id=%s transition %s -> %s rejected", op, id, current.Status, next)
				return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, next)
			default:
				cancelled = next == domain.StatusCancelled
			}
		}

		if patch.IsEmpty() {
			return nil
		}

		if err := s.bookingRepo.Update(ctx, id, patch); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: %s - update booking: %v", ErrInternal, op, err)
		}

		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound):
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, err
		case errors.Is(err, ErrInvalidTransition):
			return nil, err
		case errors.Is(err, ErrInternal):
			s.logger.Error("%s: booking id=%s: %v", op, id, err)
			return nil, err
		default:
			s.logger.Error("%s: transaction error for booking id=%s: %v", op, id, err)
			return nil, fmt.Errorf("%w: %s - transaction: %v", ErrInternal, op, err)
		}
	}

	booking, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cancelled {
		s.logger.Info("%s: booking id=%s cancelled", op, id)
		s.notifyCancelled(booking)
	}

	return booking, nil
}

// notifyCancelled отправляет уведомление в фоне, ошибки только логируются
func (s *Service) notifyCancelled(booking *domain.Booking) {
	if s.notifier == nil {
		return
	}

	s.notifications.Add(1)
	go func() {
		defer s.notifications.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()

		if err := s.notifier.BookingCancelled(ctx, booking); err != nil {
			s.logger.Error("Cancel: failed to notify about booking id=%s: %v", booking.ID, err)
		}
	}()
}

func (s *Service) load(ctx context.Context, op string, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
