package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	exceptionRepo "github.com/m04kA/BookEasy-Service/internal/infra/storage/exception"
	ruleRepo "github.com/m04kA/BookEasy-Service/internal/infra/storage/rule"
	serviceRepo "github.com/m04kA/BookEasy-Service/internal/infra/storage/service"
	"github.com/m04kA/BookEasy-Service/internal/slotgen"
	"github.com/m04kA/BookEasy-Service/pkg/calendar"
	"github.com/m04kA/BookEasy-Service/pkg/metrics"
	"github.com/m04kA/BookEasy-Service/pkg/txmanager"
	"github.com/m04kA/BookEasy-Service/pkg/validation"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	serviceRepo   ServiceRepository
	ruleRepo      RuleRepository
	exceptionRepo ExceptionRepository
	txManager     TransactionManager
	timeProvider  TimeProvider
	validator     *validation.Validator
	metrics       Metrics
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	ruleRepo RuleRepository,
	exceptionRepo ExceptionRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		serviceRepo:   serviceRepo,
		ruleRepo:      ruleRepo,
		exceptionRepo: exceptionRepo,
		txManager:     txManager,
		timeProvider:  timeProvider,
		validator:     validation.New(),
		metrics:       metrics,
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
// Слоты пересчитываются внутри сериализуемой транзакции, поэтому два параллельных запроса
// на последнее место не могут оба пройти проверку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("CreateBooking: service=%s, startAt=%s", req.ServiceID, req.StartAt.Format(time.RFC3339))

	// 1. Валидация входных данных до обращения к хранилищу
	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.observe(metrics.AdmissionInvalid)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	// 2. Услуга должна существовать и быть активной
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%s not found", req.ServiceID)
			uc.observe(metrics.AdmissionServiceUnavailable)
			return nil, ErrServiceUnavailable
		}
		uc.logger.Error("CreateBooking: failed to get service id=%s: %v", req.ServiceID, err)
		uc.observe(metrics.AdmissionError)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsBookable() {
		uc.logger.Warn("CreateBooking: service id=%s is inactive", req.ServiceID)
		uc.observe(metrics.AdmissionServiceUnavailable)
		return nil, ErrServiceUnavailable
	}

	now := uc.timeProvider.Now()
	startAt := req.StartAt.In(now.Location())
	day := calendar.StartOfDay(startAt)

	var result *domain.Booking

	// 3. Пересчет слотов и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		result = nil

		slots, err := uc.computeSlots(txCtx, service, day, now)
		if err != nil {
			return err
		}

		slot, found := slotgen.Find(slots, startAt)
		if !found {
			uc.logger.Warn("CreateBooking: %s is not a slot start on %s", startAt.Format(domain.TimeFormat), day.Format(domain.DateFormat))
			return ErrSlotUnavailable
		}
		if !slot.Available {
			uc.logger.Warn("CreateBooking: slot %s unavailable, remaining=%d", startAt.Format(time.RFC3339), slot.RemainingCapacity)
			return ErrSlotUnavailable
		}

		booking := &domain.Booking{
			ID:            uuid.New(),
			ServiceID:     service.ID,
			StartAt:       slot.StartTime,
			EndAt:         slot.StartTime.Add(time.Duration(service.DurationMin) * time.Minute),
			CustomerName:  strings.TrimSpace(req.CustomerName),
			CustomerEmail: strings.TrimSpace(req.CustomerEmail),
			CustomerPhone: emptyToNil(req.CustomerPhone),
			CustomerNote:  emptyToNil(req.CustomerNote),
			Status:        domain.StatusPending,
			// Денормализация данных услуги
			ServiceName:       service.Name,
			ServicePriceCents: service.PriceCents,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrSlotUnavailable):
			uc.observe(metrics.AdmissionSlotUnavailable)
			return nil, err
		case txmanager.IsRetryable(err):
			uc.logger.Warn("CreateBooking: serialization retries exhausted for %s: %v", startAt.Format(time.RFC3339), err)
			uc.observe(metrics.AdmissionConcurrent)
			return nil, ErrConcurrentAdmission
		case errors.Is(err, ErrInternal):
			uc.logger.Error("CreateBooking: %v", err)
			uc.observe(metrics.AdmissionError)
			return nil, err
		default:
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			uc.observe(metrics.AdmissionError)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	result.Service = service
	uc.observe(metrics.AdmissionAccepted)
	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)

	return result, nil
}

// computeSlots читает правило, исключение и бронирования дня и строит слоты
func (uc *UseCase) computeSlots(ctx context.Context, service *domain.Service, day, now time.Time) ([]domain.Slot, error) {
	rule, err := uc.ruleRepo.GetByWeekday(ctx, calendar.WeekdayIndex(day))
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to get rule: %w", ErrInternal, err)
	}

	exception, err := uc.exceptionRepo.GetByDate(ctx, day)
	if err != nil && !errors.Is(err, exceptionRepo.ErrExceptionNotFound) {
		return nil, fmt.Errorf("%w: failed to get exception: %w", ErrInternal, err)
	}

	// Бронирования дня блокируются до конца транзакции
	bookings, err := uc.bookingRepo.ListOverlapping(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
	}

	return slotgen.Compute(slotgen.Input{
		DurationMin: service.DurationMin,
		Rule:        rule,
		Exception:   exception,
		Bookings:    bookings,
		Date:        day,
		Now:         now,
	}), nil
}

// validateRequest собирает все нарушения сразу
func (uc *UseCase) validateRequest(req *Request) error {
	var errs validation.Errors

	if err := uc.validator.Struct(req); err != nil {
		if !errors.As(err, &errs) {
			return err
		}
	}

	// Нулевые значения приходят и при пустом, и при неразобранном поле
	if req.ServiceID == uuid.Nil {
		errs.Add("serviceId", "serviceId is required and must be a valid UUID")
	}
	if req.StartAt.IsZero() {
		errs.Add("startAt", "startAt is required and must be an RFC3339 time")
	}

	return errs.OrNil()
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveAdmission(outcome)
	}
}

func emptyToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
