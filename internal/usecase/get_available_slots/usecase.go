package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	exceptionRepo "github.com/m04kA/BookEasy-Service/internal/infra/storage/exception"
	ruleRepo "github.com/m04kA/BookEasy-Service/internal/infra/storage/rule"
	serviceRepo "github.com/m04kA/BookEasy-Service/internal/infra/storage/service"
	"github.com/m04kA/BookEasy-Service/internal/slotgen"
	"github.com/m04kA/BookEasy-Service/pkg/calendar"
	"github.com/m04kA/BookEasy-Service/pkg/validation"
)

// UseCase use case для получения слотов на дату
type UseCase struct {
	bookingRepo   BookingRepository
	serviceRepo   ServiceRepository
	ruleRepo      RuleRepository
	exceptionRepo ExceptionRepository
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	ruleRepo RuleRepository,
	exceptionRepo ExceptionRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		serviceRepo:   serviceRepo,
		ruleRepo:      ruleRepo,
		exceptionRepo: exceptionRepo,
		timeProvider:  timeProvider,
		logger:        logger,
	}
}

// Execute возвращает все слоты даты, в том числе занятые и прошедшие
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s", req.ServiceID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsBookable() {
		uc.logger.Warn("GetAvailableSlots: service id=%s is inactive", req.ServiceID)
		return nil, ErrServiceUnavailable
	}

	now := uc.timeProvider.Now()
	// Календарная дата берется в часовом поясе req.Date (транспорт разбирает ее в поясе сервиса)
	day := calendar.StartOfDay(req.Date)

	response := &Response{ServiceID: service.ID, Date: day, Slots: []domain.Slot{}}

	rule, err := uc.ruleRepo.GetByWeekday(ctx, calendar.WeekdayIndex(day))
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			uc.logger.Info("GetAvailableSlots: no rule for weekday=%d", calendar.WeekdayIndex(day))
			return response, nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get rule: %v", err)
		return nil, fmt.Errorf("%w: failed to get rule: %v", ErrInternal, err)
	}

	exception, err := uc.exceptionRepo.GetByDate(ctx, day)
	if err != nil && !errors.Is(err, exceptionRepo.ErrExceptionNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get exception: %v", err)
		return nil, fmt.Errorf("%w: failed to get exception: %v", ErrInternal, err)
	}
	if exception != nil && exception.IsClosed {
		uc.logger.Info("GetAvailableSlots: %s is closed", day.Format(domain.DateFormat))
		return response, nil
	}

	bookings, err := uc.bookingRepo.ListOverlapping(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	response.Slots = slotgen.Compute(slotgen.Input{
		DurationMin: service.DurationMin,
		Rule:        rule,
		Exception:   exception,
		Bookings:    bookings,
		Date:        day,
		Now:         now,
	})

	uc.logger.Info("GetAvailableSlots: %d slots for service=%s on %s", len(response.Slots), service.ID, day.Format(domain.DateFormat))

	return response, nil
}

func validateRequest(req *Request) error {
	var errs validation.Errors

	if req.ServiceID == uuid.Nil {
		errs.Add("serviceId", "serviceId is required")
	}
	if req.Date.IsZero() {
		errs.Add("date", "date is required")
	}

	return errs.OrNil()
}
