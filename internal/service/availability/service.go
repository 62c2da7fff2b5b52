package availability

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
	"github.com/m04kA/BookEasy-Service/internal/service/availability/models"
	"github.com/m04kA/BookEasy-Service/pkg/calendar"
	"github.com/m04kA/BookEasy-Service/pkg/types"
	"github.com/m04kA/BookEasy-Service/pkg/validation"
)

// Service сервис управления рабочими часами и исключениями
type Service struct {
	ruleRepo      RuleRepository
	exceptionRepo ExceptionRepository
	validator     *validation.Validator
	location      *time.Location
	logger        Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	ruleRepo RuleRepository,
	exceptionRepo ExceptionRepository,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}

	return &Service{
		ruleRepo:      ruleRepo,
		exceptionRepo: exceptionRepo,
		validator:     validation.New(),
		location:      location,
		logger:        logger,
	}
}

// ListRules возвращает правила, упорядоченные по дню недели
func (s *Service) ListRules(ctx context.Context) ([]*models.RuleResponse, error) {
	rules, err := s.ruleRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListRules: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListRules - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.RuleResponse, 0, len(rules))
	for _, rule := range rules {
		result = append(result, models.FromDomainRule(rule))
	}
	return result, nil
}

// CreateRule создает правило для дня недели.
// На каждый день недели допускается только одно правило.
func (s *Service) CreateRule(ctx context.Context, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	errs, err := s.validate(req)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateRule - validation: %v", ErrInternal, err)
	}

	rule := req.ToDomainRule()
	checkHours(&errs, "endTime", rule.StartTime, rule.EndTime)
	if len(errs) > 0 {
		s.logger.Warn("CreateRule: validation failed: %v", errs)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, errs)
	}

	existing, err := s.ruleRepo.GetByWeekday(ctx, rule.DayOfWeek)
	if err != nil && !errors.Is(err, ruleRepo.ErrRuleNotFound) {
		s.logger.Error("CreateRule: failed to check existing rule: %v", err)
		return nil, fmt.Errorf("%w: CreateRule - check existing: %v", ErrInternal, err)
	}
	if existing != nil {
		s.logger.Warn("CreateRule: rule for weekday=%d already exists", rule.DayOfWeek)
		return nil, ErrDuplicateRule
	}

	created, err := s.ruleRepo.Create(ctx, rule)
	if err != nil {
		// гонка между проверкой и вставкой ловится уникальным индексом
		if errors.Is(err, ruleRepo.ErrDuplicateRule) {
			s.logger.Warn("CreateRule: rule for weekday=%d already exists", rule.DayOfWeek)
			return nil, ErrDuplicateRule
		}
		s.logger.Error("CreateRule: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateRule: created rule id=%s for weekday=%d", created.ID, created.DayOfWeek)
	return models.FromDomainRule(created), nil
}

// UpdateRule частично обновляет правило
func (s *Service) UpdateRule(ctx context.Context, id uuid.UUID, req *models.UpdateRuleRequest) (*models.RuleResponse, error) {
	errs, err := s.validate(req)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateRule - validation: %v", ErrInternal, err)
	}

	rule, err := s.ruleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("UpdateRule: rule id=%s not found", id)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("UpdateRule: repository error for rule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateRule - get rule: %v", ErrInternal, err)
	}

	req.ApplyTo(rule)
	checkHours(&errs, "endTime", rule.StartTime, rule.EndTime)
	if len(errs) > 0 {
		s.logger.Warn("UpdateRule: validation failed for rule id=%s: %v", id, errs)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, errs)
	}

	updated, err := s.ruleRepo.Update(ctx, rule)
	if err != nil {
		switch {
		case errors.Is(err, ruleRepo.ErrRuleNotFound):
			return nil, ErrRuleNotFound
		case errors.Is(err, ruleRepo.ErrDuplicateRule):
			s.logger.Warn("UpdateRule: weekday=%d is taken by another rule", rule.DayOfWeek)
			return nil, ErrDuplicateRule
		}
		s.logger.Error("UpdateRule: repository error for rule id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateRule: updated rule id=%s", id)
	return models.FromDomainRule(updated), nil
}

// DeleteRule удаляет правило. День без правила закрыт для записи.
func (s *Service) DeleteRule(ctx context.Context, id uuid.UUID) error {
	if err := s.ruleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, ruleRepo.ErrRuleNotFound) {
			s.logger.Warn("DeleteRule: rule id=%s not found", id)
			return ErrRuleNotFound
		}
		s.logger.Error("DeleteRule: repository error for rule id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteRule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteRule: deleted rule id=%s", id)
	return nil
}

// ListExceptions возвращает исключения по возрастанию даты
func (s *Service) ListExceptions(ctx context.Context) ([]*models.ExceptionResponse, error) {
	exceptions, err := s.exceptionRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListExceptions: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListExceptions - repository error: %v", ErrInternal, err)
	}

	result := make([]*models.ExceptionResponse, 0, len(exceptions))
	for _, exc := range exceptions {
		result = append(result, models.FromDomainException(exc))
	}
	return result, nil
}

// CreateException создает исключение на дату (дата приводится к полуночи в часовом поясе сервиса)
func (s *Service) CreateException(ctx context.Context, req *models.CreateExceptionRequest) (*models.ExceptionResponse, error) {
	req.CustomStartTime = blankToNil(req.CustomStartTime)
	req.CustomEndTime = blankToNil(req.CustomEndTime)

	errs, err := s.validate(req)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateException - validation: %v", ErrInternal, err)
	}

	date, err := s.parseDate(req.Date)
	if err != nil && req.Date != "" {
		errs.Add("date", "date must be YYYY-MM-DD or RFC3339")
	}

	exc := &domain.AvailabilityException{
		Date:     date,
		IsClosed: req.IsClosed,
	}
	if req.CustomStartTime != nil {
		ts := types.TimeString(*req.CustomStartTime)
		exc.CustomStartTime = &ts
	}
	if req.CustomEndTime != nil {
		ts := types.TimeString(*req.CustomEndTime)
		exc.CustomEndTime = &ts
	}

	if exc.CustomStartTime != nil && exc.CustomEndTime != nil {
		checkHours(&errs, "customEndTime", *exc.CustomStartTime, *exc.CustomEndTime)
	}
	if len(errs) > 0 {
		s.logger.Warn("CreateException: validation failed for date=%s: %v", req.Date, errs)
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, errs)
	}

	created, err := s.exceptionRepo.Create(ctx, exc)
	if err != nil {
		if errors.Is(err, exceptionRepo.ErrDuplicateException) {
			s.logger.Warn("CreateException: exception for date=%s already exists", date.Format(domain.DateFormat))
			return nil, ErrDuplicateException
		}
		s.logger.Error("CreateException: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateException: created exception id=%s for date=%s closed=%t",
		created.ID, created.Date.Format(domain.DateFormat), created.IsClosed)
	return models.FromDomainException(created), nil
}

// DeleteException удаляет исключение
func (s *Service) DeleteException(ctx context.Context, id uuid.UUID) error {
	if err := s.exceptionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, exceptionRepo.ErrExceptionNotFound) {
			s.logger.Warn("DeleteException: exception id=%s not found", id)
			return ErrExceptionNotFound
		}
		s.logger.Error("DeleteException: repository error for exception id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteException - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteException: deleted exception id=%s", id)
	return nil
}

func (s *Service) parseDate(value string) (time.Time, error) {
	if d, err := time.ParseInLocation(domain.DateFormat, value, s.location); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}
	return calendar.StartOfDay(t.In(s.location)), nil
}

// validate возвращает нарушения тегов списком, чтобы к ним можно было добавить остальные проверки
func (s *Service) validate(req interface{}) (validation.Errors, error) {
	err := s.validator.Struct(req)
	if err == nil {
		return nil, nil
	}

	var errs validation.Errors
	if !errors.As(err, &errs) {
		return nil, err
	}
	return errs, nil
}

// checkHours проверяет, что начало строго раньше конца.
// Неразобранное время уже отмечено тегом hhmm и здесь пропускается.
func checkHours(errs *validation.Errors, field string, start, end types.TimeString) {
	if start.Validate() != nil || end.Validate() != nil {
		return
	}
	if !start.IsBefore(end) {
		errs.Add(field, fmt.Sprintf("%s must be after start time", field))
	}
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
