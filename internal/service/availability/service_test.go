package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	exceptionRepo "github.com/m04kA/BookEasy-Service/internal/infra/storage/exception"
	ruleRepo "github.com/m04kA/BookEasy-Service/internal/infra/storage/rule"
	"github.com/m04kA/BookEasy-Service/internal/service/availability/models"
	"github.com/m04kA/BookEasy-Service/pkg/logger"
	"github.com/m04kA/BookEasy-Service/pkg/ptr"
	"github.com/m04kA/BookEasy-Service/pkg/validation"
)

type fakeRules struct {
	rules     map[uuid.UUID]*domain.AvailabilityRule
	createErr error
}

func newFakeRules(rules ...*domain.AvailabilityRule) *fakeRules {
	f := &fakeRules{rules: make(map[uuid.UUID]*domain.AvailabilityRule)}
	for _, r := range rules {
		f.rules[r.ID] = r
	}
	return f
}

func (f *fakeRules) Create(_ context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	rule.ID = uuid.New()
	f.rules[rule.ID] = rule
	return rule, nil
}

func (f *fakeRules) GetByID(_ context.Context, id uuid.UUID) (*domain.AvailabilityRule, error) {
	r, ok := f.rules[id]
	if !ok {
		return nil, ruleRepo.ErrRuleNotFound
	}
	c := *r
	return &c, nil
}

func (f *fakeRules) GetByWeekday(_ context.Context, weekday int) (*domain.AvailabilityRule, error) {
	for _, r := range f.rules {
		if r.DayOfWeek == weekday {
			return r, nil
		}
	}
	return nil, ruleRepo.ErrRuleNotFound
}

func (f *fakeRules) List(_ context.Context) ([]*domain.AvailabilityRule, error) {
	result := make([]*domain.AvailabilityRule, 0, len(f.rules))
	for _, r := range f.rules {
		result = append(result, r)
	}
	return result, nil
}

func (f *fakeRules) Update(_ context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error) {
	if _, ok := f.rules[rule.ID]; !ok {
		return nil, ruleRepo.ErrRuleNotFound
	}
	for id, r := range f.rules {
		if id != rule.ID && r.DayOfWeek == rule.DayOfWeek {
			return nil, ruleRepo.ErrDuplicateRule
		}
	}
	f.rules[rule.ID] = rule
	return rule, nil
}

func (f *fakeRules) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.rules[id]; !ok {
		return ruleRepo.ErrRuleNotFound
	}
	delete(f.rules, id)
	return nil
}

type fakeExceptions struct {
	byDate map[string]*domain.AvailabilityException
}

func (f *fakeExceptions) Create(_ context.Context, exc *domain.AvailabilityException) (*domain.AvailabilityException, error) {
	key := exc.Date.Format(domain.DateFormat)
	if _, ok := f.byDate[key]; ok {
		return nil, exceptionRepo.ErrDuplicateException
	}
	exc.ID = uuid.New()
	f.byDate[key] = exc
	return exc, nil
}

func (f *fakeExceptions) GetByDate(_ context.Context, date time.Time) (*domain.AvailabilityException, error) {
	e, ok := f.byDate[date.Format(domain.DateFormat)]
	if !ok {
		return nil, exceptionRepo.ErrExceptionNotFound
	}
	return e, nil
}

func (f *fakeExceptions) List(_ context.Context) ([]*domain.AvailabilityException, error) {
	result := make([]*domain.AvailabilityException, 0, len(f.byDate))
	for _, e := range f.byDate {
		result = append(result, e)
	}
	return result, nil
}

func (f *fakeExceptions) Delete(_ context.Context, id uuid.UUID) error {
	for k, e := range f.byDate {
		if e.ID == id {
			delete(f.byDate, k)
			return nil
		}
	}
	return exceptionRepo.ErrExceptionNotFound
}

var loc = time.FixedZone("CET", 3600)

func newService(rules *fakeRules) (*Service, *fakeExceptions) {
	exceptions := &fakeExceptions{byDate: make(map[string]*domain.AvailabilityException)}
	return NewService(rules, exceptions, loc, logger.Nop()), exceptions
}

func TestCreateRule_AppliesDefaults(t *testing.T) {
	svc, _ := newService(newFakeRules())

	got, err := svc.CreateRule(context.Background(), &models.CreateRuleRequest{
		DayOfWeek: ptr.Ptr(0),
		StartTime: "09:00",
		EndTime:   "18:00",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, got.DayOfWeek)
	assert.Equal(t, 30, got.SlotStepMin)
	assert.Equal(t, 1, got.Capacity)
}

func TestCreateRule_DuplicateWeekday(t *testing.T) {
	svc, _ := newService(newFakeRules(&domain.AvailabilityRule{
		ID: uuid.New(), DayOfWeek: 2, StartTime: "09:00", EndTime: "12:00",
	}))

	_, err := svc.CreateRule(context.Background(), &models.CreateRuleRequest{
		DayOfWeek: ptr.Ptr(2),
		StartTime: "13:00",
		EndTime:   "17:00",
	})
	assert.ErrorIs(t, err, ErrDuplicateRule)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestCreateRule_DuplicateCaughtByIndex(t *testing.T) {
	rules := newFakeRules()
	rules.createErr = ruleRepo.ErrDuplicateRule
	svc, _ := newService(rules)

	_, err := svc.CreateRule(context.Background(), &models.CreateRuleRequest{
		DayOfWeek: ptr.Ptr(4),
		StartTime: "09:00",
		EndTime:   "17:00",
	})
	assert.ErrorIs(t, err, ErrDuplicateRule)
}

func TestCreateRule_Validation(t *testing.T) {
	svc, _ := newService(newFakeRules())

	_, err := svc.CreateRule(context.Background(), &models.CreateRuleRequest{
		DayOfWeek:   ptr.Ptr(7),
		StartTime:   "9h",
		EndTime:     "18:00",
		SlotStepMin: ptr.Ptr(1),
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))
	assert.Len(t, errs, 3)
}

func TestCreateRule_EndBeforeStart(t *testing.T) {
	svc, _ := newService(newFakeRules())

	_, err := svc.CreateRule(context.Background(), &models.CreateRuleRequest{
		DayOfWeek: ptr.Ptr(1),
		StartTime: "18:00",
		EndTime:   "09:00",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateRule_ReportsHoursWithOtherViolations(t *testing.T) {
	svc, _ := newService(newFakeRules())

	_, err := svc.CreateRule(context.Background(), &models.CreateRuleRequest{
		DayOfWeek: ptr.Ptr(1),
		StartTime: "18:00",
		EndTime:   "09:00",
		Capacity:  ptr.Ptr(0),
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	assert.ElementsMatch(t, []string{"capacity", "endTime"}, errorFields(t, err))
}

func TestUpdateRule_ReportsHoursWithOtherViolations(t *testing.T) {
	id := uuid.New()
	svc, _ := newService(newFakeRules(&domain.AvailabilityRule{
		ID: id, DayOfWeek: 0, StartTime: "09:00", EndTime: "18:00", SlotStepMin: 30, Capacity: 1,
	}))

	_, err := svc.UpdateRule(context.Background(), id, &models.UpdateRuleRequest{
		EndTime:     ptr.Ptr("08:00"),
		SlotStepMin: ptr.Ptr(500),
	})
	require.ErrorIs(t, err, ErrInvalidInput)

	assert.ElementsMatch(t, []string{"slotStepMin", "endTime"}, errorFields(t, err))
}

func TestUpdateRule_Partial(t *testing.T) {
	id := uuid.New()
	svc, _ := newService(newFakeRules(&domain.AvailabilityRule{
		ID: id, DayOfWeek: 0, StartTime: "09:00", EndTime: "18:00", SlotStepMin: 30, Capacity: 1,
	}))

	got, err := svc.UpdateRule(context.Background(), id, &models.UpdateRuleRequest{Capacity: ptr.Ptr(3)})
	require.NoError(t, err)

	assert.Equal(t, 3, got.Capacity)
	assert.Equal(t, "09:00", got.StartTime)
}

func TestUpdateRule_WeekdayTaken(t *testing.T) {
	id := uuid.New()
	svc, _ := newService(newFakeRules(
		&domain.AvailabilityRule{ID: id, DayOfWeek: 0, StartTime: "09:00", EndTime: "18:00"},
		&domain.AvailabilityRule{ID: uuid.New(), DayOfWeek: 1, StartTime: "09:00", EndTime: "18:00"},
	))

	_, err := svc.UpdateRule(context.Background(), id, &models.UpdateRuleRequest{DayOfWeek: ptr.Ptr(1)})
	assert.ErrorIs(t, err, ErrDuplicateRule)
}

func TestUpdateRule_NotFound(t *testing.T) {
	svc, _ := newService(newFakeRules())

	_, err := svc.UpdateRule(context.Background(), uuid.New(), &models.UpdateRuleRequest{})
	assert.ErrorIs(t, err, ErrRuleNotFound)

	err = svc.DeleteRule(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrRuleNotFound)
}

func TestCreateException_TruncatesToLocalMidnight(t *testing.T) {
	svc, exceptions := newService(newFakeRules())

	got, err := svc.CreateException(context.Background(), &models.CreateExceptionRequest{
		Date:     "2026-12-24T23:30:00Z",
		IsClosed: true,
	})
	require.NoError(t, err)

	// 23:30 UTC это уже 25 декабря в CET
	assert.Equal(t, "2026-12-25", got.Date)
	stored := exceptions.byDate["2026-12-25"]
	require.NotNil(t, stored)
	assert.Equal(t, time.Date(2026, 12, 25, 0, 0, 0, 0, loc), stored.Date)
}

func TestCreateException_CustomHours(t *testing.T) {
	svc, _ := newService(newFakeRules())

	got, err := svc.CreateException(context.Background(), &models.CreateExceptionRequest{
		Date:            "2026-03-04",
		CustomStartTime: ptr.Ptr("12:00"),
		CustomEndTime:   ptr.Ptr(""),
	})
	require.NoError(t, err)

	assert.Equal(t, "12:00", *got.CustomStartTime)
	assert.Nil(t, got.CustomEndTime)
}

func TestCreateException_Duplicate(t *testing.T) {
	svc, _ := newService(newFakeRules())

	_, err := svc.CreateException(context.Background(), &models.CreateExceptionRequest{Date: "2026-03-04", IsClosed: true})
	require.NoError(t, err)

	_, err = svc.CreateException(context.Background(), &models.CreateExceptionRequest{Date: "2026-03-04"})
	assert.ErrorIs(t, err, ErrDuplicateException)
}

func TestCreateException_InvalidInput(t *testing.T) {
	svc, _ := newService(newFakeRules())

	_, err := svc.CreateException(context.Background(), &models.CreateExceptionRequest{Date: "04/03/2026"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CreateException(context.Background(), &models.CreateExceptionRequest{
		Date:            "2026-03-04",
		CustomStartTime: ptr.Ptr("15:00"),
		CustomEndTime:   ptr.Ptr("10:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateException_ReportsDateWithOtherViolations(t *testing.T) {
	svc, exceptions := newService(newFakeRules())

	_, err := svc.CreateException(context.Background(), &models.CreateExceptionRequest{
		Date:            "not-a-date",
		CustomStartTime: ptr.Ptr("25:00"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.ElementsMatch(t, []string{"date", "customStartTime"}, errorFields(t, err))

	_, err = svc.CreateException(context.Background(), &models.CreateExceptionRequest{
		Date:            "04/03/2026",
		CustomStartTime: ptr.Ptr("15:00"),
		CustomEndTime:   ptr.Ptr("10:00"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.ElementsMatch(t, []string{"date", "customEndTime"}, errorFields(t, err))

	assert.Empty(t, exceptions.byDate)
}

func errorFields(t *testing.T, err error) []string {
	t.Helper()

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestDeleteException_NotFound(t *testing.T) {
	svc, _ := newService(newFakeRules())

	err := svc.DeleteException(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrExceptionNotFound)
}
