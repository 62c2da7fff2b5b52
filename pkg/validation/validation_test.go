package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ruleInput struct {
	DayOfWeek int    `json:"dayOfWeek" validate:"gte=0,lte=6"`
	StartTime string `json:"startTime" validate:"required,hhmm"`
	Email     string `json:"email" validate:"omitempty,email"`
}

func TestStruct_CollectsAllFieldErrors(t *testing.T) {
	v := New()

	err := v.Struct(ruleInput{DayOfWeek: 7, StartTime: "25:00", Email: "nope"})
	require.Error(t, err)

	var errs Errors
	require.True(t, errors.As(err, &errs))
	require.Len(t, errs, 3)

	fields := []string{errs[0].Field, errs[1].Field, errs[2].Field}
	assert.ElementsMatch(t, []string{"dayOfWeek", "startTime", "email"}, fields)
	assert.Contains(t, err.Error(), "startTime must be in HH:mm format")
}

func TestStruct_Valid(t *testing.T) {
	v := New()

	assert.NoError(t, v.Struct(ruleInput{DayOfWeek: 0, StartTime: "09:00"}))
}

func TestErrors_OrNil(t *testing.T) {
	var errs Errors
	assert.NoError(t, errs.OrNil())

	errs.Add("date", "date is required")
	assert.Error(t, errs.OrNil())
	assert.Equal(t, "validation failed: date: date is required", errs.Error())
}
