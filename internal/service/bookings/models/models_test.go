package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BookEasy-Service/internal/domain"
	"github.com/m04kA/BookEasy-Service/pkg/validation"
)

func TestToDomainQuery_Defaults(t *testing.T) {
	q, err := (&ListBookingsRequest{}).ToDomainQuery(time.UTC)
	require.NoError(t, err)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.Limit)
	assert.Equal(t, domain.SortByCreatedAt, q.SortBy)
	assert.Equal(t, domain.SortDesc, q.SortOrder)
	assert.Nil(t, q.Status)
	assert.Nil(t, q.DateFrom)
}

func TestToDomainQuery_ParsesFilters(t *testing.T) {
	q, err := (&ListBookingsRequest{
		Status:    "confirmed",
		DateFrom:  "2026-03-01",
		DateTo:    "2026-03-31",
		Search:    "  marie ",
		Page:      "3",
		Limit:     "50",
		SortBy:    "startAt",
		SortOrder: "ASC",
	}).ToDomainQuery(time.UTC)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, *q.Status)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *q.DateFrom)
	assert.Equal(t, time.Date(2026, 3, 31, 23, 59, 59, 999999999, time.UTC), *q.DateTo)
	assert.Equal(t, "marie", q.Search)
	assert.Equal(t, 100, q.Offset())
	assert.Equal(t, domain.SortAsc, q.SortOrder)
}

func TestToDomainQuery_ReportsAllViolations(t *testing.T) {
	_, err := (&ListBookingsRequest{
		Status:    "LOST",
		ServiceID: "42",
		DateFrom:  "2026-04-01",
		DateTo:    "2026-03-01",
		Page:      "0",
		Limit:     "1000",
		SortBy:    "password",
		SortOrder: "up",
	}).ToDomainQuery(time.UTC)

	var errs validation.Errors
	require.True(t, errors.As(err, &errs))

	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"status", "serviceId", "dateTo", "page", "limit", "sortBy", "sortOrder"}, fields)
}

func TestUpdateBookingRequest_ToDomainPatch(t *testing.T) {
	status := "CONFIRMED"
	name := "  Marie  "
	patch := (&UpdateBookingRequest{Status: &status, CustomerName: &name}).ToDomainPatch()

	assert.Equal(t, domain.StatusConfirmed, *patch.Status)
	assert.Equal(t, "Marie", *patch.CustomerName)
	assert.Nil(t, patch.CustomerEmail)
}
