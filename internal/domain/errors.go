package domain

import "errors"

// Виды ошибок. Ошибки пакетов оборачивают один из них, чтобы транспортный слой
// мог выбрать код ответа без знания конкретного пакета.
var (
	ErrValidation         = errors.New("validation error")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrServiceUnavailable = errors.New("service unavailable")
	ErrUnauthorized       = errors.New("unauthorized")
)
