package get_available_slots

import (
	"errors"
	"fmt"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = fmt.Errorf("get_available_slots: service %w", domain.ErrNotFound)

	// ErrServiceUnavailable возвращается для неактивной услуги
	ErrServiceUnavailable = fmt.Errorf("get_available_slots: %w", domain.ErrServiceUnavailable)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("get_available_slots: invalid input: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
