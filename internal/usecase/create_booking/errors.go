package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_booking: invalid input: %w", domain.ErrValidation)

	// ErrServiceUnavailable возвращается, когда услуга не найдена или неактивна
	ErrServiceUnavailable = fmt.Errorf("create_booking: %w", domain.ErrServiceUnavailable)

	// ErrSlotUnavailable возвращается, когда время начала не совпадает со свободным слотом
	ErrSlotUnavailable = fmt.Errorf("create_booking: slot unavailable: %w", domain.ErrConflict)

	// ErrConcurrentAdmission возвращается, когда транзакция не прошла после всех повторов
	ErrConcurrentAdmission = fmt.Errorf("create_booking: concurrent admission, retry later: %w", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
