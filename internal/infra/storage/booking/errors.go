package booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = fmt.Errorf("booking.repository: booking %w", domain.ErrNotFound)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")

	// ErrUnknownSortField возвращается при сортировке по неизвестному полю
	ErrUnknownSortField = errors.New("booking.repository: unknown sort field")
)
