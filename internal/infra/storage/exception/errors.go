package exception

import (
	"errors"
	"fmt"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

var (
	// ErrExceptionNotFound возвращается, когда исключение не найдено
	ErrExceptionNotFound = fmt.Errorf("exception.repository: exception %w", domain.ErrNotFound)

	// ErrDuplicateException возвращается, когда на дату уже есть исключение
	ErrDuplicateException = fmt.Errorf("exception.repository: duplicate exception for date: %w", domain.ErrConflict)

	ErrBuildQuery = errors.New("exception.repository: failed to build query")
	ErrExecQuery  = errors.New("exception.repository: failed to execute query")
	ErrScanRow    = errors.New("exception.repository: failed to scan row")
)
