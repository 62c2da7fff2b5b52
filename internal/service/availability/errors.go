package availability

import (
	"errors"
	"fmt"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

var (
	// ErrRuleNotFound возвращается, когда правило не найдено
	ErrRuleNotFound = fmt.Errorf("rule not found: %w", domain.ErrNotFound)

	// ErrDuplicateRule возвращается, когда на день недели уже есть правило
	ErrDuplicateRule = fmt.Errorf("rule for this weekday already exists: %w", domain.ErrConflict)

	// ErrExceptionNotFound возвращается, когда исключение не найдено
	ErrExceptionNotFound = fmt.Errorf("exception not found: %w", domain.ErrNotFound)

	// ErrDuplicateException возвращается, когда на дату уже есть исключение
	ErrDuplicateException = fmt.Errorf("exception for this date already exists: %w", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
