package rule

import (
	"errors"
	"fmt"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

var (
	// ErrRuleNotFound возвращается, когда правило не найдено
	ErrRuleNotFound = fmt.Errorf("rule.repository: rule %w", domain.ErrNotFound)

	// ErrDuplicateRule возвращается при попытке создать второе правило на день недели
	ErrDuplicateRule = fmt.Errorf("rule.repository: duplicate rule for weekday: %w", domain.ErrConflict)

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rule.repository: failed to scan row")
)
