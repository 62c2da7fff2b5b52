package admin

import (
	"errors"
	"fmt"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

var (
	ErrAdminNotFound = fmt.Errorf("admin.repository: admin %w", domain.ErrNotFound)
	ErrBuildQuery    = errors.New("admin.repository: failed to build query")
	ErrExecQuery     = errors.New("admin.repository: failed to execute query")
	ErrScanRow       = errors.New("admin.repository: failed to scan row")
)
