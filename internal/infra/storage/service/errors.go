package service

import (
	"errors"
	"fmt"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = fmt.Errorf("service.repository: service %w", domain.ErrNotFound)

	ErrBuildQuery = errors.New("service.repository: failed to build query")
	ErrExecQuery  = errors.New("service.repository: failed to execute query")
	ErrScanRow    = errors.New("service.repository: failed to scan row")
)
