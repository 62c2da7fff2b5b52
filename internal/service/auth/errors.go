package auth

import (
	"errors"
	"fmt"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

var (
	// ErrInvalidCredentials возвращается при неверном email или пароле
	ErrInvalidCredentials = fmt.Errorf("invalid email or password: %w", domain.ErrUnauthorized)

	// ErrInvalidToken возвращается при отсутствующем, просроченном или поддельном токене
	ErrInvalidToken = fmt.Errorf("invalid or expired token: %w", domain.ErrUnauthorized)

	// ErrAdminNotFound возвращается, когда администратор из токена больше не существует
	ErrAdminNotFound = fmt.Errorf("admin not found: %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
