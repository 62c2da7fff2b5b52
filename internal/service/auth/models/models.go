package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/domain"
)

// LoginRequest запрос на вход администратора
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// AdminResponse профиль администратора (без хеша пароля)
type AdminResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse токен и профиль
type LoginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	Admin     *AdminResponse `json:"admin"`
}

// FromDomainAdmin конвертирует domain модель в DTO
func FromDomainAdmin(a *domain.AdminUser) *AdminResponse {
	if a == nil {
		return nil
	}
	return &AdminResponse{
		ID:        a.ID,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}
