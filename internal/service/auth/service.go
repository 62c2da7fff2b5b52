package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	adminRepo "github.com/m04kA/BookEasy-Service/internal/infra/storage/admin"
	"github.com/m04kA/BookEasy-Service/internal/service/auth/models"
	"github.com/m04kA/BookEasy-Service/pkg/validation"
)

// DefaultTokenTTL срок жизни токена администратора
const DefaultTokenTTL = 7 * 24 * time.Hour

// хеш для сравнения, когда email не найден: время ответа не выдает существование учетной записи
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("bookeasy-dummy-password"), bcrypt.DefaultCost)

// Service сервис аутентификации администраторов
type Service struct {
	adminRepo    AdminRepository
	secret       []byte
	tokenTTL     time.Duration
	timeProvider TimeProvider
	validator    *validation.Validator
	logger       Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	adminRepo AdminRepository,
	secret string,
	tokenTTL time.Duration,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}

	return &Service{
		adminRepo:    adminRepo,
		secret:       []byte(secret),
		tokenTTL:     tokenTTL,
		timeProvider: timeProvider,
		validator:    validation.New(),
		logger:       logger,
	}
}

// Login проверяет пароль и выдает токен
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	admin, err := s.adminRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
			s.logger.Warn("Login: unknown email=%s", req.Email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for admin id=%s", admin.ID)
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.issueToken(admin.ID, admin.Email)
	if err != nil {
		s.logger.Error("Login: %v", err)
		return nil, fmt.Errorf("%w: Login - %v", ErrInternal, err)
	}

	s.logger.Info("Login: admin id=%s logged in", admin.ID)
	return &models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Admin:     models.FromDomainAdmin(admin),
	}, nil
}

// Me возвращает профиль администратора из токена
func (s *Service) Me(ctx context.Context, adminID uuid.UUID) (*models.AdminResponse, error) {
	admin, err := s.adminRepo.GetByID(ctx, adminID)
	if err != nil {
		if errors.Is(err, adminRepo.ErrAdminNotFound) {
			s.logger.Warn("Me: admin id=%s not found", adminID)
			return nil, ErrAdminNotFound
		}
		s.logger.Error("Me: repository error for admin id=%s: %v", adminID, err)
		return nil, fmt.Errorf("%w: Me - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAdmin(admin), nil
}

// HashPassword хеширует пароль bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
