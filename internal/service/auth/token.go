package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims полезная нагрузка токена администратора
type Claims struct {
	AdminID string `json:"adminId"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// AdminUUID возвращает ID администратора из токена
func (c *Claims) AdminUUID() (uuid.UUID, error) {
	return uuid.Parse(c.AdminID)
}

func (s *Service) issueToken(adminID uuid.UUID, email string) (string, time.Time, error) {
	now := s.timeProvider.Now()
	expiresAt := now.Add(s.tokenTTL)

	claims := Claims{
		AdminID: adminID.String(),
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return token, expiresAt, nil
}

// ParseToken проверяет подпись и срок действия токена
func (s *Service) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.timeProvider.Now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if _, err := claims.AdminUUID(); err != nil {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
