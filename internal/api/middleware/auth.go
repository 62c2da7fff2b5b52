package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/BookEasy-Service/internal/api/handlers"
	"github.com/m04kA/BookEasy-Service/internal/service/auth"
)

const msgUnauthorized = "требуется авторизация"

type contextKey string

const adminKey contextKey = "admin"

// TokenParser проверяет токен администратора
type TokenParser interface {
	ParseToken(token string) (*auth.Claims, error)
}

// Admin данные администратора из токена
type Admin struct {
	ID    uuid.UUID
	Email string
}

// Auth проверяет заголовок Authorization: Bearer <jwt> и кладет администратора в контекст
func Auth(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			claims, err := parser.ParseToken(strings.TrimSpace(token))
			if err != nil {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			// ParseToken уже проверил формат ID
			adminID, _ := claims.AdminUUID()

			ctx := context.WithValue(r.Context(), adminKey, Admin{ID: adminID, Email: claims.Email})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminFromContext возвращает администратора, положенного Auth
func AdminFromContext(ctx context.Context) (Admin, bool) {
	admin, ok := ctx.Value(adminKey).(Admin)
	return admin, ok
}
