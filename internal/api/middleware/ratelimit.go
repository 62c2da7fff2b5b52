package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/BookEasy-Service/internal/api/handlers"
)

const msgTooManyAttempts = "слишком много попыток входа, повторите позже"

// RateLimiter ограничивает число запросов с одного IP (token bucket на клиента)
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*client
	limit     rate.Limit
	burst     int
	idleTTL   time.Duration
	now       func() time.Time
	lastSweep time.Time
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter разрешает attempts запросов за window с одного IP
func NewRateLimiter(attempts int, window time.Duration) *RateLimiter {
	if attempts <= 0 {
		attempts = 1
	}

	return &RateLimiter{
		clients: make(map[string]*client),
		limit:   rate.Every(window / time.Duration(attempts)),
		burst:   attempts,
		idleTTL: window,
		now:     time.Now,
	}
}

// Allow расходует попытку клиента key
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	c, ok := l.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = c
	}
	c.lastSeen = now

	return c.limiter.AllowN(now, 1)
}

// sweep удаляет клиентов, неактивных дольше окна (их корзина уже полная)
func (l *RateLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.idleTTL {
		return
	}
	for key, c := range l.clients {
		if now.Sub(c.lastSeen) >= l.idleTTL {
			delete(l.clients, key)
		}
	}
	l.lastSweep = now
}

// Middleware отвечает 429, когда попытки клиента исчерпаны
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientIP(r)) {
			handlers.RespondTooManyRequests(w, msgTooManyAttempts)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP первый адрес из X-Forwarded-For или адрес соединения
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
