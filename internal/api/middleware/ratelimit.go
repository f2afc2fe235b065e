package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/m04kA/SMC-StoreAdmin/internal/api/handlers"
)

const msgTooManyRequests = "muitas requisições, tente novamente em instantes"

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter ограничивает частоту запросов по IP адресу клиента
// Стоит на публичных маршрутах масок, где пользователя ещё нет
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	rate     rate.Limit
	burst    int
	now      func() time.Time
	logger   Logger
}

// NewRateLimiter создает ограничитель частоты запросов
func NewRateLimiter(requestsPerSecond, burst int, logger Logger) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
		now:      time.Now,
		logger:   logger,
	}
}

// Handler возвращает middleware
func (rl *RateLimiter) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)

		if !rl.getLimiter(key).Allow() {
			rl.logger.Warn("RateLimiter: limit exceeded for key=%s, path=%s", key, r.URL.Path)
			handlers.RespondTooManyRequests(w, msgTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) getLimiter(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[key] = cl
	}
	cl.lastSeen = rl.now()
	return cl.limiter
}

// Cleanup удаляет ограничители клиентов, не обращавшихся дольше maxIdle
func (rl *RateLimiter) Cleanup(maxIdle time.Duration) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	removed := 0
	threshold := rl.now().Add(-maxIdle)
	for key, cl := range rl.limiters {
		if cl.lastSeen.Before(threshold) {
			delete(rl.limiters, key)
			removed++
		}
	}
	return removed
}

// StartCleanup периодически чистит ограничители до закрытия stopCh
func (rl *RateLimiter) StartCleanup(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if n := rl.Cleanup(interval); n > 0 {
					rl.logger.Info("RateLimiter: removed %d idle limiters", n)
				}
			case <-stopCh:
				return
			}
		}
	}()
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
