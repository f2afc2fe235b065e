package middleware

import "net/http"

const (
	corsAllowMethods = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	corsAllowHeaders = "Content-Type, X-User-ID"
	corsMaxAge       = "3600"
)

// CORS разрешает запросы админки с перечисленных источников
// "*" разрешает любой источник
type CORS struct {
	allowed  map[string]struct{}
	allowAll bool
}

// NewCORS создает CORS middleware
func NewCORS(allowedOrigins []string) *CORS {
	c := &CORS{allowed: make(map[string]struct{}, len(allowedOrigins))}
	for _, origin := range allowedOrigins {
		if origin == "*" {
			c.allowAll = true
		}
		c.allowed[origin] = struct{}{}
	}
	return c
}

// Handler возвращает middleware
func (c *CORS) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin != "" && c.isAllowed(origin) {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
			w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
			w.Header().Set("Access-Control-Max-Age", corsMaxAge)
			w.Header().Add("Vary", "Origin")
		}

		// Preflight
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (c *CORS) isAllowed(origin string) bool {
	if c.allowAll {
		return true
	}
	_, ok := c.allowed[origin]
	return ok
}
