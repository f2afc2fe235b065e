package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StoreAdmin/pkg/logger"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestAuth(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid", header: userID.String(), wantStatus: http.StatusOK},
		{name: "missing", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not a uuid", header: "42", wantStatus: http.StatusUnauthorized},
		{name: "nil uuid", header: uuid.Nil.String(), wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got uuid.UUID
			h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = GetUserID(r.Context())
				w.WriteHeader(http.StatusOK)
			}))

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set(UserIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, userID, got)
			}
		})
	}
}

type recordedRequest struct {
	method, path, status string
}

type fakeHTTPMetrics struct {
	requests []recordedRequest
	inFlight int
	peak     int
}

func (f *fakeHTTPMetrics) RecordHTTPRequest(method, path, status string, _ time.Duration) {
	f.requests = append(f.requests, recordedRequest{method, path, status})
}

func (f *fakeHTTPMetrics) IncInFlight() {
	f.inFlight++
	if f.inFlight > f.peak {
		f.peak = f.inFlight
	}
}

func (f *fakeHTTPMetrics) DecInFlight() { f.inFlight-- }

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := &fakeHTTPMetrics{}
	router := mux.NewRouter()
	router.Use(MetricsMiddleware(m))
	router.HandleFunc("/stores/{storeId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stores/"+uuid.NewString(), nil))

	require.Len(t, m.requests, 1)
	assert.Equal(t, recordedRequest{http.MethodGet, "/stores/{storeId}", "404"}, m.requests[0])
	assert.Equal(t, 0, m.inFlight)
	assert.Equal(t, 1, m.peak)
}

func TestCORS(t *testing.T) {
	c := NewCORS([]string{"https://admin.example.com"})
	h := c.Handler(http.HandlerFunc(okHandler))

	t.Run("allowed origin", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Origin", "https://admin.example.com")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		assert.Equal(t, "https://admin.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("foreign origin", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodOptions, "/", nil)
		r.Header.Set("Origin", "https://admin.example.com")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "X-User-ID")
	})

	t.Run("wildcard", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()
		NewCORS([]string{"*"}).Handler(http.HandlerFunc(okHandler)).ServeHTTP(w, r)

		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})
}

func newTestLimiter(rps, burst int) *RateLimiter {
	return NewRateLimiter(rps, burst, logger.NewWithWriter(io.Discard, logrus.InfoLevel))
}

func TestRateLimiter_PerClient(t *testing.T) {
	rl := newTestLimiter(1, 2)
	h := rl.Handler(http.HandlerFunc(okHandler))

	send := func(remote string) int {
		r := httptest.NewRequest(http.MethodPost, "/api/v1/masks/apply", nil)
		r.RemoteAddr = remote
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, send("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:5002"))

	// Другой клиент имеет свой бюджет
	assert.Equal(t, http.StatusOK, send("10.0.0.2:5000"))
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := newTestLimiter(10, 10)
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }

	rl.getLimiter("ip:10.0.0.1")
	now = now.Add(5 * time.Minute)
	rl.getLimiter("ip:10.0.0.2")

	removed := rl.Cleanup(time.Minute)

	assert.Equal(t, 1, removed)
	assert.Len(t, rl.limiters, 1)
	assert.Contains(t, rl.limiters, "ip:10.0.0.2")
}

func TestClientKey(t *testing.T) {
	tests := []struct {
		name   string
		remote string
		userID uuid.UUID
		want   string
	}{
		{name: "host and port", remote: "10.0.0.1:5000", want: "ip:10.0.0.1"},
		{name: "ipv6", remote: "[::1]:8080", want: "ip:::1"},
		{name: "no port", remote: "10.0.0.7", want: "ip:10.0.0.7"},
		{name: "user in context is ignored", remote: "10.0.0.1:5001", userID: uuid.New(), want: "ip:10.0.0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/v1/masks/apply", nil)
			r.RemoteAddr = tt.remote
			if tt.userID != uuid.Nil {
				r = r.WithContext(WithUserID(r.Context(), tt.userID))
			}

			assert.Equal(t, tt.want, clientKey(r))
		})
	}
}
