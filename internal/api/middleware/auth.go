package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StoreAdmin/internal/api/handlers"
)

// UserIDHeader заголовок с ID пользователя, проставляется шлюзом после аутентификации
const UserIDHeader = "X-User-ID"

const (
	msgMissingUserID = "cabeçalho X-User-ID ausente"
	msgInvalidUserID = "X-User-ID inválido"
)

type contextKey string

const userIDKey contextKey = "userID"

// Auth извлекает ID пользователя из заголовка X-User-ID и кладёт в контекст
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(UserIDHeader)
		if header == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := uuid.Parse(header)
		if err != nil || userID == uuid.Nil {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
	})
}

// WithUserID кладёт ID пользователя в контекст
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// GetUserID достаёт ID пользователя из контекста
func GetUserID(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	return userID, ok
}
