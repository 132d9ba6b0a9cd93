package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/fieldmax/booking-service/internal/api/handlers"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	roleKey   contextKey = "userRole"
)

// Роли пользователей, приходящие из заголовка X-User-Role
const (
	RoleUser  = "user"
	RoleOwner = "owner"
	RoleAdmin = "admin"
)

// Auth проверяет наличие заголовка X-User-ID и кладет ID пользователя в контекст
// Роль из X-User-Role (опционально) также сохраняется, по умолчанию user
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get("X-User-ID")
		if userIDStr == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "требуется заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный X-User-ID")
			return
		}

		role := r.Header.Get("X-User-Role")
		if role == "" {
			role = RoleUser
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, roleKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin пропускает только запросы с ролью admin
// Должен стоять после Auth
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if Role(r.Context()) != RoleAdmin {
			handlers.RespondForbidden(w, "требуются права администратора")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserID возвращает ID пользователя из контекста, 0 если не аутентифицирован
func UserID(ctx context.Context) int64 {
	if id, ok := ctx.Value(userIDKey).(int64); ok {
		return id
	}
	return 0
}

// Role возвращает роль пользователя из контекста
func Role(ctx context.Context) string {
	if role, ok := ctx.Value(roleKey).(string); ok {
		return role
	}
	return RoleUser
}

// IsAdmin возвращает true, если запрос выполнен администратором
func IsAdmin(ctx context.Context) bool {
	return Role(ctx) == RoleAdmin
}
