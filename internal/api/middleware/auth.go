package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-TimetableService/internal/api/handlers"
	"github.com/m04kA/SMC-TimetableService/internal/domain"
)

const (
	headerUserID     = "X-User-ID"
	headerUserRole   = "X-User-Role"
	headerDepartment = "X-Department-ID"

	msgMissingIdentity = "отсутствуют заголовки идентификации"
	msgUnknownRole     = "недопустимая роль пользователя"
	msgAdminOnly       = "операция доступна только администратору"
)

type ctxKey string

const identityKey ctxKey = "identity"

// Identity идентификация вызывающего, извлеченная из заголовков запроса
type Identity struct {
	UserID       string
	Role         domain.Role
	DepartmentID string
}

// Auth извлекает идентификацию из заголовков X-User-ID, X-User-Role
// и X-Department-ID и кладет ее в контекст запроса.
// Запросы без идентификации или с неизвестной ролью отклоняются.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(headerUserID)
		role := domain.Role(r.Header.Get(headerUserRole))
		departmentID := r.Header.Get(headerDepartment)

		if userID == "" || departmentID == "" {
			handlers.RespondUnauthorized(w, msgMissingIdentity)
			return
		}
		if !role.IsValid() {
			handlers.RespondForbidden(w, msgUnknownRole)
			return
		}

		identity := Identity{
			UserID:       userID,
			Role:         role,
			DepartmentID: departmentID,
		}

		ctx := context.WithValue(r.Context(), identityKey, identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin пропускает только запросы с ролью ADMIN.
// Должен стоять после Auth.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentity(r.Context())
		if !ok || identity.Role != domain.RoleAdmin {
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetIdentity возвращает идентификацию вызывающего из контекста
func GetIdentity(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}
