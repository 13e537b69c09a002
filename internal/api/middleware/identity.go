package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/suraSGML/meskeremhotelproject-sub000/internal/api/handlers"
)

// Заголовки, которые выставляет шлюз после аутентификации
const (
	HeaderUserEmail = "X-User-Email"
	HeaderUserRole  = "X-User-Role"
)

// Роли с доступом к консоли персонала
const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// Identity пользователь, от имени которого выполняется запрос
type Identity struct {
	Email string
	Role  string
}

// IsStaff true для персонала и администраторов
func (i Identity) IsStaff() bool {
	return i.Role == RoleStaff || i.Role == RoleAdmin
}

type identityKey struct{}

// WithIdentity кладёт пользователя в контекст
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext пользователь из контекста; false, если запрос анонимный
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok && id.Email != ""
}

// IdentityMiddleware читает пользователя из заголовков. Анонимные запросы пропускаются дальше.
func IdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email := strings.TrimSpace(r.Header.Get(HeaderUserEmail))
		if email == "" {
			next.ServeHTTP(w, r)
			return
		}

		id := Identity{
			Email: strings.ToLower(email),
			Role:  strings.ToLower(strings.TrimSpace(r.Header.Get(HeaderUserRole))),
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), id)))
	})
}

// Auth требует идентифицированного пользователя
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := IdentityFromContext(r.Context()); !ok {
			handlers.RespondUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireStaff пропускает только персонал и администраторов
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := IdentityFromContext(r.Context())
		if !ok {
			handlers.RespondUnauthorized(w)
			return
		}
		if !id.IsStaff() {
			handlers.RespondForbidden(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}
