package httpserver

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Principal is the authenticated caller identity resolved by the fronting
// auth infrastructure and forwarded via headers. Transport authentication
// itself happens upstream; this server only consumes the resolved identity.
type Principal struct {
	UserID       string
	Role         string
	DepartmentID string
}

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

func (p Principal) IsZero() bool {
	return p.UserID == ""
}

type principalContextKey struct{}

func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	principal, ok := ctx.Value(principalContextKey{}).(Principal)
	return principal, ok && !principal.IsZero()
}

func ContextWithPrincipal(ctx context.Context, principal Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, principal)
}

func createPrincipalMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal := Principal{
				UserID:       r.Header.Get("X-User-ID"),
				Role:         r.Header.Get("X-User-Role"),
				DepartmentID: r.Header.Get("X-Department-ID"),
			}

			span := trace.SpanFromContext(r.Context())
			if principal.UserID != "" {
				span.SetAttributes(attribute.String("user.id", principal.UserID))
			}
			if principal.Role != "" {
				span.SetAttributes(attribute.String("user.role", principal.Role))
			}

			ctx := ContextWithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
