package middleware

import (
	"context"
	"net/http"

	clubadmin "github.com/easyvoley/clubadmin"
	"github.com/easyvoley/clubadmin/permission"
)

// RoleSource answers what role is acting right now. [clubadmin.Client]
// satisfies it; embedders with their own session handling can supply any
// implementation.
type RoleSource interface {
	CurrentRole() clubadmin.Role
}

type roleContextKey struct{}

// RoleFromContext returns the role a guard resolved for this request.
func RoleFromContext(ctx context.Context) (clubadmin.Role, bool) {
	role, ok := ctx.Value(roleContextKey{}).(clubadmin.Role)
	return role, ok
}

// guard is the shared wrapper: resolve the role, run the check, inject the
// role into the request context on pass.
func guard(source RoleSource, check func(role clubadmin.Role, r *http.Request) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if source == nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			role := source.CurrentRole()
			if role == clubadmin.RoleUnknown {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			if !check(role, r) {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), roleContextKey{}, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func evaluatorOrDefault(evaluator *permission.Evaluator) *permission.Evaluator {
	if evaluator != nil {
		return evaluator
	}
	return permission.NewDefaultEvaluator()
}
