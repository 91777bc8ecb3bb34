package middleware

import (
	"net/http"

	clubadmin "github.com/easyvoley/clubadmin"
	"github.com/easyvoley/clubadmin/permission"
)

// RequireRoute returns middleware that applies the route table to the
// request path. Paths without a binding stay open to any known role. A nil
// evaluator falls back to the default club permission table.
func RequireRoute(source RoleSource, evaluator *permission.Evaluator) func(http.Handler) http.Handler {
	e := evaluatorOrDefault(evaluator)
	return guard(source, func(role clubadmin.Role, r *http.Request) bool {
		return e.CanAccessRoute(role.String(), r.URL.Path)
	})
}
