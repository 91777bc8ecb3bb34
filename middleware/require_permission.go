package middleware

import (
	"net/http"

	clubadmin "github.com/easyvoley/clubadmin"
	"github.com/easyvoley/clubadmin/permission"
)

// RequirePermission returns middleware that rejects requests whose current
// role does not hold the named permission. No role answers 401, a known
// role without the permission answers 403. A nil evaluator falls back to
// the default club permission table.
func RequirePermission(source RoleSource, evaluator *permission.Evaluator, permissionName string) func(http.Handler) http.Handler {
	e := evaluatorOrDefault(evaluator)
	return guard(source, func(role clubadmin.Role, _ *http.Request) bool {
		return e.Allowed(role.String(), permissionName)
	})
}
