package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC enforces role-based access control against the roles declared for the
// route. With no declared roles the middleware is a pass-through. The check
// is plain set membership, not a hierarchy: ADMIN does not implicitly pass a
// route that only lists USER. A request whose identity was never attached
// (Auth not run, or failed to attach) is forbidden.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(allowed) == 0 {
				return next(c)
			}

			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "you do not have permission to access this route")
			}
			return next(c)
		}
	}
}
