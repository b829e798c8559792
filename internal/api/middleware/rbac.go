package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hcm-systems/hcm-api/internal/core/domain"
)

// RequireRole gates a route on a minimum privilege tier. Comparison is
// ordinal over the role enum (Employee < Manager < HrAdmin), never by
// display string.
func RequireRole(min domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(CtxRole).(domain.Role)
			if !ok || !role.AtLeast(min) {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
			}
			return next(c)
		}
	}
}
