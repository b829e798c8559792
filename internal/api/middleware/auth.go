package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hcm-systems/hcm-api/internal/pkg/token"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxEmail      = "email"
	CtxUserID     = "uid"
	CtxRole       = "role"
	CtxEmployeeID = "employee_id"
)

// Auth validates the bearer token and injects the session claims into
// the request context. Identity is re-derived from the token on every
// request; nothing is held between requests.
func Auth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := token.Parse(parts[1], jwtSecret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxEmail, claims.Email)
			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRole, claims.Role())
			c.Set(CtxEmployeeID, claims.EmployeeID)

			return next(c)
		}
	}
}
