package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hcm-systems/hcm-api/internal/api/middleware"
	"github.com/hcm-systems/hcm-api/internal/core/domain"
	"github.com/hcm-systems/hcm-api/internal/core/ports"
)

// ctxCaller extracts the identity injected by the Auth middleware. A
// missing role proves the middleware did not run (or the token carried
// no usable claims) and is rejected before any service call.
func ctxCaller(c echo.Context) (ports.Caller, error) {
	role, ok := c.Get(middleware.CtxRole).(domain.Role)
	if !ok {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ := c.Get(middleware.CtxUserID).(int)
	employeeID, _ := c.Get(middleware.CtxEmployeeID).(*int)

	return ports.Caller{UserID: userID, Role: role, EmployeeID: employeeID}, nil
}

// ctxEmail returns the email claim of the current request.
func ctxEmail(c echo.Context) (string, error) {
	email, _ := c.Get(middleware.CtxEmail).(string)
	if email == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return email, nil
}
