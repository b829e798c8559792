package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hcm-systems/hcm-api/internal/api/metrics"
	"github.com/hcm-systems/hcm-api/internal/core/domain"
	"github.com/hcm-systems/hcm-api/internal/core/ports"
)

// AuthHandler handles HTTP requests for the auth endpoints.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, errorResponse{Message: domain.ErrInvalidCredentials.Error()})
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Message: "An error occurred during login"})
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, toAuthResponse(result))
}

// Register creates a user account and logs it in immediately.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:      req.Email,
		Password:   req.Password,
		Role:       domain.Role(req.Role),
		EmployeeID: req.EmployeeID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists),
			errors.Is(err, domain.ErrUnknownEmployee),
			errors.Is(err, domain.ErrEmployeeLinked),
			errors.Is(err, domain.ErrInvalidCredentials):
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, errorResponse{Message: "An error occurred during registration"})
		}
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, toAuthResponse(result))
}

// Me returns the profile behind the current token, re-resolved from the
// store (and therefore observing deactivation, unlike validate-token).
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}

	profile, err := h.authService.CurrentUser(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return c.JSON(http.StatusInternalServerError, errorResponse{Message: "An error occurred"})
	}

	return c.JSON(http.StatusOK, toUserResponse(*profile))
}

// ValidateToken re-checks the bearer token's signature and expiry. It
// does not consult the store, so a deactivated account's token stays
// valid until its TTL runs out.
//
// @Summary      Validate the current token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  tokenValidityResponse
// @Failure      401  {object}  tokenValidityResponse
// @Router       /auth/validate-token [post]
func (h *AuthHandler) ValidateToken(c echo.Context) error {
	raw := strings.TrimPrefix(c.Request().Header.Get("Authorization"), "Bearer ")

	if h.authService.ValidateToken(raw) {
		metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()
		return c.JSON(http.StatusOK, tokenValidityResponse{Valid: true})
	}
	metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
	return c.JSON(http.StatusUnauthorized, tokenValidityResponse{Valid: false})
}
