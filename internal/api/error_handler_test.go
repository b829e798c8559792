package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hcm-systems/hcm-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return rec, body
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden, "Forbidden"},
		{"user exists", domain.ErrUserExists, http.StatusBadRequest, "User with this email already exists"},
		{"unknown employee", domain.ErrUnknownEmployee, http.StatusBadRequest, "Employee not found"},
		{"employee linked", domain.ErrEmployeeLinked, http.StatusBadRequest, "Employee already has a user account"},
		{"department in use", domain.ErrDepartmentInUse, http.StatusBadRequest, "Cannot delete department with employees"},
		{"employee not found", domain.ErrEmployeeNotFound, http.StatusNotFound, "Employee not found"},
		{"department not found", domain.ErrDepartmentNotFound, http.StatusNotFound, "Department not found"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := renderError(t, tc.err)
			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			if body["message"] != tc.message {
				t.Fatalf("expected message %q, got %q", tc.message, body["message"])
			}
		})
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusForbidden, "Forbidden"))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if body["message"] != "Forbidden" {
		t.Fatalf("unexpected message: %q", body["message"])
	}
}

func TestHTTPErrorHandler_UnexpectedError(t *testing.T) {
	rec, body := renderError(t, errors.New("connection reset by peer"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	// Internal causes never leak to the client.
	if body["message"] != "internal server error" {
		t.Fatalf("unexpected message: %q", body["message"])
	}
}
