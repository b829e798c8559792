package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hcm-systems/hcm-api/internal/api/middleware"
	"github.com/hcm-systems/hcm-api/internal/core/domain"
	"github.com/hcm-systems/hcm-api/internal/core/ports"
)

type stubAuthService struct {
	loginFn       func(ctx context.Context, email, password string) (*ports.AuthResult, error)
	registerFn    func(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error)
	currentUserFn func(ctx context.Context, email string) (*ports.UserProfile, error)
	validateFn    func(tokenString string) bool
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, email string) (*ports.UserProfile, error) {
	return s.currentUserFn(ctx, email)
}

func (s *stubAuthService) ValidateToken(tokenString string) bool {
	return s.validateFn(tokenString)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func sampleAuthResult() *ports.AuthResult {
	empID := 2
	return &ports.AuthResult{
		Token:   "token123",
		Expires: time.Now().Add(24 * time.Hour).UTC(),
		User: ports.UserProfile{
			ID:           1,
			Email:        "jane.smith@company.com",
			Role:         domain.RoleEmployee,
			RoleName:     "Employee",
			EmployeeID:   &empID,
			EmployeeName: "Jane Smith",
			CreatedAt:    time.Now().UTC(),
			IsActive:     true,
		},
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			if email != "jane.smith@company.com" || password != "password123" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return sampleAuthResult(), nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"jane.smith@company.com","password":"password123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["role"] != float64(1) || user["roleName"] != "Employee" {
		t.Fatalf("unexpected role payload: %+v", user)
	}
	if user["employeeId"] != float64(2) || user["employeeName"] != "Jane Smith" {
		t.Fatalf("unexpected employee payload: %+v", user)
	}
	if _, leaked := user["passwordHash"]; leaked {
		t.Fatalf("password hash leaked into response")
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"jane.smith@company.com","password":"wrongpass"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Invalid email or password" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("{"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_MissingEmail(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(`{"password":"password123"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Login(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
			if input.Email != "new@company.com" || input.Role != domain.RoleManager {
				t.Fatalf("unexpected input: %+v", input)
			}
			return sampleAuthResult(), nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"new@company.com","password":"password123","role":2}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// Registration mirrors login and returns 200, not 201.
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Register_Conflicts(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"duplicate email", domain.ErrUserExists, "User with this email already exists"},
		{"unknown employee", domain.ErrUnknownEmployee, "Employee not found"},
		{"linked employee", domain.ErrEmployeeLinked, "Employee already has a user account"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho()
			stub := &stubAuthService{
				registerFn: func(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
					return nil, tc.err
				},
			}
			handler := NewAuthHandler(stub)

			body := strings.NewReader(`{"email":"x@company.com","password":"password123","role":1,"employeeId":3}`)
			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			_ = handler.Register(c)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["message"] != tc.want {
				t.Fatalf("unexpected message: %q", resp["message"])
			}
		})
	}
}

func TestAuthHandler_Register_InvalidRole(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"x@company.com","password":"password123","role":9}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Me_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		currentUserFn: func(ctx context.Context, email string) (*ports.UserProfile, error) {
			if email != "admin@company.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return &ports.UserProfile{
				ID: 3, Email: email, Role: domain.RoleHrAdmin, RoleName: "HrAdmin",
				CreatedAt: time.Now().UTC(), IsActive: true,
			}, nil
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxEmail, "admin@company.com")

	if err := handler.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["roleName"] != "HrAdmin" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	// Optional fields without values stay out of the payload.
	if _, present := resp["employeeId"]; present {
		t.Fatalf("employeeId should be omitted when unset")
	}
}

func TestAuthHandler_Me_UserGone(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		currentUserFn: func(ctx context.Context, email string) (*ports.UserProfile, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxEmail, "gone@company.com")

	_ = handler.Me(c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	// Token valid but account gone: empty body, not an error envelope.
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestAuthHandler_ValidateToken(t *testing.T) {
	e := newTestEcho()
	stub := &stubAuthService{
		validateFn: func(tokenString string) bool {
			return tokenString == "good-token"
		},
	}
	handler := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/validate-token", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.ValidateToken(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]bool
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp["valid"] {
		t.Fatalf("expected valid=true, got %+v", resp)
	}

	req = httptest.NewRequest(http.MethodPost, "/api/auth/validate-token", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)

	_ = handler.ValidateToken(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["valid"] {
		t.Fatalf("expected valid=false, got %+v", resp)
	}
}
