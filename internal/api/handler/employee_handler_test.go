package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/hcm-systems/hcm-api/internal/api/middleware"
	"github.com/hcm-systems/hcm-api/internal/core/domain"
	"github.com/hcm-systems/hcm-api/internal/core/ports"
)

type stubEmployeeService struct {
	listFn       func(ctx context.Context, caller ports.Caller) ([]ports.EmployeeView, error)
	getFn        func(ctx context.Context, caller ports.Caller, id int) (*ports.EmployeeView, error)
	listByDeptFn func(ctx context.Context, departmentID int) ([]ports.EmployeeView, error)
	createFn     func(ctx context.Context, input ports.EmployeeInput) (*ports.EmployeeView, error)
	updateFn     func(ctx context.Context, caller ports.Caller, id int, input ports.EmployeeInput) (*ports.EmployeeView, error)
	deleteFn     func(ctx context.Context, id int) error
	historyFn    func(ctx context.Context, employeeID int) ([]ports.SalaryChangeView, error)
}

func (s *stubEmployeeService) List(ctx context.Context, caller ports.Caller) ([]ports.EmployeeView, error) {
	return s.listFn(ctx, caller)
}

func (s *stubEmployeeService) Get(ctx context.Context, caller ports.Caller, id int) (*ports.EmployeeView, error) {
	return s.getFn(ctx, caller, id)
}

func (s *stubEmployeeService) ListByDepartment(ctx context.Context, departmentID int) ([]ports.EmployeeView, error) {
	return s.listByDeptFn(ctx, departmentID)
}

func (s *stubEmployeeService) Create(ctx context.Context, input ports.EmployeeInput) (*ports.EmployeeView, error) {
	return s.createFn(ctx, input)
}

func (s *stubEmployeeService) Update(ctx context.Context, caller ports.Caller, id int, input ports.EmployeeInput) (*ports.EmployeeView, error) {
	return s.updateFn(ctx, caller, id, input)
}

func (s *stubEmployeeService) Delete(ctx context.Context, id int) error {
	return s.deleteFn(ctx, id)
}

func (s *stubEmployeeService) SalaryHistory(ctx context.Context, employeeID int) ([]ports.SalaryChangeView, error) {
	return s.historyFn(ctx, employeeID)
}

func sampleEmployeeView() ports.EmployeeView {
	return ports.EmployeeView{
		ID:             1,
		FirstName:      "John",
		LastName:       "Doe",
		Email:          "john.doe@company.com",
		JobTitle:       "Engineer",
		Salary:         decimal.NewFromInt(60000),
		DepartmentID:   2,
		DepartmentName: "Engineering",
		FullName:       "John Doe",
		CreatedAt:      time.Now().UTC(),
	}
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, role domain.Role) echo.Context {
	c := e.NewContext(req, rec)
	c.Set(middleware.CtxRole, role)
	c.Set(middleware.CtxUserID, 10)
	return c
}

func TestEmployeeHandler_List(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		listFn: func(ctx context.Context, caller ports.Caller) ([]ports.EmployeeView, error) {
			if caller.Role != domain.RoleManager || caller.UserID != 10 {
				t.Fatalf("unexpected caller: %+v", caller)
			}
			return []ports.EmployeeView{sampleEmployeeView()}, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.RoleManager)

	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["fullName"] != "John Doe" || resp[0]["departmentName"] != "Engineering" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestEmployeeHandler_List_MissingClaims(t *testing.T) {
	e := newTestEcho()
	handler := NewEmployeeHandler(&stubEmployeeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.List(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}

func TestEmployeeHandler_Get_ForwardsScopingError(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		getFn: func(ctx context.Context, caller ports.Caller, id int) (*ports.EmployeeView, error) {
			return nil, domain.ErrForbidden
		},
	}
	handler := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/employees/1", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.RoleEmployee)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := handler.Get(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden to propagate, got %v", err)
	}
}

func TestEmployeeHandler_Get_BadID(t *testing.T) {
	e := newTestEcho()
	handler := NewEmployeeHandler(&stubEmployeeService{})

	req := httptest.NewRequest(http.MethodGet, "/api/employees/abc", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.RoleManager)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := handler.Get(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestEmployeeHandler_Create(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		createFn: func(ctx context.Context, input ports.EmployeeInput) (*ports.EmployeeView, error) {
			if input.FirstName != "John" || !input.Salary.Equal(decimal.NewFromInt(60000)) {
				t.Fatalf("unexpected input: %+v", input)
			}
			view := sampleEmployeeView()
			return &view, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	body := strings.NewReader(`{"firstName":"John","lastName":"Doe","email":"john.doe@company.com","jobTitle":"Engineer","salary":60000,"departmentId":2}`)
	req := httptest.NewRequest(http.MethodPost, "/api/employees", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.RoleManager)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Create_MissingFields(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		createFn: func(ctx context.Context, input ports.EmployeeInput) (*ports.EmployeeView, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	body := strings.NewReader(`{"firstName":"John"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/employees", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.RoleManager)

	_ = handler.Create(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Update(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		updateFn: func(ctx context.Context, caller ports.Caller, id int, input ports.EmployeeInput) (*ports.EmployeeView, error) {
			if id != 1 || caller.UserID != 10 {
				t.Fatalf("unexpected args: id=%d caller=%+v", id, caller)
			}
			view := sampleEmployeeView()
			view.Salary = input.Salary
			return &view, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	body := strings.NewReader(`{"firstName":"John","lastName":"Doe","email":"john.doe@company.com","jobTitle":"Engineer","salary":72000,"departmentId":2}`)
	req := httptest.NewRequest(http.MethodPut, "/api/employees/1", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.RoleManager)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestEmployeeHandler_Delete(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		deleteFn: func(ctx context.Context, id int) error {
			if id != 4 {
				t.Fatalf("unexpected id: %d", id)
			}
			return nil
		},
	}
	handler := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodDelete, "/api/employees/4", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.RoleHrAdmin)
	c.SetParamNames("id")
	c.SetParamValues("4")

	if err := handler.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestEmployeeHandler_SalaryHistory(t *testing.T) {
	e := newTestEcho()
	stub := &stubEmployeeService{
		historyFn: func(ctx context.Context, employeeID int) ([]ports.SalaryChangeView, error) {
			return []ports.SalaryChangeView{{
				ID:             1,
				EmployeeID:     employeeID,
				PreviousSalary: decimal.NewFromInt(60000),
				NewSalary:      decimal.NewFromInt(72000),
				EffectiveDate:  time.Now().UTC(),
				CreatedAt:      time.Now().UTC(),
			}}, nil
		},
	}
	handler := NewEmployeeHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/employees/1/salary-history", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, domain.RoleManager)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := handler.SalaryHistory(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["employeeId"] != float64(1) {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}
