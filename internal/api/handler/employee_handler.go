package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hcm-systems/hcm-api/internal/api/metrics"
	"github.com/hcm-systems/hcm-api/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee operations. Role
// scoping (the lowest tier sees only its own record) lives in the
// service; route-level gates live in the router.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// List handles GET /api/employees.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   employeeResponse
// @Failure      403  {object}  errorResponse
// @Router       /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	views, err := h.service.List(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponses(views))
}

// Get handles GET /api/employees/:id.
//
// @Summary      Get an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  employeeResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	view, err := h.service.Get(c.Request().Context(), caller, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(*view))
}

// ListByDepartment handles GET /api/employees/department/:departmentId.
//
// @Summary      List employees of a department
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        departmentId  path      int  true  "Department ID"
// @Success      200           {array}   employeeResponse
// @Router       /employees/department/{departmentId} [get]
func (h *EmployeeHandler) ListByDepartment(c echo.Context) error {
	departmentID, err := pathID(c, "departmentId")
	if err != nil {
		return err
	}

	views, err := h.service.ListByDepartment(c.Request().Context(), departmentID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponses(views))
}

// Create handles POST /api/employees.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      employeeRequest  true  "Employee details"
// @Success      201   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	}

	view, err := h.service.Create(c.Request().Context(), toEmployeeInput(req))
	if err != nil {
		return err
	}

	metrics.EmployeesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toEmployeeResponse(*view))
}

// Update handles PUT /api/employees/:id.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Employee ID"
// @Param        body  body      employeeRequest  true  "Employee details"
// @Success      200   {object}  employeeResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req employeeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	}

	view, err := h.service.Update(c.Request().Context(), caller, id, toEmployeeInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toEmployeeResponse(*view))
}

// Delete handles DELETE /api/employees/:id.
//
// @Summary      Delete an employee
// @Tags         employees
// @Security     BearerAuth
// @Param        id  path  int  true  "Employee ID"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// SalaryHistory handles GET /api/employees/:id/salary-history.
//
// @Summary      Salary history of an employee
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {array}   salaryChangeResponse
// @Failure      404  {object}  errorResponse
// @Router       /employees/{id}/salary-history [get]
func (h *EmployeeHandler) SalaryHistory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	views, err := h.service.SalaryHistory(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toSalaryChangeResponses(views))
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
