package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hcm-systems/hcm-api/internal/core/ports"
)

// DepartmentHandler handles HTTP requests for department operations.
type DepartmentHandler struct {
	service ports.DepartmentService
}

func NewDepartmentHandler(service ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

// List handles GET /api/departments.
//
// @Summary      List departments
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  departmentResponse
// @Router       /departments [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	views, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDepartmentResponses(views))
}

// Get handles GET /api/departments/:id.
//
// @Summary      Get a department
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Department ID"
// @Success      200  {object}  departmentResponse
// @Failure      404  {object}  errorResponse
// @Router       /departments/{id} [get]
func (h *DepartmentHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	view, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDepartmentResponse(*view))
}

// Create handles POST /api/departments.
//
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      departmentRequest  true  "Department details"
// @Success      201   {object}  departmentResponse
// @Failure      400   {object}  errorResponse
// @Router       /departments [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	}

	view, err := h.service.Create(c.Request().Context(), toDepartmentInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toDepartmentResponse(*view))
}

// Update handles PUT /api/departments/:id.
//
// @Summary      Update a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Department ID"
// @Param        body  body      departmentRequest  true  "Department details"
// @Success      200   {object}  departmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /departments/{id} [put]
func (h *DepartmentHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Message: err.Error()})
	}

	view, err := h.service.Update(c.Request().Context(), id, toDepartmentInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDepartmentResponse(*view))
}

// Delete handles DELETE /api/departments/:id. Departments that still
// have employees are refused.
//
// @Summary      Delete a department
// @Tags         departments
// @Security     BearerAuth
// @Param        id  path  int  true  "Department ID"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /departments/{id} [delete]
func (h *DepartmentHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
