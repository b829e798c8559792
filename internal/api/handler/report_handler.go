package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hcm-systems/hcm-api/internal/core/ports"
)

// ReportHandler serves workforce aggregates.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Summary handles GET /api/reports/summary.
//
// @Summary      Workforce summary
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.ReportSummary
// @Failure      403  {object}  errorResponse
// @Router       /reports/summary [get]
func (h *ReportHandler) Summary(c echo.Context) error {
	summary, err := h.service.Summary(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, summary)
}
