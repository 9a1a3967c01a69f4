package handler

import (
	"net/http"

	"connectvault/internal/dto"
	"connectvault/internal/service"

	"github.com/labstack/echo/v4"
)

type DashboardHandler struct {
	dashboardService service.DashboardService
}

func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// Summary never fails outright: degraded sources report zero and the rest
// of the view stays visible.
func (h *DashboardHandler) Summary(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	summary := h.dashboardService.Summary(ctx, owner)

	return c.JSON(http.StatusOK, dto.FromDashboardSummary(summary))
}
