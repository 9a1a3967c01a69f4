package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"connectvault/internal/dto"
	"connectvault/internal/service"

	"github.com/labstack/echo/v4"
)

type CommissionHandler struct {
	commissionService service.CommissionService
}

func NewCommissionHandler(commissionService service.CommissionService) *CommissionHandler {
	return &CommissionHandler{
		commissionService: commissionService,
	}
}

func (h *CommissionHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	commissions, err := h.commissionService.List(ctx, owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromCommissions(commissions))
}

func (h *CommissionHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req dto.CreateCommissionRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	commission, err := h.commissionService.Create(ctx, owner, req.ToInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromCommission(commission))
}

func (h *CommissionHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	commission, err := h.commissionService.Get(ctx, owner, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromCommission(commission))
}

func (h *CommissionHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateCommissionRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	commission, err := h.commissionService.Update(ctx, owner, c.Param("id"), req.ToInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromCommission(commission))
}

func (h *CommissionHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	if err := h.commissionService.Delete(ctx, owner, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "commission deleted"})
}

func (h *CommissionHandler) Summary(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	summary, err := h.commissionService.Summarize(ctx, owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromCommissionSummary(summary))
}

// ExportCSV buffers the export before writing so a store failure still
// produces a clean error response instead of a truncated download.
func (h *CommissionHandler) ExportCSV(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := h.commissionService.ExportCSV(ctx, owner, &buf); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", exportFilename("commissions", "csv")))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *CommissionHandler) ExportXLSX(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	f, err := h.commissionService.ExportXLSX(ctx, owner)
	if err != nil {
		return err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", exportFilename("commissions", "xlsx")))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func exportFilename(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("20060102"), ext)
}
