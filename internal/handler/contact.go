package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"connectvault/internal/dto"
	"connectvault/internal/service"

	"github.com/labstack/echo/v4"
)

type ContactHandler struct {
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

func (h *ContactHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	contacts, err := h.contactService.List(ctx, owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromContacts(contacts))
}

func (h *ContactHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req dto.CreateContactRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	contact, err := h.contactService.Create(ctx, owner, req.ToInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromContact(contact))
}

func (h *ContactHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	contact, err := h.contactService.Get(ctx, owner, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromContact(contact))
}

func (h *ContactHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateContactRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	contact, err := h.contactService.Update(ctx, owner, c.Param("id"), req.ToInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromContact(contact))
}

func (h *ContactHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	if err := h.contactService.Delete(ctx, owner, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "contact deleted"})
}

func (h *ContactHandler) ExportCSV(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := h.contactService.ExportCSV(ctx, owner, &buf); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", exportFilename("contacts", "csv")))
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
