package handler

import (
	"net/http"

	"connectvault/internal/dto"
	"connectvault/internal/service"

	"github.com/labstack/echo/v4"
)

type PromoLinkHandler struct {
	promoLinkService service.PromoLinkService
}

func NewPromoLinkHandler(promoLinkService service.PromoLinkService) *PromoLinkHandler {
	return &PromoLinkHandler{
		promoLinkService: promoLinkService,
	}
}

func (h *PromoLinkHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	links, err := h.promoLinkService.List(ctx, owner)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromPromoLinks(links))
}

func (h *PromoLinkHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req dto.CreatePromoLinkRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	link, err := h.promoLinkService.Create(ctx, owner, req.ToInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromPromoLink(link))
}

func (h *PromoLinkHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	link, err := h.promoLinkService.Get(ctx, owner, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromPromoLink(link))
}

func (h *PromoLinkHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	var req dto.UpdatePromoLinkRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	link, err := h.promoLinkService.Update(ctx, owner, c.Param("id"), req.ToInput())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.FromPromoLink(link))
}

func (h *PromoLinkHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	owner, err := ownerID(c)
	if err != nil {
		return err
	}

	if err := h.promoLinkService.Delete(ctx, owner, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "promo link deleted"})
}
