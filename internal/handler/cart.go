package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-gateway/internal/dto"
	"storefront-gateway/internal/model"
	"storefront-gateway/internal/money"
	"storefront-gateway/internal/service"
)

type CartHandler struct {
	cart     service.CartService
	currency string
}

func NewCartHandler(cart service.CartService, currency string) *CartHandler {
	return &CartHandler{cart: cart, currency: currency}
}

func (h *CartHandler) cartResponse(cart *model.Cart) dto.CartResponse {
	subtotal := money.NewAmount(service.Subtotal(cart))
	return dto.CartResponse{
		UserID:            cart.UserID,
		Items:             cart.Items,
		Subtotal:          subtotal,
		FormattedSubtotal: money.Format(h.currency, subtotal),
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()

	cart, err := h.cart.GetCart(ctx, c.Param("userId"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, h.cartResponse(cart))
}

func (h *CartHandler) AddItem(c echo.Context) error {
	ctx := c.Request().Context()

	var item model.CartItem
	if err := c.Bind(&item); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cart, err := h.cart.AddItem(ctx, c.Param("userId"), item)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, h.cartResponse(cart))
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	cart, err := h.cart.SetQuantity(ctx, c.Param("userId"), c.Param("itemId"), req.Quantity)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, h.cartResponse(cart))
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()

	cart, err := h.cart.RemoveItem(ctx, c.Param("userId"), c.Param("itemId"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, h.cartResponse(cart))
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.cart.Clear(ctx, c.Param("userId")); err != nil {
		return respondError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
