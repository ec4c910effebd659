package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-gateway/internal/dto"
	"storefront-gateway/internal/model"
	"storefront-gateway/internal/money"
	"storefront-gateway/internal/service"
)

type CheckoutHandler struct {
	checkout service.CheckoutService
	currency string
}

func NewCheckoutHandler(checkout service.CheckoutService, currency string) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, currency: currency}
}

func (h *CheckoutHandler) sessionResponse(sess *service.Session) dto.SessionResponse {
	quote := h.checkout.Quote(sess.Cart)
	total := money.NewAmount(quote.Total)
	return dto.SessionResponse{
		Step:              string(sess.Step),
		Addresses:         sess.Addresses,
		SelectedAddressID: sess.SelectedAddressID,
		PaymentMethod:     sess.PaymentMethod,
		Items:             sess.Cart.Items,
		Subtotal:          money.NewAmount(quote.Subtotal),
		ShippingFee:       money.NewAmount(quote.ShippingFee),
		Total:             total,
		FormattedTotal:    money.Format(h.currency, total),
	}
}

func (h *CheckoutHandler) BeginSession(c echo.Context) error {
	ctx := c.Request().Context()

	sess, err := h.checkout.Begin(ctx, c.Param("userId"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, h.sessionResponse(sess))
}

func (h *CheckoutHandler) GetSession(c echo.Context) error {
	sess, err := h.checkout.Session(c.Param("userId"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, h.sessionResponse(sess))
}

func (h *CheckoutHandler) ListAddresses(c echo.Context) error {
	ctx := c.Request().Context()

	addresses, err := h.checkout.ListAddresses(ctx, c.Param("userId"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, addresses)
}

func (h *CheckoutHandler) AddAddress(c echo.Context) error {
	ctx := c.Request().Context()

	var addr model.Address
	if err := c.Bind(&addr); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	created, err := h.checkout.AddAddress(ctx, c.Param("userId"), addr)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *CheckoutHandler) SelectAddress(c echo.Context) error {
	var req dto.SelectAddressRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.checkout.SelectAddress(c.Param("userId"), req.AddressID); err != nil {
		return respondError(err)
	}
	sess, err := h.checkout.Session(c.Param("userId"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, h.sessionResponse(sess))
}

func (h *CheckoutHandler) SelectPayment(c echo.Context) error {
	var req dto.SelectPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := h.checkout.SelectPayment(c.Param("userId"), req.Method); err != nil {
		return respondError(err)
	}
	sess, err := h.checkout.Session(c.Param("userId"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, h.sessionResponse(sess))
}

func (h *CheckoutHandler) NextStep(c echo.Context) error {
	sess, err := h.checkout.Next(c.Param("userId"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, h.sessionResponse(sess))
}

func (h *CheckoutHandler) PrevStep(c echo.Context) error {
	sess, err := h.checkout.Back(c.Param("userId"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, h.sessionResponse(sess))
}

func (h *CheckoutHandler) SubmitOrder(c echo.Context) error {
	ctx := c.Request().Context()

	confirmation, err := h.checkout.Submit(ctx, c.Param("userId"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, dto.ConfirmationResponse{
		OrderID:        confirmation.Order.ID,
		Total:          confirmation.Total,
		FormattedTotal: money.Format(h.currency, confirmation.Total),
		Payment:        confirmation.Payment,
	})
}
