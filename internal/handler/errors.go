package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-gateway/internal/repository"
	"storefront-gateway/internal/service"
)

// respondError maps service errors onto the storefront's status codes:
// validation failures become 422 with the inline message, missing
// resources 404, and anything else is an upstream failure reported
// as 502.
func respondError(err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrNoAddressSelected),
		errors.Is(err, service.ErrUnknownAddress),
		errors.Is(err, service.ErrNoPaymentMethod),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrIncompleteAddress):
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, service.ErrNoSession),
		errors.Is(err, repository.ErrProductNotFound),
		errors.Is(err, repository.ErrCartItemNotFound),
		errors.Is(err, repository.ErrOrderNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return echo.NewHTTPError(http.StatusBadGateway, "commerce api unavailable")
	}
}
