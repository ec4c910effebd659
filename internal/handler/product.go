package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront-gateway/internal/service"
)

type ProductHandler struct {
	products service.ProductService
}

func NewProductHandler(products service.ProductService) *ProductHandler {
	return &ProductHandler{products: products}
}

func (h *ProductHandler) ListProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.products.List(ctx, c.QueryParam("category"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()

	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "product id not specified")
	}

	product, err := h.products.Get(ctx, id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, product)
}

func (h *ProductHandler) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.products.Search(ctx, c.QueryParam("query"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, products)
}
