package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"

	"storefront-gateway/internal/model"
	"storefront-gateway/internal/money"
	"storefront-gateway/internal/repository"
)

type ProductClient interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Search(ctx context.Context, query string) ([]model.Product, error)
}

type productClientImpl struct {
	api      *apiClient
	fallback repository.ProductRepository // nil when fallback mode is off
	log      logrus.FieldLogger
}

func NewProductClient(cfg Config, fallback repository.ProductRepository) ProductClient {
	return &productClientImpl{
		api:      newAPIClient(cfg),
		fallback: fallback,
		log:      cfg.Log,
	}
}

// wireProduct tolerates both price encodings: the "price" field itself
// may be a number or a {units, nanos} object, and some API versions put
// the fixed-point value under "priceUsd" instead.
type wireProduct struct {
	model.Product
	PriceUSD *money.Money `json:"priceUsd"`
}

func (w wireProduct) normalize() model.Product {
	p := w.Product
	if w.PriceUSD != nil {
		p.Price = money.FromMoney(w.PriceUSD)
	}
	return p
}

func normalizeProducts(wire []wireProduct) []model.Product {
	products := make([]model.Product, len(wire))
	for i, w := range wire {
		products[i] = w.normalize()
	}
	return products
}

func (c *productClientImpl) List(ctx context.Context) ([]model.Product, error) {
	body, err := c.api.get(ctx, "/products")
	if err != nil {
		if c.fallback != nil {
			c.log.WithError(err).Warn("product api unavailable, serving sample catalog")
			return c.fallback.List(ctx)
		}
		return nil, fmt.Errorf("list products: %w", err)
	}

	var wire []wireProduct
	if err := decodeList(body, &wire, "products", "items"); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return normalizeProducts(wire), nil
}

func (c *productClientImpl) Get(ctx context.Context, id string) (*model.Product, error) {
	body, err := c.api.get(ctx, "/products/"+url.PathEscape(id))
	if err != nil {
		if c.fallback != nil {
			c.log.WithError(err).WithField("id", id).Warn("product api unavailable, serving sample product")
			return c.fallback.Get(ctx, id)
		}
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}

	var wire wireProduct
	if err := decodeObject(body, &wire); err != nil {
		return nil, fmt.Errorf("get product %s: %w", id, err)
	}
	product := wire.normalize()
	return &product, nil
}

func (c *productClientImpl) Search(ctx context.Context, query string) ([]model.Product, error) {
	body, err := c.api.get(ctx, "/products/search?query="+url.QueryEscape(query))
	if err != nil {
		if c.fallback != nil {
			c.log.WithError(err).Warn("product api unavailable, searching sample catalog")
			return c.fallback.Search(ctx, query)
		}
		return nil, fmt.Errorf("search products: %w", err)
	}

	var wire []wireProduct
	if err := decodeList(body, &wire, "products", "items", "results"); err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return normalizeProducts(wire), nil
}
