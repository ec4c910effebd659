package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"storefront-gateway/internal/model"
	"storefront-gateway/internal/repository"
)

type CartClient interface {
	Get(ctx context.Context, userID string) (*model.Cart, error)
	AddItem(ctx context.Context, userID string, item model.CartItem) error
	SetQuantity(ctx context.Context, userID, productID string, quantity int) error
	RemoveItem(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}

type cartClientImpl struct {
	api      *apiClient
	fallback repository.CartRepository // nil when fallback mode is off
	log      logrus.FieldLogger
}

func NewCartClient(cfg Config, fallback repository.CartRepository) CartClient {
	return &cartClientImpl{
		api:      newAPIClient(cfg),
		fallback: fallback,
		log:      cfg.Log,
	}
}

func cartPath(userID string, parts ...string) string {
	p := "/cart/" + url.PathEscape(userID)
	for _, part := range parts {
		p += "/" + url.PathEscape(part)
	}
	return p
}

func (c *cartClientImpl) Get(ctx context.Context, userID string) (*model.Cart, error) {
	body, err := c.api.get(ctx, cartPath(userID))
	if err != nil {
		if c.fallback != nil {
			c.log.WithError(err).Warn("cart api unavailable, serving offline cart")
			return c.fallback.Get(ctx, userID)
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	cart, err := decodeCart(userID, body)
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

// decodeCart accepts both a cart object and a bare array of items.
func decodeCart(userID string, data []byte) (*model.Cart, error) {
	data = bytes.TrimSpace(data)
	cart := &model.Cart{UserID: userID, Items: []model.CartItem{}}
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return cart, nil
	}
	if data[0] == '[' {
		if err := json.Unmarshal(data, &cart.Items); err != nil {
			return nil, fmt.Errorf("unexpected cart shape: %w", err)
		}
		return cart, nil
	}

	var wire struct {
		UserID string           `json:"userId"`
		Items  []model.CartItem `json:"items"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("unexpected cart shape: %w", err)
	}
	if wire.UserID != "" {
		cart.UserID = wire.UserID
	}
	if wire.Items != nil {
		cart.Items = wire.Items
	}
	return cart, nil
}

func (c *cartClientImpl) AddItem(ctx context.Context, userID string, item model.CartItem) error {
	_, err := c.api.send(ctx, http.MethodPost, cartPath(userID, "items"), item)
	if err != nil {
		if c.fallback != nil {
			c.log.WithError(err).Warn("cart api unavailable, adding item to offline cart")
			return c.fallback.AddItem(ctx, userID, item)
		}
		return fmt.Errorf("add cart item: %w", err)
	}
	return nil
}

func (c *cartClientImpl) SetQuantity(ctx context.Context, userID, productID string, quantity int) error {
	payload := map[string]int{"quantity": quantity}
	_, err := c.api.send(ctx, http.MethodPatch, cartPath(userID, "items", productID), payload)
	if err != nil {
		if c.fallback != nil {
			c.log.WithError(err).Warn("cart api unavailable, updating offline cart")
			return c.fallback.SetQuantity(ctx, userID, productID, quantity)
		}
		return fmt.Errorf("update cart quantity: %w", err)
	}
	return nil
}

func (c *cartClientImpl) RemoveItem(ctx context.Context, userID, productID string) error {
	_, err := c.api.send(ctx, http.MethodDelete, cartPath(userID, "items", productID), nil)
	if err != nil {
		if c.fallback != nil {
			c.log.WithError(err).Warn("cart api unavailable, removing item from offline cart")
			return c.fallback.RemoveItem(ctx, userID, productID)
		}
		return fmt.Errorf("remove cart item: %w", err)
	}
	return nil
}

func (c *cartClientImpl) Clear(ctx context.Context, userID string) error {
	_, err := c.api.send(ctx, http.MethodDelete, cartPath(userID), nil)
	if err != nil {
		if c.fallback != nil {
			c.log.WithError(err).Warn("cart api unavailable, clearing offline cart")
			return c.fallback.Clear(ctx, userID)
		}
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
