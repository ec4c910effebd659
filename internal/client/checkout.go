package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"

	"storefront-gateway/internal/dto"
	"storefront-gateway/internal/model"
	"storefront-gateway/internal/repository"
)

type CheckoutClient interface {
	ListAddresses(ctx context.Context, userID string) ([]model.Address, error)
	CreateAddress(ctx context.Context, userID string, addr model.Address) (*model.Address, error)
	CreateOrder(ctx context.Context, userID string, req dto.OrderRequest) (*model.Order, error)
	ProcessPayment(ctx context.Context, orderID string, req dto.PaymentRequest) (*model.PaymentResult, error)
}

// checkoutFallback is the subset of the offline store the checkout
// client needs.
type checkoutFallback struct {
	Addresses repository.AddressRepository
	Orders    repository.OrderRepository
	Payments  repository.PaymentRepository
}

type checkoutClientImpl struct {
	api      *apiClient
	fallback *checkoutFallback // nil when fallback mode is off
	log      logrus.FieldLogger
}

func NewCheckoutClient(cfg Config, store *repository.Store) CheckoutClient {
	c := &checkoutClientImpl{
		api: newAPIClient(cfg),
		log: cfg.Log,
	}
	if store != nil {
		c.fallback = &checkoutFallback{
			Addresses: store.Addresses,
			Orders:    store.Orders,
			Payments:  store.Payments,
		}
	}
	return c
}

func (c *checkoutClientImpl) ListAddresses(ctx context.Context, userID string) ([]model.Address, error) {
	body, err := c.api.get(ctx, "/checkout/"+url.PathEscape(userID)+"/addresses")
	if err != nil {
		if c.fallback != nil {
			c.log.WithError(err).Warn("checkout api unavailable, serving offline addresses")
			return c.fallback.Addresses.List(ctx, userID)
		}
		return nil, fmt.Errorf("list addresses: %w", err)
	}

	var addresses []model.Address
	if err := decodeList(body, &addresses, "addresses", "items"); err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	return addresses, nil
}

func (c *checkoutClientImpl) CreateAddress(ctx context.Context, userID string, addr model.Address) (*model.Address, error) {
	body, err := c.api.send(ctx, http.MethodPost, "/checkout/"+url.PathEscape(userID)+"/addresses", addr)
	if err != nil {
		if c.fallback != nil {
			c.log.WithError(err).Warn("checkout api unavailable, storing address offline")
			return c.fallback.Addresses.Create(ctx, userID, addr)
		}
		return nil, fmt.Errorf("create address: %w", err)
	}

	var created model.Address
	if err := decodeObject(body, &created); err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}
	return &created, nil
}

func (c *checkoutClientImpl) CreateOrder(ctx context.Context, userID string, req dto.OrderRequest) (*model.Order, error) {
	body, err := c.api.send(ctx, http.MethodPost, "/checkout/"+url.PathEscape(userID)+"/orders", req)
	if err != nil {
		if c.fallback != nil {
			c.log.WithError(err).Warn("checkout api unavailable, storing order offline")
			return c.fallback.Orders.Create(ctx, &model.Order{
				UserID:        userID,
				Items:         req.Items,
				AddressID:     req.AddressID,
				PaymentMethod: req.PaymentMethod,
				ShippingFee:   req.ShippingFee,
				Total:         req.Total,
			})
		}
		return nil, fmt.Errorf("create order: %w", err)
	}

	var order model.Order
	if err := decodeObject(body, &order); err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return &order, nil
}

func (c *checkoutClientImpl) ProcessPayment(ctx context.Context, orderID string, req dto.PaymentRequest) (*model.PaymentResult, error) {
	body, err := c.api.send(ctx, http.MethodPost, "/checkout/payment/"+url.PathEscape(orderID), req)
	if err != nil {
		if c.fallback != nil {
			c.log.WithError(err).Warn("checkout api unavailable, processing payment offline")
			return c.fallback.Payments.Process(ctx, orderID, req.Method, req.Amount)
		}
		return nil, fmt.Errorf("process payment: %w", err)
	}

	var result model.PaymentResult
	if err := decodeObject(body, &result); err != nil {
		return nil, fmt.Errorf("process payment: %w", err)
	}
	return &result, nil
}
