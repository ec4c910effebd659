package dto

import (
	"storefront-gateway/internal/model"
	"storefront-gateway/internal/money"
)

// ---- storefront surface (browser-facing) ----

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CartResponse struct {
	UserID            string           `json:"userId"`
	Items             []model.CartItem `json:"items"`
	Subtotal          money.Amount     `json:"subtotal"`
	FormattedSubtotal string           `json:"formattedSubtotal"`
}

type SelectAddressRequest struct {
	AddressID string `json:"addressId"`
}

type SelectPaymentRequest struct {
	Method string `json:"method"`
}

type SessionResponse struct {
	Step              string           `json:"step"`
	Addresses         []model.Address  `json:"addresses"`
	SelectedAddressID string           `json:"selectedAddressId,omitempty"`
	PaymentMethod     string           `json:"paymentMethod,omitempty"`
	Items             []model.CartItem `json:"items"`
	Subtotal          money.Amount     `json:"subtotal"`
	ShippingFee       money.Amount     `json:"shippingFee"`
	Total             money.Amount     `json:"total"`
	FormattedTotal    string           `json:"formattedTotal"`
}

type ConfirmationResponse struct {
	OrderID        string               `json:"orderId"`
	Total          money.Amount         `json:"total"`
	FormattedTotal string               `json:"formattedTotal"`
	Payment        *model.PaymentResult `json:"payment"`
}

// ---- commerce API payloads (upstream-facing) ----

// OrderRequest is the create-order payload sent to the commerce API.
// Total must equal subtotal plus shipping fee at creation time.
type OrderRequest struct {
	Items         []model.CartItem `json:"items"`
	AddressID     string           `json:"addressId"`
	PaymentMethod string           `json:"paymentMethod"`
	Total         money.Amount     `json:"total"`
	ShippingFee   money.Amount     `json:"shippingFee"`
}

type PaymentRequest struct {
	OrderID string       `json:"orderId"`
	Method  string       `json:"method"`
	Amount  money.Amount `json:"amount"`
}
