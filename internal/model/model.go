package model

import "storefront-gateway/internal/money"

// Order statuses as reported by the commerce API.
const (
	OrderStatusCreated = "CREATED"
	OrderStatusPaid    = "PAID"
)

// Payment statuses.
const (
	PaymentStatusCompleted = "COMPLETED"
)

type Product struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Description   string       `json:"description"`
	Price         money.Amount `json:"price"`
	OriginalPrice money.Amount `json:"originalPrice"`
	ImageURL      string       `json:"imageUrl"`
	Category      string       `json:"category"`
	Stock         int          `json:"stock"`
	Sales         int          `json:"sales"`
	Brand         string       `json:"brand,omitempty"`
	Origin        string       `json:"origin,omitempty"`
	CreatedAt     string       `json:"createdAt,omitempty"`
}

// CartItem is one line of a cart, keyed by product id. Adding the same
// product twice merges quantities instead of creating a second line.
type CartItem struct {
	ProductID      string       `json:"productId"`
	Name           string       `json:"name"`
	Price          money.Amount `json:"price"`
	Quantity       int          `json:"quantity"`
	ImageURL       string       `json:"imageUrl,omitempty"`
	FormattedPrice string       `json:"formattedPrice,omitempty"`
}

type Cart struct {
	UserID string     `json:"userId"`
	Items  []CartItem `json:"items"`
}

type Address struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Province  string `json:"province"`
	City      string `json:"city"`
	Street    string `json:"address"`
	IsDefault bool   `json:"isDefault"`
}

// Order is immutable once created; Items is a snapshot of the cart at
// creation time.
type Order struct {
	ID            string       `json:"id"`
	UserID        string       `json:"userId"`
	Items         []CartItem   `json:"items"`
	AddressID     string       `json:"addressId"`
	PaymentMethod string       `json:"paymentMethod"`
	ShippingFee   money.Amount `json:"shippingFee"`
	Total         money.Amount `json:"total"`
	Status        string       `json:"status"`
	CreatedAt     string       `json:"createdAt,omitempty"`
}

// PaymentResult is the terminal record of a checkout.
type PaymentResult struct {
	OrderID     string       `json:"orderId"`
	PaymentID   string       `json:"paymentId"`
	Status      string       `json:"status"`
	Amount      money.Amount `json:"amount"`
	Method      string       `json:"method"`
	CompletedAt string       `json:"completedAt,omitempty"`
}
