package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

type productRecord struct {
	ID            string `gorm:"primaryKey"`
	Name          string
	Description   string
	Price         decimal.Decimal `gorm:"type:numeric"`
	OriginalPrice decimal.Decimal `gorm:"type:numeric"`
	ImageURL      string
	Category      string
	Stock         int
	Sales         int
	Brand         string
	Origin        string
	CreatedAt     string
}

func (productRecord) TableName() string { return "products" }

type cartItemRecord struct {
	UserID    string `gorm:"primaryKey"`
	ProductID string `gorm:"primaryKey"`
	Name      string
	Price     decimal.Decimal `gorm:"type:numeric"`
	Quantity  int
	ImageURL  string
}

func (cartItemRecord) TableName() string { return "cart_items" }

type addressRecord struct {
	ID        string `gorm:"primaryKey"`
	UserID    string `gorm:"index"`
	Name      string
	Phone     string
	Province  string
	City      string
	Street    string
	IsDefault bool
}

func (addressRecord) TableName() string { return "addresses" }

type orderRecord struct {
	ID            string `gorm:"primaryKey"`
	UserID        string `gorm:"index"`
	ItemsJSON     string `gorm:"column:items"`
	AddressID     string
	PaymentMethod string
	ShippingFee   decimal.Decimal `gorm:"type:numeric"`
	Total         decimal.Decimal `gorm:"type:numeric"`
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (orderRecord) TableName() string { return "orders" }

type paymentRecord struct {
	PaymentID   string `gorm:"primaryKey"`
	OrderID     string `gorm:"index"`
	Status      string
	Amount      decimal.Decimal `gorm:"type:numeric"`
	Method      string
	CompletedAt time.Time
}

func (paymentRecord) TableName() string { return "payments" }
