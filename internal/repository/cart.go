package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront-gateway/internal/model"
	"storefront-gateway/internal/money"
)

var ErrCartItemNotFound = errors.New("cart item not found")

type CartRepository interface {
	Get(ctx context.Context, userID string) (*model.Cart, error)
	AddItem(ctx context.Context, userID string, item model.CartItem) error
	SetQuantity(ctx context.Context, userID, productID string, quantity int) error
	RemoveItem(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}

type cartRepoImpl struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepoImpl{db: db}
}

// Get returns an empty cart for users without one.
func (r *cartRepoImpl) Get(ctx context.Context, userID string) (*model.Cart, error) {
	var records []cartItemRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("product_id").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	cart := &model.Cart{UserID: userID, Items: make([]model.CartItem, len(records))}
	for i, rec := range records {
		cart.Items[i] = model.CartItem{
			ProductID: rec.ProductID,
			Name:      rec.Name,
			Price:     money.NewAmount(rec.Price),
			Quantity:  rec.Quantity,
			ImageURL:  rec.ImageURL,
		}
	}
	return cart, nil
}

// AddItem merges the quantity into an existing line for the same product
// instead of creating a duplicate entry.
func (r *cartRepoImpl) AddItem(ctx context.Context, userID string, item model.CartItem) error {
	rec := cartItemRecord{
		UserID:    userID,
		ProductID: item.ProductID,
		Name:      item.Name,
		Price:     item.Price.Decimal,
		Quantity:  item.Quantity,
		ImageURL:  item.ImageURL,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("cart_items.quantity + ?", item.Quantity),
		}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("add cart item: %w", err)
	}
	return nil
}

func (r *cartRepoImpl) SetQuantity(ctx context.Context, userID, productID string, quantity int) error {
	result := r.db.WithContext(ctx).Model(&cartItemRecord{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity)
	if result.Error != nil {
		return fmt.Errorf("set cart quantity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", productID, ErrCartItemNotFound)
	}
	return nil
}

func (r *cartRepoImpl) RemoveItem(ctx context.Context, userID, productID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&cartItemRecord{})
	if result.Error != nil {
		return fmt.Errorf("remove cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product %s: %w", productID, ErrCartItemNotFound)
	}
	return nil
}

func (r *cartRepoImpl) Clear(ctx context.Context, userID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&cartItemRecord{}).Error
	if err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
