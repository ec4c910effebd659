package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront-gateway/internal/model"
	"storefront-gateway/internal/money"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) (*model.Order, error)
	Get(ctx context.Context, orderID string) (*model.Order, error)
	MarkPaid(ctx context.Context, tx *gorm.DB, orderID string) error
}

type orderRepoImpl struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepoImpl{db: db}
}

func (r *orderRepoImpl) Create(ctx context.Context, order *model.Order) (*model.Order, error) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	now := time.Now()
	order.Status = model.OrderStatusCreated
	order.CreatedAt = now.Format(time.RFC3339)

	items, err := json.Marshal(order.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}

	err = r.db.WithContext(ctx).Create(&orderRecord{
		ID:            order.ID,
		UserID:        order.UserID,
		ItemsJSON:     string(items),
		AddressID:     order.AddressID,
		PaymentMethod: order.PaymentMethod,
		ShippingFee:   order.ShippingFee.Decimal,
		Total:         order.Total.Decimal,
		Status:        order.Status,
		CreatedAt:     now,
	}).Error
	if err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}
	return order, nil
}

func (r *orderRepoImpl) Get(ctx context.Context, orderID string) (*model.Order, error) {
	var rec orderRecord
	err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("order %s: %w", orderID, ErrOrderNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	order := &model.Order{
		ID:            rec.ID,
		UserID:        rec.UserID,
		AddressID:     rec.AddressID,
		PaymentMethod: rec.PaymentMethod,
		ShippingFee:   money.NewAmount(rec.ShippingFee),
		Total:         money.NewAmount(rec.Total),
		Status:        rec.Status,
		CreatedAt:     rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(rec.ItemsJSON), &order.Items); err != nil {
			return nil, fmt.Errorf("decode order items: %w", err)
		}
	}
	return order, nil
}

func (r *orderRepoImpl) MarkPaid(ctx context.Context, tx *gorm.DB, orderID string) error {
	result := tx.WithContext(ctx).Model(&orderRecord{}).
		Where("id = ? AND status = ?", orderID, model.OrderStatusCreated).
		Updates(map[string]interface{}{
			"status":     model.OrderStatusPaid,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("mark order paid: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("order %s: %w", orderID, ErrOrderNotFound)
	}
	return nil
}
