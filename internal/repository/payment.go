package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront-gateway/internal/model"
	"storefront-gateway/internal/money"
)

type PaymentRepository interface {
	Process(ctx context.Context, orderID, method string, amount money.Amount) (*model.PaymentResult, error)
}

type paymentRepoImpl struct {
	db     *gorm.DB
	orders OrderRepository
}

func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepoImpl{db: db, orders: NewOrderRepository(db)}
}

// Process records the payment and marks the order paid in one
// transaction, mirroring what the remote payment endpoint does.
func (r *paymentRepoImpl) Process(ctx context.Context, orderID, method string, amount money.Amount) (*model.PaymentResult, error) {
	now := time.Now()
	result := &model.PaymentResult{
		OrderID:     orderID,
		PaymentID:   uuid.NewString(),
		Status:      model.PaymentStatusCompleted,
		Amount:      amount,
		Method:      method,
		CompletedAt: now.Format(time.RFC3339),
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.orders.MarkPaid(ctx, tx, orderID); err != nil {
			return err
		}
		return tx.Create(&paymentRecord{
			PaymentID:   result.PaymentID,
			OrderID:     orderID,
			Status:      result.Status,
			Amount:      amount.Decimal,
			Method:      method,
			CompletedAt: now,
		}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("process payment: %w", err)
	}
	return result, nil
}
