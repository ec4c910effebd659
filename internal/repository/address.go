package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"storefront-gateway/internal/model"
)

type AddressRepository interface {
	List(ctx context.Context, userID string) ([]model.Address, error)
	Create(ctx context.Context, userID string, addr model.Address) (*model.Address, error)
}

type addressRepoImpl struct {
	db *gorm.DB
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepoImpl{db: db}
}

func (r *addressRepoImpl) List(ctx context.Context, userID string) ([]model.Address, error) {
	var records []addressRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, id").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}

	addresses := make([]model.Address, len(records))
	for i, rec := range records {
		addresses[i] = toAddress(rec)
	}
	return addresses, nil
}

// Create assigns a generated id when the caller did not provide one. The
// first address of a user becomes the default.
func (r *addressRepoImpl) Create(ctx context.Context, userID string, addr model.Address) (*model.Address, error) {
	if addr.ID == "" {
		addr.ID = uuid.NewString()
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&addressRecord{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			addr.IsDefault = true
		}
		return tx.Create(&addressRecord{
			ID:        addr.ID,
			UserID:    userID,
			Name:      addr.Name,
			Phone:     addr.Phone,
			Province:  addr.Province,
			City:      addr.City,
			Street:    addr.Street,
			IsDefault: addr.IsDefault,
		}).Error
	})
	if err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}
	return &addr, nil
}

func toAddress(rec addressRecord) model.Address {
	return model.Address{
		ID:        rec.ID,
		Name:      rec.Name,
		Phone:     rec.Phone,
		Province:  rec.Province,
		City:      rec.City,
		Street:    rec.Street,
		IsDefault: rec.IsDefault,
	}
}
