package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"storefront-gateway/internal/model"
	"storefront-gateway/internal/money"
)

var ErrProductNotFound = errors.New("product not found")

type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Search(ctx context.Context, query string) ([]model.Product, error)
}

type productRepoImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepoImpl{db: db}
}

func (r *productRepoImpl) List(ctx context.Context) ([]model.Product, error) {
	var records []productRecord
	if err := r.db.WithContext(ctx).Order("id").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return toProducts(records), nil
}

func (r *productRepoImpl) Get(ctx context.Context, id string) (*model.Product, error) {
	var record productRecord
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("product %s: %w", id, ErrProductNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	p := toProduct(record)
	return &p, nil
}

func (r *productRepoImpl) Search(ctx context.Context, query string) ([]model.Product, error) {
	pattern := "%" + query + "%"
	var records []productRecord
	err := r.db.WithContext(ctx).
		Where("name LIKE ? OR description LIKE ?", pattern, pattern).
		Order("id").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return toProducts(records), nil
}

func toProduct(rec productRecord) model.Product {
	return model.Product{
		ID:            rec.ID,
		Name:          rec.Name,
		Description:   rec.Description,
		Price:         money.NewAmount(rec.Price),
		OriginalPrice: money.NewAmount(rec.OriginalPrice),
		ImageURL:      rec.ImageURL,
		Category:      rec.Category,
		Stock:         rec.Stock,
		Sales:         rec.Sales,
		Brand:         rec.Brand,
		Origin:        rec.Origin,
		CreatedAt:     rec.CreatedAt,
	}
}

func toProducts(records []productRecord) []model.Product {
	products := make([]model.Product, len(records))
	for i, rec := range records {
		products[i] = toProduct(rec)
	}
	return products
}
