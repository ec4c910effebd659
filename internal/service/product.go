package service

import (
	"context"

	"storefront-gateway/internal/client"
	"storefront-gateway/internal/model"
)

type ProductService interface {
	List(ctx context.Context, category string) ([]model.Product, error)
	Get(ctx context.Context, id string) (*model.Product, error)
	Search(ctx context.Context, query string) ([]model.Product, error)
}

type productServiceImpl struct {
	client client.ProductClient
}

func NewProductService(productClient client.ProductClient) ProductService {
	return &productServiceImpl{client: productClient}
}

func (s *productServiceImpl) List(ctx context.Context, category string) ([]model.Product, error) {
	products, err := s.client.List(ctx)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return products, nil
	}

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *productServiceImpl) Get(ctx context.Context, id string) (*model.Product, error) {
	return s.client.Get(ctx, id)
}

func (s *productServiceImpl) Search(ctx context.Context, query string) ([]model.Product, error) {
	return s.client.Search(ctx, query)
}
