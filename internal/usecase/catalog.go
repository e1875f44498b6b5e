package usecase

import (
	"context"

	"github.com/vominhduc11/dealerhub/internal/domain/model"
	"github.com/vominhduc11/dealerhub/internal/domain/repository"
)

// CatalogUseCase reads the mirrored product catalog and accepts feed updates.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// List returns all catalog products.
func (u *CatalogUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// Get returns one product by ID.
func (u *CatalogUseCase) Get(ctx context.Context, id string) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// StoreProduct persists a product pulled from the feed.
func (u *CatalogUseCase) StoreProduct(ctx context.Context, product model.Product) error {
	return u.products.Upsert(ctx, product)
}
