package repository

import (
	"context"

	"github.com/vominhduc11/dealerhub/internal/domain/model"
)

// ProductRepository provides read access to the catalog plus the upsert
// used by the feed syncer. The engine itself only ever reads.
type ProductRepository interface {
	List(ctx context.Context) ([]model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	Upsert(ctx context.Context, product model.Product) error
}
