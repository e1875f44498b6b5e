package repository

import (
	"context"

	"github.com/vominhduc11/dealerhub/internal/domain/model"
)

// DealerRepository persists dealer accounts.
type DealerRepository interface {
	Create(ctx context.Context, login, passwordHash string) (*model.Dealer, error)
	GetByLogin(ctx context.Context, login string) (*model.Dealer, error)
	GetByID(ctx context.Context, id int64) (*model.Dealer, error)
}
