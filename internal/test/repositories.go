package test

import (
	"context"
	"sort"

	domainErrors "github.com/vominhduc11/dealerhub/internal/domain/errors"
	"github.com/vominhduc11/dealerhub/internal/domain/model"
)

// DealerRepositoryStub stores dealers in-memory for tests.
type DealerRepositoryStub struct {
	Dealers map[string]*model.Dealer
	ByID    map[int64]*model.Dealer
	Next    int64
	Err     error
}

// NewDealerRepositoryStub constructs stub repository with initialized maps.
func NewDealerRepositoryStub() *DealerRepositoryStub {
	return &DealerRepositoryStub{
		Dealers: make(map[string]*model.Dealer),
		ByID:    make(map[int64]*model.Dealer),
		Next:    1,
	}
}

// Create registers dealer unless already exists or stub has explicit error.
func (s *DealerRepositoryStub) Create(ctx context.Context, login, passwordHash string) (*model.Dealer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Dealers == nil {
		s.Dealers = make(map[string]*model.Dealer)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.Dealer)
	}
	if _, exists := s.Dealers[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	dealer := &model.Dealer{ID: s.Next, Login: login, PasswordHash: passwordHash}
	s.Next++
	s.Dealers[login] = dealer
	s.ByID[dealer.ID] = dealer
	return dealer, nil
}

// GetByLogin fetches dealer by login or returns not found.
func (s *DealerRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.Dealer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if dealer, ok := s.Dealers[login]; ok {
		return dealer, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches dealer by identifier or returns not found.
func (s *DealerRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Dealer, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if dealer, ok := s.ByID[id]; ok {
		return dealer, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub keeps the catalog in-memory for tests.
type ProductRepositoryStub struct {
	Products map[string]model.Product
	Err      error
	Upserts  []model.Product
}

// NewProductRepositoryStub constructs stub catalog seeded with given products.
func NewProductRepositoryStub(products ...model.Product) *ProductRepositoryStub {
	stub := &ProductRepositoryStub{Products: make(map[string]model.Product)}
	for _, p := range products {
		stub.Products[p.ID] = p
	}
	return stub
}

// List returns stored products ordered by identifier.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Product, 0, len(s.Products))
	for _, p := range s.Products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetByID fetches one product or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if p, ok := s.Products[id]; ok {
		return &p, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Upsert records the write and mirrors it into the map.
func (s *ProductRepositoryStub) Upsert(ctx context.Context, product model.Product) error {
	if s.Err != nil {
		return s.Err
	}
	if s.Products == nil {
		s.Products = make(map[string]model.Product)
	}
	s.Products[product.ID] = product
	s.Upserts = append(s.Upserts, product)
	return nil
}

// SampleProduct builds a catalog fixture with sane wholesale defaults.
func SampleProduct(id string) model.Product {
	return model.Product{
		ID:          id,
		Name:        "Headset " + id,
		SKU:         "SKU-" + id,
		Category:    "audio",
		UnitPrice:   1_200_000,
		Unit:        "pcs",
		Stock:       500,
		MinOrderQty: 5,
		PackSize:    10,
	}
}
