package test

import (
	"context"
	"sync"

	"github.com/vominhduc11/dealerhub/internal/domain/model"
	"github.com/vominhduc11/dealerhub/internal/pricing"
	"github.com/vominhduc11/dealerhub/internal/session"
)

// AuthFacadeStub simulates authentication facade interactions.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseFn        func(string) (int64, error)
}

// Register returns token for successful registration scenarios.
func (s AuthFacadeStub) Register(ctx context.Context, login, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, password)
	}
	return "token", nil
}

// Authenticate returns token for successful authentication scenarios.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// ParseToken returns stored identifier for authenticated dealer.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return 1, nil
}

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	ProductsFn      func(context.Context) ([]model.Product, error)
	CartFn          func(int64) session.View
	DiscountTiersFn func(int64) []pricing.RuleStatus
}

// Products returns the configured feed or a single fixture product.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{SampleProduct("p-1")}, nil
}

// Cart returns the configured view or an empty one.
func (s CatalogFacadeStub) Cart(dealerID int64) session.View {
	if s.CartFn != nil {
		return s.CartFn(dealerID)
	}
	return session.View{}
}

// DiscountTiers returns configured statuses or the default table unqualified.
func (s CatalogFacadeStub) DiscountTiers(dealerID int64) []pricing.RuleStatus {
	if s.DiscountTiersFn != nil {
		return s.DiscountTiersFn(dealerID)
	}
	return pricing.Statuses(pricing.DefaultRules, pricing.Context{})
}

// CartFacadeStub provides controllable behaviour for cart endpoints.
type CartFacadeStub struct {
	CartFn    func(int64) session.View
	AddFn     func(context.Context, int64, string, int64) (session.View, error)
	UpdateFn  func(int64, string, int64) session.View
	RemoveFn  func(int64, string) session.View
	ClearFn   func(int64) session.View
	SetNoteFn func(int64, string) session.View
}

// Cart returns the configured view or an empty one.
func (s CartFacadeStub) Cart(dealerID int64) session.View {
	if s.CartFn != nil {
		return s.CartFn(dealerID)
	}
	return session.View{}
}

// AddToCart delegates to the override or echoes an empty view.
func (s CartFacadeStub) AddToCart(ctx context.Context, dealerID int64, productID string, quantity int64) (session.View, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, dealerID, productID, quantity)
	}
	return session.View{}, nil
}

// UpdateCartItem delegates to the override or echoes an empty view.
func (s CartFacadeStub) UpdateCartItem(dealerID int64, productID string, quantity int64) session.View {
	if s.UpdateFn != nil {
		return s.UpdateFn(dealerID, productID, quantity)
	}
	return session.View{}
}

// RemoveCartItem delegates to the override or echoes an empty view.
func (s CartFacadeStub) RemoveCartItem(dealerID int64, productID string) session.View {
	if s.RemoveFn != nil {
		return s.RemoveFn(dealerID, productID)
	}
	return session.View{}
}

// ClearCart delegates to the override or echoes an empty view.
func (s CartFacadeStub) ClearCart(dealerID int64) session.View {
	if s.ClearFn != nil {
		return s.ClearFn(dealerID)
	}
	return session.View{}
}

// SetCartNote delegates to the override or echoes an empty view.
func (s CartFacadeStub) SetCartNote(dealerID int64, note string) session.View {
	if s.SetNoteFn != nil {
		return s.SetNoteFn(dealerID, note)
	}
	return session.View{}
}

// CheckoutFacadeStub provides controllable behaviour for order endpoints.
type CheckoutFacadeStub struct {
	CartFn     func(int64) session.View
	PlaceFn    func(int64, string) *model.Order
	CurrentFn  func(int64) *model.Order
	PayFn      func(int64) model.PaymentStatus
	StartNewFn func(int64) session.View
}

// Cart returns the configured view or an empty one.
func (s CheckoutFacadeStub) Cart(dealerID int64) session.View {
	if s.CartFn != nil {
		return s.CartFn(dealerID)
	}
	return session.View{}
}

// PlaceOrder returns the configured order or a minimal placed order.
func (s CheckoutFacadeStub) PlaceOrder(dealerID int64, note string) *model.Order {
	if s.PlaceFn != nil {
		return s.PlaceFn(dealerID, note)
	}
	return &model.Order{ID: "DH-19700101-0001", Note: note}
}

// CurrentOrder returns the configured order, nil by default.
func (s CheckoutFacadeStub) CurrentOrder(dealerID int64) *model.Order {
	if s.CurrentFn != nil {
		return s.CurrentFn(dealerID)
	}
	return nil
}

// PayOrder returns the configured status or success.
func (s CheckoutFacadeStub) PayOrder(dealerID int64) model.PaymentStatus {
	if s.PayFn != nil {
		return s.PayFn(dealerID)
	}
	return model.PaymentStatusSuccess
}

// StartNewOrder delegates to the override or echoes an empty view.
func (s CheckoutFacadeStub) StartNewOrder(dealerID int64) session.View {
	if s.StartNewFn != nil {
		return s.StartNewFn(dealerID)
	}
	return session.View{}
}

// StorefrontFacadeStub aggregates facade dependencies for HTTP layer tests.
type StorefrontFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	CheckoutFacadeStub

	CartFn func(int64) session.View
}

// Cart resolves the promoted-method ambiguity between the embedded stubs.
func (s StorefrontFacadeStub) Cart(dealerID int64) session.View {
	if s.CartFn != nil {
		return s.CartFn(dealerID)
	}
	return s.CartFacadeStub.Cart(dealerID)
}

// WorkerFacadeStub mimics syncer interactions with the storefront facade.
type WorkerFacadeStub struct {
	Batches       [][]model.Product
	FetchFn       func(context.Context) ([]model.Product, error)
	StoreFn       func(context.Context, model.Product) error
	Stored        []model.Product
	mu            sync.Mutex
	fetchCallsCnt int
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// FetchCatalog returns batches from the configured queue.
func (s *WorkerFacadeStub) FetchCatalog(ctx context.Context) ([]model.Product, error) {
	if s.FetchFn != nil {
		return s.FetchFn(ctx)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fetchCallsCnt < len(s.Batches) {
		batch := s.Batches[s.fetchCallsCnt]
		s.fetchCallsCnt++
		return batch, nil
	}
	return nil, nil
}

// StoreProduct records the write.
func (s *WorkerFacadeStub) StoreProduct(ctx context.Context, product model.Product) error {
	if s.StoreFn != nil {
		return s.StoreFn(ctx, product)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Stored = append(s.Stored, product)
	return nil
}

// CatalogProviderStub fetches the product feed for tests.
type CatalogProviderStub struct {
	FetchFn  func(context.Context) ([]model.Product, error)
	Products []model.Product
	Err      error
}

// Fetch returns the configured response or a single fixture product.
func (s CatalogProviderStub) Fetch(ctx context.Context) ([]model.Product, error) {
	if s.FetchFn != nil {
		return s.FetchFn(ctx)
	}
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Products != nil {
		return s.Products, nil
	}
	return []model.Product{SampleProduct("p-1")}, nil
}
