package app

import (
	"context"

	"github.com/vominhduc11/dealerhub/internal/domain/model"
	"github.com/vominhduc11/dealerhub/internal/pricing"
	"github.com/vominhduc11/dealerhub/internal/session"
	"github.com/vominhduc11/dealerhub/internal/usecase"
)

// CatalogProvider fetches the externally owned product feed.
type CatalogProvider interface {
	Fetch(ctx context.Context) ([]model.Product, error)
}

// StorefrontFacade aggregates the use cases behind one application surface.
type StorefrontFacade struct {
	auth     *usecase.AuthUseCase
	catalog  *usecase.CatalogUseCase
	cart     *usecase.CartUseCase
	checkout *usecase.CheckoutUseCase
	feed     CatalogProvider
}

func NewStorefrontFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	cart *usecase.CartUseCase,
	checkout *usecase.CheckoutUseCase,
	feed CatalogProvider,
) *StorefrontFacade {
	return &StorefrontFacade{auth: auth, catalog: catalog, cart: cart, checkout: checkout, feed: feed}
}

func (f *StorefrontFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *StorefrontFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.catalog.List(ctx)
}

func (f *StorefrontFacade) Product(ctx context.Context, id string) (*model.Product, error) {
	return f.catalog.Get(ctx, id)
}

func (f *StorefrontFacade) Cart(dealerID int64) session.View {
	return f.cart.View(dealerID)
}

func (f *StorefrontFacade) AddToCart(ctx context.Context, dealerID int64, productID string, quantity int64) (session.View, error) {
	return f.cart.Add(ctx, dealerID, productID, quantity)
}

func (f *StorefrontFacade) UpdateCartItem(dealerID int64, productID string, quantity int64) session.View {
	return f.cart.UpdateQuantity(dealerID, productID, quantity)
}

func (f *StorefrontFacade) RemoveCartItem(dealerID int64, productID string) session.View {
	return f.cart.Remove(dealerID, productID)
}

func (f *StorefrontFacade) ClearCart(dealerID int64) session.View {
	return f.cart.Clear(dealerID)
}

func (f *StorefrontFacade) SetCartNote(dealerID int64, note string) session.View {
	return f.cart.SetNote(dealerID, note)
}

func (f *StorefrontFacade) DiscountTiers(dealerID int64) []pricing.RuleStatus {
	return f.cart.DiscountTiers(dealerID)
}

func (f *StorefrontFacade) PlaceOrder(dealerID int64, note string) *model.Order {
	return f.checkout.PlaceOrder(dealerID, note)
}

func (f *StorefrontFacade) CurrentOrder(dealerID int64) *model.Order {
	return f.checkout.CurrentOrder(dealerID)
}

func (f *StorefrontFacade) PayOrder(dealerID int64) model.PaymentStatus {
	return f.checkout.Pay(dealerID)
}

func (f *StorefrontFacade) StartNewOrder(dealerID int64) session.View {
	return f.checkout.StartNewOrder(dealerID)
}

func (f *StorefrontFacade) FetchCatalog(ctx context.Context) ([]model.Product, error) {
	return f.feed.Fetch(ctx)
}

func (f *StorefrontFacade) StoreProduct(ctx context.Context, product model.Product) error {
	return f.catalog.StoreProduct(ctx, product)
}
