package handlers

import (
	"context"

	"github.com/vominhduc11/dealerhub/internal/domain/model"
	"github.com/vominhduc11/dealerhub/internal/pricing"
	"github.com/vominhduc11/dealerhub/internal/session"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// CatalogFacade exposes the product feed and discount tiers.
type CatalogFacade interface {
	Products(ctx context.Context) ([]model.Product, error)
	Cart(dealerID int64) session.View
	DiscountTiers(dealerID int64) []pricing.RuleStatus
}

// CartFacade provides cart mutations scoped to a dealer session.
type CartFacade interface {
	Cart(dealerID int64) session.View
	AddToCart(ctx context.Context, dealerID int64, productID string, quantity int64) (session.View, error)
	UpdateCartItem(dealerID int64, productID string, quantity int64) session.View
	RemoveCartItem(dealerID int64, productID string) session.View
	ClearCart(dealerID int64) session.View
	SetCartNote(dealerID int64, note string) session.View
}

// CheckoutFacade drives the order lifecycle.
type CheckoutFacade interface {
	Cart(dealerID int64) session.View
	PlaceOrder(dealerID int64, note string) *model.Order
	CurrentOrder(dealerID int64) *model.Order
	PayOrder(dealerID int64) model.PaymentStatus
	StartNewOrder(dealerID int64) session.View
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	CheckoutFacade
}
