package usecase

import (
	"context"

	"github.com/vominhduc11/dealerhub/internal/domain/repository"
	"github.com/vominhduc11/dealerhub/internal/pricing"
	"github.com/vominhduc11/dealerhub/internal/session"
)

// CartUseCase edits a dealer's cart. It resolves products against the
// catalog and forwards mutations to the dealer's session; the session
// decides whether a mutation applies (it never does once an order exists).
type CartUseCase struct {
	sessions *session.Manager
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(sessions *session.Manager, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{sessions: sessions, products: products}
}

// View returns the current cart snapshot with derived totals.
func (u *CartUseCase) View(dealerID int64) session.View {
	return u.sessions.Get(dealerID).Snapshot()
}

// Add puts quantity of the product into the cart, merging with an existing
// line. A non-positive quantity falls back to the product's minimum order
// quantity, or 1 when the product has none.
func (u *CartUseCase) Add(ctx context.Context, dealerID int64, productID string, quantity int64) (session.View, error) {
	sess := u.sessions.Get(dealerID)

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return sess.Snapshot(), err
	}

	if quantity <= 0 {
		quantity = product.MinOrderQty
		if quantity < 1 {
			quantity = 1
		}
	}

	sess.AddToCart(*product, quantity)
	return sess.Snapshot(), nil
}

// UpdateQuantity sets a line to exactly the given quantity, removing it when
// the quantity is zero or negative.
func (u *CartUseCase) UpdateQuantity(dealerID int64, productID string, quantity int64) session.View {
	sess := u.sessions.Get(dealerID)
	sess.UpdateQuantity(productID, quantity)
	return sess.Snapshot()
}

// Remove deletes a line from the cart.
func (u *CartUseCase) Remove(dealerID int64, productID string) session.View {
	sess := u.sessions.Get(dealerID)
	sess.RemoveItem(productID)
	return sess.Snapshot()
}

// Clear empties the cart.
func (u *CartUseCase) Clear(dealerID int64) session.View {
	sess := u.sessions.Get(dealerID)
	sess.ClearCart()
	return sess.Snapshot()
}

// SetNote replaces the free-text order note.
func (u *CartUseCase) SetNote(dealerID int64, note string) session.View {
	sess := u.sessions.Get(dealerID)
	sess.SetNote(note)
	return sess.Snapshot()
}

// DiscountTiers reports every discount tier with its eligibility for the
// dealer's current cart.
func (u *CartUseCase) DiscountTiers(dealerID int64) []pricing.RuleStatus {
	return u.sessions.Get(dealerID).RuleStatuses()
}
