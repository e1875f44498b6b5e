package usecase

import (
	"github.com/vominhduc11/dealerhub/internal/domain/model"
	"github.com/vominhduc11/dealerhub/internal/session"
)

// CheckoutUseCase drives the order lifecycle of a dealer session: freeze,
// pay, reset. Every operation is total; preconditions that fail are silent
// no-ops by design.
type CheckoutUseCase struct {
	sessions *session.Manager
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(sessions *session.Manager) *CheckoutUseCase {
	return &CheckoutUseCase{sessions: sessions}
}

// PlaceOrder freezes the current cart into an immutable order and locks the
// cart. Returns nil without side effects when the cart is empty; returns
// the existing order when one was already placed.
func (u *CheckoutUseCase) PlaceOrder(dealerID int64, note string) *model.Order {
	return u.sessions.Get(dealerID).PlaceOrder(note)
}

// CurrentOrder returns the placed order, or nil.
func (u *CheckoutUseCase) CurrentOrder(dealerID int64) *model.Order {
	return u.sessions.Get(dealerID).Snapshot().Order
}

// Pay marks the current order paid; idempotent.
func (u *CheckoutUseCase) Pay(dealerID int64) model.PaymentStatus {
	sess := u.sessions.Get(dealerID)
	sess.PayOrder()
	return sess.Snapshot().PaymentStatus
}

// StartNewOrder discards the order and returns the session to an empty
// unlocked cart.
func (u *CheckoutUseCase) StartNewOrder(dealerID int64) session.View {
	sess := u.sessions.Get(dealerID)
	sess.StartNewOrder()
	return sess.Snapshot()
}
