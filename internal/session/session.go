package session

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vominhduc11/dealerhub/internal/domain/model"
	"github.com/vominhduc11/dealerhub/internal/pricing"
)

const orderIDPrefix = "DH"

// Session holds the editable pre-order state of one dealer: cart items, a
// free-text note, the placed order (if any) and its payment status.
//
// While an order exists the cart is locked: every mutator is a silent no-op,
// never an error. The only way back to the unlocked state is StartNewOrder.
// Each public operation is a single critical section, so observers always
// see a fully applied state.
type Session struct {
	mu sync.Mutex

	id       uuid.UUID
	items    []model.CartItem
	note     string
	order    *model.Order
	payment  model.PaymentStatus
	lastSeen time.Time

	rules []pricing.Rule
	now   func() time.Time
	rng   *rand.Rand
}

// View is a read-only snapshot of the session with all derived values
// recomputed at observation time.
type View struct {
	Items         []model.CartItem
	Note          string
	Subtotal      int64
	TotalQuantity int64
	Discount      model.DiscountResult
	Total         int64
	Locked        bool
	Order         *model.Order
	PaymentStatus model.PaymentStatus
}

// New creates an empty unlocked session evaluating the given rule table.
func New(rules []pricing.Rule) *Session {
	return newSession(rules, time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newSession(rules []pricing.Rule, now func() time.Time, rng *rand.Rand) *Session {
	return &Session{
		id:       uuid.New(),
		payment:  model.PaymentStatusIdle,
		rules:    rules,
		now:      now,
		rng:      rng,
		lastSeen: now(),
	}
}

// ID returns the session identifier used in logs.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// AddToCart merges quantity into an existing line for the product or appends
// a new one. Quantity is trusted to be positive; callers decide sane
// defaults such as the product's minimum order quantity. No-op when locked.
func (s *Session) AddToCart(product model.Product, quantity int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.order != nil {
		return
	}

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity += quantity
			return
		}
	}
	s.items = append(s.items, model.CartItem{Product: product, Quantity: quantity})
}

// UpdateQuantity sets the line quantity to exactly next, removing the line
// when next <= 0. Missing products and locked carts are silent no-ops.
func (s *Session) UpdateQuantity(productID string, next int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.order != nil {
		return
	}

	for i := range s.items {
		if s.items[i].Product.ID != productID {
			continue
		}
		if next <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		} else {
			s.items[i].Quantity = next
		}
		return
	}
}

// RemoveItem deletes the matching line; silently succeeds when absent.
func (s *Session) RemoveItem(productID string) {
	s.UpdateQuantity(productID, 0)
}

// ClearCart empties all items. No-op when locked.
func (s *Session) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.order != nil {
		return
	}
	s.items = nil
}

// SetNote replaces the order note. No-op when locked.
func (s *Session) SetNote(note string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.order != nil {
		return
	}
	s.note = note
}

// Snapshot recomputes the derived cart view: subtotal, total quantity,
// discount preview and total. Items are copied so callers can never reach
// the live slice.
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	ctx := pricing.ContextFor(s.items)
	discount := pricing.Calculate(s.rules, ctx)
	total := ctx.Subtotal - discount.Amount
	if total < 0 {
		total = 0
	}

	return View{
		Items:         copyItems(s.items),
		Note:          s.note,
		Subtotal:      ctx.Subtotal,
		TotalQuantity: ctx.TotalQuantity,
		Discount:      discount,
		Total:         total,
		Locked:        s.order != nil,
		Order:         s.order,
		PaymentStatus: s.payment,
	}
}

// Quantities returns the quantity held per product ID, for O(1) membership
// checks by the presentation layer.
func (s *Session) Quantities() map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]int64, len(s.items))
	for _, item := range s.items {
		out[item.Product.ID] = item.Quantity
	}
	return out
}

// RuleStatuses evaluates the session's rule table against the current cart.
func (s *Session) RuleStatuses() []pricing.RuleStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return pricing.Statuses(s.rules, pricing.ContextFor(s.items))
}

// PlaceOrder freezes the cart into an immutable order and locks the
// session. A non-empty note replaces the stored cart note; an empty one
// keeps it. Empty carts and already-locked sessions are silent no-ops
// returning the existing order (nil for an empty cart).
func (s *Session) PlaceOrder(note string) *model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.order != nil {
		return s.order
	}
	if len(s.items) == 0 {
		return nil
	}

	ctx := pricing.ContextFor(s.items)
	discount := pricing.Calculate(s.rules, ctx)
	total := ctx.Subtotal - discount.Amount
	if total < 0 {
		total = 0
	}

	if note != "" {
		s.note = note
	}

	now := s.now()
	s.order = &model.Order{
		ID:        s.newOrderID(now),
		CreatedAt: now,
		Items:     copyItems(s.items),
		Subtotal:  ctx.Subtotal,
		Discount:  discount,
		Total:     total,
		Note:      s.note,
	}
	s.payment = model.PaymentStatusIdle
	return s.order
}

// PayOrder advances the current order to paid. Without an order, or once
// already paid, it is an idempotent no-op.
func (s *Session) PayOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	if s.order == nil || s.payment == model.PaymentStatusSuccess {
		return
	}
	s.payment = model.PaymentStatusSuccess
}

// StartNewOrder unconditionally discards the order and payment status and
// returns to an empty unlocked cart.
func (s *Session) StartNewOrder() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.touch()

	s.order = nil
	s.payment = model.PaymentStatusIdle
	s.items = nil
	s.note = ""
}

// LastSeen reports the time of the most recent operation on the session.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch() {
	s.lastSeen = s.now()
}

// newOrderID builds identifiers like DH-20260205-4821. The 4-digit random
// suffix gives no uniqueness guarantee; orders are volatile session state,
// so a same-day collision has no observable effect.
func (s *Session) newOrderID(now time.Time) string {
	return fmt.Sprintf("%s-%s-%04d", orderIDPrefix, now.Format("20060102"), s.rng.Intn(10000))
}

func copyItems(items []model.CartItem) []model.CartItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]model.CartItem, len(items))
	copy(out, items)
	return out
}
