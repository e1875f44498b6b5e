package model

import "time"

// PaymentStatus describes payment state of the current order.
type PaymentStatus string

const (
	PaymentStatusIdle    PaymentStatus = "IDLE"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
)

// DiscountResult captures the outcome of a discount evaluation: the winning
// rule (if any) and the money amount it yields.
type DiscountResult struct {
	RuleID  string
	Label   string
	Percent int
	Amount  int64
}

// Applied reports whether any discount rule matched.
func (r DiscountResult) Applied() bool {
	return r.RuleID != ""
}

// Order is a frozen snapshot of a cart plus its final pricing.
// Items are a deep copy of the cart at placement time; nothing mutates an
// Order after construction.
type Order struct {
	ID        string
	CreatedAt time.Time
	Items     []CartItem
	Subtotal  int64
	Discount  DiscountResult
	Total     int64
	Note      string
}
