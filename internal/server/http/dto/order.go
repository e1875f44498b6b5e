package dto

import "time"

// PlaceOrderRequest carries the optional note frozen into the order.
type PlaceOrderRequest struct {
	Note string `json:"note"`
}

// DiscountResponse describes the discount applied to a cart or order.
type DiscountResponse struct {
	RuleID  string `json:"rule_id,omitempty"`
	Label   string `json:"label"`
	Percent int    `json:"percent"`
	Amount  int64  `json:"amount"`
}

// OrderResponse describes a placed order.
type OrderResponse struct {
	ID            string             `json:"id"`
	CreatedAt     time.Time          `json:"created_at"`
	Items         []CartItemResponse `json:"items"`
	Subtotal      int64              `json:"subtotal"`
	Discount      DiscountResponse   `json:"discount"`
	Total         int64              `json:"total"`
	TotalDisplay  string             `json:"total_display"`
	Note          string             `json:"note"`
	PaymentStatus string             `json:"payment_status"`
}

// PaymentResponse reports the payment status after a pay call.
type PaymentResponse struct {
	Status string `json:"status"`
}
