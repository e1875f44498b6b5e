package dto

// ProductResponse describes one catalog entry.
type ProductResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	SKU              string `json:"sku"`
	Category         string `json:"category"`
	UnitPrice        int64  `json:"unit_price"`
	UnitPriceDisplay string `json:"unit_price_display"`
	Unit             string `json:"unit"`
	Stock            int64  `json:"stock"`
	MinOrderQty      int64  `json:"min_order_qty"`
	PackSize         int64  `json:"pack_size"`
	InCart           int64  `json:"in_cart"`
}

// DiscountTierResponse describes one discount tier and whether the current
// cart qualifies for it.
type DiscountTierResponse struct {
	RuleID    string `json:"rule_id"`
	Label     string `json:"label"`
	Percent   int    `json:"percent"`
	Kind      string `json:"kind"`
	Threshold int64  `json:"threshold"`
	Eligible  bool   `json:"eligible"`
}
