package dto

// AddItemRequest describes the add-to-cart payload. Quantity may be omitted;
// the server then applies the product's minimum order quantity.
type AddItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int64  `json:"quantity"`
}

// UpdateItemRequest sets a cart line to an exact quantity.
type UpdateItemRequest struct {
	Quantity int64 `json:"quantity"`
}

// NoteRequest replaces the order note.
type NoteRequest struct {
	Note string `json:"note"`
}

// CartItemResponse describes one cart line.
type CartItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	UnitPrice int64  `json:"unit_price"`
	Unit      string `json:"unit"`
	Quantity  int64  `json:"quantity"`
	LineTotal int64  `json:"line_total"`
}

// CartResponse is the derived cart view returned by every cart endpoint.
type CartResponse struct {
	Items           []CartItemResponse `json:"items"`
	Note            string             `json:"note"`
	TotalQuantity   int64              `json:"total_quantity"`
	Subtotal        int64              `json:"subtotal"`
	SubtotalDisplay string             `json:"subtotal_display"`
	Discount        DiscountResponse   `json:"discount"`
	Total           int64              `json:"total"`
	TotalDisplay    string             `json:"total_display"`
	Locked          bool               `json:"locked"`
}
