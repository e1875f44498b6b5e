package model

// CartItem pairs a catalog product with an ordered quantity.
// A cart holds at most one item per product ID and quantity is always >= 1.
type CartItem struct {
	Product  Product
	Quantity int64
}

// LineTotal returns quantity multiplied by unit price.
func (i CartItem) LineTotal() int64 {
	return i.Quantity * i.Product.UnitPrice
}
