package model

// Product is read-only reference data owned by the external catalog.
type Product struct {
	ID          string
	Name        string
	SKU         string
	Category    string
	UnitPrice   int64
	Unit        string
	Stock       int64
	MinOrderQty int64
	PackSize    int64
}
