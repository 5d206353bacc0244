// Package domain holds the stored entity shapes and the sentinel
// errors of the inventory application.
package domain

// Product is the stored product record. CategoryID references a
// Category document; responses embed the resolved {id, name} pair
// instead of the raw reference.
type Product struct {
	ID          string  `json:"id"`
	SKU         string  `json:"sku"`
	ProductName string  `json:"productName"`
	Description string  `json:"description"`
	CategoryID  string  `json:"categoryId"`
	Quantity    int64   `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// Category is the stored category record.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
