// Package contracts defines the interfaces and data transfer objects
// shared between the application layer and its adapters.
package contracts

import (
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/pkg/query"
)

// CategoryRef is the denormalized category summary embedded in product
// responses. It is resolved at read time, never stored.
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProductModel is the wire shape of a product.
type ProductModel struct {
	ID          string      `json:"id"`
	SKU         string      `json:"sku"`
	ProductName string      `json:"productName"`
	Description string      `json:"description"`
	Category    CategoryRef `json:"category"`
	Quantity    int64       `json:"quantity"`
	UnitPrice   float64     `json:"unitPrice"`
}

// CategoryModel is the wire shape of a category.
type CategoryModel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Paginated is one page of results. Cursor is the id of the last item
// in Data; clients pass it back to resume after that record.
type Paginated[T any] struct {
	Total  int    `json:"total"`
	Limit  int    `json:"limit"`
	Cursor string `json:"cursor"`
	Data   []T    `json:"data"`
}

// ListOptions carries the normalized pagination parameters of a list
// request. OrderBy is a raw "field|direction" clause.
type ListOptions struct {
	Limit   int
	Cursor  string
	OrderBy string
	Filters []query.Filter
}

// NewProductModel maps a stored product and its resolved category to
// the wire shape. A nil category degrades to the "none" placeholder
// rather than failing the whole page.
func NewProductModel(p *domain.Product, c *domain.Category) ProductModel {
	ref := CategoryRef{ID: "none", Name: "none"}
	if c != nil {
		ref = CategoryRef{ID: c.ID, Name: c.Name}
	}
	return ProductModel{
		ID:          p.ID,
		SKU:         p.SKU,
		ProductName: p.ProductName,
		Description: p.Description,
		Category:    ref,
		Quantity:    p.Quantity,
		UnitPrice:   p.UnitPrice,
	}
}

// NewCategoryModel maps a stored category to the wire shape.
func NewCategoryModel(c *domain.Category) CategoryModel {
	return CategoryModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}
