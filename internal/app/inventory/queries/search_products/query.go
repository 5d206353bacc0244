// Package search_products implements the starts-with product search.
package search_products

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
)

// Query handles prefix searches over one product field.
type Query struct {
	products   contracts.ProductRepository
	categories contracts.CategoryRepository
}

// NewQuery creates a new search products query.
func NewQuery(products contracts.ProductRepository, categories contracts.CategoryRepository) *Query {
	return &Query{
		products:   products,
		categories: categories,
	}
}

// Execute returns every product whose field starts with text, with
// categories resolved the same way the listing does. Empty field or
// text degrades to the full collection.
func (q *Query) Execute(ctx context.Context, field, text string) ([]contracts.ProductModel, error) {
	products, err := q.products.Search(ctx, field, text)
	if err != nil {
		return nil, err
	}

	models := make([]contracts.ProductModel, 0, len(products))
	for _, product := range products {
		category, err := q.categories.GetByID(ctx, product.CategoryID)
		if err != nil {
			category = nil
		}
		models = append(models, contracts.NewProductModel(product, category))
	}
	return models, nil
}
