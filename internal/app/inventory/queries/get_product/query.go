// Package get_product implements the get-product-by-id query.
package get_product

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
)

// Query handles single-product reads.
type Query struct {
	products   contracts.ProductRepository
	categories contracts.CategoryRepository
}

// NewQuery creates a new get product query.
func NewQuery(products contracts.ProductRepository, categories contracts.CategoryRepository) *Query {
	return &Query{
		products:   products,
		categories: categories,
	}
}

// Execute fetches a product and resolves its category reference. A
// category that no longer resolves yields the same not-found error as
// create and update, keeping the reference-failure policy uniform.
func (q *Query) Execute(ctx context.Context, id string) (*contracts.ProductModel, error) {
	product, err := q.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category, err := q.categories.GetByID(ctx, product.CategoryID)
	if err != nil {
		return nil, err
	}

	model := contracts.NewProductModel(product, category)
	return &model, nil
}
