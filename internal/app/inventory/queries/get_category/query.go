// Package get_category implements the get-category-by-id query.
package get_category

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
)

// Query handles single-category reads.
type Query struct {
	categories contracts.CategoryRepository
}

// NewQuery creates a new get category query.
func NewQuery(categories contracts.CategoryRepository) *Query {
	return &Query{categories: categories}
}

// Execute fetches a category by id.
func (q *Query) Execute(ctx context.Context, id string) (*contracts.CategoryModel, error) {
	category, err := q.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	model := contracts.NewCategoryModel(category)
	return &model, nil
}
