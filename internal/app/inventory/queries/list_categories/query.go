// Package list_categories implements the paginated category listing.
package list_categories

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
)

const totalProbeLimit = 100000

// Query handles paginated category reads.
type Query struct {
	categories contracts.CategoryRepository
}

// NewQuery creates a new list categories query.
func NewQuery(categories contracts.CategoryRepository) *Query {
	return &Query{categories: categories}
}

// Execute runs the double query: an unbounded probe for the total and
// the real page. See list_products for the consistency caveat.
func (q *Query) Execute(ctx context.Context, opts contracts.ListOptions) (*contracts.Paginated[contracts.CategoryModel], error) {
	all := q.categories.Query(ctx, contracts.ListOptions{
		Limit:   totalProbeLimit,
		OrderBy: opts.OrderBy,
		Filters: opts.Filters,
	})
	page := q.categories.Query(ctx, opts)

	if page == nil || (len(page) > 0 && all == nil) {
		return nil, domain.ErrResponseNotConstructed
	}

	data := make([]contracts.CategoryModel, 0, len(page))
	for _, category := range page {
		data = append(data, contracts.NewCategoryModel(category))
	}

	response := &contracts.Paginated[contracts.CategoryModel]{
		Total: len(all),
		Limit: opts.Limit,
		Data:  data,
	}
	if len(data) > 0 {
		response.Cursor = data[len(data)-1].ID
	}
	return response, nil
}
