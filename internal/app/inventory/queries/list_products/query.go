// Package list_products implements the paginated product listing.
package list_products

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
)

// totalProbeLimit is the effectively-unbounded limit of the count
// query. The store caps result sets well below this in practice.
const totalProbeLimit = 100000

// Query handles paginated product reads.
type Query struct {
	products   contracts.ProductRepository
	categories contracts.CategoryRepository
}

// NewQuery creates a new list products query.
func NewQuery(products contracts.ProductRepository, categories contracts.CategoryRepository) *Query {
	return &Query{
		products:   products,
		categories: categories,
	}
}

// Execute runs the query twice: once effectively unbounded to compute
// the total matching the filters, once with the real limit and cursor
// for the page. The two reads are not a snapshot, so total and page
// can disagree under concurrent writes; acceptable for this workload.
// Each page item gets its category resolved at read time.
func (q *Query) Execute(ctx context.Context, opts contracts.ListOptions) (*contracts.Paginated[contracts.ProductModel], error) {
	all := q.products.Query(ctx, contracts.ListOptions{
		Limit:   totalProbeLimit,
		OrderBy: opts.OrderBy,
		Filters: opts.Filters,
	})
	page := q.products.Query(ctx, opts)

	if page == nil || (len(page) > 0 && all == nil) {
		return nil, domain.ErrResponseNotConstructed
	}

	data := make([]contracts.ProductModel, 0, len(page))
	for _, product := range page {
		// A failed lookup degrades to the "none" placeholder inside
		// NewProductModel; one dangling reference must not fail the page.
		category, err := q.categories.GetByID(ctx, product.CategoryID)
		if err != nil {
			category = nil
		}
		data = append(data, contracts.NewProductModel(product, category))
	}

	response := &contracts.Paginated[contracts.ProductModel]{
		Total: len(all),
		Limit: opts.Limit,
		Data:  data,
	}
	if len(data) > 0 {
		response.Cursor = data[len(data)-1].ID
	}
	return response, nil
}
