// Package update_product implements the update-product use case.
package update_product

import (
	"context"
	"errors"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
)

// Request contains the optional fields of a product update. Absent
// fields keep their stored values.
type Request struct {
	SKU         *string  `json:"sku"`
	ProductName *string  `json:"productName"`
	Description *string  `json:"description"`
	CategoryID  *string  `json:"categoryId"`
	Quantity    *int64   `json:"quantity"`
	UnitPrice   *float64 `json:"unitPrice"`
}

// Interactor handles the update product use case.
type Interactor struct {
	products   contracts.ProductRepository
	categories contracts.CategoryRepository
}

// NewInteractor creates a new update product interactor.
func NewInteractor(products contracts.ProductRepository, categories contracts.CategoryRepository) *Interactor {
	return &Interactor{
		products:   products,
		categories: categories,
	}
}

// Execute coalesces the update over the stored product, re-verifies
// the category reference, persists and re-fetches the authoritative
// post-write state.
func (i *Interactor) Execute(ctx context.Context, req *Request, id string) (*contracts.ProductModel, error) {
	existing, err := i.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := coalesce(req, existing)

	category, err := i.categories.GetByID(ctx, merged.CategoryID)
	if err != nil {
		return nil, err
	}

	if _, err := i.products.Update(ctx, merged, false); err != nil {
		return nil, err
	}

	updated, err := i.products.GetByID(ctx, id)
	if err != nil {
		// The product was just written; a failed re-fetch is a store
		// fault, not a missing record.
		if errors.Is(err, domain.ErrProductNotFound) {
			return nil, domain.ErrProductNotUpdated
		}
		return nil, err
	}

	model := contracts.NewProductModel(updated, category)
	return &model, nil
}

// coalesce applies the provided fields over the stored product,
// keeping the stored value for every absent field. The id is never
// taken from the request.
func coalesce(req *Request, existing *domain.Product) *domain.Product {
	merged := *existing
	if req.SKU != nil {
		merged.SKU = *req.SKU
	}
	if req.ProductName != nil {
		merged.ProductName = *req.ProductName
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	if req.CategoryID != nil {
		merged.CategoryID = *req.CategoryID
	}
	if req.Quantity != nil {
		merged.Quantity = *req.Quantity
	}
	if req.UnitPrice != nil {
		merged.UnitPrice = *req.UnitPrice
	}
	return &merged
}
