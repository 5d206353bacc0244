// Package delete_product implements the delete-product use case.
package delete_product

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
)

// Interactor handles the delete product use case.
type Interactor struct {
	products contracts.ProductRepository
}

// NewInteractor creates a new delete product interactor.
func NewInteractor(products contracts.ProductRepository) *Interactor {
	return &Interactor{products: products}
}

// Execute deletes the product unconditionally: no existence check, and
// deleting a missing id succeeds.
func (i *Interactor) Execute(ctx context.Context, id string) error {
	return i.products.Delete(ctx, id)
}
