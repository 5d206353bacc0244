// Package delete_category implements the delete-category use case.
package delete_category

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
)

// Interactor handles the delete category use case.
type Interactor struct {
	categories contracts.CategoryRepository
}

// NewInteractor creates a new delete category interactor.
func NewInteractor(categories contracts.CategoryRepository) *Interactor {
	return &Interactor{categories: categories}
}

// Execute deletes the category unconditionally. Products referencing
// the category are not cleaned up; they resolve to the "none"
// placeholder in list responses from then on.
func (i *Interactor) Execute(ctx context.Context, id string) error {
	return i.categories.Delete(ctx, id)
}
