// Package update_category implements the update-category use case.
package update_category

import (
	"context"
	"errors"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
)

// Request contains the optional fields of a category update.
type Request struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Interactor handles the update category use case.
type Interactor struct {
	categories contracts.CategoryRepository
}

// NewInteractor creates a new update category interactor.
func NewInteractor(categories contracts.CategoryRepository) *Interactor {
	return &Interactor{categories: categories}
}

// Execute coalesces the update over the stored category, persists and
// re-fetches the authoritative post-write state.
func (i *Interactor) Execute(ctx context.Context, req *Request, id string) (*contracts.CategoryModel, error) {
	existing, err := i.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := *existing
	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}

	if _, err := i.categories.Update(ctx, &merged, false); err != nil {
		return nil, err
	}

	updated, err := i.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, domain.ErrCategoryNotUpdated
		}
		return nil, err
	}

	model := contracts.NewCategoryModel(updated)
	return &model, nil
}
