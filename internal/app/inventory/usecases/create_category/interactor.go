// Package create_category implements the create-category use case.
package create_category

import (
	"context"

	"github.com/google/uuid"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/pkg/validate"
)

// Request contains the data needed to create a category.
type Request struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Interactor handles the create category use case.
type Interactor struct {
	categories contracts.CategoryRepository
}

// NewInteractor creates a new create category interactor.
func NewInteractor(categories contracts.CategoryRepository) *Interactor {
	return &Interactor{categories: categories}
}

// Execute validates the request, assigns a server-side id and persists
// the category.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*contracts.CategoryModel, error) {
	err := validate.Required(
		validate.Field{Name: "name", Present: req.Name != nil},
		validate.Field{Name: "description", Present: req.Description != nil},
	)
	if err != nil {
		return nil, err
	}

	category := &domain.Category{
		ID:          uuid.NewString(),
		Name:        *req.Name,
		Description: *req.Description,
	}

	created, err := i.categories.Create(ctx, category)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, domain.ErrCategoryNotCreated
	}

	model := contracts.NewCategoryModel(created)
	return &model, nil
}
