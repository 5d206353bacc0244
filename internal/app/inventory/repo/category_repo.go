package repo

import (
	"context"
	"log/slog"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/pkg/docstore"
)

// CategoryCollection is the name of the category collection.
const CategoryCollection = "categories"

// CategoryRepo implements CategoryRepository over the document store.
type CategoryRepo struct {
	base[domain.Category]
}

// NewCategoryRepo creates a new CategoryRepo.
func NewCategoryRepo(store docstore.Store, logger *slog.Logger) contracts.CategoryRepository {
	return &CategoryRepo{
		base: newBase[domain.Category](store, CategoryCollection, domain.ErrCategoryNotFound, logger),
	}
}

// GetByID retrieves a category by id.
func (r *CategoryRepo) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	return r.getByID(ctx, id)
}

// Create writes the category under its caller-assigned id.
func (r *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	return r.set(ctx, category.ID, category, false)
}

// Update persists the category, overwriting or merging per the flag.
func (r *CategoryRepo) Update(ctx context.Context, category *domain.Category, merge bool) (*domain.Category, error) {
	return r.set(ctx, category.ID, category, merge)
}

// Delete removes a category; missing ids are a no-op. Products still
// referencing the category are left alone: cascading cleanup is a
// known gap.
func (r *CategoryRepo) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

// Query returns one page of categories, nil on store failure.
func (r *CategoryRepo) Query(ctx context.Context, opts contracts.ListOptions) []*domain.Category {
	return r.queryPage(ctx, opts)
}

// Search returns categories whose field starts with text.
func (r *CategoryRepo) Search(ctx context.Context, field, text string) ([]*domain.Category, error) {
	return r.search(ctx, field, text)
}
