package contracts

import (
	"context"

	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
)

// ProductRepository is the product collection capability.
type ProductRepository interface {
	// GetByID returns the product or domain.ErrProductNotFound.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// Create writes exactly the given product; the caller has already
	// assigned the id.
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)

	// Update persists the product. The default is a full overwrite;
	// merge patches only the fields present in the document.
	Update(ctx context.Context, product *domain.Product, merge bool) (*domain.Product, error)

	// Delete removes the product. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error

	// Query returns one page of products. Store failures are logged
	// and degrade to a nil slice; a successful query always returns a
	// non-nil slice.
	Query(ctx context.Context, opts ListOptions) []*domain.Product

	// Search returns products whose field starts with text.
	Search(ctx context.Context, field, text string) ([]*domain.Product, error)
}

// CategoryRepository is the category collection capability.
type CategoryRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category, merge bool) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	Query(ctx context.Context, opts ListOptions) []*domain.Category
	Search(ctx context.Context, field, text string) ([]*domain.Category, error)
}
