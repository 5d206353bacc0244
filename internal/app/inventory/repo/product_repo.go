package repo

import (
	"context"
	"log/slog"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/pkg/docstore"
)

// ProductCollection is the name of the product collection.
const ProductCollection = "products"

// ProductRepo implements ProductRepository over the document store.
type ProductRepo struct {
	base[domain.Product]
}

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(store docstore.Store, logger *slog.Logger) contracts.ProductRepository {
	return &ProductRepo{
		base: newBase[domain.Product](store, ProductCollection, domain.ErrProductNotFound, logger),
	}
}

// GetByID retrieves a product by id.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return r.getByID(ctx, id)
}

// Create writes the product under its caller-assigned id.
func (r *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	return r.set(ctx, product.ID, product, false)
}

// Update persists the product, overwriting or merging per the flag.
func (r *ProductRepo) Update(ctx context.Context, product *domain.Product, merge bool) (*domain.Product, error) {
	return r.set(ctx, product.ID, product, merge)
}

// Delete removes a product; missing ids are a no-op.
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	return r.delete(ctx, id)
}

// Query returns one page of products, nil on store failure.
func (r *ProductRepo) Query(ctx context.Context, opts contracts.ListOptions) []*domain.Product {
	return r.queryPage(ctx, opts)
}

// Search returns products whose field starts with text.
func (r *ProductRepo) Search(ctx context.Context, field, text string) ([]*domain.Product, error) {
	return r.search(ctx, field, text)
}
