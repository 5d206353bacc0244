// Package testutil provides fixtures over the in-memory document
// store for package tests.
package testutil

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/app/inventory/repo"
	"github.com/light-bringer/inventory-service/internal/pkg/docstore"
)

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// NewRepos creates product and category repositories over a fresh
// in-memory store.
func NewRepos(t *testing.T) (contracts.ProductRepository, contracts.CategoryRepository) {
	t.Helper()

	store := docstore.NewMemory()
	logger := DiscardLogger()
	return repo.NewProductRepo(store, logger), repo.NewCategoryRepo(store, logger)
}

// CreateTestCategory seeds a category and returns its id.
func CreateTestCategory(t *testing.T, categories contracts.CategoryRepository, name string) string {
	t.Helper()

	category := &domain.Category{
		ID:          uuid.NewString(),
		Name:        name,
		Description: "Test category description",
	}
	_, err := categories.Create(context.Background(), category)
	require.NoError(t, err, "failed to create test category")
	return category.ID
}

// CreateTestProduct seeds a product in the given category and returns
// its id.
func CreateTestProduct(t *testing.T, products contracts.ProductRepository, name, categoryID string) string {
	t.Helper()

	product := &domain.Product{
		ID:          uuid.NewString(),
		SKU:         "SKU-" + name,
		ProductName: name,
		Description: "Test product description",
		CategoryID:  categoryID,
		Quantity:    5,
		UnitPrice:   9.99,
	}
	_, err := products.Create(context.Background(), product)
	require.NoError(t, err, "failed to create test product")
	return product.ID
}
