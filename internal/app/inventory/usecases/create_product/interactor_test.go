package create_product

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/app/inventory/repo"
	"github.com/light-bringer/inventory-service/internal/pkg/docstore"
	"github.com/light-bringer/inventory-service/internal/pkg/validate"
)

func stringPtr(s string) *string  { return &s }
func int64Ptr(n int64) *int64     { return &n }
func floatPtr(f float64) *float64 { return &f }

func newFixture(t *testing.T) (*Interactor, contracts.ProductRepository, contracts.CategoryRepository) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := docstore.NewMemory()
	products := repo.NewProductRepo(store, logger)
	categories := repo.NewCategoryRepo(store, logger)

	_, err := categories.Create(context.Background(), &domain.Category{
		ID:          "c1",
		Name:        "Widgets",
		Description: "small parts",
	})
	require.NoError(t, err)

	return NewInteractor(products, categories), products, categories
}

func validRequest() *Request {
	return &Request{
		SKU:         stringPtr("X1"),
		ProductName: stringPtr("Widget"),
		Description: stringPtr("a widget"),
		CategoryID:  stringPtr("c1"),
		Quantity:    int64Ptr(5),
		UnitPrice:   floatPtr(9.99),
	}
}

func TestExecute_CreatesWithServerAssignedID(t *testing.T) {
	interactor, products, _ := newFixture(t)
	ctx := context.Background()

	model, err := interactor.Execute(ctx, validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, model.ID)
	assert.Equal(t, "X1", model.SKU)
	assert.Equal(t, contracts.CategoryRef{ID: "c1", Name: "Widgets"}, model.Category)

	stored, err := products.GetByID(ctx, model.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ID, stored.ID)
}

func TestExecute_AssignsFreshIDPerCreate(t *testing.T) {
	interactor, _, _ := newFixture(t)
	ctx := context.Background()

	first, err := interactor.Execute(ctx, validRequest())
	require.NoError(t, err)
	second, err := interactor.Execute(ctx, validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestExecute_MissingFields(t *testing.T) {
	interactor, _, _ := newFixture(t)

	req := validRequest()
	req.SKU = nil
	req.UnitPrice = nil

	_, err := interactor.Execute(context.Background(), req)
	require.Error(t, err)

	var missing *validate.MissingFieldsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "Missing properties from request: SKU, UNITPRICE", err.Error())
}

func TestExecute_UnknownCategory(t *testing.T) {
	interactor, products, _ := newFixture(t)
	ctx := context.Background()

	req := validRequest()
	req.CategoryID = stringPtr("C404")

	_, err := interactor.Execute(ctx, req)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	// Nothing was persisted.
	assert.Empty(t, products.Query(ctx, contracts.ListOptions{Limit: 10}))
}
