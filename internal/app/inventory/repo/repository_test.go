package repo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/app/inventory/domain"
	"github.com/light-bringer/inventory-service/internal/pkg/docstore"
	"github.com/light-bringer/inventory-service/internal/pkg/query"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProduct(id, sku string) *domain.Product {
	return &domain.Product{
		ID:          id,
		SKU:         sku,
		ProductName: "Widget " + sku,
		Description: "test product",
		CategoryID:  "c1",
		Quantity:    5,
		UnitPrice:   9.99,
	}
}

func TestProductRepo_CreateAndGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepo(docstore.NewMemory(), discardLogger())

	created, err := repo.Create(ctx, testProduct("p1", "X1"))
	require.NoError(t, err)
	require.NotNil(t, created)

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "X1", got.SKU)
	assert.Equal(t, int64(5), got.Quantity)
	assert.Equal(t, 9.99, got.UnitPrice)
}

func TestProductRepo_GetByIDMissing(t *testing.T) {
	repo := NewProductRepo(docstore.NewMemory(), discardLogger())

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductRepo_UpdateOverwrites(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepo(docstore.NewMemory(), discardLogger())

	_, err := repo.Create(ctx, testProduct("p1", "X1"))
	require.NoError(t, err)

	updated := testProduct("p1", "X2")
	_, err = repo.Update(ctx, updated, false)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "X2", got.SKU)
}

func TestProductRepo_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepo(docstore.NewMemory(), discardLogger())

	_, err := repo.Create(ctx, testProduct("p1", "X1"))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "p1"))
	require.NoError(t, repo.Delete(ctx, "p1"))

	_, err = repo.GetByID(ctx, "p1")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestProductRepo_QueryFiltersAndPages(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewMemory()
	repo := NewProductRepo(store, discardLogger())

	for _, p := range []*domain.Product{
		{ID: "p1", SKU: "A", CategoryID: "c1"},
		{ID: "p2", SKU: "B", CategoryID: "c2"},
		{ID: "p3", SKU: "C", CategoryID: "c1"},
	} {
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}

	page := repo.Query(ctx, contracts.ListOptions{
		Limit:   10,
		Filters: []query.Filter{{Key: "categoryId", Value: "c1"}},
	})
	require.Len(t, page, 2)
	assert.Equal(t, "p1", page[0].ID)
	assert.Equal(t, "p3", page[1].ID)

	next := repo.Query(ctx, contracts.ListOptions{
		Limit:   10,
		Cursor:  "p1",
		Filters: []query.Filter{{Key: "categoryId", Value: "c1"}},
	})
	require.Len(t, next, 1)
	assert.Equal(t, "p3", next[0].ID)
}

func TestProductRepo_QueryEmptyIsNonNil(t *testing.T) {
	repo := NewProductRepo(docstore.NewMemory(), discardLogger())

	page := repo.Query(context.Background(), contracts.ListOptions{Limit: 10})
	require.NotNil(t, page)
	assert.Empty(t, page)
}

// failingStore errors on every operation so the degrade-to-nil policy
// can be observed.
type failingStore struct{}

var errStoreDown = errors.New("store unavailable")

func (failingStore) Get(ctx context.Context, collection, id string) (docstore.Document, error) {
	return nil, errStoreDown
}

func (failingStore) Set(ctx context.Context, collection, id string, doc docstore.Document, merge bool) error {
	return errStoreDown
}

func (failingStore) Delete(ctx context.Context, collection, id string) error {
	return errStoreDown
}

func (failingStore) Run(ctx context.Context, spec query.Spec) ([]docstore.Document, error) {
	return nil, errStoreDown
}

func TestProductRepo_QueryDegradesToNilOnStoreFailure(t *testing.T) {
	repo := NewProductRepo(failingStore{}, discardLogger())

	page := repo.Query(context.Background(), contracts.ListOptions{Limit: 10})
	assert.Nil(t, page)
}

func TestCategoryRepo_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepo(docstore.NewMemory(), discardLogger())

	_, err := repo.Create(ctx, &domain.Category{ID: "c1", Name: "Widgets", Description: "small parts"})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Widgets", got.Name)

	_, err = repo.GetByID(ctx, "c2")
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestProductRepo_Search(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepo(docstore.NewMemory(), discardLogger())

	for _, p := range []*domain.Product{
		{ID: "p1", ProductName: "Widget"},
		{ID: "p2", ProductName: "Wing"},
		{ID: "p3", ProductName: "Gadget"},
	} {
		_, err := repo.Create(ctx, p)
		require.NoError(t, err)
	}

	found, err := repo.Search(ctx, "productName", "Wi")
	require.NoError(t, err)
	require.Len(t, found, 2)

	all, err := repo.Search(ctx, "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
