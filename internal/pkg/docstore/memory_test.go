package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/inventory-service/internal/pkg/query"
)

func seedProducts(t *testing.T, store *MemoryStore) {
	t.Helper()

	ctx := context.Background()
	docs := []Document{
		{"id": "p1", "sku": "A-1", "status": "active", "region": "us", "inStock": true, "unitPrice": 5.0},
		{"id": "p2", "sku": "B-2", "status": "draft", "region": "us", "inStock": false, "unitPrice": 3.0},
		{"id": "p3", "sku": "C-3", "status": "active", "region": "eu", "inStock": true, "unitPrice": 9.0},
		{"id": "p4", "sku": "D-4", "status": "archived", "region": "us", "inStock": true, "unitPrice": 1.0},
	}
	for _, doc := range docs {
		require.NoError(t, store.Set(ctx, "products", doc["id"].(string), doc, false))
	}
}

func ids(docs []Document) []string {
	out := make([]string, 0, len(docs))
	for _, d := range docs {
		out = append(out, d["id"].(string))
	}
	return out
}

func TestMemoryStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, store.Set(ctx, "categories", "c1", Document{"id": "c1", "name": "Widgets"}, false))

	doc, err := store.Get(ctx, "categories", "c1")
	require.NoError(t, err)
	assert.Equal(t, "Widgets", doc["name"])

	require.NoError(t, store.Delete(ctx, "categories", "c1"))
	_, err = store.Get(ctx, "categories", "c1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, store.Delete(ctx, "categories", "c1"))
}

func TestMemoryStore_SetMergePatchesFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, store.Set(ctx, "categories", "c1", Document{"id": "c1", "name": "Widgets", "description": "old"}, false))
	require.NoError(t, store.Set(ctx, "categories", "c1", Document{"description": "new"}, true))

	doc, err := store.Get(ctx, "categories", "c1")
	require.NoError(t, err)
	assert.Equal(t, "Widgets", doc["name"])
	assert.Equal(t, "new", doc["description"])
}

func TestMemoryStore_SetReplaceDropsMissingFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	require.NoError(t, store.Set(ctx, "categories", "c1", Document{"id": "c1", "name": "Widgets", "description": "old"}, false))
	require.NoError(t, store.Set(ctx, "categories", "c1", Document{"id": "c1", "name": "Widgets"}, false))

	doc, err := store.Get(ctx, "categories", "c1")
	require.NoError(t, err)
	_, hasDescription := doc["description"]
	assert.False(t, hasDescription)
}

func TestMemoryStore_RunDefaultsToIDOrder(t *testing.T) {
	store := NewMemory()
	seedProducts(t, store)

	docs, err := store.Run(context.Background(), query.From("products").Build())
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2", "p3", "p4"}, ids(docs))
}

func TestMemoryStore_RunEqualityAndIn(t *testing.T) {
	store := NewMemory()
	seedProducts(t, store)

	spec := query.From("products").
		Where(query.In("status", []string{"active", "draft"})).
		Where(query.Eq("region", "us")).
		Build()

	docs, err := store.Run(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, ids(docs))
}

func TestMemoryStore_RunBooleanEquality(t *testing.T) {
	store := NewMemory()
	seedProducts(t, store)

	docs, err := store.Run(context.Background(), query.From("products").Where(query.Eq("inStock", true)).Build())
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p3", "p4"}, ids(docs))

	// The string "true" must not match a boolean field.
	docs, err = store.Run(context.Background(), query.From("products").Where(query.Eq("inStock", "true")).Build())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestMemoryStore_RunOrderByNumeric(t *testing.T) {
	store := NewMemory()
	seedProducts(t, store)

	spec := query.From("products").OrderBy("unitPrice", query.Desc).Build()
	docs, err := store.Run(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"p3", "p1", "p2", "p4"}, ids(docs))
}

func TestMemoryStore_RunCursorAndLimit(t *testing.T) {
	store := NewMemory()
	seedProducts(t, store)
	ctx := context.Background()

	first, err := store.Run(ctx, query.From("products").Limit(2).Build())
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, ids(first))

	second, err := store.Run(ctx, query.From("products").StartAfter("p2").Limit(2).Build())
	require.NoError(t, err)
	assert.Equal(t, []string{"p3", "p4"}, ids(second))
}

func TestMemoryStore_RunUnresolvableCursorStartsFromBeginning(t *testing.T) {
	store := NewMemory()
	seedProducts(t, store)

	docs, err := store.Run(context.Background(), query.From("products").StartAfter("missing").Limit(2).Build())
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, ids(docs))
}

func TestMemoryStore_RunPrefixRange(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	require.NoError(t, store.Set(ctx, "products", "p1", Document{"id": "p1", "productName": "Widget"}, false))
	require.NoError(t, store.Set(ctx, "products", "p2", Document{"id": "p2", "productName": "Wing"}, false))
	require.NoError(t, store.Set(ctx, "products", "p3", Document{"id": "p3", "productName": "Gadget"}, false))

	docs, err := store.Run(ctx, query.From("products").Where(query.Prefix("productName", "Wi")...).Build())
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, ids(docs))
}

func TestMemoryStore_RunEmptyResultIsNonNil(t *testing.T) {
	store := NewMemory()

	docs, err := store.Run(context.Background(), query.From("products").Limit(10).Build())
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()
	require.NoError(t, store.Set(ctx, "categories", "c1", Document{"id": "c1", "name": "Widgets"}, false))

	doc, err := store.Get(ctx, "categories", "c1")
	require.NoError(t, err)
	doc["name"] = "mutated"

	again, err := store.Get(ctx, "categories", "c1")
	require.NoError(t, err)
	assert.Equal(t, "Widgets", again["name"])
}
