// Package repo implements the repositories over the document store.
// One generic base carries the CRUD and pagination logic; per-entity
// types instantiate it with a collection name and a not-found error.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/light-bringer/inventory-service/internal/app/inventory/contracts"
	"github.com/light-bringer/inventory-service/internal/pkg/docstore"
	"github.com/light-bringer/inventory-service/internal/pkg/query"
)

// base is the generic document repository shared by all collections.
type base[T any] struct {
	store      docstore.Store
	collection string
	notFound   error
	logger     *slog.Logger
}

func newBase[T any](store docstore.Store, collection string, notFound error, logger *slog.Logger) base[T] {
	return base[T]{
		store:      store,
		collection: collection,
		notFound:   notFound,
		logger:     logger,
	}
}

func (b *base[T]) getByID(ctx context.Context, id string) (*T, error) {
	doc, err := b.store.Get(ctx, b.collection, id)
	if err != nil {
		if errors.Is(err, docstore.ErrNotFound) {
			return nil, b.notFound
		}
		return nil, err
	}
	return b.decode(doc)
}

func (b *base[T]) set(ctx context.Context, id string, item *T, merge bool) (*T, error) {
	doc, err := b.encode(item)
	if err != nil {
		return nil, err
	}
	if err := b.store.Set(ctx, b.collection, id, doc, merge); err != nil {
		return nil, err
	}
	return item, nil
}

func (b *base[T]) delete(ctx context.Context, id string) error {
	return b.store.Delete(ctx, b.collection, id)
}

// queryPage builds and runs one page query. Store failures are logged
// and degrade to nil so list endpoints stay up when the store is not;
// callers distinguish nil (failure) from an empty page.
func (b *base[T]) queryPage(ctx context.Context, opts contracts.ListOptions) []*T {
	builder := query.From(b.collection).
		Where(query.FromFilters(opts.Filters)...)

	if field, dir, ok := query.ParseOrderBy(opts.OrderBy); ok {
		builder = builder.OrderBy(field, dir)
	}
	if opts.Cursor != "" {
		builder = builder.StartAfter(opts.Cursor)
	}

	docs, err := b.store.Run(ctx, builder.Limit(int64(opts.Limit)).Build())
	if err != nil {
		b.logger.Error("store query failed",
			"collection", b.collection,
			"error", err)
		return nil
	}

	items, err := b.decodeAll(docs)
	if err != nil {
		b.logger.Error("failed to decode query result",
			"collection", b.collection,
			"error", err)
		return nil
	}
	return items
}

// search runs a starts-with query on one field. Empty field or text
// degrades to a full collection scan.
func (b *base[T]) search(ctx context.Context, field, text string) ([]*T, error) {
	builder := query.From(b.collection)
	if field != "" && text != "" {
		builder = builder.Where(query.Prefix(field, text)...)
	}

	docs, err := b.store.Run(ctx, builder.Build())
	if err != nil {
		return nil, err
	}
	return b.decodeAll(docs)
}

func (b *base[T]) decodeAll(docs []docstore.Document) ([]*T, error) {
	items := make([]*T, 0, len(docs))
	for _, doc := range docs {
		item, err := b.decode(doc)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// encode and decode round-trip through JSON: the same field tags that
// shape the wire payload shape the stored document.
func (b *base[T]) encode(item *T) (docstore.Document, error) {
	raw, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s document: %w", b.collection, err)
	}
	var doc docstore.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to encode %s document: %w", b.collection, err)
	}
	return doc, nil
}

func (b *base[T]) decode(doc docstore.Document) (*T, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s document: %w", b.collection, err)
	}
	item := new(T)
	if err := json.Unmarshal(raw, item); err != nil {
		return nil, fmt.Errorf("failed to decode %s document: %w", b.collection, err)
	}
	return item, nil
}
