// Package docstore abstracts the document database behind a small
// capability interface: get by id, set, delete and run a query spec.
// Two implementations exist: one backed by Cloud Firestore and an
// in-memory one for tests and local development.
package docstore

import (
	"context"
	"errors"

	"github.com/light-bringer/inventory-service/internal/pkg/query"
)

// Document is the schemaless unit of storage. Entities keep their id as
// a regular field inside the document as well as in the document key.
type Document = map[string]interface{}

// ErrNotFound is returned by Get when no document has the given id.
var ErrNotFound = errors.New("document not found")

// Store is the document database capability.
type Store interface {
	// Get returns the document with the given id, or ErrNotFound.
	Get(ctx context.Context, collection, id string) (Document, error)

	// Set writes the document under the given id. With merge false the
	// document is replaced wholesale; with merge true only the fields
	// present in doc are patched.
	Set(ctx context.Context, collection, id string, doc Document, merge bool) error

	// Delete removes the document. Deleting an id that does not exist
	// is not an error.
	Delete(ctx context.Context, collection, id string) error

	// Run executes a query spec and returns the matching documents in
	// order. A successful run always returns a non-nil slice, so
	// callers can use nil to mean "the store failed".
	Run(ctx context.Context, spec query.Spec) ([]Document, error)
}
