package docstore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/inventory-service/internal/pkg/query"
)

// FirestoreStore implements Store for Cloud Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestore creates a Store backed by the given Firestore client.
func NewFirestore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Get retrieves a document by id.
func (s *FirestoreStore) Get(ctx context.Context, collection, id string) (Document, error) {
	snap, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return snap.Data(), nil
}

// Set writes a document, replacing it or merging per the flag.
func (s *FirestoreStore) Set(ctx context.Context, collection, id string, doc Document, merge bool) error {
	var opts []firestore.SetOption
	if merge {
		opts = append(opts, firestore.MergeAll)
	}
	if _, err := s.client.Collection(collection).Doc(id).Set(ctx, doc, opts...); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// Delete removes a document. Firestore treats deleting a missing
// document as a no-op, which matches the Store contract.
func (s *FirestoreStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

// Run executes a query spec against Firestore.
func (s *FirestoreStore) Run(ctx context.Context, spec query.Spec) ([]Document, error) {
	col := s.client.Collection(spec.Collection)
	q := col.Query

	for _, cond := range spec.Conditions {
		q = q.Where(cond.Field, string(cond.Op), cond.Value)
	}

	if spec.OrderField != "" {
		dir := firestore.Asc
		if spec.OrderDir == query.Desc {
			dir = firestore.Desc
		}
		q = q.OrderBy(spec.OrderField, dir)
	} else if spec.StartAfter != "" {
		// Snapshot cursors need an explicit ordering; fall back to the
		// store's default document-id order.
		q = q.OrderBy(firestore.DocumentID, firestore.Asc)
	}

	if spec.StartAfter != "" {
		// Resolve the cursor to a snapshot; a cursor that no longer
		// resolves means "start from the beginning".
		snap, err := col.Doc(spec.StartAfter).Get(ctx)
		if err == nil && snap.Exists() {
			q = q.StartAfter(snap)
		}
	}

	if spec.Limit > 0 {
		q = q.Limit(int(spec.Limit))
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	docs := make([]Document, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate documents: %w", err)
		}
		docs = append(docs, snap.Data())
	}
	return docs, nil
}
