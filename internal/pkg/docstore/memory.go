package docstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/light-bringer/inventory-service/internal/pkg/query"
)

// MemoryStore is an in-process Store used by tests and local mode. It
// mirrors the hosted store's query semantics: conjunctive conditions,
// single-field ordering with document-id fallback, start-after cursors
// and limits.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string]map[string]Document
}

// NewMemory creates an empty MemoryStore.
func NewMemory() *MemoryStore {
	return &MemoryStore{collections: make(map[string]map[string]Document)}
}

// Get retrieves a copy of the document with the given id.
func (s *MemoryStore) Get(ctx context.Context, collection, id string) (Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.collections[collection][id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneDocument(doc), nil
}

// Set writes a document, replacing or merging per the flag.
func (s *MemoryStore) Set(ctx context.Context, collection, id string, doc Document, merge bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	col := s.collections[collection]
	if col == nil {
		col = make(map[string]Document)
		s.collections[collection] = col
	}

	if merge {
		if existing, ok := col[id]; ok {
			merged := cloneDocument(existing)
			for k, v := range doc {
				merged[k] = v
			}
			col[id] = merged
			return nil
		}
	}
	col[id] = cloneDocument(doc)
	return nil
}

// Delete removes a document; missing ids are a no-op.
func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return nil
}

// Run executes a query spec against the in-memory collections.
func (s *MemoryStore) Run(ctx context.Context, spec query.Spec) ([]Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]Document, 0)
	for _, doc := range s.collections[spec.Collection] {
		if matchesAll(doc, spec.Conditions) {
			matched = append(matched, cloneDocument(doc))
		}
	}

	orderField := spec.OrderField
	descending := spec.OrderDir == query.Desc
	if orderField == "" {
		// Without an explicit order the store yields document-id order.
		orderField = "id"
		descending = false
	}
	sort.SliceStable(matched, func(i, j int) bool {
		less := compareValues(matched[i][orderField], matched[j][orderField]) < 0
		if descending {
			return !less
		}
		return less
	})

	if spec.StartAfter != "" {
		matched = afterCursor(matched, spec.StartAfter)
	}

	if spec.Limit > 0 && int64(len(matched)) > spec.Limit {
		matched = matched[:spec.Limit]
	}
	return matched, nil
}

// afterCursor slices the ordered result to everything past the document
// with the given id. An unresolvable cursor starts from the beginning.
func afterCursor(docs []Document, cursor string) []Document {
	for i, doc := range docs {
		if id, ok := doc["id"].(string); ok && id == cursor {
			return docs[i+1:]
		}
	}
	return docs
}

func matchesAll(doc Document, conditions []query.Condition) bool {
	for _, cond := range conditions {
		if !matches(doc, cond) {
			return false
		}
	}
	return true
}

func matches(doc Document, cond query.Condition) bool {
	val, ok := doc[cond.Field]
	if !ok {
		return false
	}

	switch cond.Op {
	case query.OpEqual:
		return equalValues(val, cond.Value)
	case query.OpIn:
		values, ok := cond.Value.([]string)
		if !ok {
			return false
		}
		for _, candidate := range values {
			if equalValues(val, candidate) {
				return true
			}
		}
		return false
	case query.OpGreaterOrEqual:
		return compareValues(val, cond.Value) >= 0
	case query.OpLessOrEqual:
		return compareValues(val, cond.Value) <= 0
	default:
		return false
	}
}

// equalValues compares a document value with a condition value,
// normalizing numeric types so int64 and float64 representations of
// the same number are equal.
func equalValues(a, b interface{}) bool {
	if na, aok := asFloat(a); aok {
		nb, bok := asFloat(b)
		return bok && na == nb
	}
	return a == b
}

// compareValues orders two values of the same kind: numbers
// numerically, booleans false-before-true, everything else as strings.
func compareValues(a, b interface{}) int {
	if na, aok := asFloat(a); aok {
		if nb, bok := asFloat(b); bok {
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			default:
				return 0
			}
		}
	}
	if ba, aok := a.(bool); aok {
		if bb, bok := b.(bool); bok {
			switch {
			case !ba && bb:
				return -1
			case ba && !bb:
				return 1
			default:
				return 0
			}
		}
	}

	sa := asString(a)
	sb := asString(b)
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

func asString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func cloneDocument(doc Document) Document {
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}
