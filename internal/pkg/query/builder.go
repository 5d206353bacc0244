package query

import (
	"fmt"
	"strings"
)

// Direction represents ordering direction.
type Direction int

const (
	// Asc represents ascending order.
	Asc Direction = iota
	// Desc represents descending order.
	Desc
)

// Spec is the executable form of a query: everything a document store
// needs to produce one page of results. StartAfter holds the id of the
// last document of the previous page; the store resolves it to a
// position and skips past it, or silently ignores it when the document
// no longer exists.
type Spec struct {
	Collection string
	Conditions []Condition
	OrderField string
	OrderDir   Direction
	StartAfter string
	Limit      int64
}

// Builder constructs document-store query specs. It provides a fluent
// API for composing conditions, ordering, a start-after cursor and a
// limit. Builders are immutable; every method returns a copy.
type Builder struct {
	collection string
	conditions []Condition
	orderField string
	orderDir   Direction
	startAfter string
	limitVal   int64
}

// From creates a new Builder for the specified collection.
func From(collection string) *Builder {
	return &Builder{
		collection: collection,
		conditions: []Condition{},
	}
}

// Where adds a condition. Multiple calls are combined with AND logic.
func (b *Builder) Where(conditions ...Condition) *Builder {
	newBuilder := b.clone()
	newBuilder.conditions = append(newBuilder.conditions, conditions...)
	return newBuilder
}

// OrderBy specifies the field and direction for sorting.
func (b *Builder) OrderBy(field string, direction Direction) *Builder {
	newBuilder := b.clone()
	newBuilder.orderField = field
	newBuilder.orderDir = direction
	return newBuilder
}

// StartAfter sets the cursor: the id of the last document already seen.
func (b *Builder) StartAfter(id string) *Builder {
	newBuilder := b.clone()
	newBuilder.startAfter = id
	return newBuilder
}

// Limit sets the maximum number of documents to return.
func (b *Builder) Limit(limit int64) *Builder {
	newBuilder := b.clone()
	newBuilder.limitVal = limit
	return newBuilder
}

// Build constructs the final Spec.
func (b *Builder) Build() Spec {
	conditions := make([]Condition, len(b.conditions))
	copy(conditions, b.conditions)
	return Spec{
		Collection: b.collection,
		Conditions: conditions,
		OrderField: b.orderField,
		OrderDir:   b.orderDir,
		StartAfter: b.startAfter,
		Limit:      b.limitVal,
	}
}

// clone creates a shallow copy of the builder for immutability.
func (b *Builder) clone() *Builder {
	newBuilder := &Builder{
		collection: b.collection,
		conditions: make([]Condition, len(b.conditions)),
		orderField: b.orderField,
		orderDir:   b.orderDir,
		startAfter: b.startAfter,
		limitVal:   b.limitVal,
	}
	copy(newBuilder.conditions, b.conditions)
	return newBuilder
}

// String returns a human-readable representation for debugging.
func (b *Builder) String() string {
	spec := b.Build()
	return fmt.Sprintf("Collection: %s\nConditions: %v\nOrder: %s %v\nStartAfter: %q\nLimit: %d",
		spec.Collection, spec.Conditions, spec.OrderField, spec.OrderDir, spec.StartAfter, spec.Limit)
}

// ParseOrderBy splits a raw "field|direction" clause. Any direction
// other than exactly "asc" is treated as descending. ok is false when
// the clause is empty or has no field.
func ParseOrderBy(raw string) (field string, dir Direction, ok bool) {
	if raw == "" {
		return "", Asc, false
	}
	parts := strings.SplitN(raw, "|", 2)
	if parts[0] == "" {
		return "", Asc, false
	}
	dir = Desc
	if len(parts) == 2 && parts[1] == "asc" {
		dir = Asc
	}
	return parts[0], dir, true
}
