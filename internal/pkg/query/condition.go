package query

import "strings"

// Op identifies the comparison a Condition performs. The values match
// the operator strings the document store accepts verbatim.
type Op string

const (
	// OpEqual matches documents whose field equals the value.
	OpEqual Op = "=="
	// OpIn matches documents whose field equals any of the values.
	// The store permits at most one such clause per query.
	OpIn Op = "in"
	// OpGreaterOrEqual matches documents whose field is >= the value.
	OpGreaterOrEqual Op = ">="
	// OpLessOrEqual matches documents whose field is <= the value.
	OpLessOrEqual Op = "<="
)

// Condition is a single predicate over a document field. Conditions on
// the same query are evaluated conjunctively; the store has no OR.
type Condition struct {
	Field string
	Op    Op
	Value interface{}
}

// Filter is a raw key/value pair taken from a request, before any
// operator or type analysis. The value may be a comma-separated set.
type Filter struct {
	Key   string
	Value string
}

// prefixSentinel is a high private-use codepoint the store orders after
// every practical string, so [text, text+sentinel] approximates a
// starts-with match.
const prefixSentinel = ""

// Eq creates an equality condition.
func Eq(field string, value interface{}) Condition {
	return Condition{Field: field, Op: OpEqual, Value: value}
}

// In creates a set-membership condition over the given values.
func In(field string, values []string) Condition {
	return Condition{Field: field, Op: OpIn, Value: values}
}

// Prefix creates the range pair approximating a starts-with match on a
// string field.
func Prefix(field, text string) []Condition {
	return []Condition{
		{Field: field, Op: OpGreaterOrEqual, Value: text},
		{Field: field, Op: OpLessOrEqual, Value: text + prefixSentinel},
	}
}

// Coerce converts the literal strings "true" and "false" into booleans
// so that boolean document fields can be filtered from untyped query
// parameters. Every other value stays a string.
func Coerce(raw string) interface{} {
	switch raw {
	case "true":
		return true
	case "false":
		return false
	default:
		return raw
	}
}

// FromFilters converts raw request filters into store conditions.
//
// The first filter's value is split on commas: more than one non-empty
// token becomes an IN clause, a single token becomes an equality with
// boolean coercion. Because the store allows only one set-membership
// clause per query, every filter after the first is a plain string
// equality, ANDed in order.
func FromFilters(filters []Filter) []Condition {
	if len(filters) == 0 {
		return nil
	}

	first := filters[0]
	tokens := splitTokens(first.Value)

	var conditions []Condition
	if len(tokens) > 1 {
		conditions = append(conditions, In(first.Key, tokens))
	} else {
		conditions = append(conditions, Eq(first.Key, Coerce(first.Value)))
	}

	for _, f := range filters[1:] {
		conditions = append(conditions, Eq(f.Key, f.Value))
	}

	return conditions
}

// splitTokens splits a comma-separated value and drops empty tokens.
func splitTokens(value string) []string {
	parts := strings.Split(value, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
