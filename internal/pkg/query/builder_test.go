package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_BareLimit(t *testing.T) {
	spec := From("products").Limit(10).Build()

	assert.Equal(t, "products", spec.Collection)
	assert.Empty(t, spec.Conditions)
	assert.Equal(t, int64(10), spec.Limit)
	assert.Empty(t, spec.StartAfter)
	assert.Empty(t, spec.OrderField)
}

func TestBuilder_SingleCondition(t *testing.T) {
	spec := From("products").
		Where(Eq("categoryId", "c1")).
		Build()

	require.Len(t, spec.Conditions, 1)
	assert.Equal(t, Eq("categoryId", "c1"), spec.Conditions[0])
}

func TestBuilder_ConditionsPreserveOrder(t *testing.T) {
	spec := From("products").
		Where(In("status", []string{"a", "b"})).
		Where(Eq("region", "us")).
		Build()

	require.Len(t, spec.Conditions, 2)
	assert.Equal(t, OpIn, spec.Conditions[0].Op)
	assert.Equal(t, OpEqual, spec.Conditions[1].Op)
}

func TestBuilder_OrderCursorLimit(t *testing.T) {
	spec := From("categories").
		OrderBy("name", Asc).
		StartAfter("cat-42").
		Limit(25).
		Build()

	assert.Equal(t, "name", spec.OrderField)
	assert.Equal(t, Asc, spec.OrderDir)
	assert.Equal(t, "cat-42", spec.StartAfter)
	assert.Equal(t, int64(25), spec.Limit)
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("products").Where(Eq("region", "us"))

	withLimit := base.Limit(5)
	withOrder := base.OrderBy("sku", Desc)

	assert.Equal(t, int64(0), base.Build().Limit)
	assert.Empty(t, base.Build().OrderField)
	assert.Equal(t, int64(5), withLimit.Build().Limit)
	assert.Equal(t, "sku", withOrder.Build().OrderField)
}

func TestParseOrderBy(t *testing.T) {
	field, dir, ok := ParseOrderBy("unitPrice|asc")
	require.True(t, ok)
	assert.Equal(t, "unitPrice", field)
	assert.Equal(t, Asc, dir)

	field, dir, ok = ParseOrderBy("unitPrice|desc")
	require.True(t, ok)
	assert.Equal(t, "unitPrice", field)
	assert.Equal(t, Desc, dir)
}

func TestParseOrderBy_UnknownDirectionIsDesc(t *testing.T) {
	_, dir, ok := ParseOrderBy("sku|ASC")
	require.True(t, ok)
	assert.Equal(t, Desc, dir)

	_, dir, ok = ParseOrderBy("sku|ascending")
	require.True(t, ok)
	assert.Equal(t, Desc, dir)

	_, dir, ok = ParseOrderBy("sku")
	require.True(t, ok)
	assert.Equal(t, Desc, dir)
}

func TestParseOrderBy_Empty(t *testing.T) {
	_, _, ok := ParseOrderBy("")
	assert.False(t, ok)

	_, _, ok = ParseOrderBy("|asc")
	assert.False(t, ok)
}
