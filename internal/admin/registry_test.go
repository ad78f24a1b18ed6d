package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_NavigationOrder(t *testing.T) {
	resources := Registry()
	assert.Equal(t, 5, len(resources))
	for i := 1; i < len(resources); i++ {
		assert.Less(t, resources[i-1].NavigationSort, resources[i].NavigationSort)
	}
	assert.Equal(t, "brand", resources[0].Name)
	assert.Equal(t, "category", resources[4].Name)
}

func TestBySegment(t *testing.T) {
	r, ok := BySegment("orders")
	assert.True(t, ok)
	assert.Equal(t, "order", r.Name)
	assert.Equal(t, "number", r.RecordTitle)

	_, ok = BySegment("invoices")
	assert.False(t, ok)
}

func TestGloballySearchable_ExcludesCategory(t *testing.T) {
	names := map[string]bool{}
	for _, r := range GloballySearchable() {
		names[r.Name] = true
	}
	assert.True(t, names["brand"])
	assert.True(t, names["product"])
	assert.True(t, names["customer"])
	assert.True(t, names["order"])
	assert.False(t, names["category"])
}

func TestRegistry_ReturnsCopy(t *testing.T) {
	a := Registry()
	a[0].Name = "mutated"
	b := Registry()
	assert.Equal(t, "brand", b[0].Name)
}
