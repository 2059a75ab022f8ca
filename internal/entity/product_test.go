package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIndexBounds(t *testing.T) {
	catalog := NewCatalog()
	catalog.Add(testProduct("bag", "20.00", 12))

	tests := []struct {
		name  string
		index int
	}{
		{"negative", -1},
		{"at size", 1},
		{"past size", 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.At(tt.index)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
			assert.ErrorIs(t, catalog.RemoveAt(tt.index), ErrIndexOutOfRange)
			assert.ErrorIs(t, catalog.ReplaceAt(tt.index, testProduct("x", "1.00", 1)), ErrIndexOutOfRange)
		})
	}
}

func TestCatalogRemoveAt(t *testing.T) {
	catalog := NewCatalog()
	catalog.Add(testProduct("a", "1.00", 1))
	catalog.Add(testProduct("b", "1.00", 1))
	catalog.Add(testProduct("c", "1.00", 1))

	require.NoError(t, catalog.RemoveAt(1))

	require.Equal(t, 2, catalog.Size())
	first, err := catalog.At(0)
	require.NoError(t, err)
	second, err := catalog.At(1)
	require.NoError(t, err)
	assert.Equal(t, "a", first.Name)
	assert.Equal(t, "c", second.Name)
}

func TestCatalogReplaceAt(t *testing.T) {
	catalog := NewCatalog()
	catalog.Add(testProduct("a", "1.00", 1))

	replacement := testProduct("z", "9.00", 9)
	require.NoError(t, catalog.ReplaceAt(0, replacement))

	got, err := catalog.At(0)
	require.NoError(t, err)
	assert.Equal(t, replacement, got)
}

func TestCatalogDuplicateNamesAreLegal(t *testing.T) {
	catalog := NewCatalog()
	catalog.Add(testProduct("bag", "20.00", 12))
	catalog.Add(testProduct("bag", "25.00", 3))

	assert.Equal(t, 2, catalog.Size())
}

func TestSortedByStockDescending(t *testing.T) {
	low := testProduct("low", "1.00", 2)
	high := testProduct("high", "1.00", 50)
	mid := testProduct("mid", "1.00", 12)

	catalog := NewCatalog()
	catalog.Add(low)
	catalog.Add(high)
	catalog.Add(mid)

	view := catalog.SortedByStockDescending()

	require.Len(t, view, 3)
	assert.Equal(t, []string{"high", "mid", "low"}, []string{view[0].Name, view[1].Name, view[2].Name})

	// The authoritative order used for indexing is untouched.
	first, err := catalog.At(0)
	require.NoError(t, err)
	assert.Equal(t, "low", first.Name)
}

func TestSortedByStockDescendingIsStable(t *testing.T) {
	a := testProduct("a", "1.00", 10)
	b := testProduct("b", "1.00", 10)
	c := testProduct("c", "1.00", 10)

	catalog := NewCatalog()
	catalog.Add(a)
	catalog.Add(b)
	catalog.Add(c)

	view := catalog.SortedByStockDescending()
	assert.Equal(t, []string{"a", "b", "c"}, []string{view[0].Name, view[1].Name, view[2].Name})
}

func TestCatalogByID(t *testing.T) {
	p := testProduct("bag", "20.00", 12)
	catalog := NewCatalog()
	catalog.Add(p)

	got, ok := catalog.ByID(p.ID)
	require.True(t, ok)
	assert.Equal(t, p, got)

	_, ok = catalog.ByID(testProduct("other", "1.00", 1).ID)
	assert.False(t, ok)
}

func TestUserRole(t *testing.T) {
	tests := []struct {
		email string
		want  Role
	}{
		{"member@student.example.edu", RoleCustomer},
		{"admin@merchant.example.edu", RoleAdmin},
		{"someone@example.com", RoleUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, User{Email: tt.email}.Role())
		})
	}
}
