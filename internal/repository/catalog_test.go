package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/entity"
)

func catalogFile(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "inventory.txt")
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestCatalogRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inventory.txt")
	repo := NewCatalogRepository(path)

	original := entity.NewCatalog()
	original.Add(&entity.Product{
		ID:          uuid.New(),
		Name:        "bag",
		Brand:       "nike",
		Category:    "accessories",
		SubCategory: "bags",
		Price:       decimal.RequireFromString("20.00"),
		MemberPrice: decimal.RequireFromString("18.50"),
		Quantity:    12,
		Description: "a bag",
	})

	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, original))

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Size())

	want, _ := original.At(0)
	got, _ := loaded.At(0)
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Brand, got.Brand)
	assert.Equal(t, want.Category, got.Category)
	assert.Equal(t, want.SubCategory, got.SubCategory)
	assert.True(t, want.Price.Equal(got.Price))
	assert.True(t, want.MemberPrice.Equal(got.MemberPrice))
	assert.Equal(t, want.Quantity, got.Quantity)
	assert.Equal(t, want.Description, got.Description)
	assert.NotEqual(t, uuid.Nil, got.ID, "loaded products get a surrogate ID")
}

func TestCatalogLoadMissingFile(t *testing.T) {
	repo := NewCatalogRepository(filepath.Join(t.TempDir(), "absent.txt"))

	catalog, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Zero(t, catalog.Size())
}

func TestCatalogLoadTrimsFields(t *testing.T) {
	path := catalogFile(t, "bag , nike , accessories , bags , 20.00 , 18.00 , 12 , a bag\n")
	repo := NewCatalogRepository(path)

	catalog, err := repo.Load(context.Background())

	require.NoError(t, err)
	require.Equal(t, 1, catalog.Size())
	p, _ := catalog.At(0)
	assert.Equal(t, "bag", p.Name)
	assert.Equal(t, "a bag", p.Description)
	assert.Equal(t, 12, p.Quantity)
}

func TestCatalogLoadShortRecordFails(t *testing.T) {
	path := catalogFile(t, "bag,nike,accessories,bags,20.00,18.00,12,a bag\njust,three,fields\n")
	repo := NewCatalogRepository(path)

	_, err := repo.Load(context.Background())

	require.Error(t, err, "a record with the wrong field count must fail the load")
	assert.Contains(t, err.Error(), "want 8 fields")
}

func TestCatalogLoadIgnoresBlankLines(t *testing.T) {
	path := catalogFile(t, "bag,nike,accessories,bags,20.00,18.00,12,a bag\n\n\n")
	repo := NewCatalogRepository(path)

	catalog, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, catalog.Size())
}

func TestCatalogLoadBadNumber(t *testing.T) {
	path := catalogFile(t, "bag,nike,accessories,bags,twenty,18.00,12,a bag\n")
	repo := NewCatalogRepository(path)

	_, err := repo.Load(context.Background())

	assert.Error(t, err)
}

func TestCatalogSaveIsAtomic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory.txt")
	require.NoError(t, os.WriteFile(path, []byte("old,contents,should,be,replaced,entirely,0,x\n"), 0o644))
	repo := NewCatalogRepository(path)

	catalog := entity.NewCatalog()
	catalog.Add(&entity.Product{
		ID:          uuid.New(),
		Name:        "bag",
		Brand:       "nike",
		Category:    "accessories",
		SubCategory: "bags",
		Price:       decimal.RequireFromString("20.00"),
		MemberPrice: decimal.RequireFromString("18.00"),
		Quantity:    12,
		Description: "a bag",
	})
	require.NoError(t, repo.Save(context.Background(), catalog))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "no temp files left behind")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bag,nike,accessories,bags,20.00,18.00,12,a bag\n", string(data))
}
