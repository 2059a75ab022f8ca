package seed

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/repository"
)

func TestEnsureCreatesFiles(t *testing.T) {
	dir := t.TempDir()
	userPath := filepath.Join(dir, "users.txt")
	customerPath := filepath.Join(dir, "customers.txt")
	catalogPath := filepath.Join(dir, "inventory.txt")

	users := repository.NewUserRepository(userPath)
	customers := repository.NewCustomerRepository(customerPath)
	catalog := repository.NewCatalogRepository(catalogPath)

	ctx := context.Background()
	require.NoError(t, Ensure(ctx, users, customers, catalog, userPath, customerPath, catalogPath))

	loadedUsers, err := users.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, loadedUsers, 2)

	loadedCustomers, err := customers.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, loadedCustomers, 1)
	assert.Equal(t, "1000.00", loadedCustomers[0].Funds.StringFixed(2))

	loadedCatalog, err := catalog.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, loadedCatalog.Size())
}

func TestEnsureDoesNotDuplicate(t *testing.T) {
	dir := t.TempDir()
	userPath := filepath.Join(dir, "users.txt")
	customerPath := filepath.Join(dir, "customers.txt")
	catalogPath := filepath.Join(dir, "inventory.txt")

	users := repository.NewUserRepository(userPath)
	customers := repository.NewCustomerRepository(customerPath)
	catalog := repository.NewCatalogRepository(catalogPath)

	ctx := context.Background()
	require.NoError(t, Ensure(ctx, users, customers, catalog, userPath, customerPath, catalogPath))
	require.NoError(t, Ensure(ctx, users, customers, catalog, userPath, customerPath, catalogPath))

	loadedUsers, err := users.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, loadedUsers, 2, "a second run must not append again")
}
