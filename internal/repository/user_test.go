package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/entity"
)

func TestUserLoadAll(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	require.NoError(t, os.WriteFile(path, []byte("member@student.example.edu,Member1234\nadmin@merchant.example.edu,12345678\nnot-a-record\n"), 0o644))
	repo := NewUserRepository(path)

	users, err := repo.LoadAll(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "member@student.example.edu", users[0].Email)
	assert.Equal(t, "Member1234", users[0].Password)
	assert.Equal(t, "admin@merchant.example.edu", users[1].Email)
}

func TestUserAppendCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.txt")
	repo := NewUserRepository(path)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, entity.User{Email: "a@student.example.edu", Password: "pw"}))
	require.NoError(t, repo.Append(ctx, entity.User{Email: "b@merchant.example.edu", Password: "pw2"}))

	users, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "b@merchant.example.edu", users[1].Email)
}
