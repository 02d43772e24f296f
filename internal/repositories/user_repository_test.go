package repositories

import (
	"testing"

	"socketBoard/internal/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_UpsertByEmail_CreatesThenReusesID(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	first, err := repo.UpsertByEmail(ctx, "a@x.com", "Alice")
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	assert.Equal(t, "Alice", first.Name)

	second, err := repo.UpsertByEmail(ctx, "a@x.com", "Alice Cooper")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Alice Cooper", second.Name)
}

func TestUserRepository_UpsertByEmail_DistinctEmails(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	a, err := repo.UpsertByEmail(ctx, "a@x.com", "A")
	require.NoError(t, err)
	b, err := repo.UpsertByEmail(ctx, "b@x.com", "B")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	_, err := repo.Create(ctx, "dup@x.com", "one")
	require.NoError(t, err)

	_, err = repo.Create(ctx, "dup@x.com", "two")
	assert.ErrorIs(t, err, errs.ErrUserAlreadyExists)
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))

	_, err := repo.FindByEmail(ctx, "ghost@x.com")
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}
