package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	repo := NewCategoryRepository(db, nil)
	ctx := context.Background()
	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")

	work, err := repo.Save(ctx, alice, "work")
	require.NoError(t, err)
	assert.Equal(t, "work", work.Name)
	assert.Equal(t, alice, work.UserID)

	t.Run("NameUniquePerOwner", func(t *testing.T) {
		_, err := repo.Save(ctx, alice, "work")
		assert.ErrorIs(t, err, ErrCategoryConflict)

		bobWork, err := repo.Save(ctx, bob, "work")
		require.NoError(t, err)
		assert.NotEqual(t, work.CategoryID, bobWork.CategoryID)
	})

	t.Run("ConflictInsideTransactionKeepsItUsable", func(t *testing.T) {
		tx, err := db.BeginTxx(ctx, nil)
		require.NoError(t, err)
		defer tx.Rollback()

		txRepo := NewCategoryRepository(db, func(context.Context) *sqlx.Tx { return tx })

		_, err = txRepo.Save(ctx, alice, "work")
		assert.ErrorIs(t, err, ErrCategoryConflict)

		got, err := txRepo.GetByName(ctx, alice, "work")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, work.CategoryID, got.CategoryID)

		require.NoError(t, tx.Commit())
	})

	t.Run("OwnerScopedLookups", func(t *testing.T) {
		got, err := repo.GetByID(ctx, alice, work.CategoryID)
		require.NoError(t, err)
		assert.Equal(t, work.CategoryID, got.CategoryID)

		got, err = repo.GetByID(ctx, bob, work.CategoryID)
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = repo.GetByName(ctx, alice, "work")
		require.NoError(t, err)
		assert.Equal(t, work.CategoryID, got.CategoryID)
	})

	t.Run("Rename", func(t *testing.T) {
		_, err := repo.Save(ctx, alice, "reading")
		require.NoError(t, err)

		_, err = repo.Rename(ctx, alice, work.CategoryID, "reading")
		assert.ErrorIs(t, err, ErrCategoryConflict)

		renamed, err := repo.Rename(ctx, alice, work.CategoryID, "office")
		require.NoError(t, err)
		assert.Equal(t, "office", renamed.Name)

		notMine, err := repo.Rename(ctx, bob, work.CategoryID, "stolen")
		require.NoError(t, err)
		assert.Nil(t, notMine)
	})

	t.Run("List", func(t *testing.T) {
		list, err := repo.ListByUser(ctx, alice)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "office", list[0].Name)
		assert.Equal(t, "reading", list[1].Name)
	})

	t.Run("Delete", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, bob, work.CategoryID)
		require.NoError(t, err)
		assert.False(t, deleted)

		deleted, err = repo.Delete(ctx, alice, work.CategoryID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, alice, uuid.New())
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}
