package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepositories(t *testing.T) {
	db, teardown := setupPostgres(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	aliceID := uuid.New()
	require.NoError(t, writeRepo.Save(ctx, aliceID, "alice", "hash1"))

	t.Run("DuplicateUsername", func(t *testing.T) {
		err := writeRepo.Save(ctx, uuid.New(), "alice", "hash2")
		assert.ErrorIs(t, err, ErrUsernameConflict)
	})

	t.Run("ByUsername", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, aliceID, user.UserID)
		assert.Equal(t, "hash1", user.PasswordHash)
	})

	t.Run("ByID", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, aliceID)
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, user)

		user, err = readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
