package implementation

import (
	"testing"

	"sipspot-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstablishmentSoftDeleteVisibility(t *testing.T) {
	db := testDB(t)
	ctx := t.Context()
	repo := NewEstablishmentRepository(db)

	owner := uuid.New()
	kept := seedEstablishment(t, db, owner, "Corner Bar", "corner-bar")
	removed := seedEstablishment(t, db, owner, "Old Tavern", "old-tavern")

	require.NoError(t, repo.Delete(ctx, removed.Id))

	t.Run("scoped reads exclude deleted rows", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, kept.Id, all[0].Id)

		got, err := repo.FindOne(ctx, specification.ByID{ID: removed.Id})
		require.NoError(t, err)
		assert.Nil(t, got)

		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("unscoped reads include deleted rows", func(t *testing.T) {
		all, err := repo.FindAllUnscoped(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		got, err := repo.FindOneUnscoped(ctx, specification.ByID{ID: removed.Id})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.True(t, got.IsDeleted())
	})

	t.Run("restore returns the row to listings", func(t *testing.T) {
		require.NoError(t, repo.Restore(ctx, removed.Id))

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)

		got, err := repo.FindOne(ctx, specification.ByID{ID: removed.Id})
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.False(t, got.IsDeleted())
	})
}

func TestEstablishmentFindBySlugSkipsDeleted(t *testing.T) {
	db := testDB(t)
	ctx := t.Context()
	repo := NewEstablishmentRepository(db)

	est := seedEstablishment(t, db, uuid.New(), "Night Owl", "night-owl")
	require.NoError(t, repo.Delete(ctx, est.Id))

	got, err := repo.FindOne(ctx, specification.BySlug{Slug: "night-owl"})
	require.NoError(t, err)
	assert.Nil(t, got)
}
