package implementation

import (
	"testing"
	"time"

	"sipspot-be/internal/entity"
	"sipspot-be/internal/repository/contract"
	"sipspot-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, repo contract.UserRepository, email string, role entity.UserRole) *entity.User {
	t.Helper()
	user := &entity.User{
		Id:        uuid.New(),
		Email:     email,
		FullName:  "Test User",
		Role:      role,
		Status:    entity.UserStatusActive,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(t.Context(), user))
	return user
}

func TestUserSoftDeleteVisibility(t *testing.T) {
	db := testDB(t)
	ctx := t.Context()
	repo := NewUserRepository(db)

	kept := seedUser(t, repo, "kept@example.com", entity.UserRoleCustomer)
	removed := seedUser(t, repo, "removed@example.com", entity.UserRoleCustomer)
	require.NoError(t, repo.Delete(ctx, removed.Id))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, kept.Id, all[0].Id)

	got, err := repo.FindOne(ctx, specification.ByEmail{Email: "removed@example.com"})
	require.NoError(t, err)
	assert.Nil(t, got)

	unscoped, err := repo.FindOneUnscoped(ctx, specification.ByEmail{Email: "removed@example.com"})
	require.NoError(t, err)
	require.NotNil(t, unscoped)
	assert.True(t, unscoped.IsDeleted())

	require.NoError(t, repo.Restore(ctx, removed.Id))
	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFindRefreshTokenByHash(t *testing.T) {
	db := testDB(t)
	ctx := t.Context()
	repo := NewUserRepository(db)

	token := &entity.UserRefreshToken{
		Id:        uuid.New(),
		UserId:    uuid.New(),
		TokenHash: "a1b2c3",
		ExpiresAt: time.Now().Add(time.Hour).UTC(),
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.CreateRefreshToken(ctx, token))

	got, err := repo.FindRefreshToken(ctx, specification.ByTokenHash{Hash: "a1b2c3"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, token.Id, got.Id)

	miss, err := repo.FindRefreshToken(ctx, specification.ByTokenHash{Hash: "unknown"})
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestSetSuspendedAtRoundTrip(t *testing.T) {
	db := testDB(t)
	ctx := t.Context()
	repo := NewUserRepository(db)

	partner := seedUser(t, repo, "partner@example.com", entity.UserRolePartner)

	at := time.Now().UTC().Truncate(time.Microsecond)
	require.NoError(t, repo.SetSuspendedAt(ctx, partner.Id, &at))

	got, err := repo.FindOne(ctx, specification.ByID{ID: partner.Id})
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.SuspendedAt)
	assert.True(t, got.SuspendedAt.Equal(at))

	require.NoError(t, repo.SetSuspendedAt(ctx, partner.Id, nil))
	got, err = repo.FindOne(ctx, specification.ByID{ID: partner.Id})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.SuspendedAt)
}
