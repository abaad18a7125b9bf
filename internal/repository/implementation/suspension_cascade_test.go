package implementation

import (
	"testing"
	"time"

	"sipspot-be/internal/entity"
	"sipspot-be/internal/repository/specification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A suspension cascade stamps the rows it hides with one instant, and the
// matching restore reverses only that batch. Rows the partner removed on
// their own keep their original timestamp and stay deleted throughout.
func TestOwnerCascadeRestoresOnlyStampedRows(t *testing.T) {
	db := testDB(t)
	ctx := t.Context()
	repo := NewEstablishmentRepository(db)

	owner := uuid.New()
	ownDeleted := seedEstablishment(t, db, owner, "Closed For Good", "closed-for-good")
	live := seedEstablishment(t, db, owner, "Still Open", "still-open")

	// The partner removed one establishment themselves before the cascade.
	require.NoError(t, repo.Delete(ctx, ownDeleted.Id))

	at := time.Now().UTC().Truncate(time.Microsecond)
	require.NoError(t, repo.SoftDeleteByOwner(ctx, owner, at))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "cascade must hide the remaining live establishment")

	require.NoError(t, repo.RestoreByOwner(ctx, owner, at))

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, live.Id, all[0].Id)

	gone, err := repo.FindOne(ctx, specification.ByID{ID: ownDeleted.Id})
	require.NoError(t, err)
	assert.Nil(t, gone, "the partner's own removal must survive the round trip")
}

func TestMenuCascadeRestoresOnlyStampedRows(t *testing.T) {
	db := testDB(t)
	ctx := t.Context()
	repo := NewMenuRepository(db)

	estId := uuid.New()
	catId := uuid.New()
	mkItem := func(name string) *entity.MenuItem {
		item := &entity.MenuItem{
			Id:              uuid.New(),
			EstablishmentId: estId,
			CategoryId:      catId,
			Name:            name,
			Price:           9.5,
			Available:       true,
			CreatedAt:       time.Now().UTC(),
			UpdatedAt:       time.Now().UTC(),
		}
		require.NoError(t, repo.CreateItem(ctx, item))
		return item
	}

	retired := mkItem("Winter Special")
	current := mkItem("House Lager")
	require.NoError(t, repo.DeleteItem(ctx, retired.Id))

	at := time.Now().UTC().Truncate(time.Microsecond)
	require.NoError(t, repo.SoftDeleteByEstablishments(ctx, []uuid.UUID{estId}, at))
	require.NoError(t, repo.RestoreByEstablishments(ctx, []uuid.UUID{estId}, at))

	items, err := repo.FindItems(ctx, specification.ByEstablishment{EstablishmentID: estId})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, current.Id, items[0].Id)
}

func TestOrderCascadeRestoresOnlyStampedRows(t *testing.T) {
	db := testDB(t)
	ctx := t.Context()
	repo := NewOrderRepository(db)

	estId := uuid.New()
	mkOrder := func() *entity.Order {
		order := &entity.Order{
			Id:              uuid.New(),
			CustomerId:      uuid.New(),
			EstablishmentId: estId,
			MenuItemId:      uuid.New(),
			Quantity:        1,
			UnitPrice:       4.0,
			Total:           4.0,
			Status:          entity.OrderStatusPending,
			CreatedAt:       time.Now().UTC(),
			UpdatedAt:       time.Now().UTC(),
		}
		require.NoError(t, repo.Create(ctx, order))
		return order
	}

	erased := mkOrder()
	kept := mkOrder()
	require.NoError(t, repo.Delete(ctx, erased.Id))

	at := time.Now().UTC().Truncate(time.Microsecond)
	require.NoError(t, repo.SoftDeleteByEstablishments(ctx, []uuid.UUID{estId}, at))
	require.NoError(t, repo.RestoreByEstablishments(ctx, []uuid.UUID{estId}, at))

	orders, err := repo.FindAll(ctx, specification.ByEstablishment{EstablishmentID: estId})
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, kept.Id, orders[0].Id)
}
