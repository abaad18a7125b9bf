package service

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"sipspot-be/internal/entity"
	"sipspot-be/internal/pkg/authz"
	"sipspot-be/internal/pkg/logger"
	"sipspot-be/internal/repository/specification"
	"sipspot-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}

func adminTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	for _, ddl := range []string{
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL,
			password_hash TEXT,
			full_name TEXT NOT NULL DEFAULT '',
			phone TEXT DEFAULT '',
			role TEXT NOT NULL DEFAULT 'customer',
			status TEXT NOT NULL DEFAULT 'pending',
			email_verified BOOLEAN DEFAULT FALSE,
			email_verified_at DATETIME,
			avatar_url TEXT,
			trial_used BOOLEAN DEFAULT FALSE,
			suspended_at DATETIME,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME
		)`,
		`CREATE TABLE establishments (
			id TEXT PRIMARY KEY,
			owner_id TEXT NOT NULL,
			name TEXT NOT NULL,
			slug TEXT NOT NULL,
			description TEXT DEFAULT '',
			address_line TEXT DEFAULT '',
			city TEXT DEFAULT '',
			postal_code TEXT DEFAULT '',
			country TEXT DEFAULT '',
			latitude REAL,
			longitude REAL,
			happy_hours TEXT DEFAULT '[]',
			qr_code TEXT DEFAULT '',
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME
		)`,
		`CREATE TABLE menu_categories (
			id TEXT PRIMARY KEY,
			establishment_id TEXT NOT NULL,
			name TEXT NOT NULL,
			sort_order INTEGER DEFAULT 0,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME
		)`,
		`CREATE TABLE menu_items (
			id TEXT PRIMARY KEY,
			establishment_id TEXT NOT NULL,
			category_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT DEFAULT '',
			price REAL NOT NULL,
			available BOOLEAN DEFAULT TRUE,
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME
		)`,
		`CREATE TABLE orders (
			id TEXT PRIMARY KEY,
			customer_id TEXT NOT NULL,
			establishment_id TEXT NOT NULL,
			menu_item_id TEXT NOT NULL,
			quantity INTEGER NOT NULL DEFAULT 1,
			unit_price REAL NOT NULL,
			total REAL NOT NULL,
			status TEXT NOT NULL DEFAULT 'pending',
			note TEXT DEFAULT '',
			created_at DATETIME,
			updated_at DATETIME,
			deleted_at DATETIME
		)`,
	} {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

// A partner removes one listing, keeps another, then gets blocked and
// unblocked. The unblock must bring back only what the block hid.
func TestBlockUnblockKeepsPartnerDeletions(t *testing.T) {
	db := adminTestDB(t)
	ctx := t.Context()

	uowFactory := unitofwork.NewRepositoryFactory(db)
	svc := NewAdminService(uowFactory, nil, nopLogger{})
	admin := authz.Principal{Id: uuid.New(), Role: entity.UserRoleAdmin}

	uow := uowFactory.NewUnitOfWork(ctx)
	partner := &entity.User{
		Id:        uuid.New(),
		Email:     "partner@example.com",
		FullName:  "Partner",
		Role:      entity.UserRolePartner,
		Status:    entity.UserStatusActive,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, uow.UserRepository().Create(ctx, partner))

	mkEst := func(name, slug string) *entity.Establishment {
		est := &entity.Establishment{
			Id:        uuid.New(),
			OwnerId:   partner.Id,
			Name:      name,
			Slug:      slug,
			CreatedAt: time.Now().UTC(),
			UpdatedAt: time.Now().UTC(),
		}
		require.NoError(t, uow.EstablishmentRepository().Create(ctx, est))
		return est
	}
	closed := mkEst("Closed By Owner", "closed-by-owner")
	kept := mkEst("Still Open", "still-open")

	// The partner closes one listing before any admin action.
	require.NoError(t, uow.EstablishmentRepository().Delete(ctx, closed.Id))

	require.NoError(t, svc.BlockUser(ctx, admin, partner.Id))

	listed, err := uow.EstablishmentRepository().FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, listed)

	blocked, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: partner.Id})
	require.NoError(t, err)
	require.NotNil(t, blocked)
	assert.NotNil(t, blocked.SuspendedAt)

	require.NoError(t, svc.UnblockUser(ctx, admin, partner.Id))

	listed, err = uow.EstablishmentRepository().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, kept.Id, listed[0].Id)

	restored, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: partner.Id})
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Nil(t, restored.SuspendedAt)
	assert.Equal(t, entity.UserStatusActive, restored.Status)
}

func TestBlockTwiceKeepsFirstStamp(t *testing.T) {
	db := adminTestDB(t)
	ctx := t.Context()

	uowFactory := unitofwork.NewRepositoryFactory(db)
	svc := NewAdminService(uowFactory, nil, nopLogger{})
	admin := authz.Principal{Id: uuid.New(), Role: entity.UserRoleAdmin}

	uow := uowFactory.NewUnitOfWork(ctx)
	partner := &entity.User{
		Id:        uuid.New(),
		Email:     "partner2@example.com",
		FullName:  "Partner",
		Role:      entity.UserRolePartner,
		Status:    entity.UserStatusActive,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, uow.UserRepository().Create(ctx, partner))

	est := &entity.Establishment{
		Id:        uuid.New(),
		OwnerId:   partner.Id,
		Name:      "Solo Bar",
		Slug:      "solo-bar",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, uow.EstablishmentRepository().Create(ctx, est))

	require.NoError(t, svc.BlockUser(ctx, admin, partner.Id))
	first, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: partner.Id})
	require.NoError(t, err)
	require.NotNil(t, first.SuspendedAt)

	// A repeated block must not restamp and orphan the hidden batch.
	require.NoError(t, svc.BlockUser(ctx, admin, partner.Id))
	second, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: partner.Id})
	require.NoError(t, err)
	require.NotNil(t, second.SuspendedAt)
	assert.True(t, second.SuspendedAt.Equal(*first.SuspendedAt))

	require.NoError(t, svc.UnblockUser(ctx, admin, partner.Id))
	listed, err := uow.EstablishmentRepository().FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}
