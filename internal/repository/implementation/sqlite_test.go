package implementation

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"sipspot-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testDB opens an isolated in-memory database and creates the tables the
// repository tests touch. Each test gets its own schema keyed by test name.
func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	for _, ddl := range testSchema {
		require.NoError(t, db.Exec(ddl).Error)
	}
	return db
}

var testSchema = []string{
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
	`CREATE TABLE user_refresh_tokens (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		token_hash TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		revoked BOOLEAN DEFAULT FALSE,
		ip_address TEXT DEFAULT '',
		user_agent TEXT DEFAULT '',
		created_at DATETIME
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
	`CREATE TABLE feedback (
		id TEXT PRIMARY KEY,
		customer_id TEXT NOT NULL,
		establishment_id TEXT NOT NULL,
		rating INTEGER NOT NULL,
		comment TEXT DEFAULT '',
		created_at DATETIME,
		updated_at DATETIME
	)`,
}

func seedEstablishment(t *testing.T, db *gorm.DB, ownerId uuid.UUID, name, slug string) *entity.Establishment {
	t.Helper()
	est := &entity.Establishment{
		Id:        uuid.New(),
		OwnerId:   ownerId,
		Name:      name,
		Slug:      slug,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, NewEstablishmentRepository(db).Create(t.Context(), est))
	return est
}
