package controller

import (
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sipspot-be/internal/entity"
	"sipspot-be/internal/repository/unitofwork"
	"sipspot-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newCatalogApp wires the real establishment stack over an in-memory database
// and mounts it the way cmd/rest does. The public catalog routes never reach
// the location or payment collaborators, so those stay nil here.
func newCatalogApp(t *testing.T) (*fiber.App, unitofwork.RepositoryFactory) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	for _, ddl := range []string{
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
		`CREATE TABLE feedback (
			id TEXT PRIMARY KEY,
			customer_id TEXT NOT NULL,
			establishment_id TEXT NOT NULL,
			rating INTEGER NOT NULL,
			comment TEXT DEFAULT '',
			created_at DATETIME,
			updated_at DATETIME
		)`,
	} {
		require.NoError(t, db.Exec(ddl).Error)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	svc := service.NewEstablishmentService(uowFactory, nil, nil, "http://localhost:3000")

	app := fiber.New()
	api := app.Group("/api")
	NewEstablishmentController(svc).RegisterRoutes(api)
	return app, uowFactory
}

func TestListEstablishmentsSkipsRemoved(t *testing.T) {
	app, uowFactory := newCatalogApp(t)
	ctx := t.Context()
	repo := uowFactory.NewUnitOfWork(ctx).EstablishmentRepository()

	live := &entity.Establishment{
		Id:        uuid.New(),
		OwnerId:   uuid.New(),
		Name:      "Open Bar",
		Slug:      "open-bar",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, live))

	gone := &entity.Establishment{
		Id:        uuid.New(),
		OwnerId:   uuid.New(),
		Name:      "Closed Bar",
		Slug:      "closed-bar",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, gone))
	require.NoError(t, repo.Delete(ctx, gone.Id))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/establishment/v1", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Open Bar")
	assert.NotContains(t, string(body), "Closed Bar")
}

func TestShowBySlugRemovedIsNotFound(t *testing.T) {
	app, uowFactory := newCatalogApp(t)
	ctx := t.Context()
	repo := uowFactory.NewUnitOfWork(ctx).EstablishmentRepository()

	est := &entity.Establishment{
		Id:        uuid.New(),
		OwnerId:   uuid.New(),
		Name:      "Corner Pub",
		Slug:      "corner-pub",
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Create(ctx, est))

	resp, err := app.Test(httptest.NewRequest("GET", "/api/establishment/v1/slug/corner-pub", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, repo.Delete(ctx, est.Id))

	resp, err = app.Test(httptest.NewRequest("GET", "/api/establishment/v1/slug/corner-pub", nil))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
