//go:build integration
// +build integration

package repository

import (
	"os"
	"strings"
	"testing"

	"github.com/casinodex-next/internal/constants"
	"github.com/casinodex-next/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	cleanupModels := []interface{}{
		&models.AffiliateClickEvent{},
		&models.Bonus{},
		&models.Casino{},
		&models.Game{},
		&models.Category{},
	}
	_ = db.Migrator().DropTable(cleanupModels...)

	if err := db.AutoMigrate(
		&models.Category{},
		&models.Casino{},
		&models.Bonus{},
		&models.Game{},
		&models.AffiliateClickEvent{},
	); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(cleanupModels...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestPostgresCaseInsensitiveCatalogSearch(t *testing.T) {
	db := setupPostgresIntegrationDB(t)

	casinoRepo := NewCasinoRepository(db)
	casino := &models.Casino{
		Slug:   "pg-lucky-spin",
		Name:   "Lucky Spin Casino",
		Rating: 8.5,
		Status: constants.CasinoStatusActive,
	}
	if err := casinoRepo.Create(casino); err != nil {
		t.Fatalf("create casino failed: %v", err)
	}

	// ILIKE path: lowercase query must match the mixed-case name.
	rows, total, err := casinoRepo.List(CasinoListFilter{Page: 1, Search: "lucky spin"})
	if err != nil {
		t.Fatalf("casino search failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("casino search want 1 got total=%d len=%d", total, len(rows))
	}

	gameRepo := NewGameRepository(db)
	game := &models.Game{
		Slug:     "pg-gates",
		Title:    "Gates of Fortune",
		Provider: "Pragmatic Play",
		Type:     constants.GameTypeSlot,
	}
	if err := gameRepo.Create(game); err != nil {
		t.Fatalf("create game failed: %v", err)
	}

	gameRows, gameTotal, err := gameRepo.List(GameListFilter{Page: 1, Search: "PRAGMATIC"})
	if err != nil {
		t.Fatalf("game search failed: %v", err)
	}
	if gameTotal != 1 || len(gameRows) != 1 {
		t.Fatalf("game search want 1 got total=%d len=%d", gameTotal, len(gameRows))
	}
}

func TestPostgresClickEventQueries(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	repo := NewClickEventRepository(db)

	converted := true
	events := []models.AffiliateClickEvent{
		{CampaignID: "pg-1001", ClickID: "pg-click-1", Source: constants.ClickSourceRedirect, Country: "CA"},
		{CampaignID: "pg-1001", ClickID: "pg-click-2", Source: constants.ClickSourcePostback, Converted: true, Country: "CA"},
		{CampaignID: "pg-2002", Source: constants.ClickSourceRedirect, Country: "JP"},
	}
	for i := range events {
		if err := repo.Create(&events[i]); err != nil {
			t.Fatalf("create click event failed: %v", err)
		}
	}

	total, err := repo.CountByCampaign("pg-1001")
	if err != nil {
		t.Fatalf("count by campaign failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("campaign count want 2 got %d", total)
	}

	rows, listTotal, err := repo.List(ClickEventListFilter{Page: 1, PageSize: 10, CampaignID: "pg-1001", Converted: &converted})
	if err != nil {
		t.Fatalf("list converted clicks failed: %v", err)
	}
	if listTotal != 1 || len(rows) != 1 {
		t.Fatalf("converted list want 1 got total=%d len=%d", listTotal, len(rows))
	}
	if rows[0].ClickID != "pg-click-2" {
		t.Fatalf("converted click id want pg-click-2 got %s", rows[0].ClickID)
	}

	campaignIDs, err := repo.ListCampaignIDs()
	if err != nil {
		t.Fatalf("list campaign ids failed: %v", err)
	}
	if len(campaignIDs) != 2 {
		t.Fatalf("campaign ids want 2 got %d", len(campaignIDs))
	}

	event, err := repo.GetByClickID("pg-click-1")
	if err != nil {
		t.Fatalf("get by click id failed: %v", err)
	}
	if event == nil || event.CampaignID != "pg-1001" {
		t.Fatalf("get by click id returned wrong event: %+v", event)
	}
}
