package repository

import (
	"testing"
	"time"

	"github.com/casinodex-next/internal/constants"
	"github.com/casinodex-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupClickEventRepositoryTest(t *testing.T) *GormClickEventRepository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.AffiliateClickEvent{}); err != nil {
		t.Fatalf("migrate click events failed: %v", err)
	}
	if err := db.Exec("DELETE FROM affiliate_click_events").Error; err != nil {
		t.Fatalf("reset click events failed: %v", err)
	}
	return NewClickEventRepository(db)
}

func createClickEvent(t *testing.T, repo *GormClickEventRepository, campaignID, clickID, source string) *models.AffiliateClickEvent {
	t.Helper()
	event := &models.AffiliateClickEvent{
		CampaignID: campaignID,
		ClickID:    clickID,
		Source:     source,
		UserAgent:  "test-agent",
		IPAddress:  "203.0.113.10",
	}
	if err := repo.Create(event); err != nil {
		t.Fatalf("create click event failed: %v", err)
	}
	return event
}

func TestClickEventCreateSetsTimestamps(t *testing.T) {
	repo := setupClickEventRepositoryTest(t)
	event := createClickEvent(t, repo, "1001", "ck-ts", constants.ClickSourceRedirect)

	if event.CreatedAt.IsZero() || event.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set: created=%v updated=%v", event.CreatedAt, event.UpdatedAt)
	}
}

func TestClickEventGetByClickIDReturnsFirstMatch(t *testing.T) {
	repo := setupClickEventRepositoryTest(t)
	first := createClickEvent(t, repo, "1001", "ck-abc", constants.ClickSourceRedirect)
	createClickEvent(t, repo, "1001", "ck-abc", constants.ClickSourcePostback)

	got, err := repo.GetByClickID("ck-abc")
	if err != nil {
		t.Fatalf("get by click id failed: %v", err)
	}
	if got == nil {
		t.Fatalf("expected event, got nil")
	}
	if got.ID != first.ID {
		t.Fatalf("expected first event id %d, got %d", first.ID, got.ID)
	}
}

func TestClickEventGetByClickIDMissReturnsNil(t *testing.T) {
	repo := setupClickEventRepositoryTest(t)
	createClickEvent(t, repo, "1001", "ck-abc", constants.ClickSourceRedirect)

	got, err := repo.GetByClickID("ck-missing")
	if err != nil {
		t.Fatalf("get by click id failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil on miss, got %+v", got)
	}

	got, err = repo.GetByClickID("   ")
	if err != nil {
		t.Fatalf("blank click id should not error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil on blank click id")
	}
}

func TestClickEventListFilters(t *testing.T) {
	repo := setupClickEventRepositoryTest(t)
	createClickEvent(t, repo, "1001", "ck-1", constants.ClickSourceRedirect)
	createClickEvent(t, repo, "1001", "ck-2", constants.ClickSourcePostback)
	createClickEvent(t, repo, "2002", "ck-3", constants.ClickSourceRedirect)

	now := time.Now()
	revenue := models.NewMoneyFromDecimal(decimal.NewFromFloat(55.5))
	converted := &models.AffiliateClickEvent{
		CampaignID:   "1001",
		ClickID:      "ck-4",
		Source:       constants.ClickSourcePostback,
		Converted:    true,
		ConversionAt: &now,
		Revenue:      &revenue,
	}
	if err := repo.Create(converted); err != nil {
		t.Fatalf("create converted event failed: %v", err)
	}

	rows, total, err := repo.List(ClickEventListFilter{CampaignID: "1001", Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list by campaign failed: %v", err)
	}
	if total != 3 || len(rows) != 3 {
		t.Fatalf("campaign filter want 3 got total=%d rows=%d", total, len(rows))
	}

	yes := true
	rows, total, err = repo.List(ClickEventListFilter{Converted: &yes, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list converted failed: %v", err)
	}
	if total != 1 || len(rows) != 1 {
		t.Fatalf("converted filter want 1 got total=%d rows=%d", total, len(rows))
	}
	if rows[0].Revenue == nil || rows[0].Revenue.String() != "55.50" {
		t.Fatalf("expected revenue 55.50, got %+v", rows[0].Revenue)
	}
}

func TestClickEventCountByCampaign(t *testing.T) {
	repo := setupClickEventRepositoryTest(t)
	createClickEvent(t, repo, "1001", "", constants.ClickSourceRedirect)
	createClickEvent(t, repo, "1001", "", constants.ClickSourceRedirect)
	createClickEvent(t, repo, "2002", "", constants.ClickSourceRedirect)

	total, err := repo.CountByCampaign("1001")
	if err != nil {
		t.Fatalf("count by campaign failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("count want 2 got %d", total)
	}

	total, err = repo.CountByCampaign("  ")
	if err != nil {
		t.Fatalf("blank campaign should not error: %v", err)
	}
	if total != 0 {
		t.Fatalf("blank campaign count want 0 got %d", total)
	}
}
