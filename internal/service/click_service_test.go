package service

import (
	"context"
	"errors"
	"testing"

	"github.com/casinodex-next/internal/constants"
	"github.com/casinodex-next/internal/models"
	"github.com/casinodex-next/internal/queue"
	"github.com/casinodex-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupClickServiceTest(t *testing.T) (*ClickService, *gorm.DB) {
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
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("new disabled queue failed: %v", err)
	}
	return NewClickService(repository.NewClickEventRepository(db), queueClient), db
}

type failingClickRepo struct{}

func (failingClickRepo) Create(event *models.AffiliateClickEvent) error {
	return errors.New("store unavailable")
}

func (failingClickRepo) GetByClickID(clickID string) (*models.AffiliateClickEvent, error) {
	return nil, errors.New("store unavailable")
}

func (failingClickRepo) List(filter repository.ClickEventListFilter) ([]models.AffiliateClickEvent, int64, error) {
	return nil, 0, errors.New("store unavailable")
}

func (failingClickRepo) CountByCampaign(campaignID string) (int64, error) {
	return 0, errors.New("store unavailable")
}

func (failingClickRepo) ListCampaignIDs() ([]string, error) {
	return nil, errors.New("store unavailable")
}

func TestRecordClickRequiresCampaign(t *testing.T) {
	svc, _ := setupClickServiceTest(t)

	if _, err := svc.RecordClick(context.Background(), ClickInput{CampaignID: "  "}); !errors.Is(err, ErrCampaignRequired) {
		t.Fatalf("want ErrCampaignRequired, got %v", err)
	}
}

func TestRecordClickInsertsRedirectEvent(t *testing.T) {
	svc, db := setupClickServiceTest(t)

	event, err := svc.RecordClick(context.Background(), ClickInput{
		CampaignID: " 1001 ",
		ClickID:    "ck-1",
		UserAgent:  "Mozilla/5.0",
		IPAddress:  "203.0.113.10",
		Country:    "ca",
	})
	if err != nil {
		t.Fatalf("record click failed: %v", err)
	}
	if event.CampaignID != "1001" {
		t.Fatalf("campaign id should be trimmed, got %q", event.CampaignID)
	}
	if event.Source != constants.ClickSourceRedirect {
		t.Fatalf("unexpected source: %q", event.Source)
	}
	if event.Country != "CA" {
		t.Fatalf("country should normalize to upper, got %q", event.Country)
	}
	if event.Converted {
		t.Fatalf("redirect click must not be converted")
	}

	var count int64
	if err := db.Model(&models.AffiliateClickEvent{}).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("want exactly one row, got %d", count)
	}
}

func TestRecordPostbackWithConversionAmount(t *testing.T) {
	svc, _ := setupClickServiceTest(t)

	event, err := svc.RecordPostback(context.Background(), ClickInput{
		CampaignID:       "1001",
		ClickID:          "ck-1",
		ConversionAmount: "125.505",
	})
	if err != nil {
		t.Fatalf("record postback failed: %v", err)
	}
	if event.Source != constants.ClickSourcePostback {
		t.Fatalf("unexpected source: %q", event.Source)
	}
	if !event.Converted {
		t.Fatalf("event should be converted")
	}
	if event.ConversionAt == nil {
		t.Fatalf("conversion time should be set")
	}
	if event.Revenue == nil || event.Revenue.String() != "125.51" {
		t.Fatalf("unexpected revenue: %+v", event.Revenue)
	}
}

func TestRecordPostbackWithoutAmountIsNotConverted(t *testing.T) {
	svc, _ := setupClickServiceTest(t)

	for _, amount := range []string{"", "not-a-number"} {
		event, err := svc.RecordPostback(context.Background(), ClickInput{
			CampaignID:       "1001",
			ConversionAmount: amount,
		})
		if err != nil {
			t.Fatalf("record postback (%q) failed: %v", amount, err)
		}
		if event.Converted {
			t.Fatalf("amount %q should not mark converted", amount)
		}
		if event.Revenue != nil || event.ConversionAt != nil {
			t.Fatalf("amount %q should leave revenue empty", amount)
		}
	}
}

func TestRecordPostbackAppendsNewRow(t *testing.T) {
	svc, db := setupClickServiceTest(t)

	first, err := svc.RecordClick(context.Background(), ClickInput{CampaignID: "1001", ClickID: "ck-1"})
	if err != nil {
		t.Fatalf("record click failed: %v", err)
	}
	second, err := svc.RecordPostback(context.Background(), ClickInput{CampaignID: "1001", ClickID: "ck-1", ConversionAmount: "10"})
	if err != nil {
		t.Fatalf("record postback failed: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("postback must append, not merge")
	}

	var count int64
	if err := db.Model(&models.AffiliateClickEvent{}).Where("click_id = ?", "ck-1").Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("want 2 rows for click id, got %d", count)
	}

	// lookups resolve to the original click, not the confirmation
	found, err := svc.FindByClickID(context.Background(), "ck-1")
	if err != nil {
		t.Fatalf("find by click id failed: %v", err)
	}
	if found.ID != first.ID {
		t.Fatalf("want first event %d, got %d", first.ID, found.ID)
	}
}

func TestRecordRedirectClickSwallowsStoreFailure(t *testing.T) {
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("new disabled queue failed: %v", err)
	}
	svc := NewClickService(failingClickRepo{}, queueClient)

	// must not panic or surface the error
	svc.RecordRedirectClick(context.Background(), ClickInput{CampaignID: "1001"})
}

func TestRecordPostbackSurfacesStoreFailure(t *testing.T) {
	queueClient, err := queue.NewClient(nil)
	if err != nil {
		t.Fatalf("new disabled queue failed: %v", err)
	}
	svc := NewClickService(failingClickRepo{}, queueClient)

	if _, err := svc.RecordPostback(context.Background(), ClickInput{CampaignID: "1001"}); err == nil {
		t.Fatalf("postback store failure must propagate")
	}
}

func TestFindByClickIDValidation(t *testing.T) {
	svc, _ := setupClickServiceTest(t)

	if _, err := svc.FindByClickID(context.Background(), "  "); !errors.Is(err, ErrClickIDRequired) {
		t.Fatalf("want ErrClickIDRequired, got %v", err)
	}
	if _, err := svc.FindByClickID(context.Background(), "ck-missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
