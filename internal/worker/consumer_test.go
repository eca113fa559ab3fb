package worker

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/casinodex-next/internal/models"
	"github.com/casinodex-next/internal/provider"
	"github.com/casinodex-next/internal/queue"
	"github.com/casinodex-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func setupConsumerTest(t *testing.T) *Consumer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&models.AffiliateClickEvent{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if err := db.Exec("DELETE FROM affiliate_click_events").Error; err != nil {
		t.Fatalf("reset table: %v", err)
	}

	return NewConsumer(&provider.Container{
		ClickEventRepo: repository.NewClickEventRepository(db),
	})
}

func clickRecordedTask(t *testing.T, payload queue.ClickRecordedPayload) *asynq.Task {
	t.Helper()
	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	return asynq.NewTask(queue.TaskClickRecorded, body)
}

func TestHandleClickRecordedInvalidPayload(t *testing.T) {
	consumer := setupConsumerTest(t)

	task := asynq.NewTask(queue.TaskClickRecorded, []byte("not json"))
	if err := consumer.handleClickRecorded(context.Background(), task); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestHandleClickRecordedSkipsEmptyCampaign(t *testing.T) {
	consumer := setupConsumerTest(t)

	task := clickRecordedTask(t, queue.ClickRecordedPayload{EventID: 7, RecordedAt: time.Now()})
	if err := consumer.handleClickRecorded(context.Background(), task); err != nil {
		t.Fatalf("empty campaign should be dropped, got %v", err)
	}
}

func TestHandleClickRecordedDisabledCache(t *testing.T) {
	consumer := setupConsumerTest(t)

	task := clickRecordedTask(t, queue.ClickRecordedPayload{
		EventID:    1,
		CampaignID: "1001",
		Source:     "redirect",
	})
	if err := consumer.handleClickRecorded(context.Background(), task); err != nil {
		t.Fatalf("disabled cache should not fail the task, got %v", err)
	}
}

func TestHandleStatsRollupInvalidPayload(t *testing.T) {
	consumer := setupConsumerTest(t)

	task := asynq.NewTask(queue.TaskStatsRollup, []byte("{"))
	if err := consumer.handleStatsRollup(context.Background(), task); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestHandleStatsRollupRebuildsFromEvents(t *testing.T) {
	consumer := setupConsumerTest(t)

	rows := []models.AffiliateClickEvent{
		{CampaignID: "1001", Source: "redirect"},
		{CampaignID: "1001", Source: "redirect"},
		{CampaignID: "1001", Source: "postback", Converted: true},
		{CampaignID: "2002", Source: "redirect"},
	}
	for i := range rows {
		if err := consumer.ClickEventRepo.Create(&rows[i]); err != nil {
			t.Fatalf("seed event: %v", err)
		}
	}

	body, err := json.Marshal(queue.StatsRollupPayload{CampaignID: "1001"})
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	task := asynq.NewTask(queue.TaskStatsRollup, body)
	if err := consumer.handleStatsRollup(context.Background(), task); err != nil {
		t.Fatalf("rollup: %v", err)
	}

	campaigns, err := consumer.ClickEventRepo.ListCampaignIDs()
	if err != nil {
		t.Fatalf("list campaigns: %v", err)
	}
	if len(campaigns) != 2 || campaigns[0] != "1001" || campaigns[1] != "2002" {
		t.Fatalf("unexpected campaign ids: %v", campaigns)
	}
}

func TestComputeCampaignStatsExcludesPostbacksFromClicks(t *testing.T) {
	consumer := setupConsumerTest(t)

	rows := []models.AffiliateClickEvent{
		{CampaignID: "1001", Source: "redirect"},
		{CampaignID: "1001", Source: "redirect"},
		{CampaignID: "1001", Source: "redirect"},
		{CampaignID: "1001", Source: "postback", Converted: true},
		{CampaignID: "1001", Source: "postback"},
	}
	for i := range rows {
		if err := consumer.ClickEventRepo.Create(&rows[i]); err != nil {
			t.Fatalf("seed event: %v", err)
		}
	}

	stats, err := consumer.computeCampaignStats("1001")
	if err != nil {
		t.Fatalf("compute stats: %v", err)
	}
	if stats.Clicks != 3 {
		t.Fatalf("postback rows must not count as clicks, got %d", stats.Clicks)
	}
	if stats.Postbacks != 2 || stats.Conversions != 1 {
		t.Fatalf("unexpected counters %+v", stats)
	}
}
