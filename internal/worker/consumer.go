package worker

import (
	"context"
	"encoding/json"

	"github.com/casinodex-next/internal/cache"
	"github.com/casinodex-next/internal/constants"
	"github.com/casinodex-next/internal/logger"
	"github.com/casinodex-next/internal/provider"
	"github.com/casinodex-next/internal/queue"
	"github.com/casinodex-next/internal/repository"

	"github.com/hibiken/asynq"
)

// Consumer handles queued affiliate tasks. It maintains the redis
// campaign counters; the click event table remains the source of truth.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register attaches task handlers to the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskClickRecorded, c.handleClickRecorded)
	mux.HandleFunc(queue.TaskStatsRollup, c.handleStatsRollup)
}

func (c *Consumer) handleClickRecorded(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_click_recorded_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.ClickRecordedPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_click_recorded_unmarshal_failed", "error", err)
		return err
	}
	if payload.CampaignID == "" {
		logger.Debugw("worker_click_recorded_skip_invalid_payload", "event_id", payload.EventID)
		return nil
	}
	if err := cache.IncrCampaignStat(ctx, payload.CampaignID, payload.Source, payload.Converted); err != nil {
		logger.Warnw("worker_click_recorded_incr_failed",
			"event_id", payload.EventID,
			"campaign_id", payload.CampaignID,
			"error", err,
		)
		return err
	}
	return nil
}

func (c *Consumer) handleStatsRollup(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_stats_rollup_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.StatsRollupPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_stats_rollup_unmarshal_failed", "error", err)
		return err
	}
	if payload.CampaignID == "" {
		logger.Debugw("worker_stats_rollup_skip_empty_campaign")
		return nil
	}
	return c.rollupCampaign(ctx, payload.CampaignID)
}

func (c *Consumer) rollupCampaign(ctx context.Context, campaignID string) error {
	stats, err := c.computeCampaignStats(campaignID)
	if err != nil {
		return err
	}
	if err := cache.SetCampaignStats(ctx, stats); err != nil {
		logger.Warnw("worker_stats_rollup_write_failed", "campaign_id", campaignID, "error", err)
		return err
	}
	return nil
}

// computeCampaignStats rebuilds the counters from the event table,
// mirroring the incremental semantics: postback rows bump "postbacks",
// every other source bumps "clicks".
func (c *Consumer) computeCampaignStats(campaignID string) (cache.CampaignStats, error) {
	total, err := c.ClickEventRepo.CountByCampaign(campaignID)
	if err != nil {
		logger.Warnw("worker_stats_rollup_count_failed", "campaign_id", campaignID, "error", err)
		return cache.CampaignStats{}, err
	}
	converted := true
	_, conversions, err := c.ClickEventRepo.List(repository.ClickEventListFilter{
		CampaignID: campaignID,
		Converted:  &converted,
		PageSize:   1,
	})
	if err != nil {
		logger.Warnw("worker_stats_rollup_count_conversions_failed", "campaign_id", campaignID, "error", err)
		return cache.CampaignStats{}, err
	}
	_, postbacks, err := c.ClickEventRepo.List(repository.ClickEventListFilter{
		CampaignID: campaignID,
		Source:     constants.ClickSourcePostback,
		PageSize:   1,
	})
	if err != nil {
		logger.Warnw("worker_stats_rollup_count_postbacks_failed", "campaign_id", campaignID, "error", err)
		return cache.CampaignStats{}, err
	}
	return cache.CampaignStats{
		CampaignID:  campaignID,
		Clicks:      total - postbacks,
		Postbacks:   postbacks,
		Conversions: conversions,
	}, nil
}
