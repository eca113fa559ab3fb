package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/casinodex-next/internal/constants"
)

// CampaignStats holds non-durable per-campaign counters maintained by
// the worker. The click event table stays the source of truth; these
// counters only serve the public stats endpoint.
type CampaignStats struct {
	CampaignID  string `json:"campaign_id"`
	Clicks      int64  `json:"clicks"`
	Postbacks   int64  `json:"postbacks"`
	Conversions int64  `json:"conversions"`
}

func campaignStatsKey(campaignID string) string {
	return fmt.Sprintf("stats:campaign:%s", campaignID)
}

// IncrCampaignStat bumps one counter field for a campaign.
func IncrCampaignStat(ctx context.Context, campaignID, source string, converted bool) error {
	if !Enabled() || campaignID == "" {
		return nil
	}
	key := buildKey(campaignStatsKey(campaignID))
	pipe := redisClient.Pipeline()
	switch source {
	case constants.ClickSourcePostback:
		pipe.HIncrBy(ctx, key, "postbacks", 1)
	default:
		pipe.HIncrBy(ctx, key, "clicks", 1)
	}
	if converted {
		pipe.HIncrBy(ctx, key, "conversions", 1)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// SetCampaignStats replaces the counters for a campaign, used by the
// rollup task.
func SetCampaignStats(ctx context.Context, stats CampaignStats) error {
	if !Enabled() || stats.CampaignID == "" {
		return nil
	}
	key := buildKey(campaignStatsKey(stats.CampaignID))
	return redisClient.HSet(ctx, key,
		"clicks", stats.Clicks,
		"postbacks", stats.Postbacks,
		"conversions", stats.Conversions,
	).Err()
}

// GetCampaignStats reads the counters for a campaign. A missing key
// yields zero counters, not an error.
func GetCampaignStats(ctx context.Context, campaignID string) (CampaignStats, error) {
	stats := CampaignStats{CampaignID: campaignID}
	if !Enabled() || campaignID == "" {
		return stats, nil
	}
	fields, err := redisClient.HGetAll(ctx, buildKey(campaignStatsKey(campaignID))).Result()
	if err != nil {
		return stats, err
	}
	stats.Clicks = parseCounter(fields["clicks"])
	stats.Postbacks = parseCounter(fields["postbacks"])
	stats.Conversions = parseCounter(fields["conversions"])
	return stats, nil
}

func parseCounter(value string) int64 {
	if value == "" {
		return 0
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return parsed
}
