package admin

import (
	"strconv"
	"strings"
	"time"

	"github.com/casinodex-next/internal/cache"
	"github.com/casinodex-next/internal/http/response"
	"github.com/casinodex-next/internal/queue"
	"github.com/casinodex-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetAdminClicks lists affiliate click events with filtering. The
// table is append-only so this is the audit view of what was recorded.
func (h *Handler) GetAdminClicks(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.ClickEventListFilter{
		Page:       page,
		PageSize:   pageSize,
		CampaignID: strings.TrimSpace(c.Query("campaign_id")),
		ClickID:    strings.TrimSpace(c.Query("click_id")),
		Source:     strings.TrimSpace(c.Query("source")),
		Country:    strings.TrimSpace(c.Query("country")),
	}
	if raw := strings.TrimSpace(c.Query("converted")); raw != "" {
		converted := raw == "1" || strings.EqualFold(raw, "true")
		filter.Converted = &converted
	}
	if raw := strings.TrimSpace(c.Query("created_from")); raw != "" {
		if from, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.CreatedFrom = &from
		}
	}
	if raw := strings.TrimSpace(c.Query("created_to")); raw != "" {
		if to, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.CreatedTo = &to
		}
	}

	events, total, err := h.ClickService.ListClicks(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "click fetch failed", err)
		return
	}
	response.SuccessWithPage(c, events, response.BuildPagination(page, pageSize, total))
}

// GetAdminCampaignStats reports counters for one campaign, combining
// the cached counters and the authoritative event count.
func (h *Handler) GetAdminCampaignStats(c *gin.Context) {
	campaignID := strings.TrimSpace(c.Query("campaign"))
	if campaignID == "" {
		respondError(c, response.CodeBadRequest, "campaign is required", nil)
		return
	}

	total, err := h.ClickService.CountByCampaign(campaignID)
	if err != nil {
		respondError(c, response.CodeInternal, "stats fetch failed", err)
		return
	}
	cached, err := cache.GetCampaignStats(c.Request.Context(), campaignID)
	if err != nil {
		requestLog(c).Warnw("admin_campaign_stats_cache_failed", "campaign_id", campaignID, "error", err)
	}

	response.Success(c, gin.H{
		"campaign_id":        campaignID,
		"total_events":       total,
		"cached_clicks":      cached.Clicks,
		"cached_postbacks":   cached.Postbacks,
		"cached_conversions": cached.Conversions,
	})
}

// EnqueueStatsRollup schedules a counter rebuild for one campaign.
func (h *Handler) EnqueueStatsRollup(c *gin.Context) {
	campaignID := strings.TrimSpace(c.Query("campaign"))
	if campaignID == "" {
		respondError(c, response.CodeBadRequest, "campaign is required", nil)
		return
	}
	if h.QueueClient == nil || !h.QueueClient.Enabled() {
		respondError(c, response.CodeInternal, "queue unavailable", nil)
		return
	}
	if err := h.QueueClient.EnqueueStatsRollup(queue.StatsRollupPayload{CampaignID: campaignID}); err != nil {
		respondError(c, response.CodeInternal, "rollup enqueue failed", err)
		return
	}
	response.Success(c, gin.H{"enqueued": true})
}
