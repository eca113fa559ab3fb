package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/casinodex-next/internal/cache"
	"github.com/casinodex-next/internal/http/response"
	"github.com/casinodex-next/internal/repository"
	"github.com/casinodex-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCasinoReviews lists published reviews for one casino.
func (h *Handler) GetCasinoReviews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	reviews, total, err := h.ContentService.ListReviewsForCasino(c.Param("slug"), page, pageSize)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlugRequired):
			respondError(c, response.CodeBadRequest, "slug is required", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "casino not found", nil)
		default:
			respondError(c, response.CodeInternal, "review fetch failed", err)
		}
		return
	}
	response.SuccessWithPage(c, reviews, response.BuildPagination(page, pageSize, total))
}

// GetFAQs lists FAQ entries, optionally scoped to one topic.
func (h *Handler) GetFAQs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	page, pageSize = normalizePagination(page, pageSize)

	faqs, total, err := h.ContentService.ListFAQs(repository.FAQListFilter{
		Page:     page,
		PageSize: pageSize,
		Topic:    strings.TrimSpace(c.Query("topic")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "faq fetch failed", err)
		return
	}
	response.SuccessWithPage(c, faqs, response.BuildPagination(page, pageSize, total))
}

// GetCampaignStats returns the cached counters for one campaign. The
// counters come from redis and may lag the event table slightly.
func (h *Handler) GetCampaignStats(c *gin.Context) {
	campaignID := strings.TrimSpace(c.Query("campaign"))
	if campaignID == "" {
		respondError(c, response.CodeBadRequest, "campaign is required", nil)
		return
	}

	stats, err := cache.GetCampaignStats(c.Request.Context(), campaignID)
	if err != nil {
		respondError(c, response.CodeInternal, "stats fetch failed", err)
		return
	}
	if stats.Clicks == 0 && h.ClickService != nil {
		// Cold cache, fall back to the event table.
		total, countErr := h.ClickService.CountByCampaign(campaignID)
		if countErr == nil {
			stats.Clicks = total
		}
	}
	response.Success(c, stats)
}
