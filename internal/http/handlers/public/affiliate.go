package public

import (
	"errors"
	"net/http"
	"strings"

	"github.com/casinodex-next/internal/constants"
	"github.com/casinodex-next/internal/http/response"
	"github.com/casinodex-next/internal/service"
	"github.com/casinodex-next/internal/tracker"

	"github.com/gin-gonic/gin"
)

// clientCountry resolves the visitor country from the edge headers.
func clientCountry(c *gin.Context) string {
	if v := c.GetHeader(constants.GeoHeaderCloudflare); v != "" {
		return v
	}
	return c.GetHeader(constants.GeoHeaderGeneric)
}

// KeitaroRedirect records a best-effort click and bounces the visitor
// to the tracker. A failed insert never blocks the redirect.
func (h *Handler) KeitaroRedirect(c *gin.Context) {
	campaign := strings.TrimSpace(c.Query("campaign"))
	if campaign == "" {
		respondError(c, response.CodeBadRequest, "campaign is required", nil)
		return
	}
	if h.TrackerClient == nil {
		respondError(c, response.CodeInternal, "tracker unavailable", nil)
		return
	}

	clickCtx := tracker.ClickContext{
		UserAgent: c.GetHeader("User-Agent"),
		Referer:   c.GetHeader("Referer"),
		IPAddress: c.ClientIP(),
	}
	if h.ClickService != nil {
		h.ClickService.RecordRedirectClick(c.Request.Context(), service.ClickInput{
			CampaignID: campaign,
			ClickID:    strings.TrimSpace(c.Query("click_id")),
			UserAgent:  clickCtx.UserAgent,
			Referer:    clickCtx.Referer,
			IPAddress:  clickCtx.IPAddress,
			Country:    clientCountry(c),
		})
	}

	target := h.TrackerClient.ClickURL(campaign, clickCtx)
	if target == "" {
		target = h.TrackerClient.FallbackURL()
	}
	c.Redirect(http.StatusFound, target)
}

// PostbackRequest is the conversion notification payload. The context
// fields describe the original visitor, not the tracker making the
// call, so they come from the body rather than the request headers.
type PostbackRequest struct {
	CampaignID       string `json:"campaign_id" form:"campaign_id"`
	ClickID          string `json:"click_id" form:"click_id"`
	ConversionAmount string `json:"conversion_amount" form:"conversion_amount"`
	UserAgent        string `json:"user_agent" form:"user_agent"`
	IPAddress        string `json:"ip_address" form:"ip_address"`
	Referer          string `json:"referer" form:"referer"`
	Country          string `json:"country" form:"country"`
}

// CreatePostback records a confirmed conversion. Unlike the redirect
// path, a storage failure here surfaces to the caller.
func (h *Handler) CreatePostback(c *gin.Context) {
	var req PostbackRequest
	if err := c.ShouldBind(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	if req.UserAgent == "" {
		req.UserAgent = c.GetHeader("User-Agent")
	}
	if req.IPAddress == "" {
		req.IPAddress = c.ClientIP()
	}
	if req.Referer == "" {
		req.Referer = c.GetHeader("Referer")
	}
	if req.Country == "" {
		req.Country = clientCountry(c)
	}

	event, err := h.ClickService.RecordPostback(c.Request.Context(), service.ClickInput{
		CampaignID:       req.CampaignID,
		ClickID:          req.ClickID,
		ConversionAmount: req.ConversionAmount,
		UserAgent:        req.UserAgent,
		Referer:          req.Referer,
		IPAddress:        req.IPAddress,
		Country:          req.Country,
	})
	if err != nil {
		if errors.Is(err, service.ErrCampaignRequired) {
			respondError(c, response.CodeBadRequest, "campaign_id is required", nil)
			return
		}
		respondError(c, response.CodeInternal, "postback record failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"id":      event.ID,
		"message": "postback recorded",
	})
}

// GetPostback looks up the first event stored for a click id.
func (h *Handler) GetPostback(c *gin.Context) {
	clickID := strings.TrimSpace(c.Query("click_id"))
	if clickID == "" {
		respondError(c, response.CodeBadRequest, "click_id is required", nil)
		return
	}

	event, err := h.ClickService.FindByClickID(c.Request.Context(), clickID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "click not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "click lookup failed", err)
		return
	}
	response.Success(c, event)
}
