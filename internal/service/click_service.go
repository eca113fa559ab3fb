package service

import (
	"context"
	"strings"
	"time"

	"github.com/casinodex-next/internal/constants"
	"github.com/casinodex-next/internal/logger"
	"github.com/casinodex-next/internal/models"
	"github.com/casinodex-next/internal/queue"
	"github.com/casinodex-next/internal/repository"

	"github.com/shopspring/decimal"
)

// ClickInput carries the attributes of one affiliate interaction.
type ClickInput struct {
	CampaignID       string
	ClickID          string
	ConversionAmount string
	UserAgent        string
	Referer          string
	IPAddress        string
	Country          string
}

// ClickService records affiliate click events. The event table is
// append-only: redirect clicks and postback confirmations are separate
// rows, never merged.
type ClickService struct {
	clickRepo repository.ClickEventRepository
	queue     *queue.Client
}

// NewClickService creates a click service.
func NewClickService(clickRepo repository.ClickEventRepository, queueClient *queue.Client) *ClickService {
	return &ClickService{
		clickRepo: clickRepo,
		queue:     queueClient,
	}
}

// RecordClick validates and inserts a redirect click event. Store
// failures are returned to the caller.
func (s *ClickService) RecordClick(ctx context.Context, input ClickInput) (*models.AffiliateClickEvent, error) {
	campaignID := strings.TrimSpace(input.CampaignID)
	if campaignID == "" {
		return nil, ErrCampaignRequired
	}

	event := &models.AffiliateClickEvent{
		CampaignID: campaignID,
		ClickID:    strings.TrimSpace(input.ClickID),
		Source:     constants.ClickSourceRedirect,
		UserAgent:  strings.TrimSpace(input.UserAgent),
		Referer:    strings.TrimSpace(input.Referer),
		IPAddress:  strings.TrimSpace(input.IPAddress),
		Country:    strings.ToUpper(strings.TrimSpace(input.Country)),
	}
	if err := s.clickRepo.Create(event); err != nil {
		return nil, err
	}
	s.enqueueRecorded(event)
	return event, nil
}

// RecordRedirectClick records a click on the tracked redirect path.
// Recording is best effort: any failure is logged and swallowed so the
// visitor's redirect is never blocked by the store.
func (s *ClickService) RecordRedirectClick(ctx context.Context, input ClickInput) {
	if _, err := s.RecordClick(ctx, input); err != nil {
		logger.Warnw("redirect_click_record_failed",
			"campaign_id", input.CampaignID,
			"error", err,
		)
	}
}

// RecordPostback inserts a confirmed postback event. A parseable
// conversion amount marks the event converted with revenue; store
// failures propagate to the caller.
func (s *ClickService) RecordPostback(ctx context.Context, input ClickInput) (*models.AffiliateClickEvent, error) {
	campaignID := strings.TrimSpace(input.CampaignID)
	if campaignID == "" {
		return nil, ErrCampaignRequired
	}

	event := &models.AffiliateClickEvent{
		CampaignID: campaignID,
		ClickID:    strings.TrimSpace(input.ClickID),
		Source:     constants.ClickSourcePostback,
		UserAgent:  strings.TrimSpace(input.UserAgent),
		Referer:    strings.TrimSpace(input.Referer),
		IPAddress:  strings.TrimSpace(input.IPAddress),
		Country:    strings.ToUpper(strings.TrimSpace(input.Country)),
	}

	if amount := strings.TrimSpace(input.ConversionAmount); amount != "" {
		parsed, err := decimal.NewFromString(amount)
		if err != nil {
			logger.Warnw("postback_conversion_amount_invalid",
				"campaign_id", campaignID,
				"conversion_amount", amount,
			)
		} else {
			now := time.Now()
			revenue := models.NewMoneyFromDecimal(parsed)
			event.Converted = true
			event.ConversionAt = &now
			event.Revenue = &revenue
		}
	}

	if err := s.clickRepo.Create(event); err != nil {
		return nil, err
	}
	s.enqueueRecorded(event)
	return event, nil
}

// FindByClickID returns the first event recorded with the given click id.
func (s *ClickService) FindByClickID(ctx context.Context, clickID string) (*models.AffiliateClickEvent, error) {
	normalized := strings.TrimSpace(clickID)
	if normalized == "" {
		return nil, ErrClickIDRequired
	}
	event, err := s.clickRepo.GetByClickID(normalized)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	return event, nil
}

// ListClicks queries click events for the admin surface.
func (s *ClickService) ListClicks(filter repository.ClickEventListFilter) ([]models.AffiliateClickEvent, int64, error) {
	return s.clickRepo.List(filter)
}

// CountByCampaign counts stored events for a campaign.
func (s *ClickService) CountByCampaign(campaignID string) (int64, error) {
	return s.clickRepo.CountByCampaign(campaignID)
}

func (s *ClickService) enqueueRecorded(event *models.AffiliateClickEvent) {
	err := s.queue.EnqueueClickRecorded(queue.ClickRecordedPayload{
		EventID:    event.ID,
		CampaignID: event.CampaignID,
		Source:     event.Source,
		Converted:  event.Converted,
		RecordedAt: event.CreatedAt,
	})
	if err != nil {
		logger.Warnw("click_recorded_enqueue_failed",
			"event_id", event.ID,
			"campaign_id", event.CampaignID,
			"error", err,
		)
	}
}
