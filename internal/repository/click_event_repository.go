package repository

import (
	"errors"
	"strings"

	"github.com/casinodex-next/internal/models"

	"gorm.io/gorm"
)

// ClickEventRepository is the affiliate click event store. Events are
// append-only; there is no update path.
type ClickEventRepository interface {
	Create(event *models.AffiliateClickEvent) error
	GetByClickID(clickID string) (*models.AffiliateClickEvent, error)
	List(filter ClickEventListFilter) ([]models.AffiliateClickEvent, int64, error)
	CountByCampaign(campaignID string) (int64, error)
	ListCampaignIDs() ([]string, error)
}

// GormClickEventRepository is the GORM implementation.
type GormClickEventRepository struct {
	db *gorm.DB
}

// NewClickEventRepository creates a click event repository.
func NewClickEventRepository(db *gorm.DB) *GormClickEventRepository {
	return &GormClickEventRepository{db: db}
}

// Create inserts one click event row.
func (r *GormClickEventRepository) Create(event *models.AffiliateClickEvent) error {
	return r.db.Create(event).Error
}

// GetByClickID returns the first event carrying the given click id.
func (r *GormClickEventRepository) GetByClickID(clickID string) (*models.AffiliateClickEvent, error) {
	normalized := strings.TrimSpace(clickID)
	if normalized == "" {
		return nil, nil
	}
	var event models.AffiliateClickEvent
	if err := r.db.Where("click_id = ?", normalized).Order("id asc").First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// List queries click events with filtering and pagination.
func (r *GormClickEventRepository) List(filter ClickEventListFilter) ([]models.AffiliateClickEvent, int64, error) {
	query := r.db.Model(&models.AffiliateClickEvent{})
	if campaign := strings.TrimSpace(filter.CampaignID); campaign != "" {
		query = query.Where("campaign_id = ?", campaign)
	}
	if clickID := strings.TrimSpace(filter.ClickID); clickID != "" {
		query = query.Where("click_id = ?", clickID)
	}
	if source := strings.TrimSpace(filter.Source); source != "" {
		query = query.Where("source = ?", source)
	}
	if country := strings.TrimSpace(filter.Country); country != "" {
		query = query.Where("country = ?", strings.ToUpper(country))
	}
	if filter.Converted != nil {
		query = query.Where("converted = ?", *filter.Converted)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.AffiliateClickEvent
	if err := query.Order("id desc").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// CountByCampaign counts all events recorded for one campaign.
func (r *GormClickEventRepository) CountByCampaign(campaignID string) (int64, error) {
	normalized := strings.TrimSpace(campaignID)
	if normalized == "" {
		return 0, nil
	}
	var total int64
	if err := r.db.Model(&models.AffiliateClickEvent{}).
		Where("campaign_id = ?", normalized).
		Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// ListCampaignIDs returns the distinct campaign ids seen in the event table.
func (r *GormClickEventRepository) ListCampaignIDs() ([]string, error) {
	var ids []string
	if err := r.db.Model(&models.AffiliateClickEvent{}).
		Distinct("campaign_id").
		Order("campaign_id asc").
		Pluck("campaign_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}
