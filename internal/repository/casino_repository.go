package repository

import (
	"errors"
	"strings"

	"github.com/casinodex-next/internal/constants"
	"github.com/casinodex-next/internal/models"

	"gorm.io/gorm"
)

// CasinoRepository is the casino catalog store.
type CasinoRepository interface {
	GetByID(id uint) (*models.Casino, error)
	GetBySlug(slug string) (*models.Casino, error)
	GetByCampaignID(campaignID string) (*models.Casino, error)
	List(filter CasinoListFilter) ([]models.Casino, int64, error)
	ListSlugs() ([]string, error)
	Create(casino *models.Casino) error
	Update(casino *models.Casino) error
	Delete(id uint) error
}

// GormCasinoRepository is the GORM implementation.
type GormCasinoRepository struct {
	db *gorm.DB
}

// NewCasinoRepository creates a casino repository.
func NewCasinoRepository(db *gorm.DB) *GormCasinoRepository {
	return &GormCasinoRepository{db: db}
}

// GetByID returns one casino by primary key.
func (r *GormCasinoRepository) GetByID(id uint) (*models.Casino, error) {
	if id == 0 {
		return nil, nil
	}
	var casino models.Casino
	if err := r.db.Preload("Bonuses").First(&casino, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &casino, nil
}

// GetBySlug returns one casino by slug.
func (r *GormCasinoRepository) GetBySlug(slug string) (*models.Casino, error) {
	normalized := strings.TrimSpace(slug)
	if normalized == "" {
		return nil, nil
	}
	var casino models.Casino
	if err := r.db.Preload("Bonuses").Where("slug = ?", normalized).First(&casino).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &casino, nil
}

// GetByCampaignID returns the casino bound to a tracker campaign.
func (r *GormCasinoRepository) GetByCampaignID(campaignID string) (*models.Casino, error) {
	normalized := strings.TrimSpace(campaignID)
	if normalized == "" {
		return nil, nil
	}
	var casino models.Casino
	if err := r.db.Where("campaign_id = ?", normalized).First(&casino).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &casino, nil
}

// List queries casinos with filtering and pagination.
func (r *GormCasinoRepository) List(filter CasinoListFilter) ([]models.Casino, int64, error) {
	query := r.db.Model(&models.Casino{})
	if filter.WithBonus {
		query = query.Preload("Bonuses")
	}
	if filter.OnlyActive {
		query = query.Where("status = ?", constants.CasinoStatusActive)
	}
	if filter.MinRating > 0 {
		query = query.Where("rating >= ?", filter.MinRating)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		op := likeOperator(r.db)
		query = query.Where("(name "+op+" ? OR slug "+op+" ?)", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.Casino
	if err := query.Order("sort_order asc, rating desc, id asc").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListSlugs returns all active casino slugs, for sitemap generation.
func (r *GormCasinoRepository) ListSlugs() ([]string, error) {
	slugs := make([]string, 0)
	err := r.db.Model(&models.Casino{}).
		Where("status = ?", constants.CasinoStatusActive).
		Order("sort_order asc, id asc").
		Pluck("slug", &slugs).Error
	if err != nil {
		return nil, err
	}
	return slugs, nil
}

// Create inserts one casino.
func (r *GormCasinoRepository) Create(casino *models.Casino) error {
	return r.db.Create(casino).Error
}

// Update saves one casino.
func (r *GormCasinoRepository) Update(casino *models.Casino) error {
	return r.db.Save(casino).Error
}

// Delete soft-deletes one casino.
func (r *GormCasinoRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.Casino{}, id).Error
}
