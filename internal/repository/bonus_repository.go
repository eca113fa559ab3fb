package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/casinodex-next/internal/models"

	"gorm.io/gorm"
)

// BonusRepository is the bonus catalog store.
type BonusRepository interface {
	GetByID(id uint) (*models.Bonus, error)
	List(filter BonusListFilter) ([]models.Bonus, int64, error)
	Create(bonus *models.Bonus) error
	Update(bonus *models.Bonus) error
	Delete(id uint) error
}

// GormBonusRepository is the GORM implementation.
type GormBonusRepository struct {
	db *gorm.DB
}

// NewBonusRepository creates a bonus repository.
func NewBonusRepository(db *gorm.DB) *GormBonusRepository {
	return &GormBonusRepository{db: db}
}

// GetByID returns one bonus by primary key.
func (r *GormBonusRepository) GetByID(id uint) (*models.Bonus, error) {
	if id == 0 {
		return nil, nil
	}
	var bonus models.Bonus
	if err := r.db.Preload("Casino").First(&bonus, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bonus, nil
}

// List queries bonuses with filtering and pagination.
func (r *GormBonusRepository) List(filter BonusListFilter) ([]models.Bonus, int64, error) {
	query := r.db.Model(&models.Bonus{}).Preload("Casino")
	if filter.CasinoID != 0 {
		query = query.Where("casino_id = ?", filter.CasinoID)
	}
	if bonusType := strings.TrimSpace(filter.Type); bonusType != "" {
		query = query.Where("type = ?", bonusType)
	}
	if filter.OnlyExclusive {
		query = query.Where("exclusive = ?", true)
	}
	if filter.OnlyValid {
		query = query.Where("(valid_until IS NULL OR valid_until > ?)", time.Now())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.Bonus
	if err := query.Order("sort_order asc, id desc").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Create inserts one bonus.
func (r *GormBonusRepository) Create(bonus *models.Bonus) error {
	return r.db.Create(bonus).Error
}

// Update saves one bonus.
func (r *GormBonusRepository) Update(bonus *models.Bonus) error {
	return r.db.Save(bonus).Error
}

// Delete soft-deletes one bonus.
func (r *GormBonusRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.Bonus{}, id).Error
}
