package repository

import (
	"errors"
	"strings"

	"github.com/casinodex-next/internal/models"

	"gorm.io/gorm"
)

// FAQRepository is the FAQ store.
type FAQRepository interface {
	GetByID(id uint) (*models.FAQ, error)
	List(filter FAQListFilter) ([]models.FAQ, int64, error)
	Create(faq *models.FAQ) error
	Update(faq *models.FAQ) error
	Delete(id uint) error
}

// GormFAQRepository is the GORM implementation.
type GormFAQRepository struct {
	db *gorm.DB
}

// NewFAQRepository creates an FAQ repository.
func NewFAQRepository(db *gorm.DB) *GormFAQRepository {
	return &GormFAQRepository{db: db}
}

// GetByID returns one FAQ by primary key.
func (r *GormFAQRepository) GetByID(id uint) (*models.FAQ, error) {
	if id == 0 {
		return nil, nil
	}
	var faq models.FAQ
	if err := r.db.First(&faq, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &faq, nil
}

// List queries FAQs with filtering and pagination.
func (r *GormFAQRepository) List(filter FAQListFilter) ([]models.FAQ, int64, error) {
	query := r.db.Model(&models.FAQ{})
	if topic := strings.TrimSpace(filter.Topic); topic != "" {
		query = query.Where("topic = ?", topic)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.FAQ
	if err := query.Order("sort_order asc, id asc").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Create inserts one FAQ.
func (r *GormFAQRepository) Create(faq *models.FAQ) error {
	return r.db.Create(faq).Error
}

// Update saves one FAQ.
func (r *GormFAQRepository) Update(faq *models.FAQ) error {
	return r.db.Save(faq).Error
}

// Delete soft-deletes one FAQ.
func (r *GormFAQRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.FAQ{}, id).Error
}
