package repository

import (
	"errors"

	"github.com/casinodex-next/internal/constants"
	"github.com/casinodex-next/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository is the reader review store.
type ReviewRepository interface {
	GetByID(id uint) (*models.Review, error)
	List(filter ReviewListFilter) ([]models.Review, int64, error)
	Create(review *models.Review) error
	Update(review *models.Review) error
	Delete(id uint) error
}

// GormReviewRepository is the GORM implementation.
type GormReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a review repository.
func NewReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// GetByID returns one review by primary key.
func (r *GormReviewRepository) GetByID(id uint) (*models.Review, error) {
	if id == 0 {
		return nil, nil
	}
	var review models.Review
	if err := r.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// List queries reviews with filtering and pagination.
func (r *GormReviewRepository) List(filter ReviewListFilter) ([]models.Review, int64, error) {
	query := r.db.Model(&models.Review{})
	if filter.CasinoID != 0 {
		query = query.Where("casino_id = ?", filter.CasinoID)
	}
	if filter.OnlyPublished {
		query = query.Where("status = ?", constants.ReviewStatusPublished)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.Review
	if err := query.Order("id desc").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// Create inserts one review.
func (r *GormReviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

// Update saves one review.
func (r *GormReviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

// Delete soft-deletes one review.
func (r *GormReviewRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.Review{}, id).Error
}
