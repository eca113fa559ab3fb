package repository

import (
	"errors"
	"strings"

	"github.com/casinodex-next/internal/models"

	"gorm.io/gorm"
)

// GameRepository is the game catalog store.
type GameRepository interface {
	GetBySlug(slug string) (*models.Game, error)
	List(filter GameListFilter) ([]models.Game, int64, error)
	ListSlugs() ([]string, error)
	Create(game *models.Game) error
	Update(game *models.Game) error
	Delete(id uint) error
}

// GormGameRepository is the GORM implementation.
type GormGameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a game repository.
func NewGameRepository(db *gorm.DB) *GormGameRepository {
	return &GormGameRepository{db: db}
}

// GetBySlug returns one game by slug.
func (r *GormGameRepository) GetBySlug(slug string) (*models.Game, error) {
	normalized := strings.TrimSpace(slug)
	if normalized == "" {
		return nil, nil
	}
	var game models.Game
	if err := r.db.Preload("Category").Where("slug = ?", normalized).First(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

// List queries games with filtering and pagination.
func (r *GormGameRepository) List(filter GameListFilter) ([]models.Game, int64, error) {
	query := r.db.Model(&models.Game{}).Preload("Category")
	if provider := strings.TrimSpace(filter.Provider); provider != "" {
		query = query.Where("provider = ?", provider)
	}
	if gameType := strings.TrimSpace(filter.Type); gameType != "" {
		query = query.Where("type = ?", gameType)
	}
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := "%" + search + "%"
		op := likeOperator(r.db)
		query = query.Where("(title "+op+" ? OR provider "+op+" ?)", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	query = applyPagination(query, filter.Page, filter.PageSize)

	var rows []models.Game
	if err := query.Order("sort_order asc, id desc").Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// ListSlugs returns all game slugs, for sitemap generation.
func (r *GormGameRepository) ListSlugs() ([]string, error) {
	slugs := make([]string, 0)
	err := r.db.Model(&models.Game{}).
		Order("sort_order asc, id asc").
		Pluck("slug", &slugs).Error
	if err != nil {
		return nil, err
	}
	return slugs, nil
}

// Create inserts one game.
func (r *GormGameRepository) Create(game *models.Game) error {
	return r.db.Create(game).Error
}

// Update saves one game.
func (r *GormGameRepository) Update(game *models.Game) error {
	return r.db.Save(game).Error
}

// Delete soft-deletes one game.
func (r *GormGameRepository) Delete(id uint) error {
	if id == 0 {
		return nil
	}
	return r.db.Delete(&models.Game{}, id).Error
}
