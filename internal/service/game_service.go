package service

import (
	"strings"

	"github.com/casinodex-next/internal/models"
	"github.com/casinodex-next/internal/repository"
)

// GameService manages the game catalog and its categories.
type GameService struct {
	gameRepo     repository.GameRepository
	categoryRepo repository.CategoryRepository
}

// NewGameService creates a game service.
func NewGameService(gameRepo repository.GameRepository, categoryRepo repository.CategoryRepository) *GameService {
	return &GameService{
		gameRepo:     gameRepo,
		categoryRepo: categoryRepo,
	}
}

// ListGames queries the game catalog.
func (s *GameService) ListGames(filter repository.GameListFilter) ([]models.Game, int64, error) {
	return s.gameRepo.List(filter)
}

// GetGameBySlug returns one game or ErrNotFound.
func (s *GameService) GetGameBySlug(slug string) (*models.Game, error) {
	normalized := strings.TrimSpace(slug)
	if normalized == "" {
		return nil, ErrSlugRequired
	}
	game, err := s.gameRepo.GetBySlug(normalized)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, ErrNotFound
	}
	return game, nil
}

// ListCategories returns all categories.
func (s *GameService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.List()
}

// CreateGame inserts a game after slug validation.
func (s *GameService) CreateGame(game *models.Game) error {
	game.Slug = strings.TrimSpace(game.Slug)
	if game.Slug == "" {
		return ErrSlugRequired
	}
	existing, err := s.gameRepo.GetBySlug(game.Slug)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrSlugTaken
	}
	return s.gameRepo.Create(game)
}

// UpdateGame saves a game.
func (s *GameService) UpdateGame(game *models.Game) error {
	if game.ID == 0 {
		return ErrNotFound
	}
	return s.gameRepo.Update(game)
}

// DeleteGame removes a game.
func (s *GameService) DeleteGame(id uint) error {
	return s.gameRepo.Delete(id)
}
