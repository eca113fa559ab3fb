package service

import (
	"strings"

	"github.com/casinodex-next/internal/models"
	"github.com/casinodex-next/internal/repository"
)

// CasinoService manages the casino and bonus catalog.
type CasinoService struct {
	casinoRepo repository.CasinoRepository
	bonusRepo  repository.BonusRepository
}

// NewCasinoService creates a casino service.
func NewCasinoService(casinoRepo repository.CasinoRepository, bonusRepo repository.BonusRepository) *CasinoService {
	return &CasinoService{
		casinoRepo: casinoRepo,
		bonusRepo:  bonusRepo,
	}
}

// ListCasinos queries the casino catalog.
func (s *CasinoService) ListCasinos(filter repository.CasinoListFilter) ([]models.Casino, int64, error) {
	return s.casinoRepo.List(filter)
}

// GetCasinoBySlug returns one casino or ErrNotFound.
func (s *CasinoService) GetCasinoBySlug(slug string) (*models.Casino, error) {
	normalized := strings.TrimSpace(slug)
	if normalized == "" {
		return nil, ErrSlugRequired
	}
	casino, err := s.casinoRepo.GetBySlug(normalized)
	if err != nil {
		return nil, err
	}
	if casino == nil {
		return nil, ErrNotFound
	}
	return casino, nil
}

// GetCasinoByCampaignID resolves a tracker campaign to its casino.
func (s *CasinoService) GetCasinoByCampaignID(campaignID string) (*models.Casino, error) {
	normalized := strings.TrimSpace(campaignID)
	if normalized == "" {
		return nil, ErrCampaignRequired
	}
	casino, err := s.casinoRepo.GetByCampaignID(normalized)
	if err != nil {
		return nil, err
	}
	if casino == nil {
		return nil, ErrNotFound
	}
	return casino, nil
}

// CreateCasino inserts a catalog entry after slug validation.
func (s *CasinoService) CreateCasino(casino *models.Casino) error {
	casino.Slug = strings.TrimSpace(casino.Slug)
	if casino.Slug == "" {
		return ErrSlugRequired
	}
	existing, err := s.casinoRepo.GetBySlug(casino.Slug)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrSlugTaken
	}
	return s.casinoRepo.Create(casino)
}

// UpdateCasino saves a catalog entry.
func (s *CasinoService) UpdateCasino(casino *models.Casino) error {
	if casino.ID == 0 {
		return ErrNotFound
	}
	return s.casinoRepo.Update(casino)
}

// DeleteCasino removes a catalog entry.
func (s *CasinoService) DeleteCasino(id uint) error {
	casino, err := s.casinoRepo.GetByID(id)
	if err != nil {
		return err
	}
	if casino == nil {
		return ErrNotFound
	}
	return s.casinoRepo.Delete(id)
}

// ListBonuses queries the bonus catalog.
func (s *CasinoService) ListBonuses(filter repository.BonusListFilter) ([]models.Bonus, int64, error) {
	return s.bonusRepo.List(filter)
}

// CreateBonus inserts a bonus after verifying its casino exists.
func (s *CasinoService) CreateBonus(bonus *models.Bonus) error {
	if bonus.CasinoID == 0 {
		return ErrCasinoRequired
	}
	casino, err := s.casinoRepo.GetByID(bonus.CasinoID)
	if err != nil {
		return err
	}
	if casino == nil {
		return ErrNotFound
	}
	return s.bonusRepo.Create(bonus)
}

// UpdateBonus saves a bonus.
func (s *CasinoService) UpdateBonus(bonus *models.Bonus) error {
	if bonus.ID == 0 {
		return ErrNotFound
	}
	return s.bonusRepo.Update(bonus)
}

// DeleteBonus removes a bonus.
func (s *CasinoService) DeleteBonus(id uint) error {
	bonus, err := s.bonusRepo.GetByID(id)
	if err != nil {
		return err
	}
	if bonus == nil {
		return ErrNotFound
	}
	return s.bonusRepo.Delete(id)
}
