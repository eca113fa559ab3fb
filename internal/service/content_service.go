package service

import (
	"github.com/casinodex-next/internal/models"
	"github.com/casinodex-next/internal/repository"
)

// ContentService serves reader reviews and FAQ entries.
type ContentService struct {
	reviewRepo repository.ReviewRepository
	faqRepo    repository.FAQRepository
	casinoRepo repository.CasinoRepository
}

// NewContentService creates a content service.
func NewContentService(reviewRepo repository.ReviewRepository, faqRepo repository.FAQRepository, casinoRepo repository.CasinoRepository) *ContentService {
	return &ContentService{
		reviewRepo: reviewRepo,
		faqRepo:    faqRepo,
		casinoRepo: casinoRepo,
	}
}

// ListReviewsForCasino returns published reviews for one casino slug.
func (s *ContentService) ListReviewsForCasino(slug string, page, pageSize int) ([]models.Review, int64, error) {
	casino, err := s.casinoRepo.GetBySlug(slug)
	if err != nil {
		return nil, 0, err
	}
	if casino == nil {
		return nil, 0, ErrNotFound
	}
	return s.reviewRepo.List(repository.ReviewListFilter{
		Page:          page,
		PageSize:      pageSize,
		CasinoID:      casino.ID,
		OnlyPublished: true,
	})
}

// ListFAQs queries FAQ entries.
func (s *ContentService) ListFAQs(filter repository.FAQListFilter) ([]models.FAQ, int64, error) {
	return s.faqRepo.List(filter)
}
