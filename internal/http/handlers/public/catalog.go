package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/casinodex-next/internal/http/response"
	"github.com/casinodex-next/internal/repository"
	"github.com/casinodex-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetCasinos lists active casinos with optional filtering.
func (h *Handler) GetCasinos(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	minRating, _ := strconv.ParseFloat(c.Query("min_rating"), 64)

	casinos, total, err := h.CasinoService.ListCasinos(repository.CasinoListFilter{
		Page:       page,
		PageSize:   pageSize,
		Search:     strings.TrimSpace(c.Query("search")),
		MinRating:  minRating,
		OnlyActive: true,
		WithBonus:  c.Query("with_bonus") == "1",
	})
	if err != nil {
		respondError(c, response.CodeInternal, "casino fetch failed", err)
		return
	}
	response.SuccessWithPage(c, casinos, response.BuildPagination(page, pageSize, total))
}

// GetCasinoBySlug returns one casino profile.
func (h *Handler) GetCasinoBySlug(c *gin.Context) {
	casino, err := h.CasinoService.GetCasinoBySlug(c.Param("slug"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlugRequired):
			respondError(c, response.CodeBadRequest, "slug is required", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "casino not found", nil)
		default:
			respondError(c, response.CodeInternal, "casino fetch failed", err)
		}
		return
	}
	response.Success(c, casino)
}

// GetCasinoBonuses lists bonuses for one casino.
func (h *Handler) GetCasinoBonuses(c *gin.Context) {
	casino, err := h.CasinoService.GetCasinoBySlug(c.Param("slug"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlugRequired):
			respondError(c, response.CodeBadRequest, "slug is required", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "casino not found", nil)
		default:
			respondError(c, response.CodeInternal, "casino fetch failed", err)
		}
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	bonuses, total, err := h.CasinoService.ListBonuses(repository.BonusListFilter{
		Page:      page,
		PageSize:  pageSize,
		CasinoID:  casino.ID,
		Type:      strings.TrimSpace(c.Query("type")),
		OnlyValid: true,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "bonus fetch failed", err)
		return
	}
	response.SuccessWithPage(c, bonuses, response.BuildPagination(page, pageSize, total))
}

// GetBonuses lists bonuses across casinos.
func (h *Handler) GetBonuses(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	bonuses, total, err := h.CasinoService.ListBonuses(repository.BonusListFilter{
		Page:          page,
		PageSize:      pageSize,
		Type:          strings.TrimSpace(c.Query("type")),
		OnlyExclusive: c.Query("exclusive") == "1",
		OnlyValid:     true,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "bonus fetch failed", err)
		return
	}
	response.SuccessWithPage(c, bonuses, response.BuildPagination(page, pageSize, total))
}

// GetGames lists games with optional filtering.
func (h *Handler) GetGames(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)

	games, total, err := h.GameService.ListGames(repository.GameListFilter{
		Page:       page,
		PageSize:   pageSize,
		Search:     strings.TrimSpace(c.Query("search")),
		Provider:   strings.TrimSpace(c.Query("provider")),
		Type:       strings.TrimSpace(c.Query("type")),
		CategoryID: uint(categoryID),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "game fetch failed", err)
		return
	}
	response.SuccessWithPage(c, games, response.BuildPagination(page, pageSize, total))
}

// GetGameBySlug returns one game.
func (h *Handler) GetGameBySlug(c *gin.Context) {
	game, err := h.GameService.GetGameBySlug(c.Param("slug"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSlugRequired):
			respondError(c, response.CodeBadRequest, "slug is required", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "game not found", nil)
		default:
			respondError(c, response.CodeInternal, "game fetch failed", err)
		}
		return
	}
	response.Success(c, game)
}

// GetCategories lists game categories.
func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.GameService.ListCategories()
	if err != nil {
		respondError(c, response.CodeInternal, "category fetch failed", err)
		return
	}
	response.Success(c, categories)
}
