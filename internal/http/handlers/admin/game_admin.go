package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/casinodex-next/internal/http/response"
	"github.com/casinodex-next/internal/models"
	"github.com/casinodex-next/internal/repository"
	"github.com/casinodex-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminGames lists games.
func (h *Handler) GetAdminGames(c *gin.Context) {
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

// GameRequest is the create/update game payload.
type GameRequest struct {
	Slug        string  `json:"slug" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Provider    string  `json:"provider"`
	Type        string  `json:"type"`
	RTP         float64 `json:"rtp"`
	Volatility  string  `json:"volatility"`
	ThumbURL    string  `json:"thumb_url"`
	Description string  `json:"description"`
	CategoryID  *uint   `json:"category_id"`
	SortOrder   int     `json:"sort_order"`
}

func (req GameRequest) toModel() *models.Game {
	return &models.Game{
		Slug:        strings.TrimSpace(req.Slug),
		Title:       strings.TrimSpace(req.Title),
		Provider:    strings.TrimSpace(req.Provider),
		Type:        strings.TrimSpace(req.Type),
		RTP:         req.RTP,
		Volatility:  req.Volatility,
		ThumbURL:    req.ThumbURL,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		SortOrder:   req.SortOrder,
	}
}

// CreateGame creates a game entry.
func (h *Handler) CreateGame(c *gin.Context) {
	var req GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	game := req.toModel()
	if err := h.GameService.CreateGame(game); err != nil {
		switch {
		case errors.Is(err, service.ErrSlugRequired):
			respondError(c, response.CodeBadRequest, "slug is required", nil)
		case errors.Is(err, service.ErrSlugTaken):
			respondError(c, response.CodeBadRequest, "slug already in use", nil)
		default:
			respondError(c, response.CodeInternal, "game create failed", err)
		}
		return
	}
	response.Success(c, game)
}

// UpdateGame updates a game entry.
func (h *Handler) UpdateGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid game id", nil)
		return
	}

	var req GameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	game := req.toModel()
	game.ID = uint(id)
	if err := h.GameService.UpdateGame(game); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "game not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "game update failed", err)
		return
	}
	response.Success(c, game)
}

// DeleteGame removes a game entry.
func (h *Handler) DeleteGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid game id", nil)
		return
	}

	if err := h.GameService.DeleteGame(uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "game not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "game delete failed", err)
		return
	}
	response.Success(c, nil)
}

// GetAdminCategories lists categories.
func (h *Handler) GetAdminCategories(c *gin.Context) {
	categories, err := h.GameService.ListCategories()
	if err != nil {
		respondError(c, response.CodeInternal, "category fetch failed", err)
		return
	}
	response.Success(c, categories)
}

// CategoryRequest is the create/update category payload.
type CategoryRequest struct {
	Slug      string `json:"slug" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
}

// CreateCategory creates a category.
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	slug := strings.TrimSpace(req.Slug)
	existing, err := h.CategoryRepo.GetBySlug(slug)
	if err != nil {
		respondError(c, response.CodeInternal, "category create failed", err)
		return
	}
	if existing != nil {
		respondError(c, response.CodeBadRequest, "slug already in use", nil)
		return
	}

	category := &models.Category{
		Slug:      slug,
		Name:      strings.TrimSpace(req.Name),
		Icon:      req.Icon,
		SortOrder: req.SortOrder,
	}
	if err := h.CategoryRepo.Create(category); err != nil {
		respondError(c, response.CodeInternal, "category create failed", err)
		return
	}
	response.Success(c, category)
}

// UpdateCategory updates a category.
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid category id", nil)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	existing, err := h.CategoryRepo.GetByID(uint(id))
	if err != nil {
		respondError(c, response.CodeInternal, "category update failed", err)
		return
	}
	if existing == nil {
		respondError(c, response.CodeNotFound, "category not found", nil)
		return
	}

	existing.Slug = strings.TrimSpace(req.Slug)
	existing.Name = strings.TrimSpace(req.Name)
	existing.Icon = req.Icon
	existing.SortOrder = req.SortOrder
	if err := h.CategoryRepo.Update(existing); err != nil {
		respondError(c, response.CodeInternal, "category update failed", err)
		return
	}
	response.Success(c, existing)
}

// DeleteCategory removes a category.
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid category id", nil)
		return
	}

	existing, err := h.CategoryRepo.GetByID(uint(id))
	if err != nil {
		respondError(c, response.CodeInternal, "category delete failed", err)
		return
	}
	if existing == nil {
		respondError(c, response.CodeNotFound, "category not found", nil)
		return
	}

	if err := h.CategoryRepo.Delete(uint(id)); err != nil {
		respondError(c, response.CodeInternal, "category delete failed", err)
		return
	}
	response.Success(c, nil)
}
