package admin

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/casinodex-next/internal/http/response"
	"github.com/casinodex-next/internal/models"
	"github.com/casinodex-next/internal/repository"
	"github.com/casinodex-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// GetAdminCasinos lists casinos including inactive ones.
func (h *Handler) GetAdminCasinos(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	casinos, total, err := h.CasinoService.ListCasinos(repository.CasinoListFilter{
		Page:     page,
		PageSize: pageSize,
		Search:   strings.TrimSpace(c.Query("search")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "casino fetch failed", err)
		return
	}
	response.SuccessWithPage(c, casinos, response.BuildPagination(page, pageSize, total))
}

// CasinoRequest is the create/update casino payload.
type CasinoRequest struct {
	Slug           string   `json:"slug" binding:"required"`
	Name           string   `json:"name" binding:"required"`
	LogoURL        string   `json:"logo_url"`
	Description    string   `json:"description"`
	Rating         float64  `json:"rating"`
	CampaignID     string   `json:"campaign_id"`
	Licenses       []string `json:"licenses"`
	PaymentMethods []string `json:"payment_methods"`
	Pros           []string `json:"pros"`
	Cons           []string `json:"cons"`
	MinDeposit     string   `json:"min_deposit"`
	WithdrawalTime string   `json:"withdrawal_time"`
	Established    int      `json:"established"`
	Status         string   `json:"status"`
	SortOrder      int      `json:"sort_order"`
}

func (req CasinoRequest) toModel() (*models.Casino, error) {
	casino := &models.Casino{
		Slug:           strings.TrimSpace(req.Slug),
		Name:           strings.TrimSpace(req.Name),
		LogoURL:        req.LogoURL,
		Description:    req.Description,
		Rating:         req.Rating,
		CampaignID:     strings.TrimSpace(req.CampaignID),
		Licenses:       req.Licenses,
		PaymentMethods: req.PaymentMethods,
		Pros:           req.Pros,
		Cons:           req.Cons,
		WithdrawalTime: req.WithdrawalTime,
		Established:    req.Established,
		Status:         req.Status,
		SortOrder:      req.SortOrder,
	}
	if deposit := strings.TrimSpace(req.MinDeposit); deposit != "" {
		amount, err := decimal.NewFromString(deposit)
		if err != nil {
			return nil, err
		}
		money := models.NewMoneyFromDecimal(amount)
		casino.MinDeposit = &money
	}
	return casino, nil
}

// CreateCasino creates a casino entry.
func (h *Handler) CreateCasino(c *gin.Context) {
	var req CasinoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	casino, err := req.toModel()
	if err != nil {
		respondError(c, response.CodeBadRequest, "min_deposit is not a valid amount", nil)
		return
	}

	if err := h.CasinoService.CreateCasino(casino); err != nil {
		switch {
		case errors.Is(err, service.ErrSlugRequired):
			respondError(c, response.CodeBadRequest, "slug is required", nil)
		case errors.Is(err, service.ErrSlugTaken):
			respondError(c, response.CodeBadRequest, "slug already in use", nil)
		default:
			respondError(c, response.CodeInternal, "casino create failed", err)
		}
		return
	}
	response.Success(c, casino)
}

// UpdateCasino updates a casino entry.
func (h *Handler) UpdateCasino(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid casino id", nil)
		return
	}

	var req CasinoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	casino, err := req.toModel()
	if err != nil {
		respondError(c, response.CodeBadRequest, "min_deposit is not a valid amount", nil)
		return
	}
	casino.ID = uint(id)

	if err := h.CasinoService.UpdateCasino(casino); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "casino not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "casino update failed", err)
		return
	}
	response.Success(c, casino)
}

// DeleteCasino soft-deletes a casino entry.
func (h *Handler) DeleteCasino(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid casino id", nil)
		return
	}

	if err := h.CasinoService.DeleteCasino(uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "casino not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "casino delete failed", err)
		return
	}
	response.Success(c, nil)
}

// BonusRequest is the create/update bonus payload.
type BonusRequest struct {
	CasinoID    uint       `json:"casino_id" binding:"required"`
	Type        string     `json:"type" binding:"required"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Amount      string     `json:"amount"`
	Percentage  int        `json:"percentage"`
	FreeSpins   int        `json:"free_spins"`
	Wagering    int        `json:"wagering"`
	Code        string     `json:"code"`
	ValidUntil  *time.Time `json:"valid_until"`
	Exclusive   bool       `json:"exclusive"`
	SortOrder   int        `json:"sort_order"`
}

func (req BonusRequest) toModel() (*models.Bonus, error) {
	bonus := &models.Bonus{
		CasinoID:    req.CasinoID,
		Type:        strings.TrimSpace(req.Type),
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Percentage:  req.Percentage,
		FreeSpins:   req.FreeSpins,
		Wagering:    req.Wagering,
		Code:        strings.TrimSpace(req.Code),
		ValidUntil:  req.ValidUntil,
		Exclusive:   req.Exclusive,
		SortOrder:   req.SortOrder,
	}
	if raw := strings.TrimSpace(req.Amount); raw != "" {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, err
		}
		money := models.NewMoneyFromDecimal(amount)
		bonus.Amount = &money
	}
	return bonus, nil
}

// GetAdminBonuses lists bonuses.
func (h *Handler) GetAdminBonuses(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	casinoID, _ := strconv.ParseUint(c.Query("casino_id"), 10, 64)

	bonuses, total, err := h.CasinoService.ListBonuses(repository.BonusListFilter{
		Page:     page,
		PageSize: pageSize,
		CasinoID: uint(casinoID),
		Type:     strings.TrimSpace(c.Query("type")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "bonus fetch failed", err)
		return
	}
	response.SuccessWithPage(c, bonuses, response.BuildPagination(page, pageSize, total))
}

// CreateBonus creates a bonus.
func (h *Handler) CreateBonus(c *gin.Context) {
	var req BonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	bonus, err := req.toModel()
	if err != nil {
		respondError(c, response.CodeBadRequest, "amount is not a valid amount", nil)
		return
	}

	if err := h.CasinoService.CreateBonus(bonus); err != nil {
		switch {
		case errors.Is(err, service.ErrCasinoRequired):
			respondError(c, response.CodeBadRequest, "casino_id is required", nil)
		case errors.Is(err, service.ErrNotFound):
			respondError(c, response.CodeNotFound, "casino not found", nil)
		default:
			respondError(c, response.CodeInternal, "bonus create failed", err)
		}
		return
	}
	response.Success(c, bonus)
}

// UpdateBonus updates a bonus.
func (h *Handler) UpdateBonus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid bonus id", nil)
		return
	}

	var req BonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	bonus, err := req.toModel()
	if err != nil {
		respondError(c, response.CodeBadRequest, "amount is not a valid amount", nil)
		return
	}
	bonus.ID = uint(id)

	if err := h.CasinoService.UpdateBonus(bonus); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "bonus not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "bonus update failed", err)
		return
	}
	response.Success(c, bonus)
}

// DeleteBonus removes a bonus.
func (h *Handler) DeleteBonus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid bonus id", nil)
		return
	}

	if err := h.CasinoService.DeleteBonus(uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "bonus not found", nil)
			return
		}
		respondError(c, response.CodeInternal, "bonus delete failed", err)
		return
	}
	response.Success(c, nil)
}
