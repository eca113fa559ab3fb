package admin

import (
	"strconv"
	"strings"

	"github.com/casinodex-next/internal/constants"
	"github.com/casinodex-next/internal/http/response"
	"github.com/casinodex-next/internal/models"
	"github.com/casinodex-next/internal/repository"

	"github.com/gin-gonic/gin"
)

// GetAdminReviews lists reviews in any status.
func (h *Handler) GetAdminReviews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	casinoID, _ := strconv.ParseUint(c.Query("casino_id"), 10, 64)

	reviews, total, err := h.ReviewRepo.List(repository.ReviewListFilter{
		Page:     page,
		PageSize: pageSize,
		CasinoID: uint(casinoID),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "review fetch failed", err)
		return
	}
	response.SuccessWithPage(c, reviews, response.BuildPagination(page, pageSize, total))
}

// ReviewRequest is the create/update review payload.
type ReviewRequest struct {
	CasinoID uint   `json:"casino_id" binding:"required"`
	Author   string `json:"author" binding:"required"`
	Rating   int    `json:"rating" binding:"required"`
	Title    string `json:"title"`
	Body     string `json:"body"`
	Status   string `json:"status"`
}

// CreateReview creates a review.
func (h *Handler) CreateReview(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		respondError(c, response.CodeBadRequest, "rating must be between 1 and 5", nil)
		return
	}

	casino, err := h.CasinoRepo.GetByID(req.CasinoID)
	if err != nil {
		respondError(c, response.CodeInternal, "review create failed", err)
		return
	}
	if casino == nil {
		respondError(c, response.CodeNotFound, "casino not found", nil)
		return
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = constants.ReviewStatusDraft
	}
	review := &models.Review{
		CasinoID: req.CasinoID,
		Author:   strings.TrimSpace(req.Author),
		Rating:   req.Rating,
		Title:    strings.TrimSpace(req.Title),
		Body:     req.Body,
		Status:   status,
	}
	if err := h.ReviewRepo.Create(review); err != nil {
		respondError(c, response.CodeInternal, "review create failed", err)
		return
	}
	response.Success(c, review)
}

// UpdateReviewStatus publishes or unpublishes a review.
func (h *Handler) UpdateReviewStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid review id", nil)
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	status := strings.TrimSpace(req.Status)
	if status != constants.ReviewStatusDraft && status != constants.ReviewStatusPublished {
		respondError(c, response.CodeBadRequest, "invalid status", nil)
		return
	}

	review, err := h.ReviewRepo.GetByID(uint(id))
	if err != nil {
		respondError(c, response.CodeInternal, "review update failed", err)
		return
	}
	if review == nil {
		respondError(c, response.CodeNotFound, "review not found", nil)
		return
	}

	review.Status = status
	if err := h.ReviewRepo.Update(review); err != nil {
		respondError(c, response.CodeInternal, "review update failed", err)
		return
	}
	response.Success(c, review)
}

// DeleteReview removes a review.
func (h *Handler) DeleteReview(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid review id", nil)
		return
	}

	review, err := h.ReviewRepo.GetByID(uint(id))
	if err != nil {
		respondError(c, response.CodeInternal, "review delete failed", err)
		return
	}
	if review == nil {
		respondError(c, response.CodeNotFound, "review not found", nil)
		return
	}

	if err := h.ReviewRepo.Delete(uint(id)); err != nil {
		respondError(c, response.CodeInternal, "review delete failed", err)
		return
	}
	response.Success(c, nil)
}

// FAQRequest is the create/update FAQ payload.
type FAQRequest struct {
	Question  string `json:"question" binding:"required"`
	Answer    string `json:"answer" binding:"required"`
	Topic     string `json:"topic"`
	SortOrder int    `json:"sort_order"`
}

// GetAdminFAQs lists FAQ entries.
func (h *Handler) GetAdminFAQs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))
	page, pageSize = normalizePagination(page, pageSize)

	faqs, total, err := h.FAQRepo.List(repository.FAQListFilter{
		Page:     page,
		PageSize: pageSize,
		Topic:    strings.TrimSpace(c.Query("topic")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "faq fetch failed", err)
		return
	}
	response.SuccessWithPage(c, faqs, response.BuildPagination(page, pageSize, total))
}

// CreateFAQ creates an FAQ entry.
func (h *Handler) CreateFAQ(c *gin.Context) {
	var req FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	faq := &models.FAQ{
		Question:  strings.TrimSpace(req.Question),
		Answer:    req.Answer,
		Topic:     strings.TrimSpace(req.Topic),
		SortOrder: req.SortOrder,
	}
	if err := h.FAQRepo.Create(faq); err != nil {
		respondError(c, response.CodeInternal, "faq create failed", err)
		return
	}
	response.Success(c, faq)
}

// UpdateFAQ updates an FAQ entry.
func (h *Handler) UpdateFAQ(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid faq id", nil)
		return
	}

	var req FAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}

	faq, err := h.FAQRepo.GetByID(uint(id))
	if err != nil {
		respondError(c, response.CodeInternal, "faq update failed", err)
		return
	}
	if faq == nil {
		respondError(c, response.CodeNotFound, "faq not found", nil)
		return
	}

	faq.Question = strings.TrimSpace(req.Question)
	faq.Answer = req.Answer
	faq.Topic = strings.TrimSpace(req.Topic)
	faq.SortOrder = req.SortOrder
	if err := h.FAQRepo.Update(faq); err != nil {
		respondError(c, response.CodeInternal, "faq update failed", err)
		return
	}
	response.Success(c, faq)
}

// DeleteFAQ removes an FAQ entry.
func (h *Handler) DeleteFAQ(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid faq id", nil)
		return
	}

	faq, err := h.FAQRepo.GetByID(uint(id))
	if err != nil {
		respondError(c, response.CodeInternal, "faq delete failed", err)
		return
	}
	if faq == nil {
		respondError(c, response.CodeNotFound, "faq not found", nil)
		return
	}

	if err := h.FAQRepo.Delete(uint(id)); err != nil {
		respondError(c, response.CodeInternal, "faq delete failed", err)
		return
	}
	response.Success(c, nil)
}
