package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	reviewUseCase "github.com/projXchange/Backend-v1-sub000/internal/domain/usecase/review"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/api/dto"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/api/middleware"
)

// ReviewHandler handles review HTTP requests
type ReviewHandler struct {
	reviewService *reviewUseCase.Service
	logger        coreport.Logger
}

// NewReviewHandler creates a new review handler instance
func NewReviewHandler(reviewService *reviewUseCase.Service, logger coreport.Logger) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		logger:        logger,
	}
}

// Create handles the POST /reviews endpoint
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	review, err := h.reviewService.CreateReview(
		c.Request.Context(), middleware.UserID(c), req.ProjectID, req.Rating, req.Comment)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewReviewResponse(review))
}

// Update handles the PUT /reviews/:id endpoint
func (h *ReviewHandler) Update(c *gin.Context) {
	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	review, err := h.reviewService.UpdateReview(
		c.Request.Context(), middleware.UserID(c), c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewReviewResponse(review))
}

// Moderate handles the PATCH /admin/reviews/:id endpoint
func (h *ReviewHandler) Moderate(c *gin.Context) {
	var req dto.ModerateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Approved == nil {
		respondBadRequest(c, "Invalid request format: approved flag required")
		return
	}

	review, err := h.reviewService.ModerateReview(
		c.Request.Context(), middleware.Role(c), c.Param("id"), *req.Approved)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewReviewResponse(review))
}

// ListByProject handles the GET /projects/:id/reviews endpoint
func (h *ReviewHandler) ListByProject(c *gin.Context) {
	reviews, err := h.reviewService.ListProjectReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, dto.NewReviewResponse(review))
	}
	c.JSON(http.StatusOK, dto.ReviewListResponse{Reviews: responses})
}

// Stats handles the GET /projects/:id/reviews/stats endpoint
func (h *ReviewHandler) Stats(c *gin.Context) {
	stats, err := h.reviewService.GetProjectRatingStats(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
