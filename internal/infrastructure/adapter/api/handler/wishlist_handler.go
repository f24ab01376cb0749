package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	cartUseCase "github.com/projXchange/Backend-v1-sub000/internal/domain/usecase/cart"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/api/dto"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/api/middleware"
)

// WishlistHandler handles wishlist HTTP requests
type WishlistHandler struct {
	cartService *cartUseCase.Service
	logger      coreport.Logger
}

// NewWishlistHandler creates a new wishlist handler instance
func NewWishlistHandler(cartService *cartUseCase.Service, logger coreport.Logger) *WishlistHandler {
	return &WishlistHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// Get handles the GET /wishlist endpoint
func (h *WishlistHandler) Get(c *gin.Context) {
	items, err := h.cartService.GetWishlist(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.WishlistItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, dto.NewWishlistItemResponse(item))
	}
	c.JSON(http.StatusOK, dto.WishlistResponse{Items: responses})
}

// Add handles the POST /wishlist endpoint
func (h *WishlistHandler) Add(c *gin.Context) {
	var req dto.AddToWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	item, err := h.cartService.AddToWishlist(c.Request.Context(), middleware.UserID(c), req.ProjectID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewWishlistItemResponse(item))
}

// Remove handles the DELETE /wishlist/:projectId endpoint
func (h *WishlistHandler) Remove(c *gin.Context) {
	err := h.cartService.RemoveFromWishlist(c.Request.Context(), middleware.UserID(c), c.Param("projectId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
