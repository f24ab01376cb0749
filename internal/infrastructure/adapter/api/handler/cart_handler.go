package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	cartUseCase "github.com/projXchange/Backend-v1-sub000/internal/domain/usecase/cart"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/api/dto"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/api/middleware"
)

// CartHandler handles cart HTTP requests
type CartHandler struct {
	cartService *cartUseCase.Service
	logger      coreport.Logger
}

// NewCartHandler creates a new cart handler instance
func NewCartHandler(cartService *cartUseCase.Service, logger coreport.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		logger:      logger,
	}
}

// Get handles the GET /cart endpoint, returning items plus per-currency totals
func (h *CartHandler) Get(c *gin.Context) {
	userID := middleware.UserID(c)

	items, err := h.cartService.GetCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	totals, err := h.cartService.GetCartTotal(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	responses := make([]dto.CartItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, dto.NewCartItemResponse(item))
	}
	c.JSON(http.StatusOK, dto.CartResponse{Items: responses, Totals: totals})
}

// Add handles the POST /cart endpoint
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	item, err := h.cartService.AddToCart(c.Request.Context(), middleware.UserID(c), req.ProjectID, req.Quantity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCartItemResponse(item))
}

// Update handles the PUT /cart/:projectId endpoint
func (h *CartHandler) Update(c *gin.Context) {
	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	item, err := h.cartService.UpdateCartItem(
		c.Request.Context(), middleware.UserID(c), c.Param("projectId"), req.Quantity)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCartItemResponse(item))
}

// Remove handles the DELETE /cart/:projectId endpoint
func (h *CartHandler) Remove(c *gin.Context) {
	err := h.cartService.RemoveFromCart(c.Request.Context(), middleware.UserID(c), c.Param("projectId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Clear handles the DELETE /cart endpoint
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cartService.ClearCart(c.Request.Context(), middleware.UserID(c)); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
