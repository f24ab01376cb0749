package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	purchaseUseCase "github.com/projXchange/Backend-v1-sub000/internal/domain/usecase/purchase"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/api/dto"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/api/middleware"
)

// TransactionHandler handles purchase transaction HTTP requests
type TransactionHandler struct {
	purchaseService *purchaseUseCase.Service
	logger          coreport.Logger
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(purchaseService *purchaseUseCase.Service, logger coreport.Logger) *TransactionHandler {
	return &TransactionHandler{
		purchaseService: purchaseService,
		logger:          logger,
	}
}

// Create handles the POST /transactions endpoint. It records the gateway's
// report of a purchase as a pending transaction for the authenticated buyer.
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	tx, err := h.purchaseService.CreateTransaction(c.Request.Context(), purchaseUseCase.CreateTransactionRequest{
		ExternalID: req.TransactionID,
		UserID:     middleware.UserID(c),
		ProjectID:  req.ProjectID,
		Amount:     req.Amount,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(tx))
}

// Purchase handles the POST /projects/:id/purchase endpoint. It runs the
// purchase-intent gate and records a pending transaction at the project's
// current sale price.
func (h *TransactionHandler) Purchase(c *gin.Context) {
	var req struct {
		TransactionID string `json:"transaction_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request format: "+err.Error())
		return
	}

	tx, err := h.purchaseService.PurchaseProject(
		c.Request.Context(), middleware.UserID(c), c.Param("id"), req.TransactionID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(tx))
}

// Get handles the GET /transactions/:id endpoint
func (h *TransactionHandler) Get(c *gin.Context) {
	tx, err := h.purchaseService.GetTransaction(
		c.Request.Context(), middleware.UserID(c), middleware.Role(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}

// ListMine handles the GET /transactions endpoint, returning the caller's
// purchase history
func (h *TransactionHandler) ListMine(c *gin.Context) {
	transactions, err := h.purchaseService.ListUserTransactions(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	items := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		items = append(items, dto.NewTransactionResponse(tx))
	}
	c.JSON(http.StatusOK, dto.TransactionListResponse{Transactions: items})
}

// Complete handles the POST /admin/transactions/:id/complete endpoint
func (h *TransactionHandler) Complete(c *gin.Context) {
	tx, err := h.purchaseService.CompleteTransaction(c.Request.Context(), middleware.Role(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	middleware.CountPurchaseCompleted()
	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}

// Fail handles the POST /admin/transactions/:id/fail endpoint
func (h *TransactionHandler) Fail(c *gin.Context) {
	tx, err := h.purchaseService.FailTransaction(c.Request.Context(), middleware.Role(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}

// Cancel handles the POST /admin/transactions/:id/cancel endpoint
func (h *TransactionHandler) Cancel(c *gin.Context) {
	tx, err := h.purchaseService.CancelTransaction(c.Request.Context(), middleware.Role(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}

// Refund handles the POST /admin/transactions/:id/refund endpoint. A refund
// moves the transaction to its terminal state but never removes the buyer
// from the project's buyer set.
func (h *TransactionHandler) Refund(c *gin.Context) {
	tx, err := h.purchaseService.RefundTransaction(c.Request.Context(), middleware.Role(c), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}
