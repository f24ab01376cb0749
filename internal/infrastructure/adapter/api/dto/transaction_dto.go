package dto

import (
	"time"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
)

// CreateTransactionRequest is the gateway callback payload recording a
// purchase. Amount is a fixed-scale decimal string.
type CreateTransactionRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	ProjectID     string `json:"project_id" binding:"required"`
	Amount        string `json:"amount" binding:"required"`
}

// TransactionResponse is the API view of a purchase transaction
type TransactionResponse struct {
	ID               string     `json:"id"`
	TransactionID    string     `json:"transaction_id"`
	UserID           string     `json:"user_id"`
	ProjectID        string     `json:"project_id"`
	SellerID         string     `json:"seller_id"`
	Type             string     `json:"type"`
	Status           string     `json:"status"`
	Amount           string     `json:"amount"`
	CommissionAmount string     `json:"commission_amount"`
	SellerAmount     string     `json:"seller_amount"`
	Currency         string     `json:"currency"`
	CreatedAt        time.Time  `json:"created_at"`
	ProcessedAt      *time.Time `json:"processed_at,omitempty"`
	RefundedAt       *time.Time `json:"refunded_at,omitempty"`
}

// NewTransactionResponse maps a transaction entity to its API representation
func NewTransactionResponse(tx *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:               tx.ID,
		TransactionID:    tx.TransactionID,
		UserID:           tx.UserID,
		ProjectID:        tx.ProjectID,
		SellerID:         tx.SellerID,
		Type:             string(tx.Type),
		Status:           string(tx.Status),
		Amount:           entity.FormatAmount(tx.Amount),
		CommissionAmount: entity.FormatAmount(tx.CommissionAmount),
		SellerAmount:     entity.FormatAmount(tx.SellerAmount),
		Currency:         string(tx.Currency),
		CreatedAt:        tx.CreatedAt,
		ProcessedAt:      tx.ProcessedAt,
		RefundedAt:       tx.RefundedAt,
	}
}

// TransactionListResponse wraps a user's purchase history
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
