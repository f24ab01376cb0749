package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	tport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
)

// TransactionType represents the kind of money movement a transaction records
type TransactionType string

// Transaction types
const (
	TypePurchase   TransactionType = "purchase"
	TypeRefund     TransactionType = "refund"
	TypeCommission TransactionType = "commission"
)

// TransactionStatus defines possible status values for a transaction
type TransactionStatus string

// Transaction lifecycle states
const (
	StatusPending    TransactionStatus = "pending"
	StatusProcessing TransactionStatus = "processing"
	StatusCompleted  TransactionStatus = "completed"
	StatusFailed     TransactionStatus = "failed"
	StatusCancelled  TransactionStatus = "cancelled"
	StatusRefunded   TransactionStatus = "refunded"
)

// IsValidTransactionType validates if the type is one of the allowed values
func IsValidTransactionType(t string) bool {
	return t == string(TypePurchase) || t == string(TypeRefund) || t == string(TypeCommission)
}

// Transaction is the sole authority for "did a purchase happen". It records
// the gross amount and its commission split, both held as fixed-scale
// decimals.
type Transaction struct {
	ID               string
	TransactionID    string // unique external identifier from the payment gateway
	UserID           string // buyer
	ProjectID        string
	SellerID         string
	Type             TransactionType
	Status           TransactionStatus
	Amount           decimal.Decimal
	CommissionAmount decimal.Decimal
	SellerAmount     decimal.Decimal
	Currency         Currency
	CreatedAt        time.Time
	ProcessedAt      *time.Time
	RefundedAt       *time.Time
}

// NewTransaction creates a pending transaction after validating its invariants:
// a positive amount and an exact commission split (amount = commission + seller).
func NewTransaction(
	externalID, userID, projectID, sellerID string,
	txType TransactionType,
	amount, commission, seller decimal.Decimal,
	currency Currency,
	timeProvider tport.TimeProvider,
) (*Transaction, error) {
	if externalID == "" {
		return nil, fmt.Errorf("%w: transaction ID cannot be empty", errs.ErrInvalidRequest)
	}
	if userID == "" || projectID == "" || sellerID == "" {
		return nil, errs.ErrInvalidRequest
	}
	if !IsValidTransactionType(string(txType)) {
		return nil, fmt.Errorf("%w: invalid transaction type %q", errs.ErrInvalidRequest, txType)
	}
	if !IsValidCurrency(string(currency)) {
		return nil, errs.ErrInvalidCurrency
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidAmount)
	}
	if !commission.Add(seller).Equal(amount) {
		return nil, fmt.Errorf("%w: commission split does not sum to amount", errs.ErrInvalidAmount)
	}

	return &Transaction{
		ID:               uuid.NewString(),
		TransactionID:    externalID,
		UserID:           userID,
		ProjectID:        projectID,
		SellerID:         sellerID,
		Type:             txType,
		Status:           StatusPending,
		Amount:           amount,
		CommissionAmount: commission,
		SellerAmount:     seller,
		Currency:         currency,
		CreatedAt:        timeProvider.Now(),
	}, nil
}

// CanTransitionTo reports whether the lifecycle permits moving to the target
// status. Forward flow: pending -> processing -> completed|failed|cancelled;
// refunded is reachable only from completed.
func (t *Transaction) CanTransitionTo(target TransactionStatus) bool {
	switch t.Status {
	case StatusPending:
		switch target {
		case StatusProcessing, StatusCompleted, StatusFailed, StatusCancelled:
			return true
		}
	case StatusProcessing:
		switch target {
		case StatusCompleted, StatusFailed, StatusCancelled:
			return true
		}
	case StatusCompleted:
		return target == StatusRefunded
	}
	return false
}

// MarkProcessing moves the transaction into the processing state
func (t *Transaction) MarkProcessing() error {
	if !t.CanTransitionTo(StatusProcessing) {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidStatusTransition, t.Status, StatusProcessing)
	}
	t.Status = StatusProcessing
	return nil
}

// MarkCompleted finalizes the transaction, setting processed_at exactly once
func (t *Transaction) MarkCompleted(timeProvider tport.TimeProvider) error {
	if !t.CanTransitionTo(StatusCompleted) {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidStatusTransition, t.Status, StatusCompleted)
	}
	now := timeProvider.Now()
	t.ProcessedAt = &now
	t.Status = StatusCompleted
	return nil
}

// MarkFailed moves the transaction to the terminal failed state
func (t *Transaction) MarkFailed(timeProvider tport.TimeProvider) error {
	if !t.CanTransitionTo(StatusFailed) {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidStatusTransition, t.Status, StatusFailed)
	}
	now := timeProvider.Now()
	t.ProcessedAt = &now
	t.Status = StatusFailed
	return nil
}

// MarkCancelled moves the transaction to the terminal cancelled state
func (t *Transaction) MarkCancelled(timeProvider tport.TimeProvider) error {
	if !t.CanTransitionTo(StatusCancelled) {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidStatusTransition, t.Status, StatusCancelled)
	}
	now := timeProvider.Now()
	t.ProcessedAt = &now
	t.Status = StatusCancelled
	return nil
}

// MarkRefunded sets refunded_at exactly once. Refunds do not touch the
// project buyer set; see the purchase service for the product decision.
func (t *Transaction) MarkRefunded(timeProvider tport.TimeProvider) error {
	if !t.CanTransitionTo(StatusRefunded) {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidStatusTransition, t.Status, StatusRefunded)
	}
	now := timeProvider.Now()
	t.RefundedAt = &now
	t.Status = StatusRefunded
	return nil
}

// IsTerminal reports whether no further forward transitions are possible
func (t *Transaction) IsTerminal() bool {
	switch t.Status {
	case StatusFailed, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}
