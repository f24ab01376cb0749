package persistence

import (
	"context"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
)

// TransactionRepository defines essential methods to interact with transaction data
type TransactionRepository interface {
	// Create saves a new transaction
	//
	// Possible errors:
	// - ErrDuplicateTransaction: if a transaction with the same external ID already exists
	// - ErrDatabaseConnection: if the database connection fails
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a transaction by its internal ID
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)

	// GetByTransactionID retrieves a transaction by its external transaction ID
	GetByTransactionID(ctx context.Context, transactionID string) (*entity.Transaction, error)

	// Update persists status, processed_at and refunded_at changes
	Update(ctx context.Context, transaction *entity.Transaction) error

	// ListByUser returns the user's transactions, most recent first
	ListByUser(ctx context.Context, userID string) ([]*entity.Transaction, error)
}
