package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/model"
)

// TransactionRepository implements the TransactionRepository port using GORM
type TransactionRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *TransactionRepository) entityToModel(tx *entity.Transaction) model.Transaction {
	return model.Transaction{
		ID:               tx.ID,
		TransactionID:    tx.TransactionID,
		UserID:           tx.UserID,
		ProjectID:        tx.ProjectID,
		SellerID:         tx.SellerID,
		Type:             string(tx.Type),
		Status:           string(tx.Status),
		Amount:           tx.Amount,
		CommissionAmount: tx.CommissionAmount,
		SellerAmount:     tx.SellerAmount,
		Currency:         string(tx.Currency),
		CreatedAt:        tx.CreatedAt,
		ProcessedAt:      tx.ProcessedAt,
		RefundedAt:       tx.RefundedAt,
	}
}

func (r *TransactionRepository) modelToEntity(m model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:               m.ID,
		TransactionID:    m.TransactionID,
		UserID:           m.UserID,
		ProjectID:        m.ProjectID,
		SellerID:         m.SellerID,
		Type:             entity.TransactionType(m.Type),
		Status:           entity.TransactionStatus(m.Status),
		Amount:           m.Amount,
		CommissionAmount: m.CommissionAmount,
		SellerAmount:     m.SellerAmount,
		Currency:         entity.Currency(m.Currency),
		CreatedAt:        m.CreatedAt,
		ProcessedAt:      m.ProcessedAt,
		RefundedAt:       m.RefundedAt,
	}
}

// Create saves a new transaction. The unique index on transaction_id turns
// a replayed external ID into ErrDuplicateTransaction.
func (r *TransactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	m := r.entityToModel(transaction)
	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate transaction ID", map[string]any{
				"transaction_id": transaction.TransactionID,
			})
			return errs.ErrDuplicateTransaction
		}
		r.logger.Error("Failed to create transaction", map[string]any{
			"transaction_id": transaction.TransactionID,
			"error":          result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// GetByID retrieves a transaction by its internal ID
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*entity.Transaction, error) {
	var m model.Transaction
	result := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelToEntity(m), nil
}

// GetByTransactionID retrieves a transaction by its external transaction ID
func (r *TransactionRepository) GetByTransactionID(ctx context.Context, transactionID string) (*entity.Transaction, error) {
	var m model.Transaction
	result := r.db.WithContext(ctx).First(&m, "transaction_id = ?", transactionID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelToEntity(m), nil
}

// Update persists status, processed_at and refunded_at changes. Amounts and
// parties are immutable after creation.
func (r *TransactionRepository) Update(ctx context.Context, transaction *entity.Transaction) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ?", transaction.ID).
		Updates(map[string]interface{}{
			"status":       string(transaction.Status),
			"processed_at": transaction.ProcessedAt,
			"refunded_at":  transaction.RefundedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// ListByUser returns the user's transactions, most recent first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Transaction, error) {
	var models []model.Transaction
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	transactions := make([]*entity.Transaction, 0, len(models))
	for _, m := range models {
		transactions = append(transactions, r.modelToEntity(m))
	}
	return transactions, nil
}
