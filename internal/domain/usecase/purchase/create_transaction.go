package purchase

import (
	"context"
	"errors"
	"fmt"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
)

// CreateTransactionRequest carries the payment gateway's report of a purchase
// intent. The amount arrives as a fixed-scale decimal string.
type CreateTransactionRequest struct {
	ExternalID string
	UserID     string
	ProjectID  string
	Amount     string
}

// CreateTransaction records a pending purchase transaction with its
// commission split computed at creation. The seller-vs-buyer check is NOT
// enforced here; it belongs to the purchase-intent gate that runs before the
// gateway is ever involved.
func (s *Service) CreateTransaction(ctx context.Context, req CreateTransactionRequest) (*entity.Transaction, error) {
	amount, err := entity.ParsePositiveAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	project, err := s.projects.GetByID(ctx, req.ProjectID)
	if err != nil {
		return nil, err
	}
	if project.Pricing == nil {
		return nil, errs.ErrMissingPricing
	}

	commission, seller := s.pricing.Split(amount)

	txn, err := entity.NewTransaction(
		req.ExternalID,
		req.UserID,
		req.ProjectID,
		project.AuthorID,
		entity.TypePurchase,
		amount,
		commission,
		seller,
		project.Pricing.Currency,
		s.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if err := s.transactions.Create(ctx, txn); err != nil {
		if errors.Is(err, errs.ErrDuplicateTransaction) {
			// Callers distinguish this conflict to choose a 409
			return nil, errs.NewPurchaseError(
				req.ExternalID, req.UserID, req.ProjectID,
				string(entity.StatusPending), entity.FormatAmount(amount),
				"duplicate external transaction id", errs.ErrDuplicateTransaction,
			)
		}
		return nil, err
	}

	s.logger.Info("Transaction created", map[string]any{
		"transaction_id": txn.TransactionID,
		"user_id":        txn.UserID,
		"project_id":     txn.ProjectID,
		"amount":         entity.FormatAmount(txn.Amount),
		"commission":     entity.FormatAmount(txn.CommissionAmount),
		"seller_amount":  entity.FormatAmount(txn.SellerAmount),
		"currency":       txn.Currency,
	})

	s.emit("transaction.created", txn.UserID, txn.ProjectID, map[string]any{
		"transaction_id": txn.TransactionID,
		"amount":         entity.FormatAmount(txn.Amount),
	})

	return txn, nil
}

// PurchaseProject is the direct purchase shortcut: it runs the intent gate,
// records a transaction for the project's current sale price and completes it
// in the same request, as if the gateway had confirmed synchronously.
func (s *Service) PurchaseProject(ctx context.Context, userID, projectID, externalID string) (*entity.Transaction, error) {
	project, err := s.ValidatePurchaseIntent(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	if project.Pricing == nil {
		return nil, errs.ErrMissingPricing
	}

	txn, err := s.CreateTransaction(ctx, CreateTransactionRequest{
		ExternalID: externalID,
		UserID:     userID,
		ProjectID:  projectID,
		Amount:     entity.FormatAmount(project.Pricing.SalePrice),
	})
	if err != nil {
		return nil, err
	}

	if err := s.reconcileCompletion(ctx, txn.ID); err != nil {
		return nil, fmt.Errorf("completing direct purchase: %w", err)
	}

	return s.transactions.GetByID(ctx, txn.ID)
}
