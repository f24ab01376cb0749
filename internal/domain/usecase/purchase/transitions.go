package purchase

import (
	"context"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
)

// requireAdmin enforces the precondition that only elevated principals may
// drive status transitions; buyers and sellers can read, never transition
func requireAdmin(actorRole entity.Role) error {
	if actorRole != entity.RoleAdmin {
		return errs.ErrForbidden
	}
	return nil
}

// CompleteTransaction transitions a transaction to completed and reconciles
// the owning project: the buyer is added to the buyer set and purchase_count
// incremented, both exactly once. Re-completing an already-completed
// transaction is a no-op success.
func (s *Service) CompleteTransaction(ctx context.Context, actorRole entity.Role, id string) (*entity.Transaction, error) {
	if err := requireAdmin(actorRole); err != nil {
		return nil, err
	}
	if err := s.reconcileCompletion(ctx, id); err != nil {
		return nil, err
	}
	return s.transactions.GetByID(ctx, id)
}

// reconcileCompletion performs the completion inside a single database
// transaction: mark completed, insert-if-absent into the buyer set,
// increment the counter only on first insertion. The conditional insert
// makes re-application idempotent; purchase_count stays equal to the buyer
// set size.
func (s *Service) reconcileCompletion(ctx context.Context, id string) error {
	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}

	txnRepo := s.uow.GetTransactionRepository(txCtx)
	projRepo := s.uow.GetProjectRepository(txCtx)

	txn, err := txnRepo.GetByID(txCtx, id)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return err
	}

	alreadyCompleted := txn.Status == entity.StatusCompleted
	if !alreadyCompleted {
		if err := txn.MarkCompleted(s.timeProvider); err != nil {
			_ = s.uow.Rollback(txCtx)
			return err
		}
		if err := txnRepo.Update(txCtx, txn); err != nil {
			_ = s.uow.Rollback(txCtx)
			return err
		}
	}

	added, err := projRepo.AddBuyer(txCtx, txn.ProjectID, txn.UserID)
	if err != nil {
		_ = s.uow.Rollback(txCtx)
		return err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		return err
	}

	s.logger.Info("Transaction completed", map[string]any{
		"transaction_id":    txn.TransactionID,
		"user_id":           txn.UserID,
		"project_id":        txn.ProjectID,
		"buyer_added":       added,
		"already_completed": alreadyCompleted,
	})

	if added {
		s.emit("purchase.completed", txn.UserID, txn.ProjectID, map[string]any{
			"transaction_id": txn.TransactionID,
			"amount":         entity.FormatAmount(txn.Amount),
		})
	}

	return nil
}

// FailTransaction moves a transaction to the terminal failed state; no
// project side effects
func (s *Service) FailTransaction(ctx context.Context, actorRole entity.Role, id string) (*entity.Transaction, error) {
	return s.terminate(ctx, actorRole, id, entity.StatusFailed)
}

// CancelTransaction moves a transaction to the terminal cancelled state; no
// project side effects
func (s *Service) CancelTransaction(ctx context.Context, actorRole entity.Role, id string) (*entity.Transaction, error) {
	return s.terminate(ctx, actorRole, id, entity.StatusCancelled)
}

func (s *Service) terminate(ctx context.Context, actorRole entity.Role, id string, target entity.TransactionStatus) (*entity.Transaction, error) {
	if err := requireAdmin(actorRole); err != nil {
		return nil, err
	}

	txn, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	switch target {
	case entity.StatusFailed:
		err = txn.MarkFailed(s.timeProvider)
	case entity.StatusCancelled:
		err = txn.MarkCancelled(s.timeProvider)
	default:
		err = errs.ErrInvalidStatusTransition
	}
	if err != nil {
		return nil, err
	}

	if err := s.transactions.Update(ctx, txn); err != nil {
		return nil, err
	}

	s.logger.Info("Transaction terminated", map[string]any{
		"transaction_id": txn.TransactionID,
		"status":         txn.Status,
	})
	return txn, nil
}

// RefundTransaction transitions completed -> refunded, setting refunded_at
// exactly once. The buyer-set and purchase-count mutations are intentionally
// NOT reversed: the buyer keeps access after a refund. Confirmed product
// decision pending; do not "fix" silently.
func (s *Service) RefundTransaction(ctx context.Context, actorRole entity.Role, id string) (*entity.Transaction, error) {
	if err := requireAdmin(actorRole); err != nil {
		return nil, err
	}

	txn, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := txn.MarkRefunded(s.timeProvider); err != nil {
		return nil, err
	}

	if err := s.transactions.Update(ctx, txn); err != nil {
		return nil, err
	}

	s.logger.Info("Transaction refunded", map[string]any{
		"transaction_id": txn.TransactionID,
		"user_id":        txn.UserID,
		"project_id":     txn.ProjectID,
	})

	s.emit("purchase.refunded", txn.UserID, txn.ProjectID, map[string]any{
		"transaction_id": txn.TransactionID,
	})

	return txn, nil
}
