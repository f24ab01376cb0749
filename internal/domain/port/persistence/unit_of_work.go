package persistence

import (
	"context"
)

// UnitOfWork coordinates multi-step mutations across repositories inside a
// single database transaction. The purchase reconciliation (transaction
// update + buyer-set insert + counter increment) and the download flow
// (log append + counter increment) run through it.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetProjectRepository returns a project repository bound to the current transaction
	GetProjectRepository(ctx context.Context) ProjectRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetDownloadRepository returns a download repository bound to the current transaction
	GetDownloadRepository(ctx context.Context) DownloadRepository
}
