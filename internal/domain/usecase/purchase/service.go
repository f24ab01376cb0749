package purchase

import (
	"context"
	"time"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/port/integration"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/port/persistence"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/usecase/pricing"
)

// analyticsTimeout bounds best-effort event emission so it can never hold a
// goroutine hostage
const analyticsTimeout = 2 * time.Second

// Service owns the purchase lifecycle: the pre-transaction intent gate,
// transaction creation with its commission split, and the status transitions
// that reconcile the owning project's buyer set and purchase counter.
type Service struct {
	uow          persistence.UnitOfWork
	projects     persistence.ProjectRepository
	transactions persistence.TransactionRepository
	pricing      *pricing.Engine
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	analytics    integration.AnalyticsPublisher
}

// NewService creates a purchase service. analytics may be nil when no sink is
// configured.
func NewService(
	uow persistence.UnitOfWork,
	projects persistence.ProjectRepository,
	transactions persistence.TransactionRepository,
	pricingEngine *pricing.Engine,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	analytics integration.AnalyticsPublisher,
) *Service {
	return &Service{
		uow:          uow,
		projects:     projects,
		transactions: transactions,
		pricing:      pricingEngine,
		timeProvider: timeProvider,
		logger:       logger,
		analytics:    analytics,
	}
}

// GetTransaction returns a transaction readable by its buyer, its seller or
// an admin
func (s *Service) GetTransaction(ctx context.Context, actorID string, actorRole entity.Role, id string) (*entity.Transaction, error) {
	txn, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorRole != entity.RoleAdmin && txn.UserID != actorID && txn.SellerID != actorID {
		return nil, errs.ErrForbidden
	}
	return txn, nil
}

// ListUserTransactions returns the caller's own transactions
func (s *Service) ListUserTransactions(ctx context.Context, userID string) ([]*entity.Transaction, error) {
	return s.transactions.ListByUser(ctx, userID)
}

// emit publishes an analytics event from a detached goroutine with its own
// deadline; failures are logged as warnings and never surface to the caller
func (s *Service) emit(name, actorID, targetID string, fields map[string]any) {
	if s.analytics == nil {
		return
	}
	event := integration.Event{
		Name:     name,
		ActorID:  actorID,
		TargetID: targetID,
		Fields:   fields,
		At:       s.timeProvider.Now(),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), analyticsTimeout)
		defer cancel()
		if err := s.analytics.Publish(ctx, event); err != nil {
			s.logger.Warn("Analytics publish failed", map[string]any{
				"event": name,
				"error": err.Error(),
			})
		}
	}()
}
