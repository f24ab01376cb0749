package purchase

import (
	"context"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
)

// ValidatePurchaseIntent runs the pre-transaction gate, short-circuiting on
// the first failure:
//  1. the project exists and is purchasable
//  2. the requester is not the author
//  3. the requester is not already in the buyer set
//
// Only after all three pass may a caller create a transaction or apply the
// direct buyer-set mutation.
func (s *Service) ValidatePurchaseIntent(ctx context.Context, userID, projectID string) (*entity.Project, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if !project.IsPurchasable() {
		s.logger.Warn("Purchase intent on non-purchasable project", map[string]any{
			"user_id":    userID,
			"project_id": projectID,
			"status":     project.Status,
		})
		return nil, errs.ErrProjectNotPurchasable
	}

	if project.IsAuthor(userID) {
		return nil, errs.ErrOwnProject
	}

	if project.HasBuyer(userID) {
		return nil, errs.NewDuplicateEntryError(errs.ErrAlreadyPurchased, userID, projectID)
	}

	return project, nil
}
