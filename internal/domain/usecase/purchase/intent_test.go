package purchase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/usecase/pricing"
	mcore "github.com/projXchange/Backend-v1-sub000/mocks/port/core"
	mpers "github.com/projXchange/Backend-v1-sub000/mocks/port/persistence"
)

func newTestService(
	uow *mpers.MockUnitOfWork,
	projects *mpers.MockProjectRepository,
	transactions *mpers.MockTransactionRepository,
	timeProvider *mcore.MockTimeProvider,
	logger *mcore.MockLogger,
) *Service {
	return NewService(uow, projects, transactions, pricing.NewEngine(pricing.DefaultCommissionRate), timeProvider, logger, nil)
}

func quietLogger() *mcore.MockLogger {
	logger := new(mcore.MockLogger)
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	return logger
}

func approvedProject(id, authorID string, buyers ...string) *entity.Project {
	return &entity.Project{
		ID:       id,
		AuthorID: authorID,
		Title:    "Realtime Chat Starter",
		Status:   entity.ProjectStatusApproved,
		Pricing: &entity.Pricing{
			SalePrice:     decimal.RequireFromString("499.00"),
			OriginalPrice: decimal.RequireFromString("999.00"),
			Currency:      entity.CurrencyINR,
		},
		Buyers:        buyers,
		PurchaseCount: uint64(len(buyers)),
	}
}

func TestValidatePurchaseIntent(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		userID      string
		project     *entity.Project
		projectErr  error
		expectedErr error
	}{
		{
			name:    "Passes for an approved project and a fresh buyer",
			userID:  "buyer-1",
			project: approvedProject("proj-1", "seller-1"),
		},
		{
			name:        "Project not found",
			userID:      "buyer-1",
			projectErr:  errs.ErrProjectNotFound,
			expectedErr: errs.ErrProjectNotFound,
		},
		{
			name:   "Draft project is not purchasable",
			userID: "buyer-1",
			project: &entity.Project{
				ID:       "proj-1",
				AuthorID: "seller-1",
				Status:   entity.ProjectStatusDraft,
			},
			expectedErr: errs.ErrProjectNotPurchasable,
		},
		{
			name:   "Suspended project is not purchasable",
			userID: "buyer-1",
			project: &entity.Project{
				ID:       "proj-1",
				AuthorID: "seller-1",
				Status:   entity.ProjectStatusSuspended,
			},
			expectedErr: errs.ErrProjectNotPurchasable,
		},
		{
			name:        "Author cannot buy their own project",
			userID:      "seller-1",
			project:     approvedProject("proj-1", "seller-1"),
			expectedErr: errs.ErrOwnProject,
		},
		{
			name:        "Existing buyer is rejected",
			userID:      "buyer-1",
			project:     approvedProject("proj-1", "seller-1", "buyer-1"),
			expectedErr: errs.ErrAlreadyPurchased,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProjects := new(mpers.MockProjectRepository)
			mockTime := new(mcore.MockTimeProvider)
			mockTime.On("Now").Return(fixedTime).Maybe()

			if tt.projectErr != nil {
				mockProjects.On("GetByID", mock.Anything, "proj-1").Return(nil, tt.projectErr)
			} else {
				mockProjects.On("GetByID", mock.Anything, "proj-1").Return(tt.project, nil)
			}

			svc := newTestService(new(mpers.MockUnitOfWork), mockProjects, new(mpers.MockTransactionRepository), mockTime, quietLogger())

			project, err := svc.ValidatePurchaseIntent(ctx, tt.userID, "proj-1")

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.expectedErr))
				assert.Nil(t, project)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.project, project)
			}
			mockProjects.AssertExpectations(t)
		})
	}

	t.Run("Already-purchased carries the duplicate entry details", func(t *testing.T) {
		mockProjects := new(mpers.MockProjectRepository)
		mockProjects.On("GetByID", mock.Anything, "proj-1").
			Return(approvedProject("proj-1", "seller-1", "buyer-1"), nil)
		mockTime := new(mcore.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime).Maybe()

		svc := newTestService(new(mpers.MockUnitOfWork), mockProjects, new(mpers.MockTransactionRepository), mockTime, quietLogger())

		_, err := svc.ValidatePurchaseIntent(ctx, "buyer-1", "proj-1")

		var dup *errs.DuplicateEntryError
		require.True(t, errors.As(err, &dup))
		assert.Equal(t, "buyer-1", dup.UserID)
		assert.Equal(t, "proj-1", dup.ProjectID)
		assert.True(t, errs.IsConflictError(err))
	})
}
