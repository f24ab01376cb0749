package purchase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	mcore "github.com/projXchange/Backend-v1-sub000/mocks/port/core"
	mpers "github.com/projXchange/Backend-v1-sub000/mocks/port/persistence"
)

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	req := CreateTransactionRequest{
		ExternalID: "gw-12345",
		UserID:     "buyer-1",
		ProjectID:  "proj-1",
		Amount:     "499.00",
	}

	t.Run("Records a pending transaction with a ten percent split", func(t *testing.T) {
		mockProjects := new(mpers.MockProjectRepository)
		mockProjects.On("GetByID", mock.Anything, "proj-1").Return(approvedProject("proj-1", "seller-1"), nil)
		mockTxRepo := new(mpers.MockTransactionRepository)
		mockTxRepo.On("Create", mock.Anything, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.TransactionID == "gw-12345" &&
				txn.Status == entity.StatusPending &&
				txn.SellerID == "seller-1" &&
				entity.FormatAmount(txn.CommissionAmount) == "49.90" &&
				entity.FormatAmount(txn.SellerAmount) == "449.10"
		})).Return(nil)
		mockTime := new(mcore.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime)

		svc := newTestService(new(mpers.MockUnitOfWork), mockProjects, mockTxRepo, mockTime, quietLogger())

		txn, err := svc.CreateTransaction(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, entity.StatusPending, txn.Status)
		assert.Equal(t, "499.00", entity.FormatAmount(txn.Amount))
		assert.True(t, txn.CommissionAmount.Add(txn.SellerAmount).Equal(txn.Amount))
		assert.Equal(t, fixedTime, txn.CreatedAt)
		mockTxRepo.AssertExpectations(t)
	})

	t.Run("Rejects malformed and non-positive amounts", func(t *testing.T) {
		for _, amount := range []string{"", "abc", "-1.00", "0", "0.00", "1.999"} {
			bad := req
			bad.Amount = amount

			mockTime := new(mcore.MockTimeProvider)
			svc := newTestService(new(mpers.MockUnitOfWork), new(mpers.MockProjectRepository), new(mpers.MockTransactionRepository), mockTime, quietLogger())

			txn, err := svc.CreateTransaction(ctx, bad)

			assert.Nil(t, txn, "amount %q", amount)
			assert.Error(t, err, "amount %q", amount)
			assert.True(t, errs.IsValidationError(err), "amount %q", amount)
		}
	})

	t.Run("Project without pricing cannot take a transaction", func(t *testing.T) {
		unpriced := approvedProject("proj-1", "seller-1")
		unpriced.Pricing = nil

		mockProjects := new(mpers.MockProjectRepository)
		mockProjects.On("GetByID", mock.Anything, "proj-1").Return(unpriced, nil)
		mockTime := new(mcore.MockTimeProvider)

		svc := newTestService(new(mpers.MockUnitOfWork), mockProjects, new(mpers.MockTransactionRepository), mockTime, quietLogger())

		txn, err := svc.CreateTransaction(ctx, req)

		assert.Nil(t, txn)
		assert.True(t, errors.Is(err, errs.ErrMissingPricing))
	})

	t.Run("Duplicate external ID surfaces as a purchase conflict", func(t *testing.T) {
		mockProjects := new(mpers.MockProjectRepository)
		mockProjects.On("GetByID", mock.Anything, "proj-1").Return(approvedProject("proj-1", "seller-1"), nil)
		mockTxRepo := new(mpers.MockTransactionRepository)
		mockTxRepo.On("Create", mock.Anything, mock.Anything).Return(errs.ErrDuplicateTransaction)
		mockTime := new(mcore.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime)

		svc := newTestService(new(mpers.MockUnitOfWork), mockProjects, mockTxRepo, mockTime, quietLogger())

		txn, err := svc.CreateTransaction(ctx, req)

		assert.Nil(t, txn)
		assert.True(t, errors.Is(err, errs.ErrDuplicateTransaction))

		var purchaseErr *errs.PurchaseError
		require.True(t, errors.As(err, &purchaseErr))
		assert.Equal(t, "gw-12345", purchaseErr.TransactionID)
		assert.Equal(t, "buyer-1", purchaseErr.UserID)
	})
}

func TestPurchaseProject(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)
	txCtx := context.WithValue(ctx, ctxKey("tx"), "open")

	t.Run("Direct purchase runs the gate, records and completes", func(t *testing.T) {
		project := approvedProject("proj-1", "seller-1")

		mockProjects := new(mpers.MockProjectRepository)
		mockProjects.On("GetByID", mock.Anything, "proj-1").Return(project, nil)

		var created *entity.Transaction
		mockTxRepo := new(mpers.MockTransactionRepository)
		mockTxRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Transaction")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*entity.Transaction)
			}).Return(nil)
		mockTxRepo.On("GetByID", mock.Anything, mock.AnythingOfType("string")).Return(
			func(_ context.Context, _ string) *entity.Transaction { return created },
			func(_ context.Context, _ string) error { return nil },
		)

		uowTxRepo := new(mpers.MockTransactionRepository)
		uowTxRepo.On("GetByID", txCtx, mock.AnythingOfType("string")).Return(
			func(_ context.Context, _ string) *entity.Transaction { return created },
			func(_ context.Context, _ string) error { return nil },
		)
		uowTxRepo.On("Update", txCtx, mock.MatchedBy(func(txn *entity.Transaction) bool {
			return txn.Status == entity.StatusCompleted
		})).Return(nil)

		uowProjects := new(mpers.MockProjectRepository)
		uowProjects.On("AddBuyer", txCtx, "proj-1", "buyer-1").Return(true, nil)

		mockUow := new(mpers.MockUnitOfWork)
		mockUow.On("Begin", mock.Anything).Return(txCtx, nil)
		mockUow.On("GetTransactionRepository", txCtx).Return(uowTxRepo)
		mockUow.On("GetProjectRepository", txCtx).Return(uowProjects)
		mockUow.On("Commit", txCtx).Return(nil)

		mockTime := new(mcore.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime)

		svc := newTestService(mockUow, mockProjects, mockTxRepo, mockTime, quietLogger())

		txn, err := svc.PurchaseProject(ctx, "buyer-1", "proj-1", "gw-12345")

		require.NoError(t, err)
		assert.Equal(t, entity.StatusCompleted, txn.Status)
		assert.Equal(t, "499.00", entity.FormatAmount(txn.Amount))
		mockUow.AssertExpectations(t)
		uowProjects.AssertExpectations(t)
	})

	t.Run("Gate failure stops before any transaction exists", func(t *testing.T) {
		mockProjects := new(mpers.MockProjectRepository)
		mockProjects.On("GetByID", mock.Anything, "proj-1").
			Return(approvedProject("proj-1", "seller-1", "buyer-1"), nil)
		mockTxRepo := new(mpers.MockTransactionRepository)
		mockTime := new(mcore.MockTimeProvider)

		svc := newTestService(new(mpers.MockUnitOfWork), mockProjects, mockTxRepo, mockTime, quietLogger())

		txn, err := svc.PurchaseProject(ctx, "buyer-1", "proj-1", "gw-12345")

		assert.Nil(t, txn)
		assert.True(t, errors.Is(err, errs.ErrAlreadyPurchased))
		mockTxRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGetTransaction(t *testing.T) {
	ctx := context.Background()

	txn := pendingTransaction("tx-1")

	tests := []struct {
		name        string
		actorID     string
		actorRole   entity.Role
		expectedErr error
	}{
		{name: "Buyer can read", actorID: "buyer-1", actorRole: entity.RoleUser},
		{name: "Seller can read", actorID: "seller-1", actorRole: entity.RoleUser},
		{name: "Admin can read", actorID: "admin-1", actorRole: entity.RoleAdmin},
		{name: "Stranger is forbidden", actorID: "other-1", actorRole: entity.RoleUser, expectedErr: errs.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTxRepo := new(mpers.MockTransactionRepository)
			mockTxRepo.On("GetByID", mock.Anything, "tx-1").Return(txn, nil)
			mockTime := new(mcore.MockTimeProvider)

			svc := newTestService(new(mpers.MockUnitOfWork), new(mpers.MockProjectRepository), mockTxRepo, mockTime, quietLogger())

			result, err := svc.GetTransaction(ctx, tt.actorID, tt.actorRole, "tx-1")

			if tt.expectedErr != nil {
				assert.Nil(t, result)
				assert.True(t, errors.Is(err, tt.expectedErr))
			} else {
				require.NoError(t, err)
				assert.Equal(t, txn, result)
			}
		})
	}
}
