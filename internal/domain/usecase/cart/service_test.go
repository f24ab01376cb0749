package cart

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
	mcore "github.com/projXchange/Backend-v1-sub000/mocks/port/core"
	mpers "github.com/projXchange/Backend-v1-sub000/mocks/port/persistence"
)

func quietLogger() *mcore.MockLogger {
	logger := new(mcore.MockLogger)
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	return logger
}

func approvedProject(id, authorID, salePrice string, currency entity.Currency) *entity.Project {
	return &entity.Project{
		ID:       id,
		AuthorID: authorID,
		Title:    "Inventory Dashboard",
		Status:   entity.ProjectStatusApproved,
		Pricing: &entity.Pricing{
			SalePrice:     decimal.RequireFromString(salePrice),
			OriginalPrice: decimal.RequireFromString(salePrice),
			Currency:      currency,
		},
	}
}

func TestAddToCart(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("Snapshots the sale price at add time", func(t *testing.T) {
		project := approvedProject("proj-1", "seller-1", "499.00", entity.CurrencyINR)

		mockProjects := new(mpers.MockProjectRepository)
		mockProjects.On("GetByID", mock.Anything, "proj-1").Return(project, nil)
		mockCarts := new(mpers.MockCartRepository)
		mockCarts.On("GetItem", mock.Anything, "buyer-1", "proj-1").Return(nil, errs.ErrCartItemNotFound)
		mockCarts.On("Create", mock.Anything, mock.MatchedBy(func(item *entity.CartItem) bool {
			return entity.FormatAmount(item.PriceAtTime) == "499.00" &&
				item.Currency == entity.CurrencyINR &&
				item.Quantity == 2
		})).Return(nil)
		mockTime := new(mcore.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime)

		svc := NewService(mockCarts, new(mpers.MockWishlistRepository), mockProjects, mockTime, quietLogger())

		item, err := svc.AddToCart(ctx, "buyer-1", "proj-1", 2)

		require.NoError(t, err)
		assert.Equal(t, "499.00", entity.FormatAmount(item.PriceAtTime))
		assert.Equal(t, 2, item.Quantity)
		mockCarts.AssertExpectations(t)
	})

	t.Run("Quantity zero defaults to one", func(t *testing.T) {
		project := approvedProject("proj-1", "seller-1", "499.00", entity.CurrencyINR)

		mockProjects := new(mpers.MockProjectRepository)
		mockProjects.On("GetByID", mock.Anything, "proj-1").Return(project, nil)
		mockCarts := new(mpers.MockCartRepository)
		mockCarts.On("GetItem", mock.Anything, "buyer-1", "proj-1").Return(nil, errs.ErrCartItemNotFound)
		mockCarts.On("Create", mock.Anything, mock.Anything).Return(nil)
		mockTime := new(mcore.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime)

		svc := NewService(mockCarts, new(mpers.MockWishlistRepository), mockProjects, mockTime, quietLogger())

		item, err := svc.AddToCart(ctx, "buyer-1", "proj-1", 0)

		require.NoError(t, err)
		assert.Equal(t, entity.MinCartQuantity, item.Quantity)
	})

	t.Run("Quantity out of bounds", func(t *testing.T) {
		mockTime := new(mcore.MockTimeProvider)
		svc := NewService(new(mpers.MockCartRepository), new(mpers.MockWishlistRepository), new(mpers.MockProjectRepository), mockTime, quietLogger())

		for _, quantity := range []int{-1, entity.MaxCartQuantity + 1} {
			item, err := svc.AddToCart(ctx, "buyer-1", "proj-1", quantity)
			assert.Nil(t, item, "quantity %d", quantity)
			assert.True(t, errors.Is(err, errs.ErrInvalidQuantity), "quantity %d", quantity)
		}
	})

	t.Run("Duplicate entry is a conflict", func(t *testing.T) {
		project := approvedProject("proj-1", "seller-1", "499.00", entity.CurrencyINR)
		existing := &entity.CartItem{UserID: "buyer-1", ProjectID: "proj-1", Quantity: 1}

		mockProjects := new(mpers.MockProjectRepository)
		mockProjects.On("GetByID", mock.Anything, "proj-1").Return(project, nil)
		mockCarts := new(mpers.MockCartRepository)
		mockCarts.On("GetItem", mock.Anything, "buyer-1", "proj-1").Return(existing, nil)
		mockTime := new(mcore.MockTimeProvider)

		svc := NewService(mockCarts, new(mpers.MockWishlistRepository), mockProjects, mockTime, quietLogger())

		item, err := svc.AddToCart(ctx, "buyer-1", "proj-1", 1)

		assert.Nil(t, item)
		assert.True(t, errors.Is(err, errs.ErrAlreadyInCart))
		assert.True(t, errs.IsConflictError(err))
		mockCarts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Author cannot cart their own project", func(t *testing.T) {
		project := approvedProject("proj-1", "seller-1", "499.00", entity.CurrencyINR)

		mockProjects := new(mpers.MockProjectRepository)
		mockProjects.On("GetByID", mock.Anything, "proj-1").Return(project, nil)
		mockTime := new(mcore.MockTimeProvider)

		svc := NewService(new(mpers.MockCartRepository), new(mpers.MockWishlistRepository), mockProjects, mockTime, quietLogger())

		item, err := svc.AddToCart(ctx, "seller-1", "proj-1", 1)

		assert.Nil(t, item)
		assert.True(t, errors.Is(err, errs.ErrOwnProject))
	})

	t.Run("Pending project is not purchasable", func(t *testing.T) {
		project := approvedProject("proj-1", "seller-1", "499.00", entity.CurrencyINR)
		project.Status = entity.ProjectStatusPending

		mockProjects := new(mpers.MockProjectRepository)
		mockProjects.On("GetByID", mock.Anything, "proj-1").Return(project, nil)
		mockTime := new(mcore.MockTimeProvider)

		svc := NewService(new(mpers.MockCartRepository), new(mpers.MockWishlistRepository), mockProjects, mockTime, quietLogger())

		item, err := svc.AddToCart(ctx, "buyer-1", "proj-1", 1)

		assert.Nil(t, item)
		assert.True(t, errors.Is(err, errs.ErrProjectNotPurchasable))
	})

	t.Run("Project without pricing cannot be carted", func(t *testing.T) {
		project := approvedProject("proj-1", "seller-1", "499.00", entity.CurrencyINR)
		project.Pricing = nil

		mockProjects := new(mpers.MockProjectRepository)
		mockProjects.On("GetByID", mock.Anything, "proj-1").Return(project, nil)
		mockTime := new(mcore.MockTimeProvider)

		svc := NewService(new(mpers.MockCartRepository), new(mpers.MockWishlistRepository), mockProjects, mockTime, quietLogger())

		item, err := svc.AddToCart(ctx, "buyer-1", "proj-1", 1)

		assert.Nil(t, item)
		assert.True(t, errors.Is(err, errs.ErrMissingPricing))
	})
}

func TestUpdateCartItem(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("Quantity change keeps the original price snapshot", func(t *testing.T) {
		item := &entity.CartItem{
			UserID:      "buyer-1",
			ProjectID:   "proj-1",
			PriceAtTime: decimal.RequireFromString("499.00"),
			Currency:    entity.CurrencyINR,
			Quantity:    1,
		}

		mockCarts := new(mpers.MockCartRepository)
		mockCarts.On("GetItem", mock.Anything, "buyer-1", "proj-1").Return(item, nil)
		mockCarts.On("Update", mock.Anything, item).Return(nil)
		mockTime := new(mcore.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime)

		svc := NewService(mockCarts, new(mpers.MockWishlistRepository), new(mpers.MockProjectRepository), mockTime, quietLogger())

		updated, err := svc.UpdateCartItem(ctx, "buyer-1", "proj-1", 3)

		require.NoError(t, err)
		assert.Equal(t, 3, updated.Quantity)
		assert.Equal(t, "499.00", entity.FormatAmount(updated.PriceAtTime))
	})

	t.Run("Out-of-bounds quantity is rejected", func(t *testing.T) {
		item := &entity.CartItem{
			UserID:      "buyer-1",
			ProjectID:   "proj-1",
			PriceAtTime: decimal.RequireFromString("499.00"),
			Currency:    entity.CurrencyINR,
			Quantity:    1,
		}

		mockCarts := new(mpers.MockCartRepository)
		mockCarts.On("GetItem", mock.Anything, "buyer-1", "proj-1").Return(item, nil)
		mockTime := new(mcore.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime).Maybe()

		svc := NewService(mockCarts, new(mpers.MockWishlistRepository), new(mpers.MockProjectRepository), mockTime, quietLogger())

		updated, err := svc.UpdateCartItem(ctx, "buyer-1", "proj-1", 11)

		assert.Nil(t, updated)
		assert.True(t, errors.Is(err, errs.ErrInvalidQuantity))
		mockCarts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestGetCartTotal(t *testing.T) {
	ctx := context.Background()

	t.Run("Groups totals per currency without blending", func(t *testing.T) {
		items := []*entity.CartItem{
			{ProjectID: "proj-1", PriceAtTime: decimal.RequireFromString("499.00"), Currency: entity.CurrencyINR, Quantity: 2},
			{ProjectID: "proj-2", PriceAtTime: decimal.RequireFromString("19.99"), Currency: entity.CurrencyUSD, Quantity: 1},
			{ProjectID: "proj-3", PriceAtTime: decimal.RequireFromString("1.00"), Currency: entity.CurrencyINR, Quantity: 1},
		}

		mockCarts := new(mpers.MockCartRepository)
		mockCarts.On("ListByUser", mock.Anything, "buyer-1").Return(items, nil)
		mockTime := new(mcore.MockTimeProvider)

		svc := NewService(mockCarts, new(mpers.MockWishlistRepository), new(mpers.MockProjectRepository), mockTime, quietLogger())

		totals, err := svc.GetCartTotal(ctx, "buyer-1")

		require.NoError(t, err)
		require.Len(t, totals, 2)
		assert.Equal(t, entity.CurrencyINR, totals[0].Currency)
		assert.Equal(t, "999.00", totals[0].Total)
		assert.Equal(t, 2, totals[0].Items)
		assert.Equal(t, entity.CurrencyUSD, totals[1].Currency)
		assert.Equal(t, "19.99", totals[1].Total)
		assert.Equal(t, 1, totals[1].Items)
	})

	t.Run("Empty cart yields no totals", func(t *testing.T) {
		mockCarts := new(mpers.MockCartRepository)
		mockCarts.On("ListByUser", mock.Anything, "buyer-1").Return([]*entity.CartItem{}, nil)
		mockTime := new(mcore.MockTimeProvider)

		svc := NewService(mockCarts, new(mpers.MockWishlistRepository), new(mpers.MockProjectRepository), mockTime, quietLogger())

		totals, err := svc.GetCartTotal(ctx, "buyer-1")

		require.NoError(t, err)
		assert.Empty(t, totals)
	})
}

func TestWishlist(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC)

	t.Run("Add succeeds for an approved project", func(t *testing.T) {
		project := approvedProject("proj-1", "seller-1", "499.00", entity.CurrencyINR)

		mockProjects := new(mpers.MockProjectRepository)
		mockProjects.On("GetByID", mock.Anything, "proj-1").Return(project, nil)
		mockWishlists := new(mpers.MockWishlistRepository)
		mockWishlists.On("Exists", mock.Anything, "buyer-1", "proj-1").Return(false, nil)
		mockWishlists.On("Create", mock.Anything, mock.AnythingOfType("*entity.WishlistItem")).Return(nil)
		mockTime := new(mcore.MockTimeProvider)
		mockTime.On("Now").Return(fixedTime)

		svc := NewService(new(mpers.MockCartRepository), mockWishlists, mockProjects, mockTime, quietLogger())

		item, err := svc.AddToWishlist(ctx, "buyer-1", "proj-1")

		require.NoError(t, err)
		assert.Equal(t, "buyer-1", item.UserID)
		mockWishlists.AssertExpectations(t)
	})

	t.Run("Duplicate wishlist entry is a conflict", func(t *testing.T) {
		project := approvedProject("proj-1", "seller-1", "499.00", entity.CurrencyINR)

		mockProjects := new(mpers.MockProjectRepository)
		mockProjects.On("GetByID", mock.Anything, "proj-1").Return(project, nil)
		mockWishlists := new(mpers.MockWishlistRepository)
		mockWishlists.On("Exists", mock.Anything, "buyer-1", "proj-1").Return(true, nil)
		mockTime := new(mcore.MockTimeProvider)

		svc := NewService(new(mpers.MockCartRepository), mockWishlists, mockProjects, mockTime, quietLogger())

		item, err := svc.AddToWishlist(ctx, "buyer-1", "proj-1")

		assert.Nil(t, item)
		assert.True(t, errors.Is(err, errs.ErrAlreadyInWishlist))
		mockWishlists.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
