package cart

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/port/persistence"
)

// Service enforces cart and wishlist consistency: at most one entry per
// (user, project) and a sale-price snapshot frozen at add-time.
type Service struct {
	carts        persistence.CartRepository
	wishlists    persistence.WishlistRepository
	projects     persistence.ProjectRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a cart/wishlist service
func NewService(
	carts persistence.CartRepository,
	wishlists persistence.WishlistRepository,
	projects persistence.ProjectRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		carts:        carts,
		wishlists:    wishlists,
		projects:     projects,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// AddToCart inserts a cart entry with the project's current sale price as an
// immutable snapshot. Quantity zero defaults to one.
func (s *Service) AddToCart(ctx context.Context, userID, projectID string, quantity int) (*entity.CartItem, error) {
	if quantity == 0 {
		quantity = entity.MinCartQuantity
	}
	if quantity < entity.MinCartQuantity || quantity > entity.MaxCartQuantity {
		return nil, errs.ErrInvalidQuantity
	}

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !project.IsPurchasable() {
		return nil, errs.ErrProjectNotPurchasable
	}
	if project.IsAuthor(userID) {
		return nil, errs.ErrOwnProject
	}
	if project.Pricing == nil {
		return nil, errs.ErrMissingPricing
	}

	if _, err := s.carts.GetItem(ctx, userID, projectID); err == nil {
		return nil, errs.NewDuplicateEntryError(errs.ErrAlreadyInCart, userID, projectID)
	} else if !errors.Is(err, errs.ErrCartItemNotFound) {
		return nil, err
	}

	item, err := entity.NewCartItem(userID, projectID, project.Pricing.SalePrice, project.Pricing.Currency, quantity, s.timeProvider)
	if err != nil {
		return nil, err
	}

	// The unique (user_id, project_id) index backs this up: a racing insert
	// surfaces as ErrAlreadyInCart from the repository.
	if err := s.carts.Create(ctx, item); err != nil {
		return nil, err
	}

	s.logger.Info("Added to cart", map[string]any{
		"user_id":       userID,
		"project_id":    projectID,
		"price_at_time": entity.FormatAmount(item.PriceAtTime),
		"quantity":      item.Quantity,
	})
	return item, nil
}

// UpdateCartItem changes the quantity of an existing entry
func (s *Service) UpdateCartItem(ctx context.Context, userID, projectID string, quantity int) (*entity.CartItem, error) {
	item, err := s.carts.GetItem(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	if err := item.SetQuantity(quantity, s.timeProvider); err != nil {
		return nil, err
	}
	if err := s.carts.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveFromCart deletes the entry for (user, project)
func (s *Service) RemoveFromCart(ctx context.Context, userID, projectID string) error {
	return s.carts.Delete(ctx, userID, projectID)
}

// ClearCart removes every entry for the user
func (s *Service) ClearCart(ctx context.Context, userID string) error {
	return s.carts.Clear(ctx, userID)
}

// GetCart returns the user's cart entries
func (s *Service) GetCart(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	return s.carts.ListByUser(ctx, userID)
}

// CurrencyTotal is one per-currency aggregate of a cart
type CurrencyTotal struct {
	Currency entity.Currency `json:"currency"`
	Total    string          `json:"total"`
	Items    int             `json:"items"`
}

// GetCartTotal aggregates sum(price_at_time * quantity) grouped by currency.
// Multi-currency carts yield one total per currency, never a blended sum.
func (s *Service) GetCartTotal(ctx context.Context, userID string) ([]CurrencyTotal, error) {
	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	sums := make(map[entity.Currency]decimal.Decimal)
	counts := make(map[entity.Currency]int)
	order := make([]entity.Currency, 0, 2)
	for _, item := range items {
		if _, seen := sums[item.Currency]; !seen {
			order = append(order, item.Currency)
		}
		sums[item.Currency] = sums[item.Currency].Add(item.Subtotal())
		counts[item.Currency]++
	}

	totals := make([]CurrencyTotal, 0, len(order))
	for _, currency := range order {
		totals = append(totals, CurrencyTotal{
			Currency: currency,
			Total:    entity.FormatAmount(sums[currency]),
			Items:    counts[currency],
		})
	}
	return totals, nil
}
