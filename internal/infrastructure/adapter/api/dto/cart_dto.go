package dto

import (
	"time"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/usecase/cart"
)

// AddToCartRequest is the payload for adding a project to the cart. A zero
// quantity defaults to one.
type AddToCartRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest is the payload for changing a cart entry's quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// CartItemResponse is the API view of one cart entry
type CartItemResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	PriceAtTime string    `json:"price_at_time"`
	Currency    string    `json:"currency"`
	Quantity    int       `json:"quantity"`
	Subtotal    string    `json:"subtotal"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CartResponse is the full cart with per-currency totals
type CartResponse struct {
	Items  []CartItemResponse  `json:"items"`
	Totals []cart.CurrencyTotal `json:"totals"`
}

// NewCartItemResponse maps a cart entry to its API representation
func NewCartItemResponse(item *entity.CartItem) CartItemResponse {
	return CartItemResponse{
		ID:          item.ID,
		ProjectID:   item.ProjectID,
		PriceAtTime: entity.FormatAmount(item.PriceAtTime),
		Currency:    string(item.Currency),
		Quantity:    item.Quantity,
		Subtotal:    entity.FormatAmount(item.Subtotal()),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

// AddToWishlistRequest is the payload for wishlisting a project
type AddToWishlistRequest struct {
	ProjectID string `json:"project_id" binding:"required"`
}

// WishlistItemResponse is the API view of one wishlist entry
type WishlistItemResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	CreatedAt time.Time `json:"created_at"`
}

// WishlistResponse wraps a user's wishlist
type WishlistResponse struct {
	Items []WishlistItemResponse `json:"items"`
}

// NewWishlistItemResponse maps a wishlist entry to its API representation
func NewWishlistItemResponse(item *entity.WishlistItem) WishlistItemResponse {
	return WishlistItemResponse{
		ID:        item.ID,
		ProjectID: item.ProjectID,
		CreatedAt: item.CreatedAt,
	}
}
