package model

import (
	"time"
)

// WishlistItem represents the database model for wishlist entries, unique
// per (user, project)
type WishlistItem struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_wishlist_user_project;size:36"`
	ProjectID string    `gorm:"not null;uniqueIndex:idx_wishlist_user_project;size:36"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for WishlistItem
func (WishlistItem) TableName() string {
	return "wishlist_items"
}
