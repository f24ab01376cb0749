package model

import (
	"time"
)

// User represents the database model for marketplace accounts
type User struct {
	ID            string    `gorm:"primaryKey;size:36"`
	Email         string    `gorm:"uniqueIndex;not null;size:255"`
	PasswordHash  string    `gorm:"not null;size:255"`
	FullName      string    `gorm:"size:255"`
	Role          string    `gorm:"not null;size:20;default:user"`
	EmailVerified bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
