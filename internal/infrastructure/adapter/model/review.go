package model

import (
	"time"
)

// Review represents the database model for reviews, unique per (user, project)
type Review struct {
	ID                 string    `gorm:"primaryKey;size:36"`
	UserID             string    `gorm:"not null;uniqueIndex:idx_review_user_project;size:36"`
	ProjectID          string    `gorm:"not null;uniqueIndex:idx_review_user_project;index;size:36"`
	Rating             int       `gorm:"not null"`
	Comment            string    `gorm:"type:text"`
	IsVerifiedPurchase bool      `gorm:"not null;default:false"`
	IsApproved         bool      `gorm:"not null;default:true"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName specifies the table name for Review
func (Review) TableName() string {
	return "reviews"
}
