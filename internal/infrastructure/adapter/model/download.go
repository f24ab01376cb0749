package model

import (
	"time"
)

// Download represents the append-only download log
type Download struct {
	ID           string    `gorm:"primaryKey;size:36"`
	UserID       string    `gorm:"not null;index;size:36"`
	ProjectID    string    `gorm:"not null;index;size:36"`
	DownloadType string    `gorm:"not null;size:20"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for Download
func (Download) TableName() string {
	return "downloads"
}
