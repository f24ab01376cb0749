package entity

import (
	"time"

	"github.com/google/uuid"

	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	tport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
)

// DownloadType distinguishes gated full downloads from free demo/preview ones
type DownloadType string

// Download types. Only "full" requires verified purchase or authorship.
const (
	DownloadFull    DownloadType = "full"
	DownloadDemo    DownloadType = "demo"
	DownloadPreview DownloadType = "preview"
)

// IsValidDownloadType validates if the type is one of the allowed values
func IsValidDownloadType(t string) bool {
	return t == string(DownloadFull) || t == string(DownloadDemo) || t == string(DownloadPreview)
}

// Download is an append-only log row; repeat downloads all count
type Download struct {
	ID           string
	UserID       string
	ProjectID    string
	DownloadType DownloadType
	CreatedAt    time.Time
}

// NewDownload creates a download log entry
func NewDownload(userID, projectID string, downloadType DownloadType, timeProvider tport.TimeProvider) (*Download, error) {
	if userID == "" || projectID == "" {
		return nil, errs.ErrInvalidRequest
	}
	if !IsValidDownloadType(string(downloadType)) {
		return nil, errs.ErrInvalidDownloadType
	}
	return &Download{
		ID:           uuid.NewString(),
		UserID:       userID,
		ProjectID:    projectID,
		DownloadType: downloadType,
		CreatedAt:    timeProvider.Now(),
	}, nil
}
