package persistence

import (
	"context"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
)

// DownloadRepository appends to the download log
type DownloadRepository interface {
	// Create appends a download log row
	Create(ctx context.Context, download *entity.Download) error

	// ListByUser returns the user's download history, most recent first
	ListByUser(ctx context.Context, userID string) ([]*entity.Download, error)
}
