package dto

import (
	"time"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
)

// DownloadRequest names the artifact flavor to download
type DownloadRequest struct {
	Type string `json:"type" binding:"required"`
}

// DownloadResponse is the API view of one download log row
type DownloadResponse struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	DownloadType string    `json:"download_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// DownloadListResponse wraps a user's download history
type DownloadListResponse struct {
	Downloads []DownloadResponse `json:"downloads"`
}

// NewDownloadResponse maps a download entity to its API representation
func NewDownloadResponse(download *entity.Download) DownloadResponse {
	return DownloadResponse{
		ID:           download.ID,
		ProjectID:    download.ProjectID,
		DownloadType: string(download.DownloadType),
		CreatedAt:    download.CreatedAt,
	}
}
