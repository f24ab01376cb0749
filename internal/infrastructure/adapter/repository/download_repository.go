package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/model"
)

// DownloadRepository implements the DownloadRepository port using GORM.
// The download log is append-only; rows are never updated or deleted.
type DownloadRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewDownloadRepository creates a new DownloadRepository instance
func NewDownloadRepository(db *gorm.DB, logger coreport.Logger) *DownloadRepository {
	return &DownloadRepository{
		db:     db,
		logger: logger,
	}
}

// Create appends a download log row
func (r *DownloadRepository) Create(ctx context.Context, download *entity.Download) error {
	m := model.Download{
		ID:           download.ID,
		UserID:       download.UserID,
		ProjectID:    download.ProjectID,
		DownloadType: string(download.DownloadType),
		CreatedAt:    download.CreatedAt,
	}
	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		r.logger.Error("Failed to log download", map[string]any{
			"user_id":    download.UserID,
			"project_id": download.ProjectID,
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// ListByUser returns the user's download history, most recent first
func (r *DownloadRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Download, error) {
	var models []model.Download
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	downloads := make([]*entity.Download, 0, len(models))
	for _, m := range models {
		downloads = append(downloads, &entity.Download{
			ID:           m.ID,
			UserID:       m.UserID,
			ProjectID:    m.ProjectID,
			DownloadType: entity.DownloadType(m.DownloadType),
			CreatedAt:    m.CreatedAt,
		})
	}
	return downloads, nil
}
