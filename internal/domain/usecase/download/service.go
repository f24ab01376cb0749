package download

import (
	"context"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/port/persistence"
)

// Service gates full downloads behind verified purchase or authorship and
// keeps the append-only download log consistent with the project counter.
type Service struct {
	uow          persistence.UnitOfWork
	projects     persistence.ProjectRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a download service
func NewService(
	uow persistence.UnitOfWork,
	projects persistence.ProjectRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		projects:     projects,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// DownloadProject authorizes a download and records it. Full downloads
// require buyer-set membership or authorship; demo and preview are free.
// Repeat downloads all count; the log append and counter increment happen in
// one database transaction.
func (s *Service) DownloadProject(ctx context.Context, userID, projectID string, downloadType entity.DownloadType) (*entity.Download, error) {
	if !entity.IsValidDownloadType(string(downloadType)) {
		return nil, errs.ErrInvalidDownloadType
	}

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !project.IsPurchasable() {
		return nil, errs.ErrProjectNotPurchasable
	}

	if downloadType == entity.DownloadFull {
		if !project.HasBuyer(userID) && !project.IsAuthor(userID) {
			s.logger.Warn("Full download denied", map[string]any{
				"user_id":    userID,
				"project_id": projectID,
			})
			return nil, errs.ErrDownloadForbidden
		}
	}

	record, err := entity.NewDownload(userID, projectID, downloadType, s.timeProvider)
	if err != nil {
		return nil, err
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	downloadRepo := s.uow.GetDownloadRepository(txCtx)
	projRepo := s.uow.GetProjectRepository(txCtx)

	if err := downloadRepo.Create(txCtx, record); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}
	if err := projRepo.IncrementDownloadCount(txCtx, projectID); err != nil {
		_ = s.uow.Rollback(txCtx)
		return nil, err
	}
	if err := s.uow.Commit(txCtx); err != nil {
		return nil, err
	}

	s.logger.Info("Download recorded", map[string]any{
		"user_id":       userID,
		"project_id":    projectID,
		"download_type": downloadType,
	})
	return record, nil
}

// History returns the user's download log, most recent first
func (s *Service) History(ctx context.Context, userID string) ([]*entity.Download, error) {
	return s.uow.GetDownloadRepository(ctx).ListByUser(ctx, userID)
}
