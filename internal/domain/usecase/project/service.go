package project

import (
	"context"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/port/persistence"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/usecase/pricing"
)

// Service manages the project catalog: author CRUD, public browsing and the
// admin moderation lifecycle
type Service struct {
	projects     persistence.ProjectRepository
	pricing      *pricing.Engine
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a project catalog service
func NewService(
	projects persistence.ProjectRepository,
	pricingEngine *pricing.Engine,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		projects:     projects,
		pricing:      pricingEngine,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CreateProject lists a new project in draft state for the author
func (s *Service) CreateProject(ctx context.Context, authorID, title, description string, p *entity.Pricing) (*entity.Project, error) {
	project, err := entity.NewProject(authorID, title, description, p, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("Project created", map[string]any{
		"project_id": project.ID,
		"author_id":  authorID,
	})
	return project, nil
}

// UpdateRequest carries the optional listing fields an author may change.
// Nil means leave the field as is; Pricing set with ClearPricing false
// replaces the pricing block.
type UpdateRequest struct {
	Title        *string
	Description  *string
	Pricing      *entity.Pricing
	ClearPricing bool
}

// UpdateProject applies listing edits; author only
func (s *Service) UpdateProject(ctx context.Context, actorID, projectID string, req UpdateRequest) (*entity.Project, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !project.IsAuthor(actorID) {
		return nil, errs.ErrForbidden
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, errs.ErrInvalidRequest
		}
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ClearPricing {
		project.Pricing = nil
	} else if req.Pricing != nil {
		if !entity.IsValidCurrency(string(req.Pricing.Currency)) {
			return nil, errs.ErrInvalidCurrency
		}
		if req.Pricing.SalePrice.IsNegative() || req.Pricing.OriginalPrice.IsNegative() {
			return nil, errs.ErrInvalidAmount
		}
		project.Pricing = req.Pricing
	}
	project.UpdatedAt = s.timeProvider.Now()

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}

	s.logger.Info("Project updated", map[string]any{
		"project_id": project.ID,
		"author_id":  actorID,
	})
	return project, nil
}

// DeleteProject removes a listing; author or admin
func (s *Service) DeleteProject(ctx context.Context, actorID string, actorRole entity.Role, projectID string) error {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return err
	}
	if !project.IsAuthor(actorID) && actorRole != entity.RoleAdmin {
		return errs.ErrForbidden
	}

	if err := s.projects.Delete(ctx, projectID); err != nil {
		return err
	}

	s.logger.Info("Project deleted", map[string]any{
		"project_id": projectID,
		"actor_id":   actorID,
	})
	return nil
}

// ProjectView pairs a project with its derived pricing figures
type ProjectView struct {
	Project *entity.Project
	Pricing pricing.Info
}

// GetProject returns a listing with computed discount figures and bumps the
// view counter. The counter bump is best effort; a failure is logged and does
// not fail the read.
func (s *Service) GetProject(ctx context.Context, projectID string) (*ProjectView, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := s.projects.IncrementViewCount(ctx, projectID); err != nil {
		s.logger.Warn("View count increment failed", map[string]any{
			"project_id": projectID,
			"error":      err.Error(),
		})
	}

	return &ProjectView{
		Project: project,
		Pricing: s.pricing.ComputePricing(project.Pricing),
	}, nil
}

// ListProjects returns a filtered, paged catalog slice plus the unpaged total
func (s *Service) ListProjects(ctx context.Context, filter persistence.ProjectListFilter) ([]*ProjectView, int64, error) {
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	projects, total, err := s.projects.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	views := make([]*ProjectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, &ProjectView{
			Project: p,
			Pricing: s.pricing.ComputePricing(p.Pricing),
		})
	}
	return views, total, nil
}

// UpdateStatus moves a project through its moderation lifecycle; admin only.
// Approving a listing without pricing is allowed, but such a listing stays
// non-purchasable until the author sets a price.
func (s *Service) UpdateStatus(ctx context.Context, actorRole entity.Role, projectID string, status entity.ProjectStatus) (*entity.Project, error) {
	if actorRole != entity.RoleAdmin {
		return nil, errs.ErrForbidden
	}
	if !entity.IsValidProjectStatus(string(status)) {
		return nil, errs.ErrInvalidRequest
	}

	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if err := s.projects.UpdateStatus(ctx, projectID, status); err != nil {
		return nil, err
	}
	project.Status = status
	project.UpdatedAt = s.timeProvider.Now()

	s.logger.Info("Project status changed", map[string]any{
		"project_id": projectID,
		"status":     status,
	})
	return project, nil
}

// SubmitForReview moves the author's draft into the moderation queue
func (s *Service) SubmitForReview(ctx context.Context, actorID, projectID string) (*entity.Project, error) {
	project, err := s.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !project.IsAuthor(actorID) {
		return nil, errs.ErrForbidden
	}
	if project.Status != entity.ProjectStatusDraft {
		return nil, errs.ErrInvalidStatusTransition
	}

	if err := s.projects.UpdateStatus(ctx, projectID, entity.ProjectStatusPending); err != nil {
		return nil, err
	}
	project.Status = entity.ProjectStatusPending
	project.UpdatedAt = s.timeProvider.Now()

	s.logger.Info("Project submitted for review", map[string]any{
		"project_id": projectID,
		"author_id":  actorID,
	})
	return project, nil
}
