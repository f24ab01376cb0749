package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	errs "github.com/projXchange/Backend-v1-sub000/internal/domain/error"
	coreport "github.com/projXchange/Backend-v1-sub000/internal/domain/port/core"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/port/persistence"
	"github.com/projXchange/Backend-v1-sub000/internal/infrastructure/adapter/model"
)

// ProjectRepository implements the ProjectRepository port using GORM
type ProjectRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewProjectRepository creates a new ProjectRepository instance
func NewProjectRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *ProjectRepository {
	return &ProjectRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *ProjectRepository) entityToModel(project *entity.Project) model.Project {
	m := model.Project{
		ID:            project.ID,
		AuthorID:      project.AuthorID,
		Title:         project.Title,
		Description:   project.Description,
		Status:        string(project.Status),
		PurchaseCount: project.PurchaseCount,
		ViewCount:     project.ViewCount,
		DownloadCount: project.DownloadCount,
		CreatedAt:     project.CreatedAt,
		UpdatedAt:     project.UpdatedAt,
	}
	if project.Pricing != nil {
		currency := string(project.Pricing.Currency)
		m.SalePrice = decimal.NullDecimal{Decimal: project.Pricing.SalePrice, Valid: true}
		m.OriginalPrice = decimal.NullDecimal{Decimal: project.Pricing.OriginalPrice, Valid: true}
		m.Currency = &currency
	}
	return m
}

func (r *ProjectRepository) modelToEntity(m model.Project) *entity.Project {
	project := &entity.Project{
		ID:            m.ID,
		AuthorID:      m.AuthorID,
		Title:         m.Title,
		Description:   m.Description,
		Status:        entity.ProjectStatus(m.Status),
		PurchaseCount: m.PurchaseCount,
		ViewCount:     m.ViewCount,
		DownloadCount: m.DownloadCount,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
	if m.Currency != nil {
		project.Pricing = &entity.Pricing{
			SalePrice:     m.SalePrice.Decimal,
			OriginalPrice: m.OriginalPrice.Decimal,
			Currency:      entity.Currency(*m.Currency),
		}
	}
	for _, buyer := range m.Buyers {
		project.Buyers = append(project.Buyers, buyer.UserID)
	}
	return project
}

// GetByID retrieves a project by ID with its buyer set loaded
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	var m model.Project
	result := r.db.WithContext(ctx).Preload("Buyers").First(&m, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrProjectNotFound
		}
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return r.modelToEntity(m), nil
}

// Create saves a new project listing
func (r *ProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	m := r.entityToModel(project)
	result := r.db.WithContext(ctx).Omit("Buyers").Create(&m)
	if result.Error != nil {
		r.logger.Error("Failed to create project", map[string]any{
			"project_id": project.ID,
			"error":      result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// Update persists mutable listing fields. The buyer set and the counters are
// never written here; they move only through AddBuyer and the increment
// methods.
func (r *ProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	m := r.entityToModel(project)
	result := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", project.ID).
		Updates(map[string]interface{}{
			"title":          m.Title,
			"description":    m.Description,
			"status":         m.Status,
			"sale_price":     m.SalePrice,
			"original_price": m.OriginalPrice,
			"currency":       m.Currency,
			"updated_at":     m.UpdatedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrProjectNotFound
	}
	return nil
}

// Delete removes a project listing along with its buyer set
func (r *ProjectRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("project_id = ?", id).Delete(&model.ProjectBuyer{}).Error; err != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	result := r.db.WithContext(ctx).Delete(&model.Project{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrProjectNotFound
	}
	return nil
}

// List returns projects matching the filter plus the unpaged total. Buyer
// sets are not loaded for listings.
func (r *ProjectRepository) List(ctx context.Context, filter persistence.ProjectListFilter) ([]*entity.Project, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Project{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.AuthorID != "" {
		query = query.Where("author_id = ?", filter.AuthorID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	var models []model.Project
	err := query.Order("created_at DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&models).Error
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}

	projects := make([]*entity.Project, 0, len(models))
	for _, m := range models {
		projects = append(projects, r.modelToEntity(m))
	}
	return projects, total, nil
}

// UpdateStatus moves the project to a new lifecycle state
func (r *ProjectRepository) UpdateStatus(ctx context.Context, id string, status entity.ProjectStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrProjectNotFound
	}
	return nil
}

// AddBuyer inserts the user into the buyer set and increments purchase_count.
// The insert relies on the (project_id, user_id) unique index: a concurrent
// or repeated insert affects zero rows and the counter is left alone, which
// keeps purchase_count equal to the buyer set size.
func (r *ProjectRepository) AddBuyer(ctx context.Context, projectID, userID string) (bool, error) {
	buyer := model.ProjectBuyer{
		ProjectID: projectID,
		UserID:    userID,
		CreatedAt: r.timeProvider.Now(),
	}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&buyer)
	if result.Error != nil {
		r.logger.Error("Failed to add buyer", map[string]any{
			"project_id": projectID,
			"user_id":    userID,
			"error":      result.Error.Error(),
		})
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return false, nil
	}

	update := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", projectID).
		UpdateColumn("purchase_count", gorm.Expr("purchase_count + 1"))
	if update.Error != nil {
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, update.Error.Error())
	}
	if update.RowsAffected == 0 {
		return false, errs.ErrProjectNotFound
	}
	return true, nil
}

// IsBuyer checks buyer-set membership without loading the project
func (r *ProjectRepository) IsBuyer(ctx context.Context, projectID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProjectBuyer{}).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return count > 0, nil
}

// IncrementViewCount bumps the project view counter
func (r *ProjectRepository) IncrementViewCount(ctx context.Context, id string) error {
	return r.incrementCounter(ctx, id, "view_count")
}

// IncrementDownloadCount bumps the project download counter
func (r *ProjectRepository) IncrementDownloadCount(ctx context.Context, id string) error {
	return r.incrementCounter(ctx, id, "download_count")
}

func (r *ProjectRepository) incrementCounter(ctx context.Context, id, column string) error {
	result := r.db.WithContext(ctx).Model(&model.Project{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errs.ErrProjectNotFound
	}
	return nil
}
