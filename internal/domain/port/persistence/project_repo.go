package persistence

import (
	"context"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
)

// ProjectListFilter narrows and pages project listings
type ProjectListFilter struct {
	Status   entity.ProjectStatus
	AuthorID string
	Limit    int
	Offset   int
}

// ProjectRepository defines essential methods to interact with project data
type ProjectRepository interface {
	// GetByID retrieves a project by ID with its buyer set loaded
	//
	// Possible errors:
	// - ErrProjectNotFound: if the project doesn't exist
	// - ErrDatabaseConnection: if the database connection fails
	GetByID(ctx context.Context, id string) (*entity.Project, error)

	// Create saves a new project listing
	Create(ctx context.Context, project *entity.Project) error

	// Update persists mutable listing fields (title, description, pricing, status)
	Update(ctx context.Context, project *entity.Project) error

	// Delete removes a project listing
	Delete(ctx context.Context, id string) error

	// List returns projects matching the filter plus the unpaged total
	List(ctx context.Context, filter ProjectListFilter) ([]*entity.Project, int64, error)

	// UpdateStatus moves the project to a new lifecycle state
	UpdateStatus(ctx context.Context, id string, status entity.ProjectStatus) error

	// AddBuyer inserts the user into the buyer set and increments
	// purchase_count, both only when the user was not already a buyer.
	// The insert-if-absent and the counter increment are one atomic unit.
	// Returns true only on first insertion.
	AddBuyer(ctx context.Context, projectID, userID string) (bool, error)

	// IsBuyer checks buyer-set membership without loading the project
	IsBuyer(ctx context.Context, projectID, userID string) (bool, error)

	// IncrementViewCount bumps the project view counter
	IncrementViewCount(ctx context.Context, id string) error

	// IncrementDownloadCount bumps the project download counter
	IncrementDownloadCount(ctx context.Context, id string) error
}
