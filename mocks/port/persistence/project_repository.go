package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/projXchange/Backend-v1-sub000/internal/domain/entity"
	"github.com/projXchange/Backend-v1-sub000/internal/domain/port/persistence"
)

// MockProjectRepository is a mock implementation of the ProjectRepository port
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	args := m.Called(ctx, id)
	var project *entity.Project
	if args.Get(0) != nil {
		project = args.Get(0).(*entity.Project)
	}
	return project, args.Error(1)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *entity.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *entity.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) List(ctx context.Context, filter persistence.ProjectListFilter) ([]*entity.Project, int64, error) {
	args := m.Called(ctx, filter)
	var projects []*entity.Project
	if args.Get(0) != nil {
		projects = args.Get(0).([]*entity.Project)
	}
	return projects, args.Get(1).(int64), args.Error(2)
}

func (m *MockProjectRepository) UpdateStatus(ctx context.Context, id string, status entity.ProjectStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockProjectRepository) AddBuyer(ctx context.Context, projectID, userID string) (bool, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectRepository) IsBuyer(ctx context.Context, projectID, userID string) (bool, error) {
	args := m.Called(ctx, projectID, userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectRepository) IncrementViewCount(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) IncrementDownloadCount(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
