package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ardipermana59/hbus/internal/core/domain"
)

// txRunnerStub runs the unit of work directly; transactional behavior itself
// is covered by the integration suite.
type txRunnerStub struct{}

func (txRunnerStub) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) Create(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) List(ctx context.Context, filters domain.TaskFilters) ([]domain.Task, error) {
	args := m.Called(ctx, filters)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, task domain.Task) (domain.Task, error) {
	args := m.Called(ctx, task)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *taskRepositoryMock) StatsByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	args := m.Called(ctx)

	var stats []domain.StatusCount
	if value := args.Get(0); value != nil {
		stats = value.([]domain.StatusCount)
	}
	return stats, args.Error(1)
}

func (m *taskRepositoryMock) StatsByUser(ctx context.Context) ([]domain.UserTaskCount, error) {
	args := m.Called(ctx)

	var stats []domain.UserTaskCount
	if value := args.Get(0); value != nil {
		stats = value.([]domain.UserTaskCount)
	}
	return stats, args.Error(1)
}

func (m *taskRepositoryMock) RecentInProgress(ctx context.Context, limit int) ([]domain.Task, error) {
	args := m.Called(ctx, limit)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

type taskLogRepositoryMock struct {
	mock.Mock
}

func (m *taskLogRepositoryMock) Append(ctx context.Context, in domain.AppendLogInput) (domain.TaskLogEntry, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.TaskLogEntry), args.Error(1)
}

func (m *taskLogRepositoryMock) ListByTask(ctx context.Context, taskID uint64) ([]domain.TaskLogEntry, error) {
	args := m.Called(ctx, taskID)

	var entries []domain.TaskLogEntry
	if value := args.Get(0); value != nil {
		entries = value.([]domain.TaskLogEntry)
	}
	return entries, args.Error(1)
}

func (m *taskLogRepositoryMock) ListAll(ctx context.Context, filters domain.LogFilters) ([]domain.TaskLogEntry, error) {
	args := m.Called(ctx, filters)

	var entries []domain.TaskLogEntry
	if value := args.Get(0); value != nil {
		entries = value.([]domain.TaskLogEntry)
	}
	return entries, args.Error(1)
}

func (m *taskLogRepositoryMock) MostActiveUser(ctx context.Context) (*domain.UserActivity, error) {
	args := m.Called(ctx)

	var activity *domain.UserActivity
	if value := args.Get(0); value != nil {
		activity = value.(*domain.UserActivity)
	}
	return activity, args.Error(1)
}

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) Create(ctx context.Context, in domain.CreateUserInput) (domain.User, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userRepositoryMock) Update(ctx context.Context, id uint64, in domain.UpdateUserInput) (domain.User, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *userRepositoryMock) EmailTaken(ctx context.Context, email string, excludeID uint64) (bool, error) {
	args := m.Called(ctx, email, excludeID)
	return args.Bool(0), args.Error(1)
}
