package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ardipermana59/hbus/internal/adapter/http/dto"
	"github.com/ardipermana59/hbus/internal/adapter/http/handlers"
	"github.com/ardipermana59/hbus/internal/adapter/http/middleware"
	"github.com/ardipermana59/hbus/internal/core/domain"
	"github.com/ardipermana59/hbus/pkg/authtoken"
	"github.com/ardipermana59/hbus/pkg/translator"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) CreateTask(ctx context.Context, in domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, id uint64) (domain.Task, []domain.TaskLogEntry, error) {
	args := m.Called(ctx, id)

	var logs []domain.TaskLogEntry
	if value := args.Get(1); value != nil {
		logs = value.([]domain.TaskLogEntry)
	}
	return args.Get(0).(domain.Task), logs, args.Error(2)
}

func (m *taskServiceMock) ListTasks(ctx context.Context, filters domain.TaskFilters) ([]domain.Task, error) {
	args := m.Called(ctx, filters)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, id, actorID uint64, in domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, id, actorID, in)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id, actorID uint64) (domain.Task, error) {
	args := m.Called(ctx, id, actorID)
	return args.Get(0).(domain.Task), args.Error(1)
}

// asPrincipal injects an authenticated principal the way RequireAuth does.
func asPrincipal(claims *authtoken.Claims) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("principal", claims)
		c.Next()
	}
}

func managerPrincipal() gin.HandlerFunc {
	return asPrincipal(&authtoken.Claims{UserID: 5, Email: "manager@example.com", Role: "manager"})
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	createdAt := time.Date(2026, 2, 13, 10, 20, 30, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, mock.MatchedBy(func(in domain.CreateTaskInput) bool {
		return in.Title == "Prepare report" && in.CreatedBy == 5
	})).Return(domain.Task{
		ID:        1,
		Title:     "Prepare report",
		Status:    domain.TaskStatusNotStarted,
		CreatedBy: 5,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.POST("/api/v1/tasks", middleware.LanguageMiddleware(), managerPrincipal(), handler.CreateTask)

	body := `{"title": "Prepare report"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got successEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.Success)
	require.Equal(t, "Task berhasil dibuat", got.Message)

	var item dto.TaskItem
	require.NoError(t, json.Unmarshal(got.Data, &item))
	require.Equal(t, uint64(1), item.ID)
	require.Equal(t, "Belum Dimulai", item.Status)
	require.Equal(t, uint64(5), item.CreatedBy)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_MissingTitle(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.POST("/api/v1/tasks", middleware.LanguageMiddleware(), managerPrincipal(), handler.CreateTask)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.False(t, got.Success)
	require.Equal(t, "Validation Error", got.Message)
	require.Len(t, got.Errors, 1)
	require.Equal(t, "title", got.Errors[0].Field)
	require.Equal(t, "title wajib diisi", got.Errors[0].Message)
	serviceMock.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}

func TestTaskHandler_CreateTask_InvalidStatus(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.POST("/api/v1/tasks", middleware.LanguageMiddleware(), managerPrincipal(), handler.CreateTask)

	body := `{"title": "Prepare report", "status": "Ditunda"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Errors, 1)
	require.Equal(t, "status", got.Errors[0].Field)
}

func TestTaskHandler_CreateTask_EndDateBeforeStartDate(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.POST("/api/v1/tasks", middleware.LanguageMiddleware(), managerPrincipal(), handler.CreateTask)

	body := `{"title": "Prepare report", "start_date": "2024-01-10", "end_date": "2024-01-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Errors, 1)
	require.Equal(t, "end_date", got.Errors[0].Field)
	require.Equal(t, "Tanggal selesai harus lebih besar dari tanggal mulai", got.Errors[0].Message)
	serviceMock.AssertNotCalled(t, "CreateTask", mock.Anything, mock.Anything)
}

func TestTaskHandler_GetTask_IncludesLogs(t *testing.T) {
	createdAt := time.Date(2026, 2, 13, 10, 20, 30, 0, time.UTC)
	userName := "Budi"

	serviceMock := new(taskServiceMock)
	serviceMock.On("GetTask", mock.Anything, uint64(1)).Return(
		domain.Task{ID: 1, Title: "Prepare report", Status: domain.TaskStatusInProgress, CreatedBy: 5, CreatedAt: createdAt, UpdatedAt: createdAt},
		[]domain.TaskLogEntry{
			{ID: 1, TaskID: 1, UserID: 5, Action: `Task "Prepare report" dibuat`, UserName: &userName, CreatedAt: createdAt},
			{ID: 2, TaskID: 1, UserID: 5, Action: `Task "Prepare report" diupdate`, UserName: &userName, CreatedAt: createdAt},
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.GET("/api/v1/tasks/:id", middleware.LanguageMiddleware(), managerPrincipal(), handler.GetTask)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got successEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	var item dto.TaskItem
	require.NoError(t, json.Unmarshal(got.Data, &item))
	require.Equal(t, "Sedang Dikerjakan", item.Status)
	require.Len(t, item.Logs, 2)
	require.Equal(t, `Task "Prepare report" dibuat`, item.Logs[0].Action)
	require.Equal(t, "Budi", *item.Logs[0].UserName)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GetTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("GetTask", mock.Anything, uint64(999)).Return(domain.Task{}, nil, domain.ErrTaskNotFound).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.GET("/api/v1/tasks/:id", middleware.LanguageMiddleware(), managerPrincipal(), handler.GetTask)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/999", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task tidak ditemukan", got.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GetTask_InvalidID(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.GET("/api/v1/tasks/:id", middleware.LanguageMiddleware(), managerPrincipal(), handler.GetTask)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/abc", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got errorEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "ID harus berupa angka positif", got.Message)
	serviceMock.AssertNotCalled(t, "GetTask", mock.Anything, mock.Anything)
}

func TestTaskHandler_ListTasks_ForwardsFilters(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListTasks", mock.Anything, mock.MatchedBy(func(filters domain.TaskFilters) bool {
		return filters.Status != nil && *filters.Status == domain.TaskStatusCompleted &&
			filters.AssignedTo != nil && *filters.AssignedTo == 3
	})).Return([]domain.Task{}, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.GET("/api/v1/tasks", middleware.LanguageMiddleware(), managerPrincipal(), handler.ListTasks)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks?status=Selesai&assigned_to=3", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpdateTask_PartialBody(t *testing.T) {
	updatedAt := time.Date(2026, 2, 14, 9, 0, 0, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("UpdateTask", mock.Anything, uint64(1), uint64(5), mock.MatchedBy(func(in domain.UpdateTaskInput) bool {
		// Only status travels; omitted fields stay nil.
		return in.Status != nil && *in.Status == domain.TaskStatusCompleted &&
			in.Title == nil && in.Description == nil && in.AssignedTo == nil
	})).Return(domain.Task{
		ID:        1,
		Title:     "Prepare report",
		Status:    domain.TaskStatusCompleted,
		CreatedBy: 5,
		UpdatedAt: updatedAt,
	}, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.PUT("/api/v1/tasks/:id", middleware.LanguageMiddleware(), managerPrincipal(), handler.UpdateTask)

	body := `{"status": "Selesai"}`
	req := httptest.NewRequest(http.MethodPut, "/api/v1/tasks/1", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got successEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task berhasil diupdate", got.Message)

	var item dto.TaskItem
	require.NoError(t, json.Unmarshal(got.Data, &item))
	require.Equal(t, "Selesai", item.Status)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_ReturnsSnapshot(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, uint64(1), uint64(5)).Return(
		domain.Task{ID: 1, Title: "Prepare report", Status: domain.TaskStatusCompleted, CreatedBy: 5},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.DELETE("/api/v1/tasks/:id", middleware.LanguageMiddleware(), managerPrincipal(), handler.DeleteTask)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/tasks/1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got successEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task berhasil dihapus", got.Message)

	var item dto.TaskItem
	require.NoError(t, json.Unmarshal(got.Data, &item))
	require.Equal(t, "Prepare report", item.Title)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("DeleteTask", mock.Anything, uint64(999), uint64(5)).Return(domain.Task{}, domain.ErrTaskNotFound).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.DELETE("/api/v1/tasks/:id", middleware.LanguageMiddleware(), managerPrincipal(), handler.DeleteTask)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/tasks/999", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_EnglishMessages(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("CreateTask", mock.Anything, mock.Anything).Return(domain.Task{ID: 1, Title: "Prepare report"}, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.POST("/api/v1/tasks", middleware.LanguageMiddleware(), managerPrincipal(), handler.CreateTask)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tasks", strings.NewReader(`{"title": "Prepare report"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got successEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task created successfully", got.Message)
	serviceMock.AssertExpectations(t)
}
