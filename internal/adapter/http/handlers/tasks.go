package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ardipermana59/hbus/internal/adapter/http/dto"
	"github.com/ardipermana59/hbus/internal/adapter/http/mapper"
	"github.com/ardipermana59/hbus/internal/adapter/http/middleware"
	"github.com/ardipermana59/hbus/internal/adapter/http/validation"
	"github.com/ardipermana59/hbus/internal/core/domain"
	"github.com/ardipermana59/hbus/internal/core/ports"
	"github.com/ardipermana59/hbus/pkg/apiresponse"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apiresponse.ErrorWithDetails(apiresponse.MsgValidationError, lang, validation.FieldErrors(err, lang)),
		)
		return
	}

	input, fieldErrs := validation.BuildCreateTaskInput(req, middleware.CurrentUser(c).UserID, lang)
	if fieldErrs != nil {
		c.JSON(
			http.StatusBadRequest,
			apiresponse.ErrorWithDetails(apiresponse.MsgValidationError, lang, fieldErrs),
		)
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), input)
	if err != nil {
		zap.L().Error("failed to create task", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apiresponse.Error(apiresponse.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, apiresponse.Success(apiresponse.MsgTaskCreated, lang, mapper.ToTaskItem(task)))
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)

	var query dto.ListTasksQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apiresponse.ErrorWithDetails(apiresponse.MsgValidationError, lang, validation.FieldErrors(err, lang)),
		)
		return
	}

	tasks, err := h.taskService.ListTasks(c.Request.Context(), validation.BuildTaskFilters(query))
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apiresponse.Error(apiresponse.MsgFailListTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, apiresponse.Success(apiresponse.MsgTasksFetched, lang, mapper.ToTaskItems(tasks)))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, logs, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, apiresponse.Error(apiresponse.MsgTaskNotFound, lang))
			return
		}

		zap.L().Error("failed to get task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apiresponse.Error(apiresponse.MsgFailGetTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, apiresponse.Success(apiresponse.MsgTaskFetched, lang, mapper.ToTaskDetail(task, logs)))
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apiresponse.ErrorWithDetails(apiresponse.MsgValidationError, lang, validation.FieldErrors(err, lang)),
		)
		return
	}

	task, err := h.taskService.UpdateTask(
		c.Request.Context(),
		taskID,
		middleware.CurrentUser(c).UserID,
		validation.BuildUpdateTaskInput(req),
	)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, apiresponse.Error(apiresponse.MsgTaskNotFound, lang))
			return
		}

		zap.L().Error("failed to update task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apiresponse.Error(apiresponse.MsgFailUpdateTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, apiresponse.Success(apiresponse.MsgTaskUpdated, lang, mapper.ToTaskItem(task)))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	task, err := h.taskService.DeleteTask(c.Request.Context(), taskID, middleware.CurrentUser(c).UserID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(http.StatusNotFound, apiresponse.Error(apiresponse.MsgTaskNotFound, lang))
			return
		}

		zap.L().Error("failed to delete task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apiresponse.Error(apiresponse.MsgFailDeleteTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, apiresponse.Success(apiresponse.MsgTaskDeleted, lang, mapper.ToTaskItem(task)))
}
