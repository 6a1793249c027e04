package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ardipermana59/hbus/internal/adapter/http/dto"
	"github.com/ardipermana59/hbus/internal/adapter/http/mapper"
	"github.com/ardipermana59/hbus/internal/adapter/http/middleware"
	"github.com/ardipermana59/hbus/internal/adapter/http/validation"
	"github.com/ardipermana59/hbus/internal/core/ports"
	"github.com/ardipermana59/hbus/pkg/apiresponse"
)

type TaskLogHandler struct {
	logService ports.TaskLogService
}

func NewTaskLogHandler(logService ports.TaskLogService) *TaskLogHandler {
	return &TaskLogHandler{logService: logService}
}

func (h *TaskLogHandler) ListLogs(c *gin.Context) {
	lang := middleware.GetLang(c)

	var query dto.ListLogsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apiresponse.ErrorWithDetails(apiresponse.MsgValidationError, lang, validation.FieldErrors(err, lang)),
		)
		return
	}

	logs, err := h.logService.ListAll(c.Request.Context(), validation.BuildLogFilters(query))
	if err != nil {
		zap.L().Error("failed to list task logs", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apiresponse.Error(apiresponse.MsgFailListLogs, lang),
		)
		return
	}

	c.JSON(http.StatusOK, apiresponse.Success(apiresponse.MsgLogsFetched, lang, mapper.ToTaskLogItems(logs)))
}

func (h *TaskLogHandler) ListLogsByTask(c *gin.Context) {
	lang := middleware.GetLang(c)

	taskID, ok := parseIDParam(c, "taskId")
	if !ok {
		return
	}

	logs, err := h.logService.ListByTask(c.Request.Context(), taskID)
	if err != nil {
		zap.L().Error("failed to list task logs", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apiresponse.Error(apiresponse.MsgFailListLogs, lang),
		)
		return
	}

	c.JSON(http.StatusOK, apiresponse.Success(apiresponse.MsgLogsFetched, lang, mapper.ToTaskLogItems(logs)))
}
