package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ardipermana59/hbus/internal/adapter/http/mapper"
	"github.com/ardipermana59/hbus/internal/adapter/http/middleware"
	"github.com/ardipermana59/hbus/internal/core/ports"
	"github.com/ardipermana59/hbus/pkg/apiresponse"
)

type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	lang := middleware.GetLang(c)

	dashboard, err := h.dashboardService.Dashboard(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to build dashboard", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apiresponse.Error(apiresponse.MsgFailGetDashboard, lang),
		)
		return
	}

	c.JSON(http.StatusOK, apiresponse.Success(apiresponse.MsgDashboardFetched, lang, mapper.ToDashboardData(dashboard)))
}
