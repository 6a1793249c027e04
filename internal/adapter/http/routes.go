package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ardipermana59/hbus/internal/adapter/http/handlers"
	"github.com/ardipermana59/hbus/internal/adapter/http/middleware"
	"github.com/ardipermana59/hbus/pkg/apiresponse"
)

// Handlers bundles everything RegisterRoutes wires into the engine.
type Handlers struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	Users     *handlers.UserHandler
	Tasks     *handlers.TaskHandler
	Logs      *handlers.TaskLogHandler
	Dashboard *handlers.DashboardHandler
}

func RegisterRoutes(r *gin.Engine, jwtSecret []byte, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
	}

	v1 := api.Group("/v1")
	v1.POST("/login", h.Auth.Login)

	// Everything below is manager-only; members have no exposed operations.
	protected := v1.Group("")
	protected.Use(middleware.RequireAuth(jwtSecret), middleware.RequireManager())
	{
		protected.GET("/users", h.Users.ListUsers)
		protected.GET("/users/:id", h.Users.GetUser)
		protected.POST("/users", h.Users.CreateUser)
		protected.PUT("/users/:id", h.Users.UpdateUser)
		protected.DELETE("/users/:id", h.Users.DeleteUser)

		protected.GET("/tasks", h.Tasks.ListTasks)
		protected.GET("/tasks/:id", h.Tasks.GetTask)
		protected.POST("/tasks", h.Tasks.CreateTask)
		protected.PUT("/tasks/:id", h.Tasks.UpdateTask)
		protected.DELETE("/tasks/:id", h.Tasks.DeleteTask)

		protected.GET("/task-logs", h.Logs.ListLogs)
		protected.GET("/task-logs/:taskId", h.Logs.ListLogsByTask)

		protected.GET("/dashboard", h.Dashboard.GetDashboard)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(
			http.StatusNotFound,
			apiresponse.Error(apiresponse.MsgEndpointNotFound, middleware.GetLang(c)),
		)
	})
}
