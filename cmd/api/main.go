package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "github.com/ardipermana59/hbus/internal/adapter/db"
	httpadapter "github.com/ardipermana59/hbus/internal/adapter/http"
	"github.com/ardipermana59/hbus/internal/adapter/http/handlers"
	httpmiddleware "github.com/ardipermana59/hbus/internal/adapter/http/middleware"
	"github.com/ardipermana59/hbus/internal/adapter/http/validation"
	appservice "github.com/ardipermana59/hbus/internal/app/service"
	"github.com/ardipermana59/hbus/internal/config"
	"github.com/ardipermana59/hbus/pkg/translator"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageID, translator.LanguageEn},
	})
	validation.Init()

	cfg := config.LoadConfig()
	if cfg.JwtSecret == "" {
		logger.Fatal("JWT_SECRET is required")
	}

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	taskRepository := dbadapter.NewTaskRepository(db)
	logRepository := dbadapter.NewTaskLogRepository(db)
	userRepository := dbadapter.NewUserRepository(db)
	txRunner := dbadapter.NewTxRunner(db)

	jwtSecret := []byte(cfg.JwtSecret)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, jwtSecret, httpadapter.Handlers{
		Health:    handlers.NewHealthHandler(db),
		Auth:      handlers.NewAuthHandler(appservice.NewAuthService(userRepository, jwtSecret)),
		Users:     handlers.NewUserHandler(appservice.NewUserService(userRepository)),
		Tasks:     handlers.NewTaskHandler(appservice.NewTaskService(taskRepository, logRepository, txRunner)),
		Logs:      handlers.NewTaskLogHandler(appservice.NewTaskLogService(logRepository)),
		Dashboard: handlers.NewDashboardHandler(appservice.NewDashboardService(taskRepository, logRepository)),
	})

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
