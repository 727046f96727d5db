package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "taskhub/internal/adapter/db"
	httpadapter "taskhub/internal/adapter/http"
	"taskhub/internal/adapter/http/handlers"
	httpmiddleware "taskhub/internal/adapter/http/middleware"
	appservice "taskhub/internal/app/service"
	"taskhub/internal/config"
	"taskhub/pkg/apierrors"
	"taskhub/pkg/translator"
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
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageFr},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Error(err))
	}

	errorWriter := apierrors.NewWriter(cfg.Debug())
	taskRepository := dbadapter.NewTaskRepository(db)
	taskService := appservice.NewTaskService(taskRepository)
	taskHandler := handlers.NewTaskHandler(taskService, errorWriter)
	healthHandler := handlers.NewHealthHandler(db)
	httpadapter.RegisterRoutes(r, healthHandler, taskHandler)

	addr := ":" + cfg.AppPort
	logger.Info("starting server", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
