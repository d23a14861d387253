package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"

	"github.com/pmsa-qul/artsfest/config"
	"github.com/pmsa-qul/artsfest/db"
	"github.com/pmsa-qul/artsfest/handlers"
	"github.com/pmsa-qul/artsfest/live"
	"github.com/pmsa-qul/artsfest/middleware"
	"github.com/pmsa-qul/artsfest/repositories"
	api "github.com/pmsa-qul/artsfest/routes"
	"github.com/pmsa-qul/artsfest/services"
	"github.com/pmsa-qul/artsfest/storage"
)

// @title Arts Fest Results API
// @version 1.0
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	appCtx, stopApp := context.WithCancel(context.Background())
	defer stopApp()

	// Подключение к базе данных
	dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second, logger)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := dbConn.Close(); err != nil {
			logger.Error("failed to close database connection", slog.Any("error", err))
		} else {
			logger.Info("database connection closed")
		}
	}()
	logger.Info("database connection established")

	// Хранилище хайлайтов (Cloudflare R2) необязательно: без него галерея пустая.
	var blobStore storage.BlobStore
	if cfg.BlobStoreConfigured() {
		blobStore, err = storage.NewCloudflareR2Store(appCtx, storage.CloudflareR2Config{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 store", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 store initialized", slog.String("bucket", cfg.R2BucketName))
	} else {
		logger.Warn("R2 credentials not set, highlights are disabled")
	}

	// Инициализация WebSocket Hub
	wsHub := live.NewHub(logger)
	go wsHub.Run(appCtx)
	logger.Info("WebSocket Hub started")

	// Инициализация репозиториев
	teamRepo := repositories.NewPostgresTeamRepository(dbConn)
	studentRepo := repositories.NewPostgresStudentRepository(dbConn)
	eventRepo := repositories.NewPostgresEventRepository(dbConn)
	resultRepo := repositories.NewPostgresResultRepository(dbConn)
	adminRepo := repositories.NewPostgresAdminRepository(dbConn)
	logger.Info("Repositories initialized")

	// Инициализация сервисов
	authService := services.NewAuthService(adminRepo)
	highlightService := services.NewHighlightService(blobStore, cfg.HighlightsPrefix, logger)
	resultsService := services.NewResultsService(
		teamRepo,
		eventRepo,
		studentRepo,
		resultRepo,
		highlightService,
		wsHub,
		cfg.TickerMessages,
		logger,
	)
	entryService := services.NewEntryService(
		teamRepo,
		eventRepo,
		studentRepo,
		resultRepo,
		resultsService,
		logger,
	)
	logger.Info("Services initialized")

	// Периодическая рассылка результатов на экраны
	go live.RunRefresh(appCtx, cfg.LiveRefreshInterval, resultsService.PublishLatest, logger)

	// Инициализация обработчиков HTTP
	router := chi.NewRouter()
	api.SetupRoutes(
		router,
		api.Handlers{
			Auth:       handlers.NewAuthHandler(authService, cfg.JWTSecretKey),
			Results:    handlers.NewResultsHandler(resultsService),
			Admin:      handlers.NewAdminHandler(entryService),
			Highlights: handlers.NewHighlightHandler(highlightService),
			WebSocket:  handlers.NewWebSocketHandler(wsHub, resultsService, cfg.CORSAllowedOrigins, logger),
		},
		api.Options{
			AllowedOrigins: cfg.CORSAllowedOrigins,
			Authenticate:   middleware.Authenticate([]byte(cfg.JWTSecretKey), authService, logger),
			LoginLimiter:   middleware.NewIPRateLimiter(cfg.LoginRatePerMinute, logger),
		},
	)
	logger.Info("Routes configured")

	// Настройка и запуск HTTP-сервера
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	// Ожидание сигнала завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			stopApp()
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		// Останавливаем рассылку и закрываем WebSocket-клиентов до остановки сервера.
		stopApp()

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
