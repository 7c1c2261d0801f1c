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

	"github.com/Dosada05/arbitro/brackets"
	"github.com/Dosada05/arbitro/config"
	"github.com/Dosada05/arbitro/db"
	"github.com/Dosada05/arbitro/events"
	"github.com/Dosada05/arbitro/handlers"
	"github.com/Dosada05/arbitro/repositories"
	api "github.com/Dosada05/arbitro/routes"
	"github.com/Dosada05/arbitro/services"
	"github.com/Dosada05/arbitro/storage"
)

// @title Arbitro API
// @version 1.0
// @description Knockout brackets, leagues and match saves for football competitions.
// @BasePath /
func main() {
	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("storage", cfg.StorageBackend))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, checks, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open storage", slog.String("backend", cfg.StorageBackend), slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		} else {
			logger.Info("storage closed")
		}
	}()

	// Инициализация WebSocket Hub
	wsHub := brackets.NewHub()
	go wsHub.Run(ctx)
	logger.Info("WebSocket Hub started")

	notifiers := brackets.MultiNotifier{wsHub}
	if cfg.NATSURL != "" {
		publisher, err := events.NewNATSPublisher(cfg.NATSURL, cfg.NATSSubjectPrefix, logger)
		if err != nil {
			logger.Error("failed to connect to NATS", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := publisher.Close(); err != nil {
				logger.Error("failed to drain NATS connection", slog.Any("error", err))
			}
		}()
		notifiers = append(notifiers, publisher)
		checks["nats"] = publisher.Check
		logger.Info("NATS publisher connected", slog.String("prefix", cfg.NATSSubjectPrefix))
	}

	// Инициализация репозиториев
	tournamentRepo := repositories.NewTournamentRepository(store)
	leagueRepo := repositories.NewLeagueRepository(store)
	matchRepo := repositories.NewMatchRepository(store)
	teamRepo := repositories.NewTeamRepository(store)

	// Инициализация сервисов
	tournamentService := services.NewTournamentService(tournamentRepo, matchRepo, cfg.SaveKeys, notifiers, logger)
	leagueService := services.NewLeagueService(leagueRepo, matchRepo, cfg.SaveKeys, notifiers, logger)
	matchService := services.NewMatchService(matchRepo, tournamentService, leagueService, cfg.SaveKeys, logger)
	teamService := services.NewTeamService(teamRepo)
	logger.Info("Services initialized")

	if cfg.AMQPURL != "" {
		consumer := events.NewAMQPConsumer(cfg.AMQPURL, cfg.AMQPQueue, matchService, logger)
		if err := consumer.Start(ctx); err != nil {
			logger.Error("failed to start AMQP consumer", slog.Any("error", err))
			os.Exit(1)
		}
		defer func() {
			if err := consumer.Close(); err != nil {
				logger.Error("failed to close AMQP consumer", slog.Any("error", err))
			}
		}()
		checks["amqp"] = consumer.Check
	}

	// Инициализация обработчиков HTTP
	router := chi.NewRouter()
	api.SetupRoutes(router, logger, cfg.CORSAllowedOrigins, api.Handlers{
		Health:     handlers.NewHealthHandler(checks),
		Tournament: handlers.NewTournamentHandler(tournamentService),
		League:     handlers.NewLeagueHandler(leagueService),
		Match:      handlers.NewMatchHandler(matchService),
		Team:       handlers.NewTeamHandler(teamService),
		WebSocket:  handlers.NewWebSocketHandler(wsHub),
	})
	logger.Info("Routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case <-ctx.Done():
		logger.Info("shutdown signal received")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		logger.Info("shutting down server", slog.Duration("timeout", 15*time.Second))
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
		} else {
			logger.Info("server shutdown complete")
		}
	}
	logger.Info("application exited")
}

// openStore builds the key-value backend chosen by STORAGE_BACKEND together
// with its health checks and a release function.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (storage.Store, map[string]handlers.HealthChecker, func() error, error) {
	checks := make(map[string]handlers.HealthChecker)

	var (
		store   storage.Store
		closeFn = func() error { return nil }
	)
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		dbConn, err := db.Connect(ctx, cfg.DatabaseURL, db.DefaultPoolConfig(), 5*time.Second)
		if err != nil {
			return nil, nil, nil, err
		}
		store, err = storage.NewPostgresStore(ctx, dbConn, "")
		if err != nil {
			dbConn.Close()
			return nil, nil, nil, err
		}
		checks["postgres"] = dbConn.PingContext
		closeFn = dbConn.Close
		logger.Info("database connection established")

	case config.BackendSQLite:
		var err error
		store, closeFn, err = storage.NewSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		logger.Info("SQLite store opened", slog.String("path", cfg.SQLitePath))

	case config.BackendR2:
		var err error
		store, err = storage.NewCloudflareR2Store(ctx, cfg.R2)
		if err != nil {
			return nil, nil, nil, err
		}
		logger.Info("Cloudflare R2 store initialized", slog.String("bucket", cfg.R2.BucketName))

	default:
		store = storage.NewMemoryStore()
		logger.Warn("using in-memory storage, data is lost on restart")
	}

	checks["storage"] = func(ctx context.Context) error {
		_, err := store.Keys(ctx, "teams/")
		return err
	}
	return store, checks, closeFn, nil
}
