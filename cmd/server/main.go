package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"oysterkode.backend/internal/config"
	"oysterkode.backend/internal/infrastructure/jobs"
	"oysterkode.backend/internal/infrastructure/storage"
	"oysterkode.backend/internal/interfaces/http/handlers"
	"oysterkode.backend/internal/interfaces/http/middleware"
	"oysterkode.backend/internal/usecases"
	"oysterkode.backend/pkg/jwt"
	"oysterkode.backend/pkg/logger"
	"oysterkode.backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openStore  = storage.Open
	runServer  = func(ctx context.Context, h http.Handler, port string) error {
		srv := &http.Server{
			Addr:              ":" + port,
			Handler:           h,
			ReadHeaderTimeout: 10 * time.Second,
		}
		errCh := make(chan error, 1)
		go func() { errCh <- srv.ListenAndServe() }()

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	}
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := loadCfg()
	if err != nil {
		return err
	}

	initLog(cfg.Server.Env)
	defer logger.Sync()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	// Redis is optional; without it logout and idempotency keys are no-ops.
	if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
		logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer redis.Close()
	logger.Info(ctx, "Redis initialized", zap.Bool("enabled", redis.Enabled()))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := openStore(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Database.Driver, err)
	}
	defer store.Close(context.Background())
	logger.Info(ctx, "Store ready", zap.String("driver", store.Driver))

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)

	var (
		revoker     usecases.TokenRevoker
		revocations middleware.RevocationChecker
	)
	if redis.Enabled() {
		denylist := redis.NewTokenDenylist()
		revoker, revocations = denylist, denylist
	}

	authUsecase := usecases.NewAuthUsecase(store.Admins, jwtService, revoker)
	eventUsecase := usecases.NewEventUsecase(store.Events)
	memberUsecase := usecases.NewMemberUsecase(store.Members)
	projectUsecase := usecases.NewProjectUsecase(store.Projects)
	contactUsecase := usecases.NewContactUsecase(store.Contacts)
	statsUsecase := usecases.NewStatsUsecase(store.Events, store.Members, store.Projects, store.Contacts)

	if cfg.AdminBootstrap.Enabled() {
		created, err := authUsecase.EnsureAdminExists(ctx, cfg.AdminBootstrap.Username, cfg.AdminBootstrap.Password)
		if err != nil {
			logger.Error(ctx, "Admin bootstrap failed", zap.Error(err))
		} else if created {
			logger.Info(ctx, "Bootstrap administrator created", zap.String("username", cfg.AdminBootstrap.Username))
		}
	}

	if cfg.Jobs.EventStatusInterval > 0 {
		statusJob := jobs.NewEventStatusJob(store.Events, cfg.Jobs.EventStatusInterval)
		go statusJob.Start(ctx)
		defer statusJob.Stop()
	}

	r := newRouter(cfg, routeDeps{
		authHandler:    handlers.NewAuthHandler(authUsecase),
		eventHandler:   handlers.NewEventHandler(eventUsecase),
		memberHandler:  handlers.NewMemberHandler(memberUsecase),
		projectHandler: handlers.NewProjectHandler(projectUsecase),
		contactHandler: handlers.NewContactHandler(contactUsecase),
		statsHandler:   handlers.NewStatsHandler(statsUsecase),
		authMiddleware: middleware.AuthMiddleware(jwtService, revocations),
		dbPing:         store.Ping,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case <-quit:
			logger.Info(ctx, "Shutting down server...")
			cancel()
		case <-ctx.Done():
		}
	}()

	logger.Info(ctx, "Oysterkode backend starting",
		zap.String("port", cfg.Server.Port),
		zap.String("health", fmt.Sprintf("http://localhost:%s/health", cfg.Server.Port)),
	)
	if err := runServer(ctx, r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
