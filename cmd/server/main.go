package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	"inkwell-blog-service/internal/config"
	delivery_http "inkwell-blog-service/internal/delivery/http"
	auth_http "inkwell-blog-service/internal/delivery/http/auth"
	"inkwell-blog-service/internal/delivery/http/middleware"
	post_http "inkwell-blog-service/internal/delivery/http/post"
	metrics_server "inkwell-blog-service/internal/delivery/metrics"
	"inkwell-blog-service/internal/logger"
	prometheus_metrics "inkwell-blog-service/internal/metrics/prometheus"
	"inkwell-blog-service/internal/repository/memory"
	post_repository "inkwell-blog-service/internal/repository/post"
	post_memory "inkwell-blog-service/internal/repository/post/memory"
	post_postgres "inkwell-blog-service/internal/repository/post/postgres"
	"inkwell-blog-service/internal/repository/postgres"
	user_repository "inkwell-blog-service/internal/repository/user"
	user_memory "inkwell-blog-service/internal/repository/user/memory"
	user_postgres "inkwell-blog-service/internal/repository/user/postgres"
	auth_service "inkwell-blog-service/internal/service/auth"
	post_service "inkwell-blog-service/internal/service/post"
)

func main() {
	cfg := config.MustLoad()
	ctx := context.Background()
	log := logger.New(cfg.Env)

	var (
		userRepo user_repository.Repository
		postRepo post_repository.Repository
		uow      postgres.UnitOfWork
	)

	switch cfg.Storage.Backend {
	case "postgres":
		dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
			cfg.Database.Username,
			cfg.Database.Password,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.DbName)

		if cfg.Database.AutoMigrate {
			if err := runMigrations(cfg, log); err != nil {
				log.Error("Failed to run migrations", slog.String("error", err.Error()))
				os.Exit(1)
			}
		}

		poolConfig, err := pgxpool.ParseConfig(dsn)
		if err != nil {
			log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
			os.Exit(1)
		}

		pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
		if err != nil {
			log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer pool.Close()

		userRepo = user_postgres.NewUserRepository(pool, log)
		postRepo = post_postgres.NewPostRepository(pool, log)
		uow = postgres.NewPostgresUOW(pool, log)
	case "memory":
		userRepo = user_memory.NewUserRepository(log)
		postRepo = post_memory.NewPostRepository(log)
		uow = memory.NewMemoryUOW(userRepo, postRepo, log)
	default:
		log.Error("Unknown storage backend", slog.String("backend", cfg.Storage.Backend))
		os.Exit(1)
	}

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()
	metrics.SetServiceHealth(true)

	authService := auth_service.NewAuthService(userRepo, log, cfg.JWT.Secret, cfg.JWT.TTL, cfg.Auth.BcryptCost)
	postService := post_service.NewPostService(postRepo, userRepo, uow, log)

	authHandler := auth_http.NewAuthHandler(authService, log, metrics)
	postHandler := post_http.NewPostHandler(postService, log, metrics)
	authMW := middleware.NewAuthMiddleware(authService, log)

	router := delivery_http.NewRouter(authHandler, postHandler, authMW, log, metrics)
	httpServer := delivery_http.NewServer(router, cfg.HTTPServer.Address, cfg.HTTPServer.Port, log)
	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}

func runMigrations(cfg *config.Config, log *logger.Logger) error {
	dsn := fmt.Sprintf("pgx5://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)

	m, err := migrate.New("file://"+cfg.Database.MigrationsPath, dsn)
	if err != nil {
		return err
	}
	defer func() {
		if _, dbErr := m.Close(); dbErr != nil {
			log.Warn("Failed to close migrate instance", slog.String("error", dbErr.Error()))
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	log.Info("Migrations applied")
	return nil
}
