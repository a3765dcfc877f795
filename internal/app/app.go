package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/trivault/trivault-backend/internal/adapter/postgres"
	activityrepo "github.com/trivault/trivault-backend/internal/adapter/postgres/activity"
	adminrepo "github.com/trivault/trivault-backend/internal/adapter/postgres/admin"
	entryrepo "github.com/trivault/trivault-backend/internal/adapter/postgres/entry"
	jwtauth "github.com/trivault/trivault-backend/internal/auth"
	"github.com/trivault/trivault-backend/internal/config"
	activitysvc "github.com/trivault/trivault-backend/internal/service/activity"
	authsvc "github.com/trivault/trivault-backend/internal/service/auth"
	vaultsvc "github.com/trivault/trivault-backend/internal/service/vault"
	"github.com/trivault/trivault-backend/internal/transport/middleware"
	"github.com/trivault/trivault-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, connects to the database, wires services and handlers, and
// serves HTTP until the context is cancelled or a termination signal
// arrives.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Database.Migrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("database migrations applied")
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	entries := entryrepo.New(pool)
	admins := adminrepo.New(pool)
	activities := activityrepo.New(pool)

	jwtManager := jwtauth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, admins, jwtManager, cfg.Auth)
	vaultService := vaultsvc.NewService(logger, entries, activities)
	activityService := activitysvc.NewService(logger, activities, cfg.Activity)

	router := rest.NewRouter(rest.RouterDeps{
		Auth:        rest.NewAuthHandler(authService, logger),
		Passwords:   rest.NewPasswordHandler(vaultService, logger),
		Activity:    rest.NewActivityHandler(activityService, logger),
		RequireAuth: middleware.Auth(authService),
	})

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
