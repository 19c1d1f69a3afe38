package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/coachdesk/coachdesk-backend/internal/adapter/postgres"
	"github.com/coachdesk/coachdesk-backend/internal/adapter/postgres/batch"
	"github.com/coachdesk/coachdesk-backend/internal/adapter/postgres/switchlog"
	"github.com/coachdesk/coachdesk-backend/internal/adapter/postgres/user"
	"github.com/coachdesk/coachdesk-backend/internal/auth"
	"github.com/coachdesk/coachdesk-backend/internal/config"
	"github.com/coachdesk/coachdesk-backend/internal/service/antitheft"
	"github.com/coachdesk/coachdesk-backend/internal/service/batchadmin"
	"github.com/coachdesk/coachdesk-backend/internal/service/membership"
	"github.com/coachdesk/coachdesk-backend/internal/service/moderation"
	"github.com/coachdesk/coachdesk-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires repositories into services, and serves HTTP until
// the context is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("app.Run: %w", err)
	}
	defer pool.Close()

	userRepo := user.New(pool)
	batchRepo := batch.New(pool)
	ledger := switchlog.New(pool)
	txManager := postgres.NewTxManager(pool)

	membershipSvc := membership.NewService(logger, userRepo, batchRepo, ledger, txManager)
	antiTheftSvc := antitheft.NewService(logger, userRepo, batchRepo, ledger, cfg.AntiTheft)
	moderationSvc := moderation.NewService(logger, userRepo, batchRepo, ledger, txManager)
	batchAdminSvc := batchadmin.NewService(logger, batchRepo)

	validator := auth.NewJWTValidator(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	handler, stopLimiter := rest.NewRouter(rest.RouterDeps{
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		Membership: rest.NewMembershipHandler(membershipSvc, logger),
		Admin:      rest.NewAdminHandler(antiTheftSvc, moderationSvc, batchAdminSvc, logger),
		Validator:  validator,
		Logger:     logger,
		Server:     cfg.Server,
		CORS:       cfg.CORS,
	})
	defer stopLimiter()

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("app.Run: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("app.Run: shutdown: %w", err)
	}

	return nil
}
