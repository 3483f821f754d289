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

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/parlour-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/parlour-booking/internal/db"
	infraAuth "github.com/BruksfildServices01/parlour-booking/internal/infra/auth"
	"github.com/BruksfildServices01/parlour-booking/internal/logger"
	"github.com/BruksfildServices01/parlour-booking/internal/routes"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := dbpkg.NewDB(cfg.DB, log)
	if err != nil {
		return err
	}
	defer func() { _ = dbpkg.Close(db) }()

	denylist, closeDenylist, err := infraAuth.NewDenylist(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeDenylist() }()

	server, err := routes.NewServer(cfg, db, log, denylist)
	if err != nil {
		return err
	}
	defer server.Close()

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("server running",
			slog.String("addr", cfg.Addr()),
			slog.String("env", cfg.Env),
			slog.String("token_denylist", cfg.TokenDenylist),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
	case <-ctx.Done():
	}

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
