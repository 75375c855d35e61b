package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/JonMunkholm/shopseed/internal/application"
	"github.com/JonMunkholm/shopseed/internal/core"
	_ "github.com/JonMunkholm/shopseed/internal/core/tables" // Register all tables
	"github.com/JonMunkholm/shopseed/internal/store"
	"github.com/JonMunkholm/shopseed/internal/web"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := application.Start("server")
	if err != nil {
		return application.Fail(os.Stderr, "failed to load configuration", err)
	}

	slog.Info("server configuration",
		"addr", cfg.Server.Addr(),
		"request_timeout", cfg.Server.RequestTimeout,
		"db_max_conns", cfg.Store.MaxConns,
	)

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return application.Fail(os.Stderr, "failed to open store", err)
	}
	defer st.Close()

	service := core.NewService(st, cfg.Data.Dir, cfg.Store.LoadTimeout)
	server := web.NewServer(service, cfg.Server)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return application.Fail(os.Stderr, "server stopped", err)
	}
	slog.Info("server stopped")
	return 0
}
