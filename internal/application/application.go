// Package application holds the start-up and failure handling shared by the
// command entry points.
package application

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/JonMunkholm/shopseed/internal/config"
	"github.com/JonMunkholm/shopseed/internal/core"
	"github.com/JonMunkholm/shopseed/internal/logging"
	"github.com/joho/godotenv"
)

// Start loads .env (overwriting existing variables), reads and validates the
// configuration and installs the configured logger.
func Start(command string) (*config.Config, error) {
	envErr := godotenv.Overload()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
	if envErr != nil {
		slog.Debug("no .env file found, using environment variables")
	} else {
		slog.Debug("loaded .env file (overwriting existing env vars)")
	}

	slog.Info("configuration loaded",
		"command", command,
		"data_dir", cfg.Data.Dir,
		"driver", cfg.Store.Driver,
		"tables", core.TableCount(),
	)
	return cfg, nil
}

// Fail logs the technical error, prints the coded user message to w and
// returns the process exit code.
func Fail(w io.Writer, msg string, err error) int {
	ue := core.NewUserError(err)
	slog.Error(msg, "error", ue.Technical, "code", ue.User.Code)
	fmt.Fprintln(w, "Error: "+core.FormatUserError(ue))
	fmt.Fprintln(w, "Details: "+ue.Technical.Error())
	return 1
}
