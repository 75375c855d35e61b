// Command report prints the order-line report, or writes it as CSV to the
// path given as the only argument.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/JonMunkholm/shopseed/internal/application"
	"github.com/JonMunkholm/shopseed/internal/config"
	_ "github.com/JonMunkholm/shopseed/internal/core/tables" // Register all tables
	"github.com/JonMunkholm/shopseed/internal/report"
	"github.com/JonMunkholm/shopseed/internal/store"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "usage: report [output.csv]")
		return 2
	}

	cfg, err := application.Start("report")
	if err != nil {
		return application.Fail(os.Stderr, "failed to load configuration", err)
	}

	// Opening SQLite would create an empty file, so check first.
	if strings.EqualFold(cfg.Store.Driver, config.DriverSQLite) {
		if err := report.CheckDatabase(cfg.Store.SQLitePath); err != nil {
			return application.Fail(os.Stderr, "report failed", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return application.Fail(os.Stderr, "failed to open store", err)
	}
	defer st.Close()

	lines, err := report.Fetch(ctx, st)
	if err != nil {
		return application.Fail(os.Stderr, "report failed", err)
	}
	slog.Info("report fetched", "rows", len(lines))

	if len(args) == 1 {
		if err := report.WriteFile(args[0], lines); err != nil {
			return application.Fail(os.Stderr, "writing report failed", err)
		}
		fmt.Printf("Wrote %d rows to %s\n", len(lines), args[0])
		return 0
	}

	if err := report.Print(os.Stdout, lines); err != nil && !errors.Is(err, syscall.EPIPE) {
		return application.Fail(os.Stderr, "printing report failed", err)
	}
	return 0
}
