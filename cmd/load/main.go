// Command load rebuilds the store from the CSV files in DATA_DIR.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/JonMunkholm/shopseed/internal/application"
	"github.com/JonMunkholm/shopseed/internal/core"
	_ "github.com/JonMunkholm/shopseed/internal/core/tables" // Register all tables
	"github.com/JonMunkholm/shopseed/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := application.Start("load")
	if err != nil {
		return application.Fail(os.Stderr, "failed to load configuration", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return application.Fail(os.Stderr, "failed to open store", err)
	}
	defer st.Close()

	svc := core.NewService(st, cfg.Data.Dir, cfg.Store.LoadTimeout)
	result, err := svc.Load(ctx)
	if err != nil {
		return application.Fail(os.Stderr, "load failed", err)
	}

	for _, t := range result.Tables {
		fmt.Printf("%-14s %6d rows  (%s)\n", t.Key, t.Rows, t.File)
	}
	fmt.Printf("Loaded %d rows in %s\n", result.TotalRows(), result.Duration.Round(time.Millisecond))
	return 0
}
