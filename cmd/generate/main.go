// Command generate writes the synthetic data set to DATA_DIR.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/JonMunkholm/shopseed/internal/application"
	"github.com/JonMunkholm/shopseed/internal/dataset"
	"github.com/JonMunkholm/shopseed/internal/generate"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Captured once so every timestamp in the run shares one upper bound.
	now := time.Now()

	cfg, err := application.Start("generate")
	if err != nil {
		return application.Fail(os.Stderr, "failed to load configuration", err)
	}

	opts := generate.FromConfig(cfg.Generate, now)
	start := time.Now()

	ds, err := generate.Run(opts)
	if err != nil {
		return application.Fail(os.Stderr, "generation failed", err)
	}

	files, err := dataset.WriteDir(cfg.Data.Dir, ds)
	if err != nil {
		return application.Fail(os.Stderr, "writing data set failed", err)
	}

	for _, f := range files {
		slog.Info("file written", "file", f.Path, "rows", f.Rows)
		fmt.Printf("Wrote %6d rows to %s\n", f.Rows, f.Path)
	}
	slog.Info("generation complete",
		"seed", opts.Seed,
		"now", dataset.FormatTime(opts.Now),
		"order_lines", len(ds.OrderLines),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return 0
}
