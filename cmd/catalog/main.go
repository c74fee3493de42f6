// Package main runs the catalog demo: value objects, discount and payment
// dispatch, and composed behaviors.
package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"
	"time"

	"go.uber.org/fx"

	"github.com/auth-platform/libs/go/domainkit/config"
	"github.com/auth-platform/libs/go/domainkit/internal/catalog"
	"github.com/auth-platform/libs/go/domainkit/observability"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	app := fx.New(
		// Configuration
		fx.Provide(func() (*config.Config, error) { return config.Load(*configPath) }),

		// Logging
		fx.Provide(NewLogger),

		// Output sink
		fx.Provide(func() io.Writer { return os.Stdout }),

		catalog.Module,

		fx.Invoke(RunDemo),
		fx.NopLogger,
	)
	if err := app.Err(); err != nil {
		slog.Error("failed to build catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.Start(ctx); err != nil {
		slog.Error("catalog failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if err := app.Stop(ctx); err != nil {
		slog.Error("failed to stop catalog", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// NewLogger creates a structured logger on stderr so it does not mix with
// demo output.
func NewLogger(cfg *config.Config) *slog.Logger {
	return observability.NewLogger(cfg.Logging.Level, cfg.Logging.Format, os.Stderr)
}

// RunDemo runs the demo when the application starts.
func RunDemo(lc fx.Lifecycle, demo *catalog.Demo) {
	lc.Append(fx.Hook{
		OnStart: demo.Run,
	})
}
