package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/me/noblock/internal/config"
	"github.com/me/noblock/internal/registry"
	"github.com/me/noblock/internal/scheduler"
)

// runScheduler prints the startup banner and drives the built-in tasks
// until interrupted or until the configured number of steps has run.
func runScheduler(ctx context.Context, cfg config.RunConfig, stdout io.Writer, logger *slog.Logger) error {
	reg, err := registry.NewDefault(stdout, logger)
	if err != nil {
		return fmt.Errorf("build task registry: %w", err)
	}

	fmt.Fprintf(stdout, "main num tasks: %d\n", reg.Count())

	loop, err := scheduler.NewLoop(reg, scheduler.Config{
		Interval:   cfg.Interval,
		Iterations: cfg.Iterations,
	}, logger)
	if err != nil {
		return fmt.Errorf("create scheduler: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := loop.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("scheduler: %w", err)
	}
	logger.Info("scheduler stopped", "ticks", loop.Ticks())
	return nil
}
