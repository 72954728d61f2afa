package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/session"
	"storefront/internal/view"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting storefront")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Build the session catalogue: a configured file, or the built-in seed
	var cat *catalog.Catalog
	if cfg.Catalog.Path != "" {
		cat, err = catalog.NewLoader(logger).Load(cfg.Catalog.Path)
		if err != nil {
			return fmt.Errorf("failed to load catalogue: %w", err)
		}
	} else {
		cat, err = catalog.New(catalog.Seed())
		if err != nil {
			return fmt.Errorf("failed to build seed catalogue: %w", err)
		}
		logger.Info().Int("products", cat.Len()).Msg("using built-in catalogue")
	}

	// Wire the core and the terminal frontend
	sess := session.New(cat, logger)
	formatter := view.NewFormatter(cfg.UI.CurrencySymbol, cfg.UI.CurrencyRate)
	frontend := view.New(sess, os.Stdin, os.Stdout, formatter, cfg.UI.Theme, logger)

	if err := frontend.Run(ctx); err != nil && ctx.Err() == nil {
		return fmt.Errorf("view loop failed: %w", err)
	}

	logger.Info().Msg("storefront stopped")
	return nil
}
