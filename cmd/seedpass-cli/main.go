package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/ericfisherdev/seedpass/internal/adapter/driven/clipboard"
	"github.com/ericfisherdev/seedpass/internal/adapter/driving/cli"
	"github.com/ericfisherdev/seedpass/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCmd(cfg, cli.Options{
		Clipboard: clipboard.NewSystem(),
		Logger:    logger,
	})
	if err := root.ExecuteContext(ctx); err != nil {
		// The error is already printed by cobra.
		stop()
		os.Exit(1)
	}
}
