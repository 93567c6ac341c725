// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/quillfeed/quillfeed/internal/observability"
	"github.com/quillfeed/quillfeed/internal/store"
)

// NewServeCmd creates the serve subcommand, which keeps the metrics and
// health endpoints running until interrupted.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve metrics and health endpoints",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	pool, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	ready := func() bool {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		return pool.Ping(pingCtx) == nil
	}

	server := observability.NewServer(cfg.MetricsAddr, ready)
	errCh, err := server.Start()
	if err != nil {
		return err
	}
	slog.Info("observability server started", "addr", server.Addr())

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case sig := <-sigCh:
		slog.Info("received shutdown signal", "signal", sig.String())
	case serveErr := <-errCh:
		if serveErr != nil {
			return serveErr
		}
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Stop(stopCtx); err != nil {
		slog.Warn("error stopping observability server", "error", err)
	}
	return nil
}
