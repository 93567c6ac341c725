// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

package main

import (
	"github.com/spf13/cobra"

	"github.com/quillfeed/quillfeed/internal/config"
	"github.com/quillfeed/quillfeed/internal/logging"
	"github.com/quillfeed/quillfeed/internal/xdg"
)

// Global flags available to all subcommands.
var (
	configFile string
	logFormat  string
)

// NewRootCmd creates the root command for the QuillFeed CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quillfeed",
		Short: "QuillFeed - identity and social graph service",
		Long: `QuillFeed manages accounts, credentials, the follow graph, and
personalized content feeds backed by PostgreSQL.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logging.SetDefault("quillfeed", cmd.Root().Version, logFormat)
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", config.DefaultLogFormat, "log format (json or text)")

	cmd.AddCommand(NewMigrateCmd())
	cmd.AddCommand(NewStatusCmd())
	cmd.AddCommand(NewAccountCmd())
	cmd.AddCommand(NewServeCmd())

	return cmd
}

// loadConfig loads configuration for a subcommand, merging the config file,
// the command's flags, and the environment. When no --config flag is given,
// the XDG config location is used if a file exists there.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := configFile
	if path == "" {
		path = xdg.ConfigFile()
	}
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
