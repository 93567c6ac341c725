// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillfeed/quillfeed/internal/store"
)

// DatabaseStatus holds the reachability and schema state of the database.
type DatabaseStatus struct {
	Reachable        bool   `json:"reachable"`
	MigrationVersion uint   `json:"migration_version"`
	Dirty            bool   `json:"dirty"`
	Error            string `json:"error,omitempty"`
}

// statusConfig holds configuration for the status command.
type statusConfig struct {
	jsonOutput bool
}

// NewStatusCmd creates the status subcommand.
func NewStatusCmd() *cobra.Command {
	cfg := &statusConfig{}

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show database connectivity and migration state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, cfg)
		},
	}

	cmd.Flags().BoolVar(&cfg.jsonOutput, "json", false, "output status as JSON")

	return cmd
}

func runStatus(cmd *cobra.Command, statusCfg *statusConfig) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	status := queryDatabaseStatus(cmd, cfg.DatabaseURL)

	if statusCfg.jsonOutput {
		data, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal status: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if !status.Reachable {
		cmd.Printf("Database: unreachable (%s)\n", status.Error)
		return nil
	}
	cmd.Println("Database: reachable")
	if status.MigrationVersion == 0 {
		cmd.Println("Migrations: none applied")
	} else if status.Dirty {
		cmd.Printf("Migrations: version %d (dirty)\n", status.MigrationVersion)
	} else {
		cmd.Printf("Migrations: version %d\n", status.MigrationVersion)
	}
	return nil
}

func queryDatabaseStatus(cmd *cobra.Command, databaseURL string) DatabaseStatus {
	var status DatabaseStatus

	pool, err := store.Connect(cmd.Context(), databaseURL)
	if err != nil {
		status.Error = err.Error()
		return status
	}
	defer pool.Close()
	status.Reachable = true

	migrator, err := store.NewMigrator(databaseURL)
	if err != nil {
		status.Error = err.Error()
		return status
	}
	defer func() { _ = migrator.Close() }()

	version, dirty, err := migrator.Version()
	if err != nil {
		status.Error = err.Error()
		return status
	}
	status.MigrationVersion = version
	status.Dirty = dirty

	return status
}
