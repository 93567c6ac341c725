// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 QuillFeed Contributors

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillfeed/quillfeed/internal/config"
	"github.com/quillfeed/quillfeed/pkg/errutil"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quillfeed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("loads YAML file", func(t *testing.T) {
		path := writeConfigFile(t, `
database_url: postgres://localhost:5432/quillfeed
log_format: text
metrics_addr: 127.0.0.1:9200
digest_cost: 10
`)

		cfg, err := config.Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "postgres://localhost:5432/quillfeed", cfg.DatabaseURL)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "127.0.0.1:9200", cfg.MetricsAddr)
		assert.Equal(t, 10, cfg.DigestCost)
	})

	t.Run("missing file errors", func(t *testing.T) {
		cfg, err := config.Load("/nonexistent/quillfeed.yaml", nil)
		require.Error(t, err)
		assert.Nil(t, cfg)
		errutil.AssertErrorCode(t, err, "CONFIG_LOAD_FAILED")
	})

	t.Run("empty path uses defaults", func(t *testing.T) {
		cfg, err := config.Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, config.DefaultLogFormat, cfg.LogFormat)
		assert.Equal(t, config.DefaultMetricsAddr, cfg.MetricsAddr)
	})

	t.Run("changed flags override file", func(t *testing.T) {
		path := writeConfigFile(t, `
database_url: postgres://localhost:5432/quillfeed
log_format: json
`)

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.String("log-format", "json", "")
		require.NoError(t, flags.Parse([]string{"--log-format=text"}))

		cfg, err := config.Load(path, flags)
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.Equal(t, "postgres://localhost:5432/quillfeed", cfg.DatabaseURL)
	})

	t.Run("unchanged flags do not override file", func(t *testing.T) {
		path := writeConfigFile(t, `
database_url: postgres://localhost:5432/quillfeed
log_format: text
`)

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.String("log-format", "json", "")

		cfg, err := config.Load(path, flags)
		require.NoError(t, err)
		assert.Equal(t, "text", cfg.LogFormat)
	})

	t.Run("DATABASE_URL env is a fallback", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://env:5432/quillfeed")

		cfg, err := config.Load("", nil)
		require.NoError(t, err)
		assert.Equal(t, "postgres://env:5432/quillfeed", cfg.DatabaseURL)
	})

	t.Run("file wins over env", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://env:5432/quillfeed")
		path := writeConfigFile(t, `database_url: postgres://file:5432/quillfeed`)

		cfg, err := config.Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "postgres://file:5432/quillfeed", cfg.DatabaseURL)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{
			name:    "valid",
			cfg:     config.Config{DatabaseURL: "postgres://localhost/quillfeed", LogFormat: "json"},
			wantErr: false,
		},
		{
			name:    "text format valid",
			cfg:     config.Config{DatabaseURL: "postgres://localhost/quillfeed", LogFormat: "text"},
			wantErr: false,
		},
		{
			name:    "missing database url",
			cfg:     config.Config{LogFormat: "json"},
			wantErr: true,
		},
		{
			name:    "bad log format",
			cfg:     config.Config{DatabaseURL: "postgres://localhost/quillfeed", LogFormat: "xml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				errutil.AssertErrorCode(t, err, "CONFIG_INVALID")
			} else {
				require.NoError(t, err)
			}
		})
	}
}
