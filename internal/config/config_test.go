// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

func TestIsProduction(t *testing.T) {
	tests := []struct {
		mode     string
		expected bool
	}{
		{"production", true},
		{"Production", true},
		{"PRODUCTION", true},
		{"development", false},
		{"dev", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			cfg := &Config{Server: ServerConfig{Mode: tt.mode}}
			assert.Equal(t, tt.expected, cfg.IsProduction())
		})
	}
}

func TestFlags(t *testing.T) {
	flags := Flags()

	// Should have all expected flags
	assert.NotEmpty(t, flags)

	// Check for key flags
	flagNames := make(map[string]bool)
	for _, f := range flags {
		for _, name := range f.Names() {
			flagNames[name] = true
		}
	}

	assert.True(t, flagNames["host"], "should have host flag")
	assert.True(t, flagNames["port"], "should have port flag")
	assert.True(t, flagNames["mode"], "should have mode flag")
	assert.True(t, flagNames["origin"], "should have origin flag")
	assert.True(t, flagNames["log-level"], "should have log-level flag")
	assert.True(t, flagNames["database-uri"], "should have database-uri flag")
	assert.True(t, flagNames["auth-secret"], "should have auth-secret flag")
	assert.True(t, flagNames["auth-cookie-name"], "should have auth-cookie-name flag")
}

func TestNewFromCLI(t *testing.T) {
	app := &cli.Command{
		Name:  "test",
		Flags: Flags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg := NewFromCLI(cmd)

			// Verify defaults are applied
			assert.NotNil(t, cfg)
			assert.Equal(t, "localhost", cfg.Server.Host)
			assert.Equal(t, 9000, cfg.Server.Port)
			assert.Equal(t, "development", cfg.Server.Mode)
			assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.Origins)
			assert.Equal(t, "info", cfg.Log.Level)
			assert.Equal(t, "text", cfg.Log.Format)
			assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
			assert.Equal(t, "foodlane", cfg.Database.Name)
			assert.Equal(t, "accessToken", cfg.Auth.CookieName)
			assert.Equal(t, 3600, cfg.Auth.TokenLifetime)
			return nil
		},
	}

	err := app.Run(context.Background(), []string{"test"})
	require.NoError(t, err)
}

func TestNewFromCLI_Overrides(t *testing.T) {
	app := &cli.Command{
		Name:  "test",
		Flags: Flags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			cfg := NewFromCLI(cmd)

			assert.Equal(t, "production", cfg.Server.Mode)
			assert.True(t, cfg.IsProduction())
			assert.Equal(t, 8080, cfg.Server.Port)
			assert.Equal(t, "s3cret", cfg.Auth.Secret)
			return nil
		},
	}

	err := app.Run(context.Background(), []string{
		"test", "--mode", "production", "--port", "8080", "--auth-secret", "s3cret",
	})
	require.NoError(t, err)
}
