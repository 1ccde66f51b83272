// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

package config

import (
	"strings"

	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/toml"
	"github.com/urfave/cli/v3"
)

var configFile = altsrc.StringSourcer("config.toml")

type Config struct { //nolint:govet // fieldalignment not critical for config structs
	Server   ServerConfig
	Log      LogConfig
	Database DatabaseConfig
	Auth     AuthConfig
}

type ServerConfig struct { //nolint:govet // fieldalignment not critical for config structs
	Host        string
	Port        int
	Mode        string // development, production
	Origins     []string
	MaxBodySize int // in MB
}

type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // text, json
}

type DatabaseConfig struct {
	URI  string
	Name string
}

type AuthConfig struct { //nolint:govet // fieldalignment not critical
	Secret        string // JWT signing secret
	CookieName    string // Credential cookie name
	TokenLifetime int    // Token lifetime in seconds
}

// IsProduction reports whether the server runs in production mode.
// Production mode switches the credential cookie to Secure/SameSite=None.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Mode, "production")
}

func NewFromCLI(cmd *cli.Command) *Config {
	return &Config{
		Server: ServerConfig{
			Host:        cmd.String("host"),
			Port:        int(cmd.Int("port")),
			Mode:        cmd.String("mode"),
			Origins:     cmd.StringSlice("origin"),
			MaxBodySize: int(cmd.Int("max-body-size")),
		},
		Log: LogConfig{
			Level:  cmd.String("log-level"),
			Format: cmd.String("log-format"),
		},
		Database: DatabaseConfig{
			URI:  cmd.String("database-uri"),
			Name: cmd.String("database-name"),
		},
		Auth: AuthConfig{
			Secret:        cmd.String("auth-secret"),
			CookieName:    cmd.String("auth-cookie-name"),
			TokenLifetime: int(cmd.Int("auth-token-lifetime")),
		},
	}
}

func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "host",
			Value:   "localhost",
			Usage:   "Host to bind to",
			Sources: cli.NewValueSourceChain(cli.EnvVar("HOST"), toml.TOML("server.host", configFile)),
		},
		&cli.IntFlag{
			Name:    "port",
			Value:   9000,
			Usage:   "Port to listen on",
			Sources: cli.NewValueSourceChain(cli.EnvVar("PORT"), toml.TOML("server.port", configFile)),
		},
		&cli.StringFlag{
			Name:    "mode",
			Value:   "development",
			Usage:   "Runtime mode (development, production)",
			Sources: cli.NewValueSourceChain(cli.EnvVar("NODE_ENV"), cli.EnvVar("MODE"), toml.TOML("server.mode", configFile)),
		},
		&cli.StringSliceFlag{
			Name:    "origin",
			Value:   []string{"http://localhost:5173"},
			Usage:   "Allowed CORS origins",
			Sources: cli.NewValueSourceChain(cli.EnvVar("CORS_ORIGINS"), toml.TOML("server.origins", configFile)),
		},
		&cli.IntFlag{
			Name:    "max-body-size",
			Value:   1,
			Usage:   "Maximum request body size in MB",
			Sources: cli.NewValueSourceChain(cli.EnvVar("MAX_BODY_SIZE"), toml.TOML("server.max_body_size", configFile)),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			Usage:   "Log level (debug, info, warn, error)",
			Sources: cli.NewValueSourceChain(cli.EnvVar("LOG_LEVEL"), toml.TOML("log.level", configFile)),
		},
		&cli.StringFlag{
			Name:    "log-format",
			Value:   "text",
			Usage:   "Log format (text, json)",
			Sources: cli.NewValueSourceChain(cli.EnvVar("LOG_FORMAT"), toml.TOML("log.format", configFile)),
		},
		&cli.StringFlag{
			Name:    "database-uri",
			Value:   "mongodb://localhost:27017",
			Usage:   "MongoDB connection URI",
			Sources: cli.NewValueSourceChain(cli.EnvVar("DATABASE_URI"), toml.TOML("database.uri", configFile)),
		},
		&cli.StringFlag{
			Name:    "database-name",
			Value:   "foodlane",
			Usage:   "MongoDB database name",
			Sources: cli.NewValueSourceChain(cli.EnvVar("DATABASE_NAME"), toml.TOML("database.name", configFile)),
		},
		&cli.StringFlag{
			Name:    "auth-secret",
			Usage:   "Secret key for signing credentials",
			Sources: cli.NewValueSourceChain(cli.EnvVar("ACCESS_TOKEN_SECRET"), toml.TOML("auth.secret", configFile)),
		},
		&cli.StringFlag{
			Name:    "auth-cookie-name",
			Value:   "accessToken",
			Usage:   "Credential cookie name",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AUTH_COOKIE_NAME"), toml.TOML("auth.cookie_name", configFile)),
		},
		&cli.IntFlag{
			Name:    "auth-token-lifetime",
			Value:   3600, // 1 hour in seconds
			Usage:   "Credential lifetime in seconds",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AUTH_TOKEN_LIFETIME"), toml.TOML("auth.token_lifetime", configFile)),
		},
	}
}
