// Copyright 2025 The FoodLane Authors
// Licensed under the EUPL-1.2

package main

import (
	"context"
	"log"
	"os"

	"github.com/foodlane/server/internal/config"
	"github.com/foodlane/server/internal/server"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

func main() {
	// Best-effort .env loading; env vars feed the config value sources.
	_ = godotenv.Load()

	cmd := &cli.Command{
		Name:   "foodlane-server",
		Usage:  "Start the FoodLane REST backend",
		Flags:  config.Flags(),
		Action: server.Run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
