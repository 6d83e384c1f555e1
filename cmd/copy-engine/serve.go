// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/copy-engine/internal/generate"
	"github.com/pdiddy/copy-engine/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generation API",
	Long: `Serve exposes the generators over HTTP:

  POST /api/generate   {"kind": "email"|"social", "payload": {...}}
  GET  /api/tones      tone palette
  GET  /api/platforms  platforms with dedicated templates
  GET  /health         liveness

The server shuts down gracefully on SIGINT or SIGTERM.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := server.NewLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	router := server.New(cfg.Server, logger, generate.New(cfg.Social))
	return server.Run(ctx, cfg.Server, router, logger)
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().StringSlice("origin", nil, "allowed CORS origin, repeatable")
	serveCmd.Flags().String("log-level", "info", "log level: debug or info")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
	viper.BindPFlag("server.allowed_origins", serveCmd.Flags().Lookup("origin"))
	viper.BindPFlag("log.level", serveCmd.Flags().Lookup("log-level"))

	rootCmd.AddCommand(serveCmd)
}
