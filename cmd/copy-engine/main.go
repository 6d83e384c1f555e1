// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the copy-engine CLI. It generates
// email copy and social plans from the command line, runs batches of brief
// files, and serves the generation API for the web client.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/copy-engine/internal/render"
	"github.com/pdiddy/copy-engine/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the copy-engine CLI.
var rootCmd = &cobra.Command{
	Use:   "copy-engine",
	Short: "Deterministic marketing copy for email and social campaigns",
	Long: `copy-engine turns a short creative brief into ready-to-edit marketing copy.
Every phrase comes from a fixed, tone-keyed vocabulary, so the same brief
always produces the same copy.

Use email or social for a single brief, batch for a directory of brief files,
and serve to expose the generation API to the web client.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./copy-engine.yaml or ~/.config/copy-engine/copy-engine.yaml)")
	rootCmd.PersistentFlags().String("format", "", "output format: markdown, html, yaml, or json (default from output.format)")
	viper.BindPFlag("output.format", rootCmd.PersistentFlags().Lookup("format"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("copy-engine")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "copy-engine"))
		}
	}

	configureEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// configureEnv registers defaults and COPY_ENGINE_* overrides, so
// COPY_ENGINE_SERVER_ADDR sets server.addr.
func configureEnv() {
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.allowed_origins", []string{})
	viper.SetDefault("server.read_timeout", "10s")
	viper.SetDefault("server.write_timeout", "10s")
	viper.SetDefault("server.max_body_bytes", 64<<10)
	viper.SetDefault("social.moodboard_cap", 10)
	viper.SetDefault("output.format", string(types.OutputMarkdown))
	viper.SetDefault("output.dir", "output")
	viper.SetDefault("log.level", "info")

	viper.SetEnvPrefix("COPY_ENGINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// loadConfig decodes the merged configuration.
func loadConfig() (types.Config, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("decoding config: %w", err)
	}
	f, err := render.ParseFormat(string(cfg.Output.Format))
	if err != nil {
		return types.Config{}, err
	}
	cfg.Output.Format = f
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
