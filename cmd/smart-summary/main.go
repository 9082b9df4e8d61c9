// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the smart-summary CLI and HTTP service.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/smart-summary/internal/logging"
	"github.com/pdiddy/smart-summary/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// cfg and logger are populated by the root command before any subcommand runs.
var (
	cfg    types.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "smart-summary",
	Short: "Resolve search terms to Wikidata/Wikipedia summary records",
	Long: `smart-summary resolves a free-text term to a Wikidata entity, enriches it
with biographical facts and a Wikipedia summary, and renders the result as a
JSON record with ready-to-display HTML.

Run "smart-summary serve" for the HTTP API, or use the search and article
subcommands for one-off lookups from the terminal.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := decodeConfig(viper.GetViper())
		if err != nil {
			return err
		}
		l, err := logging.New(c.Log, os.Stderr)
		if err != nil {
			return err
		}
		cfg, logger = c, l
		slog.SetDefault(l)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./smart-summary.yaml or ~/.config/smart-summary/smart-summary.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	used, err := configure(viper.GetViper(), cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Reading config:", err)
		return
	}
	if used != "" {
		fmt.Fprintln(os.Stderr, "Using config file:", used)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
