package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// envOr returns the environment variable value or a fallback.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newRootCmd constructs the dealerd command tree.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "dealerd",
		Short:         "Dealership catalog and lead-generation service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "Path to config file (.yaml/.json/.toml)")
	root.PersistentFlags().String("log-level", envOr("DEALERD_LOG_LEVEL", "info"), "Log level: debug|info|warn|error|off")

	root.AddCommand(newServeCmd())
	root.AddCommand(newCatalogCmd())
	return root
}

// newLogger builds the process logger from the --log-level flag.
func newLogger(cmd *cobra.Command) zerolog.Logger {
	lvlStr, _ := cmd.Flags().GetString("log-level")
	if lvlStr == "off" {
		lvlStr = "disabled"
	}
	lvl, err := zerolog.ParseLevel(lvlStr)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(lvl).With().Timestamp().Logger()
}
