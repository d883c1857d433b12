// Package cli wires the command line interface for the FundVerse backend.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fundverse/backend/internal/config"
)

// RootOptions carries flags shared by every subcommand.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
}

// NewRootCommand builds the fundverse command tree.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "fundverse",
		Short:         "FundVerse crowdfunding backend",
		Long:          "FundVerse persists ideas, campaigns and documents and serves them over MCP.",
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to config file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (trace, debug, info, warn, error)")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newSeedCommand(opts))

	return cmd
}

// loadConfig reads the config file and applies root flag overrides.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		if _, err := zerolog.ParseLevel(opts.LogLevel); err != nil {
			return nil, fmt.Errorf("log-level: %w", err)
		}
		cfg.Log.Level = opts.LogLevel
	}
	return cfg, nil
}

// newLogger builds the process logger at the configured level. Logs go to
// stderr so the stdio transport keeps stdout for the protocol.
func newLogger(cfg *config.Config) zerolog.Logger {
	return zerolog.New(os.Stderr).Level(cfg.LogLevel()).With().Timestamp().Logger()
}
