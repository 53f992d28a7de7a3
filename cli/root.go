// Package cli wires the storefront packages into the storefront command.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storefront/config"
	"storefront/logger"
)

// RootOptions holds global flags and the state every subcommand shares.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Addr       string

	Config config.Config
	// Logger is built from Config in PersistentPreRunE unless already set.
	Logger *zap.Logger
}

// NewRootCommand creates the storefront command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "storefront",
		Short:         "Storefront cart service",
		Long:          "Serves a product catalog and a shopping cart over HTTP, and drives the cart from scripts.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.ConfigPath)
			if err != nil {
				return err
			}
			if opts.LogLevel != "" {
				cfg.LogLevel = opts.LogLevel
			}
			if opts.Addr != "" {
				cfg.Addr = opts.Addr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			opts.Config = cfg

			if opts.Logger == nil {
				log, err := logger.New(cfg.LogLevel)
				if err != nil {
					return fmt.Errorf("failed to initialize logger: %w", err)
				}
				opts.Logger = log
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.Logger != nil {
				_ = opts.Logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")

	cmd.AddCommand(newServeCommand(opts))
	cmd.AddCommand(newRunCommand(opts))
	cmd.AddCommand(newSeedCommand(opts))
	cmd.AddCommand(newProductsCommand(opts))

	return cmd
}
