// Package cli wires the gasfocus commands: estimate, catalog, and tui.
package cli

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/gasfocus/internal/config"
	"github.com/rshade/gasfocus/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

type configKey struct{}

// contextWithConfig attaches the loaded configuration to the context.
func contextWithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// configFromContext returns the configuration on ctx, or defaults when the
// command runs without the root PersistentPreRunE (as in tests).
func configFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

// NewRootCmd creates the root Cobra command for the gasfocus CLI.
// It wires up config loading, logging, and the estimate/catalog/tui
// subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.Result

	cmd := &cobra.Command{
		Use:     "gasfocus",
		Short:   "Calibration-gas consumption planner",
		Long:    "GasFocus: estimate monthly calibration-gas consumption for a fleet of gas-detection instruments",
		Version: ver,
		Example: rootCmdExample,
		// Validation errors carry user-facing messages; usage output would
		// bury them.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			loggingCfg := cfg.Logging
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				loggingCfg.Level = "debug"
				loggingCfg.Format = "console"
				loggingCfg.File = ""
			}

			result := logging.New(loggingCfg.ToLoggingConfig())
			logResult = &result
			logger = logging.ComponentLogger(result.Logger, "cli")

			if result.FallbackReason != "" {
				cmd.PrintErrf("Warning: could not open log file, logging to stderr: %s\n", result.FallbackReason)
			}

			ctx := logger.WithContext(cmd.Context())
			traceID := logging.NewTraceID()
			ctx = logging.ContextWithTraceID(ctx, traceID)
			ctx = contextWithConfig(ctx, cfg)
			cmd.SetContext(ctx)

			logger.Debug().
				Str("command", cmd.Name()).
				Str("trace_id", traceID).
				Msg("command started")
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logResult != nil {
				return logResult.Close()
			}
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "path to config file (default ~/.gasfocus/config.yaml)")
	cmd.AddCommand(newEstimateCmd(), newCatalogCmd(), newTUICmd())

	return cmd
}

const rootCmdExample = `  # Estimate monthly usage for one fleet
  gasfocus estimate --gas "Carbon Monoxide (CO)" --tests 10 --calibrations 4 --instruments 2

  # Same estimate as JSON
  gasfocus estimate --gas "Carbon Monoxide (CO)" --tests 10 --calibrations 4 --instruments 2 --output json

  # Evaluate many fleets from a scenario file
  gasfocus estimate --fleet fleets.yaml

  # Interactive single-page form
  gasfocus tui

  # List the cylinder catalog
  gasfocus catalog`
