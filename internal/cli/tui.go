package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/gasfocus/internal/catalog"
	"github.com/rshade/gasfocus/internal/engine"
	"github.com/rshade/gasfocus/internal/tui"
)

// newTUICmd creates the "tui" subcommand launching the interactive
// single-page estimation form.
func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Interactive estimation form",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return errors.New("the interactive form requires a terminal")
			}

			cfg := configFromContext(cmd.Context())
			eng := engine.New(catalog.New())

			return tui.Run(cmd.Context(), eng, tui.Options{
				DefaultGasType:     cfg.Defaults.GasType,
				DefaultInstruments: cfg.Defaults.Instruments,
			})
		},
	}
}
