package cli

import (
	"errors"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rshade/gasfocus/internal/catalog"
	"github.com/rshade/gasfocus/internal/config"
	"github.com/rshade/gasfocus/internal/engine"
	"github.com/rshade/gasfocus/internal/engine/batch"
	"github.com/rshade/gasfocus/internal/tui"
)

// estimateParams holds the flag values for the estimate command.
type estimateParams struct {
	GasType      string
	Tests        string
	Calibrations string
	Instruments  string

	FleetPath   string
	Concurrency int

	Interactive bool
	Output      string
}

// newEstimateCmd creates the "estimate" subcommand.
//
// Three mutually exclusive modes:
//   - flag mode: --gas plus the three counts
//   - fleet mode: --fleet pointing at a YAML scenario file
//   - interactive mode: --interactive (also chosen automatically when no
//     input flags are given on a terminal)
func newEstimateCmd() *cobra.Command {
	var params estimateParams

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate monthly calibration-gas usage",
		Long: `Estimate monthly calibration-gas consumption in liters.

The estimate is derived from the selected cylinder's bump-test and
calibration durations and flow rate:

  usage = ((bump_min * tests * flow) + (cal_min * calibrations * flow)) * instruments

Counts are passed through as entered; validation messages point at the
field to fix.`,
		Example: `  gasfocus estimate --gas "Ammonia (NH3)" --tests 8 --calibrations 2 --instruments 5
  gasfocus estimate --fleet fleets.yaml --output ndjson
  gasfocus estimate --interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runEstimate(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.GasType, "gas", "", "cylinder gas type (raw catalog label)")
	cmd.Flags().StringVar(&params.Tests, "tests", "", "bump tests per month")
	cmd.Flags().StringVar(&params.Calibrations, "calibrations", "", "calibrations per month")
	cmd.Flags().StringVar(&params.Instruments, "instruments", "", "number of instruments")

	cmd.Flags().StringVar(&params.FleetPath, "fleet", "", "YAML file of fleet scenarios")
	cmd.Flags().IntVar(&params.Concurrency, "concurrency", batch.DefaultConcurrency,
		"maximum scenarios evaluated at once in fleet mode")

	cmd.Flags().BoolVar(&params.Interactive, "interactive", false, "launch the interactive form")
	cmd.Flags().StringVar(&params.Output, "output", "", "output format (table, json, ndjson)")

	return cmd
}

func runEstimate(cmd *cobra.Command, params estimateParams) error {
	ctx := cmd.Context()
	cfg := configFromContext(ctx)

	eng := engine.New(catalog.New())

	interactive := params.Interactive
	if !interactive && params.FleetPath == "" && !anyInputFlagChanged(cmd) {
		// Bare "gasfocus estimate" on a terminal opens the form instead of
		// failing validation on empty inputs.
		interactive = isTerminal(os.Stdin) && isTerminal(os.Stdout)
		if !interactive {
			return engine.ErrMissingField
		}
	}

	if interactive {
		if params.FleetPath != "" {
			return errors.New("--interactive and --fleet are mutually exclusive")
		}
		return tui.Run(ctx, eng, tui.Options{
			DefaultGasType:     cfg.Defaults.GasType,
			DefaultInstruments: cfg.Defaults.Instruments,
		})
	}

	outputName := params.Output
	if outputName == "" {
		outputName = cfg.Output.DefaultFormat
	}
	format, err := engine.ParseOutputFormat(outputName)
	if err != nil {
		return err
	}

	if params.FleetPath != "" {
		return runFleetEstimate(cmd, eng, params, format)
	}

	req := engine.Request{
		GasType:              params.GasType,
		TestsPerMonth:        params.Tests,
		CalibrationsPerMonth: params.Calibrations,
		Instruments:          params.Instruments,
	}
	applyDefaults(&req, cfg)

	result, err := eng.Calculate(ctx, req)
	if err != nil {
		return err
	}

	return engine.RenderResults(cmd.OutOrStdout(), format, []*engine.Result{result})
}

// anyInputFlagChanged reports whether the user supplied any estimation input
// on the command line.
func anyInputFlagChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"gas", "tests", "calibrations", "instruments"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// applyDefaults fills unset request fields from configuration defaults.
func applyDefaults(req *engine.Request, cfg *config.Config) {
	if req.GasType == "" {
		req.GasType = cfg.Defaults.GasType
	}
	if req.Instruments == "" && cfg.Defaults.Instruments > 0 {
		req.Instruments = strconv.Itoa(cfg.Defaults.Instruments)
	}
}

func runFleetEstimate(
	cmd *cobra.Command,
	eng *engine.Engine,
	params estimateParams,
	format engine.OutputFormat,
) error {
	fleet, err := batch.Load(params.FleetPath)
	if err != nil {
		return err
	}

	outcomes, err := batch.Run(cmd.Context(), eng, fleet, params.Concurrency)
	if err != nil {
		return err
	}

	for _, failure := range batch.Failures(outcomes) {
		label := failure.Scenario.Label
		if label == "" {
			label = failure.Scenario.GasType
		}
		cmd.PrintErrf("scenario %q: %v\n", label, failure.Err)
	}

	results := batch.Results(outcomes)
	if len(results) == 0 {
		return errors.New("no fleet scenario produced a result")
	}

	return engine.RenderResults(cmd.OutOrStdout(), format, results)
}
