package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/rshade/gasfocus/internal/catalog"
	"github.com/rshade/gasfocus/internal/engine"
)

// catalogTablePadding is the minimum padding between catalog table columns.
const catalogTablePadding = 2

// cylinderView is the JSON shape of one catalog entry.
type cylinderView struct {
	GasType     string   `json:"gas_type"`
	DisplayName string   `json:"display_name"`
	Components  []string `json:"components"`
	BumpTimeMin float64  `json:"bump_time_min"`
	CalTimeMin  float64  `json:"cal_time_min"`
	FlowRate    float64  `json:"flow_rate"`
}

// newCatalogCmd creates the "catalog" subcommand listing the cylinder types
// available for estimation.
func newCatalogCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the calibration-gas cylinder catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			outputName := output
			if outputName == "" {
				outputName = configFromContext(cmd.Context()).Output.DefaultFormat
			}
			format, err := engine.ParseOutputFormat(outputName)
			if err != nil {
				return err
			}
			return renderCatalog(cmd, format, catalog.New())
		},
	}

	cmd.Flags().StringVar(&output, "output", "", "output format (table, json, ndjson)")

	return cmd
}

func renderCatalog(cmd *cobra.Command, format engine.OutputFormat, cat *catalog.Catalog) error {
	records := cat.Records()

	switch format {
	case engine.OutputJSON, engine.OutputNDJSON:
		enc := json.NewEncoder(cmd.OutOrStdout())
		if format == engine.OutputJSON {
			enc.SetIndent("", "  ")
			views := make([]cylinderView, 0, len(records))
			for _, rec := range records {
				views = append(views, newCylinderView(rec))
			}
			return enc.Encode(views)
		}
		for _, rec := range records {
			if err := enc.Encode(newCylinderView(rec)); err != nil {
				return err
			}
		}
		return nil

	case engine.OutputTable:
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, catalogTablePadding, ' ', 0)
		fmt.Fprintln(tw, "GAS TYPE\tDISPLAY NAME\tCOMPONENTS\tBUMP MIN\tCAL MIN\tFLOW L/MIN")
		for _, rec := range records {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				rec.GasType,
				rec.DisplayName,
				strings.Join(rec.Components, ","),
				rec.BumpTime.String(),
				rec.CalTime.String(),
				rec.FlowRate.String(),
			)
		}
		return tw.Flush()

	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}

func newCylinderView(rec catalog.CylinderRecord) cylinderView {
	return cylinderView{
		GasType:     rec.GasType,
		DisplayName: rec.DisplayName,
		Components:  rec.Components,
		BumpTimeMin: rec.BumpTime.InexactFloat64(),
		CalTimeMin:  rec.CalTime.InexactFloat64(),
		FlowRate:    rec.FlowRate.InexactFloat64(),
	}
}
