package engine

import (
	"fmt"
	"io"
	"text/tabwriter"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// OutputFormat selects how results are rendered.
type OutputFormat string

// Supported output formats.
const (
	OutputTable  OutputFormat = "table"
	OutputJSON   OutputFormat = "json"
	OutputNDJSON OutputFormat = "ndjson"
)

// ParseOutputFormat validates a user-supplied format name.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch OutputFormat(s) {
	case OutputTable, OutputJSON, OutputNDJSON:
		return OutputFormat(s), nil
	default:
		return "", fmt.Errorf("unsupported output format: %q (want table, json, or ndjson)", s)
	}
}

// printer formats counts with English thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatCount formats an integer count with thousand separators.
func FormatCount(n int) string {
	return printer.Sprintf("%d", n)
}

// resultView is the JSON shape of a Result. Liter values are emitted as
// numbers, already rounded to two decimal places.
type resultView struct {
	ID                   string   `json:"id"`
	Label                string   `json:"label,omitempty"`
	GasType              string   `json:"gas_type"`
	DisplayName          string   `json:"display_name"`
	Components           []string `json:"components"`
	TestsPerMonth        int      `json:"tests_per_month"`
	CalibrationsPerMonth int      `json:"calibrations_per_month"`
	Instruments          int      `json:"instruments"`
	BumpLiters           float64  `json:"bump_liters"`
	CalLiters            float64  `json:"cal_liters"`
	Liters               float64  `json:"liters"`
}

// reportView is the envelope for the json format.
type reportView struct {
	Results     []resultView `json:"results"`
	TotalLiters float64      `json:"total_liters"`
}

func newResultView(r *Result) resultView {
	return resultView{
		ID:                   r.ID,
		Label:                r.Label,
		GasType:              r.GasType,
		DisplayName:          r.DisplayName,
		Components:           r.Components,
		TestsPerMonth:        r.TestsPerMonth,
		CalibrationsPerMonth: r.CalibrationsPerMonth,
		Instruments:          r.Instruments,
		BumpLiters:           r.BumpLiters.InexactFloat64(),
		CalLiters:            r.CalLiters.InexactFloat64(),
		Liters:               r.Liters.InexactFloat64(),
	}
}

// RenderResults writes results to w in the requested format.
func RenderResults(w io.Writer, format OutputFormat, results []*Result) error {
	switch format {
	case OutputJSON:
		return renderJSON(w, results)
	case OutputNDJSON:
		return renderNDJSON(w, results)
	case OutputTable:
		return renderTable(w, results)
	default:
		return fmt.Errorf("unsupported output format: %q", format)
	}
}

func renderJSON(w io.Writer, results []*Result) error {
	report := reportView{Results: make([]resultView, 0, len(results))}
	total := decimal.Zero
	for _, r := range results {
		report.Results = append(report.Results, newResultView(r))
		total = total.Add(r.Liters)
	}
	report.TotalLiters = total.InexactFloat64()

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func renderNDJSON(w io.Writer, results []*Result) error {
	enc := json.NewEncoder(w)
	for _, r := range results {
		if err := enc.Encode(newResultView(r)); err != nil {
			return err
		}
	}
	return nil
}

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

func renderTable(w io.Writer, results []*Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	fmt.Fprintln(tw, "LABEL\tGAS TYPE\tTESTS\tCALS\tINSTR\tBUMP L\tCAL L\tMONTHLY USAGE")

	total := decimal.Zero
	for _, r := range results {
		label := r.Label
		if label == "" {
			label = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			label,
			r.DisplayName,
			FormatCount(r.TestsPerMonth),
			FormatCount(r.CalibrationsPerMonth),
			FormatCount(r.Instruments),
			r.BumpLiters.StringFixed(litersScale),
			r.CalLiters.StringFixed(litersScale),
			r.LitersString(),
		)
		total = total.Add(r.Liters)
	}

	if len(results) > 1 {
		fmt.Fprintf(tw, "TOTAL\t\t\t\t\t\t\t%s Liters\n", total.StringFixed(litersScale))
	}

	return tw.Flush()
}
