package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/gasfocus/internal/cli"
	"github.com/rshade/gasfocus/internal/config"
	"github.com/rshade/gasfocus/internal/engine"
)

// execute runs the root command with args and captures stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	// Keep test runs independent of any config on the host.
	t.Setenv(config.EnvConfigPath, filepath.Join(t.TempDir(), "no-config.yaml"))

	cmd := cli.NewRootCmd("test")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEstimate_Table(t *testing.T) {
	stdout, _, err := execute(t,
		"estimate",
		"--gas", "Carbon Monoxide (CO)",
		"--tests", "10",
		"--calibrations", "4",
		"--instruments", "2",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Carbon Monoxide")
	assert.Contains(t, stdout, "10.00 Liters")
}

func TestEstimate_JSON(t *testing.T) {
	stdout, _, err := execute(t,
		"estimate",
		"--gas", "Chlorine (Cl2)",
		"--tests", "0",
		"--calibrations", "1",
		"--instruments", "1",
		"--output", "json",
	)
	require.NoError(t, err)

	var report struct {
		Results []struct {
			DisplayName string  `json:"display_name"`
			Liters      float64 `json:"liters"`
		} `json:"results"`
		TotalLiters float64 `json:"total_liters"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.Len(t, report.Results, 1)
	assert.Equal(t, "Chlorine", report.Results[0].DisplayName)
	assert.InDelta(t, 3.0, report.Results[0].Liters, 0.0001)
}

func TestEstimate_ValidationErrorsSurfaceUserMessage(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{
			name: "missing fields",
			args: []string{"estimate", "--gas", "Ammonia (NH3)"},
			want: engine.ErrMissingField,
		},
		{
			name: "unknown gas",
			args: []string{
				"estimate", "--gas", "Unknown Gas (XX)",
				"--tests", "1", "--calibrations", "1", "--instruments", "1",
			},
			want: engine.ErrUnknownGasType,
		},
		{
			name: "invalid number",
			args: []string{
				"estimate", "--gas", "Ammonia (NH3)",
				"--tests", "abc", "--calibrations", "1", "--instruments", "1",
			},
			want: engine.ErrInvalidNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// Bare "estimate" outside a terminal cannot fall back to the interactive
// form, so it fails fast with the missing-field message.
func TestEstimate_NoFlagsWithoutTerminal(t *testing.T) {
	_, _, err := execute(t, "estimate")
	assert.ErrorIs(t, err, engine.ErrMissingField)
}

func TestEstimate_InteractiveAndFleetAreExclusive(t *testing.T) {
	_, _, err := execute(t, "estimate", "--interactive", "--fleet", "x.yaml")
	assert.ErrorContains(t, err, "mutually exclusive")
}

func TestEstimate_Fleet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
scenarios:
  - label: plant-a
    gas_type: "Carbon Monoxide (CO)"
    tests: 10
    calibrations: 4
    instruments: 2
  - label: broken
    gas_type: "Unknown Gas (XX)"
    tests: 1
    calibrations: 1
    instruments: 1
`), 0o600))

	stdout, stderr, err := execute(t, "estimate", "--fleet", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "plant-a")
	assert.Contains(t, stdout, "10.00 Liters")
	// The broken scenario is reported on stderr without failing the run.
	assert.Contains(t, stderr, "broken")
	assert.Contains(t, stderr, "Invalid gas type selected")
}

func TestEstimate_FleetAllFailed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
scenarios:
  - label: broken
    gas_type: "Unknown Gas (XX)"
    tests: 1
    calibrations: 1
    instruments: 1
`), 0o600))

	_, _, err := execute(t, "estimate", "--fleet", path)
	assert.ErrorContains(t, err, "no fleet scenario produced a result")
}

func TestEstimate_DefaultsFromConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
defaults:
  gas_type: "Chlorine (Cl2)"
  instruments: 1
`), 0o600))

	cmd := cli.NewRootCmd("test")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{
		"--config", cfgPath,
		"estimate", "--tests", "0", "--calibrations", "1",
	})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "3.00 Liters")
}

func TestEstimate_UnsupportedOutput(t *testing.T) {
	_, _, err := execute(t,
		"estimate", "--gas", "Ammonia (NH3)",
		"--tests", "1", "--calibrations", "1", "--instruments", "1",
		"--output", "xml",
	)
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestCatalog_Table(t *testing.T) {
	stdout, _, err := execute(t, "catalog")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	// Header plus the ten cylinder records.
	assert.Len(t, lines, 11)
	assert.Contains(t, stdout, "GAS TYPE")
	assert.Contains(t, stdout, "5 in 1 (O2,LEL,CO,H2S,SO2)")
	assert.Contains(t, stdout, "Chlorine")
}

func TestCatalog_JSON(t *testing.T) {
	stdout, _, err := execute(t, "catalog", "--output", "json")
	require.NoError(t, err)

	var views []struct {
		GasType     string   `json:"gas_type"`
		Components  []string `json:"components"`
		BumpTimeMin float64  `json:"bump_time_min"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &views))
	require.Len(t, views, 10)
	assert.Equal(t, "3 in 1 (O2,LEL,CO)", views[0].GasType)
	assert.Equal(t, []string{"O2", "LEL", "CO"}, views[0].Components)
	assert.InDelta(t, 0.5, views[0].BumpTimeMin, 0.0001)
}

func TestTUI_RequiresTerminal(t *testing.T) {
	_, _, err := execute(t, "tui")
	assert.ErrorContains(t, err, "requires a terminal")
}
