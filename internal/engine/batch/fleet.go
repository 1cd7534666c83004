// Package batch evaluates a fleet of usage scenarios against the engine in
// one run, with bounded concurrency.
package batch

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/rshade/gasfocus/internal/engine"
)

// Scenario is one named fleet entry in a fleet file. Omitted counts default
// to zero; an omitted instrument count fails range validation downstream.
type Scenario struct {
	Label        string `yaml:"label"`
	GasType      string `yaml:"gas_type"`
	Tests        int    `yaml:"tests"`
	Calibrations int    `yaml:"calibrations"`
	Instruments  int    `yaml:"instruments"`
}

// Request converts the scenario into an engine request. Counts are passed
// through as strings because the engine owns numeric validation.
func (s Scenario) Request() engine.Request {
	return engine.Request{
		Label:                s.Label,
		GasType:              s.GasType,
		TestsPerMonth:        strconv.Itoa(s.Tests),
		CalibrationsPerMonth: strconv.Itoa(s.Calibrations),
		Instruments:          strconv.Itoa(s.Instruments),
	}
}

// Fleet is the YAML fleet-file shape:
//
//	scenarios:
//	  - label: plant-a
//	    gas_type: "4 in 1 (O2,LEL,CO,H2S)"
//	    tests: 20
//	    calibrations: 4
//	    instruments: 12
type Fleet struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// ErrEmptyFleet indicates a fleet file with no scenarios.
var ErrEmptyFleet = errors.New("fleet file contains no scenarios")

// Load reads and decodes a fleet file.
func Load(path string) (*Fleet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fleet file: %w", err)
	}

	var fleet Fleet
	if err := yaml.Unmarshal(data, &fleet); err != nil {
		return nil, fmt.Errorf("parsing fleet file %s: %w", path, err)
	}

	if len(fleet.Scenarios) == 0 {
		return nil, ErrEmptyFleet
	}

	return &fleet, nil
}
