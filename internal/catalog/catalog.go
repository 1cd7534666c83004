// Package catalog defines the calibration-gas cylinder catalog: the fixed
// set of cylinder types a fleet can be calibrated with, each carrying the
// timing and flow constants the usage engine consumes.
package catalog

import "github.com/shopspring/decimal"

// CylinderRecord describes one purchasable calibration-gas cylinder type.
// Records are immutable once the catalog is built.
type CylinderRecord struct {
	// GasType is the raw label and the unique key for catalog lookups.
	GasType string

	// DisplayName is derived from GasType via ParseLabel.
	DisplayName string

	// Components lists the gas components in label order.
	Components []string

	// BumpTime is the duration of one bump test, in minutes.
	BumpTime decimal.Decimal

	// CalTime is the duration of one calibration, in minutes.
	CalTime decimal.Decimal

	// FlowRate is the gas delivery rate, in liters per minute.
	FlowRate decimal.Decimal
}

// cylinderSpecs is the authoritative cylinder table: raw label, bump-test
// minutes, calibration minutes, and flow rate in liters per minute.
var cylinderSpecs = []struct { //nolint:gochecknoglobals // Fixed domain data.
	label string
	bump  string
	cal   string
	flow  string
}{
	{"3 in 1 (O2,LEL,CO)", "0.5", "2", "0.5"},
	{"3 in 1 (O2,LEL,H2S)", "0.5", "2", "0.5"},
	{"4 in 1 (O2,LEL,CO,H2S)", "0.4", "1.5", "0.5"},
	{"4 in 1 (O2,LEL,CO,CO2)", "0.5", "2.15", "0.5"},
	{"5 in 1 (O2,LEL,CO,H2S,CO2)", "0.5", "2.15", "0.5"},
	{"5 in 1 (O2,LEL,CO,H2S,SO2)", "0.75", "2.5", "0.5"},
	{"Ammonia (NH3)", "1", "3", "0.5"},
	{"Carbon Dioxide (CO2)", "0.5", "1.5", "0.5"},
	{"Carbon Monoxide (CO)", "0.4", "1.5", "0.5"},
	{"Chlorine (Cl2)", "3", "6", "0.5"},
}

// Catalog is the immutable, ordered set of cylinder records. Build it once
// at startup with New and share the handle; it is safe for concurrent reads.
type Catalog struct {
	records []CylinderRecord
	index   map[string]int
}

// New builds the cylinder catalog from the fixed cylinder table.
func New() *Catalog {
	c := &Catalog{
		records: make([]CylinderRecord, 0, len(cylinderSpecs)),
		index:   make(map[string]int, len(cylinderSpecs)),
	}

	for _, spec := range cylinderSpecs {
		parsed := ParseLabel(spec.label)
		c.index[spec.label] = len(c.records)
		c.records = append(c.records, CylinderRecord{
			GasType:     spec.label,
			DisplayName: parsed.DisplayName,
			Components:  parsed.Components,
			BumpTime:    decimal.RequireFromString(spec.bump),
			CalTime:     decimal.RequireFromString(spec.cal),
			FlowRate:    decimal.RequireFromString(spec.flow),
		})
	}

	return c
}

// Records returns the cylinder records in catalog order. The returned slice
// is a copy; callers cannot mutate catalog state through it.
func (c *Catalog) Records() []CylinderRecord {
	out := make([]CylinderRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Lookup returns the record keyed by the raw gas-type label.
func (c *Catalog) Lookup(gasType string) (CylinderRecord, bool) {
	i, ok := c.index[gasType]
	if !ok {
		return CylinderRecord{}, false
	}
	return c.records[i], true
}

// Len returns the number of cylinder records.
func (c *Catalog) Len() int {
	return len(c.records)
}
