// Package engine computes estimated monthly calibration-gas consumption
// from a cylinder catalog record and per-fleet activity counts.
package engine

import (
	"context"
	"strconv"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/rshade/gasfocus/internal/catalog"
	"github.com/rshade/gasfocus/internal/logging"
)

// litersScale is the number of decimal places usage results are rounded to.
const litersScale = 2

// Engine evaluates usage requests against an immutable cylinder catalog.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
}

// New creates an Engine over the given catalog handle.
func New(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat}
}

// Catalog returns the catalog handle the engine was built with.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Request carries one usage calculation's inputs. The three counts arrive as
// the raw strings the presentation layer collected; the engine owns parsing
// and validation.
type Request struct {
	// Label optionally names the scenario (used by fleet reports).
	Label string

	// GasType is the raw cylinder label selecting the catalog record.
	GasType string

	// TestsPerMonth is the number of bump tests per month.
	TestsPerMonth string

	// CalibrationsPerMonth is the number of calibrations per month.
	CalibrationsPerMonth string

	// Instruments is the number of instruments in the fleet.
	Instruments string
}

// Result is one completed usage calculation. All liter values are rounded
// to two decimal places, half away from zero.
type Result struct {
	ID                   string
	Label                string
	GasType              string
	DisplayName          string
	Components           []string
	TestsPerMonth        int
	CalibrationsPerMonth int
	Instruments          int

	// BumpLiters and CalLiters break the total down by activity, each
	// already scaled by the instrument count.
	BumpLiters decimal.Decimal
	CalLiters  decimal.Decimal

	// Liters is the estimated monthly consumption. It is rounded from the
	// unrounded activity sum, not from the rounded breakdown values.
	Liters decimal.Decimal
}

// LitersString renders the result the way the UI displays it, e.g.
// "10.00 Liters".
func (r *Result) LitersString() string {
	return r.Liters.StringFixed(litersScale) + " Liters"
}

// Calculate validates req and computes estimated monthly gas usage:
//
//	usage = ((bump*tests*flow) + (cal*calibrations*flow)) * instruments
//
// Validation is fail-fast in a fixed order: missing fields, unknown gas
// type, unparseable numbers, out-of-range counts. The context is used for
// logging only; the computation itself never blocks.
func (e *Engine) Calculate(ctx context.Context, req Request) (*Result, error) {
	log := logging.FromContext(ctx)

	if strings.TrimSpace(req.GasType) == "" ||
		req.TestsPerMonth == "" ||
		req.CalibrationsPerMonth == "" ||
		req.Instruments == "" {
		return nil, ErrMissingField
	}

	record, ok := e.catalog.Lookup(req.GasType)
	if !ok {
		log.Debug().
			Str("component", "engine").
			Str("gas_type", req.GasType).
			Msg("gas type not in catalog")
		return nil, ErrUnknownGasType
	}

	tests, err := strconv.Atoi(strings.TrimSpace(req.TestsPerMonth))
	if err != nil {
		return nil, ErrInvalidNumber
	}
	calibrations, err := strconv.Atoi(strings.TrimSpace(req.CalibrationsPerMonth))
	if err != nil {
		return nil, ErrInvalidNumber
	}
	instruments, err := strconv.Atoi(strings.TrimSpace(req.Instruments))
	if err != nil {
		return nil, ErrInvalidNumber
	}

	if tests < 0 || calibrations < 0 || instruments < 1 {
		return nil, ErrOutOfRange
	}

	instrumentCount := decimal.NewFromInt(int64(instruments))
	bump := record.BumpTime.
		Mul(decimal.NewFromInt(int64(tests))).
		Mul(record.FlowRate).
		Mul(instrumentCount)
	cal := record.CalTime.
		Mul(decimal.NewFromInt(int64(calibrations))).
		Mul(record.FlowRate).
		Mul(instrumentCount)

	result := &Result{
		ID:                   ulid.Make().String(),
		Label:                req.Label,
		GasType:              record.GasType,
		DisplayName:          record.DisplayName,
		Components:           record.Components,
		TestsPerMonth:        tests,
		CalibrationsPerMonth: calibrations,
		Instruments:          instruments,
		BumpLiters:           bump.Round(litersScale),
		CalLiters:            cal.Round(litersScale),
		Liters:               bump.Add(cal).Round(litersScale),
	}

	log.Debug().
		Str("component", "engine").
		Str("operation", "calculate").
		Str("gas_type", record.GasType).
		Int("tests_per_month", tests).
		Int("calibrations_per_month", calibrations).
		Int("instruments", instruments).
		Str("liters", result.Liters.String()).
		Msg("usage calculated")

	return result, nil
}
