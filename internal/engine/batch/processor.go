package batch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/rshade/gasfocus/internal/engine"
)

// DefaultConcurrency bounds how many scenarios are evaluated at once when
// the caller does not choose a limit.
const DefaultConcurrency = 8

// Outcome pairs a scenario with its result or its validation error.
// Exactly one of Result and Err is set.
type Outcome struct {
	Scenario Scenario
	Result   *engine.Result
	Err      error
}

// Run evaluates every fleet scenario concurrently and returns outcomes in
// scenario order. Validation failures are captured per scenario rather than
// aborting the run; context cancellation aborts it.
func Run(ctx context.Context, eng *engine.Engine, fleet *Fleet, concurrency int) ([]Outcome, error) {
	if len(fleet.Scenarios) == 0 {
		return nil, ErrEmptyFleet
	}
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}

	outcomes := make([]Outcome, len(fleet.Scenarios))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, scenario := range fleet.Scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			result, err := eng.Calculate(ctx, scenario.Request())
			if err != nil {
				if engine.IsValidation(err) {
					outcomes[i] = Outcome{Scenario: scenario, Err: err}
					return nil
				}
				return err
			}

			outcomes[i] = Outcome{Scenario: scenario, Result: result}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return outcomes, nil
}

// Results extracts the successful results from outcomes, preserving order.
func Results(outcomes []Outcome) []*engine.Result {
	results := make([]*engine.Result, 0, len(outcomes))
	for _, o := range outcomes {
		if o.Result != nil {
			results = append(results, o.Result)
		}
	}
	return results
}

// Failures extracts the failed outcomes, preserving order.
func Failures(outcomes []Outcome) []Outcome {
	var failed []Outcome
	for _, o := range outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}
