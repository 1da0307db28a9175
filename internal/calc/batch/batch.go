// Package batch evaluates many inputs for one calculator concurrently.
package batch

import (
	"context"
	"encoding/json"
	"errors"

	"golang.org/x/sync/errgroup"

	"Pulse/internal/calc/catalog"
	"Pulse/internal/health/analysis"
	"Pulse/internal/health/measure"
)

// MaxItems bounds one request.
const MaxItems = 1000

type Input struct {
	Calculator string            `json:"calculator"`
	Items      []json.RawMessage `json:"items"`
}

// ItemResult holds either a result or the validation error for one item.
type ItemResult struct {
	Index  int                      `json:"index"`
	Result analysis.Summarizer      `json:"result,omitempty"`
	Error  *measure.ValidationError `json:"error,omitempty"`
}

type Result struct {
	Calculator string       `json:"calculator"`
	Succeeded  int          `json:"succeeded"`
	Failed     int          `json:"failed"`
	Results    []ItemResult `json:"results"`
}

// Calculate runs every item through the calculator with at most workers
// goroutines. Invalid items are reported per item; any other error aborts the
// whole batch. Results keep the order of the input.
func Calculate(ctx context.Context, in Input, workers int) (Result, error) {
	entry, err := catalog.Lookup(in.Calculator)
	if err != nil {
		return Result{}, err
	}
	if len(in.Items) == 0 {
		return Result{}, measure.Invalid("items", "no items")
	}
	if len(in.Items) > MaxItems {
		return Result{}, measure.Invalid("items", "at most %d items per batch", MaxItems)
	}
	if workers < 1 {
		workers = 1
	}

	out := Result{Calculator: entry.Name, Results: make([]ItemResult, len(in.Items))}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, raw := range in.Items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := entry.Run(raw)
			var ve measure.ValidationError
			switch {
			case errors.As(err, &ve):
				out.Results[i] = ItemResult{Index: i, Error: &ve}
			case err != nil:
				return err
			default:
				out.Results[i] = ItemResult{Index: i, Result: res}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	for _, r := range out.Results {
		if r.Error != nil {
			out.Failed++
		} else {
			out.Succeeded++
		}
	}
	return out, nil
}
