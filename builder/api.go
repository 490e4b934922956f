// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/mgraph/graph"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors; they never panic.
type Constructor func(g *graph.Graph[string], cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves the builder configuration
// from bopts and applies cons in order. The first failing constructor aborts
// the build; its error is wrapped as "BuildGraph: %w".
//
// Errors:
//   - graph.ErrInvalidOptions from gopts.
//   - ErrOptionViolation from bopts.
//   - ErrConstructFailed for a nil constructor.
//   - Any constructor sentinel (ErrTooFewVertices, ErrInvalidProbability, ...).
func BuildGraph(gopts []graph.Option, bopts []BuilderOption, cons ...Constructor) (*graph.Graph[string], error) {
	g, err := graph.New[string](gopts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", cfg.err)
	}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
