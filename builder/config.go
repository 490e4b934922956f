// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn     = DefaultIDFn        ("0","1","2",...)
//   - rng      = nil                (no randomness unless seeded)
//   - weightFn = DefaultWeightFn    (constant DefaultEdgeWeight)
//   - left/right bipartite prefixes = "L" / "R"

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	idFn     IDFn       // index → vertex ID
	rng      *rand.Rand // nil means "no randomness"
	weightFn WeightFn   // edge weight generator

	leftPrefix  string
	rightPrefix string

	err error // first invalid option, surfaced by BuildGraph
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig applies opts over the defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 { return c.weightFn(c.rng) }
