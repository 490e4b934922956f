// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption configures builderConfig.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index → vertex ID function. nil is an option violation.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.err = fmt.Errorf("WithIDScheme(nil): %w", ErrOptionViolation)
			return
		}
		c.idFn = fn
	}
}

// WithRand uses r for every stochastic choice. nil is an option violation.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r == nil {
			c.err = fmt.Errorf("WithRand(nil): %w", ErrOptionViolation)
			return
		}
		c.rng = r
	}
}

// WithSeed seeds a private RNG, making stochastic constructors reproducible.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight generator. nil is an option violation.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.err = fmt.Errorf("WithWeightFn(nil): %w", ErrOptionViolation)
			return
		}
		c.weightFn = fn
	}
}

// WithPartitionPrefix sets the CompleteBipartite side prefixes; empty keeps the default.
func WithPartitionPrefix(left, right string) BuilderOption {
	return func(c *builderConfig) {
		c.leftPrefix, c.rightPrefix = left, right
	}
}
