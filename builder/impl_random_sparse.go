// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi-like; each admissible pair is kept independently with
// probability p.
//   - Undirected: unordered pairs {i,j}, i<j.
//   - Directed:   ordered pairs (i,j), i≠j.
//
// Contract:
//   - n ≥ 1 (ErrTooFewVertices); 0 ≤ p ≤ 1 (ErrInvalidProbability).
//   - cfg.rng is required when 0 < p < 1 (ErrNeedRandSource).
//   - Trial order: i asc, j asc. The weight is drawn only for kept pairs.
//
// Complexity: O(n²) trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mgraph/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random graph over n
// vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *graph.Graph[string], cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		ids, err := addVertices(g, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}

		// keep decides one trial; p ∈ {0,1} needs no randomness.
		keep := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			default:
				return cfg.rng.Float64() < p
			}
		}

		directed := g.IsDirected()
		for i := 0; i < n; i++ {
			j := i + 1
			if directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err = connect(g, cfg, methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
