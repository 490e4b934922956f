// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go - Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Vertices via cfg.idFn in ascending index order (0..n-1).
//   - Edges in stable order i → (i+1)%n for i=0..n-1.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mgraph/graph"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *graph.Graph[string], cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		// Ring edges; i == n-1 closes back to 0.
		for i := 0; i < n; i++ {
			if err = connect(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
