// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/mgraph/graph"
)

// addVertices adds cfg.idFn(0..n-1) in ascending order and returns the IDs.
func addVertices(g *graph.Graph[string], cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if _, err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}

// connect adds u→v with the next configured weight.
func connect(g *graph.Graph[string], cfg builderConfig, method, u, v string) error {
	w := cfg.weight()
	if err := g.AddWeightedEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// connectBoth adds u→v and, for directed graphs, v→u with the same weight.
func connectBoth(g *graph.Graph[string], cfg builderConfig, method, u, v string) error {
	w := cfg.weight()
	if err := g.AddWeightedEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, u, v, w, err)
	}
	if g.IsDirected() {
		if err := g.AddWeightedEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, v, u, w, err)
		}
	}

	return nil
}
