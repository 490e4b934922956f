// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/mgraph/graph"
)

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4

	// CenterVertexID is the fixed hub ID used by Star and Wheel.
	CenterVertexID = "Center"
)

// Star returns a Constructor for a star with hub CenterVertexID and n-1
// leaves cfg.idFn(0..n-2). The hub is added first, so it takes the lowest
// fresh index. Edges run Center→leaf in leaf order.
func Star(n int) Constructor {
	return func(g *graph.Graph[string], cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		return spokes(g, cfg, methodStar, n-1)
	}
}

// Wheel returns a Constructor for W_n: the cycle C_{n-1} over cfg.idFn(0..n-2)
// plus a hub CenterVertexID joined to every rim vertex. Rim edges come first.
func Wheel(n int) Constructor {
	return func(g *graph.Graph[string], cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}

		return spokes(g, cfg, methodWheel, n-1)
	}
}

// spokes adds the hub and leaves and joins Center→leaf for each leaf.
func spokes(g *graph.Graph[string], cfg builderConfig, method string, leaves int) error {
	if _, err := g.AddVertex(CenterVertexID); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", method, CenterVertexID, err)
	}
	ids, err := addVertices(g, cfg, method, leaves)
	if err != nil {
		return err
	}
	for _, leaf := range ids {
		if err = connect(g, cfg, method, CenterVertexID, leaf); err != nil {
			return err
		}
	}

	return nil
}
