// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/mgraph/graph"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor for the simple path P_n.
// Edges are emitted i→i+1 for i = 0..n-2; directed graphs get that direction only.
func Path(n int) Constructor {
	return func(g *graph.Graph[string], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = connect(g, cfg, methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
