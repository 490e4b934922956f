// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/mgraph/graph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c"; the grid ignores the ID scheme
)

// Grid returns a Constructor for a rows×cols 4-neighbourhood lattice. Cells
// are added row-major with IDs "r,c". For each cell the right edge is emitted
// before the down edge; directed graphs receive both directions.
func Grid(rows, cols int) Constructor {
	return func(g *graph.Graph[string], cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		cell := func(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if _, err := g.AddVertex(cell(r, c)); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, cell(r, c), err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := connectBoth(g, cfg, methodGrid, cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connectBoth(g, cfg, methodGrid, cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
