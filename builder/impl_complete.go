// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/mgraph/graph"
)

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartitionSize        = 1
)

// Complete returns a Constructor for K_n. Pairs i<j are emitted in row-major
// order; directed graphs receive both directions with the same weight.
func Complete(n int) Constructor {
	return func(g *graph.Graph[string], cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = connectBoth(g, cfg, methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor for K_{a,b}. Left vertices are
// leftPrefix+"0".."a-1", right vertices rightPrefix+"0".."b-1"; all left
// vertices are added before the right ones. Edges run left→right.
func CompleteBipartite(a, b int) Constructor {
	return func(g *graph.Graph[string], cfg builderConfig) error {
		if a < minPartitionSize || b < minPartitionSize {
			return fmt.Errorf("%s: a=%d, b=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, a, b, minPartitionSize, ErrTooFewVertices)
		}
		left := cfg
		left.idFn = PrefixIDFn(cfg.leftPrefix)
		right := cfg
		right.idFn = PrefixIDFn(cfg.rightPrefix)

		ls, err := addVertices(g, left, methodCompleteBipartite, a)
		if err != nil {
			return err
		}
		rs, err := addVertices(g, right, methodCompleteBipartite, b)
		if err != nil {
			return err
		}
		for _, u := range ls {
			for _, v := range rs {
				if err = connect(g, cfg, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
