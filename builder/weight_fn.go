// SPDX-License-Identifier: MIT

package builder

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/mgraph/graph"
)

// WeightFn draws one edge weight. rng may be nil; implementations must then
// return a deterministic value.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns graph.DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return graph.DefaultEdgeWeight
}

// ConstantWeightFn always returns value.
func ConstantWeightFn(value int64) WeightFn {
	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn draws uniformly from [min, max]. Reversed bounds are
// swapped. Without an RNG it returns min.
func UniformWeightFn(min, max int64) WeightFn {
	if max < min {
		min, max = max, min
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}
		span := max - min
		if span < 0 || span == math.MaxInt64 {
			// Full int64 range; the span does not fit Int63n.
			return min + rng.Int63()
		}

		return min + rng.Int63n(span+1)
	}
}

// WithConstantWeight is shorthand for WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is shorthand for WithWeightFn(UniformWeightFn(min, max)).
func WithUniformWeight(min, max int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
