// SPDX-License-Identifier: MIT

// Package builder assembles deterministic graph.Graph[string] fixtures for
// tests, examples and benchmarks.
//
// One orchestrator, BuildGraph(gopts, bopts, cons...), creates the graph from
// graph options, resolves the builder configuration from BuilderOptions and
// applies Constructors in order. Constructors compose: vertices are added
// idempotently, so Path(4) followed by Star(4) shares the leaf IDs.
//
// Topologies:
//
//   - Path(n)                 P_n, n ≥ 2
//   - Cycle(n)                C_n, n ≥ 3
//   - Star(n)                 center "Center" plus n-1 leaves, n ≥ 2
//   - Wheel(n)                C_{n-1} plus a spoked center, n ≥ 4
//   - Complete(n)             K_n, n ≥ 1
//   - CompleteBipartite(a, b) K_{a,b} with prefixed side IDs
//   - Grid(rows, cols)        4-neighbourhood lattice with "r,c" IDs
//   - RandomSparse(n, p)      each admissible pair kept with probability p
//
// Determinism:
//
//   - Vertices are added in index order; IDs come from the ID scheme
//     (WithIDScheme, default "0","1",...).
//   - Edges are emitted in a documented order and weights are drawn in that
//     order from the weight function (WithWeightFn, default constant 1).
//   - Same seed, options and constructor order ⇒ identical graphs.
//
// Capacity: the graph's capacity bounds every constructor. Pass
// graph.WithCapacity in gopts for fixtures larger than graph.DefaultCapacity;
// overflow surfaces as graph.ErrCapacityExceeded.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrOptionViolation, ErrConstructFailed, plus wrapped graph errors.
package builder
