// SPDX-License-Identifier: MIT

package builder

import "errors"

// Sentinel errors returned by builder constructors. Match with errors.Is.
var (
	// ErrTooFewVertices indicates a size parameter below the topology's minimum.
	ErrTooFewVertices = errors.New("builder: parameter too small")

	// ErrInvalidProbability indicates p outside [0,1].
	ErrInvalidProbability = errors.New("builder: probability out of range")

	// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
	ErrNeedRandSource = errors.New("builder: rng is required")

	// ErrConstructFailed indicates BuildGraph received a nil constructor.
	ErrConstructFailed = errors.New("builder: construction failed")

	// ErrOptionViolation indicates an invalid BuilderOption value.
	ErrOptionViolation = errors.New("builder: invalid option value")
)
