// SPDX-License-Identifier: MIT

package graph

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/mgraph/matrix"
)

const (
	// DefaultCapacity is the vertex bound used when WithCapacity is not given.
	DefaultCapacity = 10

	// MaxCapacity bounds WithCapacity; the matrix needs capacity² cells.
	MaxCapacity = matrix.MaxCapacity

	// MaxWeight bounds |w| in AddWeightedEdge so path and tree sums stay in int64.
	MaxWeight = matrix.MaxWeight

	// DefaultEdgeWeight is the weight AddEdge stores.
	DefaultEdgeWeight int64 = 1
)

// tagMaxCapacity is the struct tag that enforces Capacity <= MaxCapacity.
const tagMaxCapacity = "maxcap"

// validate checks Options struct tags.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// RegisterValidation only fails on an empty tag or a nil func.
	_ = v.RegisterValidation(tagMaxCapacity, func(fl validator.FieldLevel) bool {
		return fl.Field().Int() <= MaxCapacity
	})

	return v
}

// Options is the resolved construction configuration of a Graph.
type Options struct {
	// Capacity is the maximum number of vertices; fixed for the graph's lifetime.
	Capacity int `validate:"min=1,maxcap"`

	// Directed selects one-way edges; undirected edges are stored mirrored.
	Directed bool
}

// Option mutates Options.
type Option func(*Options)

// WithCapacity sets the vertex bound. It must lie in [1, MaxCapacity].
func WithCapacity(n int) Option {
	return func(o *Options) { o.Capacity = n }
}

// WithDirected makes the graph directed.
func WithDirected() Option {
	return func(o *Options) { o.Directed = true }
}

// WithUndirected makes the graph undirected (the default).
func WithUndirected() Option {
	return func(o *Options) { o.Directed = false }
}

// DefaultOptions returns capacity DefaultCapacity, undirected.
func DefaultOptions() Options {
	return Options{Capacity: DefaultCapacity}
}

// resolveOptions applies opts over the defaults and validates the result.
func resolveOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := validate.Struct(o); err != nil {
		return o, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return o, nil
}
