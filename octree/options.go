// SPDX-License-Identifier: MIT
// Package: spatiumgl/octree
//
// options.go - functional options for tree construction.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs.
//   • Insert and Query never panic.
//   • Defaults come from DefaultOptions; no hidden globals.

package octree

import "github.com/sirupsen/logrus"

const (
	// DefaultMaxDepth bounds subdivision; deeper leaves simply grow.
	DefaultMaxDepth = 8

	// DefaultLeafCapacity is the point count that triggers a split.
	DefaultLeafCapacity = 16
)

// Options configures an Octree.
type Options struct {
	// MaxDepth is the deepest level a node may be split to (root = 0).
	MaxDepth int

	// LeafCapacity is the number of points a leaf holds before splitting.
	LeafCapacity int

	// Logger receives debug entries for splits and rejected points.
	Logger logrus.FieldLogger
}

// Option mutates Options before the tree is built.
type Option func(*Options)

// DefaultOptions returns the baseline configuration:
//   - MaxDepth = DefaultMaxDepth
//   - LeafCapacity = DefaultLeafCapacity
//   - Logger = logrus.StandardLogger()
func DefaultOptions() Options {
	return Options{
		MaxDepth:     DefaultMaxDepth,
		LeafCapacity: DefaultLeafCapacity,
		Logger:       logrus.StandardLogger(),
	}
}

// WithMaxDepth caps subdivision depth. Panics on d < 0.
func WithMaxDepth(d int) Option {
	if d < 0 {
		panic(ErrBadMaxDepth.Error())
	}
	return func(o *Options) {
		o.MaxDepth = d
	}
}

// WithLeafCapacity sets the split threshold. Panics on n < 1.
func WithLeafCapacity(n int) Option {
	if n < 1 {
		panic(ErrBadLeafCapacity.Error())
	}
	return func(o *Options) {
		o.LeafCapacity = n
	}
}

// WithLogger routes tree diagnostics to l. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(ErrNilLogger.Error())
	}
	return func(o *Options) {
		o.Logger = l
	}
}
