// SPDX-License-Identifier: MIT
// Package octree: sentinel error set.
// Insert and FromPoints return these sentinels wrapped with an operation
// tag; callers match them via errors.Is. Option constructors panic with the
// option sentinels on meaningless values.

package octree

import "errors"

var (
	// ErrOutOfBounds indicates a point outside the root cube.
	ErrOutOfBounds = errors.New("octree: point outside tree bounds")

	// ErrNonFinite indicates a point with a NaN or ±Inf component.
	ErrNonFinite = errors.New("octree: non-finite point")

	// ErrBadMaxDepth is raised by WithMaxDepth for negative depths.
	ErrBadMaxDepth = errors.New("octree: max depth must be >= 0")

	// ErrBadLeafCapacity is raised by WithLeafCapacity for capacities < 1.
	ErrBadLeafCapacity = errors.New("octree: leaf capacity must be >= 1")

	// ErrNilLogger is raised by WithLogger(nil).
	ErrNilLogger = errors.New("octree: nil logger")
)
