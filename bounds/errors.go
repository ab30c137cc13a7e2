// SPDX-License-Identifier: MIT
// Package bounds: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the bounds
// package. Constructors and validating mutators return these sentinels wrapped
// with an operation tag; callers check them via errors.Is.
//
// Geometry errors wrap BOTH ErrInvalidGeometry and the specific cause, so
// errors.Is(err, ErrInvalidGeometry) and errors.Is(err, ErrNegativeRadius)
// both hold for a negative radius.

package bounds

import "errors"

// Every message is prefixed with "bounds: ..." for consistency.

var (
	// ErrInvalidGeometry is the umbrella for malformed shape parameters.
	ErrInvalidGeometry = errors.New("bounds: invalid geometry")

	// ErrNegativeRadius indicates a radius (or half-edge) below zero, or a
	// min corner above the max corner.
	ErrNegativeRadius = errors.New("bounds: negative radius")

	// ErrNonFinite indicates a NaN or ±Inf component in a point, center,
	// radius, orientation or transform.
	ErrNonFinite = errors.New("bounds: NaN or Inf component")

	// ErrInvalidOrientation indicates an orientation whose axes are not
	// orthonormal within tolerance.
	ErrInvalidOrientation = errors.New("bounds: orientation is not orthonormal")

	// ErrNotAffine indicates a projective transform (bottom row is not
	// (0, ..., 0, 1)).
	ErrNotAffine = errors.New("bounds: transform is not affine")

	// ErrUnsupportedTransform indicates a transform an oriented shape cannot
	// follow exactly: it collapses an axis or shears the frame.
	ErrUnsupportedTransform = errors.New("bounds: transform shears or collapses the frame")

	// ErrChildIndex indicates a subdivision index outside [0, 2^N).
	ErrChildIndex = errors.New("bounds: child index out of range")
)
