// SPDX-License-Identifier: MIT

// Package bounds - independent attribute holders composed by every shape.
//
// Traits perform no validation. Shapes embed them under unexported alias
// names, so from outside the package the trait setters are reachable only
// through the shapes' validating SetX methods, which shadow them.
package bounds

import (
	"github.com/katalvlaran/spatiumgl/matrix"
	"github.com/katalvlaran/spatiumgl/vector"
	"golang.org/x/exp/constraints"
)

// BoundsCenter holds the centroid of a region. The zero value is the origin.
type BoundsCenter[T vector.Scalar, A vector.Array[T]] struct {
	center vector.Vector[T, A]
}

// NewBoundsCenter copies c into a new trait.
func NewBoundsCenter[T vector.Scalar, A vector.Array[T]](c vector.Vector[T, A]) BoundsCenter[T, A] {
	return BoundsCenter[T, A]{center: c}
}

// Center returns the stored centroid.
func (b BoundsCenter[T, A]) Center() vector.Vector[T, A] { return b.center }

// SetCenter replaces the stored centroid.
func (b *BoundsCenter[T, A]) SetCenter(c vector.Vector[T, A]) { b.center = c }

// BoundsRadii holds per-axis half-widths. The zero value is all-zero radii.
type BoundsRadii[T vector.Scalar, A vector.Array[T]] struct {
	radii vector.Vector[T, A]
}

// NewBoundsRadii copies r into a new trait.
func NewBoundsRadii[T vector.Scalar, A vector.Array[T]](r vector.Vector[T, A]) BoundsRadii[T, A] {
	return BoundsRadii[T, A]{radii: r}
}

// Radii returns the stored half-widths.
func (b BoundsRadii[T, A]) Radii() vector.Vector[T, A] { return b.radii }

// SetRadii replaces the stored half-widths.
func (b *BoundsRadii[T, A]) SetRadii(r vector.Vector[T, A]) { b.radii = r }

// BoundsExtent holds a single scalar radius. It is the 1-D specialization
// of BoundsRadii and the uniform radius of balls and hypercubes.
type BoundsExtent[T vector.Scalar] struct {
	radius T
}

// NewBoundsExtent stores r in a new trait.
func NewBoundsExtent[T vector.Scalar](r T) BoundsExtent[T] {
	return BoundsExtent[T]{radius: r}
}

// Radius returns the stored radius.
func (b BoundsExtent[T]) Radius() T { return b.radius }

// SetRadius replaces the stored radius.
func (b *BoundsExtent[T]) SetRadius(r T) { b.radius = r }

// BoundsOrientation holds a rotation frame whose columns are the unit axes
// of the volume. The zero value is the identity (axis-aligned) frame.
type BoundsOrientation[T constraints.Float, A vector.Array[T], M matrix.Columns[T, A]] struct {
	axes matrix.Matrix[T, A, M]
	set  bool // false: identity, axes unused
}

// NewBoundsOrientation copies axes into a new trait.
func NewBoundsOrientation[T constraints.Float, A vector.Array[T], M matrix.Columns[T, A]](axes matrix.Matrix[T, A, M]) BoundsOrientation[T, A, M] {
	return BoundsOrientation[T, A, M]{axes: axes, set: true}
}

// Orientation returns the frame, the identity for the zero value.
func (b BoundsOrientation[T, A, M]) Orientation() matrix.Matrix[T, A, M] {
	if !b.set {
		return matrix.Identity[T, A, M]()
	}

	return b.axes
}

// SetOrientation replaces the frame.
func (b *BoundsOrientation[T, A, M]) SetOrientation(axes matrix.Matrix[T, A, M]) {
	b.axes, b.set = axes, true
}

// Axis returns axis i of the frame (column i).
func (b BoundsOrientation[T, A, M]) Axis(i int) vector.Vector[T, A] {
	return b.Orientation().Column(i)
}

// Embedding names for the shapes.
type (
	centerTrait[T vector.Scalar, A vector.Array[T]]                                  = BoundsCenter[T, A]
	radiiTrait[T vector.Scalar, A vector.Array[T]]                                   = BoundsRadii[T, A]
	extentTrait[T vector.Scalar]                                                     = BoundsExtent[T]
	orientationTrait[T constraints.Float, A vector.Array[T], M matrix.Columns[T, A]] = BoundsOrientation[T, A, M]
)
