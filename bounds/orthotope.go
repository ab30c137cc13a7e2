// SPDX-License-Identifier: MIT

// Package bounds - axis-aligned boxes (Box in 3-D, Rectangle in 2-D).
//
// Contract:
//   - Contains is closed and exact: c-r ≤ p ≤ c+r per axis, evaluated with
//     the same expressions used to build the box, so every input point of
//     FromPoints is inside.
//   - Merge is exact and idempotent (merge(a, a) == a bit-for-bit).
//
// Complexity: every method is O(N) except FromPoints, O(N·len(points)).
package bounds

import (
	"fmt"

	"github.com/katalvlaran/spatiumgl/vector"
	"golang.org/x/exp/constraints"
)

// Orthotope is an axis-aligned box given by its center and per-axis
// half-widths. The zero value is the degenerate box at the origin.
type Orthotope[T constraints.Float, A vector.Array[T]] struct {
	centerTrait[T, A]
	radiiTrait[T, A]
}

// Dimension-fixed aliases.
type (
	Box[T constraints.Float]       = Orthotope[T, [3]T]
	Rectangle[T constraints.Float] = Orthotope[T, [2]T]
)

// orthotopeOf assembles an Orthotope without validation.
func orthotopeOf[T constraints.Float, A vector.Array[T]](c, r vector.Vector[T, A]) Orthotope[T, A] {
	return Orthotope[T, A]{centerTrait: NewBoundsCenter(c), radiiTrait: NewBoundsRadii(r)}
}

// NewOrthotope validates and builds a box.
//
// Errors:
//   - ErrInvalidGeometry with ErrNonFinite or ErrNegativeRadius.
func NewOrthotope[T constraints.Float, A vector.Array[T]](center, radii vector.Vector[T, A]) (Orthotope[T, A], error) {
	if err := checkFinite(opNew, center); err != nil {
		return Orthotope[T, A]{}, err
	}
	if err := checkRadii(opNew, radii); err != nil {
		return Orthotope[T, A]{}, err
	}

	return orthotopeOf(center, radii), nil
}

// NewBox validates and builds a 3-D box.
func NewBox[T constraints.Float](center, radii vector.Vec3[T]) (Box[T], error) {
	return NewOrthotope(center, radii)
}

// NewRectangle validates and builds a 2-D rectangle.
func NewRectangle[T constraints.Float](center, radii vector.Vec2[T]) (Rectangle[T], error) {
	return NewOrthotope(center, radii)
}

// OrthotopeFromPoints returns the tightest box around points: per-axis
// min/max, center at the midpoint, radii the half-extents. An empty set
// yields the zero box at the origin; a single point yields that point with
// zero radii.
//
// Errors:
//   - ErrInvalidGeometry with ErrNonFinite for a NaN/Inf point.
func OrthotopeFromPoints[T constraints.Float, A vector.Array[T]](points []vector.Vector[T, A]) (Orthotope[T, A], error) {
	if len(points) == 0 {
		return Orthotope[T, A]{}, nil
	}
	if err := checkPoints(opFromPoints, points); err != nil {
		return Orthotope[T, A]{}, err
	}
	lo, hi := extremes(points)
	c, r := fitBox(lo, hi)

	return orthotopeOf(c, r), nil
}

// BoxFromPoints is OrthotopeFromPoints for 3-D points.
func BoxFromPoints[T constraints.Float](points []vector.Vec3[T]) (Box[T], error) {
	return OrthotopeFromPoints(points)
}

// RectangleFromPoints is OrthotopeFromPoints for 2-D points.
func RectangleFromPoints[T constraints.Float](points []vector.Vec2[T]) (Rectangle[T], error) {
	return OrthotopeFromPoints(points)
}

// OrthotopeFromMinMax builds the box spanning the corners lo and hi.
//
// Errors:
//   - ErrInvalidGeometry with ErrNonFinite, or ErrNegativeRadius if
//     lo exceeds hi on any axis.
func OrthotopeFromMinMax[T constraints.Float, A vector.Array[T]](lo, hi vector.Vector[T, A]) (Orthotope[T, A], error) {
	if err := checkFinite(opFromMinMax, lo, hi); err != nil {
		return Orthotope[T, A]{}, err
	}
	for i := 0; i < lo.Len(); i++ {
		if lo.At(i) > hi.At(i) {
			return Orthotope[T, A]{}, geometryErrorf(opFromMinMax,
				fmt.Errorf("axis %d min %v > max %v: %w", i, lo.At(i), hi.At(i), ErrNegativeRadius))
		}
	}
	c, r := fitBox(lo, hi)

	return orthotopeOf(c, r), nil
}

// BoxFromMinMax is OrthotopeFromMinMax for 3-D corners.
func BoxFromMinMax[T constraints.Float](lo, hi vector.Vec3[T]) (Box[T], error) {
	return OrthotopeFromMinMax(lo, hi)
}

// RectangleFromMinMax is OrthotopeFromMinMax for 2-D corners.
func RectangleFromMinMax[T constraints.Float](lo, hi vector.Vec2[T]) (Rectangle[T], error) {
	return OrthotopeFromMinMax(lo, hi)
}

// SetCenter validates and replaces the center.
func (b *Orthotope[T, A]) SetCenter(c vector.Vector[T, A]) error {
	if err := checkFinite(opSetCenter, c); err != nil {
		return err
	}
	b.center = c

	return nil
}

// SetRadii validates and replaces the half-widths.
func (b *Orthotope[T, A]) SetRadii(r vector.Vector[T, A]) error {
	if err := checkRadii(opSetRadii, r); err != nil {
		return err
	}
	b.radii = r

	return nil
}

// Min returns the lower corner c - r.
func (b Orthotope[T, A]) Min() vector.Vector[T, A] { return b.center.Sub(b.radii) }

// Max returns the upper corner c + r.
func (b Orthotope[T, A]) Max() vector.Vector[T, A] { return b.center.Add(b.radii) }

// Size returns the full extent 2r.
func (b Orthotope[T, A]) Size() vector.Vector[T, A] { return b.radii.Scale(2) }

// Diameter returns the full extent along axis. It panics if axis is out of
// range.
func (b Orthotope[T, A]) Diameter(axis int) T { return 2 * b.radii.At(axis) }

// Contains reports whether p lies in the closed box.
func (b Orthotope[T, A]) Contains(p vector.Vector[T, A]) bool {
	return boxContains(b.center, b.radii, p)
}

// Encloses reports whether o lies entirely inside b.
func (b Orthotope[T, A]) Encloses(o Orthotope[T, A]) bool {
	return boxEncloses(b.center, b.radii, o.center, o.radii)
}

// Merge returns the smallest box covering b and o.
func (b Orthotope[T, A]) Merge(o Orthotope[T, A]) Orthotope[T, A] {
	c, r := mergeBoxes(b.center, b.radii, o.center, o.radii)

	return orthotopeOf(c, r)
}

// Include grows b to cover p.
//
// Errors:
//   - ErrInvalidGeometry with ErrNonFinite; b is unchanged.
func (b *Orthotope[T, A]) Include(p vector.Vector[T, A]) error {
	if err := checkFinite(opInclude, p); err != nil {
		return err
	}
	var zero vector.Vector[T, A]
	b.center, b.radii = mergeBoxes(b.center, b.radii, p, zero)

	return nil
}

// AxisAligned returns b itself as (center, radii).
func (b Orthotope[T, A]) AxisAligned() (center, radii vector.Vector[T, A]) {
	return b.center, b.radii
}

// Bounding returns the ball through the corners of b.
func (b Orthotope[T, A]) Bounding() (center vector.Vector[T, A], radius T) {
	return b.center, grow(T(b.radii.Magnitude()))
}

// Intersects reports whether b and o overlap (touching counts).
func (b Orthotope[T, A]) Intersects(o Volume[T, A]) bool {
	return Intersects[T, A](b, o)
}

func (Orthotope[T, A]) kind() shapeKind { return kindBox }

// String formats the box as "(min, max)".
func (b Orthotope[T, A]) String() string {
	return fmt.Sprintf("(%v, %v)", b.Min(), b.Max())
}
