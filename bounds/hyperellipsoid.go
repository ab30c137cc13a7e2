// SPDX-License-Identifier: MIT

// Package bounds - oriented ellipsoids (Ellipsoid in 3-D, Ellipse in 2-D).
//
// An oriented ellipsoid is a center, per-axis radii and a frame whose
// columns are the unit axes. A point p is inside when its local coordinates
// xᵢ = axisᵢ·(p - c) satisfy Σ (xᵢ/rᵢ)² ≤ 1; an axis with rᵢ = 0 requires
// xᵢ = 0. Rotating the frame introduces rounding, so Contains first shrinks
// every |xᵢ| by the local noise bound tolerance·N·(1 + ‖c‖ + Σ rᵢ) and then
// accepts a relative slack of DefaultEpsilon. Axes with rᵢ at or below that
// bound are flat: they only require |xᵢ| ≤ rᵢ + bound.
//
// FromPoints and Merge are conservative, not minimal: both build a box in
// the frame and circumscribe it with an ellipsoid of the same proportions.
package bounds

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spatiumgl/matrix"
	"github.com/katalvlaran/spatiumgl/vector"
	"golang.org/x/exp/constraints"
)

// Hyperellipsoid is an oriented ellipsoid. The zero value is the degenerate
// axis-aligned ellipsoid at the origin.
type Hyperellipsoid[T constraints.Float, A vector.Array[T], M matrix.Columns[T, A]] struct {
	centerTrait[T, A]
	radiiTrait[T, A]
	orientationTrait[T, A, M]
}

// Dimension-fixed aliases.
type (
	Ellipsoid[T constraints.Float] = Hyperellipsoid[T, [3]T, [3][3]T]
	Ellipse[T constraints.Float]   = Hyperellipsoid[T, [2]T, [2][2]T]
)

// hyperellipsoidOf assembles a Hyperellipsoid without validation.
func hyperellipsoidOf[T constraints.Float, A vector.Array[T], M matrix.Columns[T, A]](c, r vector.Vector[T, A], axes matrix.Matrix[T, A, M]) Hyperellipsoid[T, A, M] {
	return Hyperellipsoid[T, A, M]{
		centerTrait:      NewBoundsCenter(c),
		radiiTrait:       NewBoundsRadii(r),
		orientationTrait: NewBoundsOrientation(axes),
	}
}

// NewHyperellipsoid validates and builds an oriented ellipsoid.
//
// Errors:
//   - ErrInvalidGeometry with ErrNonFinite, ErrNegativeRadius or
//     ErrInvalidOrientation.
func NewHyperellipsoid[T constraints.Float, A vector.Array[T], M matrix.Columns[T, A]](center, radii vector.Vector[T, A], orientation matrix.Matrix[T, A, M]) (Hyperellipsoid[T, A, M], error) {
	var zero Hyperellipsoid[T, A, M]
	if err := checkFinite(opNew, center); err != nil {
		return zero, err
	}
	if err := checkRadii(opNew, radii); err != nil {
		return zero, err
	}
	if err := checkOrientation(opNew, orientation); err != nil {
		return zero, err
	}

	return hyperellipsoidOf(center, radii, orientation), nil
}

// NewEllipsoid validates and builds a 3-D ellipsoid.
func NewEllipsoid[T constraints.Float](center, radii vector.Vec3[T], orientation matrix.Mat3[T]) (Ellipsoid[T], error) {
	return NewHyperellipsoid(center, radii, orientation)
}

// NewEllipse validates and builds a 2-D ellipse.
func NewEllipse[T constraints.Float](center, radii vector.Vec2[T], orientation matrix.Mat2[T]) (Ellipse[T], error) {
	return NewHyperellipsoid(center, radii, orientation)
}

// HyperellipsoidFromPoints returns an ellipsoid with the given frame that
// covers points.
// Implementation:
//   - Stage 1: express every point in the frame and take the local box
//     (midpoint m, half-extents h).
//   - Stage 2: s = max over points of sqrt(Σ ((xᵢ-mᵢ)/hᵢ)²) over the axes
//     thicker than half the local noise bound, so the ellipsoid with radii
//     h·s and the box's proportions reaches the farthest point;
//     1 ≤ s ≤ sqrt(N). Thinner axes are rounding residue of a flat set and
//     keep their half-extent unscaled.
//
// An empty set yields the zero-radii ellipsoid at the origin with the given
// frame.
//
// Errors:
//   - ErrInvalidGeometry with ErrNonFinite or ErrInvalidOrientation.
func HyperellipsoidFromPoints[T constraints.Float, A vector.Array[T], M matrix.Columns[T, A]](points []vector.Vector[T, A], orientation matrix.Matrix[T, A, M]) (Hyperellipsoid[T, A, M], error) {
	var e Hyperellipsoid[T, A, M]
	if err := checkOrientation(opFromPoints, orientation); err != nil {
		return e, err
	}
	e.orientationTrait = NewBoundsOrientation(orientation)
	if len(points) == 0 {
		return e, nil
	}
	if err := checkPoints(opFromPoints, points); err != nil {
		return Hyperellipsoid[T, A, M]{}, err
	}

	// Stage 1: local box
	local := make([]vector.Vector[T, A], len(points))
	for i, p := range points {
		local[i] = project(orientation, p)
	}
	lo, hi := extremes(local)
	m, h := fitBox(lo, hi)

	// Stage 2: uniform scale reaching the farthest point
	var (
		s, sum, q float64
		flat      = localNoise(m, h) / 2
	)
	for _, x := range local {
		sum = 0
		for i := 0; i < x.Len(); i++ {
			if h.At(i) > flat {
				q = float64(x.At(i)-m.At(i)) / float64(h.At(i))
				sum += q * q
			}
		}
		s = max(s, sum)
	}
	s = max(math.Sqrt(s), 1)

	var r vector.Vector[T, A]
	for i := 0; i < r.Len(); i++ {
		if h.At(i) > flat {
			r.Set(i, grow(h.At(i)*T(s)))
		} else {
			r.Set(i, grow(h.At(i)))
		}
	}
	e.center, e.radii = orientation.MulVec(m), r

	return e, nil
}

// EllipsoidFromPoints is HyperellipsoidFromPoints for 3-D points.
func EllipsoidFromPoints[T constraints.Float](points []vector.Vec3[T], orientation matrix.Mat3[T]) (Ellipsoid[T], error) {
	return HyperellipsoidFromPoints(points, orientation)
}

// EllipseFromPoints is HyperellipsoidFromPoints for 2-D points.
func EllipseFromPoints[T constraints.Float](points []vector.Vec2[T], orientation matrix.Mat2[T]) (Ellipse[T], error) {
	return HyperellipsoidFromPoints(points, orientation)
}

// project returns the coordinates of p along the columns of axes, i.e. axesᵀ·p.
func project[T constraints.Float, A vector.Array[T], M matrix.Columns[T, A]](axes matrix.Matrix[T, A, M], p vector.Vector[T, A]) vector.Vector[T, A] {
	var x vector.Vector[T, A]
	for i := 0; i < x.Len(); i++ {
		x.Set(i, axes.Column(i).Dot(p))
	}

	return x
}

// SetCenter validates and replaces the center.
func (e *Hyperellipsoid[T, A, M]) SetCenter(c vector.Vector[T, A]) error {
	if err := checkFinite(opSetCenter, c); err != nil {
		return err
	}
	e.center = c

	return nil
}

// SetRadii validates and replaces the radii.
func (e *Hyperellipsoid[T, A, M]) SetRadii(r vector.Vector[T, A]) error {
	if err := checkRadii(opSetRadii, r); err != nil {
		return err
	}
	e.radii = r

	return nil
}

// SetOrientation validates and replaces the frame.
func (e *Hyperellipsoid[T, A, M]) SetOrientation(axes matrix.Matrix[T, A, M]) error {
	if err := checkOrientation(opSetOrientation, axes); err != nil {
		return err
	}
	e.orientationTrait.SetOrientation(axes)

	return nil
}

// Local returns p in the ellipsoid's frame, relative to its center.
func (e Hyperellipsoid[T, A, M]) Local(p vector.Vector[T, A]) vector.Vector[T, A] {
	return project(e.Orientation(), p.Sub(e.center))
}

// Contains reports whether p lies in the closed ellipsoid, up to the local
// noise bound and a relative slack of DefaultEpsilon.
func (e Hyperellipsoid[T, A, M]) Contains(p vector.Vector[T, A]) bool {
	if !p.IsFinite() {
		return false
	}

	return insideLocal(e.Local(p), e.radii, tolerance[T](), localNoise(e.center, e.radii))
}

// localNoise bounds the rounding of local coordinates near the volume with
// center c and radii r: tolerance·N·(1 + ‖c‖ + Σ rᵢ). ‖c‖ is the euclidean
// norm, so the bound is the same in every frame.
func localNoise[T constraints.Float, A vector.Array[T]](c, r vector.Vector[T, A]) T {
	var sum T
	for i := 0; i < r.Len(); i++ {
		sum += r.At(i)
	}

	return tolerance[T]() * T(r.Len()) * (1 + T(c.Magnitude()) + sum)
}

// insideLocal reports Σ (max(|xᵢ|-noise, 0)/rᵢ)² ≤ 1 + slack. Axes with
// rᵢ ≤ noise are flat and require |xᵢ| ≤ rᵢ + noise instead.
func insideLocal[T constraints.Float, A vector.Array[T]](x, r vector.Vector[T, A], slack, noise T) bool {
	var sum, q, a T
	for i := 0; i < x.Len(); i++ {
		a = abs(x.At(i))
		if r.At(i) <= noise {
			if a > r.At(i)+noise {
				return false
			}
			continue
		}
		q = max(a-noise, 0) / r.At(i)
		sum += q * q
	}

	return sum <= 1+slack
}

// Equal reports exact equality of center, radii and frame.
func (e Hyperellipsoid[T, A, M]) Equal(o Hyperellipsoid[T, A, M]) bool {
	return e.center.Equal(o.center) && e.radii.Equal(o.radii) && e.Orientation().Equal(o.Orientation())
}

// Merge returns an ellipsoid in e's frame covering e and o.
// Implementation:
//   - Stage 1: box o in e's frame; along axis k its half-extent is
//     sqrt(Σⱼ (rⱼ·(aₖ·bⱼ))²), the support of o in direction aₖ.
//   - Stage 2: if every corner of that box is inside e, return e.
//   - Stage 3: cover both boxes and circumscribe the result with radii
//     h·sqrt(k), k the number of non-flat axes.
//
// The result is a conservative over-approximation: it is not the minimal
// ellipsoid and Merge is not commutative. merge(a, a) returns a.
func (e Hyperellipsoid[T, A, M]) Merge(o Hyperellipsoid[T, A, M]) Hyperellipsoid[T, A, M] {
	if e.Equal(o) {
		return e
	}
	ea, oa := e.Orientation(), o.Orientation()

	// Stage 1: o's box in e's frame
	var (
		oc, oh vector.Vector[T, A]
		n      = oc.Len()
		ext, v float64
	)
	mid := project(ea, o.center.Sub(e.center))
	for k := 0; k < n; k++ {
		ak := ea.Column(k)
		ext = 0
		for j := 0; j < n; j++ {
			v = float64(o.radii.At(j)) * float64(ak.Dot(oa.Column(j)))
			ext += v * v
		}
		oc.Set(k, mid.At(k))
		oh.Set(k, grow(T(math.Sqrt(ext))))
	}

	// Stage 2: corners of o's box inside e
	if cornersInside(oc, oh, e.radii) {
		return e
	}

	// Stage 3: cover both boxes, then circumscribe
	var zero vector.Vector[T, A]
	m, h := mergeBoxes(zero, e.radii, oc, oh)
	spread := 0
	for k := 0; k < n; k++ {
		if h.At(k) > 0 {
			spread++
		}
	}
	f := T(math.Sqrt(float64(spread)))
	var r vector.Vector[T, A]
	for k := 0; k < n; k++ {
		r.Set(k, grow(h.At(k)*f))
	}

	return hyperellipsoidOf(e.center.Add(ea.MulVec(m)), r, ea)
}

// cornersInside reports whether every corner of the local box (c, h) lies
// inside the axis-aligned ellipsoid with radii r, without slack.
func cornersInside[T constraints.Float, A vector.Array[T]](c, h, r vector.Vector[T, A]) bool {
	n := c.Len()
	var x vector.Vector[T, A]
	for mask := 0; mask < 1<<n; mask++ {
		for k := 0; k < n; k++ {
			if mask&(1<<k) != 0 {
				x.Set(k, c.At(k)+h.At(k))
			} else {
				x.Set(k, c.At(k)-h.At(k))
			}
		}
		if !insideLocal(x, r, 0, 0) {
			return false
		}
	}

	return true
}

// Include grows e, keeping its frame, to cover p.
//
// On a nil return e.Contains(p) holds.
//
// Errors:
//   - ErrInvalidGeometry with ErrNonFinite; e is unchanged.
func (e *Hyperellipsoid[T, A, M]) Include(p vector.Vector[T, A]) error {
	if err := checkFinite(opInclude, p); err != nil {
		return err
	}
	if e.Contains(p) {
		return nil
	}
	var zero vector.Vector[T, A]
	*e = e.Merge(hyperellipsoidOf(p, zero, e.Orientation()))

	// rounding in the merged frame can still leave p outside; grow
	// geometrically until it is in
	d := T(p.Distance(e.center))
	for g := tolerance[T](); !e.Contains(p); g *= 2 {
		for i := 0; i < e.radii.Len(); i++ {
			e.radii.Set(i, e.radii.At(i)*(1+g)+g*d)
		}
	}

	return nil
}

// AxisAligned returns the tight axis-aligned box of e: along world axis k
// the half-extent is sqrt(Σⱼ (rⱼ·axisⱼ[k])²).
func (e Hyperellipsoid[T, A, M]) AxisAligned() (center, radii vector.Vector[T, A]) {
	axes := e.Orientation()
	n := e.center.Len()
	var sum, v float64
	for k := 0; k < n; k++ {
		sum = 0
		for j := 0; j < n; j++ {
			v = float64(e.radii.At(j)) * float64(axes.At(k, j))
			sum += v * v
		}
		radii.Set(k, grow(T(math.Sqrt(sum))))
	}

	return e.center, radii
}

// Bounding returns the ball of the largest radius.
func (e Hyperellipsoid[T, A, M]) Bounding() (center vector.Vector[T, A], radius T) {
	return e.center, e.radii.MaxComponent()
}

// Intersects reports whether e and o may overlap. The test is conservative
// (no false negatives, possible false positives).
func (e Hyperellipsoid[T, A, M]) Intersects(o Volume[T, A]) bool {
	return Intersects[T, A](e, o)
}

func (Hyperellipsoid[T, A, M]) kind() shapeKind { return kindOriented }

// String formats the ellipsoid as "(center, radii)".
func (e Hyperellipsoid[T, A, M]) String() string {
	return fmt.Sprintf("(%v, %v)", e.center, e.radii)
}
