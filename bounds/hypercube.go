// SPDX-License-Identifier: MIT

// Package bounds - hypercubes (Cube in 3-D, Square in 2-D).
//
// A hypercube is an axis-aligned box whose half-edge is the same on every
// axis. Every constructor and query keeps that uniformity: FromPoints and
// Merge take the largest per-axis half-extent, so the result reports equal
// radii even for lopsided inputs.
package bounds

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spatiumgl/vector"
	"golang.org/x/exp/constraints"
)

// Hypercube is a center and a uniform half-edge. The zero value is the
// degenerate cube at the origin.
type Hypercube[T constraints.Float, A vector.Array[T]] struct {
	centerTrait[T, A]
	extentTrait[T]
}

// Dimension-fixed aliases.
type (
	Cube[T constraints.Float]   = Hypercube[T, [3]T]
	Square[T constraints.Float] = Hypercube[T, [2]T]
)

// hypercubeOf assembles a Hypercube without validation.
func hypercubeOf[T constraints.Float, A vector.Array[T]](c vector.Vector[T, A], r T) Hypercube[T, A] {
	return Hypercube[T, A]{centerTrait: NewBoundsCenter(c), extentTrait: NewBoundsExtent(r)}
}

// NewHypercube validates and builds a hypercube from its center and
// half-edge.
//
// Errors:
//   - ErrInvalidGeometry with ErrNonFinite or ErrNegativeRadius.
func NewHypercube[T constraints.Float, A vector.Array[T]](center vector.Vector[T, A], halfEdge T) (Hypercube[T, A], error) {
	if err := checkFinite(opNew, center); err != nil {
		return Hypercube[T, A]{}, err
	}
	if err := checkRadius(opNew, halfEdge); err != nil {
		return Hypercube[T, A]{}, err
	}

	return hypercubeOf(center, halfEdge), nil
}

// NewCube validates and builds a cube.
func NewCube[T constraints.Float](center vector.Vec3[T], halfEdge T) (Cube[T], error) {
	return NewHypercube(center, halfEdge)
}

// NewSquare validates and builds a square.
func NewSquare[T constraints.Float](center vector.Vec2[T], halfEdge T) (Square[T], error) {
	return NewHypercube(center, halfEdge)
}

// HypercubeFromPoints returns the smallest hypercube centered on the
// point set's box that covers every point. An empty set yields the zero
// hypercube at the origin.
//
// Errors:
//   - ErrInvalidGeometry with ErrNonFinite for a NaN/Inf point.
func HypercubeFromPoints[T constraints.Float, A vector.Array[T]](points []vector.Vector[T, A]) (Hypercube[T, A], error) {
	if len(points) == 0 {
		return Hypercube[T, A]{}, nil
	}
	if err := checkPoints(opFromPoints, points); err != nil {
		return Hypercube[T, A]{}, err
	}
	lo, hi := extremes(points)
	c, r := fitBox(lo, hi)

	return hypercubeOf(c, r.MaxComponent()), nil
}

// CubeFromPoints is HypercubeFromPoints for 3-D points.
func CubeFromPoints[T constraints.Float](points []vector.Vec3[T]) (Cube[T], error) {
	return HypercubeFromPoints(points)
}

// SquareFromPoints is HypercubeFromPoints for 2-D points.
func SquareFromPoints[T constraints.Float](points []vector.Vec2[T]) (Square[T], error) {
	return HypercubeFromPoints(points)
}

// SetCenter validates and replaces the center.
func (h *Hypercube[T, A]) SetCenter(c vector.Vector[T, A]) error {
	if err := checkFinite(opSetCenter, c); err != nil {
		return err
	}
	h.center = c

	return nil
}

// SetRadius validates and replaces the half-edge.
func (h *Hypercube[T, A]) SetRadius(r T) error {
	if err := checkRadius(opSetRadius, r); err != nil {
		return err
	}
	h.radius = r

	return nil
}

// Radii returns the half-edge on every axis.
func (h Hypercube[T, A]) Radii() vector.Vector[T, A] { return vector.Fill[T, A](h.radius) }

// Min returns the lower corner.
func (h Hypercube[T, A]) Min() vector.Vector[T, A] { return h.center.Sub(h.Radii()) }

// Max returns the upper corner.
func (h Hypercube[T, A]) Max() vector.Vector[T, A] { return h.center.Add(h.Radii()) }

// Edge returns the full edge length 2r.
func (h Hypercube[T, A]) Edge() T { return 2 * h.radius }

// Contains reports whether p lies in the closed hypercube.
func (h Hypercube[T, A]) Contains(p vector.Vector[T, A]) bool {
	return boxContains(h.center, h.Radii(), p)
}

// Merge returns the smallest hypercube, centered on the merged box, that
// covers h and o.
func (h Hypercube[T, A]) Merge(o Hypercube[T, A]) Hypercube[T, A] {
	ra, rb := h.Radii(), o.Radii()
	switch {
	case boxEncloses(h.center, ra, o.center, rb):
		return h
	case boxEncloses(o.center, rb, h.center, ra):
		return o
	}
	c, r := mergeBoxes(h.center, ra, o.center, rb)

	return hypercubeOf(c, r.MaxComponent())
}

// Include grows h to cover p.
//
// Errors:
//   - ErrInvalidGeometry with ErrNonFinite; h is unchanged.
func (h *Hypercube[T, A]) Include(p vector.Vector[T, A]) error {
	if err := checkFinite(opInclude, p); err != nil {
		return err
	}
	*h = h.Merge(hypercubeOf(p, 0))

	return nil
}

// Children returns the number of subdivisions, 2^N.
func (h Hypercube[T, A]) Children() int { return 1 << h.center.Len() }

// Child returns subdivision i with half the edge. Bit k of i selects the
// upper half along axis k (bit 0 = +x, bit 1 = +y, bit 2 = +z).
//
// Errors:
//   - ErrChildIndex if i is outside [0, Children()).
func (h Hypercube[T, A]) Child(i int) (Hypercube[T, A], error) {
	if i < 0 || i >= h.Children() {
		return Hypercube[T, A]{}, boundsErrorf(opChild, fmt.Errorf("index %d of %d: %w", i, h.Children(), ErrChildIndex))
	}
	half := h.radius / 2
	c := h.center
	for k := 0; k < c.Len(); k++ {
		if i&(1<<k) != 0 {
			c.Set(k, c.At(k)+half)
		} else {
			c.Set(k, c.At(k)-half)
		}
	}

	return hypercubeOf(c, half), nil
}

// ChildIndex returns the subdivision that p falls into: bit k is set when
// p is at or above the center on axis k.
func (h Hypercube[T, A]) ChildIndex(p vector.Vector[T, A]) int {
	var i int
	for k := 0; k < h.center.Len(); k++ {
		if p.At(k) >= h.center.At(k) {
			i |= 1 << k
		}
	}

	return i
}

// AxisAligned returns h as (center, radii).
func (h Hypercube[T, A]) AxisAligned() (center, radii vector.Vector[T, A]) {
	return h.center, h.Radii()
}

// Bounding returns the ball through the corners of h.
func (h Hypercube[T, A]) Bounding() (center vector.Vector[T, A], radius T) {
	return h.center, grow(h.radius * T(math.Sqrt(float64(h.center.Len()))))
}

// Intersects reports whether h and o overlap (touching counts).
func (h Hypercube[T, A]) Intersects(o Volume[T, A]) bool {
	return Intersects[T, A](h, o)
}

func (Hypercube[T, A]) kind() shapeKind { return kindBox }

// String formats the hypercube as "(min, max)".
func (h Hypercube[T, A]) String() string {
	return fmt.Sprintf("(%v, %v)", h.Min(), h.Max())
}
