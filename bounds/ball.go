// SPDX-License-Identifier: MIT

// Package bounds - balls (Sphere in 3-D, Circle in 2-D).
//
// Contract:
//   - Contains is closed: ‖p - c‖² ≤ r², compared in T.
//   - FromPoints centers the ball on the midpoint of the point set's box and
//     takes the farthest point as the radius; the radius is widened until
//     every input point passes Contains.
//   - Merge is the exact enclosing ball of two balls; when one operand
//     already covers the other it is returned unchanged.
package bounds

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spatiumgl/vector"
	"golang.org/x/exp/constraints"
)

// Ball is a center and a single radius. The zero value is the degenerate
// ball at the origin.
type Ball[T constraints.Float, A vector.Array[T]] struct {
	centerTrait[T, A]
	extentTrait[T]
}

// Dimension-fixed aliases.
type (
	Sphere[T constraints.Float] = Ball[T, [3]T]
	Circle[T constraints.Float] = Ball[T, [2]T]
)

// ballOf assembles a Ball without validation.
func ballOf[T constraints.Float, A vector.Array[T]](c vector.Vector[T, A], r T) Ball[T, A] {
	return Ball[T, A]{centerTrait: NewBoundsCenter(c), extentTrait: NewBoundsExtent(r)}
}

// NewBall validates and builds a ball.
//
// Errors:
//   - ErrInvalidGeometry with ErrNonFinite or ErrNegativeRadius.
func NewBall[T constraints.Float, A vector.Array[T]](center vector.Vector[T, A], radius T) (Ball[T, A], error) {
	if err := checkFinite(opNew, center); err != nil {
		return Ball[T, A]{}, err
	}
	if err := checkRadius(opNew, radius); err != nil {
		return Ball[T, A]{}, err
	}

	return ballOf(center, radius), nil
}

// NewSphere validates and builds a sphere.
func NewSphere[T constraints.Float](center vector.Vec3[T], radius T) (Sphere[T], error) {
	return NewBall(center, radius)
}

// NewCircle validates and builds a circle.
func NewCircle[T constraints.Float](center vector.Vec2[T], radius T) (Circle[T], error) {
	return NewBall(center, radius)
}

// BallFromPoints returns a ball covering points. An empty set yields the
// zero ball at the origin.
//
// Errors:
//   - ErrInvalidGeometry with ErrNonFinite for a NaN/Inf point.
func BallFromPoints[T constraints.Float, A vector.Array[T]](points []vector.Vector[T, A]) (Ball[T, A], error) {
	if len(points) == 0 {
		return Ball[T, A]{}, nil
	}
	if err := checkPoints(opFromPoints, points); err != nil {
		return Ball[T, A]{}, err
	}

	lo, hi := extremes(points)
	c, _ := fitBox(lo, hi)
	var far T
	for _, p := range points {
		far = max(far, p.DistanceSquared(c))
	}
	r := T(math.Sqrt(float64(far)))
	for r*r < far {
		r = nextUp(r)
	}

	return ballOf(c, r), nil
}

// SphereFromPoints is BallFromPoints for 3-D points.
func SphereFromPoints[T constraints.Float](points []vector.Vec3[T]) (Sphere[T], error) {
	return BallFromPoints(points)
}

// CircleFromPoints is BallFromPoints for 2-D points.
func CircleFromPoints[T constraints.Float](points []vector.Vec2[T]) (Circle[T], error) {
	return BallFromPoints(points)
}

// SetCenter validates and replaces the center.
func (b *Ball[T, A]) SetCenter(c vector.Vector[T, A]) error {
	if err := checkFinite(opSetCenter, c); err != nil {
		return err
	}
	b.center = c

	return nil
}

// SetRadius validates and replaces the radius.
func (b *Ball[T, A]) SetRadius(r T) error {
	if err := checkRadius(opSetRadius, r); err != nil {
		return err
	}
	b.radius = r

	return nil
}

// Diameter returns 2r.
func (b Ball[T, A]) Diameter() T { return 2 * b.radius }

// Contains reports whether p lies in the closed ball.
func (b Ball[T, A]) Contains(p vector.Vector[T, A]) bool {
	return p.DistanceSquared(b.center) <= b.radius*b.radius
}

// Merge returns the smallest ball covering b and o.
func (b Ball[T, A]) Merge(o Ball[T, A]) Ball[T, A] {
	d := b.center.Distance(o.center)
	ra, rb := float64(b.radius), float64(o.radius)
	switch {
	case d+rb <= ra:
		return b
	case d+ra <= rb:
		return o
	}

	// d > 0 here: with coincident centers one of the cases above matched
	r := (d + ra + rb) / 2
	c := b.center.Add(o.center.Sub(b.center).Scale(T((r - ra) / d)))
	// rounding in c may leave an operand poking out; cover both explicitly
	r = max(r, c.Distance(b.center)+ra, c.Distance(o.center)+rb)

	return ballOf(c, grow(T(r)))
}

// Include grows b to cover p.
//
// Errors:
//   - ErrInvalidGeometry with ErrNonFinite; b is unchanged.
func (b *Ball[T, A]) Include(p vector.Vector[T, A]) error {
	if err := checkFinite(opInclude, p); err != nil {
		return err
	}
	if b.Contains(p) {
		return nil
	}
	*b = b.Merge(ballOf(p, 0))
	for !b.Contains(p) {
		b.radius = nextUp(b.radius)
	}

	return nil
}

// AxisAligned returns the cube circumscribing b as (center, radii).
func (b Ball[T, A]) AxisAligned() (center, radii vector.Vector[T, A]) {
	return b.center, vector.Fill[T, A](b.radius)
}

// Bounding returns b itself as (center, radius).
func (b Ball[T, A]) Bounding() (center vector.Vector[T, A], radius T) {
	return b.center, b.radius
}

// Intersects reports whether b and o overlap (touching counts).
func (b Ball[T, A]) Intersects(o Volume[T, A]) bool {
	return Intersects[T, A](b, o)
}

func (Ball[T, A]) kind() shapeKind { return kindBall }

// String formats the ball as "(center, radius)".
func (b Ball[T, A]) String() string {
	return fmt.Sprintf("(%v, %v)", b.center, b.radius)
}
