// SPDX-License-Identifier: MIT

// Package bounds - the sealed Volume interface and pairwise intersection.
//
// Intersection methods by pair:
//   - box vs box: per-axis interval overlap (exact).
//   - ball vs ball: ‖ca - cb‖² ≤ (ra + rb)² (exact).
//   - box vs ball: squared distance from the ball center to the closest
//     point of the box ≤ r² (exact).
//   - any pair involving an oriented shape: both the enclosing-box test and
//     the enclosing-ball test must pass (conservative).
//
// Touching volumes intersect.
package bounds

import (
	"github.com/katalvlaran/spatiumgl/vector"
	"golang.org/x/exp/constraints"
)

// shapeKind classifies volumes for intersection dispatch.
type shapeKind uint8

const (
	kindBox      shapeKind = iota // Orthotope, Hypercube
	kindBall                      // Ball
	kindOriented                  // Hyperellipsoid
)

// Volume is implemented by every shape of dimension len(A). The set of
// implementations is closed: only this package's shapes satisfy it.
type Volume[T constraints.Float, A vector.Array[T]] interface {
	// Contains reports closed containment of p.
	Contains(p vector.Vector[T, A]) bool
	// AxisAligned returns an axis-aligned box covering the volume.
	AxisAligned() (center, radii vector.Vector[T, A])
	// Bounding returns a ball covering the volume.
	Bounding() (center vector.Vector[T, A], radius T)

	kind() shapeKind
}

// Compile-time interface checks.
var (
	_ Volume[float64, [3]float64] = Box[float64]{}
	_ Volume[float64, [3]float64] = Sphere[float64]{}
	_ Volume[float64, [3]float64] = Cube[float64]{}
	_ Volume[float64, [3]float64] = Ellipsoid[float64]{}
	_ Volume[float32, [2]float32] = Rectangle[float32]{}
	_ Volume[float32, [2]float32] = Circle[float32]{}
	_ Volume[float32, [2]float32] = Square[float32]{}
	_ Volume[float32, [2]float32] = Ellipse[float32]{}
)

// Intersects reports whether a and b overlap. See the package notes for the
// method used per pair.
func Intersects[T constraints.Float, A vector.Array[T]](a, b Volume[T, A]) bool {
	ka, kb := a.kind(), b.kind()
	switch {
	case ka == kindOriented || kb == kindOriented:
		return boxesOverlap(a, b) && ballsOverlap(a, b)
	case ka == kindBox && kb == kindBox:
		return boxesOverlap(a, b)
	case ka == kindBall && kb == kindBall:
		return ballsOverlap(a, b)
	case ka == kindBox:
		return boxBallOverlap(a, b)
	default:
		return boxBallOverlap(b, a)
	}
}

// boxesOverlap compares the axis-aligned enclosures of a and b.
func boxesOverlap[T constraints.Float, A vector.Array[T]](a, b Volume[T, A]) bool {
	ca, ra := a.AxisAligned()
	cb, rb := b.AxisAligned()
	for i := 0; i < ca.Len(); i++ {
		if ca.At(i)+ra.At(i) < cb.At(i)-rb.At(i) || cb.At(i)+rb.At(i) < ca.At(i)-ra.At(i) {
			return false
		}
	}

	return true
}

// ballsOverlap compares the bounding balls of a and b.
func ballsOverlap[T constraints.Float, A vector.Array[T]](a, b Volume[T, A]) bool {
	ca, ra := a.Bounding()
	cb, rb := b.Bounding()
	s := ra + rb

	return ca.DistanceSquared(cb) <= s*s
}

// boxBallOverlap measures the squared distance from ball's center to the
// closest point of box.
func boxBallOverlap[T constraints.Float, A vector.Array[T]](box, ball Volume[T, A]) bool {
	c, r := box.AxisAligned()
	bc, br := ball.Bounding()
	var d, q, diff T
	for i := 0; i < c.Len(); i++ {
		q = min(max(bc.At(i), c.At(i)-r.At(i)), c.At(i)+r.At(i))
		diff = bc.At(i) - q
		d += diff * diff
	}

	return d <= br*br
}
