// SPDX-License-Identifier: MIT
// Package: bounds
//
// Purpose:
//   - Provide one canonical place for parameter validation and the
//     floating-point helpers that keep derived radii conservative.
//   - Return sentinels wrapped with the operation tag so callers can still
//     use errors.Is.

package bounds

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/katalvlaran/spatiumgl/matrix"
	"github.com/katalvlaran/spatiumgl/vector"
	"golang.org/x/exp/constraints"
)

// boundsErrorf wraps err with a uniform operation tag.
func boundsErrorf(op string, err error) error {
	return fmt.Errorf("bounds.%s: %w", op, err)
}

// geometryErrorf wraps cause under ErrInvalidGeometry with an operation tag.
func geometryErrorf(op string, cause error) error {
	return fmt.Errorf("bounds.%s: %w: %w", op, ErrInvalidGeometry, cause)
}

// checkFinite rejects NaN/Inf components in any of vs.
func checkFinite[T constraints.Float, A vector.Array[T]](op string, vs ...vector.Vector[T, A]) error {
	for _, v := range vs {
		if !v.IsFinite() {
			return geometryErrorf(op, ErrNonFinite)
		}
	}

	return nil
}

// checkPoints rejects a point set containing a non-finite point.
func checkPoints[T constraints.Float, A vector.Array[T]](op string, points []vector.Vector[T, A]) error {
	for i, p := range points {
		if !p.IsFinite() {
			return geometryErrorf(op, fmt.Errorf("point %d %v: %w", i, p, ErrNonFinite))
		}
	}

	return nil
}

// checkRadii rejects non-finite or negative radii.
func checkRadii[T constraints.Float, A vector.Array[T]](op string, r vector.Vector[T, A]) error {
	if !r.IsFinite() {
		return geometryErrorf(op, ErrNonFinite)
	}
	for i := 0; i < r.Len(); i++ {
		if r.At(i) < 0 {
			return geometryErrorf(op, fmt.Errorf("axis %d radius %v: %w", i, r.At(i), ErrNegativeRadius))
		}
	}

	return nil
}

// checkRadius rejects a non-finite or negative scalar radius.
func checkRadius[T constraints.Float](op string, r T) error {
	f := float64(r)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return geometryErrorf(op, ErrNonFinite)
	}
	if r < 0 {
		return geometryErrorf(op, fmt.Errorf("radius %v: %w", r, ErrNegativeRadius))
	}

	return nil
}

// checkOrientation rejects a frame that is non-finite or not orthonormal
// within tolerance[T].
func checkOrientation[T constraints.Float, A vector.Array[T], M matrix.Columns[T, A]](op string, axes matrix.Matrix[T, A, M]) error {
	if !axes.IsFinite() {
		return geometryErrorf(op, ErrNonFinite)
	}
	if !orthonormal(axes) {
		return geometryErrorf(op, ErrInvalidOrientation)
	}

	return nil
}

// orthonormal reports AᵀA ≈ I within tolerance[T].
func orthonormal[T constraints.Float, A vector.Array[T], M matrix.Columns[T, A]](axes matrix.Matrix[T, A, M]) bool {
	gram := axes.Transpose().Mul(axes)

	return gram.ApproxEqual(matrix.Identity[T, A, M](), float64(tolerance[T]()))
}

// checkAffine rejects non-finite and projective homogeneous transforms.
func checkAffine[T constraints.Float, C vector.Array[T], M matrix.Columns[T, C]](m matrix.Matrix[T, C, M], affine bool) error {
	if !m.IsFinite() {
		return geometryErrorf(opTransform, ErrNonFinite)
	}
	if !affine {
		return boundsErrorf(opTransform, ErrNotAffine)
	}

	return nil
}

// nextUp returns the next representable value above x.
func nextUp[T constraints.Float](x T) T {
	if unsafe.Sizeof(x) == 4 {
		return T(math.Nextafter32(float32(x), float32(math.Inf(1))))
	}

	return T(math.Nextafter(float64(x), math.Inf(1)))
}

// epsilonOf returns the distance from 1 to the next representable T.
func epsilonOf[T constraints.Float]() T {
	one := T(1)

	return nextUp(one) - one
}

// tolerance returns DefaultEpsilon, raised to 64 ULPs of 1 for narrow types.
func tolerance[T constraints.Float]() T {
	return max(T(DefaultEpsilon), 64*epsilonOf[T]())
}

// widen adds slackULPs ULPs of scale (≥ 0) to r.
func widen[T constraints.Float](r, scale T) T {
	return r + scale*slackULPs*epsilonOf[T]()
}

// grow widens r relative to itself.
func grow[T constraints.Float](r T) T { return widen(r, r) }

// abs returns |x|.
func abs[T constraints.Float](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// fitInterval returns the midpoint and half-width of [lo, hi], widening the
// half-width until c-r ≤ lo and c+r ≥ hi hold in T arithmetic.
// Halving before subtracting keeps the computation finite for any finite
// interval.
func fitInterval[T constraints.Float](lo, hi T) (c, r T) {
	c = hi*0.5 + lo*0.5
	r = hi*0.5 - lo*0.5
	for c-r > lo || c+r < hi {
		r = nextUp(r)
	}

	return c, r
}

// fitBox applies fitInterval per axis.
func fitBox[T constraints.Float, A vector.Array[T]](lo, hi vector.Vector[T, A]) (c, r vector.Vector[T, A]) {
	for i := 0; i < lo.Len(); i++ {
		ci, ri := fitInterval(lo.At(i), hi.At(i))
		c.Set(i, ci)
		r.Set(i, ri)
	}

	return c, r
}

// extremes returns the per-axis minimum and maximum of a non-empty set.
func extremes[T constraints.Float, A vector.Array[T]](points []vector.Vector[T, A]) (lo, hi vector.Vector[T, A]) {
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo, hi = lo.Min(p), hi.Max(p)
	}

	return lo, hi
}

// boxContains reports c-r ≤ p ≤ c+r on every axis. NaN components fail.
func boxContains[T constraints.Float, A vector.Array[T]](c, r, p vector.Vector[T, A]) bool {
	var ci, ri, pi T
	for i := 0; i < c.Len(); i++ {
		ci, ri, pi = c.At(i), r.At(i), p.At(i)
		if !(pi >= ci-ri && pi <= ci+ri) {
			return false
		}
	}

	return true
}

// boxEncloses reports whether box (ca, ra) covers box (cb, rb).
func boxEncloses[T constraints.Float, A vector.Array[T]](ca, ra, cb, rb vector.Vector[T, A]) bool {
	for i := 0; i < ca.Len(); i++ {
		if ca.At(i)-ra.At(i) > cb.At(i)-rb.At(i) || ca.At(i)+ra.At(i) < cb.At(i)+rb.At(i) {
			return false
		}
	}

	return true
}

// mergeInterval returns the smallest interval covering [ca±ra] and [cb±rb].
// An operand that already covers the other is returned bit-for-bit.
func mergeInterval[T constraints.Float](ca, ra, cb, rb T) (c, r T) {
	aLo, aHi, bLo, bHi := ca-ra, ca+ra, cb-rb, cb+rb
	switch {
	case aLo <= bLo && aHi >= bHi:
		return ca, ra
	case bLo <= aLo && bHi >= aHi:
		return cb, rb
	}

	return fitInterval(min(aLo, bLo), max(aHi, bHi))
}

// mergeBoxes applies mergeInterval per axis.
func mergeBoxes[T constraints.Float, A vector.Array[T]](ca, ra, cb, rb vector.Vector[T, A]) (c, r vector.Vector[T, A]) {
	for i := 0; i < ca.Len(); i++ {
		ci, ri := mergeInterval(ca.At(i), ra.At(i), cb.At(i), rb.At(i))
		c.Set(i, ci)
		r.Set(i, ri)
	}

	return c, r
}

// refitBox returns the axis-aligned box covering the image of (c, r) under
// p ↦ lin·p + t: r'ᵢ = Σⱼ |linᵢⱼ|·rⱼ (Arvo), widened by a few ULPs of the
// largest intermediate term so transformed corners stay inside.
func refitBox[T constraints.Float, A vector.Array[T], M matrix.Columns[T, A]](c, r vector.Vector[T, A], lin matrix.Matrix[T, A, M], t vector.Vector[T, A]) (nc, nr vector.Vector[T, A]) {
	nc = lin.MulVec(c).Add(t)
	n := c.Len()
	var l, sum, mag T
	for i := 0; i < n; i++ {
		sum, mag = 0, abs(t.At(i))
		for j := 0; j < n; j++ {
			l = abs(lin.At(i, j))
			sum += l * r.At(j)
			mag += l * (abs(c.At(j)) + r.At(j))
		}
		nr.Set(i, widen(sum, mag))
	}

	return nc, nr
}
