// SPDX-License-Identifier: MIT
// Package bounds_test contains test helpers
//
// Purpose:
//   - Provide deterministic point clouds and shape fixtures.
//   - Fail fast (require) so assertions can assume valid fixtures.

package bounds_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/spatiumgl/bounds"
	"github.com/katalvlaran/spatiumgl/matrix"
	"github.com/katalvlaran/spatiumgl/vector"
	"github.com/stretchr/testify/require"
)

// approxTol is the absolute tolerance used for float64 comparisons.
const approxTol = 1e-9

// cloud3 returns n deterministic points in [-scale, scale)³ shifted by off.
func cloud3(seed int64, n int, scale float64, off vector.Vector3) []vector.Vector3 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]vector.Vector3, n)
	for i := range pts {
		pts[i] = vector.V3(
			(rng.Float64()*2-1)*scale,
			(rng.Float64()*2-1)*scale,
			(rng.Float64()*2-1)*scale,
		).Add(off)
	}

	return pts
}

// cloud2 returns n deterministic points in [-scale, scale)².
func cloud2(seed int64, n int, scale float64) []vector.Vector2 {
	rng := rand.New(rand.NewSource(seed))
	pts := make([]vector.Vector2, n)
	for i := range pts {
		pts[i] = vector.V2((rng.Float64()*2-1)*scale, (rng.Float64()*2-1)*scale)
	}

	return pts
}

// insideEllipsoid returns n deterministic points strictly inside e, drawn
// in e's frame and mapped to world coordinates.
func insideEllipsoid(seed int64, n int, e bounds.Ellipsoid[float64]) []vector.Vector3 {
	rng := rand.New(rand.NewSource(seed))
	axes := e.Orientation()
	r := e.Radii()
	pts := make([]vector.Vector3, 0, n)
	for len(pts) < n {
		u := vector.V3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		if u.MagnitudeSquared() > 0.98 {
			continue
		}
		local := u.Mul(r)
		pts = append(pts, e.Center().Add(axes.MulVec(local)))
	}

	return pts
}

// mustBox builds a Box or fails the test.
func mustBox(tb testing.TB, c, r vector.Vector3) bounds.Box[float64] {
	tb.Helper()
	b, err := bounds.NewBox(c, r)
	require.NoError(tb, err)

	return b
}

// mustSphere builds a Sphere or fails the test.
func mustSphere(tb testing.TB, c vector.Vector3, r float64) bounds.Sphere[float64] {
	tb.Helper()
	s, err := bounds.NewSphere(c, r)
	require.NoError(tb, err)

	return s
}

// mustCube builds a Cube or fails the test.
func mustCube(tb testing.TB, c vector.Vector3, r float64) bounds.Cube[float64] {
	tb.Helper()
	cb, err := bounds.NewCube(c, r)
	require.NoError(tb, err)

	return cb
}

// mustEllipsoid builds an Ellipsoid or fails the test.
func mustEllipsoid(tb testing.TB, c, r vector.Vector3, axes matrix.Matrix3) bounds.Ellipsoid[float64] {
	tb.Helper()
	e, err := bounds.NewEllipsoid(c, r, axes)
	require.NoError(tb, err)

	return e
}

// rotation3 returns the 3×3 rotation by angle around axis.
func rotation3(angle float64, axis vector.Vector3) matrix.Matrix3 {
	return matrix.Linear3(matrix.Rotate3(angle, axis))
}

// corners3 lists the 8 corners of b.
func corners3(b bounds.Box[float64]) []vector.Vector3 {
	lo, hi := b.Min(), b.Max()
	out := make([]vector.Vector3, 0, 8)
	for mask := 0; mask < 8; mask++ {
		p := lo
		for k := 0; k < 3; k++ {
			if mask&(1<<k) != 0 {
				p.Set(k, hi.At(k))
			}
		}
		out = append(out, p)
	}

	return out
}

// nan returns a quiet NaN.
func nan() float64 { return math.NaN() }
