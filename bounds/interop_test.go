// SPDX-License-Identifier: MIT
// Package bounds_test contains unit tests for sdfx and gonum conversions.
package bounds_test

import (
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/katalvlaran/spatiumgl/bounds"
	"github.com/katalvlaran/spatiumgl/vector"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

// TestSdfBox3_RoundTrip converts a box to sdf.Box3 and back.
func TestSdfBox3_RoundTrip(t *testing.T) {
	t.Parallel()

	b := mustBox(t, vector.V3(1.0, 1.0, 1.0), vector.V3(1.0, 1.0, 1.0))
	s := bounds.BoxToSdf(b)
	require.Equal(t, sdf.Box3{Min: v3.Vec{X: 0, Y: 0, Z: 0}, Max: v3.Vec{X: 2, Y: 2, Z: 2}}, s)

	back, err := bounds.BoxFromSdf[float64](s)
	require.NoError(t, err)
	require.Equal(t, b, back)

	_, err = bounds.BoxFromSdf[float64](sdf.Box3{Min: v3.Vec{X: 1}, Max: v3.Vec{X: 0}})
	require.ErrorIs(t, err, bounds.ErrNegativeRadius)
}

// TestSdfBox2_RoundTrip converts a rectangle to sdf.Box2 and back.
func TestSdfBox2_RoundTrip(t *testing.T) {
	t.Parallel()

	r, err := bounds.NewRectangle(vector.V2(-1.0, 2.0), vector.V2(0.5, 3.0))
	require.NoError(t, err)
	s := bounds.RectangleToSdf(r)
	require.Equal(t, sdf.Box2{Min: v2.Vec{X: -1.5, Y: -1}, Max: v2.Vec{X: -0.5, Y: 5}}, s)

	back, err := bounds.RectangleFromSdf[float64](s)
	require.NoError(t, err)
	require.Equal(t, r, back)
}

// TestSdfBounds takes the box of an SDF solid.
func TestSdfBounds(t *testing.T) {
	t.Parallel()

	solid, err := sdf.Box3D(v3.Vec{X: 2, Y: 4, Z: 6}, 0)
	require.NoError(t, err)
	b, err := bounds.SdfBounds(solid)
	require.NoError(t, err)
	require.True(t, b.Center().ApproxEqual(vector.Vector3{}, approxTol))
	require.True(t, b.Radii().ApproxEqual(vector.V3(1.0, 2.0, 3.0), approxTol))
}

// TestR3Box_RoundTrip converts a box to r3.Box and back.
func TestR3Box_RoundTrip(t *testing.T) {
	t.Parallel()

	b := mustBox(t, vector.V3(0.0, -2.0, 4.0), vector.V3(1.0, 0.5, 0.0))
	rb := bounds.BoxToR3(b)
	require.Equal(t, r3.Box{Min: r3.Vec{X: -1, Y: -2.5, Z: 4}, Max: r3.Vec{X: 1, Y: -1.5, Z: 4}}, rb)

	back, err := bounds.BoxFromR3[float64](rb)
	require.NoError(t, err)
	require.Equal(t, b, back)
}
