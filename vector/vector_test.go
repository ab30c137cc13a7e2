// SPDX-License-Identifier: MIT
// Package vector_test contains unit tests for the Vector type.
package vector_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/spatiumgl/vector"
	"github.com/stretchr/testify/require"
)

// TestZeroValueIsOrigin verifies that the zero Vector has all-zero components.
func TestZeroValueIsOrigin(t *testing.T) {
	t.Parallel()

	var v vector.Vector3       // zero value
	require.True(t, v.IsZero()) // expect origin
	require.Equal(t, 3, v.Len())
	require.Equal(t, "(0, 0, 0)", v.String())
}

// TestAccessors covers At/Set and the named component accessors.
func TestAccessors(t *testing.T) {
	t.Parallel()

	v := vector.V4(1.0, 2.0, 3.0, 4.0)
	require.Equal(t, 1.0, v.X())
	require.Equal(t, 2.0, v.Y())
	require.Equal(t, 3.0, v.Z())
	require.Equal(t, 4.0, v.W())

	v.Set(2, 9)                       // mutate through pointer receiver
	require.Equal(t, 9.0, v.At(2))     // expect new value
	require.Equal(t, [4]float64{1, 2, 9, 4}, v.Array())

	w := vector.V2(1, 2)
	require.Panics(t, func() { _ = w.Z() }) // 2-D vector has no Z
}

// TestArithmetic covers component-wise arithmetic.
func TestArithmetic(t *testing.T) {
	t.Parallel()

	a := vector.V3(1.0, 2.0, 3.0)
	b := vector.V3(4.0, -5.0, 6.0)

	tests := []struct {
		name string
		got  vector.Vector3
		want vector.Vector3
	}{
		{"add", a.Add(b), vector.V3(5.0, -3.0, 9.0)},
		{"sub", a.Sub(b), vector.V3(-3.0, 7.0, -3.0)},
		{"scale", a.Scale(2), vector.V3(2.0, 4.0, 6.0)},
		{"div", b.Div(2), vector.V3(2.0, -2.5, 3.0)},
		{"mul", a.Mul(b), vector.V3(4.0, -10.0, 18.0)},
		{"neg", a.Neg(), vector.V3(-1.0, -2.0, -3.0)},
		{"abs", b.Abs(), vector.V3(4.0, 5.0, 6.0)},
		{"min", a.Min(b), vector.V3(1.0, -5.0, 3.0)},
		{"max", a.Max(b), vector.V3(4.0, 2.0, 6.0)},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			require.Truef(t, tc.got.Equal(tc.want), "got %v want %v", tc.got, tc.want)
		})
	}

	// operands are values; nothing above may have mutated a or b
	require.True(t, a.Equal(vector.V3(1.0, 2.0, 3.0)))
	require.True(t, b.Equal(vector.V3(4.0, -5.0, 6.0)))
}

// TestDotAndCross checks the algebraic identities of dot and cross products.
func TestDotAndCross(t *testing.T) {
	t.Parallel()

	x := vector.V3(1.0, 0.0, 0.0)
	y := vector.V3(0.0, 1.0, 0.0)
	z := vector.V3(0.0, 0.0, 1.0)

	require.Equal(t, 0.0, x.Dot(y))                    // orthogonal
	require.True(t, vector.Cross(x, y).Equal(z))        // right-handed
	require.True(t, vector.Cross(y, x).Equal(z.Neg()))  // anti-commutative
	require.True(t, vector.Cross(x, x).IsZero())        // parallel → zero

	a := vector.V3(2, -1, 3)
	b := vector.V3(4, 5, -6)
	c := vector.Cross(a, b)
	require.Equal(t, 0, c.Dot(a)) // integer vectors: exact perpendicularity
	require.Equal(t, 0, c.Dot(b))

	require.Equal(t, 11.0, vector.V2(1.0, 2.0).Dot(vector.V2(3.0, 4.0)))
}

// TestMagnitudeDistance covers lengths and distances.
func TestMagnitudeDistance(t *testing.T) {
	t.Parallel()

	v := vector.V2(3.0, 4.0)
	require.Equal(t, 5.0, v.Magnitude())
	require.Equal(t, 25.0, v.MagnitudeSquared())
	require.Equal(t, 5.0, vector.V2(1.0, 1.0).Distance(vector.V2(4.0, 5.0)))

	n := vector.Normalize(v)
	require.InDelta(t, 1.0, n.Magnitude(), 1e-15)
	require.True(t, vector.Normalize(vector.Vector3{}).IsZero()) // no NaN on zero input

	require.Equal(t, 4.0, vector.V3(1.0, 4.0, -2.0).MaxComponent())
	require.Equal(t, -2.0, vector.V3(1.0, 4.0, -2.0).MinComponent())
}

// TestEqualityIsExact ensures Equal does not apply a tolerance while
// ApproxEqual does.
func TestEqualityIsExact(t *testing.T) {
	t.Parallel()

	a := vector.V3(0.1+0.2, 0.0, 0.0)
	b := vector.V3(0.3, 0.0, 0.0)
	require.False(t, a.Equal(b))            // 0.1+0.2 != 0.3 in float64
	require.True(t, a.ApproxEqual(b, 1e-12)) // but within tolerance

	nan := vector.V2(math.NaN(), 0)
	require.False(t, nan.Equal(nan)) // NaN never equals
	require.False(t, nan.IsFinite())
	require.False(t, vector.V2(math.Inf(1), 0).IsFinite())
	require.True(t, vector.V2(1, 2).IsFinite())
}

// TestFillFromArrayExtend covers the generic constructors.
func TestFillFromArrayExtend(t *testing.T) {
	t.Parallel()

	f := vector.Fill[float64, [3]float64](7)
	require.True(t, f.Equal(vector.V3(7.0, 7.0, 7.0)))

	a := vector.FromArray[float32, [2]float32]([2]float32{1, 2})
	require.Equal(t, vector.V2[float32](1, 2), a)

	h := vector.Extend(vector.V3(1.0, 2.0, 3.0), 1)
	require.Equal(t, [4]float64{1, 2, 3, 1}, h.Array())
	require.Equal(t, [3]float64{1, 2, 1}, vector.Extend2(vector.V2(1.0, 2.0), 1).Array())

	l := vector.Lerp(vector.V2(0.0, 0.0), vector.V2(2.0, 4.0), 0.5)
	require.True(t, l.Equal(vector.V2(1.0, 2.0)))
}

// TestMglRoundTrip checks conversions to and from mathgl vectors.
func TestMglRoundTrip(t *testing.T) {
	t.Parallel()

	v := vector.V3(1.5, -2.0, 3.25)
	m := vector.ToMgl3(v)
	require.Equal(t, mgl64.Vec3{1.5, -2, 3.25}, m)
	require.True(t, vector.FromMgl3[float64](m).Equal(v))

	// mathgl cross product agrees with ours
	a, b := vector.V3(2.0, -1.0, 3.0), vector.V3(4.0, 5.0, -6.0)
	want := vector.ToMgl3(a).Cross(vector.ToMgl3(b))
	require.Equal(t, want, vector.ToMgl3(vector.Cross(a, b)))

	require.Equal(t, mgl64.Vec2{1, 2}, vector.ToMgl2(vector.V2(1, 2)))
	require.True(t, vector.FromMgl2[float32](mgl64.Vec2{1, 2}).Equal(vector.V2[float32](1, 2)))
	require.Equal(t, mgl64.Vec4{1, 2, 3, 4}, vector.ToMgl4(vector.V4(1, 2, 3, 4)))
	require.True(t, vector.FromMgl4[float64](mgl64.Vec4{1, 2, 3, 4}).Equal(vector.V4(1.0, 2.0, 3.0, 4.0)))
}
