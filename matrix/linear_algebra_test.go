// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for Inverse, EigenSym and SpectralNorm.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/spatiumgl/matrix"
	"github.com/katalvlaran/spatiumgl/vector"
	"github.com/stretchr/testify/require"
)

// TestInverse_Known checks a hand-computed 2×2 inverse.
func TestInverse_Known(t *testing.T) {
	t.Parallel()

	a := mustMat2(t, 4, 7, 2, 6)
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	require.True(t, inv.ApproxEqual(mustMat2(t, 0.6, -0.7, -0.2, 0.4), 1e-12))
}

// TestInverse_AgainstMgl compares 4×4 inverses with mgl64.Mat4.Inv.
func TestInverse_AgainstMgl(t *testing.T) {
	t.Parallel()

	for seed := int64(1); seed <= 5; seed++ {
		m := randMat4(seed)
		inv, err := matrix.Inverse(m)
		require.NoError(t, err)

		want := matrix.ToMgl4(m).Inv()
		require.True(t, matrix.ToMgl4(inv).ApproxEqualThreshold(want, approxTol), "seed %d", seed)
		require.True(t, m.Mul(inv).ApproxEqual(matrix.Identity4[float64](), approxTol))
	}
}

// TestInverse_Errors covers singular, non-finite and rectangular inputs.
func TestInverse_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Inverse(mustMat2(t, 1, 2, 2, 4))
	require.ErrorIs(t, err, matrix.ErrSingular)

	var zero matrix.Matrix3
	_, err = matrix.Inverse(zero)
	require.ErrorIs(t, err, matrix.ErrSingular)

	nan := mustMat2(t, 1, 0, 0, math.NaN())
	_, err = matrix.Inverse(nan)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	var r rect34
	_, err = matrix.Inverse(r)
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestEigenSym_Decomposition verifies A·q = λ·q and orthonormal Q.
func TestEigenSym_Decomposition(t *testing.T) {
	t.Parallel()

	a := mustMat3(t,
		4, 1, 2,
		1, 3, 0,
		2, 0, 5,
	)
	values, q, err := matrix.EigenSym(a, matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	require.NoError(t, err)

	// QᵀQ == I
	require.True(t, q.Transpose().Mul(q).ApproxEqual(matrix.Identity3[float64](), approxTol))

	for i := 0; i < 3; i++ {
		col := q.Column(i)
		lhs := a.MulVec(col)
		rhs := col.Scale(values.At(i))
		require.True(t, lhs.ApproxEqual(rhs, approxTol), "eigenpair %d", i)
	}

	// trace is preserved
	require.InDelta(t, a.Trace(), values.X()+values.Y()+values.Z(), approxTol)
}

// TestEigenSym_Simple checks a 2×2 case with eigenvalues 1 and 3.
func TestEigenSym_Simple(t *testing.T) {
	t.Parallel()

	values, _, err := matrix.EigenSym(mustMat2(t, 2, 1, 1, 2), matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	require.NoError(t, err)
	require.InDelta(t, 1.0, values.MinComponent(), approxTol)
	require.InDelta(t, 3.0, values.MaxComponent(), approxTol)
}

// TestEigenSym_Errors covers asymmetric and non-finite inputs.
func TestEigenSym_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.EigenSym(mustMat2(t, 1, 2, 3, 4), matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, _, err = matrix.EigenSym(mustMat2(t, 1, 0, 0, posInf()), matrix.DefaultEigenTol, matrix.DefaultEigenMaxIter)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestSpectralNorm checks rotations, scales and reflections.
func TestSpectralNorm(t *testing.T) {
	t.Parallel()

	rot := matrix.Linear3(matrix.Rotate3(0.9, vector.V3(1.0, 2.0, 3.0)))
	n, err := matrix.SpectralNorm(rot)
	require.NoError(t, err)
	require.InDelta(t, 1.0, n, approxTol)

	scale := matrix.Linear3(matrix.Scale3(vector.V3(2.0, -3.0, 4.0)))
	n, err = matrix.SpectralNorm(scale)
	require.NoError(t, err)
	require.InDelta(t, 4.0, n, approxTol)

	flip := mustMat2(t, -5, 0, 0, 1)
	n, err = matrix.SpectralNorm(flip)
	require.NoError(t, err)
	require.InDelta(t, 5.0, n, approxTol)
}
