// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the matrix tests.
//   - Fail fast (t.Fatalf via require) so assertions can assume valid inputs.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/spatiumgl/matrix"
	"github.com/stretchr/testify/require"
)

// approxTol is the absolute tolerance used for float64 comparisons.
const approxTol = 1e-9

// rect34 is a 3-row, 4-column matrix type used to exercise rectangular shapes.
type rect34 = matrix.Matrix[float64, [3]float64, [4][3]float64]

// mustMat2 builds a 2×2 matrix from row-major values or fails the test.
func mustMat2(tb testing.TB, v ...float64) matrix.Matrix2 {
	tb.Helper()
	m, err := matrix.NewMat2(v...)
	require.NoError(tb, err)

	return m
}

// mustMat3 builds a 3×3 matrix from row-major values or fails the test.
func mustMat3(tb testing.TB, v ...float64) matrix.Matrix3 {
	tb.Helper()
	m, err := matrix.NewMat3(v...)
	require.NoError(tb, err)

	return m
}

// mustMat4 builds a 4×4 matrix from row-major values or fails the test.
func mustMat4(tb testing.TB, v ...float64) matrix.Matrix4 {
	tb.Helper()
	m, err := matrix.NewMat4(v...)
	require.NoError(tb, err)

	return m
}

// randMat4 fills a 4×4 matrix with deterministic values in [-1, 1) plus a
// dominant diagonal so the result is comfortably invertible.
func randMat4(seed int64) matrix.Matrix4 {
	rng := rand.New(rand.NewSource(seed))
	var m matrix.Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m.Set(i, j, rng.Float64()*2-1)
		}
		m.Set(i, i, m.At(i, i)+4)
	}

	return m
}

// posInf returns +Inf without tripping constant-overflow checks.
func posInf() float64 { return math.Inf(1) }
