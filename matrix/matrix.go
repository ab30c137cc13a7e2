// SPDX-License-Identifier: MIT

// Package matrix - storage, accessors and element-wise arithmetic.
//
// Purpose:
//   - Provide fixed-size column-major storage with the explicit access rule
//     At(row, col) == cols[col][row].
//   - Keep loops index-based: C and M are type parameters, so constant
//     indices are never used in generic code.
//   - Square-only operations panic with ErrNonSquare on rectangular types;
//     the shape is part of the type, so this is a programmer error.
//
// Complexity quicksheet:
//   - At/Set/Rows/Cols: O(1); Clear/Add/Sub/Scale/Equal: O(r*c);
//     Mul: O(n³); MulVec/Transpose: O(n²); Determinant: O(n!) with n ≤ 4.
package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/spatiumgl/vector"
)

// ---------- error context tags ----------

const (
	opMul         = "Mul"
	opMulVec      = "MulVec"
	opTranspose   = "Transpose"
	opDeterminant = "Determinant"
	opTrace       = "Trace"
	opInverse     = "Inverse"
	opEigen       = "EigenSym"
	opFromRows    = "FromRowMajor"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// matrixErrorf wraps an error with a uniform operation tag.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("matrix.%s: %w", op, err)
}

// mustSquare panics with ErrNonSquare when m is rectangular.
func mustSquare[T vector.Scalar, C vector.Array[T], M Columns[T, C]](m Matrix[T, C, M], op string) {
	if !m.IsSquare() {
		panic(matrixErrorf(op, ErrNonSquare))
	}
}

// Rows returns the number of rows. Complexity: O(1).
func (m Matrix[T, C, M]) Rows() int {
	var c C

	return len(c)
}

// Cols returns the number of columns. Complexity: O(1).
func (m Matrix[T, C, M]) Cols() int {
	return len(m.cols)
}

// IsSquare reports Rows() == Cols().
func (m Matrix[T, C, M]) IsSquare() bool {
	return m.Rows() == m.Cols()
}

// At returns the element at (row, col). It panics on out-of-range indices.
func (m Matrix[T, C, M]) At(row, col int) T {
	c := m.cols[col]

	return c[row]
}

// Set assigns v at (row, col). It panics on out-of-range indices.
func (m *Matrix[T, C, M]) Set(row, col int, v T) {
	c := m.cols[col]
	c[row] = v
	m.cols[col] = c
}

// Column returns column col as a vector.
func (m Matrix[T, C, M]) Column(col int) vector.Vector[T, C] {
	return vector.FromArray[T, C](m.cols[col])
}

// SetColumn replaces column col.
func (m *Matrix[T, C, M]) SetColumn(col int, v vector.Vector[T, C]) {
	m.cols[col] = v.Array()
}

// Clear sets every element to the zero of T.
func (m *Matrix[T, C, M]) Clear() {
	var zero M
	m.cols = zero
}

// Add returns m + o.
func (m Matrix[T, C, M]) Add(o Matrix[T, C, M]) Matrix[T, C, M] {
	return m.zip(o, func(a, b T) T { return a + b })
}

// Sub returns m - o.
func (m Matrix[T, C, M]) Sub(o Matrix[T, C, M]) Matrix[T, C, M] {
	return m.zip(o, func(a, b T) T { return a - b })
}

// Scale returns m·s.
func (m Matrix[T, C, M]) Scale(s T) Matrix[T, C, M] {
	return m.zip(m, func(a, _ T) T { return a * s })
}

// zip applies f element-wise over m and o.
func (m Matrix[T, C, M]) zip(o Matrix[T, C, M], f func(a, b T) T) Matrix[T, C, M] {
	var out Matrix[T, C, M]
	rows, cols := m.Rows(), m.Cols()
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			out.Set(i, j, f(m.At(i, j), o.At(i, j)))
		}
	}

	return out
}

// Mul returns the matrix product m·o. Square types only.
// Complexity: O(n³).
func (m Matrix[T, C, M]) Mul(o Matrix[T, C, M]) Matrix[T, C, M] {
	mustSquare(m, opMul)

	var (
		out  Matrix[T, C, M]
		n    = m.Rows()
		sum  T
		i, j int
	)
	for j = 0; j < n; j++ {
		for i = 0; i < n; i++ {
			sum = 0
			for k := 0; k < n; k++ {
				sum += m.At(i, k) * o.At(k, j)
			}
			out.Set(i, j, sum)
		}
	}

	return out
}

// MulVec returns m·v. Square types only.
func (m Matrix[T, C, M]) MulVec(v vector.Vector[T, C]) vector.Vector[T, C] {
	mustSquare(m, opMulVec)

	var out vector.Vector[T, C]
	n := m.Rows()
	for i := 0; i < n; i++ {
		var sum T
		for k := 0; k < n; k++ {
			sum += m.At(i, k) * v.At(k)
		}
		out.Set(i, sum)
	}

	return out
}

// Transpose returns mᵀ. Square types only.
func (m Matrix[T, C, M]) Transpose() Matrix[T, C, M] {
	mustSquare(m, opTranspose)

	var out Matrix[T, C, M]
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Set(j, i, m.At(i, j))
		}
	}

	return out
}

// Trace returns Σ m[i,i]. Square types only.
func (m Matrix[T, C, M]) Trace() T {
	mustSquare(m, opTrace)

	var sum T
	for i := 0; i < m.Rows(); i++ {
		sum += m.At(i, i)
	}

	return sum
}

// Determinant returns det(m) by cofactor expansion along the first row.
// Exact for integer element types. Square types only.
func (m Matrix[T, C, M]) Determinant() T {
	mustSquare(m, opDeterminant)

	var a [maxDim][maxDim]T
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			a[i][j] = m.At(i, j)
		}
	}

	return cofactorDet(a, n)
}

// cofactorDet expands the leading n×n block of a.
func cofactorDet[T vector.Scalar](a [maxDim][maxDim]T, n int) T {
	switch n {
	case 1:
		return a[0][0]
	case 2:
		return a[0][0]*a[1][1] - a[0][1]*a[1][0]
	}

	var (
		det   T
		minor [maxDim][maxDim]T
		sign  = T(1)
	)
	for c := 0; c < n; c++ {
		// minor without row 0 and column c
		for i := 1; i < n; i++ {
			mj := 0
			for j := 0; j < n; j++ {
				if j == c {
					continue
				}
				minor[i-1][mj] = a[i][j]
				mj++
			}
		}
		det += sign * a[0][c] * cofactorDet(minor, n-1)
		sign = -sign
	}

	return det
}

// Equal reports exact element-wise equality.
func (m Matrix[T, C, M]) Equal(o Matrix[T, C, M]) bool {
	for j := 0; j < m.Cols(); j++ {
		if !m.Column(j).Equal(o.Column(j)) {
			return false
		}
	}

	return true
}

// ApproxEqual reports |m[i,j] - o[i,j]| ≤ eps for every element.
func (m Matrix[T, C, M]) ApproxEqual(o Matrix[T, C, M], eps float64) bool {
	for j := 0; j < m.Cols(); j++ {
		if !m.Column(j).ApproxEqual(o.Column(j), eps) {
			return false
		}
	}

	return true
}

// IsFinite reports whether no element is NaN or ±Inf.
func (m Matrix[T, C, M]) IsFinite() bool {
	for j := 0; j < m.Cols(); j++ {
		if !m.Column(j).IsFinite() {
			return false
		}
	}

	return true
}

// maxAbs returns max|m[i,j]| as float64.
func (m Matrix[T, C, M]) maxAbs() float64 {
	var best float64
	for j := 0; j < m.Cols(); j++ {
		for i := 0; i < m.Rows(); i++ {
			best = math.Max(best, math.Abs(float64(m.At(i, j))))
		}
	}

	return best
}

// String implements fmt.Stringer, one bracketed row per line.
// Complexity: O(r*c).
func (m Matrix[T, C, M]) String() string {
	var sb strings.Builder
	for i := 0; i < m.Rows(); i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.Cols(); j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%g", float64(m.At(i, j)))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
