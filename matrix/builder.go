// SPDX-License-Identifier: MIT

// Package matrix - constructors.
//
// Generic constructors need explicit type arguments
// (matrix.Identity[float64, [3]float64, [3][3]float64]()); the Mat2/Mat3/Mat4
// shortcuts infer T and should be preferred.
package matrix

import (
	"fmt"

	"github.com/katalvlaran/spatiumgl/vector"
)

// Identity returns a matrix with ones on the main diagonal and zeros
// elsewhere. For rectangular types the diagonal stops at min(rows, cols).
func Identity[T vector.Scalar, C vector.Array[T], M Columns[T, C]]() Matrix[T, C, M] {
	var m Matrix[T, C, M]
	n := min(m.Rows(), m.Cols())
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}

	return m
}

// Identity2 returns the 2×2 identity.
func Identity2[T vector.Scalar]() Mat2[T] { return Identity[T, [2]T, [2][2]T]() }

// Identity3 returns the 3×3 identity.
func Identity3[T vector.Scalar]() Mat3[T] { return Identity[T, [3]T, [3][3]T]() }

// Identity4 returns the 4×4 identity.
func Identity4[T vector.Scalar]() Mat4[T] { return Identity[T, [4]T, [4][4]T]() }

// FromRowMajor builds a matrix from values listed row by row.
//
// Errors:
//   - ErrDimensionMismatch if len(values) != rows*cols.
//
// Complexity: O(r*c).
func FromRowMajor[T vector.Scalar, C vector.Array[T], M Columns[T, C]](values ...T) (Matrix[T, C, M], error) {
	var m Matrix[T, C, M]
	rows, cols := m.Rows(), m.Cols()
	if len(values) != rows*cols {
		return m, matrixErrorf(opFromRows,
			fmt.Errorf("got %d values for %dx%d: %w", len(values), rows, cols, ErrDimensionMismatch))
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, values[i*cols+j])
		}
	}

	return m, nil
}

// NewMat2 builds a 2×2 matrix from 4 row-major values.
func NewMat2[T vector.Scalar](rowMajor ...T) (Mat2[T], error) {
	return FromRowMajor[T, [2]T, [2][2]T](rowMajor...)
}

// NewMat3 builds a 3×3 matrix from 9 row-major values.
func NewMat3[T vector.Scalar](rowMajor ...T) (Mat3[T], error) {
	return FromRowMajor[T, [3]T, [3][3]T](rowMajor...)
}

// NewMat4 builds a 4×4 matrix from 16 row-major values.
func NewMat4[T vector.Scalar](rowMajor ...T) (Mat4[T], error) {
	return FromRowMajor[T, [4]T, [4][4]T](rowMajor...)
}

// FromColumns2 builds a 2×2 matrix from its columns.
func FromColumns2[T vector.Scalar](c0, c1 vector.Vec2[T]) Mat2[T] {
	return Matrix[T, [2]T, [2][2]T]{cols: [2][2]T{c0.Array(), c1.Array()}}
}

// FromColumns3 builds a 3×3 matrix from its columns.
func FromColumns3[T vector.Scalar](c0, c1, c2 vector.Vec3[T]) Mat3[T] {
	return Matrix[T, [3]T, [3][3]T]{cols: [3][3]T{c0.Array(), c1.Array(), c2.Array()}}
}

// FromColumns4 builds a 4×4 matrix from its columns.
func FromColumns4[T vector.Scalar](c0, c1, c2, c3 vector.Vec4[T]) Mat4[T] {
	return Matrix[T, [4]T, [4][4]T]{cols: [4][4]T{c0.Array(), c1.Array(), c2.Array(), c3.Array()}}
}
