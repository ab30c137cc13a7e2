// SPDX-License-Identifier: MIT

// Package matrix: shape constraints and the Matrix type.
// This file intentionally contains ONLY type definitions and aliases.
package matrix

import "github.com/katalvlaran/spatiumgl/vector"

// Columns is the constraint for the column storage of a Matrix.
// The array length is the column count (1..4); C carries the row count.
type Columns[T vector.Scalar, C vector.Array[T]] interface {
	[1]C | [2]C | [3]C | [4]C
}

// Matrix is a dense matrix of T stored as an array of column vectors.
//   - C is the column array type; len(C) is the row count.
//   - M is the array of columns; len(M) is the column count.
//
// The zero value is the zero matrix.
type Matrix[T vector.Scalar, C vector.Array[T], M Columns[T, C]] struct {
	cols M // column-major storage: cols[col][row]
}

// Square aliases.
type (
	Mat2[T vector.Scalar] = Matrix[T, [2]T, [2][2]T]
	Mat3[T vector.Scalar] = Matrix[T, [3]T, [3][3]T]
	Mat4[T vector.Scalar] = Matrix[T, [4]T, [4][4]T]
)

// Precision-fixed aliases.
type (
	Matrix2 = Mat2[float64]
	Matrix3 = Mat3[float64]
	Matrix4 = Mat4[float64]

	Matrix3f = Mat3[float32]
	Matrix4f = Mat4[float32]
)
