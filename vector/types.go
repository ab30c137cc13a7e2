// SPDX-License-Identifier: MIT

// Package vector: scalar and dimension constraints plus the Vector type.
// This file intentionally contains ONLY type definitions and aliases.
package vector

import "golang.org/x/exp/constraints"

// Scalar is the constraint for vector and matrix element types.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Array is the constraint for the backing storage of a Vector.
// The array length is the vector dimension (1..4).
type Array[T Scalar] interface {
	[1]T | [2]T | [3]T | [4]T
}

// Vector is an N-component tuple of T, where N is the length of A.
// The zero value is the origin.
type Vector[T Scalar, A Array[T]] struct {
	e A // components, index 0 is X
}

// Dimension-fixed aliases.
type (
	Vec1[T Scalar] = Vector[T, [1]T]
	Vec2[T Scalar] = Vector[T, [2]T]
	Vec3[T Scalar] = Vector[T, [3]T]
	Vec4[T Scalar] = Vector[T, [4]T]
)

// Precision-fixed aliases.
type (
	Vector2 = Vec2[float64] // (x, y) double precision
	Vector3 = Vec3[float64] // (x, y, z) double precision
	Vector4 = Vec4[float64] // (x, y, z, w) double precision

	Vector2f = Vec2[float32] // (x, y) single precision
	Vector3f = Vec3[float32] // (x, y, z) single precision

	Vector2i = Vec2[int] // (x, y) integer
	Vector3i = Vec3[int] // (x, y, z) integer
)
