// SPDX-License-Identifier: MIT

// Package matrix - interop with github.com/go-gl/mathgl (mgl64).
// Both sides are column-major: mgl64 index = col*rows + row.
package matrix

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/spatiumgl/vector"
)

// ToMgl4 converts a 4×4 matrix to mgl64.Mat4.
func ToMgl4[T vector.Scalar](m Mat4[T]) mgl64.Mat4 {
	var out mgl64.Mat4
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			out[j*4+i] = float64(m.At(i, j))
		}
	}

	return out
}

// FromMgl4 converts mgl64.Mat4 to a 4×4 matrix of T.
func FromMgl4[T vector.Scalar](src mgl64.Mat4) Mat4[T] {
	var m Mat4[T]
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			m.Set(i, j, T(src[j*4+i]))
		}
	}

	return m
}

// ToMgl3 converts a 3×3 matrix to mgl64.Mat3.
func ToMgl3[T vector.Scalar](m Mat3[T]) mgl64.Mat3 {
	var out mgl64.Mat3
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			out[j*3+i] = float64(m.At(i, j))
		}
	}

	return out
}

// FromMgl3 converts mgl64.Mat3 to a 3×3 matrix of T.
func FromMgl3[T vector.Scalar](src mgl64.Mat3) Mat3[T] {
	var m Mat3[T]
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			m.Set(i, j, T(src[j*3+i]))
		}
	}

	return m
}

// ToMgl2 converts a 2×2 matrix to mgl64.Mat2.
func ToMgl2[T vector.Scalar](m Mat2[T]) mgl64.Mat2 {
	var out mgl64.Mat2
	for j := 0; j < 2; j++ {
		for i := 0; i < 2; i++ {
			out[j*2+i] = float64(m.At(i, j))
		}
	}

	return out
}

// FromMgl2 converts mgl64.Mat2 to a 2×2 matrix of T.
func FromMgl2[T vector.Scalar](src mgl64.Mat2) Mat2[T] {
	var m Mat2[T]
	for j := 0; j < 2; j++ {
		for i := 0; i < 2; i++ {
			m.Set(i, j, T(src[j*2+i]))
		}
	}

	return m
}
