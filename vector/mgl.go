// SPDX-License-Identifier: MIT

// Package vector - interop with github.com/go-gl/mathgl (mgl64).
// Renderers built on mathgl hand their vertices in mgl64 form; these helpers
// convert without allocation.
package vector

import "github.com/go-gl/mathgl/mgl64"

// ToMgl2 converts a 2-component vector to mgl64.Vec2.
func ToMgl2[T Scalar](v Vec2[T]) mgl64.Vec2 {
	return mgl64.Vec2{float64(v.e[0]), float64(v.e[1])}
}

// ToMgl3 converts a 3-component vector to mgl64.Vec3.
func ToMgl3[T Scalar](v Vec3[T]) mgl64.Vec3 {
	return mgl64.Vec3{float64(v.e[0]), float64(v.e[1]), float64(v.e[2])}
}

// ToMgl4 converts a 4-component vector to mgl64.Vec4.
func ToMgl4[T Scalar](v Vec4[T]) mgl64.Vec4 {
	return mgl64.Vec4{float64(v.e[0]), float64(v.e[1]), float64(v.e[2]), float64(v.e[3])}
}

// FromMgl2 converts mgl64.Vec2 to a 2-component vector of T.
func FromMgl2[T Scalar](m mgl64.Vec2) Vec2[T] {
	return V2(T(m[0]), T(m[1]))
}

// FromMgl3 converts mgl64.Vec3 to a 3-component vector of T.
func FromMgl3[T Scalar](m mgl64.Vec3) Vec3[T] {
	return V3(T(m[0]), T(m[1]), T(m[2]))
}

// FromMgl4 converts mgl64.Vec4 to a 4-component vector of T.
func FromMgl4[T Scalar](m mgl64.Vec4) Vec4[T] {
	return V4(T(m[0]), T(m[1]), T(m[2]), T(m[3]))
}
