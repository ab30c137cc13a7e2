// SPDX-License-Identifier: MIT

// Package matrix - homogeneous transforms.
//
// 3-D transforms are 4×4 and 2-D transforms are 3×3, column-vector
// convention (p' = M·p), translation in the last column. Rotation angles are
// in radians and counter-clockwise (right-handed).
//
// Rotations are produced with github.com/go-gl/mathgl so that matrices
// handed to an OpenGL renderer agree bit-for-bit with the ones used for
// bounds computations.
package matrix

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/spatiumgl/vector"
	"golang.org/x/exp/constraints"
)

// Translate3 returns the 4×4 translation by t.
func Translate3[T constraints.Float](t vector.Vec3[T]) Mat4[T] {
	m := Identity4[T]()
	m.Set(0, 3, t.X())
	m.Set(1, 3, t.Y())
	m.Set(2, 3, t.Z())

	return m
}

// Scale3 returns the 4×4 axis-aligned scale by s.
func Scale3[T constraints.Float](s vector.Vec3[T]) Mat4[T] {
	m := Identity4[T]()
	m.Set(0, 0, s.X())
	m.Set(1, 1, s.Y())
	m.Set(2, 2, s.Z())

	return m
}

// Rotate3 returns the 4×4 rotation by angle around axis. The axis is
// normalised first; a zero axis yields the identity.
func Rotate3[T constraints.Float](angle float64, axis vector.Vec3[T]) Mat4[T] {
	if axis.IsZero() {
		return Identity4[T]()
	}
	a := vector.ToMgl3(axis).Normalize()

	return FromMgl4[T](mgl64.HomogRotate3D(angle, a))
}

// RotateX returns the 4×4 rotation by angle around +X.
func RotateX[T constraints.Float](angle float64) Mat4[T] {
	return FromMgl4[T](mgl64.HomogRotate3DX(angle))
}

// RotateY returns the 4×4 rotation by angle around +Y.
func RotateY[T constraints.Float](angle float64) Mat4[T] {
	return FromMgl4[T](mgl64.HomogRotate3DY(angle))
}

// RotateZ returns the 4×4 rotation by angle around +Z.
func RotateZ[T constraints.Float](angle float64) Mat4[T] {
	return FromMgl4[T](mgl64.HomogRotate3DZ(angle))
}

// Translate2 returns the 3×3 translation by t.
func Translate2[T constraints.Float](t vector.Vec2[T]) Mat3[T] {
	m := Identity3[T]()
	m.Set(0, 2, t.X())
	m.Set(1, 2, t.Y())

	return m
}

// Scale2 returns the 3×3 axis-aligned scale by s.
func Scale2[T constraints.Float](s vector.Vec2[T]) Mat3[T] {
	m := Identity3[T]()
	m.Set(0, 0, s.X())
	m.Set(1, 1, s.Y())

	return m
}

// Rotate2 returns the 3×3 rotation by angle around the origin.
func Rotate2[T constraints.Float](angle float64) Mat3[T] {
	return FromMgl3[T](mgl64.HomogRotate2D(angle))
}

// Linear3 returns the upper-left 3×3 block of a 4×4 transform.
func Linear3[T vector.Scalar](m Mat4[T]) Mat3[T] {
	var l Mat3[T]
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			l.Set(i, j, m.At(i, j))
		}
	}

	return l
}

// Translation3 returns the translation column of a 4×4 transform.
func Translation3[T vector.Scalar](m Mat4[T]) vector.Vec3[T] {
	return vector.V3(m.At(0, 3), m.At(1, 3), m.At(2, 3))
}

// Linear2 returns the upper-left 2×2 block of a 3×3 transform.
func Linear2[T vector.Scalar](m Mat3[T]) Mat2[T] {
	var l Mat2[T]
	for j := 0; j < 2; j++ {
		for i := 0; i < 2; i++ {
			l.Set(i, j, m.At(i, j))
		}
	}

	return l
}

// Translation2 returns the translation column of a 3×3 transform.
func Translation2[T vector.Scalar](m Mat3[T]) vector.Vec2[T] {
	return vector.V2(m.At(0, 2), m.At(1, 2))
}

// IsAffine3 reports whether the bottom row of m is exactly (0, 0, 0, 1).
func IsAffine3[T vector.Scalar](m Mat4[T]) bool {
	return m.At(3, 0) == 0 && m.At(3, 1) == 0 && m.At(3, 2) == 0 && m.At(3, 3) == 1
}

// IsAffine2 reports whether the bottom row of m is exactly (0, 0, 1).
func IsAffine2[T vector.Scalar](m Mat3[T]) bool {
	return m.At(2, 0) == 0 && m.At(2, 1) == 0 && m.At(2, 2) == 1
}

// TransformPoint3 applies m to the point p (w = 1). When the resulting w is
// neither 0 nor 1 the result is divided by w.
func TransformPoint3[T constraints.Float](m Mat4[T], p vector.Vec3[T]) vector.Vec3[T] {
	h := m.MulVec(vector.Extend(p, 1))
	if w := h.W(); w != 0 && w != 1 {
		return vector.V3(h.X()/w, h.Y()/w, h.Z()/w)
	}

	return vector.V3(h.X(), h.Y(), h.Z())
}

// TransformDirection3 applies the linear part of m to d (w = 0).
func TransformDirection3[T vector.Scalar](m Mat4[T], d vector.Vec3[T]) vector.Vec3[T] {
	return Linear3(m).MulVec(d)
}

// TransformPoint2 applies m to the 2-D point p (w = 1), dividing by w when
// it is neither 0 nor 1.
func TransformPoint2[T constraints.Float](m Mat3[T], p vector.Vec2[T]) vector.Vec2[T] {
	h := m.MulVec(vector.Extend2(p, 1))
	if w := h.Z(); w != 0 && w != 1 {
		return vector.V2(h.X()/w, h.Y()/w)
	}

	return vector.V2(h.X(), h.Y())
}

// TransformDirection2 applies the linear part of m to d (w = 0).
func TransformDirection2[T vector.Scalar](m Mat3[T], d vector.Vec2[T]) vector.Vec2[T] {
	return Linear2(m).MulVec(d)
}
