// SPDX-License-Identifier: MIT

// Package vector - construction, element access and arithmetic.
//
// Purpose:
//   - Keep every operation total over the domain of T: no errors, no panics
//     except for out-of-range component indices (programmer error).
//   - Keep loops index-based (i < len(v.e)); the backing array is a type
//     parameter, so constant indices are never used in generic code.
//
// Complexity quicksheet:
//   - Every method: Time O(N), Space O(1), no allocations (String excepted).
package vector

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/constraints"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "("
	_fmtClose = ")"
	_fmtSep   = ", "
)

// FromArray wraps an array as a Vector.
// Type arguments usually have to be spelled out; prefer V1..V4 when possible.
func FromArray[T Scalar, A Array[T]](a A) Vector[T, A] {
	return Vector[T, A]{e: a}
}

// Fill returns a vector with every component set to x.
func Fill[T Scalar, A Array[T]](x T) Vector[T, A] {
	var v Vector[T, A]
	for i := 0; i < len(v.e); i++ {
		v.e[i] = x
	}

	return v
}

// V1 builds a 1-component vector.
func V1[T Scalar](x T) Vec1[T] { return Vector[T, [1]T]{e: [1]T{x}} }

// V2 builds a 2-component vector.
func V2[T Scalar](x, y T) Vec2[T] { return Vector[T, [2]T]{e: [2]T{x, y}} }

// V3 builds a 3-component vector.
func V3[T Scalar](x, y, z T) Vec3[T] { return Vector[T, [3]T]{e: [3]T{x, y, z}} }

// V4 builds a 4-component vector.
func V4[T Scalar](x, y, z, w T) Vec4[T] { return Vector[T, [4]T]{e: [4]T{x, y, z, w}} }

// Extend appends w to a 3-component vector (homogeneous coordinates).
func Extend[T Scalar](v Vec3[T], w T) Vec4[T] { return V4(v.e[0], v.e[1], v.e[2], w) }

// Extend2 appends w to a 2-component vector (homogeneous coordinates).
func Extend2[T Scalar](v Vec2[T], w T) Vec3[T] { return V3(v.e[0], v.e[1], w) }

// Len returns the number of components.
func (v Vector[T, A]) Len() int { return len(v.e) }

// At returns component i. It panics if i is out of range.
func (v Vector[T, A]) At(i int) T { return v.e[i] }

// Set assigns component i. It panics if i is out of range.
func (v *Vector[T, A]) Set(i int, x T) { v.e[i] = x }

// Array returns a copy of the components.
func (v Vector[T, A]) Array() A { return v.e }

// X returns component 0.
func (v Vector[T, A]) X() T { return v.At(0) }

// Y returns component 1. It panics for 1-component vectors.
func (v Vector[T, A]) Y() T { return v.At(1) }

// Z returns component 2. It panics for vectors with fewer than 3 components.
func (v Vector[T, A]) Z() T { return v.At(2) }

// W returns component 3. It panics for vectors with fewer than 4 components.
func (v Vector[T, A]) W() T { return v.At(3) }

// Add returns v + o.
func (v Vector[T, A]) Add(o Vector[T, A]) Vector[T, A] {
	for i := 0; i < len(v.e); i++ {
		v.e[i] += o.e[i]
	}

	return v
}

// Sub returns v - o.
func (v Vector[T, A]) Sub(o Vector[T, A]) Vector[T, A] {
	for i := 0; i < len(v.e); i++ {
		v.e[i] -= o.e[i]
	}

	return v
}

// Scale returns v * s.
func (v Vector[T, A]) Scale(s T) Vector[T, A] {
	for i := 0; i < len(v.e); i++ {
		v.e[i] *= s
	}

	return v
}

// Div returns v / s. Integer division truncates; float division by zero
// follows IEEE-754.
func (v Vector[T, A]) Div(s T) Vector[T, A] {
	for i := 0; i < len(v.e); i++ {
		v.e[i] /= s
	}

	return v
}

// Mul returns the component-wise (Hadamard) product.
func (v Vector[T, A]) Mul(o Vector[T, A]) Vector[T, A] {
	for i := 0; i < len(v.e); i++ {
		v.e[i] *= o.e[i]
	}

	return v
}

// Neg returns -v.
func (v Vector[T, A]) Neg() Vector[T, A] {
	for i := 0; i < len(v.e); i++ {
		v.e[i] = -v.e[i]
	}

	return v
}

// Abs returns the component-wise absolute value.
func (v Vector[T, A]) Abs() Vector[T, A] {
	for i := 0; i < len(v.e); i++ {
		if v.e[i] < 0 {
			v.e[i] = -v.e[i]
		}
	}

	return v
}

// Min returns the component-wise minimum of v and o.
func (v Vector[T, A]) Min(o Vector[T, A]) Vector[T, A] {
	for i := 0; i < len(v.e); i++ {
		if o.e[i] < v.e[i] {
			v.e[i] = o.e[i]
		}
	}

	return v
}

// Max returns the component-wise maximum of v and o.
func (v Vector[T, A]) Max(o Vector[T, A]) Vector[T, A] {
	for i := 0; i < len(v.e); i++ {
		if o.e[i] > v.e[i] {
			v.e[i] = o.e[i]
		}
	}

	return v
}

// MaxComponent returns the largest component.
func (v Vector[T, A]) MaxComponent() T {
	m := v.e[0]
	for i := 1; i < len(v.e); i++ {
		if v.e[i] > m {
			m = v.e[i]
		}
	}

	return m
}

// MinComponent returns the smallest component.
func (v Vector[T, A]) MinComponent() T {
	m := v.e[0]
	for i := 1; i < len(v.e); i++ {
		if v.e[i] < m {
			m = v.e[i]
		}
	}

	return m
}

// Dot returns Σ vᵢ·oᵢ.
func (v Vector[T, A]) Dot(o Vector[T, A]) T {
	var sum T
	for i := 0; i < len(v.e); i++ {
		sum += v.e[i] * o.e[i]
	}

	return sum
}

// MagnitudeSquared returns v·v.
func (v Vector[T, A]) MagnitudeSquared() T { return v.Dot(v) }

// Magnitude returns the euclidean length of v.
func (v Vector[T, A]) Magnitude() float64 { return math.Sqrt(float64(v.Dot(v))) }

// DistanceSquared returns ‖v - o‖².
func (v Vector[T, A]) DistanceSquared(o Vector[T, A]) T {
	d := v.Sub(o)

	return d.Dot(d)
}

// Distance returns the euclidean distance ‖v - o‖.
func (v Vector[T, A]) Distance(o Vector[T, A]) float64 {
	return math.Sqrt(float64(v.DistanceSquared(o)))
}

// Equal reports exact component-wise equality. NaN never equals anything.
func (v Vector[T, A]) Equal(o Vector[T, A]) bool {
	for i := 0; i < len(v.e); i++ {
		if v.e[i] != o.e[i] {
			return false
		}
	}

	return true
}

// ApproxEqual reports |vᵢ - oᵢ| ≤ eps for every component.
func (v Vector[T, A]) ApproxEqual(o Vector[T, A], eps float64) bool {
	for i := 0; i < len(v.e); i++ {
		if math.Abs(float64(v.e[i])-float64(o.e[i])) > eps {
			return false
		}
	}

	return true
}

// IsZero reports whether every component is zero.
func (v Vector[T, A]) IsZero() bool {
	for i := 0; i < len(v.e); i++ {
		if v.e[i] != 0 {
			return false
		}
	}

	return true
}

// IsFinite reports whether no component is NaN or ±Inf.
// Integer vectors are always finite.
func (v Vector[T, A]) IsFinite() bool {
	var f float64
	for i := 0; i < len(v.e); i++ {
		f = float64(v.e[i])
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}

	return true
}

// String formats the vector as "(x, y, z)".
func (v Vector[T, A]) String() string {
	var sb strings.Builder
	sb.WriteString(_fmtOpen)
	for i := 0; i < len(v.e); i++ {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprint(&sb, v.e[i])
	}
	sb.WriteString(_fmtClose)

	return sb.String()
}

// Cross returns the right-handed cross product a × b.
// Only 3-component vectors have a cross product; other dimensions do not
// type-check.
func Cross[T Scalar](a, b Vec3[T]) Vec3[T] {
	return V3(
		a.e[1]*b.e[2]-a.e[2]*b.e[1],
		a.e[2]*b.e[0]-a.e[0]*b.e[2],
		a.e[0]*b.e[1]-a.e[1]*b.e[0],
	)
}

// Normalize returns v / ‖v‖. The zero vector is returned unchanged instead
// of producing NaN components.
func Normalize[T constraints.Float, A Array[T]](v Vector[T, A]) Vector[T, A] {
	m := v.Magnitude()
	if m == 0 {
		return v
	}

	return v.Scale(T(1 / m))
}

// Lerp returns a + (b - a)·t.
func Lerp[T constraints.Float, A Array[T]](a, b Vector[T, A], t T) Vector[T, A] {
	return a.Add(b.Sub(a).Scale(t))
}
