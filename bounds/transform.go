// SPDX-License-Identifier: MIT

// Package bounds - affine transforms of bounding volumes.
//
// 3-D shapes take a 4×4 and 2-D shapes a 3×3 homogeneous matrix
// (column-vector convention, translation in the last column). The matrix
// must be finite and affine.
//
// Semantics per family:
//   - Orthotope, Hypercube: re-fit. The result is the axis-aligned box (or
//     hypercube) covering the transformed shape, so a rotation grows it and
//     the transform is not invertible.
//   - Ball: the center is mapped, the radius scaled by the spectral norm of
//     the linear part.
//   - Hyperellipsoid: the center and every axis are mapped; each axis is
//     renormalised and its radius scaled by the axis' stretch. This is exact,
//     and M followed by M⁻¹ restores the shape up to rounding, when the
//     mapped axes stay orthogonal (rotations, uniform scale, reflections, and
//     per-axis scale along the shape's own axes). Other transforms fail with
//     ErrUnsupportedTransform.
package bounds

import (
	"fmt"

	"github.com/katalvlaran/spatiumgl/matrix"
	"github.com/katalvlaran/spatiumgl/vector"
	"golang.org/x/exp/constraints"
)

// TransformBox re-fits b under the 4×4 affine transform m.
//
// Errors:
//   - ErrInvalidGeometry with ErrNonFinite; ErrNotAffine.
func TransformBox[T constraints.Float](b Box[T], m matrix.Mat4[T]) (Box[T], error) {
	if err := checkAffine(m, matrix.IsAffine3(m)); err != nil {
		return b, err
	}

	return transformOrthotope(b, matrix.Linear3(m), matrix.Translation3(m)), nil
}

// TransformRectangle re-fits r under the 3×3 affine transform m.
//
// Errors:
//   - ErrInvalidGeometry with ErrNonFinite; ErrNotAffine.
func TransformRectangle[T constraints.Float](r Rectangle[T], m matrix.Mat3[T]) (Rectangle[T], error) {
	if err := checkAffine(m, matrix.IsAffine2(m)); err != nil {
		return r, err
	}

	return transformOrthotope(r, matrix.Linear2(m), matrix.Translation2(m)), nil
}

// TransformCube re-fits c under m, keeping the result a cube.
//
// Errors:
//   - ErrInvalidGeometry with ErrNonFinite; ErrNotAffine.
func TransformCube[T constraints.Float](c Cube[T], m matrix.Mat4[T]) (Cube[T], error) {
	if err := checkAffine(m, matrix.IsAffine3(m)); err != nil {
		return c, err
	}

	return transformHypercube(c, matrix.Linear3(m), matrix.Translation3(m)), nil
}

// TransformSquare re-fits s under m, keeping the result a square.
//
// Errors:
//   - ErrInvalidGeometry with ErrNonFinite; ErrNotAffine.
func TransformSquare[T constraints.Float](s Square[T], m matrix.Mat3[T]) (Square[T], error) {
	if err := checkAffine(m, matrix.IsAffine2(m)); err != nil {
		return s, err
	}

	return transformHypercube(s, matrix.Linear2(m), matrix.Translation2(m)), nil
}

// TransformSphere maps s under m.
//
// Errors:
//   - ErrInvalidGeometry with ErrNonFinite; ErrNotAffine;
//     matrix.ErrEigenFailed from the spectral norm.
func TransformSphere[T constraints.Float](s Sphere[T], m matrix.Mat4[T]) (Sphere[T], error) {
	if err := checkAffine(m, matrix.IsAffine3(m)); err != nil {
		return s, err
	}

	return transformBall(s, matrix.Linear3(m), matrix.Translation3(m))
}

// TransformCircle maps c under m.
//
// Errors:
//   - ErrInvalidGeometry with ErrNonFinite; ErrNotAffine;
//     matrix.ErrEigenFailed from the spectral norm.
func TransformCircle[T constraints.Float](c Circle[T], m matrix.Mat3[T]) (Circle[T], error) {
	if err := checkAffine(m, matrix.IsAffine2(m)); err != nil {
		return c, err
	}

	return transformBall(c, matrix.Linear2(m), matrix.Translation2(m))
}

// TransformEllipsoid maps e and its frame under m.
//
// Errors:
//   - ErrInvalidGeometry with ErrNonFinite; ErrNotAffine;
//     ErrUnsupportedTransform for collapsing or shearing transforms.
func TransformEllipsoid[T constraints.Float](e Ellipsoid[T], m matrix.Mat4[T]) (Ellipsoid[T], error) {
	if err := checkAffine(m, matrix.IsAffine3(m)); err != nil {
		return e, err
	}

	return transformHyperellipsoid(e, matrix.Linear3(m), matrix.Translation3(m))
}

// TransformEllipse maps e and its frame under m.
//
// Errors:
//   - ErrInvalidGeometry with ErrNonFinite; ErrNotAffine;
//     ErrUnsupportedTransform for collapsing or shearing transforms.
func TransformEllipse[T constraints.Float](e Ellipse[T], m matrix.Mat3[T]) (Ellipse[T], error) {
	if err := checkAffine(m, matrix.IsAffine2(m)); err != nil {
		return e, err
	}

	return transformHyperellipsoid(e, matrix.Linear2(m), matrix.Translation2(m))
}

func transformOrthotope[T constraints.Float, A vector.Array[T], M matrix.Columns[T, A]](b Orthotope[T, A], lin matrix.Matrix[T, A, M], t vector.Vector[T, A]) Orthotope[T, A] {
	c, r := refitBox(b.center, b.radii, lin, t)

	return orthotopeOf(c, r)
}

func transformHypercube[T constraints.Float, A vector.Array[T], M matrix.Columns[T, A]](h Hypercube[T, A], lin matrix.Matrix[T, A, M], t vector.Vector[T, A]) Hypercube[T, A] {
	c, r := refitBox(h.center, h.Radii(), lin, t)

	return hypercubeOf(c, r.MaxComponent())
}

func transformBall[T constraints.Float, A vector.Array[T], M matrix.Columns[T, A]](b Ball[T, A], lin matrix.Matrix[T, A, M], t vector.Vector[T, A]) (Ball[T, A], error) {
	stretch, err := matrix.SpectralNorm(lin)
	if err != nil {
		return b, boundsErrorf(opTransform, err)
	}
	c := lin.MulVec(b.center).Add(t)

	return ballOf(c, grow(b.radius*stretch)), nil
}

func transformHyperellipsoid[T constraints.Float, A vector.Array[T], M matrix.Columns[T, A]](e Hyperellipsoid[T, A, M], lin matrix.Matrix[T, A, M], t vector.Vector[T, A]) (Hyperellipsoid[T, A, M], error) {
	var (
		axes = e.Orientation()
		na   matrix.Matrix[T, A, M]
		nr   vector.Vector[T, A]
	)
	for j := 0; j < nr.Len(); j++ {
		v := lin.MulVec(axes.Column(j))
		stretch := v.Magnitude()
		if stretch == 0 {
			return e, boundsErrorf(opTransform, fmt.Errorf("axis %d collapses: %w", j, ErrUnsupportedTransform))
		}
		na.SetColumn(j, vector.Normalize(v))
		nr.Set(j, e.radii.At(j)*T(stretch))
	}
	if !orthonormal(na) {
		return e, boundsErrorf(opTransform, fmt.Errorf("axes lose orthogonality: %w", ErrUnsupportedTransform))
	}
	c := lin.MulVec(e.center).Add(t)

	return hyperellipsoidOf(c, nr, na), nil
}
