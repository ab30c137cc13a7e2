// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Algorithms return these sentinels (optionally wrapped with a
// method tag) and tests check them via errors.Is.
// Panics are reserved for programmer errors: out-of-range element indices
// and square-only operations invoked on a non-square matrix type.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency.

var (
	// ErrDimensionMismatch indicates that the number of supplied values does
	// not match the matrix shape (e.g., FromRowMajor with the wrong count).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the type
	// argument describes a rectangular one.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the given tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf entry where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when no usable pivot exists during inversion.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrEigenFailed indicates that the Jacobi routine failed to converge
	// within the iteration cap.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)
