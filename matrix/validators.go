// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Return sentinel errors tagged with the validator name so call sites can
//     wrap uniformly and callers can still use errors.Is.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spatiumgl/vector"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare checks that m is square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare[T vector.Scalar, C vector.Array[T], M Columns[T, C]](m Matrix[T, C, M]) error {
	if !m.IsSquare() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateFinite checks that no element is NaN or ±Inf.
// Complexity: O(r*c).
func ValidateFinite[T vector.Scalar, C vector.Array[T], M Columns[T, C]](m Matrix[T, C, M]) error {
	if !m.IsFinite() {
		return validatorErrorf("ValidateFinite", ErrNaNInf)
	}

	return nil
}

// ValidateSymmetric checks squareness, then |m[i,j] - m[j,i]| ≤ tol on the
// upper triangle.
// Complexity: O(n²).
func ValidateSymmetric[T vector.Scalar, C vector.Array[T], M Columns[T, C]](m Matrix[T, C, M], tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if math.Abs(float64(m.At(i, j))-float64(m.At(j, i))) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}
