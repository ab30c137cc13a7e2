// SPDX-License-Identifier: MIT

// Package matrix: numeric policy defaults (single source of truth).
package matrix

const (
	// DefaultEigenTol is the relative off-diagonal threshold for Jacobi
	// convergence: iteration stops when max|A[p,q]| < tol·‖A‖_F.
	DefaultEigenTol = 1e-14

	// DefaultEigenMaxIter caps Jacobi rotations. Matrices here are at most
	// 4×4, so convergence normally takes well under 30 rotations.
	DefaultEigenMaxIter = 100

	// DefaultSingularTol is the relative pivot threshold for Inverse:
	// a pivot with |p| ≤ tol·max|A[i,j]| is treated as zero.
	DefaultSingularTol = 1e-14

	// maxDim is the largest supported row/column count.
	maxDim = 4
)
