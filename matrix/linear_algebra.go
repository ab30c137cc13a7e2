// SPDX-License-Identifier: MIT

// Package matrix - inverse, symmetric eigen-decomposition and spectral norm.
//
// Purpose:
//   - Work in float64 scratch arrays sized for the largest supported matrix,
//     so no routine allocates.
//   - Fail fast with sentinels (ErrNonSquare, ErrNaNInf, ErrSingular,
//     ErrAsymmetry, ErrEigenFailed) wrapped with the operation tag.
package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spatiumgl/vector"
	"golang.org/x/exp/constraints"
)

// Inverse returns m⁻¹.
// Implementation:
//   - Stage 1: validate square and finite input.
//   - Stage 2: build the augmented block [A | I] in float64.
//   - Stage 3: Gauss-Jordan elimination with partial pivoting; a pivot with
//     |p| ≤ DefaultSingularTol·max|A| aborts with ErrSingular.
//   - Stage 4: read the right block back into T.
//
// Errors:
//   - ErrNonSquare, ErrNaNInf, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(1).
func Inverse[T constraints.Float, C vector.Array[T], M Columns[T, C]](m Matrix[T, C, M]) (Matrix[T, C, M], error) {
	var inv Matrix[T, C, M]

	// Stage 1: Validate
	if err := ValidateSquare(m); err != nil {
		return inv, matrixErrorf(opInverse, err)
	}
	if err := ValidateFinite(m); err != nil {
		return inv, matrixErrorf(opInverse, err)
	}

	// Stage 2: Prepare augmented block
	var (
		a     [maxDim][2 * maxDim]float64
		n     = m.Rows()
		scale = m.maxAbs()
		i, j  int
	)
	if scale == 0 {
		return inv, matrixErrorf(opInverse, ErrSingular)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			a[i][j] = float64(m.At(i, j))
		}
		a[i][n+i] = 1
	}

	// Stage 3: Eliminate column by column
	var (
		col, row, p int
		best, piv   float64
		f           float64
	)
	for col = 0; col < n; col++ {
		// pick the largest remaining pivot in this column
		p, best = col, math.Abs(a[col][col])
		for row = col + 1; row < n; row++ {
			if v := math.Abs(a[row][col]); v > best {
				p, best = row, v
			}
		}
		if best <= scale*DefaultSingularTol {
			return inv, matrixErrorf(opInverse, fmt.Errorf("zero pivot in column %d: %w", col, ErrSingular))
		}
		a[col], a[p] = a[p], a[col]

		// normalise pivot row
		piv = a[col][col]
		for j = 0; j < 2*n; j++ {
			a[col][j] /= piv
		}
		// clear the column in every other row
		for row = 0; row < n; row++ {
			if row == col {
				continue
			}
			f = a[row][col]
			if f == 0 {
				continue
			}
			for j = 0; j < 2*n; j++ {
				a[row][j] -= f * a[col][j]
			}
		}
	}

	// Stage 4: Finalize
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			inv.Set(i, j, T(a[i][n+j]))
		}
	}

	return inv, nil
}

// EigenSym computes eigenvalues and eigenvectors of a symmetric matrix via
// cyclic-pivot Jacobi rotations.
// Implementation:
//   - Stage 1: validate square, finite and symmetric within tol·‖A‖_F.
//   - Stage 2: repeatedly pick (p,q) with the largest |A[p,q]| in i→j order
//     and apply a Jacobi rotation to A and to the accumulator Q.
//
// Inputs:
//   - tol: relative convergence threshold (DefaultEigenTol is a good default).
//   - maxIter: safety cap on rotations (DefaultEigenMaxIter).
//
// Returns:
//   - values: eigenvalues (diagonal of the rotated matrix), unsorted.
//   - vectors: Q whose columns are the matching unit eigenvectors.
//
// Errors:
//   - ErrNonSquare, ErrNaNInf, ErrAsymmetry, ErrEigenFailed.
//
// Determinism:
//   - Fixed pivot scan and update order produce stable results.
//
// Complexity:
//   - Time O(maxIter·n), Space O(1).
func EigenSym[T constraints.Float, C vector.Array[T], M Columns[T, C]](m Matrix[T, C, M], tol float64, maxIter int) (vector.Vector[T, C], Matrix[T, C, M], error) {
	var (
		values  vector.Vector[T, C]
		vectors Matrix[T, C, M]
	)
	if err := ValidateFinite(m); err != nil {
		return values, vectors, matrixErrorf(opEigen, err)
	}
	norm := frobenius(m)
	if err := ValidateSymmetric(m, tol*math.Max(norm, 1)); err != nil {
		return values, vectors, matrixErrorf(opEigen, err)
	}

	// Prepare working copy A and orthogonal accumulator Q
	var (
		a, q [maxDim][maxDim]float64
		n    = m.Rows()
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			a[i][j] = float64(m.At(i, j))
		}
		q[i][i] = 1
	}

	var (
		iter, p, k    int
		maxOff, off   float64
		app, aqq, apq float64
		theta, t      float64
		c, s          float64
		akp, akq      float64
		converged     = norm == 0
		threshold     = tol * norm
	)
	for iter = 0; iter < maxIter && !converged; iter++ {
		// J.1: find pivot (p,q) maximizing |A[p,q]|
		maxOff, p, k = 0, 0, 1
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				off = math.Abs(a[i][j])
				if off > maxOff {
					maxOff, p, k = off, i, j
				}
			}
		}

		// J.2: convergence
		if maxOff <= threshold {
			converged = true
			break
		}

		// J.3: rotation parameters
		app, aqq, apq = a[p][p], a[k][k], a[p][k]
		theta = (aqq - app) / (2 * apq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		// J.4: rotate A symmetrically
		for i = 0; i < n; i++ {
			if i == p || i == k {
				continue
			}
			akp, akq = a[i][p], a[i][k]
			a[i][p] = c*akp - s*akq
			a[p][i] = a[i][p]
			a[i][k] = s*akp + c*akq
			a[k][i] = a[i][k]
		}
		a[p][p] = app - t*apq
		a[k][k] = aqq + t*apq
		a[p][k], a[k][p] = 0, 0

		// J.5: accumulate Q
		for i = 0; i < n; i++ {
			akp, akq = q[i][p], q[i][k]
			q[i][p] = c*akp - s*akq
			q[i][k] = s*akp + c*akq
		}
	}
	if !converged {
		// the loop may have exhausted maxIter exactly on convergence
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				maxOff = math.Max(maxOff, math.Abs(a[i][j]))
			}
		}
		if maxOff > threshold {
			return values, vectors, matrixErrorf(opEigen,
				fmt.Errorf("off-diagonal %g after %d rotations: %w", maxOff, maxIter, ErrEigenFailed))
		}
	}

	for i = 0; i < n; i++ {
		values.Set(i, T(a[i][i]))
		for j = 0; j < n; j++ {
			vectors.Set(i, j, T(q[i][j]))
		}
	}

	return values, vectors, nil
}

// SpectralNorm returns the largest singular value of m, i.e.
// sqrt(λmax(mᵀm)). It is the exact factor by which m can stretch a vector:
// 1 for rotations, |s| for uniform scale s.
// Square types only.
//
// Errors:
//   - ErrNaNInf, ErrEigenFailed (from EigenSym).
func SpectralNorm[T constraints.Float, C vector.Array[T], M Columns[T, C]](m Matrix[T, C, M]) (T, error) {
	mustSquare(m, opEigen)

	gram := m.Transpose().Mul(m)
	values, _, err := EigenSym(gram, DefaultEigenTol, DefaultEigenMaxIter)
	if err != nil {
		return 0, err
	}
	lmax := math.Max(float64(values.MaxComponent()), 0)

	return T(math.Sqrt(lmax)), nil
}

// frobenius returns sqrt(Σ m[i,j]²).
func frobenius[T vector.Scalar, C vector.Array[T], M Columns[T, C]](m Matrix[T, C, M]) float64 {
	var sum, v float64
	for j := 0; j < m.Cols(); j++ {
		for i := 0; i < m.Rows(); i++ {
			v = float64(m.At(i, j))
			sum += v * v
		}
	}

	return math.Sqrt(sum)
}
