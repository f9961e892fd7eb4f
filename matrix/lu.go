// SPDX-License-Identifier: MIT
// Package matrix: LU decomposition and the dense linear solve built on it.

package matrix

import "fmt"

// LU performs Doolittle LU decomposition on a square matrix m.
// It returns L (unit lower triangular) and U (upper triangular) so that
// L·U = m. The scheme does not pivot: a zero pivot on U's diagonal fails
// with ErrSingular rather than being repaired by row exchanges, which keeps
// the elimination order fully deterministic.
//
// Stage 1 (Validate): not nil, square.
// Stage 2 (Prepare): allocate L and U, unit diagonal on L.
// Stage 3 (Execute): for each pivot row i, fill U's row i then L's column i.
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular.
// Complexity: O(n³) time, O(n²) memory for L and U.
func LU(m Matrix) (*Dense, *Dense, error) {
	// Validate input is square
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	n := m.Rows() // common dimension

	// Prepare L and U matrices
	lower, err := NewDense(n, n) // allocate L
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	upper, err := NewDense(n, n) // allocate U
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	// Initialize L diagonal to 1 (unit lower triangular)
	for i := 0; i < n; i++ {
		lower.data[i*n+i] = 1
	}

	// Execute decomposition
	var sum, aVal, pivot float64
	for i := 0; i < n; i++ {
		// Compute U's row i for columns j >= i
		for j := i; j < n; j++ {
			sum = ZeroSum
			for k := 0; k < i; k++ { // sum L[i][k]*U[k][j]
				sum += lower.data[i*n+k] * upper.data[k*n+j]
			}
			if aVal, err = m.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opLU, err)
			}
			upper.data[i*n+j] = aVal - sum
		}
		// Reject a zero pivot before dividing by it below.
		pivot = upper.data[i*n+i]
		if pivot == ZeroPivot {
			return nil, nil, matrixErrorf(opLU, fmt.Errorf("zero pivot at %d: %w", i, ErrSingular))
		}
		// Compute L's column i for rows j > i
		for j := i + 1; j < n; j++ {
			sum = ZeroSum
			for k := 0; k < i; k++ { // sum L[j][k]*U[k][i]
				sum += lower.data[j*n+k] * upper.data[k*n+i]
			}
			if aVal, err = m.At(j, i); err != nil {
				return nil, nil, matrixErrorf(opLU, err)
			}
			lower.data[j*n+i] = (aVal - sum) / pivot
		}
	}

	return lower, upper, nil
}

// Solve returns x with m·x = b for a square matrix m, via LU decomposition
// followed by forward substitution (L·y = b) and back substitution (U·x = y).
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch, ErrSingular.
// Complexity: O(n³) for the decomposition, O(n²) for the substitutions.
func Solve(m Matrix, b []float64) ([]float64, error) {
	// Validate shape agreement before factorizing.
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateVecLen(b, m.Rows()); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	// Factorize; LU validates squareness and rejects zero pivots.
	lower, upper, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	n := m.Rows()

	// Forward substitution: L·y = b, L has a unit diagonal.
	y := make([]float64, n)
	var sum float64
	for i := 0; i < n; i++ {
		sum = ZeroSum
		for k := 0; k < i; k++ {
			sum += lower.data[i*n+k] * y[k]
		}
		y[i] = b[i] - sum
	}

	// Back substitution: U·x = y.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum = ZeroSum
		for k := i + 1; k < n; k++ {
			sum += upper.data[i*n+k] * x[k]
		}
		x[i] = (y[i] - sum) / upper.data[i*n+i]
	}

	return x, nil
}
