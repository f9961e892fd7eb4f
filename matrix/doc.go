// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra primitives the inverse
// kinematics solver builds on: a row-major Dense matrix and a small set of
// strictly validated kernels.
//
// What:
//
//   - Dense: row-major float64 matrix over one flat slice; the Matrix
//     interface abstracts it for callers that bring their own storage.
//   - Constructors: NewDense, NewIdentity, FromRows, FromColumnMajor (the
//     bridge from the jacobian package's column-major assembly buffer).
//   - Kernels: Add, Sub, Scale, Mul, Transpose, MatVec, LU (Doolittle,
//     non-pivoting), Solve (LU + forward/back substitution).
//
// Why:
//   - The damped least-squares update solves the cols×cols normal equations
//     JᵀJ + λI every iteration; these kernels cover exactly that without an
//     external numeric dependency.
//   - Every kernel validates fail-fast through the central validators and
//     wraps failures with its operation tag, so errors read "Mul:
//     ValidateMulShape: matrix: dimension mismatch" and still match
//     errors.Is against the package sentinels.
//
// Determinism:
//   - Fixed loop orders everywhere; no pivoting in LU (a zero pivot is
//     ErrSingular, not a row exchange). Results are bit-reproducible across
//     runs for identical inputs.
//
// Errors:
//
//   - ErrInvalidDimensions  non-positive requested shape
//   - ErrOutOfRange         At/Set index outside bounds
//   - ErrDimensionMismatch  incompatible operand shapes
//   - ErrNonSquare          square matrix required
//   - ErrNilMatrix          nil receiver or argument
//   - ErrSingular           zero pivot during LU/Solve
//   - ErrNaNInf             non-finite value where finite required
package matrix
