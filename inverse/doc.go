// Package inverse solves inverse kinematics: given target effector outputs,
// it iterates joint parameters with a bounded Jacobian least-squares loop.
//
// What:
//
//   - Solver: wraps a jacobian.Model and a LinearSolver. Setup selects
//     joints and effectors; Solve runs the loop — compute, residual, stop
//     check, linear solve, parameter update — until the squared error drops
//     below the tolerance (Converged) or the iteration cap is hit
//     (MaxIterationsReached).
//   - LinearSolver: the per-iteration linear backend contract. It receives
//     the column-major Jacobian and the scaled residual and produces a
//     joint-parameter update; tolerating rank deficiency is its job.
//   - DampedLeastSquares: the packaged backend — normal equations JᵀJ + λI,
//     LU solve via the matrix package, Euclidean step-norm clamp.
//
// Outcomes, not errors:
//   - Result carries {Status, Iterations, SquaredError} for both convergence
//     and cap exhaustion. Non-convergence is reported, never retried and
//     never silently discarded; the only errors Solve returns are dimension
//     mismatches and backend failures.
//   - The stop check runs before the update is applied, so the reported
//     error always describes the parameter vector the caller holds.
//
// Tuning is via functional options on NewSolver: WithMaxIterations (default
// 100), WithTolerance (squared-error units, default 1e-6), WithScale
// (residual scaling, default 1), WithOnIteration (convergence observer).
package inverse
