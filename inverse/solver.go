// This file implements the bounded differential inverse-kinematics loop.
package inverse

import (
	"fmt"

	"github.com/mtreyden/armature/arena"
	"github.com/mtreyden/armature/jacobian"
)

// LinearSolver solves the per-iteration linear system: given the
// column-major rows×cols Jacobian and the scaled residual rhs (length rows),
// it writes a joint-parameter update of length cols into out.
//
// Rank-deficient systems are the solver's responsibility to tolerate —
// regularization lives behind this interface, not in the iteration loop.
// DampedLeastSquares is the packaged implementation.
type LinearSolver interface {
	Solve(jac []float64, rows, cols int, rhs []float64, out []float64) error
}

// Solver drives a jacobian.Model to a target effector configuration with a
// bounded iterative least-squares loop.
//
// A Solver is reusable across Solve calls and trees (re-Setup between
// trees); it is not safe for concurrent use.
type Solver[P jacobian.Body[P, T], T any] struct {
	model  *jacobian.Model[P, T]
	linear LinearSolver
	opts   Options

	residual []float64
	update   []float64
}

// NewSolver builds a solver around a linear backend. Option values outside
// their valid ranges fail with ErrBadOption.
func NewSolver[P jacobian.Body[P, T], T any](linear LinearSolver, opts ...Option) (*Solver[P, T], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("inverse: new solver: %w", err)
	}

	return &Solver[P, T]{
		model:  jacobian.NewModel[P, T](),
		linear: linear,
		opts:   o,
	}, nil
}

// Setup prepares the underlying model for a tree and a joint/effector
// selection. It must run before Solve and again after switching trees.
func (s *Solver[P, T]) Setup(t *arena.CompactTree[P], jointIDs, effectorIDs []string) error {
	return s.model.Setup(t, jointIDs, effectorIDs)
}

// Model exposes the underlying differentiable model, e.g. to read the final
// effector configuration after a solve.
func (s *Solver[P, T]) Model() *jacobian.Model[P, T] { return s.model }

// Solve iterates params toward targets and reports the outcome. params is
// updated in place (selected joints only) and holds the final configuration
// when Solve returns; targets is one value per model row.
//
// Each iteration: compute poses, effectors and Jacobian; measure the squared
// residual; stop on tolerance or the iteration cap; otherwise solve for an
// update and apply it to the active joints. The stop check runs before the
// update, so Result.SquaredError always describes the returned params.
// Non-convergence is not an error: MaxIterationsReached is a valid outcome.
func (s *Solver[P, T]) Solve(t *arena.CompactTree[P], params, targets []float64) (Result, error) {
	if len(params) != t.Len() {
		return Result{}, fmt.Errorf("inverse: %d parameters for %d nodes: %w", len(params), t.Len(), ErrDimensionMismatch)
	}
	rows, cols := s.model.Shape()
	if len(targets) != rows {
		return Result{}, fmt.Errorf("inverse: %d targets for %d rows: %w", len(targets), rows, ErrDimensionMismatch)
	}

	if cap(s.residual) < rows {
		s.residual = make([]float64, rows)
	}
	s.residual = s.residual[:rows]
	if cap(s.update) < cols {
		s.update = make([]float64, cols)
	}
	s.update = s.update[:cols]

	active := s.model.Active()
	iterations := 0
	for {
		// 1. Shared pose pass, effector outputs, and Jacobian fill.
		if err := s.model.Compute(t, params, jacobian.All); err != nil {
			return Result{}, err
		}

		// 2. Residual and its squared norm.
		squaredError := 0.0
		for i, effector := range s.model.Effectors() {
			r := targets[i] - effector
			s.residual[i] = r
			squaredError += r * r
		}

		if s.opts.OnIteration != nil {
			s.opts.OnIteration(iterations, squaredError)
		}

		// 3. Stop before updating, so the reported error matches params.
		if squaredError < s.opts.Tolerance {
			return Result{Status: Converged, Iterations: iterations, SquaredError: squaredError}, nil
		}
		if iterations >= s.opts.MaxIterations {
			return Result{Status: MaxIterationsReached, Iterations: iterations, SquaredError: squaredError}, nil
		}

		// 4. Solve for the update and apply it to the active joints only.
		for i := range s.residual {
			s.residual[i] *= s.opts.Scale
		}
		if err := s.linear.Solve(s.model.Jacobian(), rows, cols, s.residual, s.update); err != nil {
			return Result{}, fmt.Errorf("inverse: iteration %d: %w", iterations, err)
		}

		col := 0
		for i, isActive := range active {
			if !isActive {
				continue
			}
			params[i] += s.update[col]
			col++
		}
		iterations++
	}
}
