// This file declares options, outcome types, and sentinel errors for the
// differential inverse-kinematics solver.
package inverse

import "errors"

var (
	// ErrDimensionMismatch indicates that a params or targets slice does not
	// match the tree's node count or the model's row count.
	ErrDimensionMismatch = errors.New("inverse: dimension mismatch")

	// ErrBadOption indicates an option value outside its valid range.
	ErrBadOption = errors.New("inverse: invalid option value")
)

// Status classifies how a solve ended. Both values are valid, inspectable
// outcomes — neither travels on the error channel.
type Status int

const (
	// Converged: the squared residual error dropped below the tolerance.
	Converged Status = iota

	// MaxIterationsReached: the iteration cap ended the loop first. The
	// result still carries the best error reached; whether that is good
	// enough is the caller's call.
	MaxIterationsReached
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Converged:
		return "Converged"
	case MaxIterationsReached:
		return "MaxIterationsReached"
	}

	return "Status(?)"
}

// Result reports the outcome of one Solve call. The reported squared error
// always corresponds to the parameter vector Solve leaves behind: the
// convergence check runs before any further update is applied.
type Result struct {
	// Status is Converged or MaxIterationsReached.
	Status Status

	// Iterations is the number of parameter updates applied.
	Iterations int

	// SquaredError is the final Σ(target − effector)² over all rows.
	SquaredError float64
}

// Options holds the solver's tuning parameters. Construct with
// DefaultOptions and adjust via With* options.
type Options struct {
	// MaxIterations caps the number of parameter updates. Default 100.
	MaxIterations int

	// Tolerance is the squared-error threshold below which the solve
	// reports Converged. Default 1e-6.
	Tolerance float64

	// Scale multiplies the residual before each linear solve, damping
	// (Scale < 1) or overdriving (Scale > 1) the step. Default 1.
	Scale float64

	// OnIteration, if non-nil, observes every iteration with its index and
	// the squared error measured at its start. Useful for convergence
	// diagnostics; must not call back into the solver.
	OnIteration func(iteration int, squaredError float64)
}

// Option configures solver construction. Use with NewSolver.
type Option func(*Options)

// DefaultOptions returns the solver defaults.
func DefaultOptions() Options {
	return Options{
		MaxIterations: 100,
		Tolerance:     1e-6,
		Scale:         1,
	}
}

// WithMaxIterations caps the number of updates per Solve call.
func WithMaxIterations(n int) Option {
	return func(o *Options) { o.MaxIterations = n }
}

// WithTolerance sets the squared-error convergence threshold.
func WithTolerance(tol float64) Option {
	return func(o *Options) { o.Tolerance = tol }
}

// WithScale sets the residual scaling factor.
func WithScale(scale float64) Option {
	return func(o *Options) { o.Scale = scale }
}

// WithOnIteration installs a per-iteration observer.
func WithOnIteration(fn func(iteration int, squaredError float64)) Option {
	return func(o *Options) { o.OnIteration = fn }
}

// validate rejects option values outside their valid ranges.
func (o *Options) validate() error {
	if o.MaxIterations <= 0 {
		return ErrBadOption
	}
	if o.Tolerance <= 0 {
		return ErrBadOption
	}
	if o.Scale <= 0 {
		return ErrBadOption
	}

	return nil
}
