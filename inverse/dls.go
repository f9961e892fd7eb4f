// This file implements the damped least-squares linear backend.
package inverse

import (
	"fmt"
	"math"

	"github.com/mtreyden/armature/matrix"
)

const (
	// DefaultDamping is the default Tikhonov regularization weight λ.
	DefaultDamping = 1e-5

	// DefaultStepLimit caps the update's Euclidean norm at 10 degrees,
	// assuming near-linearity of the kinematics within that range.
	DefaultStepLimit = math.Pi / 18
)

// DampedLeastSquares solves the per-iteration system through the
// regularized normal equations
//
//	(JᵀJ + λI)·x = Jᵀr
//
// followed by a clamp of ‖x‖₂ to StepLimit. The damping term λ keeps the
// system solvable at singular configurations (rank-deficient J), which is
// exactly the regularization duty the LinearSolver contract assigns to the
// backend.
type DampedLeastSquares struct {
	// Damping is the regularization weight λ added to JᵀJ's diagonal.
	Damping float64

	// StepLimit bounds the update's Euclidean norm; 0 disables the clamp.
	StepLimit float64
}

// NewDampedLeastSquares returns a backend with the default damping and
// step limit.
func NewDampedLeastSquares() *DampedLeastSquares {
	return &DampedLeastSquares{Damping: DefaultDamping, StepLimit: DefaultStepLimit}
}

// Solve implements LinearSolver. jac is the column-major rows×cols Jacobian
// buffer as assembled by jacobian.Model; out receives cols update values.
func (d *DampedLeastSquares) Solve(jac []float64, rows, cols int, rhs []float64, out []float64) error {
	if len(out) != cols {
		return fmt.Errorf("inverse: dls: %d outputs for %d columns: %w", len(out), cols, ErrDimensionMismatch)
	}

	// 1. Lift the flat buffer into a row-major Dense.
	j, err := matrix.FromColumnMajor(jac, rows, cols)
	if err != nil {
		return fmt.Errorf("inverse: dls: %w", err)
	}
	jt, err := matrix.Transpose(j)
	if err != nil {
		return fmt.Errorf("inverse: dls: %w", err)
	}

	// 2. Normal equations with Tikhonov damping: G = JᵀJ + λI, g = Jᵀr.
	g, err := matrix.Mul(jt, j)
	if err != nil {
		return fmt.Errorf("inverse: dls: %w", err)
	}
	ident, err := matrix.NewIdentity(cols)
	if err != nil {
		return fmt.Errorf("inverse: dls: %w", err)
	}
	damping, err := matrix.Scale(ident, d.Damping)
	if err != nil {
		return fmt.Errorf("inverse: dls: %w", err)
	}
	g, err = matrix.Add(g, damping)
	if err != nil {
		return fmt.Errorf("inverse: dls: %w", err)
	}
	gradient, err := matrix.MatVec(jt, rhs)
	if err != nil {
		return fmt.Errorf("inverse: dls: %w", err)
	}

	// 3. LU solve of the cols×cols system.
	x, err := matrix.Solve(g, gradient)
	if err != nil {
		return fmt.Errorf("inverse: dls: %w", err)
	}

	// 4. Clamp the step norm; directions are preserved, magnitudes bounded.
	if d.StepLimit > 0 {
		norm := 0.0
		for _, v := range x {
			norm += v * v
		}
		norm = math.Sqrt(norm)
		if norm > d.StepLimit {
			factor := d.StepLimit / norm
			for i := range x {
				x[i] *= factor
			}
		}
	}

	copy(out, x)

	return nil
}
