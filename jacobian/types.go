// This file declares the payload capability and the computation scope enum
// for differentiable model assembly.
package jacobian

import "github.com/mtreyden/armature/forward"

// ErrParamCount aliases the forward-kinematics sentinel: Compute requires
// exactly one parameter per tree node. Matching either package's name with
// errors.Is succeeds.
var ErrParamCount = forward.ErrParamCount

// Scope selects which of Compute's outputs are filled. The pose pass over
// the whole tree runs exactly once regardless of scope; the scope only
// controls which buffers the shared poses are written into.
type Scope int

const (
	// EffectorsOnly fills the effector-configuration buffer and leaves the
	// Jacobian untouched.
	EffectorsOnly Scope = iota

	// JacobianOnly fills the Jacobian and leaves the configuration untouched.
	JacobianOnly

	// All fills both.
	All
)

// String returns the scope name.
func (s Scope) String() string {
	switch s {
	case EffectorsOnly:
		return "EffectorsOnly"
	case JacobianOnly:
		return "JacobianOnly"
	case All:
		return "All"
	}

	return "Scope(?)"
}

// Body is the payload capability differentiable assembly needs on top of
// pose composition: sizing and writing effector outputs, and writing the
// partial derivative of an effector with respect to a joint.
//
// The constraint is self-referential (P's methods receive P values) so that
// derivative formulas can inspect the joint payload — typically its axis —
// without any dynamic dispatch at the tree layer.
type Body[P, T any] interface {
	forward.Poser[T]

	// EffectorSize returns the number of scalar outputs this payload
	// contributes when selected as an effector. Zero means the node cannot
	// produce effector rows.
	EffectorSize() int

	// WriteEffector writes the payload's effector output, derived from its
	// pose in the root frame, into dst (EffectorSize() elements).
	WriteEffector(pose T, dst []float64)

	// WritePartialDerivative writes ∂(effector output)/∂(joint parameter)
	// into dst (EffectorSize() elements), given the effector's pose, the
	// joint's payload, and the joint's pose.
	WritePartialDerivative(pose T, joint P, jointPose T, dst []float64)
}
