// Package rigid is the reference rigid-body backend for the kinematics core:
// 4×4 homogeneous transforms and a Segment payload with one degree of
// freedom per joint.
//
// What:
//
//   - Transform: row-major 4×4 homogeneous transformation as a flat value
//     type ([16]float64). Constructors for translations and axis rotations;
//     Mul, Apply, Rotate, Position, Invert (rigid-body inverse), AlmostEqual.
//   - Axis: the joint conventions — rotation about or translation along one
//     parent-frame axis (RotationX..TranslationZ).
//   - Segment: link offset + joint axis + optional effector tip. Satisfies
//     the forward.Poser and jacobian.Body capabilities, so trees of Segment
//     plug directly into forward kinematics, Jacobian assembly, and the
//     inverse solver.
//
// Effector outputs are world positions (three scalars per effector).
// Partial derivatives use the geometric Jacobian columns: axis × lever for
// revolute joints, the world axis direction for prismatic joints.
//
// The package has no dependencies on the tree core; it only provides the
// payload the core is generic over.
package rigid
