// Package jacobian assembles the differentiable view of an articulated
// tree: a flat Jacobian matrix and a flat effector-configuration vector,
// ready for an iterative least-squares solver.
//
// What:
//
//   - Body[P, T]: the payload capability — pose composition (forward.Poser)
//     plus effector sizing/output and per-joint partial derivatives.
//   - Model[P, T]: Setup once per tree and joint/effector selection,
//     Compute once per parameter vector. Scope (EffectorsOnly, JacobianOnly,
//     All) picks which buffers a call fills; the shared pose pass always
//     runs exactly once.
//
// Layout:
//   - Rows are effector scalars: each selected effector owns a fixed row
//     offset, assigned by a prefix sum over depth-first order.
//   - Columns are selected joints, in depth-first order. The buffer is
//     column-major, so each joint's fill writes one contiguous chunk.
//
// Complexity:
//   - Compute = O(n) pose pass + O(Σ subtree sizes of selected joints) for
//     the Jacobian fill. A joint's column only scans the contiguous subtree
//     slice below it — an effector on an unrelated sibling branch costs
//     that column nothing. This bound is what the depth-first layout
//     optimization in the arena package exists to provide.
//
// Selection ids that are not present in the tree fail Setup with a wrapped
// arena.ErrUnknownNode. An empty joint selection activates every joint; an
// empty effector selection produces a zero-row model.
package jacobian
