// Package armature computes forward and inverse kinematics for
// tree-structured articulated bodies — robot arms, character rigs, anything
// built from rigid segments connected by joints.
//
// 🚀 What is armature?
//
//	A pure-Go kinematics library built around flat, depth-first-ordered
//	storage:
//		• Arena trees: build incrementally, then freeze into a compact,
//		  depth-first layout where every subtree is one contiguous slice
//		• Forward kinematics: one amortized-O(1)-per-node accumulation pass
//		  computes every node's pose in the root frame
//		• Jacobian assembly: flat column-major matrix, each joint's column
//		  filled only over that joint's own subtree
//		• Inverse kinematics: bounded damped least-squares iteration with
//		  inspectable outcomes (Converged / MaxIterationsReached)
//
// ✨ Why choose armature?
//
//   - Cache-friendly – nodes live in one arena; links are integer indices
//   - Safe by construction – the compact tree offers no mutation surface,
//     so a frozen layout cannot be structurally invalidated
//   - Pure Go – no cgo, no numeric dependencies
//   - Generic – the tree core is payload-agnostic; bring any rigid-body
//     backend that can compose transforms and differentiate effectors
//
// Everything is organized under six subpackages:
//
//	arena/    — MutableTree, CompactTree, and the layout optimization
//	forward/  — generic path accumulation & forward kinematics
//	jacobian/ — the differentiable model (effector vector + Jacobian)
//	inverse/  — the iterative solver and its damped least-squares backend
//	rigid/    — reference 4×4 rigid-body payload (segments, axes)
//	matrix/   — dense row-major kernels (Mul, Transpose, MatVec, LU, Solve)
//
// Typical flow: build a MutableTree of rigid.Segment, arena.Optimize it,
// then hand the CompactTree to forward.Solve for poses or to inverse.Solver
// for target-driven joint parameters.
package armature
