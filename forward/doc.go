// Package forward computes root-to-node aggregates over depth-first node
// sequences, and specializes that scan to forward kinematics: composing
// rigid transformations along the unique path from the root to every node.
//
// What:
//
//   - Accumulate: a generic depth-indexed scan. Given nodes in depth-first
//     order and a combining function, it produces for every node the fold
//     of combine along its root path — without ever re-walking ancestors.
//     A stack holds the accumulated value per depth level; depth-first
//     order guarantees that after trimming the stack to the node's depth,
//     the top is exactly the parent's accumulated value.
//   - Poses: one Accumulate pass with combine = "parent pose ∘ local
//     transform", yielding every node's pose in the root frame.
//   - Solve: Poses filtered to a set of requested node ids (all nodes when
//     none are named) — the plain forward-kinematics entry point.
//
// Why:
//   - Pose composition is the single most expensive shared step of both
//     effector evaluation and Jacobian assembly; it must cost O(n) total,
//     not O(n·depth). Each stack entry is pushed and popped at most once,
//     so the scan is amortized O(1) per node.
//
// The combining payload capability is the Poser interface: local transform
// construction, composition, and the identity element. Any payload exposing
// those three operations can ride the same scan; Accumulate itself is
// agnostic and serves arbitrary aggregates (counts, sums, bounding volumes).
//
// Errors:
//
//   - ErrParamCount          parameter slice length differs from node count
//   - arena.ErrUnknownNode   a requested id is not in the tree (wrapped)
package forward
