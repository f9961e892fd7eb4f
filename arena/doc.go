// Package arena implements flat, index-addressed storage for tree-structured
// articulated hierarchies (kinematic chains, character rigs), with a one-way
// optimization step that reorders storage into depth-first layout.
//
// What:
//
//   - MutableTree: incremental construction — set a root, add nodes under a
//     known parent id. Depth and subtree width are maintained on every
//     insert; parent/child links are plain integer indices into one arena.
//   - Optimize: consumes a MutableTree and produces a CompactTree by
//     capturing the depth-first visitation order, rewriting every stored
//     index through that permutation, applying the permutation in place
//     (cycle-following swaps, O(1) extra space), and rebuilding the id index.
//   - CompactTree: frozen depth-first storage. Any subtree is the contiguous
//     slice [Index, Index+Width), so "is a descendant" becomes a range test
//     and subtree iteration costs O(width) with zero allocation.
//
// Why:
//   - Forward kinematics and Jacobian assembly iterate subtrees in hot
//     loops; contiguity turns those loops into linear slice scans.
//   - Integer indices replace pointer graphs: validity is a bounds check,
//     and the compact form cannot be structurally mutated at all — the type
//     offers no insertion method.
//
// Key Types:
//
//   - Node[P]: payload plus structural fields (id, index, parent, depth,
//     width, children). Structure is read-only from outside the package;
//     Payload() returns a pointer so payloads stay mutable through iteration.
//   - MutableTree[P], CompactTree[P], Optimize[P].
//
// Complexity:
//
//   - Add:       O(depth) (ancestor width walk), amortized O(1) append
//   - NodeByID:  O(1)
//   - Optimize:  O(n) time, O(maxDepth) auxiliary memory
//   - Subtree:   O(1) to obtain, O(width) to scan
//
// Errors:
//
//   - ErrUnknownNode  parent or looked-up id is not registered
//   - ErrDuplicateID  insert would reuse an existing id
//   - ErrNoRoot       tree is empty
//   - ErrOutOfBound   index outside the arena (internal-consistency failure)
//
// Trees are single-writer structures: CompactTree is safe for concurrent
// read-only traversal, but mutation of payloads through iterators requires
// external exclusive access. There is no internal locking — conversion
// consumes the MutableTree, so mutable and compact views never alias.
package arena
