package forward

import "github.com/mtreyden/armature/arena"

// Accumulate folds combine along every root path of a depth-first node
// sequence. For the k-th node of nodes it emits, at dst[k], the value
//
//	combine(node, accumulated value of node's parent)
//
// where the parent of the sequence's first node is represented by identity.
// nodes must be a depth-first sequence: either a full tree (CompactTree's
// Nodes) or any subtree slice (Subtree) — for a subtree, accumulation runs
// relative to the subtree root's parent frame.
//
// dst is reused when its capacity suffices and reallocated otherwise; the
// filled slice is returned. Amortized cost is O(1) per node: each stack
// entry is pushed once and popped at most once over the whole scan.
func Accumulate[P, A any](nodes []arena.Node[P], identity A, combine func(n *arena.Node[P], parent A) A, dst []A) []A {
	if cap(dst) < len(nodes) {
		dst = make([]A, len(nodes))
	} else {
		dst = dst[:len(nodes)]
	}
	if len(nodes) == 0 {
		return dst
	}

	// Depths are anchored to the first node, so subtree slices accumulate
	// in their own frame instead of the whole tree's.
	base := nodes[0].Depth()

	stack := make([]A, 0, 16)
	for k := range nodes {
		n := &nodes[k]
		depth := n.Depth() - base
		if depth < 0 {
			// Only possible when the sequence does not start at its own
			// subtree root; treat such a node as a fresh root.
			depth = 0
		}

		// Entries above this node's level belong to subtrees that the
		// depth-first order has already left behind.
		if len(stack) > depth {
			stack = stack[:depth]
		}

		parent := identity
		if len(stack) > 0 {
			parent = stack[len(stack)-1]
		}

		acc := combine(n, parent)
		stack = append(stack, acc)
		dst[k] = acc
	}

	return dst
}
