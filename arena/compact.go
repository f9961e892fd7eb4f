// This file implements CompactTree: the frozen, depth-first-ordered form of
// an arena tree produced by Optimize.
package arena

import "fmt"

// CompactTree stores nodes in depth-first (pre-order) layout: a node always
// precedes its descendants, and the subtree of node n occupies exactly the
// contiguous index range [n.Index(), n.Index()+n.Width()).
//
// The type offers no insertion method — structural mutation after
// optimization is a compile-time impossibility, not a runtime check.
// Read-only traversal is safe to share across goroutines; mutating payloads
// through Payload() requires single-writer discipline.
type CompactTree[P any] struct {
	nodes    []Node[P]
	index    map[string]int
	maxDepth int
}

// Nodes returns all nodes in depth-first order. Ranging over the result is
// the canonical full-tree iteration: finite, restartable, allocation-free.
func (t *CompactTree[P]) Nodes() []Node[P] { return t.nodes }

// Subtree returns the nodes of n's subtree — n first, then its descendants
// in depth-first order. The result is a view of the arena, obtained in O(1):
// layout contiguity makes the subtree exactly one slice expression.
// n must belong to this tree.
func (t *CompactTree[P]) Subtree(n *Node[P]) []Node[P] {
	return t.nodes[n.index : n.index+n.width]
}

// NodeByID resolves an external id in O(1).
func (t *CompactTree[P]) NodeByID(id string) (*Node[P], error) {
	i, ok := t.index[id]
	if !ok {
		return nil, fmt.Errorf("arena: lookup %q: %w", id, ErrUnknownNode)
	}

	return &t.nodes[i], nil
}

// Node returns the node stored at arena index i, bounds-checked.
func (t *CompactTree[P]) Node(i int) (*Node[P], error) {
	if i < 0 || i >= len(t.nodes) {
		return nil, fmt.Errorf("arena: node %d of %d: %w", i, len(t.nodes), ErrOutOfBound)
	}

	return &t.nodes[i], nil
}

// FindNode returns the first node (in depth-first order) whose payload
// satisfies pred, or false when none does. O(n).
func (t *CompactTree[P]) FindNode(pred func(P) bool) (*Node[P], bool) {
	for i := range t.nodes {
		if pred(t.nodes[i].load) {
			return &t.nodes[i], true
		}
	}

	return nil, false
}

// Children resolves n's child index list to node references. After
// optimization child lists are depth-first ordered, so the references come
// back in layout order.
func (t *CompactTree[P]) Children(n *Node[P]) []*Node[P] {
	out := make([]*Node[P], len(n.children))
	for i, c := range n.children {
		out[i] = &t.nodes[c]
	}

	return out
}

// Root returns the root node (always index 0 in depth-first layout),
// or ErrNoRoot on an empty tree.
func (t *CompactTree[P]) Root() (*Node[P], error) {
	if len(t.nodes) == 0 {
		return nil, fmt.Errorf("arena: root: %w", ErrNoRoot)
	}

	return &t.nodes[0], nil
}

// Len returns the number of stored nodes.
func (t *CompactTree[P]) Len() int { return len(t.nodes) }

// MaxDepth returns the deepest node depth in the tree.
func (t *CompactTree[P]) MaxDepth() int { return t.maxDepth }
