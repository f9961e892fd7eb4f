// This file implements MutableTree: incremental, id-addressed construction
// of an arena tree with depth and subtree width maintained on every insert.
package arena

import "fmt"

// MutableTree is the construction form of an arena tree. Nodes live in one
// flat slice; SetRoot and Add are the only structural operations. Child
// lists hold insertion order, so sibling subtrees interleave in storage —
// Optimize converts the tree into the contiguous, depth-first CompactTree.
//
// MutableTree is not safe for concurrent use.
type MutableTree[P any] struct {
	nodes    []Node[P]
	index    map[string]int
	maxDepth int
}

// NewMutableTree returns an empty tree. Use WithCapacity when the final
// node count is known up front.
func NewMutableTree[P any](opts ...Option) *MutableTree[P] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &MutableTree[P]{
		nodes: make([]Node[P], 0, cfg.capacity),
		index: make(map[string]int, cfg.capacity),
	}
}

// SetRoot clears all storage and inserts a single root node at index 0
// (depth 0, width 1, no parent), invalidating every previously held
// reference into this tree. It returns the registered id.
func (t *MutableTree[P]) SetRoot(load P, id string) string {
	// Drop any prior content; ids and indices from before are void.
	t.nodes = t.nodes[:0]
	if t.index == nil {
		t.index = make(map[string]int, 1)
	} else {
		clear(t.index)
	}
	t.maxDepth = 0

	t.nodes = append(t.nodes, Node[P]{
		load:   load,
		id:     id,
		index:  0,
		parent: noParent,
		width:  1,
	})
	t.index[id] = 0

	return id
}

// Add inserts a node under the parent with id parentID and returns the
// registered id. It fails with ErrUnknownNode when the parent is not
// registered and with ErrDuplicateID when id already exists; both checks
// run before any mutation, so a failed Add leaves the tree unchanged.
func (t *MutableTree[P]) Add(load P, id, parentID string) (string, error) {
	// 1. Resolve the parent and reject duplicates before touching storage.
	parentIdx, ok := t.index[parentID]
	if !ok {
		return "", fmt.Errorf("arena: add %q under %q: %w", id, parentID, ErrUnknownNode)
	}
	if _, taken := t.index[id]; taken {
		return "", fmt.Errorf("arena: add %q: %w", id, ErrDuplicateID)
	}

	// 2. Append the node at the next free arena index.
	nodeIdx := len(t.nodes)
	depth := t.nodes[parentIdx].depth + 1
	t.nodes = append(t.nodes, Node[P]{
		load:   load,
		id:     id,
		index:  nodeIdx,
		parent: parentIdx,
		depth:  depth,
		width:  1,
	})

	// 3. Register with the parent's child list and the id index.
	t.nodes[parentIdx].children = append(t.nodes[parentIdx].children, nodeIdx)
	t.index[id] = nodeIdx

	// 4. Widen every ancestor up to the root. The walk is an explicit loop,
	//    not recursion, so deep chains cannot exhaust the call stack.
	for p := parentIdx; p != noParent; p = t.nodes[p].parent {
		t.nodes[p].width++
	}

	if depth > t.maxDepth {
		t.maxDepth = depth
	}

	return id, nil
}

// NodeByID resolves an external id in O(1).
func (t *MutableTree[P]) NodeByID(id string) (*Node[P], error) {
	i, ok := t.index[id]
	if !ok {
		return nil, fmt.Errorf("arena: lookup %q: %w", id, ErrUnknownNode)
	}

	return &t.nodes[i], nil
}

// Node returns the node stored at arena index i, bounds-checked.
func (t *MutableTree[P]) Node(i int) (*Node[P], error) {
	if i < 0 || i >= len(t.nodes) {
		return nil, fmt.Errorf("arena: node %d of %d: %w", i, len(t.nodes), ErrOutOfBound)
	}

	return &t.nodes[i], nil
}

// FindNode returns the first node (in arena order) whose payload satisfies
// pred, or false when none does. O(n).
func (t *MutableTree[P]) FindNode(pred func(P) bool) (*Node[P], bool) {
	for i := range t.nodes {
		if pred(t.nodes[i].load) {
			return &t.nodes[i], true
		}
	}

	return nil, false
}

// Children resolves n's child index list to node references,
// in insertion order.
func (t *MutableTree[P]) Children(n *Node[P]) []*Node[P] {
	out := make([]*Node[P], len(n.children))
	for i, c := range n.children {
		out[i] = &t.nodes[c]
	}

	return out
}

// Root returns the root node, or ErrNoRoot on an empty tree.
func (t *MutableTree[P]) Root() (*Node[P], error) {
	if len(t.nodes) == 0 {
		return nil, fmt.Errorf("arena: root: %w", ErrNoRoot)
	}

	return &t.nodes[0], nil
}

// Len returns the number of stored nodes.
func (t *MutableTree[P]) Len() int { return len(t.nodes) }

// MaxDepth returns the deepest depth seen since the last SetRoot.
func (t *MutableTree[P]) MaxDepth() int { return t.maxDepth }
