// This file declares the Node type, sentinel errors, and construction
// options shared by MutableTree and CompactTree.
package arena

import "errors"

// Sentinel errors for arena tree operations.
var (
	// ErrUnknownNode indicates an operation referenced an id that is not
	// registered in the tree.
	ErrUnknownNode = errors.New("arena: unknown node id")

	// ErrDuplicateID indicates an insert would reuse an already registered id.
	// The failing insert leaves the tree unchanged.
	ErrDuplicateID = errors.New("arena: duplicate node id")

	// ErrNoRoot indicates the tree has no root node set.
	ErrNoRoot = errors.New("arena: no root set")

	// ErrOutOfBound indicates an arena index outside the stored range.
	// It is unreachable through the public Add/lookup surface; seeing it
	// means an internal invariant broke, not that a caller misused the API.
	ErrOutOfBound = errors.New("arena: index out of bound")
)

// noParent marks the root's parent slot.
const noParent = -1

// Node is one arena slot: an opaque payload plus the structural fields the
// tree maintains. Structural fields are unexported; only the tree mutates
// them. Payload returns a pointer, so payload-level mutation through
// iteration stays possible after the structure is frozen.
type Node[P any] struct {
	load     P
	id       string
	index    int   // position in the arena; changes only under Optimize
	parent   int   // arena index of the parent, noParent for the root
	depth    int   // 0 at the root, parent depth+1 otherwise
	width    int   // nodes in this subtree, including self (≥1)
	children []int // arena indices of direct children, insertion order
}

// ID returns the stable, caller-chosen external id.
func (n *Node[P]) ID() string { return n.id }

// Index returns the node's current arena index.
// It changes when the tree layout is optimized.
func (n *Node[P]) Index() int { return n.index }

// Depth returns the node's distance from the root (root = 0).
func (n *Node[P]) Depth() int { return n.depth }

// Width returns the subtree width: the number of nodes in the subtree
// rooted at this node, including the node itself.
func (n *Node[P]) Width() int { return n.width }

// Parent returns the parent's arena index and true, or (0, false) for the root.
func (n *Node[P]) Parent() (int, bool) {
	if n.parent == noParent {
		return 0, false
	}

	return n.parent, true
}

// Children returns a copy of the direct child indices. In a MutableTree the
// order is insertion order; in a CompactTree it is depth-first order.
func (n *Node[P]) Children() []int {
	out := make([]int, len(n.children))
	copy(out, n.children)

	return out
}

// Payload returns a pointer to the node's payload for in-place mutation.
func (n *Node[P]) Payload() *P { return &n.load }

// Option configures tree construction.
type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity pre-sizes the arena for n nodes, avoiding reallocation
// during construction of trees whose size is known up front.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// rebuildIndex repopulates an id→index map from scratch. Required after
// every operation that changes arena indices; O(n).
func rebuildIndex[P any](nodes []Node[P], index map[string]int) {
	clear(index)
	for i := range nodes {
		index[nodes[i].id] = i
	}
}
