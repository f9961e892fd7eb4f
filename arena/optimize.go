// This file implements the one-way layout optimization that turns a
// MutableTree into a CompactTree.
package arena

// Optimize converts t into its depth-first-ordered compact form and
// consumes t: the mutable tree is left empty, so no mutable view of the
// optimized storage can remain alive. Optimizing an empty tree yields an
// empty CompactTree.
//
// The conversion never fails for well-formed input; a permutation that does
// not cover the arena or a cycle that does not close can only mean the
// tree's own invariants broke, and panics as an implementation bug.
//
// Runs in O(n) time with O(maxDepth) auxiliary memory.
func Optimize[P any](t *MutableTree[P]) *CompactTree[P] {
	// Detach storage: t stays usable afterwards, but only as a fresh
	// empty tree.
	nodes := t.nodes
	index := t.index
	maxDepth := t.maxDepth
	t.nodes = nil
	t.index = nil
	t.maxDepth = 0

	if index == nil {
		index = make(map[string]int, len(nodes))
	}

	// 1. Capture the depth-first visitation order with an explicit stack of
	//    remaining-children cursors. Recursion would bind auxiliary memory
	//    to the call stack; the cursor stack binds it to maxDepth instead.
	//    order[k] is the old arena index of the k-th node visited, i.e. the
	//    node that must land at new index k.
	order := captureDepthFirst(nodes, maxDepth)
	if len(order) != len(nodes) {
		panic("arena: optimize: depth-first order does not cover the arena")
	}

	// 2. Rewrite every stored index (each node's own index, parent link and
	//    children entries) from old to new before anything moves. Children
	//    were appended in insertion order and are visited in that order, so
	//    the rewritten lists come out depth-first ordered by construction.
	newOf := make([]int, len(nodes))
	for k, old := range order {
		newOf[old] = k
	}
	for i := range nodes {
		n := &nodes[i]
		n.index = newOf[n.index]
		if n.parent != noParent {
			n.parent = newOf[n.parent]
		}
		for j, c := range n.children {
			n.children[j] = newOf[c]
		}
	}

	// 3. Apply the permutation in place: cycle-following swaps, O(n) time,
	//    O(1) extra space — no second node array is ever allocated.
	applyOrder(nodes, order)
	for i := range nodes {
		if nodes[i].index != i {
			panic("arena: optimize: permutation cycle failed to close")
		}
	}

	// 4. Rebuild the id index; every arena index changed.
	rebuildIndex(nodes, index)

	return &CompactTree[P]{nodes: nodes, index: index, maxDepth: maxDepth}
}

// captureDepthFirst records pre-order visitation: each stack frame holds a
// node's child list and a cursor for the next child to descend into.
func captureDepthFirst[P any](nodes []Node[P], maxDepth int) []int {
	order := make([]int, 0, len(nodes))
	if len(nodes) == 0 {
		return order
	}

	type frame struct {
		children []int
		next     int
	}
	stack := make([]frame, 0, maxDepth+1)

	order = append(order, 0)
	stack = append(stack, frame{children: nodes[0].children})

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.children) {
			// Subtree exhausted; resume the parent's remaining children.
			stack = stack[:len(stack)-1]
			continue
		}
		child := top.children[top.next]
		top.next++
		order = append(order, child)
		stack = append(stack, frame{children: nodes[child].children})
	}

	return order
}
