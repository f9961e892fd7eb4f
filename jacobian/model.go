// This file implements Model: flat Jacobian and effector-configuration
// assembly over a compact tree, a joint selection, and an effector selection.
package jacobian

import (
	"fmt"

	"github.com/mtreyden/armature/arena"
	"github.com/mtreyden/armature/forward"
)

// effectorView locates one selected effector's slice of the configuration
// buffer.
type effectorView struct {
	offset int
	size   int
}

// Model assembles a flat Jacobian matrix and an effector-configuration
// vector for a selection of joints (columns) and effectors (rows).
//
// The Jacobian buffer is column-major: column j of a rows×cols matrix is the
// contiguous chunk [j*rows, (j+1)*rows). Column-major is chosen because the
// fill loop produces one whole column per selected joint, and the damped
// least-squares backend consumes columns as contiguous slices.
//
// All buffers are owned by the model and reused across Setup and Compute
// calls; Setup resizes rather than reallocates when capacity suffices.
// A Model is not safe for concurrent use.
type Model[P Body[P, T], T any] struct {
	matrix        []float64 // column-major rows×cols Jacobian
	configuration []float64 // flat effector outputs, length rows
	rows, cols    int

	// Per-node bookkeeping, each indexed by arena index (length tree.Len()).
	offsets   []int  // row offset of the node's effector block
	sizes     []int  // the node's effector output size
	joints    []bool // node's joint selected (one Jacobian column)
	effectors []bool // node's effector selected (EffectorSize rows)

	views map[string]effectorView // selected effector id → configuration slice
	poses []T                     // reusable pose buffer for the shared pass
}

// NewModel returns an empty model; call Setup before Compute.
func NewModel[P Body[P, T], T any]() *Model[P, T] {
	return &Model[P, T]{views: make(map[string]effectorView)}
}

// Setup prepares the model for a tree and a joint/effector selection,
// allocating (or resizing) every buffer Compute will fill.
//
// jointIDs selects the Jacobian columns; an empty selection means every
// node's joint is active. effectorIDs selects the rows; each selected
// effector contributes EffectorSize rows at a fixed offset, assigned by a
// prefix sum over depth-first order. Any id not present in the tree fails
// with a wrapped arena.ErrUnknownNode — a silently ignored typo would
// produce a wrong-shaped Jacobian.
func (m *Model[P, T]) Setup(t *arena.CompactTree[P], jointIDs, effectorIDs []string) error {
	// 1. Resolve both selections; unknown ids fail before any state changes.
	jointSet, err := resolve(t, jointIDs)
	if err != nil {
		return fmt.Errorf("jacobian: setup joints: %w", err)
	}
	effectorSet, err := resolve(t, effectorIDs)
	if err != nil {
		return fmt.Errorf("jacobian: setup effectors: %w", err)
	}

	// 2. Per-node flags, sizes, and row offsets (prefix sum across
	//    depth-first order, advanced only at selected effectors).
	n := t.Len()
	m.joints = resizeBools(m.joints, n)
	m.effectors = resizeBools(m.effectors, n)
	m.sizes = resizeInts(m.sizes, n)
	m.offsets = resizeInts(m.offsets, n)
	clear(m.views)

	nodes := t.Nodes()
	offset := 0
	m.cols = 0
	for i := range nodes {
		node := &nodes[i]
		m.sizes[i] = (*node.Payload()).EffectorSize()

		// Empty joint selection activates every joint.
		_, joint := jointSet[i]
		m.joints[i] = joint || len(jointSet) == 0
		if m.joints[i] {
			m.cols++
		}

		_, effector := effectorSet[i]
		m.effectors[i] = effector
		m.offsets[i] = offset
		if effector {
			m.views[node.ID()] = effectorView{offset: offset, size: m.sizes[i]}
			offset += m.sizes[i]
		}
	}
	m.rows = offset

	// 3. Zero-initialized assembly buffers sized rows×cols and rows.
	m.matrix = resizeFloats(m.matrix, m.rows*m.cols)
	m.configuration = resizeFloats(m.configuration, m.rows)

	return nil
}

// Compute runs the shared pose pass and fills the buffers scope asks for.
// Call Setup first. params carries one scalar per tree node.
//
// The pose pass costs O(n). The Jacobian fill costs O(Σ subtree sizes of
// selected joints): each column only scans its own joint's contiguous
// subtree, never the whole tree, which is the entire point of the
// depth-first layout.
func (m *Model[P, T]) Compute(t *arena.CompactTree[P], params []float64, scope Scope) error {
	// 1. Every node's pose in the root frame — exactly once per call.
	poses, err := forward.Poses(t, params, m.poses)
	if err != nil {
		return fmt.Errorf("jacobian: compute: %w", err)
	}
	m.poses = poses

	nodes := t.Nodes()

	// 2. Effector outputs at their precomputed row offsets.
	if scope == EffectorsOnly || scope == All {
		for i := range nodes {
			if !m.effectors[i] {
				continue
			}
			load := nodes[i].Payload()
			(*load).WriteEffector(poses[i], m.configuration[m.offsets[i]:m.offsets[i]+m.sizes[i]])
		}
	}

	// 3. One column per selected joint, filled only over that joint's
	//    subtree. The subtree slice starts at the joint's own index, so the
	//    k-th subtree node sits at arena index j+k — poses, offsets and
	//    selection flags are all addressed through that shared index.
	if scope == JacobianOnly || scope == All {
		col := 0
		for j := range nodes {
			if !m.joints[j] {
				continue
			}
			column := m.matrix[col*m.rows : (col+1)*m.rows]
			col++

			jointNode := &nodes[j]
			jointLoad := jointNode.Payload()
			sub := t.Subtree(jointNode)
			for k := range sub {
				idx := j + k
				if !m.effectors[idx] {
					continue
				}
				load := sub[k].Payload()
				(*load).WritePartialDerivative(
					poses[idx], *jointLoad, poses[j],
					column[m.offsets[idx]:m.offsets[idx]+m.sizes[idx]],
				)
			}
		}
	}

	return nil
}

// Jacobian returns the column-major rows×cols buffer filled by the last
// Compute with a Jacobian scope. The slice is owned by the model.
func (m *Model[P, T]) Jacobian() []float64 { return m.matrix }

// Effectors returns the flat effector-configuration buffer filled by the
// last Compute with an effector scope. The slice is owned by the model.
func (m *Model[P, T]) Effectors() []float64 { return m.configuration }

// EffectorView returns the configuration slice of one selected effector and
// true, or (nil, false) when id is not a selected effector.
func (m *Model[P, T]) EffectorView(id string) ([]float64, bool) {
	v, ok := m.views[id]
	if !ok {
		return nil, false
	}

	return m.configuration[v.offset : v.offset+v.size], true
}

// Rows returns the Jacobian row count: the summed effector sizes of the
// selected effectors.
func (m *Model[P, T]) Rows() int { return m.rows }

// Cols returns the Jacobian column count: the number of selected joints.
func (m *Model[P, T]) Cols() int { return m.cols }

// Shape returns (rows, cols).
func (m *Model[P, T]) Shape() (int, int) { return m.rows, m.cols }

// Active returns the per-node joint-selection flags, indexed by arena index.
// The slice is owned by the model.
func (m *Model[P, T]) Active() []bool { return m.joints }

// resolve maps a selection of external ids to a set of arena indices.
func resolve[P any](t *arena.CompactTree[P], ids []string) (map[int]struct{}, error) {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		n, err := t.NodeByID(id)
		if err != nil {
			return nil, err
		}
		set[n.Index()] = struct{}{}
	}

	return set, nil
}

// resizeFloats returns a zeroed slice of length n, reusing buf's storage
// when it is large enough.
func resizeFloats(buf []float64, n int) []float64 {
	if cap(buf) < n {
		return make([]float64, n)
	}
	buf = buf[:n]
	clear(buf)

	return buf
}

func resizeInts(buf []int, n int) []int {
	if cap(buf) < n {
		return make([]int, n)
	}
	buf = buf[:n]
	clear(buf)

	return buf
}

func resizeBools(buf []bool, n int) []bool {
	if cap(buf) < n {
		return make([]bool, n)
	}
	buf = buf[:n]
	clear(buf)

	return buf
}
