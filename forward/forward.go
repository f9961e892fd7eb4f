// This file specializes Accumulate to rigid-transform composition: the
// forward-kinematics pose pass and its id-filtered entry point.
package forward

import (
	"errors"
	"fmt"

	"github.com/mtreyden/armature/arena"
)

// ErrParamCount indicates that the joint-parameter slice length does not
// match the tree's node count (one scalar parameter per node).
var ErrParamCount = errors.New("forward: parameter count does not match node count")

// Poser is the payload capability forward kinematics needs: building a
// node's local transformation from the parameter vector, composing two
// transformations, and producing the identity transformation.
//
// LocalTransform receives the full parameter vector plus the node's arena
// index, so a payload consumes exactly the parameters addressed to it.
type Poser[T any] interface {
	// LocalTransform returns the node-to-parent transformation for the
	// joint state params[joint].
	LocalTransform(params []float64, joint int) T

	// Compose concatenates two transformations: the result maps through
	// local first, then parent.
	Compose(parent, local T) T

	// Identity returns the neutral transformation.
	Identity() T
}

// Poses computes every node's pose in the root frame: one Accumulate pass
// with combine = parent ∘ LocalTransform. Exactly one parameter per node is
// required; dst is reused when capacity allows.
func Poses[P Poser[T], T any](t *arena.CompactTree[P], params []float64, dst []T) ([]T, error) {
	if len(params) != t.Len() {
		return nil, fmt.Errorf("forward: %d parameters for %d nodes: %w", len(params), t.Len(), ErrParamCount)
	}

	nodes := t.Nodes()
	if len(nodes) == 0 {
		return dst[:0], nil
	}

	identity := (*nodes[0].Payload()).Identity()
	dst = Accumulate(nodes, identity, func(n *arena.Node[P], parent T) T {
		load := n.Payload()
		local := (*load).LocalTransform(params, n.Index())

		return (*load).Compose(parent, local)
	}, dst)

	return dst, nil
}

// Solve runs forward kinematics and returns the poses of the nodes named
// by ids, in depth-first order. With no ids it returns every node's pose.
// An unknown id fails with a wrapped arena.ErrUnknownNode before any
// computation happens.
func Solve[P Poser[T], T any](t *arena.CompactTree[P], params []float64, ids ...string) ([]T, error) {
	// Resolve the selection first so bad ids fail fast.
	var selected map[int]struct{}
	if len(ids) > 0 {
		selected = make(map[int]struct{}, len(ids))
		for _, id := range ids {
			n, err := t.NodeByID(id)
			if err != nil {
				return nil, fmt.Errorf("forward: solve: %w", err)
			}
			selected[n.Index()] = struct{}{}
		}
	}

	poses, err := Poses(t, params, nil)
	if err != nil {
		return nil, err
	}
	if selected == nil {
		return poses, nil
	}

	out := make([]T, 0, len(selected))
	for i := range poses {
		if _, ok := selected[i]; ok {
			out = append(out, poses[i])
		}
	}

	return out, nil
}
