package forward_test

import (
	"math"
	"testing"

	"github.com/mtreyden/armature/arena"
	"github.com/mtreyden/armature/forward"
	"github.com/mtreyden/armature/rigid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPlanarChain constructs the four-segment planar test body: every link
// offsets (10, 0, 0) before its own Z-axis joint, with one branch:
//
//	link1 ─┬─ link2
//	       └─ link3 ── link4
func buildPlanarChain(t *testing.T) *arena.CompactTree[rigid.Segment] {
	t.Helper()

	link := rigid.TranslateX(10)

	tree := arena.NewMutableTree[rigid.Segment]()
	tree.SetRoot(rigid.NewSegment(link, rigid.RotationZ), "link1")
	_, err := tree.Add(rigid.NewSegment(link, rigid.RotationZ), "link2", "link1")
	require.NoError(t, err)
	_, err = tree.Add(rigid.NewSegment(link, rigid.RotationZ), "link3", "link1")
	require.NoError(t, err)
	_, err = tree.Add(rigid.NewSegment(link, rigid.RotationZ), "link4", "link3")
	require.NoError(t, err)

	return arena.Optimize(tree)
}

// assertPosition compares a pose's translation part against a target point.
func assertPosition(t *testing.T, want [3]float64, pose rigid.Transform) {
	t.Helper()

	got := pose.Position()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], 1e-9)
	}
}

// TestSolve_PlanarChain reproduces the reference forward-kinematics
// scenario: joint angles [0, 0, π/2, 0] put link2 and link3 at (20,0,0) and
// link4 at (20,10,0).
func TestSolve_PlanarChain(t *testing.T) {
	chain := buildPlanarChain(t)

	poses, err := forward.Solve(chain, []float64{0, 0, math.Pi / 2, 0}, "link2", "link3", "link4")
	require.NoError(t, err)
	require.Len(t, poses, 3)

	assertPosition(t, [3]float64{20, 0, 0}, poses[0])
	assertPosition(t, [3]float64{20, 0, 0}, poses[1])
	assertPosition(t, [3]float64{20, 10, 0}, poses[2])
}

// TestSolve_AllNodes checks the unfiltered entry point returns one pose per
// node in depth-first order.
func TestSolve_AllNodes(t *testing.T) {
	chain := buildPlanarChain(t)

	poses, err := forward.Solve(chain, []float64{0, 0, 0, 0})
	require.NoError(t, err)
	require.Len(t, poses, 4)

	// Zero angles: pure translations stack along X.
	assertPosition(t, [3]float64{10, 0, 0}, poses[0])
	assertPosition(t, [3]float64{20, 0, 0}, poses[1])
	assertPosition(t, [3]float64{20, 0, 0}, poses[2])
	assertPosition(t, [3]float64{30, 0, 0}, poses[3])
}

// TestSolve_UnknownID fails fast before any computation.
func TestSolve_UnknownID(t *testing.T) {
	chain := buildPlanarChain(t)

	_, err := forward.Solve(chain, []float64{0, 0, 0, 0}, "link9")
	assert.ErrorIs(t, err, arena.ErrUnknownNode)
}

// TestPoses_ParamCount rejects parameter vectors that do not carry exactly
// one value per node.
func TestPoses_ParamCount(t *testing.T) {
	chain := buildPlanarChain(t)

	_, err := forward.Poses(chain, []float64{0, 0}, nil)
	assert.ErrorIs(t, err, forward.ErrParamCount)

	_, err = forward.Solve(chain, []float64{0, 0, 0, 0, 0})
	assert.ErrorIs(t, err, forward.ErrParamCount)
}

// TestPoses_RotationPropagates checks that a root rotation carries through
// the whole chain.
func TestPoses_RotationPropagates(t *testing.T) {
	chain := buildPlanarChain(t)

	poses, err := forward.Poses(chain, []float64{math.Pi / 2, 0, 0, 0}, nil)
	require.NoError(t, err)

	// The root pivot stays put; everything below swings around it.
	assertPosition(t, [3]float64{10, 0, 0}, poses[0])
	assertPosition(t, [3]float64{10, 10, 0}, poses[1])
	assertPosition(t, [3]float64{10, 10, 0}, poses[2])
	assertPosition(t, [3]float64{10, 20, 0}, poses[3])
}
