package jacobian_test

import (
	"math"
	"testing"

	"github.com/mtreyden/armature/arena"
	"github.com/mtreyden/armature/jacobian"
	"github.com/mtreyden/armature/rigid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildEffectorChain constructs the reference five-segment body: every link
// offsets (10, 0, 0) before its Z-axis joint; link2 and link4 carry an
// effector tip a further (10, 0, 0) out. link5 trails behind link4 and has
// a tip but is never selected.
//
//	link1 ─┬─ link2*
//	       └─ link3 ── link4* ── link5
func buildEffectorChain(t *testing.T) *arena.CompactTree[rigid.Segment] {
	t.Helper()

	link := rigid.TranslateX(10)
	plain := rigid.NewSegment(link, rigid.RotationZ)
	tipped := rigid.NewSegment(link, rigid.RotationZ, rigid.WithEffector(rigid.TranslateX(10)))

	tree := arena.NewMutableTree[rigid.Segment]()
	tree.SetRoot(plain, "link1")
	_, err := tree.Add(tipped, "link2", "link1")
	require.NoError(t, err)
	_, err = tree.Add(plain, "link3", "link1")
	require.NoError(t, err)
	_, err = tree.Add(tipped, "link4", "link3")
	require.NoError(t, err)
	_, err = tree.Add(tipped, "link5", "link4")
	require.NoError(t, err)

	return arena.Optimize(tree)
}

var (
	chainJoints    = []string{"link1", "link2", "link3", "link4"}
	chainEffectors = []string{"link2", "link4"}
	chainParams    = []float64{0, 0, math.Pi / 2, math.Pi / 2, 0}
)

// TestModel_Shape checks row/column bookkeeping after Setup.
func TestModel_Shape(t *testing.T) {
	chain := buildEffectorChain(t)
	model := jacobian.NewModel[rigid.Segment, rigid.Transform]()

	require.NoError(t, model.Setup(chain, chainJoints, chainEffectors))

	rows, cols := model.Shape()
	assert.Equal(t, 6, rows, "two position effectors, three rows each")
	assert.Equal(t, 4, cols, "four selected joints")
	assert.Equal(t, []bool{true, true, true, true, false}, model.Active())
}

// TestModel_Jacobian reproduces the analytic reference: each column is
// cross(axis_world, tip_world − pivot_world) for the effectors inside that
// joint's subtree, and zero elsewhere.
func TestModel_Jacobian(t *testing.T) {
	chain := buildEffectorChain(t)
	model := jacobian.NewModel[rigid.Segment, rigid.Transform]()

	require.NoError(t, model.Setup(chain, chainJoints, chainEffectors))
	require.NoError(t, model.Compute(chain, chainParams, jacobian.JacobianOnly))

	// Column-major 6×4: link2 owns rows 0-2, link4 rows 3-5.
	want := []float64{
		0, 20, 0, -10, 0, 0, // ∂/∂link1: both effectors move
		0, 10, 0, 0, 0, 0, // ∂/∂link2: only its own tip
		0, 0, 0, -10, -10, 0, // ∂/∂link3: only link4's tip
		0, 0, 0, 0, -10, 0, // ∂/∂link4: only its own tip
	}

	got := model.Jacobian()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-6, "flat index %d", i)
	}
}

// TestModel_Effectors checks the flat configuration vector and the per-id
// views after a full compute.
func TestModel_Effectors(t *testing.T) {
	chain := buildEffectorChain(t)
	model := jacobian.NewModel[rigid.Segment, rigid.Transform]()

	require.NoError(t, model.Setup(chain, chainJoints, chainEffectors))
	require.NoError(t, model.Compute(chain, chainParams, jacobian.All))

	want := []float64{30, 0, 0, 10, 10, 0}
	got := model.Effectors()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-6, "row %d", i)
	}

	view, ok := model.EffectorView("link2")
	require.True(t, ok)
	assert.InDelta(t, 30.0, view[0], 1e-6)

	view, ok = model.EffectorView("link4")
	require.True(t, ok)
	assert.InDelta(t, 10.0, view[1], 1e-6)

	_, ok = model.EffectorView("link3")
	assert.False(t, ok, "link3 is not a selected effector")
	_, ok = model.EffectorView("link5")
	assert.False(t, ok, "link5 has a tip but is not selected")
}

// TestModel_EffectorsOnlyLeavesJacobianZero verifies scope separation: an
// effector-only compute never touches the matrix buffer.
func TestModel_EffectorsOnlyLeavesJacobianZero(t *testing.T) {
	chain := buildEffectorChain(t)
	model := jacobian.NewModel[rigid.Segment, rigid.Transform]()

	require.NoError(t, model.Setup(chain, chainJoints, chainEffectors))
	require.NoError(t, model.Compute(chain, chainParams, jacobian.EffectorsOnly))

	for i, v := range model.Jacobian() {
		assert.Zero(t, v, "flat index %d", i)
	}
	assert.InDelta(t, 30.0, model.Effectors()[0], 1e-6)
}

// TestModel_EmptyJointSelectionActivatesAll checks the all-joints default.
func TestModel_EmptyJointSelectionActivatesAll(t *testing.T) {
	chain := buildEffectorChain(t)
	model := jacobian.NewModel[rigid.Segment, rigid.Transform]()

	require.NoError(t, model.Setup(chain, nil, chainEffectors))

	assert.Equal(t, 5, model.Cols(), "empty selection means every joint")
	assert.Equal(t, []bool{true, true, true, true, true}, model.Active())
}

// TestModel_UnknownSelectionID fails Setup instead of silently ignoring a
// typo that would change the Jacobian's shape.
func TestModel_UnknownSelectionID(t *testing.T) {
	chain := buildEffectorChain(t)
	model := jacobian.NewModel[rigid.Segment, rigid.Transform]()

	err := model.Setup(chain, []string{"link1", "link99"}, chainEffectors)
	assert.ErrorIs(t, err, arena.ErrUnknownNode)

	err = model.Setup(chain, chainJoints, []string{"link99"})
	assert.ErrorIs(t, err, arena.ErrUnknownNode)
}

// TestModel_ParamCount rejects a parameter vector not matching the node
// count.
func TestModel_ParamCount(t *testing.T) {
	chain := buildEffectorChain(t)
	model := jacobian.NewModel[rigid.Segment, rigid.Transform]()

	require.NoError(t, model.Setup(chain, chainJoints, chainEffectors))

	err := model.Compute(chain, []float64{0, 0}, jacobian.All)
	assert.ErrorIs(t, err, jacobian.ErrParamCount)
}

// TestModel_SetupReuse re-runs Setup with a different selection and checks
// the buffers take the new shape with stale values cleared.
func TestModel_SetupReuse(t *testing.T) {
	chain := buildEffectorChain(t)
	model := jacobian.NewModel[rigid.Segment, rigid.Transform]()

	require.NoError(t, model.Setup(chain, chainJoints, chainEffectors))
	require.NoError(t, model.Compute(chain, chainParams, jacobian.All))

	// Narrow the selection: one joint, one effector.
	require.NoError(t, model.Setup(chain, []string{"link3"}, []string{"link4"}))

	rows, cols := model.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 1, cols)
	for i, v := range model.Jacobian() {
		assert.Zero(t, v, "stale matrix value at %d", i)
	}

	require.NoError(t, model.Compute(chain, chainParams, jacobian.All))
	want := []float64{-10, -10, 0}
	for i := range want {
		assert.InDelta(t, want[i], model.Jacobian()[i], 1e-6)
	}
}
