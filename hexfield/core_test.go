package hexfield_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexfield/hexfield"
	"github.com/katalvlaran/hexfield/hexgrid"
	"github.com/katalvlaran/hexfield/scheduler"
)

// newDiamondWorld builds a four-tile hex diamond: S has two routes to G, one
// through A (direction 0 from S) and one through B (direction 1 from S),
// each two hops, reconverging at G. Real axial coordinates (rather than a
// hand-rolled neighbor table) guarantee BuildNeighborTable's opposite-
// direction reciprocity for free.
func newDiamondWorld(t *testing.T) (w *hexgrid.StaticWorld, s, a, b, g hexgrid.TileId) {
	t.Helper()
	w = hexgrid.NewStaticWorld()
	s = w.AddTile(0, 0, 1, 100)
	a = w.AddTile(1, 0, 1, 100)
	b = w.AddTile(1, -1, 1, 0.1) // small flow capacity: cheap to congest
	g = w.AddTile(2, -1, 1, 100)
	return w, s, a, b, g
}

func TestCore_InitRunsSynchronousInitialBuild(t *testing.T) {
	w, s, _, _, g := newDiamondWorld(t)
	c, err := hexfield.Init(w, hexfield.Params{
		Entrance: hexfield.GoalSeed{Ids: []hexgrid.TileId{g}},
	})
	require.NoError(t, err)

	stamp, err := c.FieldStamp(scheduler.Entrance)
	require.NoError(t, err)
	assert.Greater(t, stamp, uint32(0))

	_, _, ok, err := c.QueryDirection(scheduler.Entrance, s)
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestCore_CongestionInvalidatesAndReroutes exercises the full
// cost-model -> dirty-queue -> scheduler -> field pipeline: congesting the
// tile on S's initially-preferred route makes the alternate route strictly
// cheaper, and after a forced rebuild the direction at S switches to it.
//
// The rebuild here is forced explicitly rather than left to the ordinary
// warm-start path: the congested tile's own cost is increasing, and warm-
// starting from a stale (now too-low) distance can only be refined downward
// by forward relaxation, never corrected upward (see field's warm-start
// equivalence test and the corresponding Open Question decision). A forced
// rebuild sidesteps that by not warm-starting at all.
func TestCore_CongestionInvalidatesAndReroutes(t *testing.T) {
	w, s, _, b, g := newDiamondWorld(t)
	c, err := hexfield.Init(w, hexfield.Params{
		Entrance: hexfield.GoalSeed{Ids: []hexgrid.TileId{g}},
		BudgetMS: 1e9,
	})
	require.NoError(t, err)

	next, err := c.FieldNext(scheduler.Entrance)
	require.NoError(t, err)
	require.Equal(t, hexgrid.Direction(1), next[s], "B's lower direction index from G wins the initial tie")

	require.NoError(t, c.AddCrowdSamples([]hexgrid.TileId{b}, []float32{1}))

	require.NoError(t, c.ForceFullRecompute(scheduler.Entrance))
	swapped, err := c.Update(0)
	require.NoError(t, err)
	assert.True(t, swapped[scheduler.Entrance])

	next, err = c.FieldNext(scheduler.Entrance)
	require.NoError(t, err)
	assert.Equal(t, hexgrid.Direction(0), next[s], "congesting B's route should reroute S through A")

	x, y, ok, err := c.QueryDirection(scheduler.Entrance, s)
	require.NoError(t, err)
	require.True(t, ok)
	wantX, wantY := hexgrid.BuildDirectionTable().Vector(0)
	assert.Equal(t, wantX, x)
	assert.Equal(t, wantY, y)
}

func TestCore_UnloadFallsBackToEntranceWithNoUsableField(t *testing.T) {
	w, s, _, _, g := newDiamondWorld(t)
	c, err := hexfield.Init(w, hexfield.Params{
		Entrance: hexfield.GoalSeed{Ids: []hexgrid.TileId{g}},
		// Unload is left with no goal ids: its field never builds.
	})
	require.NoError(t, err)

	unloadStamp, err := c.FieldStamp(scheduler.Unload)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), unloadStamp)

	ex, ey, eok, err := c.QueryDirection(scheduler.Entrance, s)
	require.NoError(t, err)
	ux, uy, uok, err := c.QueryDirection(scheduler.Unload, s)
	require.NoError(t, err)

	assert.Equal(t, eok, uok)
	assert.Equal(t, ex, ux)
	assert.Equal(t, ey, uy)
}

func TestCore_FlowersNearNoneWhenNothingAdmitted(t *testing.T) {
	w, s, _, _, g := newDiamondWorld(t)
	c, err := hexfield.Init(w, hexfield.Params{
		Entrance: hexfield.GoalSeed{Ids: []hexgrid.TileId{g}},
	})
	require.NoError(t, err)

	_, _, ok, err := c.QueryDirection(scheduler.FlowersNear, s)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCore_FlowersNearBindsOnceAdmitted(t *testing.T) {
	w, s, a, _, _ := newDiamondWorld(t)
	w.SetTerrain(a, hexgrid.TerrainFlowers)
	w.SetNectar(a, 50, 100, 1) // ratio 0.5, well above theta_on

	c, err := hexfield.Init(w, hexfield.Params{})
	require.NoError(t, err)

	stats, err := c.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FlowersAdmitted)

	stamp, err := c.FieldStamp(scheduler.FlowersNear)
	require.NoError(t, err)
	assert.Greater(t, stamp, uint32(0))

	_, _, ok, err := c.QueryDirection(scheduler.FlowersNear, s)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCore_ShutdownRejectsFurtherCalls(t *testing.T) {
	w, s, _, _, g := newDiamondWorld(t)
	c, err := hexfield.Init(w, hexfield.Params{
		Entrance: hexfield.GoalSeed{Ids: []hexgrid.TileId{g}},
	})
	require.NoError(t, err)

	c.Shutdown()
	c.Shutdown() // idempotent

	_, err = c.Update(0)
	assert.ErrorIs(t, err, hexfield.ErrShutdown)

	_, _, _, err = c.QueryDirection(scheduler.Entrance, s)
	assert.ErrorIs(t, err, hexfield.ErrShutdown)
}

func TestCore_InitRejectsNilWorld(t *testing.T) {
	_, err := hexfield.Init(nil, hexfield.Params{})
	assert.ErrorIs(t, err, hexfield.ErrNilWorld)
}
