package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexfield/costmodel"
	"github.com/katalvlaran/hexfield/field"
	"github.com/katalvlaran/hexfield/hexgrid"
	"github.com/katalvlaran/hexfield/scheduler"
)

func lineWorld(t *testing.T, n int) (*hexgrid.StaticWorld, hexgrid.NeighborTable) {
	t.Helper()
	w := hexgrid.NewStaticWorld()
	for i := 0; i < n; i++ {
		w.AddTile(i, 0, 1, 10)
	}
	nbr, err := hexgrid.BuildNeighborTable(w)
	require.NoError(t, err)
	return w, nbr
}

func runUntilSwap(t *testing.T, s *scheduler.Scheduler, g scheduler.Goal, dt float64, maxTicks int) bool {
	t.Helper()
	for i := 0; i < maxTicks; i++ {
		swapped := s.Update(dt)
		if swapped[g] {
			return true
		}
	}
	return false
}

func TestScheduler_CadenceDisabled_NeedsForceOrDirty(t *testing.T) {
	w, nbr := lineWorld(t, 5)
	cm, err := costmodel.New(w)
	require.NoError(t, err)

	s := scheduler.New(5, cm)
	require.NoError(t, s.SetGoalData(scheduler.Entrance, nbr, []hexgrid.TileId{4}, nil))

	// No cadence, no force, no dirty batch: nothing should build.
	for i := 0; i < 10; i++ {
		swapped := s.Update(0.1)
		assert.False(t, swapped[scheduler.Entrance])
	}
	f, err := s.Field(scheduler.Entrance)
	require.NoError(t, err)
	assert.Equal(t, field.Idle, f.State())
	assert.Equal(t, uint32(0), f.Stamp())
}

func TestScheduler_ForceFullRecompute_Builds(t *testing.T) {
	w, nbr := lineWorld(t, 5)
	cm, err := costmodel.New(w)
	require.NoError(t, err)

	s := scheduler.New(5, cm)
	require.NoError(t, s.SetGoalData(scheduler.Entrance, nbr, []hexgrid.TileId{4}, nil))
	require.NoError(t, s.ForceFullRecompute(scheduler.Entrance))

	swapped := runUntilSwap(t, s, scheduler.Entrance, 0.1, 50)
	assert.True(t, swapped)

	f, err := s.Field(scheduler.Entrance)
	require.NoError(t, err)
	assert.Equal(t, []float32{4, 3, 2, 1, 0}, f.ActiveDist())
	assert.Equal(t, uint32(1), f.Stamp())
}

func TestScheduler_Cadence_TriggersBuildAfterInterval(t *testing.T) {
	w, nbr := lineWorld(t, 3)
	cm, err := costmodel.New(w)
	require.NoError(t, err)

	s := scheduler.New(3, cm)
	require.NoError(t, s.SetGoalData(scheduler.Unload, nbr, []hexgrid.TileId{0}, nil))
	require.NoError(t, s.SetCadence(scheduler.Unload, 2)) // every 0.5s

	// Before the interval elapses, no build starts.
	swapped := s.Update(0.1)
	assert.False(t, swapped[scheduler.Unload])

	// Crossing the interval triggers a start-and-step.
	swapped = s.Update(0.5)
	f, err := s.Field(scheduler.Unload)
	require.NoError(t, err)
	if !swapped[scheduler.Unload] {
		require.True(t, runUntilSwap(t, s, scheduler.Unload, 0.5, 10))
	}
	assert.Equal(t, uint32(1), f.Stamp())
}

func TestScheduler_DirtyBatch_WarmStartsBoundGoal(t *testing.T) {
	w, nbr := lineWorld(t, 5)
	cm, err := costmodel.New(w)
	require.NoError(t, err)

	s := scheduler.New(5, cm)
	require.NoError(t, s.SetGoalData(scheduler.Entrance, nbr, []hexgrid.TileId{4}, nil))
	require.NoError(t, s.ForceFullRecompute(scheduler.Entrance))
	require.True(t, runUntilSwap(t, s, scheduler.Entrance, 0.1, 50))

	require.NoError(t, cm.SetHazard(hexgrid.TileId(1), 5))
	assert.Equal(t, 1, cm.DirtyQueueLen())

	require.True(t, runUntilSwap(t, s, scheduler.Entrance, 0.1, 50))
	assert.Equal(t, 0, cm.DirtyQueueLen())

	f, err := s.Field(scheduler.Entrance)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), f.Stamp())
}

func TestScheduler_SetGoalData_CancelsInFlightBuild(t *testing.T) {
	_, nbr := lineWorld(t, 200)
	w, _ := lineWorld(t, 200)
	cm, err := costmodel.New(w)
	require.NoError(t, err)

	s := scheduler.New(200, cm, scheduler.WithBudgetMS(0.001))
	require.NoError(t, s.SetGoalData(scheduler.Entrance, nbr, []hexgrid.TileId{199}, nil))
	require.NoError(t, s.ForceFullRecompute(scheduler.Entrance))
	s.Update(0.1) // starts building, tiny budget so it won't finish in one tick

	f, err := s.Field(scheduler.Entrance)
	require.NoError(t, err)
	require.True(t, f.IsBuilding())

	// Rebinding data mid-build cancels and must not panic or error.
	require.NoError(t, s.SetGoalData(scheduler.Entrance, nbr, []hexgrid.TileId{0}, nil))
	assert.False(t, f.IsBuilding())
}

// stubCostModel is a minimal scheduler.CostModel whose Requeue calls are
// recorded, so a test can assert exactly which ids a failed Start handed
// back for requeueing without needing a real costmodel's internals.
type stubCostModel struct {
	eff      []float32
	dirty    []hexgrid.TileId
	requeued []hexgrid.TileId
}

func (s *stubCostModel) Eff() []float32 { return s.eff }

func (s *stubCostModel) ConsumeDirty(n int) []hexgrid.TileId {
	if n > len(s.dirty) {
		n = len(s.dirty)
	}
	out := s.dirty[:n]
	s.dirty = s.dirty[n:]
	return out
}

func (s *stubCostModel) Requeue(ids []hexgrid.TileId) error {
	s.requeued = append(s.requeued, ids...)
	return nil
}

func (s *stubCostModel) DirtyQueueLen() int { return len(s.dirty) }

// TestScheduler_StartFailure_RequeuesWarmBatch covers a Start call that
// fails with ErrNoSeeds (every goal id out of range, and every warm-start
// dirty tile unreachable in a field that has never built) while a dirty
// batch was already handed to it. The scheduler must requeue that batch to
// the cost model rather than drop it on the floor, the same as it already
// does for a push failure mid-Step via cancelAndRequeue.
func TestScheduler_StartFailure_RequeuesWarmBatch(t *testing.T) {
	_, nbr := lineWorld(t, 5)
	cm := &stubCostModel{
		eff:   []float32{1, 1, 1, 1, 1},
		dirty: []hexgrid.TileId{2, 3},
	}

	s := scheduler.New(5, cm)
	require.NoError(t, s.SetGoalData(scheduler.Entrance, nbr, []hexgrid.TileId{99}, nil))

	s.Update(0.1)

	assert.ElementsMatch(t, []hexgrid.TileId{2, 3}, cm.requeued)
}

func TestScheduler_UnknownGoal_Errors(t *testing.T) {
	w, _ := lineWorld(t, 3)
	cm, err := costmodel.New(w)
	require.NoError(t, err)
	s := scheduler.New(3, cm)

	_, err = s.Field(scheduler.Goal(99))
	assert.ErrorIs(t, err, scheduler.ErrUnknownGoal)
	assert.ErrorIs(t, s.SetCadence(scheduler.Goal(99), 1), scheduler.ErrUnknownGoal)
	assert.ErrorIs(t, s.ForceFullRecompute(scheduler.Goal(99)), scheduler.ErrUnknownGoal)
}
