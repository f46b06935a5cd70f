package hexfield

import (
	"github.com/katalvlaran/hexfield/hexgrid"
	"github.com/katalvlaran/hexfield/scheduler"
)

// CoreStats is a point-in-time introspection snapshot across every goal,
// the supplemented aggregate spec.md's per-goal Stats didn't ask for on
// its own but a caller driving all three goals from one place wants.
type CoreStats struct {
	Entrance        scheduler.Stats
	Unload          scheduler.Stats
	FlowersNear     scheduler.Stats
	DirtyQueueLen   int
	FlowersAdmitted int
}

// Stats returns the current per-goal build stats, dirty-queue depth, and
// flower-goal admitted-tile count.
func (c *Core) Stats() (CoreStats, error) {
	if c.shutdown {
		return CoreStats{}, ErrShutdown
	}
	entrance, err := c.sched.Stats(scheduler.Entrance)
	if err != nil {
		return CoreStats{}, err
	}
	unload, err := c.sched.Stats(scheduler.Unload)
	if err != nil {
		return CoreStats{}, err
	}
	flowersNear, err := c.sched.Stats(scheduler.FlowersNear)
	if err != nil {
		return CoreStats{}, err
	}
	return CoreStats{
		Entrance:        entrance,
		Unload:          unload,
		FlowersNear:     flowersNear,
		DirtyQueueLen:   c.sched.DirtyQueueLen(),
		FlowersAdmitted: len(c.flowers.Ids()),
	}, nil
}

// hasUsableField reports whether g's field has ever finished a build. A
// field that has never swapped (Stamp() == 0) carries only its
// all-Unreachable/NoDirection initial contents, which is indistinguishable
// from "no data bound" at the query layer.
func (c *Core) hasUsableField(g scheduler.Goal) bool {
	f, err := c.sched.Field(g)
	if err != nil {
		return false
	}
	return f.Stamp() > 0
}

// QueryDirection resolves the direction a bee at tile should move to make
// progress toward g, as a unit world-space vector. ok is false when tile is
// the goal itself, unreachable, out of range, or g has no usable data —
// per spec.md §6's fallback rules: Unload with no usable field falls back
// to Entrance's field; FlowersNear with no tile currently admitted (or no
// usable field) reports false directly, with no fallback.
func (c *Core) QueryDirection(g scheduler.Goal, tile hexgrid.TileId) (x, y float32, ok bool, err error) {
	if c.shutdown {
		return 0, 0, false, ErrShutdown
	}

	effGoal := g
	switch g {
	case scheduler.FlowersNear:
		if len(c.flowers.Ids()) == 0 || !c.hasUsableField(scheduler.FlowersNear) {
			return 0, 0, false, nil
		}
	case scheduler.Unload:
		if !c.hasUsableField(scheduler.Unload) {
			effGoal = scheduler.Entrance
		}
	}

	f, err := c.sched.Field(effGoal)
	if err != nil {
		return 0, 0, false, err
	}
	if f.Stamp() == 0 {
		return 0, 0, false, nil
	}
	if int(tile) < 0 || int(tile) >= f.TileCount() {
		return 0, 0, false, nil
	}

	next := f.ActiveNext()[tile]
	if next == hexgrid.NoDirection {
		return 0, 0, false, nil
	}
	vx, vy := c.directions.Vector(next)
	return vx, vy, true, nil
}

// FieldDist returns g's active distance snapshot. Callers must not mutate
// the returned slice; it is valid until g's next finished build.
func (c *Core) FieldDist(g scheduler.Goal) ([]float32, error) {
	if c.shutdown {
		return nil, ErrShutdown
	}
	f, err := c.sched.Field(g)
	if err != nil {
		return nil, err
	}
	return f.ActiveDist(), nil
}

// FieldNext returns g's active direction snapshot, under the same validity
// rule as FieldDist.
func (c *Core) FieldNext(g scheduler.Goal) ([]hexgrid.Direction, error) {
	if c.shutdown {
		return nil, ErrShutdown
	}
	f, err := c.sched.Field(g)
	if err != nil {
		return nil, err
	}
	return f.ActiveNext(), nil
}

// FieldStamp returns g's monotonic build version counter (0 means never
// built).
func (c *Core) FieldStamp(g scheduler.Goal) (uint32, error) {
	if c.shutdown {
		return 0, ErrShutdown
	}
	f, err := c.sched.Field(g)
	if err != nil {
		return 0, err
	}
	return f.Stamp(), nil
}

// FieldTileCount returns N, the tile count every field shares.
func (c *Core) FieldTileCount() int { return c.n }

// SetBudgetMS updates the steady-state per-Update wall-time budget.
func (c *Core) SetBudgetMS(ms float64) error {
	if c.shutdown {
		return ErrShutdown
	}
	c.sched.SetBudgetMS(ms)
	return nil
}

// SetCadence sets g's minimum rebuild frequency in Hz.
func (c *Core) SetCadence(g scheduler.Goal, hz float64) error {
	if c.shutdown {
		return ErrShutdown
	}
	return c.sched.SetCadence(g, hz)
}

// ForceFullRecompute schedules g for a full rebuild on the next Update.
func (c *Core) ForceFullRecompute(g scheduler.Goal) error {
	if c.shutdown {
		return ErrShutdown
	}
	return c.sched.ForceFullRecompute(g)
}

// SetEntranceGoalData rebinds the Entrance goal's tile set and seed costs.
func (c *Core) SetEntranceGoalData(seed GoalSeed) error {
	if c.shutdown {
		return ErrShutdown
	}
	return c.sched.SetGoalData(scheduler.Entrance, c.neighbors, seed.Ids, seed.SeedCosts)
}

// SetUnloadGoalData rebinds the Unload goal's tile set and seed costs.
func (c *Core) SetUnloadGoalData(seed GoalSeed) error {
	if c.shutdown {
		return ErrShutdown
	}
	return c.sched.SetGoalData(scheduler.Unload, c.neighbors, seed.Ids, seed.SeedCosts)
}

// SetCoefficients updates the cost model's congestion/hazard weights.
func (c *Core) SetCoefficients(alpha, gamma float32) error {
	if c.shutdown {
		return ErrShutdown
	}
	return c.cm.SetCoefficients(alpha, gamma)
}

// SetEMALambda updates the cost model's crowd EMA smoothing factor.
func (c *Core) SetEMALambda(lambda float32) error {
	if c.shutdown {
		return ErrShutdown
	}
	c.cm.SetEMALambda(lambda)
	return nil
}

// SetDirtyThreshold updates the cost model's relative dirty-drift threshold.
func (c *Core) SetDirtyThreshold(epsilonR float32) error {
	if c.shutdown {
		return ErrShutdown
	}
	c.cm.SetDirtyThreshold(epsilonR)
	return nil
}

// SetHazard updates a tile's hazard probability.
func (c *Core) SetHazard(id hexgrid.TileId, p float32) error {
	if c.shutdown {
		return ErrShutdown
	}
	return c.cm.SetHazard(id, p)
}

// AddCrowdSamples feeds crowd-density samples into the cost model's EMA.
func (c *Core) AddCrowdSamples(ids []hexgrid.TileId, samples []float32) error {
	if c.shutdown {
		return ErrShutdown
	}
	return c.cm.AddCrowdSamples(ids, samples)
}

// MarkDirty forces id into the dirty queue regardless of cost drift.
func (c *Core) MarkDirty(id hexgrid.TileId) error {
	if c.shutdown {
		return ErrShutdown
	}
	return c.cm.MarkDirty(id)
}
