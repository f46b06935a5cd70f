package hexfield

import (
	"github.com/katalvlaran/hexfield/costmodel"
	"github.com/katalvlaran/hexfield/flowergoal"
	"github.com/katalvlaran/hexfield/hexgrid"
	"github.com/katalvlaran/hexfield/scheduler"
)

// initBuildBudgetMS is the wall-time budget handed to the scheduler for the
// one synchronous full build Init runs per initial goal set. It is large
// enough that field.Step's own "stop once the heap empties" condition is
// always what ends the build, never the budget — the intent spec.md's
// "Init runs one synchronous full build" calls for, reusing the ordinary
// incremental machinery instead of a separate code path.
const initBuildBudgetMS = 1e15

// GoalSeed pairs a set of goal tile ids with an optional per-tile seed cost
// (parallel arrays; a nil or short SeedCosts means 0 for the missing
// entries), the same shape field.Start takes directly.
type GoalSeed struct {
	Ids       []hexgrid.TileId
	SeedCosts []float32
}

// Params configures Init: the fixed goals' initial data, per-goal rebuild
// cadence, the shared per-update time budget, and any cost-model tuning.
type Params struct {
	Entrance GoalSeed
	Unload   GoalSeed

	// BudgetMS is the steady-state per-Update wall-time budget shared
	// across all goals. <= 0 disables tracking (see scheduler.Config).
	BudgetMS float64

	EntranceCadenceHz    float64
	UnloadCadenceHz      float64
	FlowersNearCadenceHz float64

	CostModelOptions []costmodel.Option
	SchedulerOptions []scheduler.Option
}

// Core is the owned root object a caller drives once per frame: it holds
// every subsystem as a field rather than reaching for package-level state,
// per Design Note "Module-level global state in source" → root object.
type Core struct {
	world      hexgrid.World
	neighbors  hexgrid.NeighborTable
	directions hexgrid.DirectionVectors
	n          int

	cm      *costmodel.CostModel
	sched   *scheduler.Scheduler
	flowers *flowergoal.Maintainer

	shutdown bool
}

// Init builds the neighbor/direction tables, the cost model, the scheduler
// and its three fields, and the flower-goal maintainer for world, binds the
// Entrance and Unload goal data from params, runs one synchronous initial
// flower-goal evaluation and binds FlowersNear if any tile is admitted, then
// drives one synchronous full build (step with an effectively unlimited
// budget until every bound goal's field has finished) before returning —
// so the first Update call already has usable fields, per spec.md §6.
func Init(world hexgrid.World, params Params) (*Core, error) {
	if world == nil {
		return nil, ErrNilWorld
	}

	neighbors, err := hexgrid.BuildNeighborTable(world)
	if err != nil {
		return nil, err
	}
	cm, err := costmodel.New(world, params.CostModelOptions...)
	if err != nil {
		return nil, err
	}
	flowers, err := flowergoal.New(world)
	if err != nil {
		return nil, err
	}

	n := world.TileCount()
	schedOpts := append([]scheduler.Option{scheduler.WithBudgetMS(initBuildBudgetMS)}, params.SchedulerOptions...)
	sched := scheduler.New(n, cm, schedOpts...)

	c := &Core{
		world:      world,
		neighbors:  neighbors,
		directions: hexgrid.BuildDirectionTable(),
		n:          n,
		cm:         cm,
		sched:      sched,
		flowers:    flowers,
	}

	if err := sched.SetCadence(scheduler.Entrance, params.EntranceCadenceHz); err != nil {
		return nil, err
	}
	if err := sched.SetCadence(scheduler.Unload, params.UnloadCadenceHz); err != nil {
		return nil, err
	}
	if err := sched.SetCadence(scheduler.FlowersNear, params.FlowersNearCadenceHz); err != nil {
		return nil, err
	}

	if err := sched.SetGoalData(scheduler.Entrance, neighbors, params.Entrance.Ids, params.Entrance.SeedCosts); err != nil {
		return nil, err
	}
	if err := sched.ForceFullRecompute(scheduler.Entrance); err != nil {
		return nil, err
	}
	if err := sched.SetGoalData(scheduler.Unload, neighbors, params.Unload.Ids, params.Unload.SeedCosts); err != nil {
		return nil, err
	}
	if err := sched.ForceFullRecompute(scheduler.Unload); err != nil {
		return nil, err
	}

	// Force the flower refresh clock once so the initial membership and
	// seed costs are evaluated before the first synchronous build, rather
	// than leaving FlowersNear unbound until the caller's first real Tick
	// crosses RefreshInterval on its own.
	flowers.Tick(flowergoal.RefreshInterval)
	if err := c.bindFlowers(true); err != nil {
		return nil, err
	}

	// One synchronous Update drains every bound goal's field to completion:
	// initBuildBudgetMS is large enough that field.Step's internal loop
	// only ever stops because its heap emptied.
	sched.Update(0)

	sched.SetBudgetMS(params.BudgetMS)
	return c, nil
}

// bindFlowers rebinds the scheduler's FlowersNear goal data from the
// maintainer's current admitted set and, if force is true, schedules a full
// rebuild. A currently-empty admitted set is not bound: the scheduler keeps
// whatever FlowersNear data it already had (none, if no tile was ever
// admitted), and FieldStamp keeps reporting that field's stamp.
// QueryDirection checks the admitted set itself and reports no direction
// while it is empty (see queries.go).
func (c *Core) bindFlowers(force bool) error {
	ids := c.flowers.Ids()
	if len(ids) == 0 {
		return nil
	}
	if err := c.sched.SetGoalData(scheduler.FlowersNear, c.neighbors, ids, c.flowers.SeedCosts()); err != nil {
		return err
	}
	if force {
		return c.sched.ForceFullRecompute(scheduler.FlowersNear)
	}
	return nil
}

// Update advances the flower-goal refresh clock and the scheduler by
// dtSec, rebinding and forcing a full FlowersNear rebuild whenever the
// admitted flower set or any admitted tile's seed changes. It returns the
// set of goals whose field finished a build this call.
func (c *Core) Update(dtSec float64) (map[scheduler.Goal]bool, error) {
	if c.shutdown {
		return nil, ErrShutdown
	}
	if c.flowers.Tick(dtSec) {
		if err := c.bindFlowers(true); err != nil {
			return nil, err
		}
	}
	return c.sched.Update(dtSec), nil
}

// Shutdown marks c as no longer usable. It is idempotent: calling it more
// than once is a no-op. There is no off-heap or OS resource to release —
// this exists so the lifecycle spec.md §6 describes has a concrete,
// checked Go counterpart instead of relying on callers to simply stop
// calling Update.
func (c *Core) Shutdown() {
	c.shutdown = true
}
