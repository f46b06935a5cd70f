package scheduler

import (
	"github.com/katalvlaran/hexfield/field"
	"github.com/katalvlaran/hexfield/hexgrid"
)

// CostModel is the subset of *costmodel.CostModel the scheduler needs:
// the effective-cost array it steps builds against, and the dirty-queue
// drain/requeue pair it uses to distribute warm-start seeds. Scoped down
// to an interface so tests can supply a stub without a real cost model.
type CostModel interface {
	Eff() []float32
	ConsumeDirty(n int) []hexgrid.TileId
	Requeue(ids []hexgrid.TileId) error
	DirtyQueueLen() int
}

// Scheduler advances every goal's field build cooperatively, one Update
// call per frame, per spec §4.4. It is single-threaded: Update must not be
// called concurrently with itself or with any goal accessor.
type Scheduler struct {
	cfg Config
	cm  CostModel
	n   int

	fields [goalCount]*field.Field
	goals  [goalCount]goalState

	batch      []hexgrid.TileId
	batchValid bool
}

// New allocates a Scheduler with a Field of size n for every goal in the
// fixed enum. cm is the cost model the scheduler drains dirty tiles from
// and reads effective costs from.
func New(n int, cm CostModel, opts ...Option) *Scheduler {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	s := &Scheduler{cfg: cfg, cm: cm, n: n}
	for g := range s.fields {
		s.fields[g] = field.New(n)
		s.goals[g].cadenceHz = 0
	}
	return s
}

// SetBudgetMS updates the per-update wall-time budget, clamped to >= 0.
func (s *Scheduler) SetBudgetMS(ms float64) {
	if ms < 0 {
		ms = 0
	}
	s.cfg.BudgetMS = ms
}

// SetCadence sets goal's minimum rebuild frequency in Hz. hz <= 0 disables
// cadence (the goal then only builds on dirty batches or forced recompute).
func (s *Scheduler) SetCadence(g Goal, hz float64) error {
	if int(g) < 0 || int(g) >= int(goalCount) {
		return ErrUnknownGoal
	}
	s.goals[g].cadenceHz = hz
	return nil
}

// SetGoalData rebinds g's neighbor table, goal-tile ids, and optional
// per-goal seed costs. Any in-flight build for g is cancelled and its warm
// seeds requeued to the cost model; g's consumed-batch flag is cleared. A
// goalIDs list containing the same tile id twice is rejected synchronously
// with ErrDuplicateGoal, per spec §7's InvalidArgs taxonomy; g's existing
// data and in-flight build, if any, are left untouched.
func (s *Scheduler) SetGoalData(g Goal, neighbors hexgrid.NeighborTable, goalIDs []hexgrid.TileId, seedCosts []float32) error {
	if int(g) < 0 || int(g) >= int(goalCount) {
		return ErrUnknownGoal
	}
	if _, dup := hexgrid.DuplicateTileId(goalIDs); dup {
		return ErrDuplicateGoal
	}
	f := s.fields[g]
	if f.IsBuilding() {
		seeds := f.Cancel()
		if len(seeds) > 0 {
			if err := s.cm.Requeue(seeds); err != nil {
				return err
			}
		}
	}
	s.goals[g].data = goalData{
		bound:     true,
		neighbors: neighbors,
		goalIDs:   goalIDs,
		seedCosts: seedCosts,
		n:         s.n,
	}
	s.goals[g].consumedBatch = false
	return nil
}

// ForceFullRecompute sets g's pending-force flag; it is consumed on the
// next Update by starting a build without a dirty warm-start. g must
// already have goal data bound via SetGoalData, since there is nothing to
// rebuild otherwise.
func (s *Scheduler) ForceFullRecompute(g Goal) error {
	if int(g) < 0 || int(g) >= int(goalCount) {
		return ErrUnknownGoal
	}
	if !s.goals[g].data.bound {
		return ErrNoGoalData
	}
	s.goals[g].pendingForce = true
	return nil
}

// Field returns g's underlying field for read-only queries (dist/next/
// stamp); see the hexfield package for the query-level fallback rules.
func (s *Scheduler) Field(g Goal) (*field.Field, error) {
	if int(g) < 0 || int(g) >= int(goalCount) {
		return nil, ErrUnknownGoal
	}
	return s.fields[g], nil
}

// Stats returns g's introspection snapshot: the current build's running
// totals while one is in progress, otherwise the last finished build's.
func (s *Scheduler) Stats(g Goal) (Stats, error) {
	if int(g) < 0 || int(g) >= int(goalCount) {
		return Stats{}, ErrUnknownGoal
	}
	return s.goals[g].stats, nil
}

// DirtyQueueLen delegates to the cost model.
func (s *Scheduler) DirtyQueueLen() int { return s.cm.DirtyQueueLen() }

// Update advances every goal within the configured frame budget, per
// §4.4's per-update algorithm, and returns the set of goals that swapped
// (finished a build) this call. It never panics: step and start failures
// are logged and the goal is left to retry on a future Update.
func (s *Scheduler) Update(dtSec float64) map[Goal]bool {
	swapped := make(map[Goal]bool, int(goalCount))

	for g := Goal(0); g < goalCount; g++ {
		if !s.fields[g].IsBuilding() {
			s.goals[g].sinceStart += dtSec
		}
	}

	tracked := s.cfg.BudgetMS > 0
	remaining := s.cfg.BudgetMS

	if !s.batchValid && s.cm.DirtyQueueLen() > 0 {
		if batchCap := s.largestBoundTileCount(); batchCap > 0 {
			s.batch = s.cm.ConsumeDirty(batchCap)
			if len(s.batch) > 0 {
				s.batchValid = true
			}
		}
	}

	for g := Goal(0); g < goalCount; g++ {
		gs := &s.goals[g]
		f := s.fields[g]

		goalBudget := s.cfg.BudgetMS
		if tracked {
			goalBudget = remaining
			if goalBudget < 0 {
				goalBudget = 0
			}
		}

		if f.IsBuilding() {
			relaxed, elapsed, finished, err := f.Step(goalBudget, gs.data.neighbors, s.cm.Eff())
			remaining -= elapsed
			if err != nil {
				s.cancelAndRequeue(g, err)
				continue
			}
			gs.stats.LastRelaxed += relaxed
			gs.stats.LastBuildMS += elapsed
			if finished {
				swapped[g] = true
			}
			continue
		}

		if !gs.data.bound {
			continue
		}

		var warm []hexgrid.TileId
		switch {
		case gs.pendingForce:
			gs.pendingForce = false
			if s.batchValid {
				// A full rebuild already incorporates every tile's current
				// eff; the pending batch's warm-start hint is moot for
				// this goal, so treat it as consumed for release purposes.
				gs.consumedBatch = true
			}
		case s.batchValid && !gs.consumedBatch:
			warm = s.batch
			gs.consumedBatch = true
		case gs.cadenceHz > 0 && gs.sinceStart >= 1.0/gs.cadenceHz:
			gs.sinceStart = 0
		default:
			continue
		}

		if seeds, err := f.Start(gs.data.goalIDs, gs.data.seedCosts, warm); err != nil {
			if len(seeds) > 0 {
				if rqErr := s.cm.Requeue(seeds); rqErr != nil {
					s.cfg.Logger.Printf("scheduler: goal %s requeue after start failure failed: %v", g, rqErr)
				}
			}
			s.cfg.Logger.Printf("scheduler: goal %s start failed: %v", g, err)
			continue
		}

		gs.stats = Stats{LastDirtyProcessed: len(warm)}

		relaxed, elapsed, finished, err := f.Step(goalBudget, gs.data.neighbors, s.cm.Eff())
		remaining -= elapsed
		if err != nil {
			s.cancelAndRequeue(g, err)
			continue
		}
		gs.stats.LastRelaxed = relaxed
		gs.stats.LastBuildMS = elapsed
		if finished {
			swapped[g] = true
		}
	}

	if s.batchValid && s.allConsumedBatch() {
		s.batch = nil
		s.batchValid = false
		for g := range s.goals {
			s.goals[g].consumedBatch = false
		}
	}

	return swapped
}

// cancelAndRequeue cancels g's in-flight build after a push failure,
// requeues its warm seeds, and logs per §7's "scheduler logs and
// continues" propagation rule.
func (s *Scheduler) cancelAndRequeue(g Goal, cause error) {
	seeds := s.fields[g].Cancel()
	if len(seeds) > 0 {
		if err := s.cm.Requeue(seeds); err != nil {
			s.cfg.Logger.Printf("scheduler: goal %s requeue after cancel failed: %v", g, err)
		}
	}
	s.cfg.Logger.Printf("scheduler: goal %s step failed, build cancelled: %v", g, cause)
}

// allConsumedBatch reports whether every data-ready goal has consumed the
// currently resident batch.
func (s *Scheduler) allConsumedBatch() bool {
	for g := range s.goals {
		if s.goals[g].data.bound && !s.goals[g].consumedBatch {
			return false
		}
	}
	return true
}

// largestBoundTileCount returns the largest tile count among bound goals'
// data, per §4.4's "batch size capped by the largest goal's tile count".
// Falls back to the scheduler's own field width if no goal is bound yet.
func (s *Scheduler) largestBoundTileCount() int {
	largest := 0
	for g := range s.goals {
		if s.goals[g].data.bound && s.goals[g].data.n > largest {
			largest = s.goals[g].data.n
		}
	}
	if largest == 0 {
		return s.n
	}
	return largest
}
