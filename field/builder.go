package field

import (
	"time"

	"github.com/katalvlaran/hexfield/hexgrid"
)

// Start begins a new incremental build on f, per spec §4.3:
//
//  1. the build buffer (the non-active one) is reset to Unreachable/NoDirection.
//  2. each goal id is seeded at seedCosts[i] (or 0 if seedCosts is nil or
//     short), with next = NoDirection, and pushed onto the heap.
//  3. each warmDirty tile whose active distance is finite is copied from
//     the active snapshot into the build buffer and pushed, propagating
//     invalidation from the previous snapshot.
//  4. if the heap ends up empty, the start fails with ErrNoSeeds and the
//     field remains Idle.
//
// Out-of-range goal ids are skipped rather than erroring, so that a goal
// set containing only invalid ids falls through to ErrNoSeeds uniformly. A
// goals list containing the same tile id twice is an InvalidArgs condition
// per spec §7 and is rejected synchronously with ErrDuplicateGoal before
// any buffer is touched.
//
// On a push failure partway through seeding, Start returns warmDirty
// unchanged alongside the error: per spec §4.3, a failed Start still owes
// the caller its warm-start seeds back so they can be requeued to the
// cost model rather than silently dropped (the build never reaches
// Building, so Cancel is not the recovery path here).
func (f *Field) Start(goals []hexgrid.TileId, seedCosts []float32, warmDirty []hexgrid.TileId) ([]hexgrid.TileId, error) {
	if f.state == Building {
		return nil, ErrAlreadyBuilding
	}
	if _, dup := hexgrid.DuplicateTileId(goals); dup {
		return warmDirty, ErrDuplicateGoal
	}

	build := 1 - f.active
	dist := f.dist[build]
	next := f.next[build]
	for i := 0; i < f.n; i++ {
		dist[i] = Unreachable
		next[i] = hexgrid.NoDirection
	}
	f.h.reset()

	for i, g := range goals {
		if int(g) < 0 || int(g) >= f.n {
			continue
		}
		seed := float32(0)
		if i < len(seedCosts) {
			seed = seedCosts[i]
		}
		dist[g] = seed
		next[g] = hexgrid.NoDirection
		if err := f.h.push(seed, int32(g)); err != nil {
			return warmDirty, err
		}
	}

	activeDist := f.dist[f.active]
	activeNext := f.next[f.active]
	for _, tid := range warmDirty {
		if int(tid) < 0 || int(tid) >= f.n {
			continue
		}
		if activeDist[tid] >= Unreachable {
			continue
		}
		dist[tid] = activeDist[tid]
		next[tid] = activeNext[tid]
		if err := f.h.push(dist[tid], int32(tid)); err != nil {
			return warmDirty, err
		}
	}

	if f.h.len() == 0 {
		return warmDirty, ErrNoSeeds
	}

	f.warmSeeds = append(f.warmSeeds[:0], warmDirty...)
	f.state = Building
	return nil, nil
}

// Step pops and relaxes nodes for up to budgetMs of wall-clock time, or at
// least one node if budgetMs <= 0 (guaranteeing forward progress). It
// returns the number of successful relaxations, the elapsed wall-time, and
// whether the heap emptied out (finished = true means Step already swapped
// the buffers and incremented the stamp — see finish).
//
// Relaxation entering tile v via outgoing direction d from u:
//
//	alt = dist[u] + max(eff[v], 0)
//	if alt < dist[v]: dist[v] = alt; next[v] = opp(d); push(alt, v)
//
// A push failure aborts the step: Step returns the error, the caller
// (scheduler) must Cancel the build and requeue WarmSeeds() to the cost
// model.
func (f *Field) Step(budgetMs float64, neighbors hexgrid.NeighborTable, eff []float32) (relaxed int, elapsedMs float64, finished bool, err error) {
	if f.state != Building {
		return 0, 0, false, ErrNotBuilding
	}

	build := 1 - f.active
	dist := f.dist[build]
	next := f.next[build]

	start := time.Now()
	processed := 0
	for {
		item, ok := f.h.popMin()
		if !ok {
			f.finish()
			return relaxed, elapsedMs, true, nil
		}

		if item.dist > dist[item.tile] {
			// Stale lazy-decrease-key entry; skip without counting as processed.
			elapsedMs = time.Since(start).Seconds() * 1000
			if processed > 0 && elapsedMs >= budgetMs {
				return relaxed, elapsedMs, false, nil
			}
			continue
		}

		u := item.tile
		for d := hexgrid.Direction(0); d < 6; d++ {
			v := neighbors.At(hexgrid.TileId(u), d)
			if v == hexgrid.NoTile {
				continue
			}
			ev := eff[v]
			if ev < 0 {
				ev = 0
			}
			alt := dist[u] + ev
			if alt < dist[v] {
				dist[v] = alt
				next[v] = hexgrid.Opposite(d)
				if err := f.h.push(alt, int32(v)); err != nil {
					return relaxed, time.Since(start).Seconds() * 1000, false, err
				}
				relaxed++
			}
		}

		processed++
		elapsedMs = time.Since(start).Seconds() * 1000
		if processed > 0 && elapsedMs >= budgetMs {
			break
		}
	}

	if f.h.len() == 0 {
		f.finish()
		return relaxed, elapsedMs, true, nil
	}
	return relaxed, elapsedMs, false, nil
}

// finish swaps active/build buffer indices, increments stamp (wrapping
// past zero, since 0 means "never built"), and clears in-progress state.
// The heap storage (its backing array) is retained for reuse.
func (f *Field) finish() {
	f.active = 1 - f.active
	f.stamp++
	if f.stamp == 0 {
		f.stamp = 1
	}
	f.state = Idle
	f.warmSeeds = f.warmSeeds[:0]
}

// Cancel drops the in-progress build buffer content, clears the heap, and
// returns the warm-start dirty ids that were seeding this build so the
// caller can requeue them to the cost model. A no-op on a non-building
// field beyond returning nil.
func (f *Field) Cancel() []hexgrid.TileId {
	if f.state != Building {
		return nil
	}
	seeds := f.warmSeeds
	f.warmSeeds = nil
	f.h.reset()
	f.state = Idle
	return seeds
}

// WarmSeeds returns the dirty tile ids currently seeding this build
// (valid only while State() == Building).
func (f *Field) WarmSeeds() []hexgrid.TileId { return f.warmSeeds }
