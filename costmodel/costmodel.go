package costmodel

import (
	"math"

	"github.com/katalvlaran/hexfield/hexgrid"
)

// New allocates a CostModel for w, applying opts over DefaultOptions. It
// seeds base cost (impassable tiles pinned to EpsMax), flow capacity, and
// computes the initial effective cost for every tile. Complexity: O(N).
func New(w hexgrid.World, opts ...Option) (*CostModel, error) {
	if w == nil {
		return nil, ErrNilWorld
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := w.TileCount()
	cm := &CostModel{
		n:              n,
		alpha:          cfg.Alpha,
		gamma:          cfg.Gamma,
		emaLambda:      cfg.EMALambda,
		dirtyThreshold: cfg.DirtyThreshold,
		impassable:     make([]bool, n),
		base:           make([]float32, n),
		flowCapacity:   make([]float32, n),
		crowd:          make([]float32, n),
		hazard:         make([]float32, n),
		eff:            make([]float32, n),
		dirty:          newDirtyQueue(n),
	}

	for i := 0; i < n; i++ {
		id := hexgrid.TileId(i)
		if !w.Passable(id) {
			cm.impassable[i] = true
			cm.base[i] = EpsMax
		} else {
			cm.base[i] = w.BaseCost(id)
		}
		cm.flowCapacity[i] = w.FlowCapacity(id)
		cm.eff[i] = cm.computeEff(i)
	}

	return cm, nil
}

// TileCount returns N.
func (cm *CostModel) TileCount() int { return cm.n }

// IsImpassable reports whether id was impassable at construction time (its
// base cost is pinned to EpsMax regardless of any later coefficient,
// hazard, or crowd update). Out-of-range ids report false.
func (cm *CostModel) IsImpassable(id hexgrid.TileId) bool {
	if int(id) < 0 || int(id) >= cm.n {
		return false
	}
	return cm.impassable[id]
}

// Eff returns the active effective-cost array. Callers must not mutate it.
func (cm *CostModel) Eff() []float32 { return cm.eff }

// computeEff derives eff[i] from base/congestion/hazard without touching
// the dirty queue.
func (cm *CostModel) computeEff(i int) float32 {
	var congestion float32
	if cm.flowCapacity[i] > 0 {
		rho := cm.crowd[i] / cm.flowCapacity[i]
		if rho > 1 {
			d := rho - 1
			congestion = d * d
		}
	}
	v := cm.base[i] + cm.alpha*congestion + cm.gamma*cm.hazard[i]
	return clampEff(v)
}

func clampEff(v float32) float32 {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return EpsMax
	}
	if v < EpsMin {
		return EpsMin
	}
	if v > EpsMax {
		return EpsMax
	}
	return v
}

// recompute recomputes eff[i], compares against the previous value using
// the relative dirty-threshold rule (§4.2), and enqueues i if the drift
// qualifies or force is true. Returns the allocation error, if any,
// leaving eff[i] updated regardless (recompute itself never fails; only
// the dirty-queue push can).
func (cm *CostModel) recompute(i int, force bool) error {
	old := cm.eff[i]
	next := cm.computeEff(i)
	cm.eff[i] = next

	if force {
		return cm.dirty.push(hexgrid.TileId(i))
	}
	ref := float32(math.Max(math.Abs(float64(old)), 1e-4))
	if absf32(next-old) >= ref*cm.dirtyThreshold {
		return cm.dirty.push(hexgrid.TileId(i))
	}
	return nil
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// SetCoefficients updates α and γ, recomputes every eff[i], and enqueues
// every tile as dirty — coefficient changes are forced recomputes per §4.2,
// so every tile is reported regardless of the threshold. Negative inputs
// are clamped to zero.
func (cm *CostModel) SetCoefficients(alpha, gamma float32) error {
	if alpha < 0 {
		alpha = 0
	}
	if gamma < 0 {
		gamma = 0
	}
	cm.alpha, cm.gamma = alpha, gamma
	for i := 0; i < cm.n; i++ {
		if err := cm.recompute(i, true); err != nil {
			return err
		}
	}
	return nil
}

// SetEMALambda clamps and stores the crowd EMA smoothing factor. No
// immediate recompute.
func (cm *CostModel) SetEMALambda(lambda float32) {
	cm.emaLambda = clampUnit(lambda)
}

// SetDirtyThreshold stores ε_r used by future dirty decisions.
func (cm *CostModel) SetDirtyThreshold(epsilonR float32) {
	if epsilonR < 0 {
		epsilonR = 0
	}
	cm.dirtyThreshold = epsilonR
}

// SetHazard updates hazard[id], recomputes eff[id], and unconditionally
// enqueues id as dirty (hazard writes are forced recomputes per §4.2).
// Out-of-range ids return ErrTileOutOfRange; negative p is clamped to zero.
func (cm *CostModel) SetHazard(id hexgrid.TileId, p float32) error {
	if int(id) < 0 || int(id) >= cm.n {
		return ErrTileOutOfRange
	}
	if p < 0 {
		p = 0
	}
	cm.hazard[id] = p
	return cm.recompute(int(id), true)
}

// AddCrowdSamples applies the EMA update c' = c + λ(s-c) for each (id, s)
// pair and recomputes eff for each affected tile, enqueuing it only if the
// drift crosses the dirty threshold (not forced). Out-of-range or negative
// samples are silently ignored, per §7 ("never raises on sample ingestion
// with out-of-range ids").
func (cm *CostModel) AddCrowdSamples(ids []hexgrid.TileId, samples []float32) error {
	limit := len(ids)
	if len(samples) < limit {
		limit = len(samples)
	}
	for k := 0; k < limit; k++ {
		id := ids[k]
		s := samples[k]
		if int(id) < 0 || int(id) >= cm.n || s < 0 {
			continue
		}
		cm.crowd[id] += cm.emaLambda * (s - cm.crowd[id])
		if err := cm.recompute(int(id), false); err != nil {
			return err
		}
	}
	return nil
}

// MarkDirty unconditionally enqueues id, regardless of eff drift.
// Out-of-range ids return ErrTileOutOfRange.
func (cm *CostModel) MarkDirty(id hexgrid.TileId) error {
	if int(id) < 0 || int(id) >= cm.n {
		return ErrTileOutOfRange
	}
	return cm.dirty.push(id)
}

// ConsumeDirty drains up to n ids from the dirty queue in FIFO order,
// clearing their occupancy flags.
func (cm *CostModel) ConsumeDirty(n int) []hexgrid.TileId {
	return cm.dirty.drain(n)
}

// Requeue re-enqueues ids (e.g. when a build aborts), appending them at the
// end of the queue.
func (cm *CostModel) Requeue(ids []hexgrid.TileId) error {
	return cm.dirty.pushAll(ids)
}

// DirtyQueueLen reports how many tiles are currently queued.
func (cm *CostModel) DirtyQueueLen() int { return cm.dirty.len() }
