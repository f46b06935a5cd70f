package flowergoal

import "github.com/katalvlaran/hexfield/hexgrid"

const (
	// ThetaOn is the stock ratio at or above which a flower tile is
	// admitted into the goal set.
	ThetaOn float32 = 0.05
	// ThetaOff is the stock ratio at or below which an admitted flower
	// tile ceases to be a goal. ThetaOff < ThetaOn gives the hysteresis
	// band that keeps a tile from flickering in and out near the edge.
	ThetaOff float32 = 0.02

	// RefreshInterval is the minimum accumulated time between
	// membership re-evaluations.
	RefreshInterval float64 = 0.35

	// bias scales the seed cost; desirable tiles (high stock, high
	// quality) get a seed near zero, undesirable ones near bias.
	bias float32 = 1

	// seedChangeEpsilon is the minimum per-tile seed delta that counts
	// as a change worth rebinding the scheduler over.
	seedChangeEpsilon float32 = 1e-4

	// capacityEpsilon treats a capacity below this as effectively zero.
	capacityEpsilon float32 = 1e-6
)

// Maintainer tracks the FlowersNear goal set: which flower tiles are
// currently admitted and each admitted tile's seed cost, refreshed on its
// own slow clock independent of the scheduler's per-frame budget.
type Maintainer struct {
	world hexgrid.World
	n     int

	admitted []bool
	seedLUT  []float32

	ids       []hexgrid.TileId
	seedCosts []float32

	refreshAccum float64
}

// New allocates a Maintainer for w with no tiles admitted yet; the first
// Tick that crosses RefreshInterval performs the initial evaluation.
func New(w hexgrid.World) (*Maintainer, error) {
	if w == nil {
		return nil, ErrNilWorld
	}
	n := w.TileCount()
	return &Maintainer{
		world:    w,
		n:        n,
		admitted: make([]bool, n),
		seedLUT:  make([]float32, n),
	}, nil
}

// Ids returns the current admitted goal tile ids, ascending by id. Valid
// until the next Tick that reports changed.
func (m *Maintainer) Ids() []hexgrid.TileId { return m.ids }

// SeedCosts returns the per-goal seed costs parallel to Ids.
func (m *Maintainer) SeedCosts() []float32 { return m.seedCosts }

func clampUnit(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
