package scheduler

import "github.com/katalvlaran/hexfield/hexgrid"

// Goal is one of the fixed navigation goals. It is a closed enum: the goal
// set is parameterised over these three tags, never grown at runtime.
type Goal uint8

const (
	Entrance Goal = iota
	Unload
	FlowersNear

	// goalCount is the number of goals in the fixed enum; iteration order
	// over 0..goalCount-1 is part of the scheduler's contract.
	goalCount
)

func (g Goal) String() string {
	switch g {
	case Entrance:
		return "Entrance"
	case Unload:
		return "Unload"
	case FlowersNear:
		return "FlowersNear"
	default:
		return "unknown"
	}
}

// Stats is the build snapshot for one goal, introspection only; it never
// drives control flow. It is reset when a build starts and accumulated as
// that build steps, so it holds the last finished build's totals only until
// the next build starts; while a build is in progress it holds that build's
// partial totals.
type Stats struct {
	LastBuildMS        float64
	LastRelaxed        int
	LastDirtyProcessed int
}

// goalData is the neighbor/eff reference a goal's builds run against, bound
// via SetGoalData. A goal with no data bound is skipped by update.
type goalData struct {
	bound     bool
	neighbors hexgrid.NeighborTable
	goalIDs   []hexgrid.TileId
	seedCosts []float32
	n         int
}

// goalState is the scheduler's per-goal bookkeeping (spec's "Scheduler
// state (per goal)").
type goalState struct {
	data goalData

	cadenceHz     float64
	sinceStart    float64
	pendingForce  bool
	consumedBatch bool

	stats Stats
}
