package field

import (
	"math"

	"github.com/katalvlaran/hexfield/hexgrid"
)

// Unreachable is the distance sentinel for "no path exists", chosen well
// above EpsMax·N as spec §3 requires and per Design Note "FLT_MAX/4".
const Unreachable float32 = math.MaxFloat32 / 4

// State is the per-field build state, a closed Idle|Building sum type so
// invalid transitions are unrepresentable (Design Note).
type State int

const (
	// Idle means no build is in progress; ActiveDist/ActiveNext/Stamp are
	// stable until the next successful Start.
	Idle State = iota
	// Building means a build is in progress; Step advances it.
	Building
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Building:
		return "building"
	default:
		return "unknown"
	}
}

// Field holds one goal's double-buffered (dist, next) snapshot plus the
// ephemeral state of any in-progress build. It is not safe for concurrent
// use (spec §5: single-threaded and cooperative).
type Field struct {
	n int

	dist [2][]float32
	next [2][]hexgrid.Direction
	active int
	stamp  uint32

	state State
	h     buildHeap

	warmSeeds []hexgrid.TileId
}

// New allocates a Field for n tiles. Both buffers start at Unreachable /
// NoDirection; stamp is 0 ("never built") until the first successful swap.
func New(n int) *Field {
	f := &Field{n: n, h: newBuildHeap()}
	for b := 0; b < 2; b++ {
		f.dist[b] = make([]float32, n)
		f.next[b] = make([]hexgrid.Direction, n)
		for i := 0; i < n; i++ {
			f.dist[b][i] = Unreachable
			f.next[b][i] = hexgrid.NoDirection
		}
	}
	return f
}

// TileCount returns N.
func (f *Field) TileCount() int { return f.n }

// ActiveDist returns the published snapshot's distance array. Callers must
// not mutate it; it is valid until the next successful Step-to-finish.
func (f *Field) ActiveDist() []float32 { return f.dist[f.active] }

// ActiveNext returns the published snapshot's direction array, under the
// same validity rule as ActiveDist.
func (f *Field) ActiveNext() []hexgrid.Direction { return f.next[f.active] }

// Stamp returns the current monotonic version counter. 0 means "never
// built".
func (f *Field) Stamp() uint32 { return f.stamp }

// State returns Idle or Building.
func (f *Field) State() State { return f.state }

// IsBuilding reports whether a build is currently in progress.
func (f *Field) IsBuilding() bool { return f.state == Building }
