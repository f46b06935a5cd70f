package hexgrid

// TileId is a dense integer identifying a tile in [0, N). N is fixed for
// the lifetime of a World; tile identity is stable across the session.
type TileId int32

// NoTile is the sentinel a NeighborTable entry holds when there is no edge
// in that direction.
const NoTile TileId = -1

// Direction indexes one of the six hex directions, 0..5. NoDirection marks
// "no outgoing edge" / "already at goal" / "unreachable", per spec §3.
type Direction uint8

// NoDirection is the sentinel for "no direction" (0xFF).
const NoDirection Direction = 0xFF

// Opposite returns the reverse of direction d: opp(d) = (d+3) mod 6.
// Only meaningful for d in 0..5; NoDirection has no opposite and this
// function must not be called with it.
func Opposite(d Direction) Direction {
	return (d + 3) % 6
}

// String renders a Direction as its numeric index, or "none" for NoDirection.
func (d Direction) String() string {
	if d == NoDirection {
		return "none"
	}
	const labels = "012345"
	if int(d) < len(labels) {
		return labels[d : d+1]
	}
	return "invalid"
}

// Terrain tags the kind of ground a tile represents. Only TerrainFlowers is
// meaningful to this module (for the dynamic flower-goal maintainer, §4.5);
// every other terrain tag is opaque to us and carried only for completeness.
type Terrain uint8

const (
	// TerrainDefault is any terrain that is not flowers.
	TerrainDefault Terrain = iota
	// TerrainFlowers marks a tile eligible for flower-goal membership.
	TerrainFlowers
)

// World is the external, read-mostly collaborator this module consumes.
// It is never implemented by this module in production; StaticWorld (in
// this package) is a test double used across the test suites.
type World interface {
	// TileCount returns N, the number of tiles. Fixed after construction.
	TileCount() int

	// Axial returns the axial (q, r) coordinates of tile id.
	Axial(id TileId) (q, r int)

	// Lookup resolves axial coordinates to a tile id. ok is false if no
	// tile occupies (q, r) (out of bounds, or a sparse/non-rectangular map).
	Lookup(q, r int) (id TileId, ok bool)

	// Passable reports whether tile id can be entered/traversed.
	Passable(id TileId) bool

	// BaseCost is the terrain's base traversal cost for tile id. Finite and
	// positive for passable tiles; the value for impassable tiles is not
	// relied upon by costmodel (it pins impassable tiles to ε_max itself).
	BaseCost(id TileId) float32

	// FlowCapacity is the crowd-flow capacity used to compute congestion.
	// Must be > 0 for any tile that can carry crowd samples.
	FlowCapacity(id TileId) float32

	// Terrain reports the terrain tag of tile id.
	Terrain(id TileId) Terrain

	// NectarStock and NectarCapacity feed the flower-goal hysteresis.
	NectarStock(id TileId) float32
	NectarCapacity(id TileId) float32

	// Quality is a [0,1] desirability contribution for flower-goal seeding.
	Quality(id TileId) float32
}
