package hexgrid

// StaticWorld is an in-memory World test double built from plain slices. It
// is not part of the production boundary — the real hex-world store is an
// external collaborator (spec §1 Out-of-scope) — but it is used throughout
// this module's own test suites, the same way lvlath's tests
// build ad hoc *core.Graph fixtures instead of depending on a real backing
// store.
type StaticWorld struct {
	axial        []ax
	byAxial      map[ax]TileId
	passable     []bool
	baseCost     []float32
	flowCapacity []float32
	terrain      []Terrain
	nectarStock  []float32
	nectarCap    []float32
	quality      []float32
}

type ax struct{ q, r int }

// NewStaticWorld creates an empty StaticWorld ready for AddTile calls.
func NewStaticWorld() *StaticWorld {
	return &StaticWorld{byAxial: make(map[ax]TileId)}
}

// AddTile appends a new passable tile at (q, r) with the given base cost
// and flow capacity, returning its assigned TileId. Defaults: terrain
// TerrainDefault, zero nectar, zero quality.
func (w *StaticWorld) AddTile(q, r int, baseCost, flowCapacity float32) TileId {
	id := TileId(len(w.axial))
	w.axial = append(w.axial, ax{q, r})
	w.byAxial[ax{q, r}] = id
	w.passable = append(w.passable, true)
	w.baseCost = append(w.baseCost, baseCost)
	w.flowCapacity = append(w.flowCapacity, flowCapacity)
	w.terrain = append(w.terrain, TerrainDefault)
	w.nectarStock = append(w.nectarStock, 0)
	w.nectarCap = append(w.nectarCap, 0)
	w.quality = append(w.quality, 0)
	return id
}

// SetPassable marks tile id passable or not.
func (w *StaticWorld) SetPassable(id TileId, passable bool) { w.passable[id] = passable }

// SetTerrain sets the terrain tag of tile id.
func (w *StaticWorld) SetTerrain(id TileId, t Terrain) { w.terrain[id] = t }

// SetNectar sets stock/capacity/quality for a flower tile.
func (w *StaticWorld) SetNectar(id TileId, stock, capacity, quality float32) {
	w.nectarStock[id] = stock
	w.nectarCap[id] = capacity
	w.quality[id] = quality
}

func (w *StaticWorld) TileCount() int { return len(w.axial) }

func (w *StaticWorld) Axial(id TileId) (int, int) {
	a := w.axial[id]
	return a.q, a.r
}

func (w *StaticWorld) Lookup(q, r int) (TileId, bool) {
	id, ok := w.byAxial[ax{q, r}]
	return id, ok
}

func (w *StaticWorld) Passable(id TileId) bool            { return w.passable[id] }
func (w *StaticWorld) BaseCost(id TileId) float32          { return w.baseCost[id] }
func (w *StaticWorld) FlowCapacity(id TileId) float32      { return w.flowCapacity[id] }
func (w *StaticWorld) Terrain(id TileId) Terrain           { return w.terrain[id] }
func (w *StaticWorld) NectarStock(id TileId) float32       { return w.nectarStock[id] }
func (w *StaticWorld) NectarCapacity(id TileId) float32    { return w.nectarCap[id] }
func (w *StaticWorld) Quality(id TileId) float32           { return w.quality[id] }
