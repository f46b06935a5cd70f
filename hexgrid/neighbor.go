package hexgrid

// NeighborTable is a dense array of length 6*N; NeighborTable[i*6+d] is the
// tile reached from tile i in direction d, or NoTile if there is no edge.
// Invariant (opposite-direction law): neighbors[a*6+d] == b implies
// neighbors[b*6+Opposite(d)] == a. Impassable tiles have all six entries
// set to NoTile and receive no incoming edges from any other tile.
type NeighborTable []TileId

// BuildNeighborTable builds the adjacency table for w in a single pass, per
// spec §4.1. Complexity: O(6*N).
func BuildNeighborTable(w World) (NeighborTable, error) {
	if w == nil {
		return nil, ErrNilWorld
	}
	n := w.TileCount()
	if n == 0 {
		return nil, ErrEmptyWorld
	}
	table := make(NeighborTable, 6*n)
	for i := 0; i < n; i++ {
		id := TileId(i)
		if !w.Passable(id) {
			for d := 0; d < 6; d++ {
				table[i*6+d] = NoTile
			}
			continue
		}
		q, r := w.Axial(id)
		for d := 0; d < 6; d++ {
			dq, dr := AxialOffsets[d][0], AxialOffsets[d][1]
			nid, ok := w.Lookup(q+dq, r+dr)
			if !ok || !w.Passable(nid) {
				table[i*6+d] = NoTile
				continue
			}
			table[i*6+d] = nid
		}
	}
	return table, nil
}

// DuplicateTileId reports the first tile id that appears more than once in
// ids, and true, or (0, false) if every id is distinct. Used by callers that
// seed a build from a goal-id list and must reject duplicates synchronously
// per spec's InvalidArgs taxonomy rather than silently double-seeding.
func DuplicateTileId(ids []TileId) (TileId, bool) {
	seen := make(map[TileId]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id, true
		}
		seen[id] = struct{}{}
	}
	return 0, false
}

// At returns the neighbor of tile id in direction d, or NoTile if d is out
// of range or there is no edge.
func (t NeighborTable) At(id TileId, d Direction) TileId {
	if d >= 6 {
		return NoTile
	}
	idx := int(id)*6 + int(d)
	if idx < 0 || idx >= len(t) {
		return NoTile
	}
	return t[idx]
}
