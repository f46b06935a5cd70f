package hexgrid

import "math"

// AxialOffsets gives the (dq, dr) axial offset for each of the six hex
// directions, indexed 0..5, per spec §4.1.
var AxialOffsets = [6][2]int{
	{+1, 0},
	{+1, -1},
	{0, -1},
	{-1, 0},
	{-1, +1},
	{0, +1},
}

// DirectionVectors holds the precomputed unit world-space vector for each
// of the six axial directions, built once via BuildDirectionTable.
type DirectionVectors [6][2]float32

// BuildDirectionTable computes the unit world-space vector for each axial
// direction, using the standard axial-to-cartesian transform for pointy-top
// hexagons at unit size. This table never depends on the world's tile
// count or contents — it is purely a function of hex geometry.
func BuildDirectionTable() DirectionVectors {
	var table DirectionVectors
	for d := 0; d < 6; d++ {
		dq, dr := AxialOffsets[d][0], AxialOffsets[d][1]
		x := math.Sqrt(3)*float64(dq) + math.Sqrt(3)/2*float64(dr)
		y := 1.5 * float64(dr)
		length := math.Hypot(x, y)
		if length == 0 {
			table[d] = [2]float32{0, 0}
			continue
		}
		table[d] = [2]float32{float32(x / length), float32(y / length)}
	}
	return table
}

// Vector returns the unit world-space vector for direction d, or (0,0) if d
// is NoDirection or otherwise out of the 0..5 range.
func (t DirectionVectors) Vector(d Direction) (x, y float32) {
	if d >= 6 {
		return 0, 0
	}
	return t[d][0], t[d][1]
}
