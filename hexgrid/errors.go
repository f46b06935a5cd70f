// Package hexgrid defines the tile identity, axial coordinates, and
// precomputed adjacency/direction tables shared by every other package
// in this module.
package hexgrid

import "errors"

// Sentinel errors for hexgrid operations.
var (
	// ErrNilWorld indicates a nil World was passed where a live view was required.
	ErrNilWorld = errors.New("hexgrid: world is nil")

	// ErrEmptyWorld indicates the world reports a tile count of zero where at
	// least one tile was required by the caller.
	ErrEmptyWorld = errors.New("hexgrid: world has no tiles")

	// ErrTileOutOfRange indicates a TileId outside [0, N) was supplied.
	ErrTileOutOfRange = errors.New("hexgrid: tile id out of range")
)
