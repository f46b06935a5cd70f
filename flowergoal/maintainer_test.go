package flowergoal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexfield/flowergoal"
	"github.com/katalvlaran/hexfield/hexgrid"
)

func newFlowerWorld(t *testing.T) (*hexgrid.StaticWorld, hexgrid.TileId, hexgrid.TileId) {
	t.Helper()
	w := hexgrid.NewStaticWorld()
	a := w.AddTile(0, 0, 1, 10)
	b := w.AddTile(1, 0, 1, 10)
	w.SetTerrain(a, hexgrid.TerrainFlowers)
	w.SetTerrain(b, hexgrid.TerrainFlowers)
	return w, a, b
}

func TestMaintainer_NoTickBelowRefreshInterval(t *testing.T) {
	w, a, _ := newFlowerWorld(t)
	w.SetNectar(a, 10, 100, 0.5) // ratio 0.10, well above theta_on

	m, err := flowergoal.New(w)
	require.NoError(t, err)

	changed := m.Tick(0.1)
	assert.False(t, changed)
	assert.Empty(t, m.Ids())
}

func TestMaintainer_Hysteresis(t *testing.T) {
	w, a, b := newFlowerWorld(t)
	w.SetNectar(a, 10, 100, 0.5) // ratio 0.10
	w.SetNectar(b, 3, 100, 0.5)  // ratio 0.03

	m, err := flowergoal.New(w)
	require.NoError(t, err)

	// First refresh: only A clears theta_on (0.05); B's 0.03 does not.
	require.True(t, m.Tick(0.4))
	assert.ElementsMatch(t, []hexgrid.TileId{a}, m.Ids())

	// A drifts down to 0.03 (still above theta_off 0.02, stays admitted);
	// B rises to 0.06 (clears theta_on, becomes admitted).
	w.SetNectar(a, 3, 100, 0.5)
	w.SetNectar(b, 6, 100, 0.5)
	require.True(t, m.Tick(0.4))
	assert.ElementsMatch(t, []hexgrid.TileId{a, b}, m.Ids())

	// A drops to 0.01 (at/below theta_off), ceases; B unchanged, stays in.
	w.SetNectar(a, 1, 100, 0.5)
	require.True(t, m.Tick(0.4))
	assert.ElementsMatch(t, []hexgrid.TileId{b}, m.Ids())
}

func TestMaintainer_SeedCostFavorsHighStockAndQuality(t *testing.T) {
	w, a, b := newFlowerWorld(t)
	w.SetNectar(a, 100, 100, 1.0) // full stock, max quality: most desirable
	w.SetNectar(b, 5, 100, 0.0)   // ratio 0.05, zero quality: least desirable of the two

	m, err := flowergoal.New(w)
	require.NoError(t, err)
	require.True(t, m.Tick(0.4))
	require.ElementsMatch(t, []hexgrid.TileId{a, b}, m.Ids())

	seedByID := make(map[hexgrid.TileId]float32)
	for i, id := range m.Ids() {
		seedByID[id] = m.SeedCosts()[i]
	}
	assert.Less(t, seedByID[a], seedByID[b])
	assert.InDelta(t, 0, seedByID[a], 1e-6) // desirability 1 -> seed 0
}

func TestMaintainer_ImpassableOrNonFlowerTileNeverAdmitted(t *testing.T) {
	w := hexgrid.NewStaticWorld()
	flower := w.AddTile(0, 0, 1, 10)
	plain := w.AddTile(1, 0, 1, 10)
	w.SetTerrain(flower, hexgrid.TerrainFlowers)
	w.SetNectar(flower, 50, 100, 1)
	w.SetPassable(flower, false)
	w.SetNectar(plain, 50, 100, 1) // not flower terrain, should never admit

	m, err := flowergoal.New(w)
	require.NoError(t, err)
	m.Tick(0.4)
	assert.Empty(t, m.Ids())
}

func TestMaintainer_ZeroCapacityTreatsAnyStockAsFull(t *testing.T) {
	w, a, _ := newFlowerWorld(t)
	w.SetNectar(a, 1, 0, 0.5) // capacity ~0 but stock positive

	m, err := flowergoal.New(w)
	require.NoError(t, err)
	require.True(t, m.Tick(0.4))
	assert.ElementsMatch(t, []hexgrid.TileId{a}, m.Ids())
}
