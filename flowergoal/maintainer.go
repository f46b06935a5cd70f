package flowergoal

import "github.com/katalvlaran/hexfield/hexgrid"

// Tick accumulates dtSec and, once the refresh clock crosses
// RefreshInterval, re-evaluates every flower tile's membership and seed
// cost per §4.5. It reports whether membership or any admitted tile's
// seed changed by more than seedChangeEpsilon — the caller (the owning
// Core) uses that signal to rebind the scheduler's goal data and force a
// full recompute.
func (m *Maintainer) Tick(dtSec float64) bool {
	m.refreshAccum += dtSec
	if m.refreshAccum < RefreshInterval {
		return false
	}
	m.refreshAccum = 0
	return m.refresh()
}

func (m *Maintainer) refresh() bool {
	changed := false
	newSeedLUT := make([]float32, m.n)

	for i := 0; i < m.n; i++ {
		id := hexgrid.TileId(i)
		isFlower := m.world.Terrain(id) == hexgrid.TerrainFlowers && m.world.Passable(id)
		if !isFlower {
			if m.admitted[i] {
				m.admitted[i] = false
				changed = true
			}
			continue
		}

		ratio := stockRatio(m.world.NectarStock(id), m.world.NectarCapacity(id))
		admit := m.admitted[i]
		if admit {
			if ratio <= ThetaOff {
				admit = false
			}
		} else if ratio >= ThetaOn {
			admit = true
		}

		if admit != m.admitted[i] {
			changed = true
		}
		m.admitted[i] = admit

		if !admit {
			continue
		}
		desirability := clampUnit(0.7*ratio + 0.3*clampUnit(m.world.Quality(id)))
		seed := bias * (1 - desirability)
		newSeedLUT[i] = seed
		if absf32(seed-m.seedLUT[i]) > seedChangeEpsilon {
			changed = true
		}
	}

	m.seedLUT = newSeedLUT
	m.rebuildGoalArrays()
	return changed
}

func (m *Maintainer) rebuildGoalArrays() {
	m.ids = m.ids[:0]
	m.seedCosts = m.seedCosts[:0]
	for i := 0; i < m.n; i++ {
		if m.admitted[i] {
			m.ids = append(m.ids, hexgrid.TileId(i))
			m.seedCosts = append(m.seedCosts, m.seedLUT[i])
		}
	}
}

// stockRatio computes stock/capacity, treating a near-zero capacity as a
// ratio of 1 if stock is positive (an unbounded or misconfigured tile with
// any nectar at all is as desirable as a full one) or 0 otherwise.
func stockRatio(stock, capacity float32) float32 {
	if capacity < capacityEpsilon {
		if stock > 0 {
			return 1
		}
		return 0
	}
	ratio := stock / capacity
	return clampUnit(ratio)
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
