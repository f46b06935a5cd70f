// Package graphcheck is a test-only cross-check oracle: it rebuilds a
// multi-source shortest-distance table with gonum's own Dijkstra
// implementation, independent of field's incremental builder, so tests can
// assert the builder's result matches a trusted second implementation
// rather than only re-deriving the same algorithm by hand. Grounded on
// betweenness_approx.go, the only pack file that imports
// gonum.org/v1/gonum/graph (simple.DirectedGraph, graph.Node) — generalized
// here from an unweighted directed graph to a weighted one and from
// betweenness to Dijkstra distance.
package graphcheck

import (
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/hexfield/hexgrid"
)

// Distances computes, for every tile in [0, n), the shortest distance to the
// nearest seeded goal under the same relaxation rule field.Step uses:
// entering tile v from any edge costs eff[v], and each goal in goals starts
// at seedCosts[i] (or 0 if seedCosts is nil or short) rather than zero. It
// does this by adding a synthetic super-source node with one edge per goal
// weighted by that goal's seed cost, then running gonum's Dijkstra from the
// super-source — turning the multi-source problem into an ordinary
// single-source one, the standard trick for this cost model.
//
// Unreachable tiles get math.Inf(1) (gonum's own sentinel for "no path"),
// not field.Unreachable — callers comparing against a *field.Field must
// account for that difference themselves.
func Distances(n int, neighbors hexgrid.NeighborTable, eff []float32, goals []hexgrid.TileId, seedCosts []float32) []float64 {
	g := simple.NewWeightedDirectedGraph(0, 0)

	superSource := int64(n)
	g.AddNode(simple.Node(superSource))
	for i := 0; i < n; i++ {
		g.AddNode(simple.Node(int64(i)))
	}

	for i, goal := range goals {
		if int(goal) < 0 || int(goal) >= n {
			continue
		}
		seed := float64(0)
		if i < len(seedCosts) {
			seed = float64(seedCosts[i])
		}
		g.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(superSource),
			T: simple.Node(int64(goal)),
			W: seed,
		})
	}

	for u := 0; u < n; u++ {
		for d := hexgrid.Direction(0); d < 6; d++ {
			v := neighbors.At(hexgrid.TileId(u), d)
			if v == hexgrid.NoTile {
				continue
			}
			w := float64(eff[v])
			if w < 0 {
				w = 0
			}
			g.SetWeightedEdge(simple.WeightedEdge{
				F: simple.Node(int64(u)),
				T: simple.Node(int64(v)),
				W: w,
			})
		}
	}

	shortest := path.DijkstraFrom(simple.Node(superSource), g)
	dist := make([]float64, n)
	for i := 0; i < n; i++ {
		dist[i] = shortest.WeightTo(int64(i))
	}
	return dist
}
