package routing

import (
	"access_router/pkg/geo"
	"access_router/pkg/graph"
)

// heuristicFunc estimates a lower bound on the remaining weighted cost from a
// node to the search goal.
type heuristicFunc func(u graph.NodeID) float64

// greatCircleTo returns the A* heuristic: great-circle distance to the goal.
//
// Admissibility: every feasible edge weight is at least the edge's physical
// length (EdgeWeight invariant), and the physical length of any path is at
// least the great-circle separation of its endpoints, so this estimate never
// exceeds the true remaining cost regardless of how large a profile's
// penalty factors are. It is also consistent, because the great-circle
// metric satisfies the triangle inequality; the search relies on that to
// finalize a node the first time it is expanded.
func greatCircleTo(g *graph.Graph, goal graph.NodeID) heuristicFunc {
	goalLat, goalLon := g.Coord(goal)
	return func(u graph.NodeID) float64 {
		lat, lon := g.Coord(u)
		return geo.Haversine(lat, lon, goalLat, goalLon)
	}
}

// zeroHeuristic degrades the search to plain Dijkstra. Used as the
// baseline when a caller disables the heuristic.
func zeroHeuristic(graph.NodeID) float64 { return 0 }
