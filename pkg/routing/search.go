package routing

import (
	"context"
	"errors"
	"math"

	"access_router/pkg/graph"
	"access_router/pkg/profile"
)

// ErrNoRoute is returned when the destination is unreachable for the chosen
// profile: either physically disconnected, or cut off by infeasible edges
// (stairs for a wheelchair user). It is an expected outcome, not a fault,
// and is final for a given (graph, profile, origin, destination) tuple.
var ErrNoRoute = errors.New("routing: no feasible route")

const noNode = graph.NodeID(math.MaxUint32)

// pathResult is the raw outcome of a search before materialization.
type pathResult struct {
	nodes []graph.NodeID
	edges []uint32 // indices into g.Edges, one per traversed segment
	cost  float64  // total profile-weighted cost
}

// findPath runs best-first search from origin to dest under the given
// profile. With the great-circle heuristic it is A*; with zeroHeuristic it
// is plain Dijkstra. Edge weights are evaluated lazily, one incident edge at
// a time, so no per-profile weighted graph is ever materialized.
//
// Cancellation is checked once per node expansion; a caller deadline aborts
// the search with the context's error. No shared state is mutated, so an
// aborted search leaves nothing to clean up.
func findPath(ctx context.Context, g *graph.Graph, prof *profile.Profile, origin, dest graph.NodeID, h heuristicFunc) (*pathResult, error) {
	if origin == dest {
		return &pathResult{nodes: []graph.NodeID{origin}}, nil
	}

	n := g.NumNodes()
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	predNode := make([]graph.NodeID, n)
	predEdge := make([]uint32, n)
	for i := range predNode {
		predNode[i] = noNode
	}

	dist[origin] = 0
	var pq frontier
	pq.Push(frontierItem{node: origin, f: h(origin), g: 0})

	for pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		item := pq.Pop()
		u := item.node

		if item.g > dist[u] {
			continue // stale entry
		}
		if u == dest {
			return reconstruct(g, origin, dest, predNode, predEdge, item.g), nil
		}

		start, end := g.ArcsFrom(u)
		for a := start; a < end; a++ {
			edgeIdx := g.ArcEdge[a]
			w, feasible := EdgeWeight(&g.Edges[edgeIdx], prof)
			if !feasible {
				continue
			}

			v := g.ArcHead[a]
			cand := item.g + w
			if cand < dist[v] {
				dist[v] = cand
				predNode[v] = u
				predEdge[v] = edgeIdx
				pq.Push(frontierItem{node: v, f: cand + h(v), g: cand})
			}
		}
	}

	return nil, ErrNoRoute
}

// reconstruct walks the predecessor arrays from dest back to origin.
func reconstruct(g *graph.Graph, origin, dest graph.NodeID, predNode []graph.NodeID, predEdge []uint32, cost float64) *pathResult {
	var nodes []graph.NodeID
	var edges []uint32

	for at := dest; ; {
		nodes = append(nodes, at)
		if at == origin {
			break
		}
		edges = append(edges, predEdge[at])
		at = predNode[at]
	}

	// Reverse into origin → dest order.
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return &pathResult{nodes: nodes, edges: edges, cost: cost}
}
