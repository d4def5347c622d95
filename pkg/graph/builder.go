package graph

import (
	"sort"

	"access_router/pkg/geo"
)

// RawNode is a node as delivered by a network source, keyed externally.
type RawNode struct {
	Lat      float64
	Lon      float64
	Category Category
}

// RawEdge is one undirected walkway segment prior to graph construction,
// referencing nodes by their external (source data) ids.
type RawEdge struct {
	FromID       int64
	ToID         int64
	LengthMeters float64
	HasStairs    bool
	HasRamp      bool
	InclineGrade float64
	Surface      Surface
	WidthMeters  float64
	IsCrosswalk  bool
}

// Build creates a CSR Graph from raw nodes and edges.
//
// Compact node ids are assigned in order of first appearance in the edge
// list, so the result is deterministic for a fixed input slice. Edge lengths
// are floored at the great-circle separation of their endpoints; the search
// heuristic's admissibility depends on length never undercutting that bound.
func Build(nodes map[int64]RawNode, edges []RawEdge) *Graph {
	if len(edges) == 0 {
		return &Graph{FirstOut: []uint32{0}}
	}

	// Step 1: Assign compact ids in first-appearance order.
	idx := make(map[int64]NodeID, len(nodes))
	var extIDs []int64

	addNode := func(id int64) NodeID {
		if i, ok := idx[id]; ok {
			return i
		}
		i := NodeID(len(extIDs))
		idx[id] = i
		extIDs = append(extIDs, id)
		return i
	}

	for i := range edges {
		addNode(edges[i].FromID)
		addNode(edges[i].ToID)
	}

	numNodes := uint32(len(extIDs))

	// Step 2: Compact edge list with remapped endpoints and floored lengths.
	compact := make([]Edge, len(edges))
	for i, e := range edges {
		from := nodes[e.FromID]
		to := nodes[e.ToID]
		minLen := geo.Haversine(from.Lat, from.Lon, to.Lat, to.Lon)
		length := e.LengthMeters
		if length < minLen {
			length = minLen
		}
		compact[i] = Edge{
			From:         idx[e.FromID],
			To:           idx[e.ToID],
			LengthMeters: length,
			HasStairs:    e.HasStairs,
			HasRamp:      e.HasRamp,
			InclineGrade: e.InclineGrade,
			Surface:      e.Surface,
			WidthMeters:  e.WidthMeters,
			IsCrosswalk:  e.IsCrosswalk,
		}
	}

	sort.SliceStable(compact, func(i, j int) bool {
		if compact[i].From != compact[j].From {
			return compact[i].From < compact[j].From
		}
		return compact[i].To < compact[j].To
	})

	// Step 3: Node records.
	nodeRecs := make([]Node, numNodes)
	for i, ext := range extIDs {
		rn := nodes[ext]
		nodeRecs[i] = Node{Lat: rn.Lat, Lon: rn.Lon, Category: rn.Category}
	}

	g := &Graph{Nodes: nodeRecs, Edges: compact}
	buildArcs(g)
	return g
}

// buildArcs populates the CSR arc arrays from g.Nodes and g.Edges.
// Each undirected edge contributes two arcs.
func buildArcs(g *Graph) {
	numNodes := g.NumNodes()
	numArcs := 2 * len(g.Edges)

	firstOut := make([]uint32, numNodes+1)
	for _, e := range g.Edges {
		firstOut[e.From+1]++
		firstOut[e.To+1]++
	}
	for i := uint32(1); i <= numNodes; i++ {
		firstOut[i] += firstOut[i-1]
	}

	arcHead := make([]NodeID, numArcs)
	arcEdge := make([]uint32, numArcs)
	pos := make([]uint32, numNodes)
	copy(pos, firstOut[:numNodes])

	for ei, e := range g.Edges {
		arcHead[pos[e.From]] = e.To
		arcEdge[pos[e.From]] = uint32(ei)
		pos[e.From]++

		arcHead[pos[e.To]] = e.From
		arcEdge[pos[e.To]] = uint32(ei)
		pos[e.To]++
	}

	g.FirstOut = firstOut
	g.ArcHead = arcHead
	g.ArcEdge = arcEdge
}
