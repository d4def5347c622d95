package graph

// UnionFind implements a disjoint-set data structure with path halving
// and union by rank.
type UnionFind struct {
	parent []uint32
	rank   []byte // max rank ~30 for realistic networks
	size   []uint32
}

// NewUnionFind creates a UnionFind for n elements.
func NewUnionFind(n uint32) *UnionFind {
	parent := make([]uint32, n)
	size := make([]uint32, n)
	for i := uint32(0); i < n; i++ {
		parent[i] = i
		size[i] = 1
	}
	return &UnionFind{
		parent: parent,
		rank:   make([]byte, n),
		size:   size,
	}
}

// Find returns the representative of the set containing x, with path halving.
func (uf *UnionFind) Find(x uint32) uint32 {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

// Union merges the sets containing x and y. Returns false if already same set.
func (uf *UnionFind) Union(x, y uint32) bool {
	rx := uf.Find(x)
	ry := uf.Find(y)
	if rx == ry {
		return false
	}

	if uf.rank[rx] < uf.rank[ry] {
		rx, ry = ry, rx
	}
	uf.parent[ry] = rx
	uf.size[rx] += uf.size[ry]
	if uf.rank[rx] == uf.rank[ry] {
		uf.rank[rx]++
	}
	return true
}

// LargestComponent returns the node ids of the largest connected component,
// in ascending order. A profile can still disconnect origin from destination
// through infeasible edges, but restricting the graph to one component keeps
// physically unreachable islands out of every search.
func LargestComponent(g *Graph) []NodeID {
	if g.NumNodes() == 0 {
		return nil
	}

	uf := NewUnionFind(g.NumNodes())
	for _, e := range g.Edges {
		uf.Union(e.From, e.To)
	}

	bestRoot := uint32(0)
	bestSize := uint32(0)
	for i := uint32(0); i < g.NumNodes(); i++ {
		root := uf.Find(i)
		if uf.size[root] > bestSize {
			bestRoot = root
			bestSize = uf.size[root]
		}
	}

	nodes := make([]NodeID, 0, bestSize)
	for i := uint32(0); i < g.NumNodes(); i++ {
		if uf.Find(i) == bestRoot {
			nodes = append(nodes, i)
		}
	}

	return nodes
}

// FilterToComponent creates a new graph containing only the given nodes and
// the edges whose endpoints both survive.
func FilterToComponent(g *Graph, nodes []NodeID) *Graph {
	if len(nodes) == 0 {
		return &Graph{FirstOut: []uint32{0}}
	}

	oldToNew := make(map[NodeID]NodeID, len(nodes))
	for newIdx, oldIdx := range nodes {
		oldToNew[oldIdx] = NodeID(newIdx)
	}

	newNodes := make([]Node, len(nodes))
	for newIdx, oldIdx := range nodes {
		newNodes[newIdx] = g.Nodes[oldIdx]
	}

	var newEdges []Edge
	for _, e := range g.Edges {
		from, okF := oldToNew[e.From]
		to, okT := oldToNew[e.To]
		if !okF || !okT {
			continue
		}
		ne := e
		ne.From = from
		ne.To = to
		newEdges = append(newEdges, ne)
	}

	out := &Graph{Nodes: newNodes, Edges: newEdges}
	buildArcs(out)
	return out
}
