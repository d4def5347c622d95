package graph

import "testing"

// twoIslands builds a graph with a 3-node component and a 2-node component.
func twoIslands() *Graph {
	nodes := map[int64]RawNode{
		1: {Lat: -3.7700, Lon: -38.4800},
		2: {Lat: -3.7700, Lon: -38.4795},
		3: {Lat: -3.7700, Lon: -38.4790},
		8: {Lat: -3.7600, Lon: -38.4700},
		9: {Lat: -3.7600, Lon: -38.4695},
	}
	edges := []RawEdge{
		{FromID: 1, ToID: 2, LengthMeters: 60},
		{FromID: 2, ToID: 3, LengthMeters: 60},
		{FromID: 8, ToID: 9, LengthMeters: 60},
	}
	return Build(nodes, edges)
}

func TestLargestComponent(t *testing.T) {
	g := twoIslands()

	comp := LargestComponent(g)
	if len(comp) != 3 {
		t.Fatalf("largest component size = %d, want 3", len(comp))
	}
}

func TestFilterToComponent(t *testing.T) {
	g := twoIslands()
	comp := LargestComponent(g)
	filtered := FilterToComponent(g, comp)

	if filtered.NumNodes() != 3 {
		t.Errorf("filtered nodes = %d, want 3", filtered.NumNodes())
	}
	if filtered.NumEdges() != 2 {
		t.Errorf("filtered edges = %d, want 2", filtered.NumEdges())
	}

	// Every surviving arc must point inside the filtered graph.
	for _, h := range filtered.ArcHead {
		if h >= filtered.NumNodes() {
			t.Errorf("arc head %d out of range", h)
		}
	}
}

func TestFilterToComponentEmpty(t *testing.T) {
	g := twoIslands()
	filtered := FilterToComponent(g, nil)
	if filtered.NumNodes() != 0 {
		t.Errorf("filtered nodes = %d, want 0", filtered.NumNodes())
	}
}

func TestUnionFind(t *testing.T) {
	uf := NewUnionFind(5)

	if !uf.Union(0, 1) {
		t.Error("first union of 0,1 should return true")
	}
	if uf.Union(0, 1) {
		t.Error("second union of 0,1 should return false")
	}
	uf.Union(1, 2)

	if uf.Find(0) != uf.Find(2) {
		t.Error("0 and 2 should share a representative")
	}
	if uf.Find(0) == uf.Find(4) {
		t.Error("0 and 4 should not share a representative")
	}
}
