package graph

import (
	"os"
	"path/filepath"
	"testing"
)

func sampleGraph() *Graph {
	nodes := map[int64]RawNode{
		1: {Lat: -3.7700, Lon: -38.4800, Category: CategoryBuilding},
		2: {Lat: -3.7700, Lon: -38.4790},
		3: {Lat: -3.7695, Lon: -38.4790, Category: CategoryParking},
	}
	edges := []RawEdge{
		{FromID: 1, ToID: 2, LengthMeters: 115, Surface: SurfacePaved, WidthMeters: 2.5},
		{FromID: 2, ToID: 3, LengthMeters: 60, HasStairs: true, HasRamp: true, InclineGrade: 0.08},
		{FromID: 1, ToID: 3, LengthMeters: 130, IsCrosswalk: true, Surface: SurfaceIrregular},
	}
	return Build(nodes, edges)
}

func TestBinaryRoundTrip(t *testing.T) {
	g := sampleGraph()
	path := filepath.Join(t.TempDir(), "walkways.bin")

	if err := WriteBinary(path, g); err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}

	got, err := ReadBinary(path)
	if err != nil {
		t.Fatalf("ReadBinary: %v", err)
	}

	if got.NumNodes() != g.NumNodes() {
		t.Fatalf("NumNodes = %d, want %d", got.NumNodes(), g.NumNodes())
	}
	if got.NumEdges() != g.NumEdges() {
		t.Fatalf("NumEdges = %d, want %d", got.NumEdges(), g.NumEdges())
	}
	for i := range g.Nodes {
		if got.Nodes[i] != g.Nodes[i] {
			t.Errorf("node %d = %+v, want %+v", i, got.Nodes[i], g.Nodes[i])
		}
	}
	for i := range g.Edges {
		if got.Edges[i] != g.Edges[i] {
			t.Errorf("edge %d = %+v, want %+v", i, got.Edges[i], g.Edges[i])
		}
	}
	for i := range g.ArcHead {
		if got.ArcHead[i] != g.ArcHead[i] || got.ArcEdge[i] != g.ArcEdge[i] {
			t.Errorf("arc %d differs after round trip", i)
		}
	}
}

func TestReadBinaryCorrupted(t *testing.T) {
	g := sampleGraph()
	path := filepath.Join(t.TempDir(), "walkways.bin")

	if err := WriteBinary(path, g); err != nil {
		t.Fatalf("WriteBinary: %v", err)
	}

	// Flip one byte in the middle of the file.
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	data[len(data)/2] ^= 0xFF
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadBinary(path); err == nil {
		t.Error("ReadBinary should fail on corrupted data")
	}
}

func TestReadBinaryBadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.bin")
	if err := os.WriteFile(path, []byte("NOTAGRAPHFILE_________________"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadBinary(path); err == nil {
		t.Error("ReadBinary should reject unknown magic")
	}
}
