package graph

// NodeID is a compact node index in the range [0, NumNodes).
type NodeID = uint32

// Category tags a node with the kind of place it represents.
type Category uint8

const (
	CategoryWaypoint Category = iota
	CategoryBuilding
	CategoryParking
)

func (c Category) String() string {
	switch c {
	case CategoryBuilding:
		return "building"
	case CategoryParking:
		return "parking"
	default:
		return "waypoint"
	}
}

// Surface classifies the ground material of a walkway edge.
type Surface uint8

const (
	SurfaceUnknown Surface = iota
	SurfacePaved
	SurfaceUnpaved
	SurfaceIrregular
)

func (s Surface) String() string {
	switch s {
	case SurfacePaved:
		return "paved"
	case SurfaceUnpaved:
		return "unpaved"
	case SurfaceIrregular:
		return "irregular"
	default:
		return "unknown"
	}
}

// Node is one point of the walkway network. Immutable after graph build.
type Node struct {
	Lat      float64
	Lon      float64
	Category Category
}

// Edge is one undirected walkway segment with its accessibility attributes.
// Attributes are sourced from the network data and never mutated; a mobility
// profile turns them into a traversal cost at query time.
type Edge struct {
	From         NodeID
	To           NodeID
	LengthMeters float64
	HasStairs    bool
	HasRamp      bool
	InclineGrade float64 // rise over run; sign follows the From→To direction
	Surface      Surface
	WidthMeters  float64 // 0 = unknown
	IsCrosswalk  bool    // edge crosses a roadway at a marked crossing
}

// Graph is an immutable undirected walkway network in CSR adjacency form.
// Each physical edge is stored once in Edges and referenced by two arcs, one
// per traversal direction. All fields are read-only after construction, so a
// Graph is safe for concurrent searches without locking.
type Graph struct {
	Nodes []Node
	Edges []Edge

	// CSR arc arrays: FirstOut[u]..FirstOut[u+1] index ArcHead/ArcEdge.
	FirstOut []uint32 // len: NumNodes + 1
	ArcHead  []NodeID // len: 2 * NumEdges; neighbor reached by the arc
	ArcEdge  []uint32 // len: 2 * NumEdges; index into Edges
}

// NumNodes returns the node count.
func (g *Graph) NumNodes() uint32 { return uint32(len(g.Nodes)) }

// NumEdges returns the undirected edge count.
func (g *Graph) NumEdges() uint32 { return uint32(len(g.Edges)) }

// ArcsFrom returns the range of arc indices for arcs leaving node u.
func (g *Graph) ArcsFrom(u NodeID) (start, end uint32) {
	return g.FirstOut[u], g.FirstOut[u+1]
}

// Coord returns the coordinate of node u.
func (g *Graph) Coord(u NodeID) (lat, lon float64) {
	return g.Nodes[u].Lat, g.Nodes[u].Lon
}
