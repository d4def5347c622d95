package routing

import (
	"errors"
	"math"

	"github.com/tidwall/rtree"

	"access_router/pkg/geo"
	"access_router/pkg/graph"
)

// maxSnapDistMeters bounds how far a query point may be from the network.
// Beyond this the caller picked a point that has no meaningful walkway
// answer.
const maxSnapDistMeters = 500.0

// ErrPointTooFar is returned when a query point is too far from any walkway
// node to snap.
var ErrPointTooFar = errors.New("routing: point too far from any walkway")

// Snapper resolves raw coordinates to their nearest walkway node using an
// R-tree over node positions. Read-only after construction.
type Snapper struct {
	tr rtree.RTreeG[graph.NodeID]
	g  *graph.Graph
}

// NewSnapper indexes every node of the graph. Points are stored with
// degenerate boxes (min == max), so nearest-first traversal orders them by
// true point distance.
func NewSnapper(g *graph.Graph) *Snapper {
	s := &Snapper{g: g}
	for i := range g.Nodes {
		p := [2]float64{g.Nodes[i].Lon, g.Nodes[i].Lat}
		s.tr.Insert(p, p, graph.NodeID(i))
	}
	return s
}

// Snap returns the nearest walkway node to the given coordinate, or
// ErrPointTooFar when the nearest node is beyond maxSnapDistMeters.
func (s *Snapper) Snap(lat, lng float64) (graph.NodeID, error) {
	best := noNode
	bestDist := math.Inf(1)

	s.tr.Nearby(
		func(min, max [2]float64, _ graph.NodeID, _ bool) float64 {
			return rectDistMeters(lat, lng, min, max)
		},
		func(_, _ [2]float64, id graph.NodeID, dist float64) bool {
			best = id
			bestDist = dist
			return false // nearest-first: the first item is the answer
		},
	)

	if best == noNode || bestDist > maxSnapDistMeters {
		return 0, ErrPointTooFar
	}
	return best, nil
}

// rectDistMeters returns the distance in meters from a query point to the
// closest point of a lon/lat rectangle. For degenerate point boxes this is
// the plain point distance; for internal tree boxes it is a lower bound,
// which is what nearest-first traversal needs.
func rectDistMeters(lat, lng float64, min, max [2]float64) float64 {
	clampedLng := math.Min(math.Max(lng, min[0]), max[0])
	clampedLat := math.Min(math.Max(lat, min[1]), max[1])
	return geo.EquirectangularDist(lat, lng, clampedLat, clampedLng)
}
