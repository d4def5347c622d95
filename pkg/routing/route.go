package routing

import (
	"math"
	"time"

	"github.com/paulmach/orb"

	"access_router/pkg/graph"
	"access_router/pkg/profile"
)

// Route is the externally consumed result of a search. It is created once
// per successful query and owned by the caller; the engine keeps no
// reference to it.
type Route struct {
	Profile string

	Nodes []graph.NodeID
	Edges []uint32 // indices into the graph's edge slice, in traversal order

	// DistanceMeters is the sum of physical edge lengths, never the
	// weighted cost a profile's penalties produce.
	DistanceMeters float64

	// Duration is DistanceMeters at the profile's walking speed,
	// unrounded; display rounding belongs to the UI layer.
	Duration time.Duration

	// StepCount is the number of traversed edges flagged with stairs. It is
	// a proxy for stairs encountered, not an exact stair-step count.
	StepCount int

	// StrideEstimate approximates walking strides as distance over the
	// profile's stride length; 0 when the profile has no meaningful stride.
	StrideEstimate int

	// Cost is the profile-weighted cost of the chosen path. Diagnostic
	// value for comparing search variants; never a display distance.
	Cost float64

	// Geometry is the route polyline in node order, ready for GPX or map
	// export. Points follow orb's lon/lat convention.
	Geometry orb.LineString
}

// materialize converts a raw search path into a Route. Pure transformation,
// no I/O.
func materialize(g *graph.Graph, prof *profile.Profile, path *pathResult) *Route {
	var distance float64
	steps := 0
	for _, ei := range path.edges {
		e := &g.Edges[ei]
		distance += e.LengthMeters
		if e.HasStairs {
			steps++
		}
	}

	minutes := distance / prof.SpeedMetersPerMinute

	strides := 0
	if prof.StrideMeters > 0 {
		strides = int(math.Floor(distance / prof.StrideMeters))
	}

	line := make(orb.LineString, len(path.nodes))
	for i, n := range path.nodes {
		lat, lon := g.Coord(n)
		line[i] = orb.Point{lon, lat}
	}

	return &Route{
		Profile:        prof.ID,
		Nodes:          path.nodes,
		Edges:          path.edges,
		DistanceMeters: distance,
		Duration:       time.Duration(minutes * float64(time.Minute)),
		StepCount:      steps,
		StrideEstimate: strides,
		Cost:           path.cost,
		Geometry:       line,
	}
}
