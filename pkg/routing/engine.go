package routing

import (
	"context"
	"fmt"

	"access_router/pkg/graph"
	"access_router/pkg/profile"
)

// LatLng represents a geographic coordinate.
type LatLng struct {
	Lat float64
	Lng float64
}

// Query describes one route request. DisableHeuristic switches the search
// from A* to plain Dijkstra; both return a minimum-weight path, so the
// switch exists for baseline comparisons, not as a fallback.
type Query struct {
	Origin           graph.NodeID
	Dest             graph.NodeID
	Profile          string
	DisableHeuristic bool
}

// Router is the interface for profile-aware route queries by coordinate.
type Router interface {
	RouteBetween(ctx context.Context, start, end LatLng, profileID string) (*Route, error)
}

// Engine computes accessibility-adjusted routes over an immutable walkway
// graph. All of its state is read-only after construction, so one Engine
// serves any number of concurrent requests without locking.
type Engine struct {
	g        *graph.Graph
	profiles *profile.Registry
	snapper  *Snapper
}

// NewEngine creates a routing engine over the given graph and profile
// registry.
func NewEngine(g *graph.Graph, profiles *profile.Registry) *Engine {
	return &Engine{
		g:        g,
		profiles: profiles,
		snapper:  NewSnapper(g),
	}
}

// Graph returns the underlying walkway graph.
func (e *Engine) Graph() *graph.Graph { return e.g }

// Profiles returns the profile registry.
func (e *Engine) Profiles() *profile.Registry { return e.profiles }

// FindRoute runs the search described by q. A caller-imposed timeout arrives
// through ctx and surfaces as the context's error, distinct from ErrNoRoute.
// Results are deterministic: identical inputs return identical routes.
func (e *Engine) FindRoute(ctx context.Context, q Query) (*Route, error) {
	prof, err := e.profiles.Get(q.Profile)
	if err != nil {
		return nil, err
	}
	if q.Origin >= e.g.NumNodes() || q.Dest >= e.g.NumNodes() {
		return nil, fmt.Errorf("routing: node id out of range (graph has %d nodes)", e.g.NumNodes())
	}

	h := zeroHeuristic
	if !q.DisableHeuristic {
		h = greatCircleTo(e.g, q.Dest)
	}

	path, err := findPath(ctx, e.g, &prof, q.Origin, q.Dest, h)
	if err != nil {
		return nil, err
	}

	return materialize(e.g, &prof, path), nil
}

// RouteBetween snaps both coordinates to their nearest walkway nodes and
// routes between them with the A* search.
func (e *Engine) RouteBetween(ctx context.Context, start, end LatLng, profileID string) (*Route, error) {
	origin, err := e.snapper.Snap(start.Lat, start.Lng)
	if err != nil {
		return nil, err
	}
	dest, err := e.snapper.Snap(end.Lat, end.Lng)
	if err != nil {
		return nil, err
	}

	return e.FindRoute(ctx, Query{Origin: origin, Dest: dest, Profile: profileID})
}
