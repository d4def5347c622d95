// Package profile defines mobility profiles: traveler categories with a
// walking speed and a table of edge-attribute penalties. Profiles are loaded
// once at process start and are immutable afterwards, so concurrent reads
// need no locking.
package profile

import (
	"errors"
	"fmt"

	"access_router/pkg/graph"
)

var (
	// ErrUnknownProfile is returned when a profile id is not registered.
	ErrUnknownProfile = errors.New("profile: unknown profile")
	// ErrInvalidProfile is returned when a profile definition is malformed.
	// It is a load-time failure, never a per-query one.
	ErrInvalidProfile = errors.New("profile: invalid profile definition")
)

// Penalty is one entry of a penalty table: either a finite multiplicative
// factor (>= 1) or the infeasible sentinel. Infeasible is a distinct variant
// rather than a float infinity so it can never leak into distance or time
// arithmetic.
type Penalty struct {
	Factor     float64
	Infeasible bool
}

// Factor returns a finite multiplicative penalty.
func Factor(f float64) Penalty { return Penalty{Factor: f} }

// None returns the neutral penalty (factor 1).
func None() Penalty { return Penalty{Factor: 1} }

// Infeasible returns the sentinel that disqualifies an edge outright.
func Infeasible() Penalty { return Penalty{Infeasible: true} }

func (p Penalty) validate(name string) error {
	if p.Infeasible {
		return nil
	}
	if p.Factor < 1 {
		return fmt.Errorf("%w: %s factor %g is below 1", ErrInvalidProfile, name, p.Factor)
	}
	return nil
}

// Profile describes one traveler category. The penalty fields form the
// profile's penalty table; the routing package evaluates them against edge
// attributes in a fixed order, with infeasible entries short-circuiting.
type Profile struct {
	ID          string
	Name        string
	Description string

	SpeedMetersPerMinute float64
	StrideMeters         float64 // 0 when a stride count is not meaningful

	Stairs            Penalty // edge has stairs
	StairsWithoutRamp Penalty // edge has stairs and no ramp; stacks on Stairs
	StairsNeedRamp    bool    // stairs without a ramp are infeasible outright

	Incline          Penalty // |InclineGrade| exceeds InclineThreshold
	InclineThreshold float64 // rise over run

	SurfaceFactors map[graph.Surface]float64 // absent surface = no penalty

	NarrowWidth    Penalty // known width below MinWidthMeters
	MinWidthMeters float64 // 0 disables the width predicate

	Crossing Penalty // edge is a roadway crossing

	RouteColor string // hex color for map display
	Advisory   string // shown to the user alongside the route, may be empty
}

// Validate checks the profile definition. Every factor must be at least 1 so
// that a composed edge weight can never drop below the edge's physical
// length; the search heuristic's admissibility rests on that bound.
func (p Profile) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidProfile)
	}
	if !(p.SpeedMetersPerMinute > 0) {
		return fmt.Errorf("%w: %s: walking speed must be positive", ErrInvalidProfile, p.ID)
	}
	if p.StrideMeters < 0 {
		return fmt.Errorf("%w: %s: negative stride length", ErrInvalidProfile, p.ID)
	}
	if p.InclineThreshold < 0 {
		return fmt.Errorf("%w: %s: negative incline threshold", ErrInvalidProfile, p.ID)
	}
	if p.MinWidthMeters < 0 {
		return fmt.Errorf("%w: %s: negative minimum width", ErrInvalidProfile, p.ID)
	}

	checks := []struct {
		name string
		pen  Penalty
	}{
		{"stairs", p.Stairs},
		{"stairs-without-ramp", p.StairsWithoutRamp},
		{"incline", p.Incline},
		{"narrow-width", p.NarrowWidth},
		{"crossing", p.Crossing},
	}
	for _, c := range checks {
		if err := c.pen.validate(c.name); err != nil {
			return fmt.Errorf("%s: %w", p.ID, err)
		}
	}
	for surface, f := range p.SurfaceFactors {
		if f < 1 {
			return fmt.Errorf("%w: %s: surface %s factor %g is below 1",
				ErrInvalidProfile, p.ID, surface, f)
		}
	}
	return nil
}
