package routing

import (
	"access_router/pkg/graph"
	"access_router/pkg/profile"
)

// EdgeWeight returns the profile-adjusted traversal cost of an edge, or
// feasible=false when the profile can never use it.
//
// The weight is the edge's physical length multiplied by every matching
// penalty factor. Predicates are evaluated in a fixed order so an infeasible
// match short-circuits deterministically:
//
//	1. stairs (factor or infeasible)
//	2. stairs without a ramp (StairsNeedRamp flag, then stacked factor)
//	3. incline beyond the profile threshold
//	4. penalized surface
//	5. known width below the profile minimum
//	6. roadway crossing
//
// Feasibility is decided purely by this edge's own attributes; a ramp on a
// sibling edge never rescues a stairs edge. The function is pure and safe to
// call from any number of concurrent searches.
//
// Invariant: the returned weight is always >= e.LengthMeters, because every
// validated factor is >= 1. The search heuristic's admissibility depends on
// this lower bound.
func EdgeWeight(e *graph.Edge, p *profile.Profile) (weight float64, feasible bool) {
	factor := 1.0

	if e.HasStairs {
		if p.Stairs.Infeasible {
			return 0, false
		}
		factor *= p.Stairs.Factor

		if !e.HasRamp {
			if p.StairsNeedRamp || p.StairsWithoutRamp.Infeasible {
				return 0, false
			}
			factor *= p.StairsWithoutRamp.Factor
		}
	}

	grade := e.InclineGrade
	if grade < 0 {
		grade = -grade
	}
	if grade > p.InclineThreshold {
		if p.Incline.Infeasible {
			return 0, false
		}
		factor *= p.Incline.Factor
	}

	if f, ok := p.SurfaceFactors[e.Surface]; ok {
		factor *= f
	}

	if p.MinWidthMeters > 0 && e.WidthMeters > 0 && e.WidthMeters < p.MinWidthMeters {
		if p.NarrowWidth.Infeasible {
			return 0, false
		}
		factor *= p.NarrowWidth.Factor
	}

	if e.IsCrosswalk {
		if p.Crossing.Infeasible {
			return 0, false
		}
		factor *= p.Crossing.Factor
	}

	return e.LengthMeters * factor, true
}
