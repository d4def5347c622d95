package profile

import "access_router/pkg/graph"

// roughSurfaces penalizes loose or broken ground for travelers who depend
// on a smooth rolling or stepping surface.
func roughSurfaces(factor float64) map[graph.Surface]float64 {
	return map[graph.Surface]float64{
		graph.SurfaceUnpaved:   factor,
		graph.SurfaceIrregular: factor,
	}
}

// Default returns a registry with the built-in traveler profiles.
func Default() (*Registry, error) {
	return NewRegistry(
		Profile{
			ID:                   "standard",
			Name:                 "Unrestricted adult",
			Description:          "Adult with full mobility",
			SpeedMetersPerMinute: 80, // ~4.8 km/h
			StrideMeters:         0.75,
			Stairs:               None(),
			StairsWithoutRamp:    None(),
			Incline:              None(),
			InclineThreshold:     0.05,
			NarrowWidth:          None(),
			Crossing:             None(),
			RouteColor:           "#DC143C",
		},
		Profile{
			ID:                   "wheelchair",
			Name:                 "Wheelchair user",
			Description:          "Requires fully step-free routes",
			SpeedMetersPerMinute: 50, // ~3 km/h
			Stairs:               Infeasible(),
			StairsWithoutRamp:    Infeasible(),
			StairsNeedRamp:       true,
			Incline:              Factor(3),
			InclineThreshold:     0.05,
			SurfaceFactors:       roughSurfaces(2),
			NarrowWidth:          Factor(1.5),
			MinWidthMeters:       1.5,
			Crossing:             Factor(5),
			RouteColor:           "#0066CC",
			Advisory:             "Route optimized for accessibility: stairs are excluded and ramps preferred.",
		},
		Profile{
			ID:                   "elderly",
			Name:                 "Elderly",
			Description:          "Older adult with reduced mobility",
			SpeedMetersPerMinute: 60, // ~3.6 km/h
			StrideMeters:         0.60,
			Stairs:               Factor(8),
			StairsWithoutRamp:    Factor(3),
			Incline:              Factor(4),
			InclineThreshold:     0.05,
			SurfaceFactors:       roughSurfaces(2),
			NarrowWidth:          None(),
			Crossing:             Factor(3),
			RouteColor:           "#FF8C00",
			Advisory:             "Route optimized for safety: avoids stairs and steep inclines.",
		},
		Profile{
			ID:                   "pregnant",
			Name:                 "Pregnant traveler",
			Description:          "Comfort and safety over shortest distance",
			SpeedMetersPerMinute: 65, // ~3.9 km/h
			StrideMeters:         0.65,
			Stairs:               Factor(5),
			StairsWithoutRamp:    Factor(2.5),
			Incline:              Factor(3),
			InclineThreshold:     0.05,
			NarrowWidth:          None(),
			Crossing:             Factor(2.5),
			RouteColor:           "#FF69B4",
			Advisory:             "More comfortable route: avoids stairs and excessive effort.",
		},
		Profile{
			ID:                   "stroller",
			Name:                 "Child or stroller companion",
			Description:          "Small child or adult pushing a stroller",
			SpeedMetersPerMinute: 55, // ~3.3 km/h
			StrideMeters:         0.50,
			Stairs:               Factor(10),
			StairsWithoutRamp:    Factor(6),
			Incline:              Factor(2.5),
			InclineThreshold:     0.05,
			NarrowWidth:          None(),
			Crossing:             Factor(4),
			RouteColor:           "#9370DB",
			Advisory:             "Stroller-friendly route: avoids stairs and prioritizes safe crossings.",
		},
		Profile{
			ID:                   "temporary",
			Name:                 "Temporarily impaired",
			Description:          "Temporary injury (crutches, orthopedic boot)",
			SpeedMetersPerMinute: 55, // ~3.3 km/h
			StrideMeters:         0.55,
			Stairs:               Factor(12),
			StairsWithoutRamp:    Factor(4),
			Incline:              Factor(5),
			InclineThreshold:     0.05,
			SurfaceFactors:       roughSurfaces(2),
			NarrowWidth:          Factor(1.5),
			MinWidthMeters:       1.5,
			Crossing:             Factor(2.5),
			RouteColor:           "#FFD700",
			Advisory:             "Route adapted for recovery: minimizes obstacles and effort.",
		},
		Profile{
			ID:                   "obese",
			Name:                 "Traveler with obesity",
			Description:          "Reduced physical endurance; fatigue builds quickly",
			SpeedMetersPerMinute: 58, // ~3.5 km/h
			StrideMeters:         0.68,
			Stairs:               Factor(9),
			StairsWithoutRamp:    Factor(3.5),
			Incline:              Factor(6),
			InclineThreshold:     0.05,
			SurfaceFactors:       roughSurfaces(2),
			NarrowWidth:          None(),
			Crossing:             Factor(2),
			RouteColor:           "#FF6347",
			Advisory:             "Route optimized for comfort: avoids stairs and steep climbs to reduce fatigue.",
		},
	)
}
