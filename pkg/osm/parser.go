// Package osm extracts a pedestrian walkway network from OSM PBF extracts.
// It keeps walkable ways only and maps accessibility-relevant tags (stairs,
// ramps, incline, surface, width, crossings) onto edge attributes.
package osm

import (
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"

	"access_router/pkg/geo"
	"access_router/pkg/graph"
)

// ParseResult holds the walkway network parsed from a PBF extract, keyed by
// original OSM node ids. Feed it to graph.Build to get a routable graph.
type ParseResult struct {
	Nodes map[int64]graph.RawNode
	Edges []graph.RawEdge
}

// walkHighways lists highway tag values traversable on foot. Roads without
// sidewalk mapping (residential, service) are included: in the campus-scale
// extracts this targets, they are the only connection between footway
// clusters.
var walkHighways = map[string]bool{
	"footway":       true,
	"path":          true,
	"pedestrian":    true,
	"living_street": true,
	"residential":   true,
	"service":       true,
	"track":         true,
	"steps":         true,
	"corridor":      true,
}

// isWalkable returns true if the way is usable by pedestrians.
func isWalkable(tags osm.Tags) bool {
	if !walkHighways[tags.Find("highway")] {
		return false
	}

	// Skip area outlines (plazas map their perimeter, not a path).
	if tags.Find("area") == "yes" {
		return false
	}

	access := tags.Find("access")
	if access == "no" || access == "private" {
		return false
	}
	if tags.Find("foot") == "no" {
		return false
	}

	return true
}

// parseIncline converts an OSM incline tag to a signed grade (rise over
// run). Percent values map directly; the bare up/down markers map to a
// nominal steep grade so threshold predicates still fire on them.
func parseIncline(v string) float64 {
	switch v {
	case "", "no", "flat":
		return 0
	case "up":
		return 0.10
	case "down":
		return -0.10
	}

	s := strings.TrimSpace(strings.TrimSuffix(v, "%"))
	pct, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return pct / 100
}

var surfaceClass = map[string]graph.Surface{
	"paved":         graph.SurfacePaved,
	"asphalt":       graph.SurfacePaved,
	"concrete":      graph.SurfacePaved,
	"paving_stones": graph.SurfacePaved,

	"unpaved": graph.SurfaceUnpaved,
	"ground":  graph.SurfaceUnpaved,
	"dirt":    graph.SurfaceUnpaved,
	"earth":   graph.SurfaceUnpaved,
	"grass":   graph.SurfaceUnpaved,
	"sand":    graph.SurfaceUnpaved,
	"mud":     graph.SurfaceUnpaved,

	"cobblestone": graph.SurfaceIrregular,
	"sett":        graph.SurfaceIrregular,
	"gravel":      graph.SurfaceIrregular,
	"pebblestone": graph.SurfaceIrregular,
	"rock":        graph.SurfaceIrregular,
}

// parseSurface maps an OSM surface tag to a surface class. Unrecognized
// values stay Unknown rather than guessing a penalty.
func parseSurface(v string) graph.Surface {
	if s, ok := surfaceClass[v]; ok {
		return s
	}
	return graph.SurfaceUnknown
}

// parseWidth converts an OSM width tag to meters, 0 when absent or
// unparseable. Accepts "1.5", "1.5 m" and "1.5m" spellings.
func parseWidth(v string) float64 {
	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "m"))
	if s == "" {
		return 0
	}
	w, err := strconv.ParseFloat(s, 64)
	if err != nil || w < 0 {
		return 0
	}
	return w
}

// hasRamp reports whether the way offers a ramp alongside its stairs.
func hasRamp(tags osm.Tags) bool {
	if tags.Find("ramp") == "yes" {
		return true
	}
	if tags.Find("ramp:wheelchair") == "yes" {
		return true
	}
	return tags.Find("ramp:stroller") == "yes"
}

// isCrossing reports whether the way is a roadway crossing.
func isCrossing(tags osm.Tags) bool {
	if tags.Find("footway") == "crossing" {
		return true
	}
	return tags.Find("crossing") != ""
}

// nodeCategory classifies a node by its own tags.
func nodeCategory(tags osm.Tags) graph.Category {
	if tags.Find("amenity") == "parking" {
		return graph.CategoryParking
	}
	if tags.Find("building") != "" || tags.Find("entrance") != "" {
		return graph.CategoryBuilding
	}
	return graph.CategoryWaypoint
}

// edgeAttrs holds the per-way attributes shared by all of its segments.
type edgeAttrs struct {
	HasStairs    bool
	HasRamp      bool
	InclineGrade float64
	Surface      graph.Surface
	WidthMeters  float64
	IsCrosswalk  bool
}

func wayAttrs(tags osm.Tags) edgeAttrs {
	return edgeAttrs{
		HasStairs:    tags.Find("highway") == "steps",
		HasRamp:      hasRamp(tags),
		InclineGrade: parseIncline(tags.Find("incline")),
		Surface:      parseSurface(tags.Find("surface")),
		WidthMeters:  parseWidth(tags.Find("width")),
		IsCrosswalk:  isCrossing(tags),
	}
}

// wayInfo holds parsed way data collected during pass 1.
type wayInfo struct {
	NodeIDs []osm.NodeID
	Attrs   edgeAttrs
}

// BBox defines a geographic bounding box for filtering. If non-zero, only
// edges with both endpoints inside the box are kept.
type BBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// IsZero returns true if the bbox is unset.
func (b BBox) IsZero() bool {
	return b.MinLat == 0 && b.MaxLat == 0 && b.MinLng == 0 && b.MaxLng == 0
}

// Contains returns true if the point is inside the bounding box.
func (b BBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// ParseOptions configures the parser.
type ParseOptions struct {
	BBox BBox // if non-zero, filter edges to this bounding box
}

// Parse reads an OSM PBF file and returns the undirected walkway network.
// Each way segment yields a single edge; the graph builder expands it into
// arcs for both directions. The reader is consumed twice (seeks back to
// start for the second pass), so it must implement io.ReadSeeker.
func Parse(ctx context.Context, rs io.ReadSeeker, opts ...ParseOptions) (*ParseResult, error) {
	var opt ParseOptions
	if len(opts) > 0 {
		opt = opts[0]
	}
	useBBox := !opt.BBox.IsZero()

	// Pass 1: scan ways to collect referenced node ids and way attributes.
	referenced := make(map[osm.NodeID]struct{})
	var ways []wayInfo

	scanner := osmpbf.New(ctx, rs, 1)
	scanner.SkipNodes = true
	scanner.SkipRelations = true

	for scanner.Scan() {
		w, ok := scanner.Object().(*osm.Way)
		if !ok {
			continue
		}
		if !isWalkable(w.Tags) || len(w.Nodes) < 2 {
			continue
		}

		nodeIDs := make([]osm.NodeID, len(w.Nodes))
		for i, wn := range w.Nodes {
			nodeIDs[i] = wn.ID
			referenced[wn.ID] = struct{}{}
		}

		ways = append(ways, wayInfo{NodeIDs: nodeIDs, Attrs: wayAttrs(w.Tags)})
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("pass 1 (ways): %w", err)
	}
	scanner.Close()

	log.Printf("Pass 1 complete: %d walkable ways, %d referenced nodes", len(ways), len(referenced))

	// Pass 2: scan nodes to collect coordinates and categories for
	// referenced nodes only.
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("seek for pass 2: %w", err)
	}

	nodes := make(map[int64]graph.RawNode, len(referenced))

	scanner = osmpbf.New(ctx, rs, 1)
	scanner.SkipWays = true
	scanner.SkipRelations = true

	for scanner.Scan() {
		n, ok := scanner.Object().(*osm.Node)
		if !ok {
			continue
		}
		if _, needed := referenced[n.ID]; !needed {
			continue
		}

		nodes[int64(n.ID)] = graph.RawNode{
			Lat:      n.Lat,
			Lon:      n.Lon,
			Category: nodeCategory(n.Tags),
		}
	}
	if err := scanner.Err(); err != nil {
		scanner.Close()
		return nil, fmt.Errorf("pass 2 (nodes): %w", err)
	}
	scanner.Close()

	log.Printf("Pass 2 complete: %d node coordinates collected", len(nodes))

	// Build one undirected edge per consecutive node pair.
	var edges []graph.RawEdge
	var skipped, bboxFiltered int

	for _, w := range ways {
		for i := 0; i < len(w.NodeIDs)-1; i++ {
			fromID := int64(w.NodeIDs[i])
			toID := int64(w.NodeIDs[i+1])

			from, fromOk := nodes[fromID]
			to, toOk := nodes[toID]
			if !fromOk || !toOk {
				skipped++
				continue
			}

			if useBBox && (!opt.BBox.Contains(from.Lat, from.Lon) || !opt.BBox.Contains(to.Lat, to.Lon)) {
				bboxFiltered++
				continue
			}

			edges = append(edges, graph.RawEdge{
				FromID:       fromID,
				ToID:         toID,
				LengthMeters: geo.Haversine(from.Lat, from.Lon, to.Lat, to.Lon),
				HasStairs:    w.Attrs.HasStairs,
				HasRamp:      w.Attrs.HasRamp,
				InclineGrade: w.Attrs.InclineGrade,
				Surface:      w.Attrs.Surface,
				WidthMeters:  w.Attrs.WidthMeters,
				IsCrosswalk:  w.Attrs.IsCrosswalk,
			})
		}
	}

	if skipped > 0 {
		log.Printf("Warning: skipped %d edges due to missing node coordinates", skipped)
	}
	if bboxFiltered > 0 {
		log.Printf("Filtered %d edges outside bounding box", bboxFiltered)
	}
	log.Printf("Built %d walkway edges", len(edges))

	return &ParseResult{Nodes: nodes, Edges: edges}, nil
}
