package osm

import (
	"testing"

	"github.com/paulmach/osm"

	"access_router/pkg/graph"
)

func TestIsWalkable(t *testing.T) {
	tests := []struct {
		name string
		tags osm.Tags
		want bool
	}{
		{
			name: "footway",
			tags: osm.Tags{{Key: "highway", Value: "footway"}},
			want: true,
		},
		{
			name: "steps",
			tags: osm.Tags{{Key: "highway", Value: "steps"}},
			want: true,
		},
		{
			name: "residential road",
			tags: osm.Tags{{Key: "highway", Value: "residential"}},
			want: true,
		},
		{
			name: "motorway",
			tags: osm.Tags{{Key: "highway", Value: "motorway"}},
			want: false,
		},
		{
			name: "cycleway",
			tags: osm.Tags{{Key: "highway", Value: "cycleway"}},
			want: false,
		},
		{
			name: "private access",
			tags: osm.Tags{
				{Key: "highway", Value: "footway"},
				{Key: "access", Value: "private"},
			},
			want: false,
		},
		{
			name: "foot=no",
			tags: osm.Tags{
				{Key: "highway", Value: "path"},
				{Key: "foot", Value: "no"},
			},
			want: false,
		},
		{
			name: "area=yes (plaza outline)",
			tags: osm.Tags{
				{Key: "highway", Value: "pedestrian"},
				{Key: "area", Value: "yes"},
			},
			want: false,
		},
		{
			name: "no highway tag",
			tags: osm.Tags{{Key: "surface", Value: "paved"}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isWalkable(tt.tags); got != tt.want {
				t.Errorf("isWalkable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseIncline(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"no", 0},
		{"flat", 0},
		{"5%", 0.05},
		{"-8%", -0.08},
		{"12.5%", 0.125},
		{"up", 0.10},
		{"down", -0.10},
		{"steep", 0},
	}

	for _, tt := range tests {
		if got := parseIncline(tt.in); got != tt.want {
			t.Errorf("parseIncline(%q) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestParseSurface(t *testing.T) {
	tests := []struct {
		in   string
		want graph.Surface
	}{
		{"asphalt", graph.SurfacePaved},
		{"concrete", graph.SurfacePaved},
		{"dirt", graph.SurfaceUnpaved},
		{"grass", graph.SurfaceUnpaved},
		{"cobblestone", graph.SurfaceIrregular},
		{"gravel", graph.SurfaceIrregular},
		{"", graph.SurfaceUnknown},
		{"metal", graph.SurfaceUnknown},
	}

	for _, tt := range tests {
		if got := parseSurface(tt.in); got != tt.want {
			t.Errorf("parseSurface(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseWidth(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"1.5", 1.5},
		{"1.5 m", 1.5},
		{"2m", 2},
		{"narrow", 0},
		{"-3", 0},
	}

	for _, tt := range tests {
		if got := parseWidth(tt.in); got != tt.want {
			t.Errorf("parseWidth(%q) = %g, want %g", tt.in, got, tt.want)
		}
	}
}

func TestWayAttrs(t *testing.T) {
	tags := osm.Tags{
		{Key: "highway", Value: "steps"},
		{Key: "ramp:wheelchair", Value: "yes"},
		{Key: "incline", Value: "10%"},
		{Key: "surface", Value: "concrete"},
		{Key: "width", Value: "1.2"},
	}

	got := wayAttrs(tags)
	if !got.HasStairs {
		t.Error("HasStairs = false, want true")
	}
	if !got.HasRamp {
		t.Error("HasRamp = false, want true")
	}
	if got.InclineGrade != 0.10 {
		t.Errorf("InclineGrade = %g, want 0.10", got.InclineGrade)
	}
	if got.Surface != graph.SurfacePaved {
		t.Errorf("Surface = %v, want paved", got.Surface)
	}
	if got.WidthMeters != 1.2 {
		t.Errorf("WidthMeters = %g, want 1.2", got.WidthMeters)
	}
	if got.IsCrosswalk {
		t.Error("IsCrosswalk = true, want false")
	}
}

func TestIsCrossing(t *testing.T) {
	crossing := osm.Tags{
		{Key: "highway", Value: "footway"},
		{Key: "footway", Value: "crossing"},
	}
	if !isCrossing(crossing) {
		t.Error("footway=crossing not detected")
	}

	tagged := osm.Tags{
		{Key: "highway", Value: "footway"},
		{Key: "crossing", Value: "marked"},
	}
	if !isCrossing(tagged) {
		t.Error("crossing=marked not detected")
	}

	plain := osm.Tags{{Key: "highway", Value: "footway"}}
	if isCrossing(plain) {
		t.Error("plain footway flagged as crossing")
	}
}

func TestNodeCategory(t *testing.T) {
	parking := osm.Tags{{Key: "amenity", Value: "parking"}}
	if got := nodeCategory(parking); got != graph.CategoryParking {
		t.Errorf("parking node = %v", got)
	}

	entrance := osm.Tags{{Key: "entrance", Value: "main"}}
	if got := nodeCategory(entrance); got != graph.CategoryBuilding {
		t.Errorf("entrance node = %v", got)
	}

	plain := osm.Tags{}
	if got := nodeCategory(plain); got != graph.CategoryWaypoint {
		t.Errorf("plain node = %v", got)
	}
}

func TestBBoxContains(t *testing.T) {
	b := BBox{MinLat: -3.78, MaxLat: -3.76, MinLng: -38.49, MaxLng: -38.47}

	if !b.Contains(-3.77, -38.48) {
		t.Error("interior point reported outside")
	}
	if b.Contains(-3.75, -38.48) {
		t.Error("exterior point reported inside")
	}
	if b.IsZero() {
		t.Error("non-zero bbox reported zero")
	}
	if !(BBox{}).IsZero() {
		t.Error("zero bbox not reported zero")
	}
}
