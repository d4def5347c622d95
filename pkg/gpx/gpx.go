// Package gpx serializes route polylines as GPX 1.1 tracks for use in
// navigation apps and GPS devices.
package gpx

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/paulmach/orb"
)

const (
	xmlns   = "http://www.topografix.com/GPX/1/1"
	creator = "access_router"
)

type gpxFile struct {
	XMLName xml.Name `xml:"gpx"`
	Version string   `xml:"version,attr"`
	Creator string   `xml:"creator,attr"`
	Xmlns   string   `xml:"xmlns,attr"`
	Trk     track    `xml:"trk"`
}

type track struct {
	Name string  `xml:"name,omitempty"`
	Seg  segment `xml:"trkseg"`
}

type segment struct {
	Points []trackPoint `xml:"trkpt"`
}

type trackPoint struct {
	Lat float64 `xml:"lat,attr"`
	Lon float64 `xml:"lon,attr"`
}

// Write serializes the polyline as a single-segment GPX track. The line
// follows orb's lon/lat point order; GPX wants lat/lon attributes, the
// conversion happens here and nowhere else.
func Write(w io.Writer, name string, line orb.LineString) error {
	points := make([]trackPoint, len(line))
	for i, p := range line {
		points[i] = trackPoint{Lat: p.Lat(), Lon: p.Lon()}
	}

	doc := gpxFile{
		Version: "1.1",
		Creator: creator,
		Xmlns:   xmlns,
		Trk: track{
			Name: name,
			Seg:  segment{Points: points},
		},
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write gpx header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode gpx: %w", err)
	}
	return enc.Close()
}
