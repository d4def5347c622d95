package gpx

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRoundTrip(t *testing.T) {
	line := orb.LineString{
		{-38.47850, -3.76950}, // lon, lat
		{-38.47849, -3.76950},
		{-38.47847, -3.76951},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "Library route", line))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, xml.Header))
	assert.Contains(t, out, `version="1.1"`)
	assert.Contains(t, out, "<name>Library route</name>")

	// Decode back and check the lat/lon attribute swap.
	var got gpxFile
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got.Trk.Seg.Points, 3)
	assert.Equal(t, -3.76950, got.Trk.Seg.Points[0].Lat)
	assert.Equal(t, -38.47850, got.Trk.Seg.Points[0].Lon)
	assert.Equal(t, -3.76951, got.Trk.Seg.Points[2].Lat)
}

func TestWriteEmptyName(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "", orb.LineString{{-38.4785, -3.7695}}))
	assert.NotContains(t, buf.String(), "<name>")
}
