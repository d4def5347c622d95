// Package poi loads named points of interest from the plain-text catalog
// format used by campus deployments:
//
//	---Buildings---
//	Library: -3.76951, -38.47847
//	---Parking---
//	North Lot: -3.76930, -38.47901
//
// Section headers group entries into categories; each entry is a display
// name and a lat, lon pair.
package poi

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
)

// ErrUnknownPOI is returned when a name is not in the catalog.
var ErrUnknownPOI = errors.New("poi: unknown point of interest")

// Point is one named point of interest.
type Point struct {
	Name     string
	Category string
	Location orb.Point // lon/lat
}

// Catalog is a read-only set of points of interest. Lookup is by exact
// display name.
type Catalog struct {
	byName     map[string]Point
	order      []string
	categories []string
}

// Parse reads the catalog format from r. Malformed lines are logged and
// skipped rather than failing the whole file; a hand-edited catalog with one
// typo should still load. Entries before any section header get the empty
// category.
func Parse(r io.Reader) (*Catalog, error) {
	c := &Catalog{byName: make(map[string]Point)}
	seenCategory := make(map[string]bool)

	category := ""
	lineNo := 0

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "---") && strings.HasSuffix(line, "---") {
			category = strings.TrimSpace(strings.Trim(line, "-"))
			if category != "" && !seenCategory[category] {
				seenCategory[category] = true
				c.categories = append(c.categories, category)
			}
			continue
		}

		name, lat, lon, err := parseEntry(line)
		if err != nil {
			log.Printf("Warning: skipping catalog line %d: %v", lineNo, err)
			continue
		}
		if _, dup := c.byName[name]; dup {
			log.Printf("Warning: duplicate entry %q on line %d, keeping the first", name, lineNo)
			continue
		}

		c.byName[name] = Point{
			Name:     name,
			Category: category,
			Location: orb.Point{lon, lat},
		}
		c.order = append(c.order, name)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	return c, nil
}

// Load reads a catalog file from disk.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// parseEntry splits "Name: lat, lon" into its parts.
func parseEntry(line string) (name string, lat, lon float64, err error) {
	name, coords, ok := strings.Cut(line, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return "", 0, 0, fmt.Errorf("no name separator in %q", line)
	}

	latStr, lonStr, ok := strings.Cut(coords, ",")
	if !ok {
		return "", 0, 0, fmt.Errorf("no coordinate pair in %q", line)
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("bad latitude in %q", line)
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(lonStr), 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("bad longitude in %q", line)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return "", 0, 0, fmt.Errorf("coordinates out of range in %q", line)
	}

	return name, lat, lon, nil
}

// Get returns the point registered under name, or ErrUnknownPOI.
func (c *Catalog) Get(name string) (Point, error) {
	p, ok := c.byName[name]
	if !ok {
		return Point{}, fmt.Errorf("%w: %q", ErrUnknownPOI, name)
	}
	return p, nil
}

// Points returns all points in file order.
func (c *Catalog) Points() []Point {
	out := make([]Point, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.byName[name])
	}
	return out
}

// Categories returns the section names in file order.
func (c *Catalog) Categories() []string {
	return append([]string(nil), c.categories...)
}

// Len returns the number of points in the catalog.
func (c *Catalog) Len() int { return len(c.order) }
