// Package pointset reads and writes named coordinate sets in several file formats.
package pointset

import (
	"fmt"

	"github.com/woozymasta/geomatch/internal/geo"
)

// Point is a raw, not yet validated, coordinate record.
type Point struct {
	Name string  `json:"name,omitempty" yaml:"name,omitempty"`
	Lat  float64 `json:"lat" yaml:"lat"`
	Lon  float64 `json:"lon" yaml:"lon"`
}

// RecordError locates an invalid record inside a set.
type RecordError struct {
	Err   error
	Name  string
	Index int
}

func (e *RecordError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("point #%d %q: %v", e.Index+1, e.Name, e.Err)
	}

	return fmt.Sprintf("point #%d: %v", e.Index+1, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Coordinates validates every point and returns the coordinate set in order.
// It stops at the first invalid point.
func Coordinates(points []Point) ([]geo.Coordinate, error) {
	coords := make([]geo.Coordinate, 0, len(points))
	for i, p := range points {
		c, err := geo.Validate(p.Lat, p.Lon)
		if err != nil {
			return nil, &RecordError{Index: i, Name: p.Name, Err: err}
		}
		coords = append(coords, c)
	}

	return coords, nil
}

// Names returns the point names, index aligned with the set.
func Names(points []Point) []string {
	names := make([]string, len(points))
	for i, p := range points {
		names[i] = p.Name
	}

	return names
}

// FromCoordinates wraps plain coordinates as unnamed points.
func FromCoordinates(coords []geo.Coordinate) []Point {
	points := make([]Point, len(coords))
	for i, c := range coords {
		points[i] = Point{Lat: c.Lat, Lon: c.Lon}
	}

	return points
}
