package geo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Geographic bounds, inclusive.
const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// Coordinate is a latitude/longitude pair in degrees.
// Only values returned by Validate are guaranteed to be in range.
type Coordinate struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// ValidationError reports a latitude or longitude outside geographic bounds.
type ValidationError struct {
	Field string // "latitude" or "longitude"
	Value float64
	Min   float64
	Max   float64
}

func (e *ValidationError) Error() string {
	if math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
		return fmt.Sprintf("%s must be a finite number, got %v", e.Field, e.Value)
	}

	return fmt.Sprintf("%s %v is out of range [%v, %v]", e.Field, e.Value, e.Min, e.Max)
}

// Validate checks that lat and lon are finite and inside geographic bounds
// and returns them unchanged as a Coordinate. Out of range values are never clamped.
func Validate(lat, lon float64) (Coordinate, error) {
	if !within(lat, MinLatitude, MaxLatitude) {
		return Coordinate{}, &ValidationError{Field: "latitude", Value: lat, Min: MinLatitude, Max: MaxLatitude}
	}
	if !within(lon, MinLongitude, MaxLongitude) {
		return Coordinate{}, &ValidationError{Field: "longitude", Value: lon, Min: MinLongitude, Max: MaxLongitude}
	}

	return Coordinate{Lat: lat, Lon: lon}, nil
}

// within is false for NaN, so non-finite input is rejected here too.
func within(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// String renders the coordinate as "(lat, lon)", whole degrees keep a ".0".
func (c Coordinate) String() string {
	return "(" + formatDegrees(c.Lat) + ", " + formatDegrees(c.Lon) + ")"
}

func formatDegrees(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if math.IsNaN(v) || math.IsInf(v, 0) || strings.Contains(s, ".") {
		return s
	}

	return s + ".0"
}

// LonLat returns the coordinate as a [lon, lat] pair, GeoJSON axis order.
func (c Coordinate) LonLat() []float64 { return []float64{c.Lon, c.Lat} }
