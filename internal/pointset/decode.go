package pointset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/geomatch/internal/geo"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Load reads a point set from path, or from os.Stdin when path is empty or "-".
// When format is empty it is detected from the file extension.
func Load(path, format string) ([]Point, error) {
	return LoadFrom(os.Stdin, path, format)
}

// IsStdin reports whether path refers to standard input.
func IsStdin(path string) bool {
	return path == "" || path == "-"
}

// LoadFrom is Load with stdin standing in for standard input.
func LoadFrom(stdin io.Reader, path, format string) ([]Point, error) {
	f, err := resolveFormat(path, format)
	if err != nil {
		return nil, err
	}

	if IsStdin(path) {
		return Decode(stdin, f)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	points, err := Decode(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debug().
		Str("path", path).
		Str("format", string(f)).
		Int("points", len(points)).
		Msg("Point set loaded")

	return points, nil
}

// Decode parses a point set in the given format.
func Decode(r io.Reader, format Format) ([]Point, error) {
	switch format {
	case FormatCSV:
		return decodeCSV(r)
	case FormatJSON:
		var points []Point
		if err := json.NewDecoder(r).Decode(&points); err != nil {
			return nil, fmt.Errorf("decode json points: %w", err)
		}
		return points, nil
	case FormatYAML:
		var points []Point
		if err := yaml.NewDecoder(r).Decode(&points); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decode yaml points: %w", err)
		}
		return points, nil
	case FormatGeoJSON:
		return decodeGeoJSON(r)
	}

	return nil, fmt.Errorf("unsupported point format %q", format)
}

// decodeGeoJSON takes every Point feature of a FeatureCollection, other
// geometries are skipped. The point name comes from properties.name.
func decodeGeoJSON(r io.Reader) ([]Point, error) {
	var fc geo.GeoJSONFeatureCollection
	if err := json.NewDecoder(r).Decode(&fc); err != nil {
		return nil, fmt.Errorf("decode geojson: %w", err)
	}

	points := make([]Point, 0, len(fc.Features))
	for i, f := range fc.Features {
		if f.Geometry.Type != geo.GeometryPoint {
			log.Trace().Int("feature", i).Str("geometry", f.Geometry.Type).Msg("Skipping non-point feature")
			continue
		}

		pos, ok := f.Geometry.Coordinates.([]interface{})
		if !ok || len(pos) < 2 {
			return nil, fmt.Errorf("feature #%d: point needs [lon, lat] coordinates", i+1)
		}
		lon, okLon := pos[0].(float64)
		lat, okLat := pos[1].(float64)
		if !okLon || !okLat {
			return nil, fmt.Errorf("feature #%d: coordinates must be numbers", i+1)
		}

		name, _ := f.Properties["name"].(string)
		points = append(points, Point{Name: name, Lat: lat, Lon: lon})
	}

	return points, nil
}
