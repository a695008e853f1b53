package pointset

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/woozymasta/geomatch/internal/geo"

	"gopkg.in/yaml.v3"
)

// Encode writes points in the given format.
func Encode(w io.Writer, points []Point, format Format) error {
	switch format {
	case FormatCSV:
		return encodeCSV(w, points)
	case FormatJSON:
		if points == nil {
			points = []Point{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(points)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(points); err != nil {
			return err
		}
		return enc.Close()
	case FormatGeoJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(ToGeoJSON(points))
	}

	return fmt.Errorf("unsupported point format %q", format)
}

// ToGeoJSON converts points into a FeatureCollection of Point features.
func ToGeoJSON(points []Point) geo.GeoJSONFeatureCollection {
	fc := geo.NewFeatureCollection(len(points))
	for _, p := range points {
		props := map[string]interface{}{}
		if p.Name != "" {
			props["name"] = p.Name
		}
		fc.Features = append(fc.Features, geo.PointFeature(geo.Coordinate{Lat: p.Lat, Lon: p.Lon}, props))
	}

	return fc
}
