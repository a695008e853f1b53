// Package geo validates coordinates and matches them by great-circle distance.
package geo

// GeoJSON geometry types in use.
const (
	GeometryPoint      = "Point"
	GeometryLineString = "LineString"
)

// GeoJSONFeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type" yaml:"type"`
	Features []GeoJSONFeature `json:"features" yaml:"features"`
}

// GeoJSONFeature represents a single geographic feature with geometry and properties.
type GeoJSONFeature struct {
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Type       string                 `json:"type" yaml:"type"`
	Geometry   GeoJSONGeometry        `json:"geometry" yaml:"geometry"`
}

// GeoJSONGeometry represents the geometry of a feature.
// Coordinates is [lon, lat] for a Point and [[lon, lat], ...] for a LineString.
type GeoJSONGeometry struct {
	Type        string      `json:"type" yaml:"type"`
	Coordinates interface{} `json:"coordinates" yaml:"coordinates"`
}

// NewFeatureCollection returns an empty collection with room for n features.
func NewFeatureCollection(n int) GeoJSONFeatureCollection {
	return GeoJSONFeatureCollection{Type: "FeatureCollection", Features: make([]GeoJSONFeature, 0, n)}
}

// PointFeature builds a Point feature for c.
func PointFeature(c Coordinate, props map[string]interface{}) GeoJSONFeature {
	return GeoJSONFeature{
		Type: "Feature",
		Geometry: GeoJSONGeometry{
			Type:        GeometryPoint,
			Coordinates: c.LonLat(),
		},
		Properties: props,
	}
}

// LineFeature builds a LineString feature through the given coordinates.
func LineFeature(props map[string]interface{}, path ...Coordinate) GeoJSONFeature {
	coords := make([][]float64, 0, len(path))
	for _, c := range path {
		coords = append(coords, c.LonLat())
	}

	return GeoJSONFeature{
		Type: "Feature",
		Geometry: GeoJSONGeometry{
			Type:        GeometryLineString,
			Coordinates: coords,
		},
		Properties: props,
	}
}
