// Package report renders match results for humans and machines.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/woozymasta/geomatch/internal/geo"

	"github.com/tdewolff/minify/v2"
	minjson "github.com/tdewolff/minify/v2/json"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatCSV     = "csv"
	FormatGeoJSON = "geojson"
)

const jsonMime = "application/json"

// Options control rendering.
type Options struct {
	Format string
	// SourceNames and TargetNames are index aligned with the matched sets, optional.
	SourceNames []string
	TargetNames []string
	// Precision is the number of decimals for distances in text and csv output.
	Precision int
	// Compact minifies json and geojson output.
	Compact bool
}

// Entry is a match result with the names of both points.
type Entry struct {
	SourceName string         `json:"source_name,omitempty" yaml:"source_name,omitempty"`
	TargetName string         `json:"target_name,omitempty" yaml:"target_name,omitempty"`
	Source     geo.Coordinate `json:"source" yaml:"source"`
	Target     geo.Coordinate `json:"target" yaml:"target"`
	DistanceKm float64        `json:"distance_km" yaml:"distance_km"`
}

// Write renders results to w.
func Write(w io.Writer, results []geo.MatchResult, opts Options) error {
	entries := Entries(results, opts.SourceNames, opts.TargetNames)

	switch opts.Format {
	case "", FormatText:
		return writeText(w, entries, opts.Precision)
	case FormatJSON:
		return writeJSON(w, entries, opts.Compact)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	case FormatCSV:
		return writeCSV(w, entries, opts.Precision)
	case FormatGeoJSON:
		return writeJSON(w, GeoJSON(entries), opts.Compact)
	}

	return fmt.Errorf("unsupported report format %q", opts.Format)
}

// Entries attaches names to results. Missing names are left empty.
func Entries(results []geo.MatchResult, sourceNames, targetNames []string) []Entry {
	entries := make([]Entry, len(results))
	for i, r := range results {
		entries[i] = Entry{
			SourceName: nameAt(sourceNames, i),
			TargetName: nameAt(targetNames, r.TargetIndex),
			Source:     r.Source,
			Target:     r.Target,
			DistanceKm: r.DistanceKm,
		}
	}

	return entries
}

func nameAt(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return ""
	}

	return names[i]
}

// writeText prints one line per match in the form
// "Point (lat, lon) is closest to (lat, lon) with a distance of X km".
func writeText(w io.Writer, entries []Entry, precision int) error {
	for _, e := range entries {
		line := fmt.Sprintf("Point %s%s is closest to %s%s with a distance of %s km\n",
			e.Source, label(e.SourceName),
			e.Target, label(e.TargetName),
			formatKm(e.DistanceKm, precision))

		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}

	return nil
}

func label(name string) string {
	if name == "" {
		return ""
	}

	return " [" + name + "]"
}

func formatKm(km float64, precision int) string {
	if precision < 0 {
		precision = 2
	}

	return strconv.FormatFloat(km, 'f', precision, 64)
}

func writeCSV(w io.Writer, entries []Entry, precision int) error {
	cw := csv.NewWriter(w)
	header := []string{"source_lat", "source_lon", "source_name", "target_lat", "target_lon", "target_name", "distance_km"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, e := range entries {
		rec := []string{
			strconv.FormatFloat(e.Source.Lat, 'f', -1, 64),
			strconv.FormatFloat(e.Source.Lon, 'f', -1, 64),
			e.SourceName,
			strconv.FormatFloat(e.Target.Lat, 'f', -1, 64),
			strconv.FormatFloat(e.Target.Lon, 'f', -1, 64),
			e.TargetName,
			formatKm(e.DistanceKm, precision),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, v interface{}, compact bool) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}

	if !compact {
		_, err := w.Write(buf.Bytes())
		return err
	}

	m := minify.New()
	m.AddFunc(jsonMime, minjson.Minify)

	if err := m.Minify(jsonMime, w, &buf); err != nil {
		return fmt.Errorf("minify json: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// GeoJSON builds a FeatureCollection with one LineString per match plus the
// source and target points.
func GeoJSON(entries []Entry) geo.GeoJSONFeatureCollection {
	fc := geo.NewFeatureCollection(len(entries) * 3)

	for i, e := range entries {
		fc.Features = append(fc.Features,
			geo.LineFeature(map[string]interface{}{
				"role":        "match",
				"index":       i,
				"distance_km": e.DistanceKm,
				"source_name": e.SourceName,
				"target_name": e.TargetName,
			}, e.Source, e.Target),
			geo.PointFeature(e.Source, map[string]interface{}{
				"role":  "source",
				"index": i,
				"name":  e.SourceName,
			}),
			geo.PointFeature(e.Target, map[string]interface{}{
				"role":  "target",
				"index": i,
				"name":  e.TargetName,
			}),
		)
	}

	return fc
}
