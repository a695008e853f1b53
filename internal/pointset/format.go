package pointset

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a point set file encoding.
type Format string

// Supported formats.
const (
	FormatCSV     Format = "csv"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatGeoJSON Format = "geojson"
)

// Formats lists every supported format.
var Formats = []Format{FormatCSV, FormatJSON, FormatYAML, FormatGeoJSON}

// ParseFormat converts a user supplied name (case insensitive, "yml" allowed)
// into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "geojson":
		return FormatGeoJSON, nil
	}

	return "", fmt.Errorf("unsupported point format %q", s)
}

// DetectFormat guesses the format from a file extension.
func DetectFormat(path string) (Format, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot detect point format of %q: no file extension", path)
	}

	return ParseFormat(ext)
}

// resolveFormat returns the explicit format when given, otherwise detects it from path.
func resolveFormat(path, explicit string) (Format, error) {
	if explicit != "" {
		return ParseFormat(explicit)
	}
	if IsStdin(path) {
		return "", fmt.Errorf("point format is required when reading stdin")
	}

	return DetectFormat(path)
}
