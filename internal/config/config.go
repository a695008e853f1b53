// Package config handles the YAML job file describing what to match.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/woozymasta/geomatch/internal/pointset"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the job file nor flags set a value.
const (
	DefaultFormat       = "text"
	DefaultPrecision    = 2
	DefaultPreviewWidth = 1024
)

// Config represents the root job file structure.
type Config struct {
	Sources Set     `yaml:"sources"`
	Targets Set     `yaml:"targets"`
	Output  Output  `yaml:"output,omitempty"`
	Preview Preview `yaml:"preview,omitempty"`
}

// Set is a point set, either defined inline or read from a file.
type Set struct {
	// defining points directly in the job file
	Inline []pointset.Point `yaml:"points,omitempty"`

	File   string `yaml:"file,omitempty"`
	Format string `yaml:"format,omitempty"` // detected from the file extension when empty
}

// Output controls how results are written.
type Output struct {
	Precision *int   `yaml:"precision,omitempty"`
	Format    string `yaml:"format,omitempty"`
	File      string `yaml:"file,omitempty"`
	Compact   bool   `yaml:"compact,omitempty"`
}

// Preview controls the optional WebP preview.
type Preview struct {
	File       string `yaml:"file,omitempty"`
	Background string `yaml:"background,omitempty"`
	Width      int    `yaml:"width,omitempty"`
}

// Load reads and parses the YAML job file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	// relative paths in the job file are relative to the job file itself
	dir := filepath.Dir(path)
	cfg.Sources.File = resolvePath(dir, cfg.Sources.File)
	cfg.Targets.File = resolvePath(dir, cfg.Targets.File)
	cfg.Output.File = resolvePath(dir, cfg.Output.File)
	cfg.Preview.File = resolvePath(dir, cfg.Preview.File)
	cfg.Preview.Background = resolvePath(dir, cfg.Preview.Background)

	return &cfg, nil
}

func resolvePath(dir, p string) string {
	if p == "" || pointset.IsStdin(p) || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(dir, p)
}

// ApplyDefaults fills unset output and preview settings.
func (c *Config) ApplyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}
	if c.Output.Precision == nil {
		p := DefaultPrecision
		c.Output.Precision = &p
	}
	if c.Preview.Width <= 0 {
		c.Preview.Width = DefaultPreviewWidth
	}
}

// FromStdin reports whether the set is read from standard input ("-").
func (s Set) FromStdin() bool {
	return s.Inline == nil && s.File == "-"
}

// Points returns the set's points, inline data taking priority over the file.
// A "-" file is decoded from stdin. ok is false when the set defines neither.
func (s Set) Points(stdin io.Reader) (points []pointset.Point, ok bool, err error) {
	if s.Inline != nil {
		return s.Inline, true, nil
	}
	if s.File == "" {
		return nil, false, nil
	}

	points, err = pointset.LoadFrom(stdin, s.File, s.Format)
	return points, true, err
}
