package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/woozymasta/geomatch/internal/config"
	"github.com/woozymasta/geomatch/internal/geo"
	"github.com/woozymasta/geomatch/internal/logger"
	"github.com/woozymasta/geomatch/internal/pointset"
	"github.com/woozymasta/geomatch/internal/prompt"
	"github.com/woozymasta/geomatch/internal/render"
	"github.com/woozymasta/geomatch/internal/report"

	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog/log"
)

type Options struct {
	Logger logger.Logger `group:"Logger options"`

	ConfigFile    string `short:"c" long:"config"         env:"GEOMATCH_CONFIG" description:"Path to YAML job file"`
	Sources       string `short:"s" long:"sources"        env:"GEOMATCH_SOURCES" description:"Source points file, '-' for stdin. Prompted interactively when unset"`
	SourcesFormat string `long:"sources-format"           description:"Source points format" choice:"csv" choice:"json" choice:"yaml" choice:"geojson"`
	Targets       string `short:"t" long:"targets"        env:"GEOMATCH_TARGETS" description:"Target points file, '-' for stdin. Prompted interactively when unset"`
	TargetsFormat string `long:"targets-format"           description:"Target points format" choice:"csv" choice:"json" choice:"yaml" choice:"geojson"`
	Format        string `short:"f" long:"format"         description:"Output format" choice:"text" choice:"json" choice:"yaml" choice:"csv" choice:"geojson"`
	Output        string `short:"o" long:"out"            description:"Output file path. Writes to stdout if empty"`
	Precision     int    `short:"p" long:"precision"      description:"Distance decimals for text and csv output, -1 keeps job file or default" default:"-1"`
	Compact       bool   `long:"compact"                  description:"Minify json and geojson output"`
	Preview       string `long:"preview"                  description:"Write a WebP preview image to this path"`
	PreviewBG     string `long:"preview-background"       description:"Equirectangular world image used as preview background"`
	PreviewWidth  int    `long:"preview-width"            description:"Preview width in pixels"`
	MaxAttempts   int    `long:"max-attempts"             env:"GEOMATCH_MAX_ATTEMPTS" description:"Abort interactive input after this many invalid entries in a row, 0 is unlimited" default:"0"`
}

func main() {
	var opts Options
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	opts.Logger.Setup()

	if err := run(opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, geo.ErrEmptyTargetSet) {
			log.Fatal().Err(err).Msg("Nothing to match against, provide at least one target point")
		}
		log.Fatal().Err(err).Msg("Matching failed")
	}
}

// run resolves both point sets, matches them and writes the report.
// Sets not given by flags or the job file are prompted for on stdin.
func run(opts Options, stdin io.Reader, stdout, promptOut io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	// prompts and a "-" set share one reader, the prompter consumes only the lines it answers
	in := bufio.NewReader(stdin)
	asker := prompt.New(in, promptOut)
	asker.MaxAttempts = opts.MaxAttempts

	sets := []*namedSet{
		{name: "sources", title: "Input coordinates for the first array:", set: cfg.Sources},
		{name: "targets", title: "Input coordinates for the second array:", set: cfg.Targets},
	}

	// a set piped on stdin takes whatever is left after the prompted answers
	for _, readStdin := range []bool{false, true} {
		for _, ns := range sets {
			if ns.set.FromStdin() != readStdin {
				continue
			}
			if ns.points, err = resolveSet(ns.set, in, asker, ns.title); err != nil {
				return fmt.Errorf("%s: %w", ns.name, err)
			}
		}
	}
	srcPoints, dstPoints := sets[0].points, sets[1].points

	sources, err := pointset.Coordinates(srcPoints)
	if err != nil {
		return fmt.Errorf("sources: %w", err)
	}
	targets, err := pointset.Coordinates(dstPoints)
	if err != nil {
		return fmt.Errorf("targets: %w", err)
	}

	log.Info().
		Int("sources", len(sources)).
		Int("targets", len(targets)).
		Msg("Starting match")

	results, err := geo.MatchAll(sources, targets)
	if err != nil {
		return err
	}

	if err := writeReport(cfg.Output, stdout, results, srcPoints, dstPoints); err != nil {
		return err
	}

	summary := report.Summarize(results)
	log.Info().
		Int("matches", summary.Count).
		Float64("min_km", summary.MinKm).
		Float64("max_km", summary.MaxKm).
		Float64("mean_km", summary.MeanKm).
		Msg("Match finished")

	if cfg.Preview.File != "" {
		if err := writePreview(cfg.Preview, results, targets); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
	}

	return nil
}

// loadConfig reads the job file when given and lets flags override it.
func loadConfig(opts Options) (*config.Config, error) {
	cfg := &config.Config{}
	if opts.ConfigFile != "" {
		loaded, err := config.Load(opts.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("load configuration: %w", err)
		}
		cfg = loaded
	}

	if opts.Sources != "" {
		cfg.Sources = config.Set{File: opts.Sources, Format: opts.SourcesFormat}
	}
	if opts.Targets != "" {
		cfg.Targets = config.Set{File: opts.Targets, Format: opts.TargetsFormat}
	}

	if opts.Format != "" {
		cfg.Output.Format = opts.Format
	}
	if opts.Output != "" {
		cfg.Output.File = opts.Output
	}
	if opts.Precision >= 0 {
		p := opts.Precision
		cfg.Output.Precision = &p
	}
	if opts.Compact {
		cfg.Output.Compact = true
	}
	if opts.Preview != "" {
		cfg.Preview.File = opts.Preview
	}
	if opts.PreviewBG != "" {
		cfg.Preview.Background = opts.PreviewBG
	}
	if opts.PreviewWidth > 0 {
		cfg.Preview.Width = opts.PreviewWidth
	}

	if cfg.Sources.FromStdin() && cfg.Targets.FromStdin() {
		return nil, errors.New("only one of sources and targets can be read from stdin")
	}

	cfg.ApplyDefaults()

	return cfg, nil
}

type namedSet struct {
	name   string
	title  string
	set    config.Set
	points []pointset.Point
}

func resolveSet(set config.Set, stdin io.Reader, asker *prompt.Prompter, title string) ([]pointset.Point, error) {
	points, ok, err := set.Points(stdin)
	if err != nil {
		return nil, err
	}
	if ok {
		return points, nil
	}

	log.Debug().Str("set", title).Msg("No point set configured, reading interactively")

	coords, err := asker.ReadSet(title)
	if err != nil {
		return nil, err
	}

	return pointset.FromCoordinates(coords), nil
}

func writeReport(out config.Output, stdout io.Writer, results []geo.MatchResult, src, dst []pointset.Point) error {
	opts := report.Options{
		Format:      out.Format,
		Precision:   *out.Precision,
		Compact:     out.Compact,
		SourceNames: pointset.Names(src),
		TargetNames: pointset.Names(dst),
	}

	if out.File == "" {
		return report.Write(stdout, results, opts)
	}

	f, err := os.Create(out.File)
	if err != nil {
		return err
	}

	if err := report.Write(f, results, opts); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.Info().
		Str("path", out.File).
		Str("format", out.Format).
		Int("matches", len(results)).
		Msg("Report written")

	return nil
}

func writePreview(p config.Preview, results []geo.MatchResult, targets []geo.Coordinate) error {
	opts := render.Options{Width: p.Width}

	if p.Background != "" {
		bg, err := render.LoadBackground(p.Background)
		if err != nil {
			return err
		}
		opts.Background = bg
	}

	if err := render.SaveWebP(p.File, render.Preview(results, targets, opts)); err != nil {
		return err
	}

	log.Info().Str("path", p.File).Int("width", p.Width).Msg("Preview written")

	return nil
}
