package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/woozymasta/geomatch/internal/pointset"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	Input  string `short:"i" long:"in"   description:"Input file path. Reads from stdin if empty"`
	Output string `short:"o" long:"out"  description:"Output file path. Writes to stdout if empty"`
	From   string `long:"from"           description:"Input format, detected from the file extension if empty" choice:"csv" choice:"json" choice:"yaml" choice:"geojson"`
	To     string `short:"t" long:"to"   description:"Output format" choice:"csv" choice:"json" choice:"yaml" choice:"geojson" default:"geojson"`
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

	count, err := convert(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if opts.Output != "" {
		fmt.Fprintf(os.Stderr, "Successfully converted %d points to %s (format: %s)\n", count, opts.Output, opts.To)
	}
}

// convert reads, validates and re-encodes a point set. Nothing is written
// when any point is invalid.
func convert(opts Options) (int, error) {
	points, err := pointset.Load(opts.Input, opts.From)
	if err != nil {
		return 0, fmt.Errorf("reading input: %w", err)
	}

	if _, err := pointset.Coordinates(points); err != nil {
		return 0, err
	}

	to, err := pointset.ParseFormat(opts.To)
	if err != nil {
		return 0, err
	}

	var buf bytes.Buffer
	if err := pointset.Encode(&buf, points, to); err != nil {
		return 0, fmt.Errorf("encoding points: %w", err)
	}

	if opts.Output == "" {
		_, err = os.Stdout.Write(buf.Bytes())
		return len(points), err
	}

	if err := os.WriteFile(opts.Output, buf.Bytes(), 0644); err != nil {
		return 0, fmt.Errorf("writing output file: %w", err)
	}

	return len(points), nil
}
