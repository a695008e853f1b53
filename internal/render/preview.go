// Package render draws a preview image of match results on an
// equirectangular world frame.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/woozymasta/geomatch/internal/geo"

	"github.com/chai2010/webp"
	"github.com/rs/zerolog/log"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const (
	// supersample factor, the frame is drawn larger then scaled down
	supersample = 2
	minWidth    = 64
	pointRadius = 3
	// the downscale kernel spans 2*supersample source pixels, a narrower
	// segment would blend into the background
	matchThickness = 2*supersample + 1
)

var (
	colorBackground = color.RGBA{R: 0x1b, G: 0x26, B: 0x33, A: 0xff}
	colorGraticule  = color.RGBA{R: 0x2e, G: 0x3d, B: 0x4f, A: 0xff}
	colorMatch      = color.RGBA{R: 0xf2, G: 0xc1, B: 0x2e, A: 0xff}
	colorTarget     = color.RGBA{R: 0xe0, G: 0x3c, B: 0x31, A: 0xff}
	colorSource     = color.RGBA{R: 0x3c, G: 0x8d, B: 0xf0, A: 0xff}
)

// Options control the preview.
type Options struct {
	// Background is an optional equirectangular world image, stretched to the frame.
	Background image.Image
	// Width of the output in pixels, height is always Width/2.
	Width int
}

// Preview draws every target, every source and a segment per match.
func Preview(results []geo.MatchResult, targets []geo.Coordinate, opts Options) *image.RGBA {
	width := opts.Width
	if width < minWidth {
		width = minWidth
	}
	width -= width % 2

	canvas := newCanvas(width*supersample, width*supersample/2)
	if opts.Background != nil {
		xdraw.CatmullRom.Scale(canvas.img, canvas.img.Bounds(), opts.Background, opts.Background.Bounds(), draw.Over, nil)
	} else {
		canvas.fill(colorBackground)
		canvas.graticule(30, supersample, colorGraticule)
	}

	for _, r := range results {
		canvas.line(r.Source, r.Target, matchThickness, colorMatch)
	}
	for _, t := range targets {
		canvas.dot(t, pointRadius*supersample, colorTarget)
	}
	for _, r := range results {
		canvas.dot(r.Source, pointRadius*supersample, colorSource)
	}

	out := image.NewRGBA(image.Rect(0, 0, width, width/2))
	xdraw.BiLinear.Scale(out, out.Bounds(), canvas.img, canvas.img.Bounds(), draw.Src, nil)

	log.Debug().
		Int("width", width).
		Int("matches", len(results)).
		Int("targets", len(targets)).
		Msg("Preview rendered")

	return out
}

// EncodeWebP writes img as lossless WebP.
func EncodeWebP(w io.Writer, img image.Image) error {
	return webp.Encode(w, img, &webp.Options{Lossless: true})
}

// SaveWebP renders the preview into a WebP file at path.
func SaveWebP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := EncodeWebP(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode webp: %w", err)
	}

	return f.Close()
}

// LoadBackground decodes a world image from a local file (png, jpeg, webp, bmp or tiff).
func LoadBackground(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}

	log.Debug().
		Str("path", path).
		Str("format", format).
		Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).
		Msg("Background image decoded")

	return img, nil
}
