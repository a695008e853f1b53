package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/geomatch/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xwebp "golang.org/x/image/webp"
)

func assertColorNear(t *testing.T, want color.RGBA, got color.Color, msg string) {
	t.Helper()

	r, g, b, _ := got.RGBA()
	const tol = 0x20
	assert.InDelta(t, int(want.R), int(r>>8), tol, "%s red", msg)
	assert.InDelta(t, int(want.G), int(g>>8), tol, "%s green", msg)
	assert.InDelta(t, int(want.B), int(b>>8), tol, "%s blue", msg)
}

func sample(t *testing.T) ([]geo.MatchResult, []geo.Coordinate) {
	t.Helper()

	targets := []geo.Coordinate{{Lat: 0, Lon: 60}, {Lat: 45, Lon: -90}}
	results, err := geo.MatchAll([]geo.Coordinate{{Lat: 0, Lon: 0}}, targets)
	require.NoError(t, err)

	return results, targets
}

func TestPreview(t *testing.T) {
	results, targets := sample(t)
	img := Preview(results, targets, Options{Width: 360})

	assert.Equal(t, image.Rect(0, 0, 360, 180), img.Bounds())
	assertColorNear(t, colorSource, img.At(180, 90), "source")
	assertColorNear(t, colorTarget, img.At(240, 90), "matched target")
	assertColorNear(t, colorTarget, img.At(90, 45), "other target")
	assertColorNear(t, colorMatch, img.At(210, 90), "match segment")
	assertColorNear(t, colorBackground, img.At(100, 140), "background")
}

func TestPreviewMinimumWidth(t *testing.T) {
	img := Preview(nil, nil, Options{Width: 3})
	assert.Equal(t, image.Rect(0, 0, minWidth, minWidth/2), img.Bounds())
}

func TestPreviewBackground(t *testing.T) {
	green := color.RGBA{G: 0xc0, A: 0xff}
	bg := image.NewRGBA(image.Rect(0, 0, 100, 50))
	draw.Draw(bg, bg.Bounds(), &image.Uniform{C: green}, image.Point{}, draw.Src)

	path := filepath.Join(t.TempDir(), "world.png")
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, bg))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	loaded, err := LoadBackground(path)
	require.NoError(t, err)

	results, targets := sample(t)
	img := Preview(results, targets, Options{Width: 200, Background: loaded})
	assertColorNear(t, green, img.At(20, 80), "background image")
	assertColorNear(t, colorSource, img.At(100, 50), "source")
}

func TestSaveWebP(t *testing.T) {
	results, targets := sample(t)
	img := Preview(results, targets, Options{Width: 128})

	path := filepath.Join(t.TempDir(), "preview.webp")
	require.NoError(t, SaveWebP(path, img))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	decoded, err := xwebp.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, img.Bounds(), decoded.Bounds())
	assertColorNear(t, colorSource, decoded.At(64, 32), "source after round trip")
}

func TestLoadBackgroundErrors(t *testing.T) {
	_, err := LoadBackground(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	_, err = LoadBackground(path)
	assert.ErrorContains(t, err, "decode failed")
}
