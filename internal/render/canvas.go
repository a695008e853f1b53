package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/woozymasta/geomatch/internal/geo"
)

type canvas struct {
	img *image.RGBA
}

func newCanvas(w, h int) *canvas {
	return &canvas{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// project maps a coordinate to pixel space, equirectangular.
func (c *canvas) project(p geo.Coordinate) (int, int) {
	b := c.img.Bounds()
	x := (p.Lon + 180) / 360 * float64(b.Dx()-1)
	y := (90 - p.Lat) / 180 * float64(b.Dy()-1)

	return int(x + 0.5), int(y + 0.5)
}

func (c *canvas) fill(col color.Color) {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

func (c *canvas) graticule(stepDeg float64, thickness int, col color.Color) {
	for lon := -180.0; lon <= 180; lon += stepDeg {
		c.line(geo.Coordinate{Lat: 90, Lon: lon}, geo.Coordinate{Lat: -90, Lon: lon}, thickness, col)
	}
	for lat := -90.0; lat <= 90; lat += stepDeg {
		c.line(geo.Coordinate{Lat: lat, Lon: -180}, geo.Coordinate{Lat: lat, Lon: 180}, thickness, col)
	}
}

func (c *canvas) dot(p geo.Coordinate, radius int, col color.Color) {
	cx, cy := c.project(p)
	r := image.Rect(cx-radius, cy-radius, cx+radius+1, cy+radius+1).Intersect(c.img.Bounds())
	draw.Draw(c.img, r, &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// line draws a straight segment in pixel space (Bresenham) with a square
// brush of the given thickness centred on the path, like dot.
// Segments crossing the antimeridian are not wrapped.
func (c *canvas) line(a, b geo.Coordinate, thickness int, col color.Color) {
	brush := &image.Uniform{C: col}

	x0, y0 := c.project(a)
	x1, y1 := c.project(b)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	errAcc := dx + dy
	for {
		bx, by := x0-thickness/2, y0-thickness/2
		draw.Draw(c.img, image.Rect(bx, by, bx+thickness, by+thickness), brush, image.Point{}, draw.Src)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * errAcc
		if e2 >= dy {
			errAcc += dy
			x0 += sx
		}
		if e2 <= dx {
			errAcc += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
