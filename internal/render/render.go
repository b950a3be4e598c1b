// Package render rasterizes decoded collections into quick-look raster
// images. Geometry is drawn in the ENU plane: X grows right, Y grows up.
package render

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"

	"github.com/chai2010/webp"
	"github.com/rs/zerolog/log"
	xdraw "golang.org/x/image/draw"

	"github.com/woozymasta/geoson"
	"github.com/woozymasta/geoson/geo"
)

// ErrEmpty is returned for collections without a single point to draw.
var ErrEmpty = errors.New("render: collection has no points")

// Options control the output raster.
type Options struct {
	// Size is the output edge length in pixels.
	Size int
	// Margin is the blank border in output pixels.
	Margin int
}

// supersample is the working-canvas scale; the canvas is drawn at this
// multiple and resampled down for anti-aliasing.
const supersample = 2

var palette = struct {
	background color.RGBA
	point      color.RGBA
	segment    color.RGBA
	path       color.RGBA
	polygon    color.RGBA
}{
	background: color.RGBA{255, 255, 255, 255},
	point:      color.RGBA{200, 40, 40, 255},
	segment:    color.RGBA{40, 110, 200, 255},
	path:       color.RGBA{30, 60, 160, 255},
	polygon:    color.RGBA{40, 150, 70, 255},
}

// Render draws every feature of fc onto a square canvas scaled to the
// collection's ENU bounding box.
func Render(fc *geoson.FeatureCollection, opts Options) (image.Image, error) {
	if opts.Size <= 0 {
		opts.Size = 1024
	}
	if opts.Margin < 0 || opts.Margin*2 >= opts.Size {
		opts.Margin = 0
	}

	minX, minY, maxX, maxY, n := bounds(fc)
	if n == 0 {
		return nil, ErrEmpty
	}

	log.Debug().
		Int("points", n).
		Float64("width", maxX-minX).
		Float64("height", maxY-minY).
		Msg("Rendering collection")

	size := opts.Size * supersample
	margin := float64(opts.Margin * supersample)
	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(palette.background), image.Point{}, draw.Src)

	// One meters-to-pixels factor for both axes keeps aspect ratio; a
	// degenerate extent (single point, axis-aligned line) still renders.
	extent := math.Max(maxX-minX, maxY-minY)
	scale := 1.0
	if extent > 0 {
		scale = (float64(size) - 2*margin) / extent
	}
	offX := margin + (float64(size)-2*margin-(maxX-minX)*scale)/2
	offY := margin + (float64(size)-2*margin-(maxY-minY)*scale)/2

	project := func(p geo.Point) (float64, float64) {
		// Y flips: ENU north is up, image rows grow down.
		return offX + (p.X-minX)*scale, float64(size) - (offY + (p.Y-minY)*scale)
	}

	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case geoson.Point:
			x, y := project(g.Coordinates)
			drawMarker(canvas, x, y, palette.point)
		case geoson.Segment:
			ax, ay := project(g.A)
			bx, by := project(g.B)
			drawLine(canvas, ax, ay, bx, by, palette.segment)
		case geoson.Path:
			drawPolyline(canvas, g.Points, project, palette.path, false)
		case geoson.Polygon:
			// The ring is drawn closed even when the stored ring is
			// not; only the drawing closes it.
			drawPolyline(canvas, g.Ring, project, palette.polygon, true)
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	xdraw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), draw.Over, nil)
	return out, nil
}

// WriteWebP encodes img as lossy WebP at the given quality.
func WriteWebP(path string, img image.Image, quality float32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return webp.Encode(f, img, &webp.Options{Lossless: false, Quality: quality})
}

// bounds returns the ENU bounding box over every point of every feature
// and the total point count.
func bounds(fc *geoson.FeatureCollection) (minX, minY, maxX, maxY float64, n int) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)

	extend := func(p geo.Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
		n++
	}

	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case geoson.Point:
			extend(g.Coordinates)
		case geoson.Segment:
			extend(g.A)
			extend(g.B)
		case geoson.Path:
			for _, p := range g.Points {
				extend(p)
			}
		case geoson.Polygon:
			for _, p := range g.Ring {
				extend(p)
			}
		}
	}
	return minX, minY, maxX, maxY, n
}

func drawPolyline(img *image.RGBA, pts []geo.Point, project func(geo.Point) (float64, float64), c color.RGBA, closed bool) {
	if len(pts) == 0 {
		return
	}
	if len(pts) == 1 {
		x, y := project(pts[0])
		drawMarker(img, x, y, c)
		return
	}
	for i := 1; i < len(pts); i++ {
		ax, ay := project(pts[i-1])
		bx, by := project(pts[i])
		drawLine(img, ax, ay, bx, by, c)
	}
	if closed && len(pts) > 2 {
		ax, ay := project(pts[len(pts)-1])
		bx, by := project(pts[0])
		drawLine(img, ax, ay, bx, by, c)
	}
}

// drawLine steps along the longer axis, stamping a small marker per step.
func drawLine(img *image.RGBA, ax, ay, bx, by float64, c color.RGBA) {
	steps := int(math.Max(math.Abs(bx-ax), math.Abs(by-ay))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		drawMarker(img, ax+(bx-ax)*t, ay+(by-ay)*t, c)
	}
}

// drawMarker fills a small square centered on the pixel position. Pixels
// outside the canvas are dropped by SetRGBA.
func drawMarker(img *image.RGBA, x, y float64, c color.RGBA) {
	cx, cy := int(math.Round(x)), int(math.Round(y))
	for dy := -supersample; dy <= supersample; dy++ {
		for dx := -supersample; dx <= supersample; dx++ {
			img.SetRGBA(cx+dx, cy+dy, c)
		}
	}
}
