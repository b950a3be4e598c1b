package render

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/geoson"
	"github.com/woozymasta/geoson/geo"
)

func testCollection() *geoson.FeatureCollection {
	fc := &geoson.FeatureCollection{}
	fc.Features = append(fc.Features,
		geoson.Feature{Geometry: geoson.Point{Coordinates: geo.Point{X: 5, Y: 5}}},
		geoson.Feature{Geometry: geoson.Segment{A: geo.Point{}, B: geo.Point{X: 100, Y: 40}}},
		geoson.Feature{Geometry: geoson.Polygon{Ring: []geo.Point{{X: 20, Y: 20}, {X: 80, Y: 20}, {X: 80, Y: 90}, {X: 20, Y: 20}}}},
	)
	return fc
}

func TestRender(t *testing.T) {
	img, err := Render(testCollection(), Options{Size: 64, Margin: 4})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())

	drawn := 0
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || b != 0xffff {
				drawn++
			}
		}
	}
	assert.Greater(t, drawn, 0, "geometry must leave non-background pixels")
}

func TestRenderSinglePoint(t *testing.T) {
	fc := &geoson.FeatureCollection{}
	fc.Features = append(fc.Features, geoson.Feature{
		Geometry: geoson.Point{Coordinates: geo.Point{X: 12, Y: -7}},
	})

	// zero extent must not divide by zero
	img, err := Render(fc, Options{Size: 32})
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())
}

func TestRenderEmpty(t *testing.T) {
	_, err := Render(&geoson.FeatureCollection{}, Options{Size: 64})
	assert.ErrorIs(t, err, ErrEmpty)

	fc := &geoson.FeatureCollection{}
	fc.Features = append(fc.Features, geoson.Feature{Geometry: geoson.Path{}})
	_, err = Render(fc, Options{Size: 64})
	assert.ErrorIs(t, err, ErrEmpty, "a pointless path draws nothing")
}

func TestWriteWebP(t *testing.T) {
	img, err := Render(testCollection(), Options{Size: 32})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.webp")
	require.NoError(t, WriteWebP(path, img, 85))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
