package render

import (
	"bytes"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpad/inkpad/encoding/sketch"
	"github.com/inkpad/inkpad/model"
	"github.com/inkpad/inkpad/store"
)

func testDrawing() (model.Drawing, *sketch.Sketch) {
	meta := model.NewDrawing("wave & co", 200, 100)
	sk := &sketch.Sketch{
		Shapes: []sketch.Shape{
			{
				Color:    sketch.Color{R: 0, G: 155, B: 0, A: 255},
				Style:    sketch.Solid,
				MaxWidth: 10,
				Points: []sketch.Point{
					{X: 10, Y: 10, Pressure: 1},
					{X: 100, Y: 50, Pressure: 0.5},
					{X: 190, Y: 90, Pressure: 0.2},
				},
			},
			{
				Color:    sketch.Color{R: 255, G: 0, B: 0, A: 255},
				Style:    sketch.Dashed,
				MaxWidth: 4,
				Points: []sketch.Point{
					{X: 50, Y: 80, Pressure: 1},
				},
			},
		},
	}
	return meta, sk
}

func TestWriteSVG(t *testing.T) {
	meta, sk := testDrawing()
	var buf bytes.Buffer

	require.NoError(t, WriteSVG(&buf, meta, sk, SVGOptions{}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.Contains(t, out, "viewBox=\"0 0 200 100\"")
	// name is escaped in the title
	assert.Contains(t, out, "wave &amp; co")
	assert.Contains(t, out, "rgb(0,155,0)")
	// pressure-scaled widths: 1.0 and 0.5 of maxWidth 10
	assert.Contains(t, out, "stroke-width=\"10.00\"")
	assert.Contains(t, out, "stroke-width=\"5.00\"")
	// single-point shape renders as a dot
	assert.Contains(t, out, "<circle")
	assert.NotContains(t, out, "<rect")
}

func TestWriteSVGBackgroundAndGrid(t *testing.T) {
	meta, sk := testDrawing()
	var buf bytes.Buffer

	require.NoError(t, WriteSVG(&buf, meta, sk, SVGOptions{Background: true, Grid: true}))

	out := buf.String()
	assert.Contains(t, out, "fill=\"black\"")
	assert.Contains(t, out, "rgba(255,100,100,0.2)")
}

func TestRasterize(t *testing.T) {
	meta, sk := testDrawing()

	img := Rasterize(meta, sk)

	assert.Equal(t, 200, img.Rect.Dx())
	assert.Equal(t, 100, img.Rect.Dy())

	// a pixel on the first stroke is painted
	c := img.RGBAAt(10, 10)
	assert.Equal(t, uint8(155), c.G)
}

func TestWritePNG(t *testing.T) {
	meta, sk := testDrawing()
	var buf bytes.Buffer

	require.NoError(t, WritePNG(&buf, meta, sk))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}

func TestThumbnail(t *testing.T) {
	meta, sk := testDrawing()

	img := Thumbnail(meta, sk, 50)

	assert.Equal(t, 50, img.Bounds().Dx())
	assert.Equal(t, 25, img.Bounds().Dy())
}

func TestCanvasWidthFallback(t *testing.T) {
	meta, sk := testDrawing()

	assert.Equal(t, 200.0, canvasWidth(meta, sk))

	// metadata without a width falls back to the content extent
	meta.Width = 0
	assert.Equal(t, 190.0, canvasWidth(meta, sk))

	// an empty sketch still yields a finite, positive width
	assert.Equal(t, 1.0, canvasWidth(meta, &sketch.Sketch{}))
}

func TestExportAllSVG(t *testing.T) {
	s, err := store.Open(t.TempDir())
	require.NoError(t, err)

	meta, sk := testDrawing()
	require.NoError(t, s.Save(meta, sk))
	other := model.NewDrawing("second", 100, 100)
	require.NoError(t, s.Save(other, sk))

	outDir := t.TempDir()
	files, err := ExportAll(s, BatchConfig{Format: "svg", OutputDir: outDir})

	require.NoError(t, err)
	require.Len(t, files, 2)
	for _, f := range files {
		data, err := os.ReadFile(f)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<svg ")
	}
}

func TestExportAllUnsupportedFormat(t *testing.T) {
	s, err := store.Open(t.TempDir())
	require.NoError(t, err)

	meta, sk := testDrawing()
	require.NoError(t, s.Save(meta, sk))

	files, err := ExportAll(s, BatchConfig{Format: "tiff", OutputDir: t.TempDir()})

	// per-drawing failures are skipped, not fatal
	require.NoError(t, err)
	assert.Empty(t, files)
}
