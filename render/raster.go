package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/nfnt/resize"

	"github.com/inkpad/inkpad/encoding/sketch"
	"github.com/inkpad/inkpad/model"
)

// Rasterize draws the sketch into an RGBA image of the drawing's
// canvas size. Strokes are painted as filled discs stamped along each
// segment, which approximates the round-cap pen of the surface well
// enough for previews.
func Rasterize(meta model.Drawing, sk *sketch.Sketch) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, meta.Width, meta.Height))

	for _, shape := range sk.Shapes {
		c := color.RGBA{shape.Color.R, shape.Color.G, shape.Color.B, shape.Color.A}

		if len(shape.Points) == 1 {
			p := shape.Points[0]
			stamp(img, float64(p.X), float64(p.Y),
				float64(segmentWidth(p, shape.MaxWidth))/2, c)
			continue
		}

		for i := 1; i < len(shape.Points); i++ {
			p1 := shape.Points[i-1]
			p2 := shape.Points[i]
			radius := float64(segmentWidth(p1, shape.MaxWidth)) / 2
			plotSegment(img, p1, p2, radius, c)
		}
	}

	return img
}

// plotSegment stamps discs at sub-radius intervals so the line has no
// gaps regardless of slope.
func plotSegment(img *image.RGBA, p1, p2 sketch.Point, radius float64, c color.RGBA) {
	x1, y1 := float64(p1.X), float64(p1.Y)
	x2, y2 := float64(p2.X), float64(p2.Y)

	length := math.Hypot(x2-x1, y2-y1)
	pitch := radius / 2
	if pitch < 0.5 {
		pitch = 0.5
	}

	steps := int(length/pitch) + 1
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		stamp(img, x1+t*(x2-x1), y1+t*(y2-y1), radius, c)
	}
}

func stamp(img *image.RGBA, cx, cy, radius float64, c color.RGBA) {
	if radius < 0.5 {
		radius = 0.5
	}
	r := int(math.Ceil(radius))
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if float64(dx*dx+dy*dy) > radius*radius {
				continue
			}
			x, y := int(cx)+dx, int(cy)+dy
			if image.Pt(x, y).In(img.Rect) {
				img.SetRGBA(x, y, c)
			}
		}
	}
}

// WritePNG encodes the rasterized drawing.
func WritePNG(w io.Writer, meta model.Drawing, sk *sketch.Sketch) error {
	return png.Encode(w, Rasterize(meta, sk))
}

// Thumbnail renders the drawing scaled down to the given width,
// keeping the aspect ratio.
func Thumbnail(meta model.Drawing, sk *sketch.Sketch, width uint) image.Image {
	return resize.Resize(width, 0, Rasterize(meta, sk), resize.Lanczos3)
}

// WriteThumbnail encodes a PNG thumbnail of the drawing.
func WriteThumbnail(w io.Writer, meta model.Drawing, sk *sketch.Sketch, width uint) error {
	return png.Encode(w, Thumbnail(meta, sk, width))
}
