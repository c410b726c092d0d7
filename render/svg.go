// Package render exports stored drawings to SVG, PDF and PNG.
package render

import (
	"fmt"
	"io"

	"github.com/inkpad/inkpad/encoding/sketch"
	"github.com/inkpad/inkpad/model"
)

// SVGOptions controls the SVG exporter.
type SVGOptions struct {
	// Background fills the canvas black, matching the on-screen
	// surface. Exports default to a transparent background.
	Background bool

	// Grid draws the surface's alignment grid.
	Grid bool

	// GridSpacing is the grid cell size in pixels (default 20).
	GridSpacing int
}

// WriteSVG renders the sketch as an SVG document. Each consecutive
// point pair becomes one line segment so the stroke width can follow
// the recorded pen pressure, like the on-screen renderer does.
func WriteSVG(w io.Writer, meta model.Drawing, sk *sketch.Sketch, opts SVGOptions) error {
	if opts.GridSpacing <= 0 {
		opts.GridSpacing = 20
	}

	width, height := meta.Width, meta.Height

	if _, err := fmt.Fprintf(w,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		width, height, width, height); err != nil {
		return err
	}
	fmt.Fprintf(w, "<title>%s</title>\n", xmlEscape(meta.Name))

	if opts.Background {
		fmt.Fprintf(w, "<rect width=\"%d\" height=\"%d\" fill=\"black\"/>\n", width, height)
	}

	if opts.Grid {
		writeGrid(w, width, height, opts.GridSpacing)
	}

	for _, shape := range sk.Shapes {
		writeShape(w, shape)
	}

	_, err := fmt.Fprint(w, "</svg>\n")
	return err
}

func writeGrid(w io.Writer, width, height, spacing int) {
	fmt.Fprint(w, "<g stroke=\"rgba(255,100,100,0.2)\" stroke-width=\"1\">\n")
	for x := 0; x < width; x += spacing {
		fmt.Fprintf(w, "<line x1=\"%d\" y1=\"0\" x2=\"%d\" y2=\"%d\"/>\n", x, x, height)
	}
	for y := 0; y < height; y += spacing {
		fmt.Fprintf(w, "<line x1=\"0\" y1=\"%d\" x2=\"%d\" y2=\"%d\"/>\n", y, width, y)
	}
	fmt.Fprint(w, "</g>\n")
}

func writeShape(w io.Writer, shape sketch.Shape) {
	if len(shape.Points) == 0 {
		return
	}

	color := svgColor(shape.Color)

	if len(shape.Points) == 1 {
		// a point gesture renders as a dot
		p := shape.Points[0]
		fmt.Fprintf(w, "<circle cx=\"%.2f\" cy=\"%.2f\" r=\"%.2f\" fill=\"%s\"/>\n",
			p.X, p.Y, shape.MaxWidth/2, color)
		return
	}

	fmt.Fprintf(w, "<g stroke=\"%s\" stroke-linecap=\"round\" fill=\"none\"%s>\n",
		color, dashAttr(shape.Style, shape.MaxWidth))
	for i := 1; i < len(shape.Points); i++ {
		p1 := shape.Points[i-1]
		p2 := shape.Points[i]
		fmt.Fprintf(w, "<line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke-width=\"%.2f\"/>\n",
			p1.X, p1.Y, p2.X, p2.Y, segmentWidth(p1, shape.MaxWidth))
	}
	fmt.Fprint(w, "</g>\n")
}

// segmentWidth scales the pen width by the pressure recorded at the
// segment's first point.
func segmentWidth(p sketch.Point, maxWidth float32) float32 {
	width := p.Pressure * maxWidth
	if width < 0.5 {
		width = 0.5
	}
	return width
}

func dashAttr(style sketch.LineStyle, maxWidth float32) string {
	switch style {
	case sketch.Dashed:
		return fmt.Sprintf(" stroke-dasharray=\"%.1f,%.1f\"", maxWidth*2, maxWidth)
	case sketch.Dotted:
		return fmt.Sprintf(" stroke-dasharray=\"%.1f,%.1f\"", maxWidth/2, maxWidth)
	default:
		return ""
	}
}

func svgColor(c sketch.Color) string {
	if c.A != 255 {
		return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", c.R, c.G, c.B, float64(c.A)/255)
	}
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func xmlEscape(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			out = append(out, "&lt;"...)
		case '>':
			out = append(out, "&gt;"...)
		case '&':
			out = append(out, "&amp;"...)
		case '"':
			out = append(out, "&quot;"...)
		default:
			out = append(out, s[i])
		}
	}
	return string(out)
}
