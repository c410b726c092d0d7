package render

import (
	"math"
	"os"

	"github.com/unidoc/unipdf/v3/contentstream"
	"github.com/unidoc/unipdf/v3/contentstream/draw"
	"github.com/unidoc/unipdf/v3/creator"

	"github.com/inkpad/inkpad/encoding/sketch"
	"github.com/inkpad/inkpad/log"
	"github.com/inkpad/inkpad/model"
)

// a4-ish page that keeps the canvas aspect ratio manageable
var pdfPageSize = creator.PageSize{595, 842}

// PdfGenerator writes one drawing to a PDF file.
type PdfGenerator struct {
	outputFilePath string
	options        PdfGeneratorOptions
}

type PdfGeneratorOptions struct {
	// Landscape swaps the page dimensions.
	Landscape bool
}

func CreatePdfGenerator(outputFilePath string, options PdfGeneratorOptions) *PdfGenerator {
	return &PdfGenerator{outputFilePath: outputFilePath, options: options}
}

func (p *PdfGenerator) Generate(meta model.Drawing, sk *sketch.Sketch) error {
	c := creator.New()

	size := pdfPageSize
	if p.options.Landscape {
		size = creator.PageSize{size[1], size[0]}
	}
	c.SetPageSize(size)

	page := c.NewPage()
	if page == nil {
		log.Error.Fatal("page is null")
	}

	ratio := c.Width() / canvasWidth(meta, sk)

	contentCreator := contentstream.NewContentCreator()
	for _, shape := range sk.Shapes {
		if len(shape.Points) < 2 {
			continue
		}

		// pressure varies along the stroke, so emit one path per
		// segment with its own line width
		for i := 1; i < len(shape.Points); i++ {
			p1 := shape.Points[i-1]
			p2 := shape.Points[i]

			path := draw.NewPath()
			x1, y1 := scaled(p1, ratio)
			x2, y2 := scaled(p2, ratio)
			path = path.AppendPoint(draw.NewPoint(x1, c.Height()-y1))
			path = path.AppendPoint(draw.NewPoint(x2, c.Height()-y2))

			contentCreator.Add_q()
			contentCreator.Add_w(float64(segmentWidth(p1, shape.MaxWidth)) * ratio)
			contentCreator.Add_RG(
				float64(shape.Color.R)/255,
				float64(shape.Color.G)/255,
				float64(shape.Color.B)/255)

			draw.DrawPathWithCreator(path, contentCreator)

			contentCreator.Add_S()
			contentCreator.Add_Q()
		}
	}

	ops := contentCreator.Operations()
	bt := ops.Bytes()
	if err := page.AppendContentStream(string(bt)); err != nil {
		return err
	}

	return c.WriteToFile(p.outputFilePath)
}

func scaled(p sketch.Point, ratio float64) (float64, float64) {
	return float64(p.X) * ratio, float64(p.Y) * ratio
}

// canvasWidth returns the drawing's canvas width, falling back to the
// content extent when hand-edited metadata carries none. The result
// is never zero, keeping the page ratio finite.
func canvasWidth(meta model.Drawing, sk *sketch.Sketch) float64 {
	if meta.Width > 0 {
		return float64(meta.Width)
	}

	maxX := 1.0
	for _, shape := range sk.Shapes {
		for _, p := range shape.Points {
			maxX = math.Max(maxX, float64(p.X))
		}
	}
	return maxX
}

// WritePDF is a convenience wrapper around PdfGenerator.
func WritePDF(outputFilePath string, meta model.Drawing, sk *sketch.Sketch) error {
	gen := CreatePdfGenerator(outputFilePath, PdfGeneratorOptions{})
	if err := gen.Generate(meta, sk); err != nil {
		os.Remove(outputFilePath)
		return err
	}
	return nil
}
