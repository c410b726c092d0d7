package main

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkpad/inkpad/encoding/sketch"
	"github.com/inkpad/inkpad/model"
	"github.com/inkpad/inkpad/render"
)

func main() {
	inputName := flag.String("i", "", "sketch file to convert")
	outputName := flag.String("o", "", "output filename")
	format := flag.String("f", "svg", "output format: svg, pdf or png")
	width := flag.Int("w", 0, "canvas width (default: fit to content)")
	height := flag.Int("h", 0, "canvas height (default: fit to content)")
	grid := flag.Bool("grid", false, "draw the surface grid (svg only)")
	flag.Parse()

	if err := convert(*inputName, *outputName, *format, *width, *height, *grid); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func convert(inputName, outputName, format string, width, height int, grid bool) error {
	if inputName == "" {
		return errors.New("missing input file")
	}

	if outputName == "" {
		nameOnly := strings.TrimSuffix(inputName, filepath.Ext(inputName))
		outputName = nameOnly + "." + format
	}

	data, err := os.ReadFile(inputName)
	if err != nil {
		return fmt.Errorf("can't open file %w", err)
	}

	sk := &sketch.Sketch{}
	if err := sk.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("can't decode sketch %w", err)
	}

	if width == 0 || height == 0 {
		width, height = fitToContent(sk)
	}

	name := strings.TrimSuffix(filepath.Base(inputName), filepath.Ext(inputName))
	meta := model.NewDrawing(name, width, height)

	switch format {
	case "pdf":
		return render.WritePDF(outputName, meta, sk)
	case "svg", "png":
		outputFile, err := os.Create(outputName)
		if err != nil {
			return fmt.Errorf("can't create outputfile %w", err)
		}
		defer outputFile.Close()

		if format == "svg" {
			return render.WriteSVG(outputFile, meta, sk, render.SVGOptions{Grid: grid})
		}
		return render.WritePNG(outputFile, meta, sk)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// fitToContent sizes the canvas to the sketch content plus a margin.
func fitToContent(sk *sketch.Sketch) (int, int) {
	const margin = 10

	var maxX, maxY float64
	for _, shape := range sk.Shapes {
		for _, p := range shape.Points {
			maxX = math.Max(maxX, float64(p.X))
			maxY = math.Max(maxY, float64(p.Y))
		}
	}

	return int(math.Ceil(maxX)) + margin, int(math.Ceil(maxY)) + margin
}
