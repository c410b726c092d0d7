// Package sketch implements the binary serialization of a drawing:
// an ordered list of freehand shapes, each an ordered list of points
// carrying pen pressure. The format is little-endian with a fixed
// size versioned ASCII header.
package sketch

// HeaderV1 is the file header for version 1 sketch files.
const HeaderV1 = "inkpad sketch file, version=1             "

// HeaderLen is the header size in bytes.
const HeaderLen = 42

// Version identifies the sketch file format version.
type Version uint32

const (
	V1 Version = 1
)

// LineStyle is the dash pattern a shape is drawn with.
type LineStyle uint32

const (
	Solid LineStyle = iota
	Dashed
	Dotted
)

// Color is an 8-bit RGBA pen color.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// Point is a single sampled pen position. Pressure is in [0, 1];
// mouse input records a constant 1.
type Point struct {
	X        float32
	Y        float32
	Pressure float32
}

// Shape is one continuous stroke of the pen, first point to lift-off.
// Point order is the temporal order along the gesture.
type Shape struct {
	Color    Color
	Style    LineStyle
	MaxWidth float32
	Points   []Point
}

// Sketch is a complete drawing as stored on disk.
type Sketch struct {
	Version Version
	Shapes  []Shape
}
