// Package gesture prepares raw pen strokes for shape recognition.
//
// It implements the geometric preprocessing stage of a unistroke
// recognizer: a stroke is resampled to a fixed number of evenly
// arc-length-spaced points, rotated about its centroid so that the
// first point sits at bearing zero, and rescaled to a canonical
// bounding box. All functions are pure and allocate fresh output
// slices, so the package is safe for concurrent use on independent
// strokes.
//
// Coordinates follow the y-down screen convention of the drawing
// surface: positive rotation angles turn clockwise on screen.
package gesture

import (
	"errors"
	"math"
)

// ErrEmptyStroke is returned by Normalize when the input stroke has
// no points at all.
var ErrEmptyStroke = errors.New("empty stroke")

const (
	// DefaultSampleCount is the number of points a normalized
	// stroke is resampled to.
	DefaultSampleCount = 24

	// DefaultCanonicalSize is the side length of the bounding box a
	// normalized stroke is scaled into.
	DefaultCanonicalSize = 100.0
)

// Point is a location on the drawing surface. Pressure carried by the
// raw stroke is stripped before entering this package.
type Point struct {
	X float64
	Y float64
}

// Options configures Normalize. The zero value selects the defaults.
type Options struct {
	// SampleCount is the number of resampled points, at least 2.
	SampleCount int

	// CanonicalSize is the side of the output bounding box.
	CanonicalSize float64
}

func (o Options) withDefaults() Options {
	if o.SampleCount < 2 {
		o.SampleCount = DefaultSampleCount
	}
	if o.CanonicalSize <= 0 {
		o.CanonicalSize = DefaultCanonicalSize
	}
	return o
}

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 Point) float64 {
	dx := p1.X - p2.X
	dy := p1.Y - p2.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// PathLength returns the arc length of the polyline through points.
// A single point has length 0.
func PathLength(points []Point) float64 {
	length := 0.0
	for i := 1; i < len(points); i++ {
		length += Distance(points[i-1], points[i])
	}
	return length
}

// Centroid returns the coordinate-wise mean of points. It must not be
// called with an empty slice.
func Centroid(points []Point) Point {
	var x, y float64
	for _, p := range points {
		x += p.X
		y += p.Y
	}
	n := float64(len(points))
	return Point{X: x / n, Y: y / n}
}

// Bearing returns the angle of the vector from one point to another,
// in degrees in (-180, 180]. On the y-down surface 0 points right and
// positive angles turn clockwise.
func Bearing(from, to Point) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X) * 180 / math.Pi
}

// Resample redistributes points into exactly n samples separated by
// equal arc-length steps of PathLength(points)/(n-1). The walk keeps
// the input untouched: instead of splicing interpolated points back
// into the source polyline, the cursor restarts each partially
// consumed segment from the last emitted sample. The first input
// point is always the first sample. A stroke whose points all
// coincide resamples to n copies of its first point.
//
// n must be at least 2 and points must be non-empty.
func Resample(points []Point, n int) []Point {
	first := points[0]

	total := PathLength(points)
	if total == 0 {
		out := make([]Point, n)
		for i := range out {
			out[i] = first
		}
		return out
	}

	step := total / float64(n-1)
	out := make([]Point, 0, n)
	out = append(out, first)

	accumulated := 0.0
	prev := first
	for i := 1; i < len(points) && len(out) < n; {
		d := Distance(prev, points[i])
		if accumulated+d >= step {
			// The sample lies on this segment; emit it and
			// resume the walk from there so the remainder of
			// the segment stays available.
			t := (step - accumulated) / d
			q := Point{
				X: prev.X + t*(points[i].X-prev.X),
				Y: prev.Y + t*(points[i].Y-prev.Y),
			}
			out = append(out, q)
			prev = q
			accumulated = 0
		} else {
			accumulated += d
			prev = points[i]
			i++
		}
	}

	// Floating-point rounding can leave the last sample unemitted.
	for len(out) < n {
		out = append(out, points[len(points)-1])
	}

	return out
}

// Rotate turns every point about center by the given angle in
// degrees, clockwise-positive on the y-down surface.
func Rotate(points []Point, center Point, degrees float64) []Point {
	rad := degrees * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)

	out := make([]Point, len(points))
	for i, p := range points {
		dx := p.X - center.X
		dy := p.Y - center.Y
		out[i] = Point{
			X: center.X + dx*cos - dy*sin,
			Y: center.Y + dx*sin + dy*cos,
		}
	}
	return out
}

// zeroRangeEpsilon decides when a bounding box extent counts as zero,
// relative to the larger extent. Rotating an axis-aligned stroke by a
// multiple of 90 degrees leaves residue around 1e-16 on the flat
// axis; scaling that residue to full canonical size would turn noise
// into geometry.
const zeroRangeEpsilon = 1e-9

// ScaleTo rescales points so their axis-aligned bounding box becomes
// [0, size] on each axis. An axis with (effectively) zero extent
// collapses to 0 instead of dividing by zero, so a vertical line
// lands on the left box edge and a point gesture on the origin.
func ScaleTo(points []Point, size float64) []Point {
	xMin, xMax := points[0].X, points[0].X
	yMin, yMax := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		xMin = math.Min(xMin, p.X)
		xMax = math.Max(xMax, p.X)
		yMin = math.Min(yMin, p.Y)
		yMax = math.Max(yMax, p.Y)
	}

	xRange := xMax - xMin
	yRange := yMax - yMin
	threshold := math.Max(xRange, yRange) * zeroRangeEpsilon

	out := make([]Point, len(points))
	for i, p := range points {
		var q Point
		if xRange > threshold {
			q.X = (p.X - xMin) * size / xRange
		}
		if yRange > threshold {
			q.Y = (p.Y - yMin) * size / yRange
		}
		out[i] = q
	}
	return out
}

// Normalize runs the full pipeline: resample to opts.SampleCount
// points, rotate about the centroid so the first point sits at
// bearing 0, then scale into the canonical box. The stage order is
// fixed; scaling is axis-aligned and must come after rotation, and
// resampling comes first so the centroid is not biased by uneven
// point density.
//
// An empty stroke is a precondition violation and returns
// ErrEmptyStroke before any work is done.
func Normalize(points []Point, opts Options) ([]Point, error) {
	if len(points) == 0 {
		return nil, ErrEmptyStroke
	}
	opts = opts.withDefaults()

	resampled := Resample(points, opts.SampleCount)

	center := Centroid(resampled)
	rotated := resampled
	if center != resampled[0] {
		rotated = Rotate(resampled, center, -Bearing(center, resampled[0]))
	}

	return ScaleTo(rotated, opts.CanonicalSize), nil
}
