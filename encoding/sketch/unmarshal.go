package sketch

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// UnmarshalBinary implements encoding.BinaryUnmarshaler for
// transforming bytes into a Sketch
func (s *Sketch) UnmarshalBinary(data []byte) error {
	r := newReader(data)
	if err := r.checkHeader(); err != nil {
		return err
	}
	s.Version = r.version

	nbShapes, err := r.readNumber()
	if err != nil {
		return err
	}

	s.Shapes = make([]Shape, nbShapes)
	for i := uint32(0); i < nbShapes; i++ {
		shape, err := r.readShape()
		if err != nil {
			return err
		}
		s.Shapes[i] = shape
	}

	return nil
}

type reader struct {
	bytes.Reader
	version Version
}

func newReader(data []byte) reader {
	br := bytes.NewReader(data)

	return reader{*br, V1}
}

func (r *reader) checkHeader() error {
	buf := make([]byte, HeaderLen)

	n, err := r.Read(buf)
	if err != nil {
		return err
	}

	if n != HeaderLen {
		return fmt.Errorf("wrong header size")
	}

	switch string(buf) {
	case HeaderV1:
		r.version = V1
	default:
		return fmt.Errorf("unknown header")
	}

	return nil
}

func (r *reader) readNumber() (uint32, error) {
	var nb uint32
	if err := binary.Read(r, binary.LittleEndian, &nb); err != nil {
		return 0, fmt.Errorf("wrong number read")
	}
	return nb, nil
}

func (r *reader) readShape() (Shape, error) {
	var shape Shape

	if err := binary.Read(r, binary.LittleEndian, &shape.Color); err != nil {
		return shape, fmt.Errorf("failed to read shape color")
	}

	if err := binary.Read(r, binary.LittleEndian, &shape.Style); err != nil {
		return shape, fmt.Errorf("failed to read shape style")
	}

	if err := binary.Read(r, binary.LittleEndian, &shape.MaxWidth); err != nil {
		return shape, fmt.Errorf("failed to read shape width")
	}

	nbPoints, err := r.readNumber()
	if err != nil {
		return shape, err
	}

	if nbPoints == 0 {
		return shape, nil
	}

	shape.Points = make([]Point, nbPoints)

	for i := uint32(0); i < nbPoints; i++ {
		p, err := r.readPoint()
		if err != nil {
			return shape, err
		}

		shape.Points[i] = p
	}

	return shape, nil
}

func (r *reader) readPoint() (Point, error) {
	var point Point

	if err := binary.Read(r, binary.LittleEndian, &point.X); err != nil {
		return point, fmt.Errorf("failed to read point")
	}
	if err := binary.Read(r, binary.LittleEndian, &point.Y); err != nil {
		return point, fmt.Errorf("failed to read point")
	}
	if err := binary.Read(r, binary.LittleEndian, &point.Pressure); err != nil {
		return point, fmt.Errorf("failed to read point")
	}

	return point, nil
}
