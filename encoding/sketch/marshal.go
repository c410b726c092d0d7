package sketch

import (
	"bytes"
	"encoding/binary"
)

// MarshalBinary implements encoding.BinaryMarshaler for transforming
// a Sketch into bytes
func (s *Sketch) MarshalBinary() (data []byte, err error) {
	w := new(writer)

	w.writeHeader()

	nbShapes := len(s.Shapes)
	w.writeNumber(nbShapes)

	for _, shape := range s.Shapes {
		w.writeShape(shape)
	}
	data = w.Bytes()

	return
}

type writer struct {
	b bytes.Buffer
}

func (w *writer) Bytes() []byte {
	return w.b.Bytes()
}

func (w *writer) writeHeader() error {
	w.b.Write([]byte(HeaderV1))
	return nil
}

func (w *writer) writeNumber(n int) error {
	binary.Write(&w.b, binary.LittleEndian, uint32(n))
	return nil
}

func (w *writer) writeFloat32(n float32) error {
	binary.Write(&w.b, binary.LittleEndian, n)
	return nil
}

func (w *writer) writeShape(shape Shape) error {
	w.b.WriteByte(shape.Color.R)
	w.b.WriteByte(shape.Color.G)
	w.b.WriteByte(shape.Color.B)
	w.b.WriteByte(shape.Color.A)
	w.writeNumber(int(shape.Style))
	w.writeFloat32(shape.MaxWidth)

	nbPoints := len(shape.Points)
	w.writeNumber(nbPoints)

	for _, point := range shape.Points {
		w.writePoint(point)
	}

	return nil
}

func (w *writer) writePoint(point Point) error {
	w.writeFloat32(point.X)
	w.writeFloat32(point.Y)
	w.writeFloat32(point.Pressure)

	return nil
}
