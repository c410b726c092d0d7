package sketch

import (
	"testing"
)

func TestMarshalBinary(t *testing.T) {
	points := make([]Point, 0)
	for i := 0; i < 200; i++ {
		c := float32(i)

		p := Point{
			X:        100,
			Y:        c,
			Pressure: .3,
		}
		points = append(points, p)
	}

	s := Sketch{
		Shapes: []Shape{
			{
				Color:    Color{0, 155, 0, 255},
				Style:    Solid,
				MaxWidth: 10,
				Points:   points,
			},
			{
				Color:    Color{20, 255, 190, 255},
				Style:    Dotted,
				MaxWidth: 10,
				Points: []Point{
					{
						X:        100,
						Y:        100,
						Pressure: .3,
					},
					{
						X:        1000,
						Y:        1000,
						Pressure: .8,
					},
				},
			},
		},
	}

	data, err := s.MarshalBinary()
	if err != nil {
		t.Error(err)
	}

	var back Sketch
	if err := back.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}

	if back.Version != V1 {
		t.Errorf("expected version 1 got %d", back.Version)
	}

	if len(back.Shapes) != 2 {
		t.Fatalf("expected 2 shapes got %d", len(back.Shapes))
	}

	if len(back.Shapes[0].Points) != 200 {
		t.Errorf("expected 200 points got %d", len(back.Shapes[0].Points))
	}

	if back.Shapes[1].Style != Dotted {
		t.Errorf("expected dotted style got %d", back.Shapes[1].Style)
	}

	p := back.Shapes[1].Points[1]
	if p.X != 1000 || p.Y != 1000 || p.Pressure != .8 {
		t.Errorf("unexpected point %+v", p)
	}
}

func TestUnmarshalUnknownHeader(t *testing.T) {
	data := make([]byte, HeaderLen+4)
	copy(data, "not a sketch file at all")

	var s Sketch
	if err := s.UnmarshalBinary(data); err == nil {
		t.Error("expected an error for an unknown header")
	}
}

func TestUnmarshalTruncated(t *testing.T) {
	s := Sketch{
		Shapes: []Shape{
			{
				MaxWidth: 5,
				Points:   []Point{{X: 1, Y: 2, Pressure: 1}},
			},
		},
	}

	data, err := s.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	var back Sketch
	if err := back.UnmarshalBinary(data[:len(data)-4]); err == nil {
		t.Error("expected an error for truncated data")
	}
}
