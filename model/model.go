// Package model holds the document metadata stored next to sketch
// content.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/inkpad/inkpad/encoding/sketch"
	"github.com/inkpad/inkpad/gesture"
)

// Drawing is the metadata record of one stored sketch.
type Drawing struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Width      int       `json:"width"`
	Height     int       `json:"height"`
	CreatedAt  time.Time `json:"createdAt"`
	ModifiedAt time.Time `json:"modifiedAt"`

	// Hash is the content hash of the marshalled sketch, used to
	// skip writes when nothing changed.
	Hash string `json:"hash,omitempty"`
}

// NewDrawing creates metadata for a fresh drawing with a generated id.
func NewDrawing(name string, width, height int) Drawing {
	now := time.Now().UTC()
	return Drawing{
		ID:         uuid.New().String(),
		Name:       name,
		Width:      width,
		Height:     height,
		CreatedAt:  now,
		ModifiedAt: now,
	}
}

// GesturePoints strips pressure from a shape and converts it to the
// point sequence the gesture pipeline operates on.
func GesturePoints(shape sketch.Shape) []gesture.Point {
	points := make([]gesture.Point, len(shape.Points))
	for i, p := range shape.Points {
		points[i] = gesture.Point{X: float64(p.X), Y: float64(p.Y)}
	}
	return points
}
