package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpad/inkpad/encoding/sketch"
	"github.com/inkpad/inkpad/gesture"
)

func TestNewDrawing(t *testing.T) {
	d := NewDrawing("test", 800, 600)

	assert.NotEmpty(t, d.ID)
	assert.Equal(t, "test", d.Name)
	assert.Equal(t, d.CreatedAt, d.ModifiedAt)

	other := NewDrawing("test", 800, 600)
	assert.NotEqual(t, d.ID, other.ID)
}

func TestGesturePointsStripsPressure(t *testing.T) {
	shape := sketch.Shape{
		Points: []sketch.Point{
			{X: 1, Y: 2, Pressure: 0.7},
			{X: 3, Y: 4, Pressure: 0.2},
		},
	}

	points := GesturePoints(shape)

	require.Len(t, points, 2)
	assert.Equal(t, gesture.Point{X: 1, Y: 2}, points[0])
	assert.Equal(t, gesture.Point{X: 3, Y: 4}, points[1])
}
