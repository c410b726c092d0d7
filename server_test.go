package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpad/inkpad/config"
	"github.com/inkpad/inkpad/encoding/sketch"
	"github.com/inkpad/inkpad/model"
	"github.com/inkpad/inkpad/store"
)

func testServer(t *testing.T) *ApiServer {
	t.Helper()

	s, err := store.Open(t.TempDir())
	require.NoError(t, err)

	return NewApiServer(s, config.Default())
}

func TestHandleNormalize(t *testing.T) {
	srv := testServer(t)

	body, _ := json.Marshal(NormalizeRequest{
		X:           []float64{0, 10},
		Y:           []float64{0, 0},
		P:           []float64{1, 1},
		SampleCount: 4,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/normalize", bytes.NewReader(body))
	w := httptest.NewRecorder()

	srv.handleNormalize(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data NormalizeResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data.X, 4)
	// the first sample ends up at bearing 0 from the centroid
	assert.InDelta(t, 100, resp.Data.X[0], 1e-6)
	assert.InDelta(t, 0, resp.Data.X[3], 1e-6)
	assert.InDelta(t, 0, resp.Data.Y[0], 1e-6)
	assert.InDelta(t, 0, resp.Data.Y[3], 1e-6)
}

func TestHandleNormalizeEmptyStroke(t *testing.T) {
	srv := testServer(t)

	body, _ := json.Marshal(NormalizeRequest{})
	req := httptest.NewRequest(http.MethodPost, "/api/normalize", bytes.NewReader(body))
	w := httptest.NewRecorder()

	srv.handleNormalize(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleNormalizeLengthMismatch(t *testing.T) {
	srv := testServer(t)

	body, _ := json.Marshal(NormalizeRequest{X: []float64{1, 2}, Y: []float64{1}})
	req := httptest.NewRequest(http.MethodPost, "/api/normalize", bytes.NewReader(body))
	w := httptest.NewRecorder()

	srv.handleNormalize(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleDrawing(t *testing.T) {
	srv := testServer(t)

	meta := model.NewDrawing("circle", 100, 100)
	sk := &sketch.Sketch{
		Shapes: []sketch.Shape{
			{
				MaxWidth: 5,
				Points: []sketch.Point{
					{X: 10, Y: 10, Pressure: 1},
					{X: 90, Y: 90, Pressure: 1},
				},
			},
		},
	}
	require.NoError(t, srv.store.Save(meta, sk))

	req := httptest.NewRequest(http.MethodGet, "/api/drawings/"+meta.ID+".svg", nil)
	w := httptest.NewRecorder()

	srv.handleDrawing(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<svg ")
}

func TestHandleDrawingNotFound(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/drawings/nope", nil)
	w := httptest.NewRecorder()

	srv.handleDrawing(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
