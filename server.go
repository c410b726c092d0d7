package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	"github.com/inkpad/inkpad/config"
	"github.com/inkpad/inkpad/gesture"
	"github.com/inkpad/inkpad/log"
	"github.com/inkpad/inkpad/render"
	"github.com/inkpad/inkpad/store"
)

type ApiServer struct {
	store *store.Store
	cfg   config.Config
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// NormalizeRequest carries one raw stroke as parallel coordinate
// arrays, the same shape tablet ink APIs use. Pressure is accepted
// and ignored; the pipeline operates on positions only.
type NormalizeRequest struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
	P []float64 `json:"p,omitempty"`

	SampleCount   int     `json:"sampleCount,omitempty"`
	CanonicalSize float64 `json:"canonicalSize,omitempty"`
}

type NormalizeResponse struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

func NewApiServer(s *store.Store, cfg config.Config) *ApiServer {
	return &ApiServer{store: s, cfg: cfg}
}

var drawingPath = regexp.MustCompile(`^/api/drawings/([^/]+?)(\.svg|\.png)?$`)

func (srv *ApiServer) Serve(addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/normalize", srv.handleNormalize)
	mux.HandleFunc("/api/drawings", srv.handleList)
	mux.HandleFunc("/api/drawings/", srv.handleDrawing)

	log.Info.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func (srv *ApiServer) handleNormalize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("POST required"))
		return
	}

	var req NormalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if len(req.X) != len(req.Y) {
		writeError(w, http.StatusBadRequest,
			fmt.Errorf("x and y must have the same length"))
		return
	}

	points := make([]gesture.Point, len(req.X))
	for i := range req.X {
		points[i] = gesture.Point{X: req.X[i], Y: req.Y[i]}
	}

	opts := gesture.Options{
		SampleCount:   req.SampleCount,
		CanonicalSize: req.CanonicalSize,
	}
	if opts.SampleCount == 0 {
		opts.SampleCount = srv.cfg.Gesture.SampleCount
	}
	if opts.CanonicalSize == 0 {
		opts.CanonicalSize = srv.cfg.Gesture.CanonicalSize
	}

	normalized, err := gesture.Normalize(points, opts)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	resp := NormalizeResponse{
		X: make([]float64, len(normalized)),
		Y: make([]float64, len(normalized)),
	}
	for i, p := range normalized {
		resp.X[i] = p.X
		resp.Y[i] = p.Y
	}

	writeJSON(w, SuccessResponse{Data: resp})
}

func (srv *ApiServer) handleList(w http.ResponseWriter, r *http.Request) {
	drawings, err := srv.store.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, SuccessResponse{Data: drawings})
}

func (srv *ApiServer) handleDrawing(w http.ResponseWriter, r *http.Request) {
	m := drawingPath.FindStringSubmatch(r.URL.Path)
	if m == nil {
		writeError(w, http.StatusNotFound, fmt.Errorf("not found"))
		return
	}
	id, ext := m[1], m[2]

	meta, sk, err := srv.store.Load(id)
	if err != nil {
		status := http.StatusInternalServerError
		if err == store.ErrNotFound {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}

	switch ext {
	case ".svg":
		w.Header().Set("Content-Type", "image/svg+xml")
		if err := render.WriteSVG(w, meta, sk, render.SVGOptions{}); err != nil {
			log.Trace.Printf("svg render failed: %v", err)
		}
	case ".png":
		w.Header().Set("Content-Type", "image/png")
		if err := render.WritePNG(w, meta, sk); err != nil {
			log.Trace.Printf("png render failed: %v", err)
		}
	default:
		writeJSON(w, SuccessResponse{Data: meta})
	}
}
