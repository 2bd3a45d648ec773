package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/stencil-design/stencil/canvas"
	"github.com/stencil-design/stencil/internal/web/live"
	"github.com/stencil-design/stencil/pattern"
)

// API implements the HTTP handlers over the pattern engine.
type API struct {
	registry  *pattern.Registry
	detector  *pattern.Detector
	validator *pattern.Validator
	generator *pattern.Generator
	hub       *live.Hub
	logger    *zap.Logger
}

// NewAPI wires the engine components for the given registry.
func NewAPI(registry *pattern.Registry, hub *live.Hub, logger *zap.Logger) *API {
	return &API{
		registry:  registry,
		detector:  pattern.NewDetector(registry),
		validator: pattern.NewValidator(registry),
		generator: pattern.NewGenerator(registry),
		hub:       hub,
		logger:    logger,
	}
}

// Health reports liveness.
func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"patterns": a.registry.Len(),
	})
}

// ListPatterns returns registered manifests, optionally filtered by
// category, layer, tag, or a free-text query.
func (a *API) ListPatterns(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var manifests []*pattern.Manifest
	switch {
	case q.Get("q") != "":
		manifests = a.registry.Search(q.Get("q"))
	case q.Get("category") != "":
		manifests = a.registry.GetByCategory(pattern.Category(q.Get("category")))
	case q.Get("layer") != "":
		manifests = a.registry.GetByLayer(pattern.Layer(q.Get("layer")))
	case q.Get("tag") != "":
		manifests = a.registry.GetByTag(q.Get("tag"))
	default:
		manifests = a.registry.GetAll()
	}

	writeJSON(w, http.StatusOK, map[string]any{"patterns": manifests})
}

// GetPattern returns one manifest by id.
func (a *API) GetPattern(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	m := a.registry.Get(id)
	if m == nil {
		writeError(w, http.StatusNotFound, "pattern not found: "+id)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

// Detect runs pattern detection over a posted document.
func (a *API) Detect(w http.ResponseWriter, r *http.Request) {
	doc, ok := a.readDocument(w, r)
	if !ok {
		return
	}
	instances := a.detector.DetectPatterns(doc)
	if instances == nil {
		instances = []pattern.Instance{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"instances": instances})
}

// Validate runs pattern validation over a posted document and pushes the
// report to live subscribers.
func (a *API) Validate(w http.ResponseWriter, r *http.Request) {
	doc, ok := a.readDocument(w, r)
	if !ok {
		return
	}
	report := a.validator.ValidatePatterns(doc)
	a.hub.PublishReport(doc.Name, report, nil)
	writeJSON(w, http.StatusOK, report)
}

// generateRequest is the body of POST /api/generate.
type generateRequest struct {
	PatternID string               `json:"patternId"`
	Spec      pattern.GenerateSpec `json:"spec"`
}

// Generate synthesizes a document from a registered pattern.
func (a *API) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	doc, err := a.generator.GenerateFromPattern(req.PatternID, req.Spec)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// readDocument decodes the request body as a canvas document, writing a 400
// response on failure.
func (a *API) readDocument(w http.ResponseWriter, r *http.Request) (*canvas.Document, bool) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, false
	}
	doc, err := canvas.ParseDocument(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return doc, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
