package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stencil-design/stencil/pattern"
)

const tabsDocJSON = `{
  "schemaVersion": "1.0",
  "id": "doc-1",
  "name": "Tabs fixture",
  "artboards": [
    {
      "id": "ab-1",
      "name": "Artboard",
      "frame": {"x": 0, "y": 0, "width": 800, "height": 600},
      "children": [
        {
          "type": "frame",
          "id": "container",
          "name": "Tabs",
          "frame": {"x": 0, "y": 0, "width": 300, "height": 200},
          "semanticKey": "tabs.container",
          "children": [
            {
              "type": "frame",
              "id": "tablist",
              "name": "Tab list",
              "frame": {"x": 0, "y": 0, "width": 300, "height": 40},
              "semanticKey": "tabs.tablist",
              "children": [
                {"type": "text", "id": "tab-0", "name": "Tab", "frame": {"x": 0, "y": 0, "width": 80, "height": 40}, "semanticKey": "tabs.tab[0]", "text": "Tab one"}
              ]
            },
            {"type": "frame", "id": "panel-0", "name": "Panel", "frame": {"x": 0, "y": 40, "width": 300, "height": 160}, "semanticKey": "tabs.tabpanel[0]", "children": []}
          ]
        }
      ]
    }
  ]
}`

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	registry := pattern.NewRegistry()
	require.NoError(t, pattern.RegisterBuiltins(registry))
	srv := New("localhost:0", registry, zap.NewNop())
	t.Cleanup(func() { srv.hub.Close() })
	return srv.httpServer.Handler
}

func doRequest(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)
	rec := doRequest(h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestListPatterns(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(h, http.MethodGet, "/api/patterns", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	for _, id := range []string{"tabs", "dialog", "accordion", "form", "card", "navigation"} {
		assert.Contains(t, rec.Body.String(), `"id":"`+id+`"`)
	}

	rec = doRequest(h, http.MethodGet, "/api/patterns?category=overlay", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"dialog"`)
	assert.NotContains(t, rec.Body.String(), `"id":"tabs"`)

	rec = doRequest(h, http.MethodGet, "/api/patterns?q=tab", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"tabs"`)
}

func TestGetPattern(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(h, http.MethodGet, "/api/patterns/tabs", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"tabs"`)

	rec = doRequest(h, http.MethodGet, "/api/patterns/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDetect(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(h, http.MethodPost, "/api/detect", tabsDocJSON)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"patternId":"tabs"`)
	assert.Contains(t, rec.Body.String(), `"isComplete":true`)

	rec = doRequest(h, http.MethodPost, "/api/detect", `{"bad json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidate(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(h, http.MethodPost, "/api/validate", tabsDocJSON)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":true`)

	incomplete := strings.Replace(tabsDocJSON,
		`{"type": "frame", "id": "panel-0", "name": "Panel", "frame": {"x": 0, "y": 40, "width": 300, "height": 160}, "semanticKey": "tabs.tabpanel[0]", "children": []}`,
		`{"type": "frame", "id": "spacer", "name": "Spacer", "frame": {"x": 0, "y": 40, "width": 300, "height": 160}, "children": []}`, 1)
	rec = doRequest(h, http.MethodPost, "/api/validate", incomplete)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":false`)
	assert.Contains(t, rec.Body.String(), "tabpanel")
}

func TestGenerate(t *testing.T) {
	h := newTestHandler(t)

	rec := doRequest(h, http.MethodPost, "/api/generate", `{"patternId": "tabs", "spec": {"name": "Generated"}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tabs.tablist"`)

	rec = doRequest(h, http.MethodPost, "/api/generate", `{"patternId": "nope", "spec": {}}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "pattern not found")
}
