package pattern

import (
	"errors"
	"strings"
	"testing"
)

func minimalManifest(id string) *Manifest {
	return &Manifest{
		ID:       id,
		Name:     strings.ToUpper(id[:1]) + id[1:],
		Category: CategoryContainer,
		Layer:    LayerPrimitives,
		Structure: []NodeDef{
			{ID: "root", Name: "root", Type: "frame", Required: true},
		},
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(minimalManifest("badge")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if m := r.Get("badge"); m == nil || m.Name != "Badge" {
		t.Errorf("Get(badge) = %v, want Badge manifest", m)
	}
	if m := r.Get("missing"); m != nil {
		t.Errorf("Get(missing) = %v, want nil", m)
	}
}

func TestRegistry_LastWriteWins(t *testing.T) {
	r := NewRegistry()
	first := minimalManifest("badge")
	first.Description = "first"
	second := minimalManifest("badge")
	second.Description = "second"

	if err := r.Register(first); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if err := r.Register(second); err != nil {
		t.Fatalf("re-Register failed: %v", err)
	}

	if r.Len() != 1 {
		t.Errorf("Len = %d, want 1", r.Len())
	}
	if m := r.Get("badge"); m.Description != "second" {
		t.Errorf("description: got %s, want second (last write wins)", m.Description)
	}
}

func TestRegistry_Filters(t *testing.T) {
	r := NewRegistry()
	if err := RegisterBuiltins(r); err != nil {
		t.Fatalf("RegisterBuiltins failed: %v", err)
	}

	nav := r.GetByCategory(CategoryNavigation)
	if len(nav) != 2 {
		t.Errorf("GetByCategory(navigation) returned %d manifests, want 2 (tabs, navigation)", len(nav))
	}

	composers := r.GetByLayer(LayerComposers)
	if len(composers) != 1 || composers[0].ID != "form" {
		t.Errorf("GetByLayer(composers) = %v, want [form]", ids(composers))
	}

	aria := r.GetByTag("aria")
	if len(aria) != 2 {
		t.Errorf("GetByTag(aria) returned %d manifests, want 2 (tabs, dialog)", len(aria))
	}
	if len(r.GetByTag("no-such-tag")) != 0 {
		t.Error("GetByTag(no-such-tag) should return nothing")
	}
}

func TestRegistry_SearchCaseInsensitive(t *testing.T) {
	r := NewRegistry()
	if err := RegisterBuiltins(r); err != nil {
		t.Fatalf("RegisterBuiltins failed: %v", err)
	}

	for _, query := range []string{"tab", "TAB", "Tab"} {
		found := false
		for _, m := range r.Search(query) {
			if m.ID == "tabs" {
				found = true
			}
		}
		if !found {
			t.Errorf("Search(%q) did not return the Tabs manifest", query)
		}
	}

	// Description text matches too.
	results := r.Search("modal")
	if len(results) != 1 || results[0].ID != "dialog" {
		t.Errorf("Search(modal) = %v, want [dialog]", ids(results))
	}
}

func TestRegistry_RejectsUndeclaredRelationshipEndpoint(t *testing.T) {
	m := minimalManifest("broken")
	m.Relationships = []Relationship{
		{From: "root", To: "ghost", Type: RelControls, Required: true},
	}

	err := NewRegistry().Register(m)
	if err == nil {
		t.Fatal("expected rejection for undeclared relationship endpoint")
	}
	var manifestErr *ManifestError
	if !errors.As(err, &manifestErr) {
		t.Fatalf("expected *ManifestError, got %T", err)
	}
	if !strings.Contains(err.Error(), "ghost") {
		t.Errorf("error should name the undeclared endpoint: %v", err)
	}
}

func TestRegistry_RejectsUndeclaredPositionAnchor(t *testing.T) {
	m := minimalManifest("broken")
	m.Structure = append(m.Structure, NodeDef{
		ID:       "floater",
		Name:     "floater",
		Type:     "text",
		Position: &Position{RelativeTo: "nowhere"},
	})

	if err := NewRegistry().Register(m); err == nil {
		t.Fatal("expected rejection for undeclared position anchor")
	}
}

func TestRegistry_RejectsMalformedManifests(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Manifest)
	}{
		{"empty id", func(m *Manifest) { m.ID = "" }},
		{"empty name", func(m *Manifest) { m.Name = "" }},
		{"unknown category", func(m *Manifest) { m.Category = "decoration" }},
		{"unknown layer", func(m *Manifest) { m.Layer = "molecules" }},
		{"empty structure", func(m *Manifest) { m.Structure = nil }},
		{"duplicate definition id", func(m *Manifest) {
			m.Structure = append(m.Structure, m.Structure[0])
		}},
		{"image structure type", func(m *Manifest) { m.Structure[0].Type = "image" }},
		{"unknown relationship type", func(m *Manifest) {
			m.Relationships = []Relationship{{From: "root", To: "root", Type: "decorates"}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := minimalManifest("broken")
			tt.mutate(m)
			if err := NewRegistry().Register(m); err == nil {
				t.Error("expected rejection, got nil")
			}
		})
	}
}

func TestRegistry_BuiltinsRegisterCleanly(t *testing.T) {
	r := NewRegistry()
	if err := RegisterBuiltins(r); err != nil {
		t.Fatalf("RegisterBuiltins failed: %v", err)
	}
	if r.Len() != 6 {
		t.Errorf("builtin count: got %d, want 6", r.Len())
	}
	for _, id := range []string{"tabs", "dialog", "accordion", "form", "card", "navigation"} {
		if r.Get(id) == nil {
			t.Errorf("builtin %q not registered", id)
		}
	}
}

func ids(ms []*Manifest) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}
