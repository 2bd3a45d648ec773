package pattern

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry is an in-memory store of pattern manifests with indexed lookup by
// id, category, layer, and tag. It is an explicit value: construct one with
// NewRegistry and pass it to the Detector, Validator, and Generator. The
// intended usage is single-writer-then-read-only; once population finishes,
// concurrent readers need no coordination, and the internal lock makes even
// mixed usage safe.
type Registry struct {
	mu        sync.RWMutex
	manifests map[string]*Manifest

	// Pre-computed indexes, rebuilt on registration.
	byCategory map[Category][]*Manifest
	byLayer    map[Layer][]*Manifest
	byTag      map[string][]*Manifest
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		manifests:  make(map[string]*Manifest),
		byCategory: make(map[Category][]*Manifest),
		byLayer:    make(map[Layer][]*Manifest),
		byTag:      make(map[string][]*Manifest),
	}
}

// ManifestError aggregates the structural problems found in a manifest at
// registration time. Malformed manifests are rejected eagerly rather than
// allowed to silently never match.
type ManifestError struct {
	ManifestID string
	Problems   []string
}

// Error implements the error interface.
func (e *ManifestError) Error() string {
	return fmt.Sprintf("manifest %q rejected with %d problem(s): %s",
		e.ManifestID, len(e.Problems), strings.Join(e.Problems, "; "))
}

// Register validates the manifest and inserts it, replacing any previously
// registered manifest with the same id (last write wins). The manifest is
// stored as-is and must not be mutated by the caller afterwards.
func (r *Registry) Register(m *Manifest) error {
	if m == nil {
		return fmt.Errorf("register: nil manifest")
	}
	if err := validateManifest(m); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.manifests[m.ID] = m
	r.rebuildIndexes()
	return nil
}

// rebuildIndexes recomputes the category, layer, and tag indexes.
// Caller must hold the write lock.
func (r *Registry) rebuildIndexes() {
	r.byCategory = make(map[Category][]*Manifest)
	r.byLayer = make(map[Layer][]*Manifest)
	r.byTag = make(map[string][]*Manifest)
	for _, m := range r.manifests {
		r.byCategory[m.Category] = append(r.byCategory[m.Category], m)
		r.byLayer[m.Layer] = append(r.byLayer[m.Layer], m)
		for _, tag := range m.Tags {
			r.byTag[tag] = append(r.byTag[tag], m)
		}
	}
}

// Get returns the manifest with the given id, or nil when absent.
func (r *Registry) Get(id string) *Manifest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.manifests[id]
}

// GetAll returns every registered manifest, sorted by id for stable output.
func (r *Registry) GetAll() []*Manifest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]*Manifest, 0, len(r.manifests))
	for _, m := range r.manifests {
		all = append(all, m)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// GetByCategory returns all manifests with the given category.
func (r *Registry) GetByCategory(c Category) []*Manifest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedCopy(r.byCategory[c])
}

// GetByLayer returns all manifests with the given layer.
func (r *Registry) GetByLayer(l Layer) []*Manifest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedCopy(r.byLayer[l])
}

// GetByTag returns all manifests carrying the given tag (exact match).
func (r *Registry) GetByTag(tag string) []*Manifest {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedCopy(r.byTag[tag])
}

// Search returns all manifests whose name or description contains the query,
// case-insensitively.
func (r *Registry) Search(query string) []*Manifest {
	q := strings.ToLower(query)
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []*Manifest
	for _, m := range r.manifests {
		if strings.Contains(strings.ToLower(m.Name), q) ||
			strings.Contains(strings.ToLower(m.Description), q) {
			result = append(result, m)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Len returns the number of registered manifests.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.manifests)
}

func sortedCopy(ms []*Manifest) []*Manifest {
	out := make([]*Manifest, len(ms))
	copy(out, ms)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// structureTypes are the node types a structure definition may declare.
var structureTypes = map[string]bool{
	"frame":     true,
	"text":      true,
	"component": true,
	"group":     true,
}

// validateManifest checks a manifest's internal consistency: ids present,
// enums within their closed sets, structure definition ids unique, and every
// relationship endpoint and position anchor referencing a declared definition.
func validateManifest(m *Manifest) error {
	var problems []string

	if m.ID == "" {
		problems = append(problems, "id is required")
	}
	if m.Name == "" {
		problems = append(problems, "name is required")
	}
	if !m.Category.Valid() {
		problems = append(problems, fmt.Sprintf("unknown category %q", m.Category))
	}
	if !m.Layer.Valid() {
		problems = append(problems, fmt.Sprintf("unknown layer %q", m.Layer))
	}
	if len(m.Structure) == 0 {
		problems = append(problems, "structure must declare at least one node definition")
	}

	defined := make(map[string]bool, len(m.Structure))
	for i, def := range m.Structure {
		if def.ID == "" {
			problems = append(problems, fmt.Sprintf("structure[%d]: definition id is required", i))
			continue
		}
		if defined[def.ID] {
			problems = append(problems, fmt.Sprintf("structure[%d]: duplicate definition id %q", i, def.ID))
		}
		defined[def.ID] = true
		if !structureTypes[string(def.Type)] {
			problems = append(problems, fmt.Sprintf("definition %q: unknown node type %q", def.ID, def.Type))
		}
	}

	// Second pass: references are checked only after all ids are collected,
	// so declaration order inside structure does not matter.
	for _, def := range m.Structure {
		if def.Position != nil && !defined[def.Position.RelativeTo] {
			problems = append(problems, fmt.Sprintf(
				"definition %q: position.relativeTo references undeclared definition %q",
				def.ID, def.Position.RelativeTo))
		}
		for _, child := range def.Children {
			if !defined[child] {
				problems = append(problems, fmt.Sprintf(
					"definition %q: children references undeclared definition %q", def.ID, child))
			}
		}
	}

	for i, rel := range m.Relationships {
		if !rel.Type.Valid() {
			problems = append(problems, fmt.Sprintf("relationship[%d]: unknown type %q", i, rel.Type))
		}
		if !defined[rel.From] {
			problems = append(problems, fmt.Sprintf(
				"relationship[%d]: from references undeclared definition %q", i, rel.From))
		}
		if !defined[rel.To] {
			problems = append(problems, fmt.Sprintf(
				"relationship[%d]: to references undeclared definition %q", i, rel.To))
		}
	}

	if len(problems) > 0 {
		return &ManifestError{ManifestID: m.ID, Problems: problems}
	}
	return nil
}
