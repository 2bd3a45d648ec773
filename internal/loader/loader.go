// Package loader reads canvas documents and pattern manifests from JSON
// files. It exists so the CLI and server can feed the engine from disk while
// the engine itself stays free of I/O.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/stencil-design/stencil/canvas"
	"github.com/stencil-design/stencil/pattern"
)

// LoadDocument reads and decodes a canvas document from path.
func LoadDocument(path string) (*canvas.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	doc, err := canvas.ParseDocument(data)
	if err != nil {
		return nil, fmt.Errorf("parse document %s: %w", path, err)
	}
	return doc, nil
}

// LoadManifest reads and decodes a single pattern manifest from path.
// The manifest is decoded only; structural validation happens at
// registration time.
func LoadManifest(path string) (*pattern.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m pattern.Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest %s: %w", path, err)
	}
	return &m, nil
}

// RegisterManifestDir loads every .json file in dir and registers it in the
// registry. Files are processed in name order so later files win id
// collisions deterministically. Returns the number of manifests registered.
func RegisterManifestDir(r *pattern.Registry, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read manifest dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	count := 0
	for _, name := range names {
		path := filepath.Join(dir, name)
		m, err := LoadManifest(path)
		if err != nil {
			return count, err
		}
		if err := r.Register(m); err != nil {
			return count, fmt.Errorf("register %s: %w", path, err)
		}
		count++
	}
	return count, nil
}

// NewRegistry builds a registry holding the built-in pattern set plus any
// manifests found in the given directories.
func NewRegistry(manifestDirs ...string) (*pattern.Registry, error) {
	r := pattern.NewRegistry()
	if err := pattern.RegisterBuiltins(r); err != nil {
		return nil, err
	}
	for _, dir := range manifestDirs {
		if dir == "" {
			continue
		}
		if _, err := RegisterManifestDir(r, dir); err != nil {
			return nil, err
		}
	}
	return r, nil
}
