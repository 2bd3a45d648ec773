// Package canvas defines the canvas document model: a tree-structured design
// document in which artboards contain nested frame, text, image, component,
// group, and vector nodes. Nodes may carry a semantic key, a stable
// human-readable identifier (e.g. "hero.title") that expresses design intent
// independent of node id or position.
package canvas

// Document is the root of a canvas document.
type Document struct {
	SchemaVersion string     `json:"schemaVersion"` // Document schema version for evolution
	ID            string     `json:"id"`            // Stable document identifier
	Name          string     `json:"name"`          // Human-readable document name
	Artboards     []Artboard `json:"artboards"`     // Top-level artboards
}

// Artboard is a top-level drawing surface holding a node tree.
type Artboard struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Frame    Rect   `json:"frame"`
	Children []Node `json:"children"`
}

// Rect is a node's geometry in artboard coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Point is a 2D offset.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
