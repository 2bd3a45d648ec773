package pattern

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/stencil-design/stencil/canvas"
)

// Default geometry for generated nodes.
const (
	containerWidth  = 300
	containerHeight = 100
	leafWidth       = 200
	leafHeight      = 40

	artboardWidth  = 800
	artboardHeight = 600
)

// Generator synthesizes canvas documents from pattern manifests. It reads the
// registry independently of the detector and validator.
type Generator struct {
	registry *Registry
}

// NewGenerator returns a generator reading manifests from the given registry.
func NewGenerator(registry *Registry) *Generator {
	return &Generator{registry: registry}
}

// GenerateFromPattern builds a new document realizing the named pattern: one
// artboard holding one node per structure definition, flatly appended in
// declaration order. Position hints between definitions are not used for
// nesting; generated nodes are siblings.
//
// An unknown pattern id is an error naming the id, and no document is
// returned on that path. Two calls with identical input produce structurally
// identical documents; only the generated ids differ.
func (g *Generator) GenerateFromPattern(patternID string, spec GenerateSpec) (*canvas.Document, error) {
	m := g.registry.Get(patternID)
	if m == nil {
		return nil, fmt.Errorf("pattern not found: %q", patternID)
	}

	var offset canvas.Point
	if spec.Position != nil {
		offset = *spec.Position
	}

	children := make([]canvas.Node, 0, len(m.Structure))
	for _, def := range m.Structure {
		children = append(children, newNode(def, offset))
	}

	name := spec.Name
	if name == "" {
		name = m.Name
	}

	return &canvas.Document{
		SchemaVersion: "1.0",
		ID:            newNodeID(),
		Name:          name,
		Artboards: []canvas.Artboard{{
			ID:       newNodeID(),
			Name:     name,
			Frame:    canvas.Rect{Width: artboardWidth, Height: artboardHeight},
			Children: children,
		}},
	}, nil
}

// newNode materializes one structure definition as a concrete canvas node.
func newNode(def NodeDef, offset canvas.Point) canvas.Node {
	base := canvas.BaseNode{
		ID:          newNodeID(),
		Type:        def.Type,
		Name:        def.Name,
		SemanticKey: def.SemanticKey,
	}
	if def.Type.Container() {
		base.Frame = canvas.Rect{X: offset.X, Y: offset.Y, Width: containerWidth, Height: containerHeight}
	} else {
		base.Frame = canvas.Rect{X: offset.X, Y: offset.Y, Width: leafWidth, Height: leafHeight}
	}

	switch def.Type {
	case canvas.NodeFrame:
		return &canvas.FrameNode{BaseNode: base, Children: []canvas.Node{}}
	case canvas.NodeGroup:
		return &canvas.GroupNode{BaseNode: base, Children: []canvas.Node{}}
	case canvas.NodeText:
		return &canvas.TextNode{BaseNode: base, Text: def.Name}
	case canvas.NodeComponent:
		props := def.Properties
		return &canvas.ComponentNode{BaseNode: base, Props: props}
	default:
		// Registration validation restricts structure types, so this is
		// unreachable for registered manifests.
		return &canvas.FrameNode{BaseNode: base, Children: []canvas.Node{}}
	}
}

// newNodeID returns a globally unique, lexicographically sortable identifier.
// UUIDv7 ids are time-ordered, so nodes generated later sort later.
func newNodeID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails when the random source does; fall back to v4.
		return uuid.NewString()
	}
	return id.String()
}
