// Package pattern implements the pattern manifest engine: a registry of
// declarative UI pattern manifests, a detector that recognizes partial and
// complete pattern instances inside a canvas document, a validator that
// reports structural and accessibility compliance, and a generator that
// synthesizes a conforming document from a manifest.
package pattern

import (
	"github.com/stencil-design/stencil/canvas"
)

// Layer places a pattern in the composition hierarchy.
type Layer string

const (
	LayerPrimitives Layer = "primitives"
	LayerCompounds  Layer = "compounds"
	LayerComposers  Layer = "composers"
	LayerAssemblies Layer = "assemblies"
)

// Valid reports whether l is one of the known layers.
func (l Layer) Valid() bool {
	switch l {
	case LayerPrimitives, LayerCompounds, LayerComposers, LayerAssemblies:
		return true
	}
	return false
}

// Category groups patterns by interaction role.
type Category string

const (
	CategoryNavigation Category = "navigation"
	CategoryOverlay    Category = "overlay"
	CategoryDisclosure Category = "disclosure"
	CategoryInput      Category = "input"
	CategoryContainer  Category = "container"
	CategoryLayout     Category = "layout"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryNavigation, CategoryOverlay, CategoryDisclosure,
		CategoryInput, CategoryContainer, CategoryLayout:
		return true
	}
	return false
}

// Manifest declaratively describes a reusable UI pattern: its required node
// structure, inter-node relationships, emission templates, accessibility
// rules, and validation rules. Manifests are immutable value data once
// registered; re-registering the same id replaces the previous manifest.
type Manifest struct {
	ID            string           `json:"id"`            // Unique, stable pattern identifier (e.g. "tabs")
	Name          string           `json:"name"`          // Human-readable pattern name
	Description   string           `json:"description"`   // Human-readable description
	Version       string           `json:"version"`       // Manifest version string
	Category      Category         `json:"category"`      // Interaction role
	Layer         Layer            `json:"layer"`         // Composition layer
	Tags          []string         `json:"tags"`          // Free-form lookup tags
	Structure     []NodeDef        `json:"structure"`     // Required node structure
	Relationships []Relationship   `json:"relationships"` // Inter-node relationships
	Emission      EmissionSpec     `json:"emission"`      // Opaque code-emission templates
	Validation    []ValidationRule `json:"validation"`    // Declarative validation rules
	Examples      []Example        `json:"examples"`      // Usage examples
}

// NodeDef describes one abstract node in a pattern's structure.
type NodeDef struct {
	ID          string          `json:"id"`                    // Unique within the manifest's structure
	Name        string          `json:"name"`                  // Human-readable node name
	Type        canvas.NodeType `json:"type"`                  // frame, text, component, or group
	SemanticKey string          `json:"semanticKey,omitempty"` // Key this node is matched by, when present
	Required    bool            `json:"required"`              // Whether a match must bind this definition
	Multiple    bool            `json:"multiple,omitempty"`    // Whether repeated instances are expected
	Properties  map[string]any  `json:"properties,omitempty"`  // Opaque design properties
	Children    []string        `json:"children,omitempty"`    // Definition ids expected beneath this node
	Position    *Position       `json:"position,omitempty"`    // Placement hint relative to another definition
}

// Position is a placement hint anchoring one definition to another.
type Position struct {
	RelativeTo string       `json:"relativeTo"`          // Definition id this node is placed against
	Offset     canvas.Point `json:"offset"`              // Offset from the anchor
	Alignment  string       `json:"alignment,omitempty"` // e.g. "start", "center", "end"
}

// RelationshipType is the closed set of inter-node relationship kinds.
type RelationshipType string

const (
	RelControls    RelationshipType = "controls"
	RelLabelledBy  RelationshipType = "labelledby"
	RelDescribedBy RelationshipType = "describedby"
	RelOwns        RelationshipType = "owns"
	RelParent      RelationshipType = "parent"
)

// Valid reports whether t is one of the known relationship types.
func (t RelationshipType) Valid() bool {
	switch t {
	case RelControls, RelLabelledBy, RelDescribedBy, RelOwns, RelParent:
		return true
	}
	return false
}

// Relationship links two structure definitions, typically mirroring an ARIA
// relationship in the emitted markup.
type Relationship struct {
	From        string           `json:"from"`        // Source definition id
	To          string           `json:"to"`          // Target definition id
	Type        RelationshipType `json:"type"`        // Relationship kind
	Required    bool             `json:"required"`    // Whether a valid instance must satisfy it
	Description string           `json:"description"` // Human-readable description
}

// EmissionSpec carries the pattern's code-emission templates. Templates are
// opaque strings with placeholder syntax; the engine never interprets them.
// They are handed to a separate code-generation stage driven by an instance's
// node mappings.
type EmissionSpec struct {
	HTML          string              `json:"html,omitempty"`          // HTML template
	React         string              `json:"react,omitempty"`         // React template
	Accessibility []AccessibilityRule `json:"accessibility,omitempty"` // Accessibility requirements
}

// AccessibilityRule declares an accessibility requirement for one definition.
type AccessibilityRule struct {
	Node        string            `json:"node"`                  // Definition id the rule applies to
	Role        string            `json:"role,omitempty"`        // ARIA role
	Attributes  map[string]string `json:"attributes,omitempty"`  // Required ARIA attributes
	Description string            `json:"description,omitempty"` // Human-readable description
}

// ValidationRule is an auxiliary declarative rule carried through unchanged;
// the matching algorithm does not interpret it.
type ValidationRule struct {
	ID          string `json:"id"`
	Severity    string `json:"severity"` // "error" or "warning"
	Description string `json:"description"`
}

// Example captures a usage example of the pattern.
type Example struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Source      string `json:"source,omitempty"` // Example document or snippet reference
}

// Instance is the result of matching a manifest's structure against nodes in
// a specific document. Instances are transient: created per detection pass
// and discarded once the caller consumes them.
type Instance struct {
	PatternID        string            `json:"patternId"`        // Manifest id this instance matches
	RootNodeID       string            `json:"rootNodeId"`       // Concrete root node of the match
	NodeMappings     map[string]string `json:"nodeMappings"`     // Definition id -> canvas node id
	IsComplete       bool              `json:"isComplete"`       // True when ValidationErrors is empty
	ValidationErrors []string          `json:"validationErrors"` // Itemized detection failures
}

// GenerateSpec controls document synthesis from a manifest.
type GenerateSpec struct {
	Name       string         `json:"name"`                 // Name for the generated document and artboard
	Position   *canvas.Point  `json:"position,omitempty"`   // Offset applied to generated node geometry
	Properties map[string]any `json:"properties,omitempty"` // Opaque overrides, carried per-node
}
