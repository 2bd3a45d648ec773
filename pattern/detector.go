package pattern

import (
	"fmt"

	"github.com/stencil-design/stencil/canvas"
)

// Detector finds pattern instances in canvas documents. It is a single-pass
// heuristic matcher: each manifest and each candidate root is evaluated
// independently, with no backtracking and no global optimization across
// candidates. Detection never fails; a pattern that does not occur in the
// document is simply absent from the result.
type Detector struct {
	registry *Registry
}

// NewDetector returns a detector reading manifests from the given registry.
func NewDetector(registry *Registry) *Detector {
	return &Detector{registry: registry}
}

// DetectPatterns scans the document for instances of every registered
// pattern. Partial matches are reported as instances with IsComplete=false
// and itemized ValidationErrors rather than being dropped, so a caller can
// scan an entire document without one mismatch aborting the scan.
func (d *Detector) DetectPatterns(doc *canvas.Document) []Instance {
	var instances []Instance
	for _, m := range d.registry.GetAll() {
		instances = append(instances, d.detectManifest(doc, m)...)
	}
	return instances
}

// detectManifest finds instances of a single manifest. Candidate roots are
// discovered top-down; once a node is accepted as a candidate its subtree is
// claimed and not searched for further roots of the same pattern, so nested
// structural nodes (a tablist inside a tabs container, say) do not surface
// as spurious partial instances.
func (d *Detector) detectManifest(doc *canvas.Document, m *Manifest) []Instance {
	keys := make(map[string]bool)
	types := make(map[canvas.NodeType]bool)
	for _, def := range m.Structure {
		if def.SemanticKey != "" {
			keys[def.SemanticKey] = true
		}
		types[def.Type] = true
	}

	var instances []Instance
	for i := range doc.Artboards {
		stack := make([]canvas.Node, 0, len(doc.Artboards[i].Children))
		children := doc.Artboards[i].Children
		for j := len(children) - 1; j >= 0; j-- {
			stack = append(stack, children[j])
		}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if isRootCandidate(n, keys, types) {
				if inst, ok := d.mapNodes(n, m); ok {
					instances = append(instances, inst)
				}
				continue // subtree is claimed by this candidate
			}
			cs := n.ChildNodes()
			for j := len(cs) - 1; j >= 0; j-- {
				stack = append(stack, cs[j])
			}
		}
	}
	return instances
}

// isRootCandidate is a cheap existence heuristic, not a guarantee of a full
// match: the node either carries a semantic key declared by the manifest's
// structure, or is a container whose direct children's types overlap with at
// least one structure definition type.
func isRootCandidate(n canvas.Node, keys map[string]bool, types map[canvas.NodeType]bool) bool {
	if key := n.Base().SemanticKey; key != "" && keys[key] {
		return true
	}
	if !n.NodeType().Container() {
		return false
	}
	for _, child := range n.ChildNodes() {
		if types[child.NodeType()] {
			return true
		}
	}
	return false
}

// mapNodes maps the manifest's structure definitions onto the candidate's
// subtree in two passes. Pass one resolves definitions that declare a
// semantic key against the first subtree node carrying that exact key; a
// definition with a key never falls back to type matching, so a missing
// keyed node is reported rather than papered over by an arbitrary node of
// the right type. Pass two resolves the remaining definitions against the
// first subtree node of the matching type. Mapping is deliberately
// permissive first-match: it does not exclude nodes already claimed, so two
// definitions may map to the same concrete node.
//
// The boolean result is false when mapping made no progress at all, in which
// case the candidate yields no instance.
func (d *Detector) mapNodes(root canvas.Node, m *Manifest) (Instance, bool) {
	subtree := canvas.Flatten(root)
	mappings := make(map[string]string)
	var errs []string

	for _, def := range m.Structure {
		if def.SemanticKey == "" {
			continue
		}
		if node := firstByKey(subtree, def.SemanticKey); node != nil {
			mappings[def.ID] = node.Base().ID
		} else if def.Required {
			errs = append(errs, fmt.Sprintf(
				"missing required node %q (semantic key %q)", def.Name, def.SemanticKey))
		}
	}

	for _, def := range m.Structure {
		if def.SemanticKey != "" {
			continue
		}
		if _, done := mappings[def.ID]; done {
			continue
		}
		if node := firstByType(subtree, def.Type); node != nil {
			mappings[def.ID] = node.Base().ID
		} else if def.Required {
			errs = append(errs, fmt.Sprintf(
				"missing required node %q (no %s node in subtree)", def.Name, def.Type))
		}
	}

	if len(mappings) == 0 {
		return Instance{}, false
	}
	return Instance{
		PatternID:        m.ID,
		RootNodeID:       root.Base().ID,
		NodeMappings:     mappings,
		IsComplete:       len(errs) == 0,
		ValidationErrors: errs,
	}, true
}

func firstByKey(nodes []canvas.Node, key string) canvas.Node {
	for _, n := range nodes {
		if n.Base().SemanticKey == key {
			return n
		}
	}
	return nil
}

func firstByType(nodes []canvas.Node, t canvas.NodeType) canvas.Node {
	for _, n := range nodes {
		if n.NodeType() == t {
			return n
		}
	}
	return nil
}
