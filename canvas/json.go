package canvas

import (
	"encoding/json"
	"fmt"
)

// UnmarshalNode decodes a single node, dispatching on the "type" discriminator.
// Unknown types are an error: the node set is a closed union.
func UnmarshalNode(data []byte) (Node, error) {
	var probe struct {
		Type NodeType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("decode node type: %w", err)
	}

	switch probe.Type {
	case NodeFrame:
		var n FrameNode
		if err := n.UnmarshalJSON(data); err != nil {
			return nil, err
		}
		return &n, nil
	case NodeText:
		var n TextNode
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, fmt.Errorf("decode text node: %w", err)
		}
		return &n, nil
	case NodeImage:
		var n ImageNode
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, fmt.Errorf("decode image node: %w", err)
		}
		return &n, nil
	case NodeComponent:
		var n ComponentNode
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, fmt.Errorf("decode component node: %w", err)
		}
		return &n, nil
	case NodeGroup:
		var n GroupNode
		if err := n.UnmarshalJSON(data); err != nil {
			return nil, err
		}
		return &n, nil
	case NodeVector:
		var n VectorNode
		if err := json.Unmarshal(data, &n); err != nil {
			return nil, fmt.Errorf("decode vector node: %w", err)
		}
		return &n, nil
	default:
		return nil, fmt.Errorf("unknown node type %q", probe.Type)
	}
}

// unmarshalNodeList decodes a JSON array of heterogeneous nodes.
func unmarshalNodeList(data []byte) ([]Node, error) {
	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode node list: %w", err)
	}
	nodes := make([]Node, 0, len(raw))
	for i, r := range raw {
		n, err := UnmarshalNode(r)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// UnmarshalJSON decodes a frame node, including its heterogeneous children.
func (n *FrameNode) UnmarshalJSON(data []byte) error {
	type alias struct {
		BaseNode
		Children json.RawMessage `json:"children"`
	}
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("decode frame node: %w", err)
	}
	children, err := unmarshalNodeList(a.Children)
	if err != nil {
		return fmt.Errorf("frame %q: %w", a.ID, err)
	}
	n.BaseNode = a.BaseNode
	n.Children = children
	return nil
}

// UnmarshalJSON decodes a group node, including its heterogeneous children.
func (n *GroupNode) UnmarshalJSON(data []byte) error {
	type alias struct {
		BaseNode
		Children json.RawMessage `json:"children"`
	}
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return fmt.Errorf("decode group node: %w", err)
	}
	children, err := unmarshalNodeList(a.Children)
	if err != nil {
		return fmt.Errorf("group %q: %w", a.ID, err)
	}
	n.BaseNode = a.BaseNode
	n.Children = children
	return nil
}

// UnmarshalJSON decodes an artboard, including its heterogeneous children.
func (a *Artboard) UnmarshalJSON(data []byte) error {
	type alias struct {
		ID       string          `json:"id"`
		Name     string          `json:"name"`
		Frame    Rect            `json:"frame"`
		Children json.RawMessage `json:"children"`
	}
	var raw alias
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode artboard: %w", err)
	}
	children, err := unmarshalNodeList(raw.Children)
	if err != nil {
		return fmt.Errorf("artboard %q: %w", raw.ID, err)
	}
	a.ID = raw.ID
	a.Name = raw.Name
	a.Frame = raw.Frame
	a.Children = children
	return nil
}

// ParseDocument decodes a complete canvas document from JSON.
func ParseDocument(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return &doc, nil
}
