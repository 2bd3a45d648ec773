package canvas

// NodeType discriminates the closed set of node variants.
type NodeType string

const (
	NodeFrame     NodeType = "frame"
	NodeText      NodeType = "text"
	NodeImage     NodeType = "image"
	NodeComponent NodeType = "component"
	NodeGroup     NodeType = "group"
	NodeVector    NodeType = "vector"
)

// Valid reports whether t is one of the known node types.
func (t NodeType) Valid() bool {
	switch t {
	case NodeFrame, NodeText, NodeImage, NodeComponent, NodeGroup, NodeVector:
		return true
	}
	return false
}

// Container reports whether nodes of this type carry children.
func (t NodeType) Container() bool {
	return t == NodeFrame || t == NodeGroup
}

// Node is the closed union of canvas node variants. Only FrameNode and
// GroupNode carry children; every variant may carry a semantic key.
type Node interface {
	// Base returns the fields shared by all node variants.
	Base() *BaseNode
	// NodeType returns the variant tag.
	NodeType() NodeType
	// ChildNodes returns the node's children, or nil for leaf variants.
	ChildNodes() []Node
}

// BaseNode holds the fields common to every node variant.
type BaseNode struct {
	ID          string   `json:"id"`
	Type        NodeType `json:"type"`
	Name        string   `json:"name"`
	Frame       Rect     `json:"frame"`
	Visible     *bool    `json:"visible,omitempty"`
	SemanticKey string   `json:"semanticKey,omitempty"`
}

// FrameNode is a layout container.
type FrameNode struct {
	BaseNode
	Children []Node `json:"children"`
}

// TextNode carries a text run.
type TextNode struct {
	BaseNode
	Text string `json:"text,omitempty"`
}

// ImageNode references raster content.
type ImageNode struct {
	BaseNode
	Src string `json:"src,omitempty"`
}

// ComponentNode references a reusable component by key.
type ComponentNode struct {
	BaseNode
	ComponentKey string         `json:"componentKey,omitempty"`
	Props        map[string]any `json:"props,omitempty"`
}

// GroupNode is a non-layout container.
type GroupNode struct {
	BaseNode
	Children []Node `json:"children"`
}

// VectorNode carries path data.
type VectorNode struct {
	BaseNode
	Path string `json:"path,omitempty"`
}

func (n *FrameNode) Base() *BaseNode     { return &n.BaseNode }
func (n *TextNode) Base() *BaseNode      { return &n.BaseNode }
func (n *ImageNode) Base() *BaseNode     { return &n.BaseNode }
func (n *ComponentNode) Base() *BaseNode { return &n.BaseNode }
func (n *GroupNode) Base() *BaseNode     { return &n.BaseNode }
func (n *VectorNode) Base() *BaseNode    { return &n.BaseNode }

func (n *FrameNode) NodeType() NodeType     { return NodeFrame }
func (n *TextNode) NodeType() NodeType      { return NodeText }
func (n *ImageNode) NodeType() NodeType     { return NodeImage }
func (n *ComponentNode) NodeType() NodeType { return NodeComponent }
func (n *GroupNode) NodeType() NodeType     { return NodeGroup }
func (n *VectorNode) NodeType() NodeType    { return NodeVector }

func (n *FrameNode) ChildNodes() []Node     { return n.Children }
func (n *TextNode) ChildNodes() []Node      { return nil }
func (n *ImageNode) ChildNodes() []Node     { return nil }
func (n *ComponentNode) ChildNodes() []Node { return nil }
func (n *GroupNode) ChildNodes() []Node     { return n.Children }
func (n *VectorNode) ChildNodes() []Node    { return nil }
