package canvas

import (
	"fmt"
	"testing"
)

func frame(id, key string, children ...Node) *FrameNode {
	return &FrameNode{
		BaseNode: BaseNode{ID: id, Type: NodeFrame, Name: id, SemanticKey: key},
		Children: children,
	}
}

func text(id, key string) *TextNode {
	return &TextNode{
		BaseNode: BaseNode{ID: id, Type: NodeText, Name: id, SemanticKey: key},
		Text:     id,
	}
}

func TestWalk_PreOrder(t *testing.T) {
	root := frame("a", "",
		frame("b", "", text("c", ""), text("d", "")),
		text("e", ""),
	)

	var order []string
	Walk(root, func(n Node) bool {
		order = append(order, n.Base().ID)
		return true
	})

	want := []string{"a", "b", "c", "d", "e"}
	if len(order) != len(want) {
		t.Fatalf("visited %d nodes, want %d", len(order), len(want))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("visit %d: got %s, want %s", i, order[i], want[i])
		}
	}
}

func TestWalk_EarlyStop(t *testing.T) {
	root := frame("a", "", text("b", ""), text("c", ""))

	var visited int
	Walk(root, func(n Node) bool {
		visited++
		return n.Base().ID != "b"
	})

	if visited != 2 {
		t.Errorf("visited %d nodes after early stop, want 2", visited)
	}
}

func TestFlatten_IncludesRoot(t *testing.T) {
	root := frame("root", "", text("leaf", ""))
	nodes := Flatten(root)
	if len(nodes) != 2 {
		t.Fatalf("flattened %d nodes, want 2", len(nodes))
	}
	if nodes[0].Base().ID != "root" {
		t.Errorf("first node: got %s, want root", nodes[0].Base().ID)
	}
}

// Traversal must not consume native stack proportional to document depth.
func TestWalk_DeepDocument(t *testing.T) {
	const depth = 100000
	leaf := Node(text("leaf", "deep.leaf"))
	for i := 0; i < depth; i++ {
		leaf = frame(fmt.Sprintf("f-%d", i), "", leaf)
	}

	var count int
	Walk(leaf, func(Node) bool {
		count++
		return true
	})
	if count != depth+1 {
		t.Errorf("visited %d nodes, want %d", count, depth+1)
	}
}

func TestFindBySemanticKey(t *testing.T) {
	doc := &Document{
		Artboards: []Artboard{{
			ID: "ab",
			Children: []Node{
				frame("a", "", text("b", "hero.title")),
			},
		}},
	}

	if n := FindBySemanticKey(doc, "hero.title"); n == nil || n.Base().ID != "b" {
		t.Errorf("FindBySemanticKey(hero.title) = %v, want node b", n)
	}
	if n := FindBySemanticKey(doc, "missing"); n != nil {
		t.Errorf("FindBySemanticKey(missing) = %v, want nil", n)
	}
	if n := FindBySemanticKey(doc, ""); n != nil {
		t.Errorf("FindBySemanticKey(\"\") = %v, want nil", n)
	}
}

func TestFindByID(t *testing.T) {
	doc := &Document{
		Artboards: []Artboard{{
			ID:       "ab",
			Children: []Node{frame("a", "", text("b", ""))},
		}},
	}

	if n := FindByID(doc, "b"); n == nil || n.NodeType() != NodeText {
		t.Errorf("FindByID(b) = %v, want text node", n)
	}
	if n := FindByID(doc, "zzz"); n != nil {
		t.Errorf("FindByID(zzz) = %v, want nil", n)
	}
}
