package pattern

import (
	"github.com/stencil-design/stencil/canvas"
)

// Test fixtures shared across the detector, validator, and generator tests.

func testFrame(id, key string, children ...canvas.Node) *canvas.FrameNode {
	return &canvas.FrameNode{
		BaseNode: canvas.BaseNode{ID: id, Type: canvas.NodeFrame, Name: id, SemanticKey: key},
		Children: children,
	}
}

func testText(id, key string) *canvas.TextNode {
	return &canvas.TextNode{
		BaseNode: canvas.BaseNode{ID: id, Type: canvas.NodeText, Name: id, SemanticKey: key},
		Text:     id,
	}
}

func testDoc(children ...canvas.Node) *canvas.Document {
	return &canvas.Document{
		SchemaVersion: "1.0",
		ID:            "doc-test",
		Name:          "Test Document",
		Artboards: []canvas.Artboard{{
			ID:       "ab-1",
			Name:     "Artboard 1",
			Frame:    canvas.Rect{Width: 800, Height: 600},
			Children: children,
		}},
	}
}

// incompleteTabsDoc is a tabs container holding a tablist with one tab and no
// tabpanel.
func incompleteTabsDoc() *canvas.Document {
	return testDoc(
		testFrame("container", "tabs.container",
			testFrame("tablist", "tabs.tablist",
				testText("tab-0", "tabs.tab[0]"),
			),
		),
	)
}

// completeTabsDoc adds the missing tabpanel as a sibling of the tablist.
func completeTabsDoc() *canvas.Document {
	return testDoc(
		testFrame("container", "tabs.container",
			testFrame("tablist", "tabs.tablist",
				testText("tab-0", "tabs.tab[0]"),
			),
			testFrame("panel-0", "tabs.tabpanel[0]"),
		),
	)
}

func tabsOnlyRegistry() *Registry {
	r := NewRegistry()
	if err := r.Register(tabsManifest()); err != nil {
		panic(err)
	}
	return r
}
