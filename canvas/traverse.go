package canvas

// Traversal uses an explicit work stack rather than native recursion so that
// adversarially deep documents (untrusted or generated input) cannot exhaust
// the call stack.

// Walk visits root and every node beneath it in pre-order. Returning false
// from visit stops the walk early.
func Walk(root Node, visit func(Node) bool) {
	if root == nil {
		return
	}
	stack := []Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(n) {
			return
		}
		children := n.ChildNodes()
		// Push in reverse so children are visited left to right.
		for i := len(children) - 1; i >= 0; i-- {
			if children[i] != nil {
				stack = append(stack, children[i])
			}
		}
	}
}

// WalkDocument visits every node of every artboard in pre-order.
func WalkDocument(doc *Document, visit func(Node) bool) {
	if doc == nil {
		return
	}
	for i := range doc.Artboards {
		for _, child := range doc.Artboards[i].Children {
			stopped := false
			Walk(child, func(n Node) bool {
				if !visit(n) {
					stopped = true
					return false
				}
				return true
			})
			if stopped {
				return
			}
		}
	}
}

// Flatten returns root and its entire subtree as a pre-order node list.
func Flatten(root Node) []Node {
	var nodes []Node
	Walk(root, func(n Node) bool {
		nodes = append(nodes, n)
		return true
	})
	return nodes
}

// FindByID returns the first node in the document with the given id, or nil.
func FindByID(doc *Document, id string) Node {
	var found Node
	WalkDocument(doc, func(n Node) bool {
		if n.Base().ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindBySemanticKey returns the first node in the document carrying the given
// semantic key, or nil.
func FindBySemanticKey(doc *Document, key string) Node {
	if key == "" {
		return nil
	}
	var found Node
	WalkDocument(doc, func(n Node) bool {
		if n.Base().SemanticKey == key {
			found = n
			return false
		}
		return true
	})
	return found
}
