package node

// treeNode is the part of a Node that handles the tree structure.
type treeNode struct {
	firstChild Node
	lastChild  Node
	parent     Node
	next       Node
	prev       Node
}

func (n *treeNode) getTreeNode() *treeNode {
	return n
}

func (n *treeNode) FirstChild() Node {
	return n.firstChild
}

func (n *treeNode) LastChild() Node {
	return n.lastChild
}

func (n *treeNode) Parent() Node {
	return n.parent
}

func (n *treeNode) NextSibling() Node {
	return n.next
}

func (n *treeNode) PrevSibling() Node {
	return n.prev
}

func (n *treeNode) Content(dst []byte) ([]byte, error) {
	result := dst
	for e := n.firstChild; e != nil; e = e.NextSibling() {
		var err error
		result, err = e.Content(result)
		if err != nil {
			return result, err
		}
	}
	return result, nil
}

// addChild appends child as the last child of parent. A text node
// appended right after another text node is merged into it, so a
// parent never holds two adjacent text children.
func addChild(parent, child Node) error {
	if parent == nil || child == nil {
		return ErrNilNode
	}

	pt := parent.getTreeNode()
	ct := child.getTreeNode()
	if ct.parent != nil {
		return ErrAlreadyAttached
	}

	l := pt.lastChild
	if l == nil { // No children, set firstChild to cur, and bail out
		pt.firstChild = child
		pt.lastChild = child
		ct.parent = parent
		return nil
	}

	if child.Type() == TextNodeType && l.Type() == TextNodeType {
		content, err := child.Content(nil)
		if err != nil {
			return err
		}
		return l.AddContent(content)
	}

	lt := l.getTreeNode()
	lt.next = child
	ct.prev = l
	ct.parent = parent
	pt.lastChild = child
	return nil
}

func addContent(n Node, content []byte) error {
	return n.AddChild(NewText(content))
}
