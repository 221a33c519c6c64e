package node

import (
	"errors"

	"github.com/lestrrat-go/tagsoup/internal/stack"
)

// SkipChildren can be returned from a WalkFunc to prevent Walk from
// descending into the current node.
var SkipChildren = errors.New("skip children")

type WalkFunc func(Node) error

// Walk visits n and its descendants depth-first, in document order.
// Traversal keeps its own work list, so deeply nested trees do not
// grow the goroutine stack.
func Walk(n Node, f WalkFunc) error {
	if n == nil {
		return ErrNilNode
	}

	var work stack.Stack[Node]
	work.Push(n)
	for work.Len() > 0 {
		cur, _ := work.Top()
		work.Pop()

		if err := f(cur); err != nil {
			if errors.Is(err, SkipChildren) {
				continue
			}
			return err
		}

		// push in reverse so the first child is visited first
		for c := cur.LastChild(); c != nil; c = c.PrevSibling() {
			work.Push(c)
		}
	}
	return nil
}

// TextContent returns the concatenated text of n and its descendants
func TextContent(n Node) string {
	if n == nil {
		return ""
	}
	b, err := n.Content(nil)
	if err != nil {
		return ""
	}
	return string(b)
}
