package node

import (
	"errors"
)

// NodeType represents the type of a node in the tree
type NodeType int

const (
	ElementNodeType NodeType = iota + 1
	TextNodeType
)

func (t NodeType) String() string {
	switch t {
	case ElementNodeType:
		return "element"
	case TextNodeType:
		return "text"
	default:
		return "unknown"
	}
}

// RootTagName is the tag name of the synthetic element at the top of
// every parsed tree.
const RootTagName = "#root"

var (
	ErrNilNode          = errors.New("nil node")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrAlreadyAttached  = errors.New("node already has a parent")
)

// Node interface defines the common functionality for all node types
type Node interface {
	// returns the treeNode (the part of the Node that handles the tree structure)
	getTreeNode() *treeNode

	AddChild(Node) error
	AddContent([]byte) error

	Type() NodeType
	// Content appends the text content of the node to the provided byte slice
	// and returns the result. If dst is nil, a new slice is allocated.
	Content(dst []byte) ([]byte, error)

	FirstChild() Node
	LastChild() Node

	// LocalName returns the tag name for elements, and "#text" for text nodes
	LocalName() string

	NextSibling() Node
	Parent() Node
	PrevSibling() Node
}
