package node

import (
	"github.com/lestrrat-go/tagsoup/internal/orderedmap"
)

// Attribute is a name/value pair attached to an element
type Attribute struct {
	Name  string
	Value string
}

type Element struct {
	treeNode
	name        string
	attrs       *orderedmap.Map[string, string]
	root        bool
	selfClosing bool
}

var _ Node = (*Element)(nil)

// NewElement creates a new Element with the given name. The name is
// used as is, callers are expected to pass lowercased names.
func NewElement(name string) *Element {
	return &Element{
		name:  name,
		attrs: orderedmap.New[string, string](),
	}
}

// NewRoot creates the synthetic element that sits above the document.
func NewRoot() *Element {
	e := NewElement(RootTagName)
	e.root = true
	return e
}

func (Element) Type() NodeType {
	return ElementNodeType
}

func (e *Element) LocalName() string {
	return e.name
}

// IsRoot reports whether e was created by NewRoot
func (e *Element) IsRoot() bool {
	return e.root
}

// AddChild appends child to e. Void elements and elements marked
// self-closing never take children, and report ErrInvalidOperation.
func (e *Element) AddChild(child Node) error {
	if e.IsEmpty() {
		return ErrInvalidOperation
	}
	return addChild(e, child)
}

// SetSelfClosing records whether e was written as a self-closing tag
func (e *Element) SetSelfClosing(v bool) {
	e.selfClosing = v
}

func (e *Element) SelfClosing() bool {
	return e.selfClosing
}

// IsEmpty reports whether e can never have children: it is either a
// void element or was written as a self-closing tag.
func (e *Element) IsEmpty() bool {
	return e.selfClosing || IsVoidElement(e.name)
}

func (e *Element) AddContent(b []byte) error {
	return addContent(e, b)
}

// SetAttribute sets the attribute with the given name. If the name
// already exists, its value is replaced.
func (e *Element) SetAttribute(name, value string) {
	e.attrs.Set(name, value)
}

// Attribute returns the value of the named attribute
func (e *Element) Attribute(name string) (string, bool) {
	return e.attrs.Get(name)
}

func (e *Element) HasAttribute(name string) bool {
	_, ok := e.attrs.Get(name)
	return ok
}

// Attributes returns the attributes of the element in the order their
// names were first set.
func (e *Element) Attributes() []Attribute {
	dst := make([]Attribute, 0, e.attrs.Len())
	for name, value := range e.attrs.Range() {
		dst = append(dst, Attribute{Name: name, Value: value})
	}
	return dst
}

// Children returns the direct children of the element
func (e *Element) Children() []Node {
	var dst []Node
	for c := e.firstChild; c != nil; c = c.NextSibling() {
		dst = append(dst, c)
	}
	return dst
}
