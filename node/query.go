package node

import (
	"errors"
	"strings"
)

var errStopWalk = errors.New("stop walk")

// collect gathers the descendants of n (n itself excluded) that
// satisfy match, in document order. When first is true it stops at
// the first hit.
func collect(n Node, first bool, match func(*Element) bool) []*Element {
	if n == nil {
		return nil
	}

	var found []*Element
	_ = Walk(n, func(cur Node) error {
		if cur == n {
			return nil
		}
		e, ok := cur.(*Element)
		if !ok || !match(e) {
			return nil
		}
		found = append(found, e)
		if first {
			return errStopWalk
		}
		return nil
	})
	return found
}

func attributeEquals(name, value string) func(*Element) bool {
	return func(e *Element) bool {
		v, ok := e.Attribute(name)
		return ok && v == value
	}
}

// GetElementsByTagName returns all descendant elements of n named
// name. Tag names are matched case-insensitively.
func GetElementsByTagName(n Node, name string) []*Element {
	name = strings.ToLower(name)
	return collect(n, false, func(e *Element) bool {
		return e.name == name
	})
}

// GetElementsByClassName returns all descendant elements of n whose
// class attribute equals class.
func GetElementsByClassName(n Node, class string) []*Element {
	return collect(n, false, attributeEquals("class", class))
}

// GetElementsByName returns all descendant elements of n whose name
// attribute equals name.
func GetElementsByName(n Node, name string) []*Element {
	return collect(n, false, attributeEquals("name", name))
}

// GetElementsByAttribute returns all descendant elements of n that
// carry attribute attr with the given value.
func GetElementsByAttribute(n Node, attr, value string) []*Element {
	return collect(n, false, attributeEquals(strings.ToLower(attr), value))
}

// GetElementById returns the first descendant element of n, in
// document order, whose id attribute equals id. Later elements sharing
// the same id are never reported.
func GetElementById(n Node, id string) *Element {
	found := collect(n, true, attributeEquals("id", id))
	if len(found) == 0 {
		return nil
	}
	return found[0]
}
