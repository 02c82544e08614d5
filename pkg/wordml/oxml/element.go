package oxml

import (
	"encoding/xml"
	"slices"
)

// Element is a generic XML element node. Names carry namespace URIs, not
// prefixes; prefixes are recovered from the namespace map on serialization.
type Element struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Text     string
	Children []*Element

	parent *Element
	// nsDecls holds xmlns declarations seen on this element while parsing
	nsDecls []xml.Attr
}

// New creates a detached element for a prefixed tag such as "w:r".
func New(tag string) *Element {
	return &Element{Name: Qn(tag)}
}

// Is reports whether the element has the given prefixed tag.
func (e *Element) Is(tag string) bool {
	return e != nil && e.Name == Qn(tag)
}

// Parent returns the containing element, or nil for a detached or root element.
func (e *Element) Parent() *Element {
	return e.parent
}

// Root walks up to the outermost ancestor.
func (e *Element) Root() *Element {
	n := e
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// Index is the position of the element inside its parent's children, -1 if detached.
func (e *Element) Index() int {
	if e.parent == nil {
		return -1
	}
	for i, c := range e.parent.Children {
		if c == e {
			return i
		}
	}
	return -1
}

// Find returns the first child with the given tag.
func (e *Element) Find(tag string) *Element {
	name := Qn(tag)
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// FindAll returns every child with the given tag, in document order.
func (e *Element) FindAll(tag string) []*Element {
	name := Qn(tag)
	var found []*Element
	for _, c := range e.Children {
		if c.Name == name {
			found = append(found, c)
		}
	}
	return found
}

// AppendChild adds child as the last child, detaching it from any previous parent.
func (e *Element) AppendChild(child *Element) *Element {
	return e.InsertChild(len(e.Children), child)
}

// InsertChild places child at index i (clamped to the valid range).
func (e *Element) InsertChild(i int, child *Element) *Element {
	child.detach()
	if i < 0 {
		i = 0
	}
	if i > len(e.Children) {
		i = len(e.Children)
	}
	e.Children = slices.Insert(e.Children, i, child)
	child.parent = e
	return child
}

// InsertElementBefore inserts child before the first existing child whose
// tag is one of successors. When none is present the child is appended.
func (e *Element) InsertElementBefore(child *Element, successors ...string) *Element {
	for i, c := range e.Children {
		for _, tag := range successors {
			if c.Name == Qn(tag) {
				return e.InsertChild(i, child)
			}
		}
	}
	return e.AppendChild(child)
}

// AddPrevious inserts sibling immediately before e in e's parent. A detached
// e leaves sibling detached as well; it is still returned.
func (e *Element) AddPrevious(sibling *Element) *Element {
	i := e.Index()
	if i == -1 {
		sibling.detach()
		return sibling
	}
	return e.parent.InsertChild(i, sibling)
}

// RemoveChild detaches child from e. It reports whether child was found.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.Children {
		if c == child {
			e.Children = slices.Delete(e.Children, i, i+1)
			child.parent = nil
			return true
		}
	}
	return false
}

// RemoveAll detaches every child with one of the given tags.
func (e *Element) RemoveAll(tags ...string) {
	names := make([]xml.Name, len(tags))
	for i, tag := range tags {
		names[i] = Qn(tag)
	}
	e.removeWhere(func(c *Element) bool {
		return slices.Contains(names, c.Name)
	})
}

// RemoveAllExcept detaches every child whose tag is not listed.
func (e *Element) RemoveAllExcept(tags ...string) {
	names := make([]xml.Name, len(tags))
	for i, tag := range tags {
		names[i] = Qn(tag)
	}
	e.removeWhere(func(c *Element) bool {
		return !slices.Contains(names, c.Name)
	})
}

func (e *Element) removeWhere(match func(*Element) bool) {
	kept := e.Children[:0]
	for _, c := range e.Children {
		if match(c) {
			c.parent = nil
			continue
		}
		kept = append(kept, c)
	}
	clear(e.Children[len(kept):])
	e.Children = kept
}

func (e *Element) detach() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

// Attr returns the value of the attribute with the given prefixed tag.
func (e *Element) Attr(tag string) (string, bool) {
	name := Qn(tag)
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets or replaces an attribute, keeping the position of an existing one.
func (e *Element) SetAttr(tag, value string) {
	name := Qn(tag)
	for i, a := range e.Attrs {
		if a.Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, xml.Attr{Name: name, Value: value})
}

// RemoveAttr deletes an attribute if present.
func (e *Element) RemoveAttr(tag string) {
	name := Qn(tag)
	e.Attrs = slices.DeleteFunc(e.Attrs, func(a xml.Attr) bool {
		return a.Name == name
	})
}
