package oxml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
)

// Parse reads a single XML element tree. Whitespace-only character data
// between child elements is dropped; text inside leaf elements is kept as-is.
// Undeclared conventional prefixes such as "w" are bound to their usual URI,
// so fragments copied out of a part parse without xmlns boilerplate.
func Parse(r io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(r)

	var root *Element
	var stack []*Element

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse xml: %w", err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			if len(stack) == 0 && root != nil {
				// Trailing elements after the root are not part of the tree
				if err := decoder.Skip(); err != nil {
					return nil, fmt.Errorf("failed to parse xml: %w", err)
				}
				continue
			}
			el := &Element{Name: bindPrefix(t.Name)}
			for _, attr := range t.Attr {
				if isNsDecl(attr.Name) {
					el.nsDecls = append(el.nsDecls, attr)
					continue
				}
				attr.Name = bindPrefix(attr.Name)
				el.Attrs = append(el.Attrs, attr)
			}
			if n := len(stack); n > 0 {
				stack[n-1].AppendChild(el)
			} else {
				root = el
			}
			stack = append(stack, el)
		case xml.EndElement:
			el := stack[len(stack)-1]
			if len(el.Children) > 0 && strings.TrimSpace(el.Text) == "" {
				el.Text = ""
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if n := len(stack); n > 0 {
				stack[n-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, errors.New("failed to parse xml: no root element")
	}
	return root, nil
}

// ParseString is Parse over a string.
func ParseString(s string) (*Element, error) {
	return Parse(strings.NewReader(s))
}

func isNsDecl(name xml.Name) bool {
	return name.Space == "xmlns" || (name.Space == "" && name.Local == "xmlns")
}

// bindPrefix maps a name left unresolved by the decoder (Space still holds a
// prefix) onto the conventional namespace for that prefix.
func bindPrefix(name xml.Name) xml.Name {
	if uri, ok := nsmap[name.Space]; ok {
		name.Space = uri
	}
	return name
}

// XML serializes the subtree rooted at e. Namespace declarations for every
// prefix used in the subtree are placed on e, sorted by prefix, so the output
// is canonical and comparable as a string.
func (e *Element) XML() string {
	var b strings.Builder
	e.write(&b, true)
	return b.String()
}

// WriteTo streams the canonical serialization of e to w.
func (e *Element) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, e.XML())
	return int64(n), err
}

// String returns the canonical serialization.
func (e *Element) String() string {
	return e.XML()
}

func (e *Element) write(b *strings.Builder, root bool) {
	name := e.qualify(e.Name)
	b.WriteString("<")
	b.WriteString(name)

	if root {
		decls := e.usedNamespaces()
		// Own declarations survive unused: mc:Ignorable names prefixes in a value
		for _, decl := range e.nsDecls {
			prefix := decl.Name.Local
			if decl.Name.Space != "xmlns" {
				prefix = ""
			}
			if _, ok := decls[prefix]; !ok {
				decls[prefix] = decl.Value
			}
		}
		prefixes := make([]string, 0, len(decls))
		for prefix := range decls {
			prefixes = append(prefixes, prefix)
		}
		slices.Sort(prefixes)
		for _, prefix := range prefixes {
			b.WriteString(" xmlns")
			if prefix != "" {
				b.WriteString(":")
				b.WriteString(prefix)
			}
			b.WriteString(`="`)
			escape(b, decls[prefix])
			b.WriteString(`"`)
		}
	}

	for _, attr := range e.Attrs {
		b.WriteString(" ")
		b.WriteString(e.qualify(attr.Name))
		b.WriteString(`="`)
		escape(b, attr.Value)
		b.WriteString(`"`)
	}

	if len(e.Children) == 0 && e.Text == "" {
		b.WriteString("/>")
		return
	}
	b.WriteString(">")
	escape(b, e.Text)
	for _, c := range e.Children {
		c.write(b, false)
	}
	b.WriteString("</")
	b.WriteString(name)
	b.WriteString(">")
}

func escape(b *strings.Builder, s string) {
	// strings.Builder never returns a write error
	_ = xml.EscapeText(b, []byte(s))
}

func (e *Element) qualify(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	prefix, _ := e.lookupPrefix(name.Space)
	if prefix == "" {
		return name.Local
	}
	return prefix + ":" + name.Local
}

// lookupPrefix finds the prefix for a namespace URI. declare is false when
// no xmlns declaration should be emitted for it (the xml namespace, or a
// prefix that was never bound to a URI).
func (e *Element) lookupPrefix(uri string) (prefix string, declare bool) {
	if uri == XMLNamespace {
		return "xml", false
	}
	if prefix, ok := pfxmap[uri]; ok {
		return prefix, true
	}
	for n := e; n != nil; n = n.parent {
		for _, decl := range n.nsDecls {
			if decl.Value != uri {
				continue
			}
			if decl.Name.Space == "xmlns" {
				return decl.Name.Local, true
			}
			return "", true
		}
	}
	return uri, false
}

func (e *Element) usedNamespaces() map[string]string {
	decls := make(map[string]string)
	record := func(el *Element, name xml.Name) {
		if name.Space == "" {
			return
		}
		if prefix, declare := el.lookupPrefix(name.Space); declare {
			decls[prefix] = name.Space
		}
	}
	var walk func(*Element)
	walk = func(el *Element) {
		record(el, el.Name)
		for _, attr := range el.Attrs {
			record(el, attr.Name)
		}
		for _, c := range el.Children {
			walk(c)
		}
	}
	walk(e)
	return decls
}
