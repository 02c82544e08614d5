package wordml

import (
	"errors"
	"io"

	"github.com/benjaminschreck/go-wordml/pkg/wordml/oxml"
)

// Body is a block container (w:body, or any element holding w:p children)
// and the Parent of the paragraphs it hands out.
type Body struct {
	el     *oxml.Element
	styles StyleResolver
}

// NewBody wraps a container element. A nil resolver means DefaultStyles.
func NewBody(el *oxml.Element, styles StyleResolver) *Body {
	return &Body{el: el, styles: styles}
}

// ParseBody reads a document part. The root may be w:document, in which
// case its w:body is used, or a bare container.
func ParseBody(r io.Reader, styles StyleResolver) (*Body, error) {
	root, err := oxml.Parse(r)
	if err != nil {
		return nil, NewDocumentError("parse", "", err)
	}
	el := root
	if root.Is("w:document") {
		if el = root.Find("w:body"); el == nil {
			return nil, NewDocumentError("parse", "", errors.New("document has no w:body"))
		}
	}
	Debug("loaded body with %d paragraphs", len(el.FindAll("w:p")))
	return NewBody(el, styles), nil
}

// Element returns the container element.
func (b *Body) Element() *oxml.Element {
	return b.el
}

// Styles implements Parent.
func (b *Body) Styles() StyleResolver {
	if b.styles == nil {
		return NewDefaultStyles()
	}
	return b.styles
}

// Paragraphs returns fresh wrappers for the w:p children, in order.
func (b *Body) Paragraphs() []*Paragraph {
	els := b.el.FindAll("w:p")
	paragraphs := make([]*Paragraph, len(els))
	for i, el := range els {
		paragraphs[i] = NewParagraph(oxml.AsP(el), b)
	}
	return paragraphs
}

// AddParagraph appends a paragraph, keeping a trailing w:sectPr last.
func (b *Body) AddParagraph(text, style string) (*Paragraph, error) {
	p := NewParagraph(oxml.NewP(), b)
	// Resolve first: an unknown style must not leave a stray paragraph behind
	if err := p.SetStyle(style); err != nil {
		return nil, err
	}
	b.el.InsertElementBefore(p.Element().Element, "w:sectPr")
	if text != "" {
		p.SetText(text)
	}
	return p, nil
}
