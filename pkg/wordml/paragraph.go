package wordml

import (
	"strings"

	"github.com/benjaminschreck/go-wordml/pkg/wordml/enum"
	"github.com/benjaminschreck/go-wordml/pkg/wordml/oxml"
)

// Parent is the owner of a paragraph, consulted for context only. A nil
// Parent is valid for every operation.
type Parent interface {
	Styles() StyleResolver
}

// Paragraph is the object-model view of a w:p element. Wrappers are cheap
// and not cached: two Paragraphs over the same node are interchangeable.
type Paragraph struct {
	p      *oxml.CTP
	parent Parent
}

// NewParagraph wraps an existing w:p.
func NewParagraph(p *oxml.CTP, parent Parent) *Paragraph {
	return &Paragraph{p: p, parent: parent}
}

// Element returns the underlying w:p.
func (p *Paragraph) Element() *oxml.CTP {
	return p.p
}

// Parent returns the owner passed at construction, possibly nil.
func (p *Paragraph) Parent() Parent {
	return p.parent
}

func (p *Paragraph) styles() StyleResolver {
	if p.parent != nil {
		if styles := p.parent.Styles(); styles != nil {
			return styles
		}
	}
	return NewDefaultStyles()
}

// Runs returns a fresh wrapper for each w:r child, in document order.
func (p *Paragraph) Runs() []*Run {
	rs := p.p.RList()
	runs := make([]*Run, len(rs))
	for i, r := range rs {
		runs[i] = NewRun(r, p)
	}
	return runs
}

// AddRun appends a run holding text, with the character style named style.
// Either may be empty. The style is resolved before the run is created, so
// an unknown name leaves the paragraph untouched.
func (p *Paragraph) AddRun(text, style string) (*Run, error) {
	styleID, err := resolveStyle(p.styles(), style, enum.StyleTypeCharacter)
	if err != nil {
		return nil, err
	}

	r := p.p.AddR()
	if text != "" {
		r.SetText(text)
	}
	if styleID != "" {
		r.SetStyle(styleID)
	}
	return NewRun(r, p), nil
}

// Alignment returns the paragraph's explicit alignment, or AlignInherit.
// An unrecognised w:jc token reads as AlignInherit.
func (p *Paragraph) Alignment() enum.ParagraphAlignment {
	a, err := p.p.Alignment()
	if err != nil {
		Warn("ignoring paragraph alignment: %v", err)
		return enum.AlignInherit
	}
	return a
}

// SetAlignment writes w:jc; AlignInherit removes it.
func (p *Paragraph) SetAlignment(value enum.ParagraphAlignment) error {
	return p.p.SetAlignment(value)
}

// Style returns the paragraph style name, or the default paragraph style
// name when none is referenced.
func (p *Paragraph) Style() string {
	styleID := p.p.Style()
	styles := p.styles()
	if styleID == "" {
		return styles.DefaultStyleName(enum.StyleTypeParagraph)
	}
	return styles.StyleName(styleID, enum.StyleTypeParagraph)
}

// SetStyle applies the paragraph style called name. An empty name or the
// default style removes the reference. Unknown names return a
// StyleNotFoundError and leave the paragraph unchanged.
func (p *Paragraph) SetStyle(name string) error {
	styleID, err := resolveStyle(p.styles(), name, enum.StyleTypeParagraph)
	if err != nil {
		return err
	}
	p.p.SetStyle(styleID)
	return nil
}

// Text concatenates the text of every run.
func (p *Paragraph) Text() string {
	var b strings.Builder
	for _, r := range p.Runs() {
		b.WriteString(r.Text())
	}
	return b.String()
}

// SetText replaces the paragraph content with a single unformatted run.
// Paragraph properties are kept.
func (p *Paragraph) SetText(text string) {
	p.Clear()
	p.p.AddR().SetText(text)
}

// InsertParagraphBefore creates a sibling paragraph directly before this
// one and returns it. This paragraph is not modified.
func (p *Paragraph) InsertParagraphBefore(text, style string) (*Paragraph, error) {
	styleID, err := resolveStyle(p.styles(), style, enum.StyleTypeParagraph)
	if err != nil {
		return nil, err
	}

	added := NewParagraph(p.p.AddPBefore(), p.parent)
	if text != "" {
		added.p.AddR().SetText(text)
	}
	if styleID != "" {
		added.p.SetStyle(styleID)
	}
	return added, nil
}

// Clear removes all content but keeps paragraph properties. It returns p.
func (p *Paragraph) Clear() *Paragraph {
	p.p.ClearContent()
	return p
}
