package wordml

import (
	"github.com/benjaminschreck/go-wordml/pkg/wordml/enum"
	"github.com/benjaminschreck/go-wordml/pkg/wordml/oxml"
)

// Run is the object-model view of a w:r element
type Run struct {
	r      *oxml.CTR
	parent *Paragraph
}

// NewRun wraps an existing w:r. parent may be nil.
func NewRun(r *oxml.CTR, parent *Paragraph) *Run {
	return &Run{r: r, parent: parent}
}

// Element returns the underlying w:r.
func (r *Run) Element() *oxml.CTR {
	return r.r
}

// Paragraph returns the containing paragraph, possibly nil.
func (r *Run) Paragraph() *Paragraph {
	return r.parent
}

func (r *Run) styles() StyleResolver {
	if r.parent != nil {
		return r.parent.styles()
	}
	return NewDefaultStyles()
}

// Text returns the run content with tabs and line breaks as "\t" and "\n".
func (r *Run) Text() string {
	return r.r.Text()
}

// SetText replaces the run content. "\r" is stored as a line break, so
// reading back yields text with every "\r" replaced by "\n".
func (r *Run) SetText(text string) {
	r.r.SetText(text)
}

// Style returns the character style name, or the default character style
// name when none is referenced.
func (r *Run) Style() string {
	styleID := r.r.Style()
	styles := r.styles()
	if styleID == "" {
		return styles.DefaultStyleName(enum.StyleTypeCharacter)
	}
	return styles.StyleName(styleID, enum.StyleTypeCharacter)
}

// SetStyle applies the character style called name; empty removes it.
func (r *Run) SetStyle(name string) error {
	styleID, err := resolveStyle(r.styles(), name, enum.StyleTypeCharacter)
	if err != nil {
		return err
	}
	r.r.SetStyle(styleID)
	return nil
}
