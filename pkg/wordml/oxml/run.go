package oxml

import "strings"

// rPrOrder is the schema sequence of w:rPr children
var rPrOrder = []string{
	"w:rStyle", "w:rFonts", "w:b", "w:bCs", "w:i", "w:iCs", "w:caps",
	"w:smallCaps", "w:strike", "w:dstrike", "w:outline", "w:shadow",
	"w:emboss", "w:imprint", "w:noProof", "w:snapToGrid", "w:vanish",
	"w:webHidden", "w:color", "w:spacing", "w:w", "w:kern", "w:position",
	"w:sz", "w:szCs", "w:highlight", "w:u", "w:effect", "w:bdr", "w:shd",
	"w:fitText", "w:vertAlign", "w:rtl", "w:cs", "w:em", "w:lang",
	"w:eastAsianLayout", "w:specVanish", "w:oMath",
}

// CTR is a w:r element.
type CTR struct {
	*Element
}

// NewR creates a detached, empty w:r.
func NewR() *CTR {
	return &CTR{New("w:r")}
}

// AsR views an existing element as a run.
func AsR(el *Element) *CTR {
	return &CTR{el}
}

// RPr returns the run properties child, or nil.
func (r *CTR) RPr() *Element {
	return r.Find("w:rPr")
}

// GetOrAddRPr returns w:rPr, creating it as the first child when absent.
func (r *CTR) GetOrAddRPr() *Element {
	if rPr := r.RPr(); rPr != nil {
		return rPr
	}
	return r.InsertChild(0, New("w:rPr"))
}

// Style returns the w:rStyle id, or "" when none is set.
func (r *CTR) Style() string {
	rPr := r.RPr()
	if rPr == nil {
		return ""
	}
	rStyle := rPr.Find("w:rStyle")
	if rStyle == nil {
		return ""
	}
	val, _ := rStyle.Attr("w:val")
	return val
}

// SetStyle writes w:rPr/w:rStyle. An empty id removes w:rStyle without
// creating w:rPr.
func (r *CTR) SetStyle(styleID string) {
	if styleID == "" {
		if rPr := r.RPr(); rPr != nil {
			rPr.RemoveAll("w:rStyle")
		}
		return
	}
	rPr := r.GetOrAddRPr()
	rStyle := rPr.Find("w:rStyle")
	if rStyle == nil {
		rStyle = rPr.InsertElementBefore(New("w:rStyle"), successorsOf(rPrOrder, "w:rStyle")...)
	}
	rStyle.SetAttr("w:val", styleID)
}

// AddT appends a w:t holding text. Leading or trailing whitespace gets
// xml:space="preserve" so consumers do not trim it.
func (r *CTR) AddT(text string) *Element {
	t := New("w:t")
	t.Text = text
	if strings.TrimSpace(text) != text {
		t.SetAttr("xml:space", "preserve")
	}
	return r.AppendChild(t)
}

// AddTab appends a w:tab marker.
func (r *CTR) AddTab() *Element {
	return r.AppendChild(New("w:tab"))
}

// AddBr appends a w:br line break.
func (r *CTR) AddBr() *Element {
	return r.AppendChild(New("w:br"))
}

// AddCR appends a w:cr carriage return marker.
func (r *CTR) AddCR() *Element {
	return r.AppendChild(New("w:cr"))
}

// ClearContent removes every child except w:rPr.
func (r *CTR) ClearContent() {
	r.RemoveAllExcept("w:rPr")
}

// Text concatenates the run content in document order: w:t contributes its
// literal text, w:tab a tab, w:br and w:cr a newline. A w:br of type page or
// column is a layout break and contributes nothing, as does any other child.
func (r *CTR) Text() string {
	var b strings.Builder
	for _, c := range r.Children {
		switch {
		case c.Is("w:t"):
			b.WriteString(c.Text)
		case c.Is("w:tab"):
			b.WriteByte('\t')
		case c.Is("w:br"):
			if typ, ok := c.Attr("w:type"); !ok || typ == "textWrapping" {
				b.WriteByte('\n')
			}
		case c.Is("w:cr"):
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// SetText replaces the run content with text. "\r" is read as "\n"; "\t"
// becomes w:tab, "\n" becomes w:br, and each stretch of other bytes
// becomes a single w:t. w:rPr is kept. The markers are ASCII, so text is
// scanned by byte and invalid UTF-8 is stored unchanged.
func (r *CTR) SetText(text string) {
	r.ClearContent()

	start := 0
	for i := 0; i < len(text); i++ {
		if c := text[i]; c != '\t' && c != '\n' && c != '\r' {
			continue
		}
		if start < i {
			r.AddT(text[start:i])
		}
		if text[i] == '\t' {
			r.AddTab()
		} else {
			r.AddBr()
		}
		start = i + 1
	}
	if start < len(text) {
		r.AddT(text[start:])
	}
}
