package oxml

import "github.com/benjaminschreck/go-wordml/pkg/wordml/enum"

// pPrOrder is the schema sequence of w:pPr children
var pPrOrder = []string{
	"w:pStyle", "w:keepNext", "w:keepLines", "w:pageBreakBefore",
	"w:framePr", "w:widowControl", "w:numPr", "w:suppressLineNumbers",
	"w:pBdr", "w:shd", "w:tabs", "w:suppressAutoHyphens", "w:kinsoku",
	"w:wordWrap", "w:overflowPunct", "w:topLinePunct", "w:autoSpaceDE",
	"w:autoSpaceDN", "w:bidi", "w:adjustRightInd", "w:snapToGrid",
	"w:spacing", "w:ind", "w:contextualSpacing", "w:mirrorIndents",
	"w:suppressOverlap", "w:jc", "w:textDirection", "w:textAlignment",
	"w:textboxTightWrap", "w:outlineLvl", "w:divId", "w:cnfStyle",
	"w:rPr", "w:sectPr", "w:pPrChange",
}

// successorsOf returns the tags that must come after tag within order.
func successorsOf(order []string, tag string) []string {
	for i, t := range order {
		if t == tag {
			return order[i+1:]
		}
	}
	return nil
}

// CTP is a w:p element.
type CTP struct {
	*Element
}

// NewP creates a detached, empty w:p.
func NewP() *CTP {
	return &CTP{New("w:p")}
}

// AsP views an existing element as a paragraph.
func AsP(el *Element) *CTP {
	return &CTP{el}
}

// PPr returns the paragraph properties child, or nil.
func (p *CTP) PPr() *CTPPr {
	if el := p.Find("w:pPr"); el != nil {
		return &CTPPr{el}
	}
	return nil
}

// GetOrAddPPr returns w:pPr, creating it as the first child when absent.
func (p *CTP) GetOrAddPPr() *CTPPr {
	if pPr := p.PPr(); pPr != nil {
		return pPr
	}
	return &CTPPr{p.InsertChild(0, New("w:pPr"))}
}

// RemovePPr drops w:pPr and everything in it.
func (p *CTP) RemovePPr() {
	p.RemoveAll("w:pPr")
}

// RList returns the w:r children in document order.
func (p *CTP) RList() []*CTR {
	els := p.FindAll("w:r")
	runs := make([]*CTR, len(els))
	for i, el := range els {
		runs[i] = &CTR{el}
	}
	return runs
}

// AddR appends a new w:r as the last child.
func (p *CTP) AddR() *CTR {
	return &CTR{p.AppendChild(New("w:r"))}
}

// ClearContent removes every child except w:pPr.
func (p *CTP) ClearContent() {
	p.RemoveAllExcept("w:pPr")
}

// AddPBefore inserts a new empty w:p immediately before this one.
func (p *CTP) AddPBefore() *CTP {
	return &CTP{p.AddPrevious(New("w:p"))}
}

// Style returns the w:pStyle id, or "" when none is set.
func (p *CTP) Style() string {
	pPr := p.PPr()
	if pPr == nil {
		return ""
	}
	return pPr.Style()
}

// SetStyle writes the w:pStyle id. An empty id removes w:pStyle without
// creating w:pPr.
func (p *CTP) SetStyle(styleID string) {
	if styleID == "" {
		if pPr := p.PPr(); pPr != nil {
			pPr.SetStyle("")
		}
		return
	}
	p.GetOrAddPPr().SetStyle(styleID)
}

// Alignment returns the w:jc value, AlignInherit when absent.
func (p *CTP) Alignment() (enum.ParagraphAlignment, error) {
	pPr := p.PPr()
	if pPr == nil {
		return enum.AlignInherit, nil
	}
	return pPr.Alignment()
}

// SetAlignment writes w:jc. AlignInherit removes it without creating w:pPr.
// An out-of-domain value is rejected before the tree is touched.
func (p *CTP) SetAlignment(value enum.ParagraphAlignment) error {
	token, err := value.XMLValue()
	if err != nil {
		return err
	}
	if token == "" {
		if pPr := p.PPr(); pPr != nil {
			pPr.RemoveAll("w:jc")
		}
		return nil
	}
	p.GetOrAddPPr().setJc(token)
	return nil
}

// CTPPr is a w:pPr element.
type CTPPr struct {
	*Element
}

// Style returns the w:pStyle/@w:val id.
func (pPr *CTPPr) Style() string {
	pStyle := pPr.Find("w:pStyle")
	if pStyle == nil {
		return ""
	}
	val, _ := pStyle.Attr("w:val")
	return val
}

// SetStyle writes w:pStyle, or removes it for an empty id.
func (pPr *CTPPr) SetStyle(styleID string) {
	if styleID == "" {
		pPr.RemoveAll("w:pStyle")
		return
	}
	pStyle := pPr.Find("w:pStyle")
	if pStyle == nil {
		pStyle = pPr.InsertElementBefore(New("w:pStyle"), successorsOf(pPrOrder, "w:pStyle")...)
	}
	pStyle.SetAttr("w:val", styleID)
}

// Alignment parses w:jc/@w:val.
func (pPr *CTPPr) Alignment() (enum.ParagraphAlignment, error) {
	jc := pPr.Find("w:jc")
	if jc == nil {
		return enum.AlignInherit, nil
	}
	val, ok := jc.Attr("w:val")
	if !ok {
		return enum.AlignInherit, nil
	}
	return enum.ParseParagraphAlignment(val)
}

func (pPr *CTPPr) setJc(token string) {
	jc := pPr.Find("w:jc")
	if jc == nil {
		jc = pPr.InsertElementBefore(New("w:jc"), successorsOf(pPrOrder, "w:jc")...)
	}
	jc.SetAttr("w:val", token)
}
