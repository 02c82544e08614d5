package enum

import "fmt"

// ParagraphAlignment is the w:jc value of a paragraph. AlignInherit is not a
// wire value: it stands for an absent w:jc, so the alignment comes from the
// style hierarchy.
type ParagraphAlignment int

const (
	AlignInherit ParagraphAlignment = iota
	AlignLeft
	AlignCenter
	AlignRight
	AlignJustify
	AlignDistribute
	AlignJustifyMed
	AlignJustifyHi
	AlignJustifyLow
	AlignThaiJustify
)

type alignmentMember struct {
	name  string
	token string
}

var alignmentMembers = map[ParagraphAlignment]alignmentMember{
	AlignInherit:     {name: "INHERIT"},
	AlignLeft:        {name: "LEFT", token: "left"},
	AlignCenter:      {name: "CENTER", token: "center"},
	AlignRight:       {name: "RIGHT", token: "right"},
	AlignJustify:     {name: "JUSTIFY", token: "both"},
	AlignDistribute:  {name: "DISTRIBUTE", token: "distribute"},
	AlignJustifyMed:  {name: "JUSTIFY_MED", token: "mediumKashida"},
	AlignJustifyHi:   {name: "JUSTIFY_HI", token: "highKashida"},
	AlignJustifyLow:  {name: "JUSTIFY_LOW", token: "lowKashida"},
	AlignThaiJustify: {name: "THAI_JUSTIFY", token: "thaiDistribute"},
}

// Strict-schema spellings that read as their transitional counterparts.
var alignmentSynonyms = map[string]ParagraphAlignment{
	"start": AlignLeft,
	"end":   AlignRight,
}

func (a ParagraphAlignment) String() string {
	if m, ok := alignmentMembers[a]; ok {
		return m.name
	}
	return fmt.Sprintf("ParagraphAlignment(%d)", int(a))
}

// Valid reports whether a is a member of the enumeration.
func (a ParagraphAlignment) Valid() bool {
	_, ok := alignmentMembers[a]
	return ok
}

// XMLValue returns the w:jc token for a. AlignInherit yields "" with no
// error, meaning the attribute is absent.
func (a ParagraphAlignment) XMLValue() (string, error) {
	m, ok := alignmentMembers[a]
	if !ok {
		return "", &InvalidEnumValueError{Enum: "paragraph alignment", Value: a.String()}
	}
	return m.token, nil
}

// ParseParagraphAlignment maps a w:jc token to its member.
func ParseParagraphAlignment(token string) (ParagraphAlignment, error) {
	for a, m := range alignmentMembers {
		if m.token != "" && m.token == token {
			return a, nil
		}
	}
	if a, ok := alignmentSynonyms[token]; ok {
		return a, nil
	}
	return AlignInherit, &InvalidEnumValueError{Enum: "paragraph alignment", Value: token}
}

// ParseAlignmentName accepts a member name ("center", "JUSTIFY", "inherit")
// or a wire token ("both"), case-insensitively.
func ParseAlignmentName(s string) (ParagraphAlignment, error) {
	want := lowerASCII(s)
	for a, m := range alignmentMembers {
		if lowerASCII(m.name) == want || (m.token != "" && lowerASCII(m.token) == want) {
			return a, nil
		}
	}
	if a, ok := alignmentSynonyms[want]; ok {
		return a, nil
	}
	return AlignInherit, &InvalidEnumValueError{Enum: "paragraph alignment", Value: s}
}
