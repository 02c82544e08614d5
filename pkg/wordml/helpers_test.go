package wordml

import (
	"strings"
	"testing"

	"github.com/benjaminschreck/go-wordml/pkg/wordml/oxml"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func element(t *testing.T, src string) *oxml.Element {
	t.Helper()
	el, err := oxml.ParseString(src)
	require.NoError(t, err)
	return el
}

// paragraph wraps a w:p fragment with no parent
func paragraph(t *testing.T, src string) *Paragraph {
	t.Helper()
	return NewParagraph(oxml.AsP(element(t, src)), nil)
}

func assertXML(t *testing.T, want string, got *oxml.Element) {
	t.Helper()
	if diff := cmp.Diff(element(t, want).XML(), got.XML()); diff != "" {
		t.Errorf("xml mismatch (-want +got):\n%s", diff)
	}
}

// testParent is a Parent backed by an arbitrary resolver
type testParent struct {
	styles StyleResolver
}

func (p *testParent) Styles() StyleResolver {
	return p.styles
}

const testStylesXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:styles xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:style w:type="paragraph" w:default="1" w:styleId="Normal">
    <w:name w:val="Normal"/>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Heading1">
    <w:name w:val="heading 1"/>
  </w:style>
  <w:style w:type="paragraph" w:styleId="Title">
    <w:name w:val="Title"/>
  </w:style>
  <w:style w:type="character" w:default="1" w:styleId="DefaultParagraphFont">
    <w:name w:val="Default Paragraph Font"/>
  </w:style>
  <w:style w:type="character" w:styleId="Strong">
    <w:name w:val="Strong"/>
  </w:style>
  <w:style w:type="character" w:styleId="Heading1Char">
    <w:name w:val="Heading 1 Char"/>
  </w:style>
  <w:style w:type="table" w:default="1" w:styleId="TableNormal">
    <w:name w:val="Normal Table"/>
  </w:style>
</w:styles>`

func testStyleSheet(t *testing.T) *StyleSheet {
	t.Helper()
	sheet, err := ParseStyleSheet(strings.NewReader(testStylesXML))
	require.NoError(t, err)
	return sheet
}
