package oxml

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestRunText(t *testing.T) {
	tests := []struct {
		name     string
		run      string
		expected string
	}{
		{"empty run", `<w:r/>`, ""},
		{"empty text", `<w:r><w:t/></w:r>`, ""},
		{"single text", `<w:r><w:t>foo</w:t></w:r>`, "foo"},
		{"adjacent texts", `<w:r><w:t>foo</w:t><w:t>bar</w:t></w:r>`, "foobar"},
		{"preserved space", `<w:r><w:t xml:space="preserve">fo </w:t><w:t>bar</w:t></w:r>`, "fo bar"},
		{"tab", `<w:r><w:t>foo</w:t><w:tab/><w:t>bar</w:t></w:r>`, "foo\tbar"},
		{"line break", `<w:r><w:t>foo</w:t><w:br/><w:t>bar</w:t></w:r>`, "foo\nbar"},
		{"carriage return", `<w:r><w:t>foo</w:t><w:cr/><w:t>bar</w:t></w:r>`, "foo\nbar"},
		{"page break is layout only", `<w:r><w:t>foo</w:t><w:br w:type="page"/><w:t>bar</w:t></w:r>`, "foobar"},
		{"properties ignored", `<w:r><w:rPr><w:b/></w:rPr><w:t>x</w:t><w:drawing/></w:r>`, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := AsR(element(t, tt.run))
			assert.Equal(t, tt.expected, r.Text())
		})
	}
}

func TestRunSetText(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{"plain", "foobar", `<w:r><w:t>foobar</w:t></w:r>`},
		{"empty", "", `<w:r/>`},
		{"tab", "foo\tbar", `<w:r><w:t>foo</w:t><w:tab/><w:t>bar</w:t></w:r>`},
		{"newline", "foo\nbar", `<w:r><w:t>foo</w:t><w:br/><w:t>bar</w:t></w:r>`},
		{"carriage return", "foo\rbar", `<w:r><w:t>foo</w:t><w:br/><w:t>bar</w:t></w:r>`},
		{"leading marker", "\tx", `<w:r><w:tab/><w:t>x</w:t></w:r>`},
		{"trailing newline", "x\n", `<w:r><w:t>x</w:t><w:br/></w:r>`},
		{"whitespace preserved", " x ", `<w:r><w:t xml:space="preserve"> x </w:t></w:r>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewR()
			r.SetText(tt.text)
			assertXML(t, tt.expected, r.Element)
		})
	}
}

func TestRunSetTextKeepsProperties(t *testing.T) {
	r := AsR(element(t, `<w:r><w:rPr><w:b/></w:rPr><w:t>old</w:t><w:tab/></w:r>`))
	r.SetText("new")
	assertXML(t, `<w:r><w:rPr><w:b/></w:rPr><w:t>new</w:t></w:r>`, r.Element)
}

func TestRunTextRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"plain",
		"foo\tbar\rbaz\n",
		"\r\n\r\n",
		"\t\t",
		"  leading and trailing  ",
		"unicode ✓ · ünïcödé\tend",
		"a < b & c > d",
		"a\xffb",
		"\xc3\t\xa9",
	}
	for _, in := range inputs {
		r := NewR()
		r.SetText(in)
		assert.Equal(t, strings.ReplaceAll(in, "\r", "\n"), r.Text(), "input %q", in)

		// and survives serialization; XML text cannot hold invalid UTF-8
		if !utf8.ValidString(in) {
			continue
		}
		reparsed := AsR(element(t, r.XML()))
		assert.Equal(t, r.Text(), reparsed.Text(), "input %q", in)
	}
}

func TestRunStyleNode(t *testing.T) {
	r := AsR(element(t, `<w:r><w:t>x</w:t></w:r>`))
	assert.Equal(t, "", r.Style())

	r.SetStyle("Strong")
	assertXML(t, `<w:r><w:rPr><w:rStyle w:val="Strong"/></w:rPr><w:t>x</w:t></w:r>`, r.Element)
	assert.Equal(t, "Strong", r.Style())

	r = AsR(element(t, `<w:r><w:rPr><w:b/></w:rPr></w:r>`))
	r.SetStyle("Emphasis")
	assertXML(t, `<w:r><w:rPr><w:rStyle w:val="Emphasis"/><w:b/></w:rPr></w:r>`, r.Element)

	r.SetStyle("")
	assertXML(t, `<w:r><w:rPr><w:b/></w:rPr></w:r>`, r.Element)

	bare := NewR()
	bare.SetStyle("")
	assert.Nil(t, bare.RPr())
}

func TestRunMarkers(t *testing.T) {
	r := NewR()
	r.AddT("a")
	r.AddTab()
	r.AddBr()
	r.AddCR()
	assertXML(t, `<w:r><w:t>a</w:t><w:tab/><w:br/><w:cr/></w:r>`, r.Element)
	assert.Equal(t, "a\t\n\n", r.Text())

	r.ClearContent()
	assertXML(t, `<w:r/>`, r.Element)
}
