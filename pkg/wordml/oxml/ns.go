package oxml

import (
	"encoding/xml"
	"strings"
)

// XMLNamespace is the namespace bound to the reserved "xml" prefix.
const XMLNamespace = "http://www.w3.org/XML/1998/namespace"

// nsmap maps conventional prefixes to namespace URIs
var nsmap = map[string]string{
	// Core Word namespaces
	"w":   "http://schemas.openxmlformats.org/wordprocessingml/2006/main",
	"r":   "http://schemas.openxmlformats.org/officeDocument/2006/relationships",
	"m":   "http://schemas.openxmlformats.org/officeDocument/2006/math",
	"mc":  "http://schemas.openxmlformats.org/markup-compatibility/2006",
	"o":   "urn:schemas-microsoft-com:office:office",
	"v":   "urn:schemas-microsoft-com:vml",
	"w10": "urn:schemas-microsoft-com:office:word",
	// Drawing namespaces
	"wp":  "http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing",
	"a":   "http://schemas.openxmlformats.org/drawingml/2006/main",
	"pic": "http://schemas.openxmlformats.org/drawingml/2006/picture",
	// Extended Word namespaces
	"w14":  "http://schemas.microsoft.com/office/word/2010/wordml",
	"w15":  "http://schemas.microsoft.com/office/word/2012/wordml",
	"wp14": "http://schemas.microsoft.com/office/word/2010/wordprocessingDrawing",
	"wps":  "http://schemas.microsoft.com/office/word/2010/wordprocessingShape",
	"wpg":  "http://schemas.microsoft.com/office/word/2010/wordprocessingGroup",
	"wne":  "http://schemas.microsoft.com/office/word/2006/wordml",
}

// pfxmap is the reverse of nsmap
var pfxmap = func() map[string]string {
	m := make(map[string]string, len(nsmap))
	for prefix, uri := range nsmap {
		m[uri] = prefix
	}
	return m
}()

// Qn converts a prefixed tag such as "w:p" into a namespace-qualified name.
// Unknown prefixes are kept verbatim in Space.
func Qn(tag string) xml.Name {
	prefix, local, ok := strings.Cut(tag, ":")
	if !ok {
		return xml.Name{Local: tag}
	}
	if prefix == "xml" {
		return xml.Name{Space: XMLNamespace, Local: local}
	}
	if uri, ok := nsmap[prefix]; ok {
		return xml.Name{Space: uri, Local: local}
	}
	return xml.Name{Space: prefix, Local: local}
}

// NamespaceURI returns the URI for a conventional prefix.
func NamespaceURI(prefix string) (string, bool) {
	uri, ok := nsmap[prefix]
	return uri, ok
}

// NsDecls renders xmlns declarations for the given prefixes, each preceded
// by a space, ready to be spliced into a start tag.
func NsDecls(prefixes ...string) string {
	var b strings.Builder
	for _, prefix := range prefixes {
		uri, ok := nsmap[prefix]
		if !ok {
			continue
		}
		b.WriteString(` xmlns:`)
		b.WriteString(prefix)
		b.WriteString(`="`)
		b.WriteString(uri)
		b.WriteString(`"`)
	}
	return b.String()
}
