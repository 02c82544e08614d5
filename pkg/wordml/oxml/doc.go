// Package oxml is the XML node layer of go-wordml.
//
// It holds a small generic element tree (Element) together with typed views
// over the WordprocessingML elements the object model touches:
//
//   - CTP wraps w:p: properties child first, then runs
//   - CTPPr wraps w:pPr: style reference (w:pStyle) and alignment (w:jc)
//   - CTR wraps w:r: optional w:rPr, then content (w:t, w:tab, w:br, w:cr)
//
// Every insertion honours the schema sequence of the parent, so optional
// children created on demand land where Word expects them. Names are stored
// with their namespace URI; Qn turns the conventional "w:p" spelling into a
// qualified name and XML writes the prefixes back.
//
// Example:
//
//	p, _ := oxml.ParseString(`<w:p><w:r><w:t>Hello</w:t></w:r></w:p>`)
//	para := oxml.AsP(p)
//	para.SetStyle("Heading1")
//	fmt.Println(para.XML())
package oxml
