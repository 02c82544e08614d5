// Package wordml provides a paragraph and run object model over
// WordprocessingML XML.
//
// The package sits on top of the oxml node layer. Paragraph and Run wrap a
// w:p or w:r element and translate editor-style operations (append a run,
// change alignment or style, replace text, insert a paragraph) into
// structural edits that keep the schema order of the elements they touch:
// w:pPr stays the first child of w:p, w:rPr the first child of w:r.
//
// # Wrappers
//
// Wrappers are not cached. Runs() and Paragraphs() build new values bound to
// the current XML on every call, so a wrapper never goes stale and callers
// compare nodes rather than wrapper pointers.
//
// # Styles
//
// Style names are translated to ids through a StyleResolver found on the
// paragraph's Parent. Three resolvers are provided:
//
//   - DefaultStyles: names are ids; used when there is no parent
//   - StyleSheet: parsed from a styles.xml part
//   - StyleMap: a YAML name to id table
//
// Setters resolve before they mutate, so a StyleNotFoundError leaves the
// tree as it was.
//
// # Usage
//
//	body, err := wordml.ParseBody(r, nil)
//	if err != nil {
//	    return err
//	}
//	for _, p := range body.Paragraphs() {
//	    if p.Style() == "Heading1" {
//	        p.SetAlignment(enum.AlignCenter)
//	    }
//	}
//	_, err = body.Element().Root().WriteTo(w)
//
// The object model is not safe for concurrent mutation.
package wordml
