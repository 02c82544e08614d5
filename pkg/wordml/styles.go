package wordml

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/benjaminschreck/go-wordml/pkg/wordml/enum"
	"golang.org/x/text/cases"
)

// StyleResolver translates between human-readable style names and the
// style ids stored in w:pStyle/w:rStyle. Paragraph and character styles are
// separate scopes.
type StyleResolver interface {
	// StyleID returns the id to write for name. An empty id means "use the
	// default style", i.e. the reference should be absent.
	StyleID(name string, styleType enum.StyleType) (string, error)
	// StyleName returns the name for a stored id, or the default style name
	// when the id is unknown.
	StyleName(styleID string, styleType enum.StyleType) string
	// DefaultStyleName is the name reported when no reference is present.
	DefaultStyleName(styleType enum.StyleType) string
}

// DefaultStyles is the resolver used when no styles part is available: ids
// and names are identical, and the configured default names map to "no
// reference".
type DefaultStyles struct {
	Paragraph string
	Character string
}

// NewDefaultStyles builds a DefaultStyles from the global configuration.
func NewDefaultStyles() *DefaultStyles {
	config := GetGlobalConfig()
	return &DefaultStyles{
		Paragraph: config.DefaultParagraphStyle,
		Character: config.DefaultCharacterStyle,
	}
}

func (s *DefaultStyles) StyleID(name string, styleType enum.StyleType) (string, error) {
	if name == "" || name == s.DefaultStyleName(styleType) {
		return "", nil
	}
	return name, nil
}

func (s *DefaultStyles) StyleName(styleID string, styleType enum.StyleType) string {
	if styleID == "" {
		return s.DefaultStyleName(styleType)
	}
	return styleID
}

func (s *DefaultStyles) DefaultStyleName(styleType enum.StyleType) string {
	switch styleType {
	case enum.StyleTypeParagraph:
		return s.Paragraph
	case enum.StyleTypeCharacter:
		return s.Character
	case enum.StyleTypeTable:
		return "Normal Table"
	case enum.StyleTypeNumbering:
		return "No List"
	default:
		return ""
	}
}

// styleSheetXML is the w:styles element of a styles.xml part
type styleSheetXML struct {
	XMLName xml.Name   `xml:"styles"`
	Styles  []styleXML `xml:"style"`
}

// styleXML is a single w:style element
type styleXML struct {
	Type    string `xml:"type,attr"`
	StyleID string `xml:"styleId,attr"`
	Default string `xml:"default,attr"`
	Name    struct {
		Val string `xml:"val,attr"`
	} `xml:"name"`
}

// StyleDefinition is one style known to a StyleSheet
type StyleDefinition struct {
	ID      string
	Name    string
	Type    enum.StyleType
	Default bool
}

// StyleSheet resolves names against the definitions of a styles.xml part.
type StyleSheet struct {
	styles []StyleDefinition
	byID   map[string]int
	byName map[string]int
	folded map[string]int
}

// NewStyleSheet indexes the given definitions. A definition without a name
// is named after its id.
func NewStyleSheet(defs ...StyleDefinition) *StyleSheet {
	fold := cases.Fold()
	sheet := &StyleSheet{
		byID:   make(map[string]int, len(defs)),
		byName: make(map[string]int, len(defs)),
		folded: make(map[string]int, len(defs)),
	}
	for _, def := range defs {
		if def.Name == "" {
			def.Name = def.ID
		}
		i := len(sheet.styles)
		sheet.styles = append(sheet.styles, def)
		// First definition wins on duplicates
		if _, ok := sheet.byID[def.ID]; !ok {
			sheet.byID[def.ID] = i
		}
		if _, ok := sheet.byName[def.Name]; !ok {
			sheet.byName[def.Name] = i
		}
		key := fold.String(def.Name)
		if _, ok := sheet.folded[key]; !ok {
			sheet.folded[key] = i
		}
	}
	return sheet
}

// ParseStyleSheet parses a styles.xml part.
func ParseStyleSheet(r io.Reader) (*StyleSheet, error) {
	var parsed styleSheetXML
	if err := xml.NewDecoder(r).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to parse styles.xml: %w", err)
	}

	defs := make([]StyleDefinition, 0, len(parsed.Styles))
	for _, s := range parsed.Styles {
		styleType, err := enum.ParseStyleType(s.Type)
		if err != nil {
			// w:type is optional and defaults to paragraph
			styleType = enum.StyleTypeParagraph
		}
		defs = append(defs, StyleDefinition{
			ID:      s.StyleID,
			Name:    s.Name.Val,
			Type:    styleType,
			Default: s.Default == "1" || s.Default == "true",
		})
	}
	Debug("parsed %d style definitions", len(defs))
	return NewStyleSheet(defs...), nil
}

// Styles returns the definitions in document order.
func (s *StyleSheet) Styles() []StyleDefinition {
	return append([]StyleDefinition(nil), s.styles...)
}

func (s *StyleSheet) lookupName(name string) (StyleDefinition, bool) {
	if i, ok := s.byName[name]; ok {
		return s.styles[i], true
	}
	if i, ok := s.folded[cases.Fold().String(name)]; ok {
		return s.styles[i], true
	}
	return StyleDefinition{}, false
}

func (s *StyleSheet) StyleID(name string, styleType enum.StyleType) (string, error) {
	if name == "" {
		return "", nil
	}
	def, ok := s.lookupName(name)
	if !ok {
		return "", &StyleNotFoundError{Name: name, Type: styleType}
	}
	if def.Type != styleType {
		return "", &StyleNotFoundError{
			Name:   name,
			Type:   styleType,
			Reason: fmt.Sprintf("style is of type %s", def.Type),
		}
	}
	if def.Default {
		return "", nil
	}
	return def.ID, nil
}

func (s *StyleSheet) StyleName(styleID string, styleType enum.StyleType) string {
	if i, ok := s.byID[styleID]; ok && s.styles[i].Type == styleType {
		return s.styles[i].Name
	}
	return s.DefaultStyleName(styleType)
}

func (s *StyleSheet) DefaultStyleName(styleType enum.StyleType) string {
	for _, def := range s.styles {
		if def.Default && def.Type == styleType {
			return def.Name
		}
	}
	return NewDefaultStyles().DefaultStyleName(styleType)
}

// resolveStyle maps name to an id in styleType's scope. An empty name is the
// empty id. Failures are logged at debug level and returned unchanged.
func resolveStyle(styles StyleResolver, name string, styleType enum.StyleType) (string, error) {
	if name == "" {
		return "", nil
	}
	styleID, err := styles.StyleID(name, styleType)
	if err != nil {
		WithField("style", name).Debug("style lookup failed: %v", err)
		return "", err
	}
	return styleID, nil
}
