package wordml

import (
	"fmt"
	"io"
	"os"

	"github.com/benjaminschreck/go-wordml/pkg/wordml/enum"
	"gopkg.in/yaml.v3"
)

// StyleMap is a hand-written name to id table, loaded from YAML:
//
//	defaults:
//	  paragraph: Normal
//	  character: Default Paragraph Font
//	paragraph:
//	  Heading 1: Heading1
//	character:
//	  Strong: Strong
type StyleMap struct {
	Defaults  StyleMapDefaults  `yaml:"defaults"`
	Paragraph map[string]string `yaml:"paragraph"`
	Character map[string]string `yaml:"character"`
}

// StyleMapDefaults names the styles reported when no reference is present
type StyleMapDefaults struct {
	Paragraph string `yaml:"paragraph"`
	Character string `yaml:"character"`
}

// LoadStyleMap decodes a YAML style map. Missing defaults come from the
// global configuration.
func LoadStyleMap(r io.Reader) (*StyleMap, error) {
	var m StyleMap
	if err := yaml.NewDecoder(r).Decode(&m); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse style map: %w", err)
	}

	defaults := NewDefaultStyles()
	if m.Defaults.Paragraph == "" {
		m.Defaults.Paragraph = defaults.Paragraph
	}
	if m.Defaults.Character == "" {
		m.Defaults.Character = defaults.Character
	}
	return &m, nil
}

// LoadStyleMapFile reads a YAML style map from disk.
func LoadStyleMapFile(path string) (*StyleMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, NewDocumentError("open", path, err)
	}
	defer f.Close()

	m, err := LoadStyleMap(f)
	if err != nil {
		return nil, NewDocumentError("load", path, err)
	}
	return m, nil
}

func (m *StyleMap) scope(styleType enum.StyleType) map[string]string {
	switch styleType {
	case enum.StyleTypeParagraph:
		return m.Paragraph
	case enum.StyleTypeCharacter:
		return m.Character
	default:
		return nil
	}
}

func (m *StyleMap) StyleID(name string, styleType enum.StyleType) (string, error) {
	if name == "" || name == m.DefaultStyleName(styleType) {
		return "", nil
	}
	if id, ok := m.scope(styleType)[name]; ok {
		return id, nil
	}
	return "", &StyleNotFoundError{Name: name, Type: styleType}
}

func (m *StyleMap) StyleName(styleID string, styleType enum.StyleType) string {
	// Several names may share an id; the smallest one is reported
	found := ""
	for name, id := range m.scope(styleType) {
		if id == styleID && (found == "" || name < found) {
			found = name
		}
	}
	if found == "" {
		return m.DefaultStyleName(styleType)
	}
	return found
}

func (m *StyleMap) DefaultStyleName(styleType enum.StyleType) string {
	switch styleType {
	case enum.StyleTypeParagraph:
		return m.Defaults.Paragraph
	case enum.StyleTypeCharacter:
		return m.Defaults.Character
	default:
		return NewDefaultStyles().DefaultStyleName(styleType)
	}
}
