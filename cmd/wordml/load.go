package main

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/benjaminschreck/go-wordml/pkg/wordml"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
)

// expandInputs resolves each argument as a doublestar pattern ("parts/**/*.xml").
// A pattern without matches is an error, so typos do not pass silently.
func expandInputs(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", pattern)
		}
		files = append(files, matches...)
	}
	return files, nil
}

func loadBody(path string, styles wordml.StyleResolver) (*wordml.Body, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wordml.NewDocumentError("open", path, err)
	}
	defer f.Close()

	body, err := wordml.ParseBody(f, styles)
	if err != nil {
		var docErr *wordml.DocumentError
		if errors.As(err, &docErr) && docErr.Path == "" {
			docErr.Path = path
		}
		return nil, err
	}
	wordml.WithField("path", path).Debug("loaded part")
	return body, nil
}

// saveBody writes the whole part the body belongs to, with an XML declaration.
func saveBody(body *wordml.Body, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return wordml.NewDocumentError("save", path, err)
	}
	if _, err := io.WriteString(f, xml.Header); err != nil {
		f.Close()
		return wordml.NewDocumentError("save", path, err)
	}
	if _, err := body.Element().Root().WriteTo(f); err != nil {
		f.Close()
		return wordml.NewDocumentError("save", path, err)
	}
	if err := f.Close(); err != nil {
		return wordml.NewDocumentError("save", path, err)
	}
	wordml.WithField("path", path).Debug("saved part")
	return nil
}

func paragraphAt(body *wordml.Body, arg string) (*wordml.Paragraph, error) {
	index, err := strconv.Atoi(arg)
	if err != nil {
		return nil, fmt.Errorf("invalid paragraph index %q", arg)
	}
	paragraphs := body.Paragraphs()
	if index < 0 || index >= len(paragraphs) {
		return nil, fmt.Errorf("paragraph index %d out of range (document has %d)", index, len(paragraphs))
	}
	return paragraphs[index], nil
}

// styleSource selects the StyleResolver for a command from its flags,
// falling back to the configured style map and then to DefaultStyles.
type styleSource struct {
	stylesPath   string
	styleMapPath string
}

func (s *styleSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&s.stylesPath, "styles", "", "styles.xml part used to resolve style names")
	cmd.Flags().StringVar(&s.styleMapPath, "style-map", "", "YAML style map used to resolve style names")
	cmd.MarkFlagsMutuallyExclusive("styles", "style-map")
}

func (s *styleSource) resolver() (wordml.StyleResolver, error) {
	if s.stylesPath != "" {
		f, err := os.Open(s.stylesPath)
		if err != nil {
			return nil, wordml.NewDocumentError("open", s.stylesPath, err)
		}
		defer f.Close()
		sheet, err := wordml.ParseStyleSheet(f)
		if err != nil {
			return nil, wordml.NewDocumentError("load", s.stylesPath, err)
		}
		return sheet, nil
	}

	path := s.styleMapPath
	if path == "" {
		path = wordml.GetGlobalConfig().StyleMapPath
	}
	if path == "" {
		return wordml.NewDefaultStyles(), nil
	}
	return wordml.LoadStyleMapFile(path)
}

// outputPath is --out when given, else the input itself.
func outputPath(in, out string) string {
	if out != "" {
		return out
	}
	return in
}
