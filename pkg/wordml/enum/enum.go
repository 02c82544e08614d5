// Package enum defines the closed value sets used by paragraph and run
// properties, each with an explicit mapping to its WordprocessingML token.
package enum

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEnumValue is matched by every InvalidEnumValueError via errors.Is.
var ErrInvalidEnumValue = errors.New("invalid enum value")

// InvalidEnumValueError reports a value outside an enumeration's domain.
type InvalidEnumValueError struct {
	Enum  string
	Value string
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid %s value '%s'", e.Enum, e.Value)
}

func (e *InvalidEnumValueError) Is(target error) bool {
	return target == ErrInvalidEnumValue
}

// IsInvalidEnumValue checks if an error is an invalid enum value error
func IsInvalidEnumValue(err error) bool {
	return errors.Is(err, ErrInvalidEnumValue)
}

// StyleType is the kind of a style definition; paragraph and character
// styles live in separate name scopes.
type StyleType int

const (
	StyleTypeParagraph StyleType = iota + 1
	StyleTypeCharacter
	StyleTypeTable
	StyleTypeNumbering
)

var styleTypeTokens = map[StyleType]string{
	StyleTypeParagraph: "paragraph",
	StyleTypeCharacter: "character",
	StyleTypeTable:     "table",
	StyleTypeNumbering: "numbering",
}

func (t StyleType) String() string {
	if tok, ok := styleTypeTokens[t]; ok {
		return tok
	}
	return fmt.Sprintf("StyleType(%d)", int(t))
}

// XMLValue is the w:type token of the style kind.
func (t StyleType) XMLValue() (string, error) {
	tok, ok := styleTypeTokens[t]
	if !ok {
		return "", &InvalidEnumValueError{Enum: "style type", Value: t.String()}
	}
	return tok, nil
}

// ParseStyleType maps a w:type token back to its StyleType.
func ParseStyleType(token string) (StyleType, error) {
	for t, tok := range styleTypeTokens {
		if tok == token {
			return t, nil
		}
	}
	return 0, &InvalidEnumValueError{Enum: "style type", Value: token}
}

// lowerASCII is used for name matching; tokens are ASCII only.
func lowerASCII(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
