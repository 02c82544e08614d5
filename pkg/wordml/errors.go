package wordml

import (
	"errors"
	"fmt"

	"github.com/benjaminschreck/go-wordml/pkg/wordml/enum"
)

// ErrStyleNotFound is matched by every StyleNotFoundError via errors.Is.
var ErrStyleNotFound = errors.New("style not found")

// StyleNotFoundError reports a style name that a resolver cannot map to an id
type StyleNotFoundError struct {
	Name string
	Type enum.StyleType
	// Reason is set when the name exists but cannot be used, e.g. wrong type
	Reason string
}

func (e *StyleNotFoundError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("no %s style named '%s': %s", e.Type, e.Name, e.Reason)
	}
	return fmt.Sprintf("no %s style named '%s'", e.Type, e.Name)
}

func (e *StyleNotFoundError) Is(target error) bool {
	return target == ErrStyleNotFound
}

// DocumentError represents an error while loading or saving an XML part
type DocumentError struct {
	Operation string
	Path      string
	Cause     error
}

func (e *DocumentError) Error() string {
	if e.Path != "" && e.Cause != nil {
		return fmt.Sprintf("document error during %s of '%s': %v", e.Operation, e.Path, e.Cause)
	} else if e.Path != "" {
		return fmt.Sprintf("document error during %s of '%s'", e.Operation, e.Path)
	} else if e.Cause != nil {
		return fmt.Sprintf("document error during %s: %v", e.Operation, e.Cause)
	}
	return fmt.Sprintf("document error during %s", e.Operation)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// NewDocumentError creates a new document error
func NewDocumentError(operation, path string, cause error) error {
	return &DocumentError{
		Operation: operation,
		Path:      path,
		Cause:     cause,
	}
}

// IsStyleNotFoundError checks if an error is a style lookup failure
func IsStyleNotFoundError(err error) bool {
	return errors.Is(err, ErrStyleNotFound)
}

// IsInvalidEnumValue checks if an error reports an out-of-domain enum value
func IsInvalidEnumValue(err error) bool {
	return enum.IsInvalidEnumValue(err)
}

// IsDocumentError checks if an error is a document error
func IsDocumentError(err error) bool {
	var docErr *DocumentError
	return errors.As(err, &docErr)
}
