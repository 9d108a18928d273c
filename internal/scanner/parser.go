package scanner

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bobdodd/a11ydoc/internal/model"
)

// ErrEmptyDocument is returned when a documentation file contains no
// YAML document at all.
var ErrEmptyDocument = errors.New("documentation file is empty")

// UnknownFieldsError reports that a record parsed successfully but
// contained keys outside the documented schema. The record carried
// alongside this error is complete; callers should surface the error as
// a warning rather than discarding the record.
type UnknownFieldsError struct {
	// Detail is the decoder's description of the unknown fields.
	Detail string
}

// Error implements the error interface.
func (e *UnknownFieldsError) Error() string {
	return "documentation record contains unknown fields: " + e.Detail
}

// Parse decodes a documentation record from YAML.
//
// Decoding is attempted strictly first (unknown keys rejected). When only
// unknown keys stand in the way, the record is re-decoded leniently and
// returned together with an *UnknownFieldsError so the caller can raise a
// warning without losing the record. Any other failure returns a nil
// record and the decode error.
func Parse(data []byte) (*model.TestDocumentation, error) {
	var doc model.TestDocumentation

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(&doc)
	if err == nil {
		return &doc, nil
	}
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyDocument
	}

	// Retry leniently: if this succeeds, the strict failure was caused
	// by unknown keys only.
	var lenient model.TestDocumentation
	if lerr := yaml.Unmarshal(data, &lenient); lerr == nil {
		return &lenient, &UnknownFieldsError{Detail: err.Error()}
	}

	return nil, fmt.Errorf("failed to decode documentation record: %w", err)
}

// ParseFile reads and parses the documentation file at path.
// The *UnknownFieldsError contract of Parse applies here as well.
func ParseFile(path string) (*model.TestDocumentation, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Scanning user-specified trees is the tool's purpose
	if err != nil {
		return nil, fmt.Errorf("failed to read documentation file: %w", err)
	}
	return Parse(data)
}
