package core

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEmptySpecifier is returned when the input string has zero length.
var ErrEmptySpecifier = errors.New("empty specifier")

// ErrInvalidPackageSpecifier is returned when a scoped ("@...") bare
// specifier has no second path segment terminating its scope.
var ErrInvalidPackageSpecifier = errors.New("invalid package specifier")

// ErrInvalidFileURL is returned when a syntactically valid file: URL cannot
// be converted to a filesystem path, e.g. because it names a remote host.
var ErrInvalidFileURL = errors.New("invalid file URL")

// URLError wraps a failure from the generic URL grammar.
type URLError struct {
	Err error
}

func (e *URLError) Error() string {
	return fmt.Sprintf("invalid URL: %v", e.Err)
}

func (e *URLError) Unwrap() error {
	return e.Err
}

// WireError is the serialized form of a classification error, used when an
// error must cross a serialization boundary.
type WireError struct {
	Kind  string `json:"kind"`
	Value string `json:"value,omitempty"`
}

// EncodeError maps a classification error to its wire form. Errors outside
// the closed taxonomy encode with kind "Unknown" and the error text as the
// value.
func EncodeError(err error) WireError {
	var urlErr *URLError
	switch {
	case errors.Is(err, ErrEmptySpecifier):
		return WireError{Kind: "EmptySpecifier"}
	case errors.Is(err, ErrInvalidPackageSpecifier):
		return WireError{Kind: "InvalidPackageSpecifier"}
	case errors.Is(err, ErrInvalidFileURL):
		return WireError{Kind: "InvalidFileUrl"}
	case errors.As(err, &urlErr):
		return WireError{Kind: "UrlError", Value: urlErr.Err.Error()}
	}
	return WireError{Kind: "Unknown", Value: err.Error()}
}

// MarshalJSON emits the canonical string form of the specifier.
func (s Specifier) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON parses a JSON string as a specifier. Specifiers are only
// decoded from structured configuration such as alias and browser tables,
// so CJS syntax with default flags applies: no schemes, no percent-decoding,
// no query strings.
func (s *Specifier) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, _, err := Parse(raw, SyntaxCJS, 0)
	if err != nil {
		return fmt.Errorf("invalid specifier %q: %w", raw, err)
	}
	*s = parsed
	return nil
}
