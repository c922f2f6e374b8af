// Package errors defines the structured parse errors reported while
// tokenizing, together with terminal and JSON renderings of error lists.
// Parse errors are diagnostics: they never stop tokenization.
package errors

import (
	"encoding/json"
	"fmt"
)

// Severity represents the severity level of a parse error.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

// String returns the string representation of the severity.
func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for Severity.
func (s Severity) MarshalJSON() ([]byte, error) {
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler for Severity.
func (s *Severity) UnmarshalJSON(data []byte) error {
	str := string(data)
	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	switch str {
	case "info":
		*s = Info
	case "warning":
		*s = Warning
	default:
		*s = Error
	}
	return nil
}

// ParseError is one diagnostic produced while tokenizing. Offset is the
// 1-based byte offset of the input item that triggered it.
type ParseError struct {
	Kind     Kind
	Offset   uint64
	Message  string
	Severity Severity
}

// New creates a ParseError for kind at offset with the catalog message.
func New(kind Kind, offset uint64) ParseError {
	return ParseError{
		Kind:     kind,
		Offset:   offset,
		Message:  kind.Message(),
		Severity: Error,
	}
}

// Error implements the error interface.
func (e ParseError) Error() string {
	return fmt.Sprintf("offset %d: %s: %s", e.Offset, e.Kind.Code(), e.Message)
}

// MarshalJSON implements json.Marshaler.
func (e ParseError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Code     string   `json:"code"`
		Message  string   `json:"message"`
		Offset   uint64   `json:"offset"`
		Severity Severity `json:"severity"`
	}{
		Code:     e.Kind.Code(),
		Message:  e.Message,
		Offset:   e.Offset,
		Severity: e.Severity,
	})
}

// IsError returns true if the error is at Error severity.
func (e ParseError) IsError() bool {
	return e.Severity == Error
}

// IsWarning returns true if the error is at Warning severity.
func (e ParseError) IsWarning() bool {
	return e.Severity == Warning
}
