package diagnostic

import (
	"errors"
	"fmt"
	"go/token"
	"strings"

	"collection-generator/internal/common"
	"collection-generator/internal/fix"
)

// Diagnostic codes.
const (
	// CodeMissingCapability - a field's type satisfies no construction capability.
	CodeMissingCapability = "missing_capability"
	// CodeMalformedShape - a shape violates structural preconditions.
	CodeMalformedShape = "malformed_shape"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return common.UnknownStr
	}
}

// Suggestion is a concrete remedy: human-readable text plus, when the
// offending declaration is in the loaded packages, a machine-applicable edit.
type Suggestion struct {
	Text string
	Edit fix.Edit
}

// Diagnostic is one fully-populated finding for one field.
// Diagnostics are never partially constructed: the emitter either fills
// every part or emits nothing for the field.
type Diagnostic struct {
	Severity   Severity
	Code       string
	Collection string         // Display name of the enclosing collection struct
	FieldName  string         // Name of the offending field
	Pos        token.Position // Source position of the field declaration
	Message    string         // Primary message: which capability is missing
	Help       string         // Bounded sample of known-good alternatives
	Note       string         // Transitive requirement on the enclosing struct
	Suggestion Suggestion     // Minimal change granting the capability
}

// String returns the primary line of the diagnostic.
func (d Diagnostic) String() string {
	var b strings.Builder

	b.WriteString(d.Severity.String())

	if d.Code != "" {
		fmt.Fprintf(&b, " [%s]", d.Code)
	}

	if d.Pos.IsValid() {
		fmt.Fprintf(&b, " %s", d.Pos)
	}

	b.WriteString(": ")
	b.WriteString(d.Message)

	return b.String()
}

// List is an ordered sequence of diagnostics for one verification run.
type List []Diagnostic

// HasErrors returns true if any diagnostic has error severity.
func (l List) HasErrors() bool {
	for _, d := range l {
		if d.Severity == SeverityError {
			return true
		}
	}

	return false
}

// Err returns a combined error from all error diagnostics, or nil.
func (l List) Err() error {
	var parts []string

	for _, d := range l {
		if d.Severity == SeverityError {
			parts = append(parts, d.String())
		}
	}

	if len(parts) == 0 {
		return nil
	}

	return errors.New(strings.Join(parts, "; "))
}
