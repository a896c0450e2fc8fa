package analyze

import (
	"fmt"
	"reflect"
	"strings"
)

// TagKey is the struct tag key carrying field modifiers.
const TagKey = "resource"

// Modifier names accepted in the `resource:"..."` tag.
const (
	modifierDefault = "default"
	modifierFromCtx = "fromctx"
	modifierSkip    = "skip"
)

// ModifierSet holds the parsed field modifiers.
type ModifierSet struct {
	// ForceDefault demands the intrinsic-default capability for the field.
	ForceDefault bool
	// ForceFromContext demands the contextual-construction capability.
	ForceFromContext bool
	// Skip excludes the field from resolution and generated construction.
	// The caller supplies its value by other means.
	Skip bool
}

// IsZero returns true when no modifier is set.
func (m ModifierSet) IsZero() bool {
	return !m.ForceDefault && !m.ForceFromContext && !m.Skip
}

// Conflict returns a description of conflicting modifiers, or empty.
func (m ModifierSet) Conflict() string {
	switch {
	case m.Skip && (m.ForceDefault || m.ForceFromContext):
		return `"skip" excludes the field and cannot be combined with other modifiers`
	case m.ForceDefault && m.ForceFromContext:
		return `"default" and "fromctx" demand different capabilities for the same field`
	default:
		return ""
	}
}

// ParseModifiers parses the `resource:"..."` struct tag into a ModifierSet.
// Unknown modifier names are an error: a malformed shape must fail loudly
// rather than silently resolve an arbitrary verdict.
func ParseModifiers(tag reflect.StructTag) (ModifierSet, error) {
	var set ModifierSet

	value, ok := tag.Lookup(TagKey)
	if !ok || value == "" {
		return set, nil
	}

	for _, part := range strings.Split(value, ",") {
		switch strings.TrimSpace(part) {
		case modifierDefault:
			set.ForceDefault = true
		case modifierFromCtx:
			set.ForceFromContext = true
		case modifierSkip:
			set.Skip = true
		case "":
			// Tolerate trailing commas.
		default:
			return set, fmt.Errorf("unknown modifier %q in %s tag", strings.TrimSpace(part), TagKey)
		}
	}

	if conflict := set.Conflict(); conflict != "" {
		return set, fmt.Errorf("conflicting modifiers: %s", conflict)
	}

	return set, nil
}
