package resolve

import (
	"fmt"

	"collection-generator/internal/analyze"
	"collection-generator/internal/registry"
)

// FieldVerdict pairs one field declaration with its verdict.
type FieldVerdict struct {
	Field   analyze.FieldDecl
	Verdict Verdict
}

// ResolveShape resolves every non-skipped field of a collection shape, in
// declaration order. Verdicts are computed independently per field.
//
// Conflicting modifiers are a malformed shape: ResolveShape fails loudly
// with a field-scoped error instead of resolving an arbitrary verdict.
func ResolveShape(shape *analyze.StructShape, reg *registry.Registry) ([]FieldVerdict, error) {
	verdicts := make([]FieldVerdict, 0, len(shape.Fields))

	for _, field := range shape.Fields {
		if conflict := field.Modifiers.Conflict(); conflict != "" {
			return nil, fmt.Errorf("collection %s: field %s: conflicting modifiers: %s",
				shape.ID, field.Name, conflict)
		}

		if field.Modifiers.Skip {
			// The caller supplies skipped fields by other means; they get no
			// verdict, no generated code and no diagnostics.
			continue
		}

		verdicts = append(verdicts, FieldVerdict{
			Field:   field,
			Verdict: Resolve(field, reg),
		})
	}

	return verdicts, nil
}

// Resolve decides the verdict for one non-skipped field. Pure function of
// the field declaration and the registry.
func Resolve(field analyze.FieldDecl, reg *registry.Registry) Verdict {
	id := CapabilityTypeID(field.Type)

	switch {
	case field.Modifiers.ForceFromContext:
		if reg.HasContextualConstructor(id) {
			return VerdictContextualConstructor
		}

		return VerdictUnsatisfied

	case field.Modifiers.ForceDefault:
		if reg.HasIntrinsicDefault(id) {
			return VerdictIntrinsicDefault
		}

		return VerdictUnsatisfied

	case reg.HasContextualConstructor(id):
		return VerdictContextualConstructor

	case reg.HasIntrinsicDefault(id):
		return VerdictIntrinsicDefault

	default:
		return VerdictUnsatisfied
	}
}

// CapabilityTypeID returns the TypeID the capability lookup is performed
// against: the field type itself for named types, or the pointee for
// pointer-to-named fields. Unnamed types return a zero TypeID, which is
// never registered.
func CapabilityTypeID(t *analyze.TypeInfo) analyze.TypeID {
	if t == nil {
		return analyze.TypeID{}
	}

	if t.Kind == analyze.TypeKindPointer && t.ElemType != nil && t.ElemType.IsNamed() {
		return t.ElemType.ID
	}

	if t.IsNamed() {
		return t.ID
	}

	return analyze.TypeID{}
}
