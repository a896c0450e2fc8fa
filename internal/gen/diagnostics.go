package gen

import (
	"fmt"
	"strings"

	"collection-generator/internal/analyze"
	"collection-generator/internal/common"
	"collection-generator/internal/diagnostic"
	"collection-generator/internal/fix"
	"collection-generator/internal/match"
	"collection-generator/internal/resolve"
)

// Capability names as they appear in diagnostics.
const (
	capabilityUmbrella   = "construct-from-context"
	capabilityContextual = "contextual-construction"
	capabilityIntrinsic  = "intrinsic-default"
)

// buildDiagnostics produces one fully-populated diagnostic per unsatisfied
// field, in declaration order. No constructor accompanies them: partial
// success is disallowed.
func (e *Emitter) buildDiagnostics(
	shape *analyze.StructShape,
	unsatisfied []resolve.FieldVerdict,
) diagnostic.List {
	diags := make(diagnostic.List, 0, len(unsatisfied))

	for _, fv := range unsatisfied {
		diags = append(diags, e.missingCapability(shape, fv.Field))
	}

	return diags
}

// missingCapability builds the diagnostic for one unsatisfied field.
func (e *Emitter) missingCapability(shape *analyze.StructShape, field analyze.FieldDecl) diagnostic.Diagnostic {
	typeName := displayTypeName(field.Type)

	var message string

	switch {
	case field.Modifiers.ForceFromContext:
		message = fmt.Sprintf(
			"required capability %s is not satisfied for field type %s (demanded by resource:%q)",
			capabilityContextual, typeName, "fromctx")
	case field.Modifiers.ForceDefault:
		message = fmt.Sprintf(
			"required capability %s is not satisfied for field type %s (demanded by resource:%q)",
			capabilityIntrinsic, typeName, "default")
	default:
		message = fmt.Sprintf(
			"required capability %s is not satisfied for field type %s",
			capabilityUmbrella, typeName)
	}

	return diagnostic.Diagnostic{
		Severity:   diagnostic.SeverityError,
		Code:       diagnostic.CodeMissingCapability,
		Collection: shape.ID.String(),
		FieldName:  field.Name,
		Pos:        field.Pos,
		Message:    message,
		Help:       e.helpText(typeName),
		Note: fmt.Sprintf(
			"%s is required transitively: every non-skipped field of %s must be constructible for its constructor to be generated",
			capabilityUmbrella, shape.ID),
		Suggestion: e.suggestion(field),
	}
}

// helpText lists a bounded sample of registered types satisfying the
// capability, ranked by name similarity to the offending type.
func (e *Emitter) helpText(typeName string) string {
	sample := match.RankNearest(typeName, e.reg.KnownGood(), e.config.HelpSampleSize)
	if len(sample) == 0 {
		return "no types are currently registered as " + capabilityUmbrella +
			"; implement ConstructFromContext or declare capabilities in the manifest"
	}

	return "types known to satisfy " + capabilityUmbrella + " include: " +
		strings.Join(sample, ", ")
}

// suggestion proposes the minimal change granting the missing capability.
// When the offending type is declared in the loaded packages, a
// machine-applicable edit inserting the directive is attached.
func (e *Emitter) suggestion(field analyze.FieldDecl) diagnostic.Suggestion {
	target := capabilityTarget(field.Type)
	typeName := displayTypeName(field.Type)

	if field.Modifiers.ForceFromContext {
		// The directive grants a default, which a forced contextual field
		// cannot use; the only remedy is the method.
		return diagnostic.Suggestion{
			Text: fmt.Sprintf("implement ConstructFromContext(*resource.Context) error on *%s", typeName),
		}
	}

	s := diagnostic.Suggestion{
		Text: fmt.Sprintf("attach %s immediately above the declaration of type %s",
			analyze.DirectiveDefault, typeName),
	}

	if !field.Modifiers.ForceDefault {
		s.Text += ", or implement ConstructFromContext(*resource.Context) error on *" + typeName
	}

	if target != nil && target.Decl.IsValid() {
		s.Edit = fix.InsertAbove(target.Decl.Filename, target.Decl.Offset, target.Decl.Column,
			analyze.DirectiveDefault)
	}

	return s
}

// capabilityTarget returns the named type the capability lookup was
// performed against (the pointee for pointer fields), or nil.
func capabilityTarget(t *analyze.TypeInfo) *analyze.TypeInfo {
	if t == nil {
		return nil
	}

	if t.Kind == analyze.TypeKindPointer && t.ElemType != nil && t.ElemType.IsNamed() {
		return t.ElemType
	}

	if t.IsNamed() {
		return t
	}

	return nil
}

// displayTypeName renders a field type for diagnostics.
func displayTypeName(t *analyze.TypeInfo) string {
	if t == nil {
		return common.UnknownStr
	}

	if t.Kind == analyze.TypeKindPointer && t.ElemType != nil && t.ElemType.IsNamed() {
		return "*" + t.ElemType.ID.String()
	}

	if t.IsNamed() {
		return t.ID.String()
	}

	if t.GoType != nil {
		return t.GoType.String()
	}

	return common.UnknownStr
}
