package resolve

//go:generate go tool stringer -type=Verdict -trimprefix=Verdict

// Verdict is the resolver's decision for one field.
type Verdict int

const (
	// VerdictUnsatisfied - the field's type satisfies neither capability.
	VerdictUnsatisfied Verdict = iota
	// VerdictIntrinsicDefault - the type supplies a context-free default.
	VerdictIntrinsicDefault
	// VerdictContextualConstructor - the type derives its value from the shared runtime context.
	VerdictContextualConstructor
)
