// Package resolve decides, per collection field, which construction
// capability the field's type satisfies.
//
// Resolution rule (one verdict per non-skipped field):
//  1. A type registered with a contextual constructor resolves to
//     VerdictContextualConstructor. Contextual construction can depend on
//     the runtime context, so it supersedes a context-free default.
//  2. Otherwise a type registered with an intrinsic default resolves to
//     VerdictIntrinsicDefault.
//  3. Otherwise VerdictUnsatisfied.
//
// Forced modifiers narrow the check: `resource:"fromctx"` accepts only the
// contextual capability, `resource:"default"` only the intrinsic one.
// Skipped fields are excluded from resolution entirely.
//
// Resolution is a pure function of the shape and the frozen registry;
// identical inputs give identical verdicts on every run.
package resolve
