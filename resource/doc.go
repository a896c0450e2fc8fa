// Package resource defines the runtime contract between generated
// collection constructors and the shared runtime context.
//
// Key types:
//   - Context: string-keyed table of shared runtime values
//   - ContextBuilder: the contextual-construction capability
//   - Defaulter: the intrinsic-default capability
//   - Handle / Untyped: builtin reference types satisfying ContextBuilder
//   - Loader: one-shot collection initialisation into a Context
package resource
