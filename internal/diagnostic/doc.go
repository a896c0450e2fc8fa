// Package diagnostic provides the structured diagnostics produced when a
// collection cannot be constructed.
//
// Key capabilities:
//   - Per-field missing-capability errors with exact source positions
//   - Help text citing a bounded sample of known-good types
//   - Notes explaining the transitive requirement on the enclosing struct
//   - Suggested code edits that would grant the missing capability
//   - Stable one-line rendering for golden-file tests
package diagnostic
