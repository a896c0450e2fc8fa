// Package gen is the codegen and diagnostics emitter.
//
// For each resolved collection shape it produces exactly one of two outputs:
//   - a generated constructor file, when every non-skipped field resolved to
//     a satisfied capability, or
//   - an ordered sequence of diagnostics, one per unsatisfied field.
//
// Construction is all-or-nothing: a collection missing even one field cannot
// be soundly constructed, so no partial constructor is ever emitted.
//
// Generation uses text/template + go/format for readable, deterministic Go
// code; generated constructors initialise fields in declaration order and
// never read one field to construct another.
package gen
