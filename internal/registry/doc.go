// Package registry provides the read-only capability registry consulted
// during resolution.
//
// A registry is populated at build time from three sources, then frozen:
//   - a method-set scan over the loaded type graph (scan.go)
//   - "//resource:default" directives recorded by the analyzer
//   - an optional YAML capability manifest (manifest.go)
//
// Once frozen the registry is immutable; resolution is a pure function of
// the shape and the registry, so independent shapes can be resolved in
// parallel without synchronisation.
package registry
