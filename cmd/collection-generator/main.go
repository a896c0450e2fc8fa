// Package main provides the CLI entrypoint for collection-generator.
//
// collection-generator is a build-time Go codegen tool that:
//   - Parses Go packages (AST + go/types) to find collection structs
//   - Verifies every field is constructible from the shared runtime context
//   - Generates constructors for verified collections
//   - Emits precise diagnostics, with suggested fixes, for everything else
package main

func main() {
	Execute()
}
