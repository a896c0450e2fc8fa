// Package analyze provides package loading and collection shape extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types
// to build a canonical in-memory model of collection structs and their fields.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes kind (struct/basic/pointer/slice/external) and declaration site
//   - StructShape: an ordered sequence of field declarations for one collection
//   - FieldDecl: field name, type, modifiers and source position
//
// Collections are discovered via the "//resource:collection" directive above
// a struct type declaration. Field modifiers come from the `resource:"..."`
// struct tag.
package analyze
