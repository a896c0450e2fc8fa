package analyze

import (
	"go/token"
	"go/types"

	"collection-generator/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "collection-generator/resource"
	Name    string // e.g., "Handle"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return common.PkgAlias(t.PkgPath) + "." + t.Name
}

// IsZero returns true if the TypeID is unset (unnamed type).
func (t TypeID) IsZero() bool {
	return t.Name == ""
}

// TypeKind represents the kind of a type.
type TypeKind int

const (
	TypeKindUnknown  TypeKind = iota
	TypeKindBasic             // int, string, bool, etc.
	TypeKindStruct            // struct type
	TypeKindPointer           // pointer to another type
	TypeKindSlice             // slice of another type
	TypeKindArray             // array of another type
	TypeKindExternal          // external/opaque type (e.g., time.Time)
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case TypeKindBasic:
		return "basic"
	case TypeKindStruct:
		return "struct"
	case TypeKindPointer:
		return "pointer"
	case TypeKindSlice:
		return "slice"
	case TypeKindArray:
		return "array"
	case TypeKindExternal:
		return "external"
	default:
		return common.UnknownStr
	}
}

// TypeInfo describes a type referenced by a collection field.
type TypeInfo struct {
	ID       TypeID         // Unique identifier (zero for unnamed types like *T or []T)
	Kind     TypeKind       // Kind of type
	ElemType *TypeInfo      // For pointers, slices and arrays, the element type
	GoType   types.Type     // The original go/types.Type (for capability checks)
	Decl     token.Position // Declaration site of the named type (zero if not loaded)

	// HasDefaultDirective is true when a "//resource:default" directive is
	// attached to the type declaration.
	HasDefaultDirective bool
}

// IsNamed returns true if this type has a name (TypeID is set).
func (t *TypeInfo) IsNamed() bool {
	return !t.ID.IsZero()
}

// StructShape is the ordered field model of one collection struct.
// Created once per discovered collection; never mutated afterwards.
type StructShape struct {
	ID      TypeID         // The collection struct type
	PkgName string         // Package name, for the generated file's package clause
	Pos     token.Position // Declaration site of the struct
	Fields  []FieldDecl    // Fields in declaration order
}

// FieldDecl describes one declared field of a collection struct.
type FieldDecl struct {
	Name      string         // Go field name
	Type      *TypeInfo      // Declared field type
	Modifiers ModifierSet    // Parsed `resource:"..."` tag modifiers
	Pos       token.Position // Source position of the field declaration
	Index     int            // Field index in the struct
}

// TypeGraph holds all analyzed types and discovered collection shapes.
type TypeGraph struct {
	// Types maps TypeID to TypeInfo for all named types.
	Types map[TypeID]*TypeInfo
	// Shapes lists discovered collection structs, ordered by file then offset.
	Shapes []*StructShape
	// Files lists the Go source files of the loaded packages, sorted.
	// Registry caching hashes their stats to detect stale snapshots.
	Files []string
}

// NewTypeGraph creates a new empty TypeGraph.
func NewTypeGraph() *TypeGraph {
	return &TypeGraph{
		Types: make(map[TypeID]*TypeInfo),
	}
}

// GetType returns the TypeInfo for a given TypeID, or nil if not found.
func (g *TypeGraph) GetType(id TypeID) *TypeInfo {
	return g.Types[id]
}
