package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/tools/go/packages"
)

// Directives recognised above type declarations.
const (
	// DirectiveCollection marks a struct as a collection to verify and generate for.
	DirectiveCollection = "//resource:collection"
	// DirectiveDefault grants the intrinsic-default capability to a type.
	DirectiveDefault = "//resource:default"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a type graph with collection shapes.
type Analyzer struct {
	graph     *TypeGraph
	typeCache map[types.Type]*TypeInfo // Cache to handle recursive types
	fset      *token.FileSet
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		graph:     NewTypeGraph(),
		typeCache: make(map[types.Type]*TypeInfo),
		fset:      token.NewFileSet(),
	}
}

// LoadPackages loads the specified packages and builds the type graph.
// Patterns are standard Go package patterns (e.g., "./...", "collection-generator/resource").
func (a *Analyzer) LoadPackages(patterns ...string) (*TypeGraph, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Fset: a.fset,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	// Process each package
	for _, pkg := range pkgs {
		if err := a.processPackage(pkg); err != nil {
			return nil, fmt.Errorf("failed to process package %s: %w", pkg.PkgPath, err)
		}

		a.graph.Files = append(a.graph.Files, pkg.GoFiles...)
	}

	sort.Strings(a.graph.Files)

	// Shapes in file/offset order so repeated runs verify in the same order.
	sort.Slice(a.graph.Shapes, func(i, j int) bool {
		si, sj := a.graph.Shapes[i], a.graph.Shapes[j]
		if si.Pos.Filename != sj.Pos.Filename {
			return si.Pos.Filename < sj.Pos.Filename
		}

		return si.Pos.Offset < sj.Pos.Offset
	})

	return a.graph, nil
}

// Graph returns the current type graph.
func (a *Analyzer) Graph() *TypeGraph {
	return a.graph
}

// typeDirectives holds the directives attached to one type declaration.
type typeDirectives struct {
	collection bool
	intrinsic  bool
}

// processPackage extracts named types and collection shapes from a loaded package.
func (a *Analyzer) processPackage(pkg *packages.Package) error {
	directives := collectDirectives(pkg.Syntax)

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if ok && !obj.IsAlias() {
			if err := a.processType(pkg, obj, directives[name]); err != nil {
				return err
			}
		}
	}

	return nil
}

// processType registers a named type and, when marked, its collection shape.
func (a *Analyzer) processType(pkg *packages.Package, obj *types.TypeName, dir typeDirectives) error {
	info := a.typeInfo(obj.Type())
	if info == nil {
		return nil
	}

	if obj.Pos().IsValid() {
		info.Decl = a.fset.Position(obj.Pos())
	}

	info.HasDefaultDirective = dir.intrinsic

	if !dir.collection {
		return nil
	}

	structType, ok := obj.Type().Underlying().(*types.Struct)
	if !ok {
		return fmt.Errorf("type %s carries %s but is not a struct", obj.Name(), DirectiveCollection)
	}

	shape, err := a.buildShape(info.ID, structType)
	if err != nil {
		return err
	}

	shape.PkgName = pkg.Types.Name()
	shape.Pos = info.Decl
	a.graph.Shapes = append(a.graph.Shapes, shape)

	return nil
}

// buildShape extracts the ordered field declarations of a collection struct.
func (a *Analyzer) buildShape(id TypeID, structType *types.Struct) (*StructShape, error) {
	shape := &StructShape{ID: id}

	for i := 0; i < structType.NumFields(); i++ {
		field := structType.Field(i)

		modifiers, err := ParseModifiers(reflect.StructTag(structType.Tag(i)))
		if err != nil {
			return nil, fmt.Errorf("collection %s: field %s: %w", id, field.Name(), err)
		}

		shape.Fields = append(shape.Fields, FieldDecl{
			Name:      field.Name(),
			Type:      a.typeInfo(field.Type()),
			Modifiers: modifiers,
			Pos:       a.fset.Position(field.Pos()),
			Index:     i,
		})
	}

	return shape, nil
}

// typeInfo builds (and caches) the TypeInfo for a go/types type.
// Named types are registered in the graph.
func (a *Analyzer) typeInfo(t types.Type) *TypeInfo {
	if cached, ok := a.typeCache[t]; ok {
		return cached
	}

	info := &TypeInfo{GoType: t}
	// Pre-cache to terminate on recursive types.
	a.typeCache[t] = info

	switch concrete := t.(type) {
	case *types.Named:
		obj := concrete.Obj()
		info.ID = TypeID{Name: obj.Name()}
		if obj.Pkg() != nil {
			info.ID.PkgPath = obj.Pkg().Path()
		}

		switch concrete.Underlying().(type) {
		case *types.Struct:
			info.Kind = TypeKindStruct
		case *types.Basic:
			info.Kind = TypeKindBasic
		default:
			info.Kind = TypeKindExternal
		}

		// First registration wins; later lookups of the same TypeID reuse it.
		if existing, ok := a.graph.Types[info.ID]; ok {
			a.typeCache[t] = existing
			return existing
		}

		a.graph.Types[info.ID] = info

	case *types.Basic:
		info.Kind = TypeKindBasic

	case *types.Pointer:
		info.Kind = TypeKindPointer
		info.ElemType = a.typeInfo(concrete.Elem())

	case *types.Slice:
		info.Kind = TypeKindSlice
		info.ElemType = a.typeInfo(concrete.Elem())

	case *types.Array:
		info.Kind = TypeKindArray
		info.ElemType = a.typeInfo(concrete.Elem())

	default:
		info.Kind = TypeKindUnknown
	}

	return info
}

// collectDirectives scans file syntax for resource directives above type declarations.
func collectDirectives(files []*ast.File) map[string]typeDirectives {
	found := make(map[string]typeDirectives)

	for _, file := range files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}

			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}

				doc := typeSpec.Doc
				if doc == nil && len(genDecl.Specs) == 1 {
					doc = genDecl.Doc
				}

				if dir, ok := parseDirectives(doc); ok {
					found[typeSpec.Name.Name] = dir
				}
			}
		}
	}

	return found
}

// parseDirectives reads resource directives from a doc comment group.
func parseDirectives(doc *ast.CommentGroup) (typeDirectives, bool) {
	var dir typeDirectives

	if doc == nil {
		return dir, false
	}

	found := false

	for _, comment := range doc.List {
		switch strings.TrimSpace(comment.Text) {
		case DirectiveCollection:
			dir.collection = true
			found = true
		case DirectiveDefault:
			dir.intrinsic = true
			found = true
		}
	}

	return dir, found
}
