package registry

import (
	"go/types"

	"collection-generator/internal/analyze"
)

// ResourcePkgPath is the import path of the runtime contract package.
const ResourcePkgPath = "collection-generator/resource"

// Method names that grant capabilities when present on a pointer method set.
const (
	methodConstructFromContext = "ConstructFromContext"
	methodApplyDefault         = "ApplyDefault"
)

// Builtins registers the resource package's own reference types, so help
// text can cite them even when the resource package is outside the scanned
// pattern set.
func Builtins(reg *Registry) {
	for _, name := range []string{"Handle", "Untyped"} {
		reg.AddContextual(analyze.TypeID{PkgPath: ResourcePkgPath, Name: name})
	}
}

// Scan populates the registry from the loaded type graph.
//
// A named type gains the contextual capability when its pointer method set
// carries ConstructFromContext(*resource.Context) error, and the intrinsic
// default when it carries ApplyDefault() or a "//resource:default" directive.
func Scan(reg *Registry, graph *analyze.TypeGraph) {
	for id, info := range graph.Types {
		named, ok := info.GoType.(*types.Named)
		if !ok {
			continue
		}

		methods := types.NewMethodSet(types.NewPointer(named))

		if hasConstructFromContext(methods) {
			reg.AddContextual(id)
		}

		if hasApplyDefault(methods) {
			reg.AddIntrinsicDefault(id, true)
		}

		if info.HasDefaultDirective {
			reg.AddIntrinsicDefault(id, false)
		}
	}
}

// hasConstructFromContext checks for ConstructFromContext(*resource.Context) error.
func hasConstructFromContext(methods *types.MethodSet) bool {
	sig := lookupSignature(methods, methodConstructFromContext)
	if sig == nil {
		return false
	}

	if sig.Params().Len() != 1 || sig.Results().Len() != 1 {
		return false
	}

	if !isContextPointer(sig.Params().At(0).Type()) {
		return false
	}

	return types.Identical(sig.Results().At(0).Type(), types.Universe.Lookup("error").Type())
}

// hasApplyDefault checks for ApplyDefault().
func hasApplyDefault(methods *types.MethodSet) bool {
	sig := lookupSignature(methods, methodApplyDefault)
	if sig == nil {
		return false
	}

	return sig.Params().Len() == 0 && sig.Results().Len() == 0
}

// lookupSignature returns the signature of a named exported method, or nil.
func lookupSignature(methods *types.MethodSet, name string) *types.Signature {
	selection := methods.Lookup(nil, name)
	if selection == nil {
		return nil
	}

	fn, ok := selection.Obj().(*types.Func)
	if !ok {
		return nil
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return nil
	}

	return sig
}

// isContextPointer reports whether t is *resource.Context.
func isContextPointer(t types.Type) bool {
	ptr, ok := t.(*types.Pointer)
	if !ok {
		return false
	}

	named, ok := ptr.Elem().(*types.Named)
	if !ok {
		return false
	}

	obj := named.Obj()

	return obj.Name() == "Context" && obj.Pkg() != nil && obj.Pkg().Path() == ResourcePkgPath
}
