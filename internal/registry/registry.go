package registry

import (
	"sort"

	"collection-generator/internal/analyze"
)

// entry records the capabilities known for one type.
type entry struct {
	contextual    bool
	intrinsic     bool
	defaultMethod bool // intrinsic default is supplied by an ApplyDefault method
}

// Registry is the capability lookup table.
//
// Populate it with the Add methods, then Freeze it before handing it to the
// resolver. Mutating a frozen registry is a programming error.
type Registry struct {
	entries map[analyze.TypeID]entry
	frozen  bool
}

// New creates an empty, unfrozen Registry.
func New() *Registry {
	return &Registry{entries: make(map[analyze.TypeID]entry)}
}

// AddContextual registers the contextual-construction capability for a type.
func (r *Registry) AddContextual(id analyze.TypeID) {
	r.mutable()

	e := r.entries[id]
	e.contextual = true
	r.entries[id] = e
}

// AddIntrinsicDefault registers the intrinsic-default capability for a type.
// viaMethod records whether the default is applied by an ApplyDefault method
// (as opposed to the zero value granted by a directive or manifest entry).
func (r *Registry) AddIntrinsicDefault(id analyze.TypeID, viaMethod bool) {
	r.mutable()

	e := r.entries[id]
	e.intrinsic = true
	e.defaultMethod = e.defaultMethod || viaMethod
	r.entries[id] = e
}

// Freeze marks the registry read-only and returns it.
func (r *Registry) Freeze() *Registry {
	r.frozen = true
	return r
}

func (r *Registry) mutable() {
	if r.frozen {
		panic("registry: mutation after Freeze")
	}
}

// HasContextualConstructor reports whether the type can derive its value
// from the shared runtime context.
func (r *Registry) HasContextualConstructor(id analyze.TypeID) bool {
	return r.entries[id].contextual
}

// HasIntrinsicDefault reports whether the type supplies a context-free default.
func (r *Registry) HasIntrinsicDefault(id analyze.TypeID) bool {
	return r.entries[id].intrinsic
}

// DefaultViaMethod reports whether the intrinsic default is applied by an
// ApplyDefault method rather than the zero value.
func (r *Registry) DefaultViaMethod(id analyze.TypeID) bool {
	return r.entries[id].defaultMethod
}

// KnownGood returns the display names of all types satisfying either
// capability, in ascending order. Used for bounded help-text samples.
func (r *Registry) KnownGood() []string {
	names := make([]string, 0, len(r.entries))

	for id, e := range r.entries {
		if e.contextual || e.intrinsic {
			names = append(names, id.String())
		}
	}

	sort.Strings(names)

	return names
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.entries)
}
