package resource

// ContextBuilder is the contextual-construction capability.
//
// A type implementing ContextBuilder (on its pointer receiver) can derive
// its value from the shared runtime context. Generated constructors call
// ConstructFromContext for every field whose type satisfies this capability.
type ContextBuilder interface {
	ConstructFromContext(ctx *Context) error
}

// Defaulter is the intrinsic-default capability.
//
// A type implementing Defaulter (on its pointer receiver) supplies a
// context-free default. Generated constructors call ApplyDefault for every
// field whose type satisfies this capability but not ContextBuilder.
type Defaulter interface {
	ApplyDefault()
}
