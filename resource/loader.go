package resource

import (
	"fmt"
	"reflect"
)

// Loader initialises collections in a Context exactly once.
//
// A collection is any struct with a generated constructor. InitCollection
// stores the constructed collection in the context under its type path, so
// repeated initialisation returns the already-stored instance.
type Loader struct {
	ctx *Context
}

// NewLoader creates a Loader over the given context.
func NewLoader(ctx *Context) *Loader {
	return &Loader{ctx: ctx}
}

// Context returns the underlying context.
func (l *Loader) Context() *Context {
	return l.ctx
}

// InitCollection constructs a collection via its generated constructor and
// stores it in the context. If the collection was already initialised, the
// stored instance is returned and the constructor is not invoked.
func InitCollection[C any](l *Loader, construct func(*Context) (*C, error)) (*C, error) {
	key := collectionKey[C]()

	if existing, ok := l.ctx.Get(key); ok {
		stored, ok := existing.(*C)
		if !ok {
			return nil, fmt.Errorf("resource: key %q holds %T, not a collection", key, existing)
		}

		return stored, nil
	}

	collection, err := construct(l.ctx)
	if err != nil {
		return nil, fmt.Errorf("resource: initialising collection %s: %w", key, err)
	}

	l.ctx.Set(key, collection)

	return collection, nil
}

// collectionKey returns the context key for a collection type.
func collectionKey[C any]() string {
	t := reflect.TypeOf((*C)(nil)).Elem()
	if t.PkgPath() == "" {
		return t.String()
	}

	return t.PkgPath() + "." + t.Name()
}
