package resource

import (
	"errors"
	"fmt"
)

// ErrUnbound is returned when a Handle is resolved before Bind.
var ErrUnbound = errors.New("resource: handle is not bound to a key")

// Handle is a lazily-resolved reference to a named value in the Context.
//
// Handle satisfies ContextBuilder: construction captures the context, and
// the referenced value is looked up on Resolve. This keeps generated
// constructors independent of load order.
type Handle struct {
	ctx *Context
	key string
}

// ConstructFromContext captures the shared runtime context.
func (h *Handle) ConstructFromContext(ctx *Context) error {
	h.ctx = ctx
	return nil
}

// Bind points the handle at the given key.
func (h *Handle) Bind(key string) {
	h.key = key
}

// Key returns the bound key, or empty if unbound.
func (h *Handle) Key() string {
	return h.key
}

// Resolve looks up the referenced value in the captured context.
func (h *Handle) Resolve() (any, error) {
	if h.key == "" {
		return nil, ErrUnbound
	}

	if h.ctx == nil {
		return nil, fmt.Errorf("resource: handle %q was not constructed from a context", h.key)
	}

	v, ok := h.ctx.Get(h.key)
	if !ok {
		return nil, fmt.Errorf("resource: no value for handle key %q", h.key)
	}

	return v, nil
}

// Untyped holds a direct reference to the whole runtime context.
//
// Untyped satisfies ContextBuilder and is useful for fields that need
// ad-hoc access to several runtime values.
type Untyped struct {
	ctx *Context
}

// ConstructFromContext captures the shared runtime context.
func (u *Untyped) ConstructFromContext(ctx *Context) error {
	u.ctx = ctx
	return nil
}

// Context returns the captured context, or nil before construction.
func (u *Untyped) Context() *Context {
	return u.ctx
}
