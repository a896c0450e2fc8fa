package resource

import (
	"fmt"
	"sync"
)

// Context is the shared runtime context that collection fields are
// constructed from. It is a concurrency-safe, string-keyed table of
// runtime values (services, loaded assets, configuration).
type Context struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewContext creates an empty Context.
func NewContext() *Context {
	return &Context{values: make(map[string]any)}
}

// Set stores a value under the given key, overwriting any previous value.
func (c *Context) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.values[key] = value
}

// Get returns the value stored under the given key.
func (c *Context) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.values[key]

	return v, ok
}

// MustGet returns the value stored under the given key.
//
// PANIC: if the key does not exist.
func (c *Context) MustGet(key string) any {
	v, ok := c.Get(key)
	if !ok {
		panic(fmt.Sprintf("resource: no value for key %q", key))
	}

	return v
}

// Has returns true if a value is stored under the given key.
func (c *Context) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Len returns the number of stored values.
func (c *Context) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.values)
}
