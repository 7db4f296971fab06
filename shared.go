package ufmt

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/petermattis/goid"
)

// SharedContext is a formatting context safe for concurrent use. Its global
// variable and formatter stores are mutex-guarded and belong to the home
// goroutine: the goroutine that first performs any operation on the
// instance, recorded once and permanently.
//
// Every other goroutine operates through a private shadow store. Writes
// from a non-home goroutine land in its shadow; reads consult the caller's
// shadow first and fall back to the global store. A shadow entry therefore
// overrides the global value for its owning goroutine only, and the home
// goroutine's view is never affected by other goroutines.
type SharedContext struct {
	mu         sync.RWMutex
	vars       map[string]string
	formatters map[reflect.Type]func(any) string

	home    atomic.Int64 // home goroutine id; 0 until first touch
	shadows sync.Map     // goroutine id (int64) -> *shadowStore
}

// shadowStore holds one goroutine's private overrides. Only the owning
// goroutine ever touches the maps, so no locking is needed.
type shadowStore struct {
	vars       map[string]string
	formatters map[reflect.Type]func(any) string
}

// NewSharedContext creates a freestanding shared context not managed by the
// registry.
func NewSharedContext() *SharedContext {
	return &SharedContext{
		vars:       make(map[string]string),
		formatters: make(map[reflect.Type]func(any) string),
	}
}

// touch pins the home goroutine on first use and reports whether the
// calling goroutine is home.
func (c *SharedContext) touch() (id int64, home bool) {
	id = goid.Get()
	if c.home.CompareAndSwap(0, id) {
		return id, true
	}
	return id, c.home.Load() == id
}

// shadow returns the calling goroutine's shadow store, creating it when
// asked to.
func (c *SharedContext) shadow(id int64, create bool) *shadowStore {
	if v, ok := c.shadows.Load(id); ok {
		return v.(*shadowStore)
	}
	if !create {
		return nil
	}
	s := &shadowStore{
		vars:       make(map[string]string),
		formatters: make(map[reflect.Type]func(any) string),
	}
	actual, _ := c.shadows.LoadOrStore(id, s)
	return actual.(*shadowStore)
}

// Format substitutes placeholders in template using args and the variables
// visible to the calling goroutine.
func (c *SharedContext) Format(template string, args ...any) string {
	c.touch()
	return substitute(c, template, args)
}

// SetVar stores a variable: in the global store when called from the home
// goroutine, in the caller's shadow store otherwise.
func (c *SharedContext) SetVar(name string, value any) {
	id, home := c.touch()
	v := stringify(c, value)
	if home {
		c.mu.Lock()
		c.vars[name] = v
		c.mu.Unlock()
		return
	}
	c.shadow(id, true).vars[name] = v
}

// ClearVar removes a variable from the store the caller writes to.
func (c *SharedContext) ClearVar(name string) {
	id, home := c.touch()
	if home {
		c.mu.Lock()
		delete(c.vars, name)
		c.mu.Unlock()
		return
	}
	if s := c.shadow(id, false); s != nil {
		delete(s.vars, name)
	}
}

// HasVar reports whether the variable is visible to the calling goroutine,
// through its shadow store or the global store.
func (c *SharedContext) HasVar(name string) bool {
	_, ok := c.findVar(name)
	return ok
}

func (c *SharedContext) findVar(name string) (string, bool) {
	id, _ := c.touch()
	if s := c.shadow(id, false); s != nil {
		if v, ok := s.vars[name]; ok {
			return v, true
		}
	}
	c.mu.RLock()
	v, ok := c.vars[name]
	c.mu.RUnlock()
	return v, ok
}

// formatterFor copies the function out of the guarded registry before
// returning it, so invoking the formatter cannot deadlock even if it
// re-enters this context.
func (c *SharedContext) formatterFor(t reflect.Type) (func(any) string, bool) {
	id, _ := c.touch()
	if s := c.shadow(id, false); s != nil {
		if fn, ok := s.formatters[t]; ok {
			return fn, true
		}
	}
	c.mu.RLock()
	fn, ok := c.formatters[t]
	c.mu.RUnlock()
	return fn, ok
}

func (c *SharedContext) setFormatter(t reflect.Type, fn func(any) string) {
	id, home := c.touch()
	if home {
		c.mu.Lock()
		c.formatters[t] = fn
		c.mu.Unlock()
		return
	}
	c.shadow(id, true).formatters[t] = fn
}

func (c *SharedContext) clearFormatter(t reflect.Type) {
	id, home := c.touch()
	if home {
		c.mu.Lock()
		delete(c.formatters, t)
		c.mu.Unlock()
		return
	}
	if s := c.shadow(id, false); s != nil {
		delete(s.formatters, t)
	}
}

func (c *SharedContext) hasFormatter(t reflect.Type) bool {
	_, ok := c.formatterFor(t)
	return ok
}

// ReleaseShadow discards the calling goroutine's shadow store. Go offers no
// goroutine-exit hook, so a worker that is done with a context should call
// this before returning; an unreleased shadow is inert but holds memory
// until the context itself is collected.
func (c *SharedContext) ReleaseShadow() {
	c.shadows.Delete(goid.Get())
}
