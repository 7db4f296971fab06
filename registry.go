package ufmt

import "sync"

// Process-wide directory of named shared contexts. One lock guards
// get-or-create, removal and clearing, so concurrent first access under the
// same name resolves to exactly one instance.
var (
	registryMu sync.Mutex
	registry   = make(map[string]*SharedContext)
)

// GetSharedContext returns the shared context registered under name,
// creating it atomically on first access. Callers under the same name
// always receive the same instance until it is removed.
func GetSharedContext(name string) *SharedContext {
	registryMu.Lock()
	defer registryMu.Unlock()
	if c, ok := registry[name]; ok {
		return c
	}
	c := NewSharedContext()
	registry[name] = c
	return c
}

// RemoveSharedContext drops name from the registry. Handles already held by
// callers stay valid; a later GetSharedContext under the same name creates
// a fresh instance.
func RemoveSharedContext(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(registry, name)
}

// ClearSharedContexts empties the registry. Held handles stay valid.
func ClearSharedContexts() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]*SharedContext)
}
