package registry

import "sync"

// Default registry instance and initialization guard.
var (
	globalRegistry *Registry
	globalOnce     sync.Once
)

// Global returns the process-wide default registry, creating an empty one
// on first call. It is a convenience for embedders that want a single
// shared catalog; domains registered here still own their engines
// exclusively.
func Global() *Registry {
	globalOnce.Do(func() {
		globalRegistry = New()
	})
	return globalRegistry
}

// InitGlobal initializes the default registry with a custom instance.
// Must be called before any call to Global() to take effect.
// Safe for concurrent use but only the first call has any effect.
func InitGlobal(r *Registry) {
	globalOnce.Do(func() {
		globalRegistry = r
	})
}

// ResetGlobal resets the default registry for testing purposes.
// This is NOT thread-safe and should only be used in tests.
func ResetGlobal() {
	globalOnce = sync.Once{}
	globalRegistry = nil
}
