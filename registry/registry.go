/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Descriptor describes the concrete Go type registered for a logical class
// name. New allocates a fresh, empty instance of that type; Type is the
// pointer type of the concrete subclass (e.g. *Game) and is what query and
// factory results are asserted against.
type Descriptor struct {
	// ClassName is the logical class name the type represents on the backend.
	ClassName string
	// Type is the dynamic type New produces.
	Type reflect.Type
	// New allocates a fresh, empty instance of Type.
	New func() any
	// ManualOnly marks types that opted out of bulk registration and may
	// only be registered by an explicit Register call.
	ManualOnly bool
}

// Registry maps logical class names to type descriptors. It is safe for
// concurrent use; registrations are expected to happen during startup but
// remain valid at any point in the process lifetime.
//
// Re-registering a name is permitted and the newest registration wins.
// This is intentional (it supports test doubles and late-bound types) and
// carries no overwrite protection; see TestRegistryLastWriteWins.
type Registry struct {
	mu    sync.RWMutex
	types map[string]Descriptor
}

// New creates an empty Registry. The zero value is also usable; the table
// is allocated on first registration.
func New() *Registry {
	return &Registry{types: make(map[string]Descriptor)}
}

// Default is the process-wide registry used when no explicit registry is
// injected. Library code should accept a *Registry and fall back to this.
var Default = New()

// Register inserts or replaces the descriptor for its class name and is
// visible to all subsequent lookups immediately.
//
// A descriptor with an empty class name, a nil allocator, or a nil type is
// a usage error and panics: silently accepting it would corrupt the table
// and produce confusing failures far from the root cause.
func (r *Registry) Register(d Descriptor) {
	if d.ClassName == "" {
		panic("subclass registry: registering a type with an empty class name")
	}
	if d.New == nil || d.Type == nil {
		panic(fmt.Sprintf("subclass registry: descriptor for %q has no allocator", d.ClassName))
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.types == nil {
		r.types = make(map[string]Descriptor)
	}
	r.types[d.ClassName] = d
}

// Lookup returns the current descriptor for a class name. A miss is not an
// error; callers fall back to the generic object representation.
func (r *Registry) Lookup(className string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.types[className]
	return d, ok
}

// IsCurrent reports whether t is the winning type for the given class name.
// After an override, the displaced type is no longer current.
func (r *Registry) IsCurrent(className string, t reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.types[className]
	return ok && d.Type == t
}

// ClassNames returns the registered class names in sorted order.
func (r *Registry) ClassNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
