/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package object

import (
	"fmt"

	"github.com/suparena/objectstore/registry"
)

// New allocates a fresh, fully-constructed instance for the given class
// name: the registered subclass when one exists, otherwise a generic
// Object tagged with the name. It never fails; an unregistered name is a
// normal condition, not an error.
func New(r *registry.Registry, className string) Instance {
	return newInstance(r, className, "", true)
}

// WithoutData allocates a reference-only instance: it carries objectID as
// its identity and no data. DataAvailable is false and property reads are
// rejected until a Fetch completes. objectID may be empty for an identity
// the backend will assign on first save. No network request is made.
func WithoutData(r *registry.Registry, className, objectID string) Instance {
	return newInstance(r, className, objectID, false)
}

// NewOf is the typed factory for a registered subclass: NewOf[Game](reg)
// returns a ready-to-use *Game. Unlike New it may only be called for
// types that are currently registered for their own class name; calling
// it for an unregistered or displaced type is a usage error and panics.
func NewOf[T any, PT interface {
	*T
	Subclass
}](r *registry.Registry) PT {
	if r == nil {
		r = registry.Default
	}
	name := PT(new(T)).ClassName()

	d, ok := r.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("objectstore: NewOf called for %q but no type is registered; call object.Register first", name))
	}
	inst := newFromDescriptor(d, name, "", true)
	pt, ok := inst.(PT)
	if !ok {
		panic(fmt.Sprintf("objectstore: NewOf[%T] called for %q but %v is registered", PT(nil), name, d.Type))
	}
	return pt
}

// Materialize builds an instance for one stored item: it resolves the
// class name through the registry, allocates the matching instance, and
// populates it so its data is immediately available. Query engines use it
// to turn raw items into typed results.
func Materialize(r *registry.Registry, className, objectID string, data map[string]any) Instance {
	inst := newInstance(r, className, objectID, false)
	inst.base().applyData(data)
	return inst
}

func newInstance(r *registry.Registry, className, objectID string, dataAvailable bool) Instance {
	if r == nil {
		r = registry.Default
	}
	if d, ok := r.Lookup(className); ok {
		return newFromDescriptor(d, className, objectID, dataAvailable)
	}

	// Generic fallback for unregistered names.
	o := &Object{}
	o.init(className, objectID, dataAvailable)
	return o
}

func newFromDescriptor(d registry.Descriptor, className, objectID string, dataAvailable bool) Instance {
	v := d.New()
	inst, ok := v.(Instance)
	if !ok {
		// The descriptor was built outside object.Register and its type
		// does not embed Object. The registry is corrupt for this name.
		panic(fmt.Sprintf("objectstore: registered type %T for %q does not embed object.Object", v, className))
	}
	inst.base().init(className, objectID, dataAvailable)
	return inst
}
