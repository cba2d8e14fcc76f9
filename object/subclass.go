/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package object

import (
	"fmt"
	"reflect"

	"github.com/suparena/objectstore/registry"
)

// Subclass is the capability a type must expose to participate in the
// registry: its logical class name. The name must be non-empty and is
// typically a constant:
//
//	func (g *Game) ClassName() string { return "Game" }
type Subclass interface {
	ClassName() string
}

// ManualRegistration marks a subclass that must only ever be registered by
// an explicit Register call. RegisterAll and other bulk registration paths
// skip types carrying this marker; Register itself ignores it. Manual
// registrations must still happen after client initialization, per the
// client's documented ordering.
type ManualRegistration interface {
	Subclass
	ManualRegistrationOnly()
}

// Register records proto's concrete type as the representation for its
// class name in r (registry.Default when r is nil). proto must be a
// non-nil pointer to a struct embedding Object, with a non-empty class
// name; violations panic, since a silently skipped registration corrupts
// every later lookup.
//
// Registering twice is harmless, and registering a different type for the
// same name replaces the previous entry.
func Register(r *registry.Registry, proto Subclass) {
	if r == nil {
		r = registry.Default
	}

	t := reflect.TypeOf(proto)
	if t == nil || t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("objectstore: Register needs a struct pointer prototype, got %T", proto))
	}
	if reflect.ValueOf(proto).IsNil() {
		panic(fmt.Sprintf("objectstore: Register called with a nil %v prototype", t))
	}
	if _, ok := proto.(Instance); !ok {
		panic(fmt.Sprintf("objectstore: %v does not embed object.Object", t))
	}

	name := proto.ClassName()
	if name == "" {
		panic(fmt.Sprintf("objectstore: %v returned an empty class name", t))
	}

	_, manualOnly := proto.(ManualRegistration)

	elem := t.Elem()
	r.Register(registry.Descriptor{
		ClassName:  name,
		Type:       t,
		New:        func() any { return reflect.New(elem).Interface() },
		ManualOnly: manualOnly,
	})
}

// RegisterAll is the bulk registration path used during application
// startup. It registers every prototype except those carrying the
// ManualRegistration marker and returns the class names it registered.
func RegisterAll(r *registry.Registry, protos ...Subclass) []string {
	registered := make([]string, 0, len(protos))
	for _, proto := range protos {
		if _, skip := proto.(ManualRegistration); skip {
			continue
		}
		Register(r, proto)
		registered = append(registered, proto.ClassName())
	}
	return registered
}

// IsRegistered reports whether proto's exact type is the current winning
// entry for its own class name.
func IsRegistered(r *registry.Registry, proto Subclass) bool {
	if r == nil {
		r = registry.Default
	}
	return r.IsCurrent(proto.ClassName(), reflect.TypeOf(proto))
}
