/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package registry maps logical class names to concrete Go types.

A logical class name identifies a collection on the backend ("Game",
"Player") independently of any Go type name. Registering a type for a
class name makes every factory and query code path materialize objects of
that collection as the registered type instead of the generic
object.Object:

	reg := registry.New()
	reg.Register(registry.Descriptor{
	    ClassName: "Game",
	    Type:      reflect.TypeOf(&Game{}),
	    New:       func() any { return &Game{} },
	})

Most callers register through object.Register, which derives the
descriptor from the type's ClassName method, rather than building
descriptors by hand.

The registry is thread-safe. Registration normally happens during
process startup, but late registration is permitted: an entry becomes
visible to all lookups the moment Register returns. Lookups for
unregistered names are misses, not errors. Registering a name twice is
allowed and the newest registration wins, with no warning; this is an
intentional contract relied on by test doubles and dynamically created
types.
*/
package registry
