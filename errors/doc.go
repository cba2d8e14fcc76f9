/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package errors provides semantic error types for ObjectStore.

Two kinds of failures flow through this package:

  - Recoverable conditions callers are expected to handle: an unfetched
    object's data being unavailable, a fetch miss, an untranslatable
    query predicate, a bad configuration file. These are ordinary error
    values with sentinel matching via errors.Is.
  - Programmer errors (registering a type with no class name, typed
    factory calls on unregistered types) are NOT represented here; those
    panic at the call site so a corrupted registry is caught immediately
    rather than surfacing far downstream.

All error types support errors.Is matching against sentinels:

	obj, err := store.Fetch(ctx, "Game", "abc123")
	if errors.IsObjectNotFound(err) {
	    // handle missing object
	}
*/
package errors
