/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package object defines the generic remote object type, the subclassing
contract, and the factory that materializes stored items as registered
subclasses.

Defining and registering a subclass:

	type Game struct {
	    object.Object
	}

	func (g *Game) ClassName() string { return "Game" }

	object.Register(reg, &Game{})

After registration, every factory and query path producing objects for
the "Game" class name yields *Game values:

	game := object.NewOf[Game](reg)
	game.Set("title", "Bughouse")

Prefer object.NewOf over plain struct literals: if Game is itself
subclassed and the subclass registered, NewOf keeps returning the
registered type.

Reference-only instances associate objects without a round trip:

	ref := object.WithoutData(reg, "Game", "abc123")
	ref.DataAvailable()          // false, no request was made
	_ = ref.Fetch(ctx, store)    // populates properties
	ref.DataAvailable()          // true

Unregistered class names are not an error anywhere in this package;
they materialize as generic *object.Object values carrying the class
name they were created with.
*/
package object
