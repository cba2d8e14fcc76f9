/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package objectstore materializes backend-stored objects as strongly-typed
Go values.

Every stored object carries a logical class name identifying its
collection on the backend. Registering a Go type for a class name makes
all construction, fetching, and query paths produce that type; names
without a registered type degrade gracefully to a generic object.

Defining a subclass and using it end to end:

	type Game struct {
	    object.Object
	}

	func (g *Game) ClassName() string { return "Game" }

	cfg, _ := objectstore.LoadConfig("objectstore.yaml")
	client, err := objectstore.NewFromConfig(cfg)
	if err != nil {
	    // ...
	}
	client.Register(&Game{})

	game := client.NewObject("Game").(*Game)
	game.Set("title", "Bughouse")
	if err := client.Save(ctx, game); err != nil {
	    // ...
	}

	q, _ := client.QueryWithPredicate("Game", query.Equal("title", "Bughouse"))
	games, err := client.Find(ctx, q)

Types that must never be swept up by bulk registration (conditionally
registered ones, dynamically created ones) implement the
ManualRegistrationOnly marker method and are registered individually
with object.Register after the client is constructed.
*/
package objectstore
