/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package query

import (
	"context"
	"testing"

	"github.com/suparena/objectstore/errors"
	"github.com/suparena/objectstore/object"
	"github.com/suparena/objectstore/registry"
)

type Game struct {
	object.Object
}

func (g *Game) ClassName() string { return "Game" }

// stubEngine records the query it was handed and returns canned items.
type stubEngine struct {
	gotQuery *Query
	items    []Item
	err      error
}

func (s *stubEngine) Run(_ context.Context, q *Query) ([]Item, error) {
	s.gotQuery = q
	return s.items, s.err
}

func TestForBindsClassName(t *testing.T) {
	q := For("Game")
	if q.ClassName() != "Game" {
		t.Errorf("expected bound class name Game, got %q", q.ClassName())
	}
	if _, ok := q.Filter(); ok {
		t.Error("a query built without a predicate should have no filter")
	}
}

func TestForWithPredicateBindsClassName(t *testing.T) {
	q, err := ForWithPredicate("Game", Equal("arena", "oakville"))
	if err != nil {
		t.Fatalf("ForWithPredicate failed: %v", err)
	}
	if q.ClassName() != "Game" {
		t.Errorf("expected bound class name Game, got %q", q.ClassName())
	}
	if _, ok := q.Filter(); !ok {
		t.Error("the translated filter should be carried by the query")
	}
}

func TestForWithUnsupportedPredicate(t *testing.T) {
	q, err := ForWithPredicate("Game", Matches("title", "^Bug.*"))
	if q != nil {
		t.Error("no query should be returned for an untranslatable predicate")
	}
	if !errors.IsUnsupportedPredicate(err) {
		t.Errorf("expected unsupported-predicate error, got %v", err)
	}
}

func TestForEmptyClassNamePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("binding a query to an empty class name should panic")
		}
	}()
	For("")
}

func TestForType(t *testing.T) {
	reg := registry.New()
	object.Register(reg, &Game{})

	q := ForType[Game](reg)
	if q.ClassName() != "Game" {
		t.Errorf("expected bound class name Game, got %q", q.ClassName())
	}
}

func TestForTypeUnregisteredPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ForType for an unregistered type should panic")
		}
	}()
	ForType[Game](registry.New())
}

func TestFindMaterializesThroughRegistry(t *testing.T) {
	reg := registry.New()
	object.Register(reg, &Game{})

	engine := &stubEngine{items: []Item{
		{ObjectID: "g-1", Data: map[string]any{"title": "Bughouse"}},
		{ObjectID: "g-2", Data: map[string]any{"title": "Crazyhouse"}},
	}}

	q := For("Game").Limit(10).Descending()
	results, err := q.Find(context.Background(), engine, reg)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}

	if engine.gotQuery != q {
		t.Error("the engine should receive the scoped query itself")
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, inst := range results {
		game, ok := inst.(*Game)
		if !ok {
			t.Fatalf("results should materialize as *Game, got %T", inst)
		}
		if game.ClassName() != "Game" {
			t.Errorf("materialized instance should carry the bound class name, got %q", game.ClassName())
		}
		if !game.DataAvailable() {
			t.Error("materialized results should have their data available")
		}
	}
	if results[0].ObjectID() != "g-1" {
		t.Errorf("expected first result g-1, got %q", results[0].ObjectID())
	}
}

func TestFindGenericFallback(t *testing.T) {
	engine := &stubEngine{items: []Item{
		{ObjectID: "s-1", Data: map[string]any{"value": 7}},
	}}

	results, err := For("Score").Find(context.Background(), engine, registry.New())
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].ClassName() != "Score" {
		t.Errorf("generic result should carry the bound class name, got %q", results[0].ClassName())
	}
}

func TestFirst(t *testing.T) {
	engine := &stubEngine{items: []Item{{ObjectID: "g-1", Data: map[string]any{}}}}
	inst, err := For("Game").First(context.Background(), engine, registry.New())
	if err != nil {
		t.Fatalf("First failed: %v", err)
	}
	if inst.ObjectID() != "g-1" {
		t.Errorf("expected g-1, got %q", inst.ObjectID())
	}

	empty := &stubEngine{}
	_, err = For("Game").First(context.Background(), empty, registry.New())
	if !errors.IsObjectNotFound(err) {
		t.Errorf("expected object-not-found for an empty result, got %v", err)
	}
}
