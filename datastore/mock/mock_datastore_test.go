/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock

import (
	"context"
	"testing"

	"github.com/suparena/objectstore/datastore"
	"github.com/suparena/objectstore/errors"
	"github.com/suparena/objectstore/object"
	"github.com/suparena/objectstore/query"
	"github.com/suparena/objectstore/registry"
)

var _ datastore.Store = (*Store)(nil)

type Game struct {
	object.Object
}

func (g *Game) ClassName() string { return "Game" }

func TestFetchRoundTrip(t *testing.T) {
	store := New().Seed("Game", "abc123", map[string]any{"title": "Bughouse"})

	data, err := store.Fetch(context.Background(), "Game", "abc123")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if data["title"] != "Bughouse" {
		t.Errorf("expected title Bughouse, got %v", data["title"])
	}

	if _, err := store.Fetch(context.Background(), "Game", "missing"); !errors.IsObjectNotFound(err) {
		t.Errorf("expected object-not-found, got %v", err)
	}
}

func TestSaveAssignsIdentity(t *testing.T) {
	reg := registry.New()
	object.Register(reg, &Game{})
	store := New()

	game := object.NewOf[Game](reg)
	game.Set("title", "Bughouse")
	if err := store.Save(context.Background(), game); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if game.ObjectID() == "" {
		t.Fatal("Save should assign an identity")
	}

	data, err := store.Fetch(context.Background(), "Game", game.ObjectID())
	if err != nil {
		t.Fatalf("Fetch after save failed: %v", err)
	}
	if data["title"] != "Bughouse" {
		t.Errorf("expected saved title, got %v", data["title"])
	}
}

func TestRunScopedToClass(t *testing.T) {
	store := New().
		Seed("Game", "g-1", map[string]any{"title": "Bughouse"}).
		Seed("Game", "g-2", map[string]any{"title": "Crazyhouse"}).
		Seed("Player", "p-1", map[string]any{"name": "Alice"})

	items, err := store.Run(context.Background(), query.For("Game"))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 Game items, got %d", len(items))
	}
	if items[0].ObjectID != "g-1" || items[1].ObjectID != "g-2" {
		t.Errorf("expected id-ordered results, got %v", items)
	}

	desc, err := store.Run(context.Background(), query.For("Game").Descending().Limit(1))
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(desc) != 1 || desc[0].ObjectID != "g-2" {
		t.Errorf("expected single descending result g-2, got %v", desc)
	}
}
