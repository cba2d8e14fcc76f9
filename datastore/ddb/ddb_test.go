/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"os"
	"testing"

	"github.com/joho/godotenv"

	"github.com/suparena/objectstore/object"
	"github.com/suparena/objectstore/query"
	"github.com/suparena/objectstore/registry"
)

type Game struct {
	object.Object
}

func (g *Game) ClassName() string { return "Game" }

// getStore builds a Store from .env settings, skipping the test when the
// integration environment is not configured.
func getStore(t *testing.T) *Store {
	t.Helper()
	_ = godotenv.Load()

	awsAccessKey := os.Getenv("AWS_ACCESS_KEY")
	awsSecretKey := os.Getenv("AWS_SECRET_KEY")
	region := os.Getenv("AWS_REGION")
	tableName := os.Getenv("AWS_DDB_TABLE")
	if awsAccessKey == "" || awsSecretKey == "" || region == "" || tableName == "" {
		t.Skip("AWS integration environment not configured")
	}

	store, err := New(awsAccessKey, awsSecretKey, region, tableName)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

func TestSaveFetchDelete(t *testing.T) {
	store := getStore(t)
	ctx := context.Background()

	reg := registry.New()
	object.Register(reg, &Game{})

	game := object.NewOf[Game](reg)
	game.Set("title", "Bughouse")
	game.Set("players", 4)

	if err := store.Save(ctx, game); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if game.ObjectID() == "" {
		t.Fatal("Save should assign an identity to a new object")
	}
	defer func() {
		if err := store.Delete(ctx, "Game", game.ObjectID()); err != nil {
			t.Errorf("Delete failed: %v", err)
		}
	}()

	ref := object.WithoutData(reg, "Game", game.ObjectID())
	if err := ref.Fetch(ctx, store); err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	title, err := ref.Get("title")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if title != "Bughouse" {
		t.Errorf("expected title %q, got %v", "Bughouse", title)
	}
}

func TestScopedQuery(t *testing.T) {
	store := getStore(t)
	ctx := context.Background()

	reg := registry.New()
	object.Register(reg, &Game{})

	game := object.NewOf[Game](reg)
	game.Set("title", "Bughouse")
	game.Set("arena", "oakville")
	if err := store.Save(ctx, game); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	defer store.Delete(ctx, "Game", game.ObjectID())

	q, err := query.ForWithPredicate("Game", query.Equal("arena", "oakville"))
	if err != nil {
		t.Fatalf("ForWithPredicate failed: %v", err)
	}

	results, err := q.Find(ctx, store, reg)
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if len(results) == 0 {
		t.Fatal("expected at least one result")
	}
	for _, inst := range results {
		if _, ok := inst.(*Game); !ok {
			t.Errorf("results should materialize as *Game, got %T", inst)
		}
	}
}
