/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory implementation of the datastore
// contract for testing.
package mock

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/suparena/objectstore/errors"
	"github.com/suparena/objectstore/object"
	"github.com/suparena/objectstore/query"
)

// Store is an in-memory datastore.Store. Translated filter expressions
// are opaque to it, so Run returns every object of the queried class
// unless a custom run function is installed.
type Store struct {
	mu       sync.RWMutex
	objects  map[string]map[string]map[string]any // className -> objectID -> data
	runFunc  func(ctx context.Context, q *query.Query) ([]query.Item, error)
	fetchErr error
	saveErr  error
}

// New creates an empty mock Store.
func New() *Store {
	return &Store{objects: make(map[string]map[string]map[string]any)}
}

// WithRunFunc installs a custom query executor.
func (s *Store) WithRunFunc(f func(ctx context.Context, q *query.Query) ([]query.Item, error)) *Store {
	s.runFunc = f
	return s
}

// WithFetchError makes Fetch return err.
func (s *Store) WithFetchError(err error) *Store {
	s.fetchErr = err
	return s
}

// WithSaveError makes Save return err.
func (s *Store) WithSaveError(err error) *Store {
	s.saveErr = err
	return s
}

// Seed inserts raw object data directly, bypassing Save.
func (s *Store) Seed(className, objectID string, data map[string]any) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.objects[className] == nil {
		s.objects[className] = make(map[string]map[string]any)
	}
	copied := make(map[string]any, len(data))
	for k, v := range data {
		copied[k] = v
	}
	s.objects[className][objectID] = copied
	return s
}

// Fetch returns a copy of one object's data.
func (s *Store) Fetch(_ context.Context, className, objectID string) (map[string]any, error) {
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[className][objectID]
	if !ok {
		return nil, errors.NewObjectNotFoundError(className, objectID)
	}
	out := make(map[string]any, len(data))
	for k, v := range data {
		out[k] = v
	}
	return out, nil
}

// Run returns every stored object of the queried class in object-id order,
// honoring the query's result cap, or delegates to the installed run
// function.
func (s *Store) Run(ctx context.Context, q *query.Query) ([]query.Item, error) {
	if s.runFunc != nil {
		return s.runFunc(ctx, q)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	class := s.objects[q.ClassName()]
	ids := make([]string, 0, len(class))
	for id := range class {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	if q.IsDescending() {
		for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
			ids[i], ids[j] = ids[j], ids[i]
		}
	}

	var items []query.Item
	for _, id := range ids {
		data := make(map[string]any, len(class[id]))
		for k, v := range class[id] {
			data[k] = v
		}
		items = append(items, query.Item{ObjectID: id, Data: data})
		if q.MaxResults() > 0 && int32(len(items)) >= q.MaxResults() {
			break
		}
	}
	return items, nil
}

// Save stores the object's data, assigning an identity when missing.
func (s *Store) Save(_ context.Context, inst object.Instance) error {
	if s.saveErr != nil {
		return s.saveErr
	}

	provider, ok := inst.(interface{ Data() (map[string]any, error) })
	if !ok {
		return fmt.Errorf("save %s: instance does not expose its data", inst.ClassName())
	}
	data, err := provider.Data()
	if err != nil {
		return err
	}

	objectID := inst.ObjectID()
	if objectID == "" {
		objectID = uuid.NewString()
		if setter, ok := inst.(interface{ SetObjectID(string) }); ok {
			setter.SetObjectID(objectID)
		}
	}
	data[object.AttrObjectID] = objectID

	s.Seed(inst.ClassName(), objectID, data)
	return nil
}

// Delete removes one object, if present.
func (s *Store) Delete(_ context.Context, className, objectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects[className], objectID)
	return nil
}
