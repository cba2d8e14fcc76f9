/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package objectstore

import (
	"context"
	"fmt"

	"github.com/suparena/objectstore/datastore"
	"github.com/suparena/objectstore/datastore/ddb"
	"github.com/suparena/objectstore/object"
	"github.com/suparena/objectstore/query"
	"github.com/suparena/objectstore/registry"
)

// Client ties a subclass registry to a datastore. All object construction
// and query execution funnels through it, so objects always come back as
// their registered subclass.
//
// Register subclasses during startup, right after constructing the client.
// Late registration works (the registry allows it at any time), but
// objects materialized before a type's registration remain generic.
// Manual registration of opt-out types must likewise happen after the
// client exists.
type Client struct {
	registry *registry.Registry
	store    datastore.Store
}

// NewClient wires a client onto an existing store. A nil reg selects the
// process-wide default registry.
func NewClient(store datastore.Store, reg *registry.Registry) *Client {
	if reg == nil {
		reg = registry.Default
	}
	return &Client{registry: reg, store: store}
}

// NewFromConfig validates cfg and wires a client onto a DynamoDB store.
func NewFromConfig(cfg *Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	store, err := ddb.New(cfg.AWSAccessKey, cfg.AWSSecretKey, cfg.AWSRegion, cfg.TableName)
	if err != nil {
		return nil, fmt.Errorf("creating DynamoDB store: %w", err)
	}
	return NewClient(store, nil), nil
}

// Registry returns the client's subclass registry.
func (c *Client) Registry() *registry.Registry { return c.registry }

// Register is the bulk registration path: it registers every prototype
// except those carrying the ManualRegistration marker. Marker types are
// registered with object.Register directly, against c.Registry().
func (c *Client) Register(protos ...object.Subclass) {
	object.RegisterAll(c.registry, protos...)
}

// NewObject allocates a fresh instance for a class name: the registered
// subclass, or a generic object when the name is unregistered.
func (c *Client) NewObject(className string) object.Instance {
	return object.New(c.registry, className)
}

// ObjectWithoutData allocates a reference-only instance carrying just an
// identity. No request is made; fetch it before reading properties.
func (c *Client) ObjectWithoutData(className, objectID string) object.Instance {
	return object.WithoutData(c.registry, className, objectID)
}

// Query returns a query bound to className with no filter.
func (c *Client) Query(className string) *query.Query {
	return query.For(className)
}

// QueryWithPredicate returns a query bound to className carrying a filter
// predicate, or an error when the predicate cannot be translated.
func (c *Client) QueryWithPredicate(className string, pred query.Predicate) (*query.Query, error) {
	return query.ForWithPredicate(className, pred)
}

// Find executes a scoped query on the client's store.
func (c *Client) Find(ctx context.Context, q *query.Query) ([]object.Instance, error) {
	return q.Find(ctx, c.store, c.registry)
}

// Get fetches one object by identity, returning it fully populated.
func (c *Client) Get(ctx context.Context, className, objectID string) (object.Instance, error) {
	inst := object.WithoutData(c.registry, className, objectID)
	if err := inst.Fetch(ctx, c.store); err != nil {
		return nil, err
	}
	return inst, nil
}

// Save persists an object through the client's store.
func (c *Client) Save(ctx context.Context, inst object.Instance) error {
	return c.store.Save(ctx, inst)
}

// Delete removes one object by identity.
func (c *Client) Delete(ctx context.Context, className, objectID string) error {
	return c.store.Delete(ctx, className, objectID)
}
