/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package query

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"

	"github.com/suparena/objectstore/errors"
	"github.com/suparena/objectstore/object"
	"github.com/suparena/objectstore/registry"
)

// Item is one raw result produced by a query engine: the object's identity
// plus its stored attributes.
type Item struct {
	ObjectID string
	Data     map[string]any
}

// Engine executes scoped queries. Implemented by datastore backends.
type Engine interface {
	Run(ctx context.Context, q *Query) ([]Item, error)
}

// Query is a query bound to one logical class name for its entire
// lifetime. The binding is fixed at construction and every result the
// query materializes goes through the object factory under that name, so
// results come back as the registered subclass (or the generic fallback).
type Query struct {
	className  string
	filter     expression.ConditionBuilder
	hasFilter  bool
	limit      int32
	descending bool
}

// For returns a query bound to className with no filter. An empty class
// name is a usage error and panics.
func For(className string) *Query {
	if className == "" {
		panic("objectstore: query bound to an empty class name")
	}
	return &Query{className: className}
}

// ForWithPredicate returns a query bound to className carrying the given
// filter predicate. When the predicate uses constructs the translator does
// not support, no query is returned and the error describes the offending
// construct.
func ForWithPredicate(className string, pred Predicate) (*Query, error) {
	q := For(className)
	cond, err := Translate(pred)
	if err != nil {
		return nil, fmt.Errorf("query for %q: %w", className, err)
	}
	q.filter = cond
	q.hasFilter = true
	return q, nil
}

// ForType returns a query bound to T's class name: ForType[Game](reg).
// T must be the current registered type for its own class name; anything
// else is a usage error and panics.
func ForType[T any, PT interface {
	*T
	object.Subclass
}](r *registry.Registry) *Query {
	if r == nil {
		r = registry.Default
	}
	proto := PT(new(T))
	if !object.IsRegistered(r, proto) {
		panic(fmt.Sprintf("objectstore: ForType[%T] called but the type is not registered for %q", proto, proto.ClassName()))
	}
	return For(proto.ClassName())
}

// ClassName returns the class name the query is bound to.
func (q *Query) ClassName() string { return q.className }

// Filter returns the translated filter condition, if any.
func (q *Query) Filter() (expression.ConditionBuilder, bool) {
	return q.filter, q.hasFilter
}

// Limit caps the number of returned items. Zero means no cap.
func (q *Query) Limit(n int32) *Query {
	q.limit = n
	return q
}

// MaxResults returns the configured result cap, zero when uncapped.
func (q *Query) MaxResults() int32 { return q.limit }

// Descending flips result ordering to newest-first.
func (q *Query) Descending() *Query {
	q.descending = true
	return q
}

// IsDescending reports whether results are ordered newest-first.
func (q *Query) IsDescending() bool { return q.descending }

// Find executes the query on e and materializes every item through the
// object factory under the bound class name.
func (q *Query) Find(ctx context.Context, e Engine, r *registry.Registry) ([]object.Instance, error) {
	items, err := e.Run(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", q.className, err)
	}

	results := make([]object.Instance, 0, len(items))
	for _, item := range items {
		results = append(results, object.Materialize(r, q.className, item.ObjectID, item.Data))
	}
	return results, nil
}

// First executes the query and returns the first result, or an
// ObjectNotFoundError when nothing matches.
func (q *Query) First(ctx context.Context, e Engine, r *registry.Registry) (object.Instance, error) {
	results, err := q.Find(ctx, e, r)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, errors.NewObjectNotFoundError(q.className, "")
	}
	return results[0], nil
}
