/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package object

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-openapi/strfmt"

	"github.com/suparena/objectstore/errors"
)

// Reserved attribute names carried alongside user properties.
const (
	AttrClassName = "EntityType"
	AttrObjectID  = "ObjectId"
	AttrCreatedAt = "CreatedAt"
	AttrUpdatedAt = "UpdatedAt"
)

// Fetcher retrieves the stored properties of one object. Implemented by
// datastore backends; fetch completion is what makes a reference-only
// instance's data available.
type Fetcher interface {
	Fetch(ctx context.Context, className, objectID string) (map[string]any, error)
}

// Instance is the behavior shared by the generic Object and every
// registered subclass. Subclasses satisfy it by embedding Object; the
// unexported method keeps foreign types out.
type Instance interface {
	ClassName() string
	ObjectID() string
	DataAvailable() bool
	Get(key string) (any, error)
	Set(key string, value any)
	CreatedAt() strfmt.DateTime
	UpdatedAt() strfmt.DateTime
	Fetch(ctx context.Context, f Fetcher) error
	FetchIfNeeded(ctx context.Context, f Fetcher) error

	base() *Object
}

// Object is the generic representation of a remote object: a logical class
// name, an identity, and a property bag. Subclasses embed Object and
// override ClassName:
//
//	type Game struct {
//	    object.Object
//	}
//
//	func (g *Game) ClassName() string { return "Game" }
//
// A fully-constructed Object has its data available from the start. A
// reference-only Object (see WithoutData) carries identity alone and
// rejects property reads until a fetch completes.
type Object struct {
	mu            sync.RWMutex
	className     string
	objectID      string
	dataAvailable bool
	props         map[string]any
	createdAt     strfmt.DateTime
	updatedAt     strfmt.DateTime
}

func (o *Object) base() *Object { return o }

// init is called by the factory once per instance, before the instance is
// shared, so no locking is needed.
func (o *Object) init(className, objectID string, dataAvailable bool) {
	o.className = className
	o.objectID = objectID
	o.dataAvailable = dataAvailable
	o.props = make(map[string]any)
}

// ClassName returns the logical class name the object belongs to.
// Subclasses shadow this with their registered name; the stored field keeps
// generic instances and embedded bases consistent with it.
func (o *Object) ClassName() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.className
}

// ObjectID returns the object's identity. Empty until the backend assigns
// one on first save.
func (o *Object) ObjectID() string {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.objectID
}

// SetObjectID records the identity assigned by the backend. Called by data
// stores on first save; application code normally never needs it.
func (o *Object) SetObjectID(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.objectID = id
}

// DataAvailable reports whether property reads are valid. It is false for
// reference-only instances until a fetch completes.
func (o *Object) DataAvailable() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.dataAvailable
}

// CreatedAt returns the backend creation timestamp, zero until known.
func (o *Object) CreatedAt() strfmt.DateTime {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.createdAt
}

// UpdatedAt returns the backend update timestamp, zero until known.
func (o *Object) UpdatedAt() strfmt.DateTime {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.updatedAt
}

// Get reads a property. Reading from a reference-only instance before its
// fetch completes returns a DataNotAvailableError.
func (o *Object) Get(key string) (any, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if !o.dataAvailable {
		return nil, errors.NewDataNotAvailableError(o.className, o.objectID)
	}
	return o.props[key], nil
}

// Set writes a property. Writes are permitted on reference-only instances
// too: queued values survive the fetch and overlay the fetched data.
func (o *Object) Set(key string, value any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.props[key] = value
}

// Data returns a copy of the property bag, or an error when the data is
// not yet available.
func (o *Object) Data() (map[string]any, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	if !o.dataAvailable {
		return nil, errors.NewDataNotAvailableError(o.className, o.objectID)
	}
	out := make(map[string]any, len(o.props))
	for k, v := range o.props {
		out[k] = v
	}
	return out, nil
}

// Fetch retrieves the object's stored properties through f, populates the
// property bag, and flips data availability. Locally Set values written
// before the fetch are preserved.
func (o *Object) Fetch(ctx context.Context, f Fetcher) error {
	o.mu.RLock()
	className, objectID := o.className, o.objectID
	o.mu.RUnlock()

	if objectID == "" {
		return fmt.Errorf("fetch %s: object has no id", className)
	}

	data, err := f.Fetch(ctx, className, objectID)
	if err != nil {
		return fmt.Errorf("fetch %s %q: %w", className, objectID, err)
	}

	o.applyData(data)
	return nil
}

// FetchIfNeeded fetches only when the data is not yet available.
func (o *Object) FetchIfNeeded(ctx context.Context, f Fetcher) error {
	if o.DataAvailable() {
		return nil
	}
	return o.Fetch(ctx, f)
}

// applyData merges fetched attributes into the property bag, peels off the
// reserved attributes, and marks the data available. Locally written
// properties win over fetched ones.
func (o *Object) applyData(data map[string]any) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for k, v := range data {
		switch k {
		case AttrClassName:
			// Already fixed at construction time.
		case AttrObjectID:
			if id, ok := v.(string); ok && o.objectID == "" {
				o.objectID = id
			}
		case AttrCreatedAt:
			if ts, ok := parseTimestamp(v); ok {
				o.createdAt = ts
			}
		case AttrUpdatedAt:
			if ts, ok := parseTimestamp(v); ok {
				o.updatedAt = ts
			}
		default:
			if _, exists := o.props[k]; !exists {
				o.props[k] = v
			}
		}
	}
	o.dataAvailable = true
}

func parseTimestamp(v any) (strfmt.DateTime, bool) {
	switch tv := v.(type) {
	case strfmt.DateTime:
		return tv, true
	case string:
		ts, err := strfmt.ParseDateTime(tv)
		if err != nil {
			return strfmt.DateTime{}, false
		}
		return ts, true
	default:
		return strfmt.DateTime{}, false
	}
}
