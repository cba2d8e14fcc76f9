/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/objectstore/object"
	"github.com/suparena/objectstore/query"
)

// Store is the data-retrieval collaborator behind the object layer: it
// fetches single objects by identity (populating reference-only
// instances), executes class-scoped queries, and persists objects.
type Store interface {
	object.Fetcher
	query.Engine

	// Save persists an object's properties. When the object has no
	// identity yet, the store assigns one and records it on the instance.
	Save(ctx context.Context, inst object.Instance) error

	// Delete removes one object by identity.
	Delete(ctx context.Context, className, objectID string) error
}
