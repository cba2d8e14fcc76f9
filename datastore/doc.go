/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package datastore defines the storage collaborator contract for
ObjectStore and hosts its implementations.

A Store retrieves, queries, and persists objects by logical class name
and identity. The object and query packages only see the narrow Fetcher
and Engine facets; Store is the full surface the client wires together.

Implementations:
  - ddb: DynamoDB-backed store using a single-table layout
  - mock: in-memory store for tests
*/
package datastore
