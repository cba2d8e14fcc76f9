/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package query builds class-scoped queries with declarative filter
predicates.

A query is permanently bound to one logical class name at construction;
all of its results are materialized through the object factory under
that name, so callers always receive the registered subclass or the
generic fallback:

	q, err := query.ForWithPredicate("Game",
	    query.And(
	        query.Equal("arena", "oakville"),
	        query.GreaterOrEqual("players", 2),
	    ))
	if err != nil {
	    // the predicate used an untranslatable construct
	}
	games, err := q.Limit(25).Find(ctx, engine, reg)

Predicates translate to the DynamoDB expression builder. Untranslatable
constructs (regular-expression matches, empty operand lists) fail at
construction with an UnsupportedPredicateError rather than producing a
query with a silently dropped filter.
*/
package query
