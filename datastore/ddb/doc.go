/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

/*
Package ddb implements the ObjectStore datastore contract on AWS
DynamoDB.

All classes share one table. Each object is one item:

	PK          CLASS#<class name>     (partition: one class per partition)
	SK          OBJECT#<object id>
	EntityType  <class name>           (drives typed materialization)
	ObjectId    <object id>
	CreatedAt   RFC 3339 timestamp
	UpdatedAt   RFC 3339 timestamp
	...         user properties, marshaled with attributevalue

Scoped queries become DynamoDB Query calls against the class partition,
with translated predicates applied as server-side filter expressions.

The integration tests in this package need live credentials and a table;
they load them from a .env file and skip when none is present.
*/
package ddb
