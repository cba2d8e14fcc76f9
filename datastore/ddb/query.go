/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/objectstore/object"
	"github.com/suparena/objectstore/query"
)

// Run executes a scoped query against the class partition. The translated
// filter, when present, is applied server-side; pagination continues until
// the query's result cap or the end of the partition.
func (s *Store) Run(ctx context.Context, q *query.Query) ([]query.Item, error) {
	b := expression.NewBuilder().
		WithKeyCondition(expression.KeyEqual(expression.Key(attrPK), expression.Value(classKey(q.ClassName()))))
	if filter, ok := q.Filter(); ok {
		b = b.WithFilter(filter)
	}
	expr, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("build expression: %w", err)
	}

	input := &sdk.QueryInput{
		TableName:                 aws.String(s.tableName),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ScanIndexForward:          aws.Bool(!q.IsDescending()),
	}
	if q.MaxResults() > 0 {
		input.Limit = aws.Int32(q.MaxResults())
	}

	var items []query.Item
	var startKey map[string]types.AttributeValue
	for {
		input.ExclusiveStartKey = startKey
		out, err := s.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("query error: %w", err)
		}

		for _, raw := range out.Items {
			item, err := rawToItem(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
			if q.MaxResults() > 0 && int32(len(items)) >= q.MaxResults() {
				return items, nil
			}
		}

		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func rawToItem(raw map[string]types.AttributeValue) (query.Item, error) {
	data, err := itemToData(raw)
	if err != nil {
		return query.Item{}, err
	}
	objectID, _ := data[object.AttrObjectID].(string)
	if objectID == "" {
		return query.Item{}, fmt.Errorf("item is missing the %s attribute", object.AttrObjectID)
	}
	return query.Item{ObjectID: objectID, Data: data}, nil
}
