/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"

	"github.com/suparena/objectstore/errors"
	"github.com/suparena/objectstore/object"
)

// Key attribute names of the single-table layout.
const (
	attrPK = "PK"
	attrSK = "SK"
)

// Store implements datastore.Store on a single DynamoDB table. Objects of
// every class share the table: the partition key groups a class
// ("CLASS#Game"), the sort key addresses one object ("OBJECT#abc123"),
// and the EntityType attribute carries the logical class name used for
// typed materialization.
type Store struct {
	client    *sdk.Client
	tableName string
}

// identitySetter is the facet of object instances the store uses to record
// a backend-assigned identity. Every type embedding object.Object has it.
type identitySetter interface {
	SetObjectID(id string)
}

// dataProvider is the facet exposing the full property bag for persisting.
type dataProvider interface {
	Data() (map[string]any, error)
}

// NewClient initializes a DynamoDB client using static AWS credentials.
func NewClient(awsAccessKey, awsSecretKey, awsRegion string) (*sdk.Client, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(awsRegion),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsAccessKey, awsSecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}
	return sdk.NewFromConfig(cfg), nil
}

// New constructs a Store on the given table.
func New(awsAccessKey, awsSecretKey, awsRegion, tableName string) (*Store, error) {
	client, err := NewClient(awsAccessKey, awsSecretKey, awsRegion)
	if err != nil {
		return nil, fmt.Errorf("failed to create DynamoDB client: %w", err)
	}
	return NewFromClient(client, tableName), nil
}

// NewFromClient constructs a Store on an existing client, e.g. one pointed
// at DynamoDB Local.
func NewFromClient(client *sdk.Client, tableName string) *Store {
	return &Store{client: client, tableName: tableName}
}

func classKey(className string) string { return "CLASS#" + className }
func objectKey(objectID string) string { return "OBJECT#" + objectID }

func (s *Store) key(className, objectID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		attrPK: &types.AttributeValueMemberS{Value: classKey(className)},
		attrSK: &types.AttributeValueMemberS{Value: objectKey(objectID)},
	}
}

// Fetch retrieves one object's attributes by class name and identity.
func (s *Store) Fetch(ctx context.Context, className, objectID string) (map[string]any, error) {
	out, err := s.client.GetItem(ctx, &sdk.GetItemInput{
		TableName: aws.String(s.tableName),
		Key:       s.key(className, objectID),
	})
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, errors.NewObjectNotFoundError(className, objectID)
	}
	return itemToData(out.Item)
}

// Save persists an object's properties. Objects without an identity get
// one assigned here, standing in for the backend's id assignment on first
// save; the id is recorded on the instance before the write.
func (s *Store) Save(ctx context.Context, inst object.Instance) error {
	provider, ok := inst.(dataProvider)
	if !ok {
		return fmt.Errorf("save %s: instance does not expose its data", inst.ClassName())
	}
	data, err := provider.Data()
	if err != nil {
		return fmt.Errorf("save %s: %w", inst.ClassName(), err)
	}

	objectID := inst.ObjectID()
	if objectID == "" {
		objectID = uuid.NewString()
		if setter, ok := inst.(identitySetter); ok {
			setter.SetObjectID(objectID)
		}
	}

	now := strfmt.DateTime(time.Now().UTC())
	createdAt := inst.CreatedAt()
	if time.Time(createdAt).IsZero() {
		createdAt = now
	}

	data[object.AttrClassName] = inst.ClassName()
	data[object.AttrObjectID] = objectID
	data[object.AttrCreatedAt] = createdAt.String()
	data[object.AttrUpdatedAt] = now.String()

	item, err := attributevalue.MarshalMap(data)
	if err != nil {
		return fmt.Errorf("save %s %q: marshal: %w", inst.ClassName(), objectID, err)
	}
	for k, v := range s.key(inst.ClassName(), objectID) {
		item[k] = v
	}

	_, err = s.client.PutItem(ctx, &sdk.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("save %s %q: %w", inst.ClassName(), objectID, err)
	}
	return nil
}

// Delete removes one object by identity.
func (s *Store) Delete(ctx context.Context, className, objectID string) error {
	_, err := s.client.DeleteItem(ctx, &sdk.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key:       s.key(className, objectID),
	})
	if err != nil {
		return fmt.Errorf("delete %s %q: %w", className, objectID, err)
	}
	return nil
}

// itemToData converts a raw item into the attribute map handed to the
// object layer, dropping the table's key attributes.
func itemToData(item map[string]types.AttributeValue) (map[string]any, error) {
	var data map[string]any
	if err := attributevalue.UnmarshalMap(item, &data); err != nil {
		return nil, fmt.Errorf("unmarshal item: %w", err)
	}
	delete(data, attrPK)
	delete(data, attrSK)
	return data, nil
}
