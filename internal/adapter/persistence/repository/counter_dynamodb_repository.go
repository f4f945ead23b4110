package repository

import (
	"context"
	"fmt"
	"strconv"

	"mtr_backend/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCountersTableName = "counters"

// CounterDynamoRepository allocates sequence values from per-key counter
// items.
//
// Table requirements:
//   - PK: key (string)
//
// Next relies on UpdateItem ADD semantics: ADD on a missing item creates it
// with an implicit 0 before applying the increment, and the whole
// read-modify-write is atomic on the item. Two concurrent calls for the same
// key therefore always observe distinct values, across any number of
// service instances.

type CounterDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICounterRepository = (*CounterDynamoRepository)(nil)

func NewCounterDynamoRepository(ddb *dynamodb.Client) *CounterDynamoRepository {
	return &CounterDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *CounterDynamoRepository) Next(ctx context.Context, key string) (int, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		UpdateExpression: aws.String("ADD #seq :one"),
		ExpressionAttributeNames: map[string]string{
			"#seq": "seq",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		return 0, err
	}
	return counterValue(out.Attributes)
}

func (r *CounterDynamoRepository) Current(ctx context.Context, key string) (int, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, nil
	}
	return counterValue(out.Item)
}

func counterValue(attrs map[string]types.AttributeValue) (int, error) {
	raw, ok := attrs["seq"]
	if !ok {
		return 0, fmt.Errorf("counter item has no seq attribute")
	}
	n, ok := raw.(*types.AttributeValueMemberN)
	if !ok {
		return 0, fmt.Errorf("counter seq attribute is not a number")
	}
	v, err := strconv.Atoi(n.Value)
	if err != nil {
		return 0, fmt.Errorf("parse counter seq %q: %w", n.Value, err)
	}
	return v, nil
}
