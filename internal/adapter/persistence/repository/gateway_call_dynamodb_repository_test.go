package repository

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"upay_gateway/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDynamo keeps items in memory and serves queries one item per page.
type fakeDynamo struct {
	items   []map[string]types.AttributeValue
	queries []*dynamodb.QueryInput
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	id := in.Item["id"].(*types.AttributeValueMemberS).Value
	for _, it := range f.items {
		if it["id"].(*types.AttributeValueMemberS).Value == id {
			return nil, &types.ConditionalCheckFailedException{Message: aws.String("exists")}
		}
	}
	f.items = append(f.items, in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	id := in.Key["id"].(*types.AttributeValueMemberS).Value
	for _, it := range f.items {
		if it["id"].(*types.AttributeValueMemberS).Value == id {
			return &dynamodb.GetItemOutput{Item: it}, nil
		}
	}
	return &dynamodb.GetItemOutput{}, nil
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queries = append(f.queries, in)
	op := in.ExpressionAttributeValues[":op"].(*types.AttributeValueMemberS).Value

	var matched []map[string]types.AttributeValue
	for _, it := range f.items {
		if it["operation"].(*types.AttributeValueMemberS).Value == op {
			matched = append(matched, it)
		}
	}

	start := 0
	if in.ExclusiveStartKey != nil {
		start, _ = strconv.Atoi(in.ExclusiveStartKey["page"].(*types.AttributeValueMemberN).Value)
	}
	if start >= len(matched) {
		return &dynamodb.QueryOutput{}, nil
	}
	out := &dynamodb.QueryOutput{Items: matched[start : start+1]}
	if start+1 < len(matched) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"page": &types.AttributeValueMemberN{Value: strconv.Itoa(start + 1)},
		}
	}
	return out, nil
}

func TestGatewayCallItemMapping(t *testing.T) {
	date := time.Date(2026, 3, 1, 12, 30, 0, 123, time.UTC)
	c := entities.GatewayCall{
		ID:          "c-1",
		Operation:   entities.GatewayOperationBulkRefund,
		Reference:   "T1,T2",
		Date:        date,
		Success:     false,
		Code:        "MPR_400",
		Message:     "Bulk refund failed: nope",
		RequestRaw:  []byte(`[{"txn_id":"T1","refund_amount":1}]`),
		ResponseRaw: nil,
	}

	it := toGatewayCallItem(c)
	assert.Equal(t, "bulk_refund", it.Operation)
	assert.Equal(t, "2026-03-01T12:30:00.000000123Z", it.Date)
	assert.Empty(t, it.ResponseRaw)

	back := fromGatewayCallItem(it)
	assert.Equal(t, c.ID, back.ID)
	assert.Equal(t, c.Operation, back.Operation)
	assert.True(t, c.Date.Equal(back.Date))
	assert.Equal(t, string(c.RequestRaw), string(back.RequestRaw))
	assert.Nil(t, back.ResponseRaw)
}

func TestGatewayCallDynamoRepository(t *testing.T) {
	ctx := context.Background()
	ddb := &fakeDynamo{}
	repo := NewGatewayCallDynamoRepository(ddb, "")
	assert.Equal(t, DefaultGatewayCallsTableName, repo.tableName)

	now := time.Now().UTC()
	calls := []entities.GatewayCall{
		{ID: "c-1", Operation: entities.GatewayOperationPaymentStatus, Reference: "T1", Date: now, Success: true},
		{ID: "c-2", Operation: entities.GatewayOperationBulkRefund, Reference: "T1", Date: now, Success: true},
		{ID: "c-3", Operation: entities.GatewayOperationPaymentStatus, Reference: "T2", Date: now, Code: "PS4004"},
	}
	for _, c := range calls {
		_, err := repo.Create(ctx, c)
		require.NoError(t, err)
	}

	t.Run("duplicate id is rejected", func(t *testing.T) {
		_, err := repo.Create(ctx, calls[0])
		var condErr *types.ConditionalCheckFailedException
		assert.True(t, errors.As(err, &condErr))
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "c-3")
		require.NoError(t, err)
		assert.Equal(t, "T2", got.Reference)
		assert.Equal(t, "PS4004", got.Code)
		assert.False(t, got.Success)
	})

	t.Run("get missing", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "nope")
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("list follows pages", func(t *testing.T) {
		ddb.queries = nil
		got, err := repo.ListByOperation(ctx, entities.GatewayOperationPaymentStatus)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "c-1", got[0].ID)
		assert.Equal(t, "c-3", got[1].ID)

		require.Len(t, ddb.queries, 2)
		assert.Equal(t, gatewayCallsOperationIndex, aws.ToString(ddb.queries[0].IndexName))
		assert.False(t, aws.ToBool(ddb.queries[0].ScanIndexForward))
	})

	t.Run("list empty", func(t *testing.T) {
		got, err := repo.ListByOperation(ctx, entities.GatewayOperationAuthenticate)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
