package repository

import (
	"context"
	"time"

	"upay_gateway/internal/domain/entities"
	"upay_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	DefaultGatewayCallsTableName = "gateway_calls"
	gatewayCallsOperationIndex   = "operation-index"
)

type gatewayCallItem struct {
	ID          string `dynamodbav:"id"`
	Operation   string `dynamodbav:"operation"`
	Reference   string `dynamodbav:"reference,omitempty"`
	Date        string `dynamodbav:"date"`
	Success     bool   `dynamodbav:"success"`
	Code        string `dynamodbav:"code,omitempty"`
	Message     string `dynamodbav:"message,omitempty"`
	RequestRaw  string `dynamodbav:"request_raw,omitempty"`
	ResponseRaw string `dynamodbav:"response_raw,omitempty"`
}

// DynamoDBAPI is the subset of *dynamodb.Client the repository needs.
type DynamoDBAPI interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
}

// GatewayCallDynamoRepository persists GatewayCall entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: operation-index (PK: operation, SK: date)

type GatewayCallDynamoRepository struct {
	ddb       DynamoDBAPI
	tableName string
}

var _ interfaces.IGatewayCallRepository = (*GatewayCallDynamoRepository)(nil)

func NewGatewayCallDynamoRepository(ddb DynamoDBAPI, tableName string) *GatewayCallDynamoRepository {
	if tableName == "" {
		tableName = DefaultGatewayCallsTableName
	}
	return &GatewayCallDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *GatewayCallDynamoRepository) Create(ctx context.Context, c entities.GatewayCall) (entities.GatewayCall, error) {
	av, err := attributevalue.MarshalMap(toGatewayCallItem(c))
	if err != nil {
		return entities.GatewayCall{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.GatewayCall{}, err
	}
	return c, nil
}

// GetByID returns a zero GatewayCall when no item matches.
func (r *GatewayCallDynamoRepository) GetByID(ctx context.Context, id string) (entities.GatewayCall, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.GatewayCall{}, err
	}
	if len(out.Item) == 0 {
		return entities.GatewayCall{}, nil
	}

	var it gatewayCallItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.GatewayCall{}, err
	}
	return fromGatewayCallItem(it), nil
}

// ListByOperation returns the calls of one operation, newest first, following
// every result page.
func (r *GatewayCallDynamoRepository) ListByOperation(ctx context.Context, operation entities.GatewayOperation) ([]entities.GatewayCall, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(gatewayCallsOperationIndex),
		KeyConditionExpression: aws.String("#op = :op"),
		ExpressionAttributeNames: map[string]string{
			"#op": "operation",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":op": &types.AttributeValueMemberS{Value: string(operation)},
		},
		ScanIndexForward: aws.Bool(false),
	}

	items := []entities.GatewayCall{}
	for {
		out, err := r.ddb.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it gatewayCallItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromGatewayCallItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return items, nil
}

func toGatewayCallItem(c entities.GatewayCall) gatewayCallItem {
	return gatewayCallItem{
		ID:          c.ID,
		Operation:   string(c.Operation),
		Reference:   c.Reference,
		Date:        c.Date.UTC().Format(time.RFC3339Nano),
		Success:     c.Success,
		Code:        c.Code,
		Message:     c.Message,
		RequestRaw:  string(c.RequestRaw),
		ResponseRaw: string(c.ResponseRaw),
	}
}

func fromGatewayCallItem(it gatewayCallItem) entities.GatewayCall {
	dt, _ := time.Parse(time.RFC3339Nano, it.Date)
	c := entities.GatewayCall{
		ID:        it.ID,
		Operation: entities.GatewayOperation(it.Operation),
		Reference: it.Reference,
		Date:      dt,
		Success:   it.Success,
		Code:      it.Code,
		Message:   it.Message,
	}
	if it.RequestRaw != "" {
		c.RequestRaw = []byte(it.RequestRaw)
	}
	if it.ResponseRaw != "" {
		c.ResponseRaw = []byte(it.ResponseRaw)
	}
	return c
}
