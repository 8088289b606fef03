package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/amolwakchaure-sudo/TaskManagementProject/services/tasks/internal/models"
)

// DynamoTaskStore persists task documents in a DynamoDB table keyed by id.
type DynamoTaskStore struct {
	db        *dynamodb.Client
	tableName string
}

func NewDynamoTaskStore(ctx context.Context, region, endpoint, table string) (*DynamoTaskStore, error) {
	if table == "" {
		return nil, fmt.Errorf("dynamo table name is required")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	return &DynamoTaskStore{db: client, tableName: table}, nil
}

func (s *DynamoTaskStore) GetByID(ctx context.Context, id string) (*models.Task, error) {
	out, err := s.db.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, nil
	}

	var rec taskRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, err
	}
	return rec.toTask(), nil
}

func (s *DynamoTaskStore) Query(ctx context.Context, filter TaskFilter) ([]*models.Task, error) {
	var exprs []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	if filter.Status != "" {
		exprs = append(exprs, "#st = :status")
		names["#st"] = "status"
		values[":status"] = &types.AttributeValueMemberS{Value: filter.Status}
	}
	if filter.AssigneeID != "" {
		exprs = append(exprs, "assignee_id = :assignee")
		values[":assignee"] = &types.AttributeValueMemberS{Value: filter.AssigneeID}
	}
	if filter.CreatedFrom != nil {
		exprs = append(exprs, "created_at >= :from")
		values[":from"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(filter.CreatedFrom.UnixMilli(), 10)}
	}
	if filter.CreatedTo != nil {
		exprs = append(exprs, "created_at <= :to")
		values[":to"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(filter.CreatedTo.UnixMilli(), 10)}
	}

	input := &dynamodb.ScanInput{TableName: aws.String(s.tableName)}
	if len(exprs) > 0 {
		input.FilterExpression = aws.String(strings.Join(exprs, " AND "))
		input.ExpressionAttributeValues = values
		if len(names) > 0 {
			input.ExpressionAttributeNames = names
		}
	}

	var tasks []*models.Task
	for {
		out, err := s.db.Scan(ctx, input)
		if err != nil {
			return nil, err
		}

		var records []taskRecord
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
			return nil, err
		}
		for _, rec := range records {
			tasks = append(tasks, rec.toTask())
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return tasks, nil
}

func (s *DynamoTaskStore) Insert(ctx context.Context, task *models.Task) error {
	return s.put(ctx, task)
}

// Replace is a full-document overwrite; PutItem already has those semantics.
func (s *DynamoTaskStore) Replace(ctx context.Context, task *models.Task) error {
	return s.put(ctx, task)
}

func (s *DynamoTaskStore) put(ctx context.Context, task *models.Task) error {
	item, err := attributevalue.MarshalMap(newTaskRecord(task))
	if err != nil {
		return err
	}

	_, err = s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	return err
}

func (s *DynamoTaskStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}
