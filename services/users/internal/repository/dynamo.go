package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/amolwakchaure-sudo/TaskManagementProject/services/users/internal/models"
)

// userRecord is the DynamoDB shape of a user document.
type userRecord struct {
	ID           string `dynamodbav:"id"`
	Username     string `dynamodbav:"username"`
	PasswordHash string `dynamodbav:"password_hash"`
	Role         string `dynamodbav:"role"`
	CreatedAt    int64  `dynamodbav:"created_at"`
}

func newUserRecord(u *models.User) userRecord {
	return userRecord{
		ID:           u.ID,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt.UnixMilli(),
	}
}

func (r userRecord) toUser() *models.User {
	return &models.User{
		ID:           r.ID,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Role:         r.Role,
		CreatedAt:    time.UnixMilli(r.CreatedAt).UTC(),
	}
}

// DynamoUserStore persists user documents in a DynamoDB table keyed by id.
type DynamoUserStore struct {
	db        *dynamodb.Client
	tableName string
}

func NewDynamoUserStore(ctx context.Context, region, endpoint, table string) (*DynamoUserStore, error) {
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

	return &DynamoUserStore{db: client, tableName: table}, nil
}

func (s *DynamoUserStore) GetByID(ctx context.Context, id string) (*models.User, error) {
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

	var rec userRecord
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, err
	}
	return rec.toUser(), nil
}

func (s *DynamoUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	out, err := s.db.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(s.tableName),
		FilterExpression: aws.String("username = :username"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":username": &types.AttributeValueMemberS{Value: username},
		},
	})
	if err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, nil
	}

	var rec userRecord
	if err := attributevalue.UnmarshalMap(out.Items[0], &rec); err != nil {
		return nil, err
	}
	return rec.toUser(), nil
}

func (s *DynamoUserStore) List(ctx context.Context) ([]*models.User, error) {
	input := &dynamodb.ScanInput{TableName: aws.String(s.tableName)}

	var users []*models.User
	for {
		out, err := s.db.Scan(ctx, input)
		if err != nil {
			return nil, err
		}

		var records []userRecord
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &records); err != nil {
			return nil, err
		}
		for _, rec := range records {
			users = append(users, rec.toUser())
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
	return users, nil
}

func (s *DynamoUserStore) Insert(ctx context.Context, user *models.User) error {
	return s.put(ctx, user)
}

func (s *DynamoUserStore) Replace(ctx context.Context, user *models.User) error {
	return s.put(ctx, user)
}

func (s *DynamoUserStore) put(ctx context.Context, user *models.User) error {
	item, err := attributevalue.MarshalMap(newUserRecord(user))
	if err != nil {
		return err
	}

	_, err = s.db.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	return err
}

func (s *DynamoUserStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}
