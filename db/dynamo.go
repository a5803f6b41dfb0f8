package db

import (
	"context"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/harmondrill/model"
	"github.com/pkg/errors"
)

// DynamoStore writes history to a table keyed by PK (session id) and
// SK (sequence number).
type DynamoStore struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewDynamoStore(client dynamodbiface.DynamoDBAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

// NewDynamoClient connects to an explicit endpoint, which is how DynamoDB
// Local is reached.
func NewDynamoClient(endpoint, region string) (*dynamodb.DynamoDB, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a DynamoDB session")
	}
	return dynamodb.New(sess), nil
}

func (s *DynamoStore) Append(ctx context.Context, entry model.HistoryEntry) error {
	item, err := dynamodbattribute.MarshalMap(entry)
	if err != nil {
		return errors.Wrap(err, "could not marshal history entry")
	}
	_, err = s.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      item,
	})
	if err != nil {
		return errors.Wrapf(err, "could not write history for session %v", entry.SessionID)
	}
	return nil
}

func (s *DynamoStore) List(ctx context.Context, sessionID string) ([]model.HistoryEntry, error) {
	var res []model.HistoryEntry
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.table),
		KeyConditionExpression: aws.String("PK = :pk"),
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":pk": {S: aws.String(sessionID)},
		},
		ScanIndexForward: aws.Bool(true),
	}

	var unmarshalErr error
	err := s.client.QueryPagesWithContext(ctx, input, func(page *dynamodb.QueryOutput, _ bool) bool {
		var entries []model.HistoryEntry
		if err := dynamodbattribute.UnmarshalListOfMaps(page.Items, &entries); err != nil {
			unmarshalErr = err
			return false
		}
		res = append(res, entries...)
		return true
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not query history for session %v", sessionID)
	}
	if unmarshalErr != nil {
		return nil, errors.Wrap(unmarshalErr, "could not unmarshal history")
	}
	return res, nil
}
