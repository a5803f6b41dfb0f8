package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/jsphweid/harmondrill/model"
	"github.com/stretchr/testify/assert"
)

func entry(session string, seq int) model.HistoryEntry {
	return model.HistoryEntry{
		SessionID: session,
		Seq:       seq,
		At:        time.Date(2022, 7, 1, 12, 0, seq, 0, time.UTC),
		Chord: model.Chord{
			Root:         1,
			KeySignature: model.KeyC,
			Mode:         model.Major,
			Voicing:      model.Voicing{model.V(1, 0), model.V(3, 0), model.V(5, 0), model.V(1, 1)},
			Pitches:      model.Pitches{60, 55, 52, 48},
		},
		Displayed: model.Pitches{60, 55, 52, 48},
		Label:     "I",
	}
}

func TestMemoryStoreKeepsOrderPerSession(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	assert.NoError(t, s.Append(ctx, entry("a", 1)))
	assert.NoError(t, s.Append(ctx, entry("b", 1)))
	assert.NoError(t, s.Append(ctx, entry("a", 2)))

	got, err := s.List(ctx, "a")
	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, got[0].Seq)
	assert.Equal(t, 2, got[1].Seq)

	got, err = s.List(ctx, "missing")
	assert.NoError(t, err)
	assert.Empty(t, got)
}

type fakeDynamo struct {
	dynamodbiface.DynamoDBAPI
	items  []map[string]*dynamodb.AttributeValue
	putErr error
}

func (f *fakeDynamo) PutItemWithContext(_ aws.Context, in *dynamodb.PutItemInput, _ ...request.Option) (*dynamodb.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.items = append(f.items, in.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamo) QueryPagesWithContext(_ aws.Context, in *dynamodb.QueryInput, fn func(*dynamodb.QueryOutput, bool) bool, _ ...request.Option) error {
	pk := *in.ExpressionAttributeValues[":pk"].S
	var page []map[string]*dynamodb.AttributeValue
	for _, item := range f.items {
		if *item["PK"].S == pk {
			page = append(page, item)
		}
	}
	fn(&dynamodb.QueryOutput{Items: page}, true)
	return nil
}

func TestDynamoStoreWritesKeyedItems(t *testing.T) {
	ctx := context.Background()
	fake := &fakeDynamo{}
	s := NewDynamoStore(fake, "history")

	assert.NoError(t, s.Append(ctx, entry("a", 1)))
	assert.NoError(t, s.Append(ctx, entry("b", 1)))
	assert.Len(t, fake.items, 2)
	assert.Equal(t, "a", *fake.items[0]["PK"].S)
	assert.Equal(t, "1", *fake.items[0]["SK"].N)

	got, err := s.List(ctx, "a")
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, entry("a", 1).Chord.Pitches, got[0].Chord.Pitches)
	assert.True(t, entry("a", 1).Chord.Voicing.Equal(got[0].Chord.Voicing))
}

func TestDynamoStoreWrapsErrors(t *testing.T) {
	s := NewDynamoStore(&fakeDynamo{putErr: errors.New("throttled")}, "history")
	err := s.Append(context.Background(), entry("a", 1))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "throttled")
	assert.Contains(t, err.Error(), "session a")
}
