package repository

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

func TestHorseDynamoRepository_GetByID(t *testing.T) {
	ddb := &fakeDynamo{getItem: func(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		if in.Key["id"].(*types.AttributeValueMemberS).Value != "h1" {
			return &dynamodb.GetItemOutput{}, nil
		}
		return &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
			"id":         str("h1"),
			"barn_name":  str("Star"),
			"trainer_id": str("m2"),
			"owner_ids":  &types.AttributeValueMemberL{Value: []types.AttributeValue{str("m1"), str("m3")}},
			"is_deleted": &types.AttributeValueMemberBOOL{Value: false},
			"created_at": str("2024-01-02T03:04:05.000000000Z"),
		}}, nil
	}}
	repo := NewHorseDynamoRepository(ddb, "horses")

	h, err := repo.GetByID(context.Background(), "h1")
	require.NoError(t, err)
	require.Equal(t, "Star", h.BarnName)
	require.Equal(t, "m2", h.TrainerID)
	require.Equal(t, []string{"m1", "m3"}, h.OwnerIDs)
	require.Equal(t, 2024, h.CreatedAt.Year())
	require.False(t, aws.ToBool(ddb.gets[0].ConsistentRead))

	missing, err := repo.GetByID(context.Background(), "h9")
	require.NoError(t, err)
	require.Empty(t, missing.ID)

	_, err = repo.GetByID(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, ddb.gets, 2)
}

func TestServiceShowDynamoRepository_GetByID(t *testing.T) {
	ddb := &fakeDynamo{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		return &dynamodb.GetItemOutput{Item: map[string]types.AttributeValue{
			"id":   str("s1"),
			"name": str("Spring Classic"),
		}}, nil
	}}
	show, err := NewServiceShowDynamoRepository(ddb, "service_shows").GetByID(context.Background(), "s1")
	require.NoError(t, err)
	require.Equal(t, "Spring Classic", show.Name)
	require.Equal(t, "service_shows", aws.ToString(ddb.gets[0].TableName))
}
