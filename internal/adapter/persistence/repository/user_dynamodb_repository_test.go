package repository

import (
	"context"
	"testing"
	"time"

	"equine_billing/internal/domain/entities"
	"equine_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/require"
)

func TestUserDynamoRepository_GetByID(t *testing.T) {
	stored := entities.User{
		ID:    "u1",
		Email: "alice@example.com",
		Type:  entities.UserTypeHorseManager,
		Token: "device-1",
		HorseManager: &entities.HorseManager{
			Name:     "Alice",
			Customer: &entities.BillingCustomer{ID: "cus_1", DefaultSource: "card_1", Cards: []entities.Card{{ID: "card_1", Brand: "Visa", Last4: "4242", ExpMonth: 4, ExpYear: 2030}}},
		},
		ServiceProvider: &entities.ServiceProvider{Name: "Alice Farrier", Account: &entities.PayoutAccount{ID: "acct_1", PayoutsEnabled: true}},
		CreatedAt:       time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	av, err := attributevalue.MarshalMap(toUserItem(stored))
	require.NoError(t, err)

	ddb := &fakeDynamo{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		return &dynamodb.GetItemOutput{Item: av}, nil
	}}
	got, err := NewUserDynamoRepository(ddb, "users").GetByID(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, "u1", got.HorseManager.UserID)
	require.Equal(t, "u1", got.ServiceProvider.UserID)
	require.True(t, got.CanBeCharged())
	require.Equal(t, "acct_1", got.ServiceProvider.PayoutAccountID())
	require.Equal(t, stored.HorseManager.Customer.Cards, got.HorseManager.Customer.Cards)
	require.True(t, got.CreatedAt.Equal(stored.CreatedAt))
}

func TestUserDynamoRepository_GetByIDMissing(t *testing.T) {
	ddb := &fakeDynamo{getItem: func(*dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
		return &dynamodb.GetItemOutput{}, nil
	}}
	got, err := NewUserDynamoRepository(ddb, "users").GetByID(context.Background(), "ghost")
	require.NoError(t, err)
	require.Empty(t, got.ID)
}

func TestUserDynamoRepository_UpdateCustomer(t *testing.T) {
	t.Run("sets nested customer", func(t *testing.T) {
		ddb := &fakeDynamo{}
		err := NewUserDynamoRepository(ddb, "users").UpdateCustomer(context.Background(), "u1", &entities.BillingCustomer{ID: "cus_1"})
		require.NoError(t, err)

		in := ddb.updates[0]
		require.Equal(t, "SET #hm.#customer = :customer", aws.ToString(in.UpdateExpression))
		require.Equal(t, "attribute_exists(#hm)", aws.ToString(in.ConditionExpression))
		m, ok := in.ExpressionAttributeValues[":customer"].(*types.AttributeValueMemberM)
		require.True(t, ok)
		require.Equal(t, str("cus_1"), m.Value["id"])
	})

	t.Run("nil removes", func(t *testing.T) {
		ddb := &fakeDynamo{}
		require.NoError(t, NewUserDynamoRepository(ddb, "users").UpdateCustomer(context.Background(), "u1", nil))
		require.Equal(t, "REMOVE #hm.#customer", aws.ToString(ddb.updates[0].UpdateExpression))
	})

	t.Run("no manager profile", func(t *testing.T) {
		ddb := &fakeDynamo{updateItem: func(*dynamodb.UpdateItemInput) (*dynamodb.UpdateItemOutput, error) {
			return nil, &types.ConditionalCheckFailedException{}
		}}
		err := NewUserDynamoRepository(ddb, "users").UpdateCustomer(context.Background(), "u1", &entities.BillingCustomer{ID: "cus_1"})
		require.ErrorIs(t, err, interfaces.ErrConditionFailed)
	})
}

func TestHorseOwnerDynamoRepository_ListByHorseID(t *testing.T) {
	av, err := attributevalue.MarshalMap(horseOwnerItem{ID: "o1", HorseID: "h1", UserID: "m1", Percentage: "62.5"})
	require.NoError(t, err)
	ddb := &fakeDynamo{query: func(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
		require.Equal(t, horseOwnersHorseIDIndex, aws.ToString(in.IndexName))
		require.Equal(t, str("h1"), in.ExpressionAttributeValues[":v"])
		return &dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{av}}, nil
	}}

	got, err := NewHorseOwnerDynamoRepository(ddb, "horse_owners").ListByHorseID(context.Background(), "h1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "62.5", got[0].Percentage.String())
}
