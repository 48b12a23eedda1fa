package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"equine_billing/internal/domain/entities"
	"equine_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestInvoiceDynamoRepository_MarkFullPaid(t *testing.T) {
	paidAt := time.Date(2024, 3, 5, 8, 30, 0, 0, time.UTC)

	t.Run("one transaction", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewInvoiceDynamoRepository(ddb, "invoices", "service_requests")

		require.NoError(t, repo.MarkFullPaid(context.Background(), "inv1", []string{"r1", "r2"}, paidAt))
		require.Len(t, ddb.transacts, 1)

		items := ddb.transacts[0].TransactItems
		require.Len(t, items, 3)
		require.Equal(t, "invoices", aws.ToString(items[0].Update.TableName))
		require.Contains(t, aws.ToString(items[0].Update.ConditionExpression), "#status <> :full_paid")
		require.Equal(t, str("fullPaid"), items[0].Update.ExpressionAttributeValues[":full_paid"])
		for _, it := range items[1:] {
			require.Equal(t, "service_requests", aws.ToString(it.Update.TableName))
			require.Equal(t, str("paid"), it.Update.ExpressionAttributeValues[":paid"])
		}
		require.Equal(t, idKey("r2"), items[2].Update.Key)
	})

	t.Run("already settled", func(t *testing.T) {
		ddb := &fakeDynamo{transact: func(*dynamodb.TransactWriteItemsInput) (*dynamodb.TransactWriteItemsOutput, error) {
			return nil, &types.TransactionCanceledException{
				CancellationReasons: []types.CancellationReason{{Code: aws.String("ConditionalCheckFailed")}, {Code: aws.String("None")}},
			}
		}}
		err := NewInvoiceDynamoRepository(ddb, "invoices", "service_requests").MarkFullPaid(context.Background(), "inv1", []string{"r1"}, paidAt)
		require.ErrorIs(t, err, interfaces.ErrConditionFailed)
	})

	t.Run("too many requests", func(t *testing.T) {
		ids := make([]string, maxTransactRequests+1)
		for i := range ids {
			ids[i] = fmt.Sprintf("r%d", i)
		}
		ddb := &fakeDynamo{}
		err := NewInvoiceDynamoRepository(ddb, "invoices", "service_requests").MarkFullPaid(context.Background(), "inv1", ids, paidAt)
		require.Error(t, err)
		require.Empty(t, ddb.transacts)
	})
}

func TestInvoiceDynamoRepository_ListPage(t *testing.T) {
	item := func(id string) map[string]types.AttributeValue {
		av, err := attributevalue.MarshalMap(toInvoiceItem(entities.Invoice{ID: id, Status: entities.InvoiceStatusPending, Tip: decimal.NewFromInt(2)}))
		require.NoError(t, err)
		return av
	}

	calls := 0
	ddb := &fakeDynamo{scan: func(in *dynamodb.ScanInput) (*dynamodb.ScanOutput, error) {
		calls++
		switch calls {
		case 1:
			// A filtered page can come back short with more to read.
			return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{item("a")}, LastEvaluatedKey: idKey("x")}, nil
		default:
			return &dynamodb.ScanOutput{Items: []map[string]types.AttributeValue{item("b"), item("c")}, LastEvaluatedKey: idKey("c")}, nil
		}
	}}

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	got, err := NewInvoiceDynamoRepository(ddb, "invoices", "service_requests").ListPage(context.Background(),
		interfaces.InvoiceQuery{Status: entities.InvoiceStatusPending, CreatedFrom: from}, "z", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "a", got[0].ID)
	require.Equal(t, "b", got[1].ID)
	require.True(t, got[0].Tip.Equal(decimal.NewFromInt(2)))

	first := ddb.scans[0]
	require.Equal(t, idKey("z"), first.ExclusiveStartKey)
	require.Equal(t, "#status = :status AND created_at >= :from", aws.ToString(first.FilterExpression))
	require.Equal(t, int32(2), aws.ToInt32(first.Limit))
	require.Equal(t, idKey("x"), ddb.scans[1].ExclusiveStartKey)
}

func TestInvoiceItemRoundTrip(t *testing.T) {
	paid := time.Date(2024, 2, 3, 4, 5, 6, 7, time.UTC)
	inv := entities.Invoice{
		ID:            "inv1",
		Name:          "March",
		RequestIDs:    []string{"r1", "r2"},
		Tip:           decimal.RequireFromString("12.5"),
		Status:        entities.InvoiceStatusFullPaid,
		ListenerUsers: []entities.ListenerUser{{UserID: "p1", UserType: entities.UserTypeServiceProvider}},
		PaidAt:        &paid,
		CreatedAt:     paid.Add(-time.Hour),
	}

	got := fromInvoiceItem(toInvoiceItem(inv))
	require.Equal(t, inv.RequestIDs, got.RequestIDs)
	require.True(t, got.Tip.Equal(inv.Tip))
	require.Equal(t, inv.ListenerUsers, got.ListenerUsers)
	require.NotNil(t, got.PaidAt)
	require.True(t, got.PaidAt.Equal(paid))
	require.True(t, got.UpdatedAt.IsZero())
}
