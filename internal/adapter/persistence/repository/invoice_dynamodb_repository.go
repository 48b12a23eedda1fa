package repository

import (
	"context"
	"fmt"
	"time"

	"equine_billing/internal/domain/entities"
	"equine_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// DynamoDB caps a transaction at 100 items; one is the invoice itself.
const maxTransactRequests = 99

type invoiceItem struct {
	ID            string             `dynamodbav:"id"`
	Name          string             `dynamodbav:"name"`
	RequestIDs    []string           `dynamodbav:"request_ids"`
	Tip           string             `dynamodbav:"tip"`
	Status        string             `dynamodbav:"status"`
	ListenerUsers []listenerUserItem `dynamodbav:"listener_users,omitempty"`
	PaidAt        string             `dynamodbav:"paid_at,omitempty"`
	CreatedAt     string             `dynamodbav:"created_at"`
	UpdatedAt     string             `dynamodbav:"updated_at"`
}

// InvoiceDynamoRepository persists invoices. Settling an invoice also
// writes its requests, so it needs the service requests table too.
//
// Table requirements:
//   - PK: id (string)
type InvoiceDynamoRepository struct {
	ddb           DynamoAPI
	tableName     string
	requestsTable string
}

var _ interfaces.IInvoiceRepository = (*InvoiceDynamoRepository)(nil)

func NewInvoiceDynamoRepository(ddb DynamoAPI, tableName, requestsTable string) *InvoiceDynamoRepository {
	return &InvoiceDynamoRepository{ddb: ddb, tableName: tableName, requestsTable: requestsTable}
}

func (r *InvoiceDynamoRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	var it invoiceItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, true, &it)
	if err != nil || !found {
		return entities.Invoice{}, err
	}
	return fromInvoiceItem(it), nil
}

// ListPage scans up to limit invoices after the invoice afterID, applying
// the status and creation date filters server side.
func (r *InvoiceDynamoRepository) ListPage(ctx context.Context, q interfaces.InvoiceQuery, afterID string, limit int) ([]entities.Invoice, error) {
	values := map[string]types.AttributeValue{}
	names := map[string]string{}
	filter := ""
	if q.Status != "" {
		filter = "#status = :status"
		names["#status"] = "status"
		values[":status"] = str(string(q.Status))
	}
	filter = rangeCondition(filter, "created_at", q.CreatedFrom, q.CreatedTo, values)

	var start map[string]types.AttributeValue
	if afterID != "" {
		start = idKey(afterID)
	}
	raw, err := collect(ctx, limit, start, func(ctx context.Context, start map[string]types.AttributeValue) ([]map[string]types.AttributeValue, map[string]types.AttributeValue, error) {
		in := &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: start,
			Limit:             pageLimit(limit),
		}
		if filter != "" {
			in.FilterExpression = aws.String(filter)
			in.ExpressionAttributeValues = values
		}
		if len(names) > 0 {
			in.ExpressionAttributeNames = names
		}
		out, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, nil, err
		}
		return out.Items, out.LastEvaluatedKey, nil
	})
	if err != nil {
		return nil, err
	}

	invoices := make([]entities.Invoice, 0, len(raw))
	for _, item := range raw {
		var it invoiceItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		invoices = append(invoices, fromInvoiceItem(it))
	}
	return invoices, nil
}

func (r *InvoiceDynamoRepository) UpdateListeners(ctx context.Context, id string, listeners []entities.ListenerUser) error {
	av, err := attributevalue.Marshal(toListenerItems(listeners))
	if err != nil {
		return err
	}
	_, err = r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String("SET #listener_users = :listeners"),
		ExpressionAttributeNames:  map[string]string{"#id": "id", "#listener_users": "listener_users"},
		ExpressionAttributeValues: map[string]types.AttributeValue{":listeners": av},
	})
	if isConditionalCheckFailed(err) {
		return interfaces.ErrConditionFailed
	}
	return err
}

// MarkFullPaid settles the invoice and marks its requests paid in one
// transaction. Returns ErrConditionFailed if the invoice is missing or
// already settled.
func (r *InvoiceDynamoRepository) MarkFullPaid(ctx context.Context, invoiceID string, requestIDs []string, paidAt time.Time) error {
	if len(requestIDs) > maxTransactRequests {
		return fmt.Errorf("invoice %s has %d requests, more than one transaction can settle", invoiceID, len(requestIDs))
	}
	at := str(formatTime(paidAt))

	items := make([]types.TransactWriteItem, 0, len(requestIDs)+1)
	items = append(items, types.TransactWriteItem{
		Update: &types.Update{
			TableName:           aws.String(r.tableName),
			Key:                 idKey(invoiceID),
			ConditionExpression: aws.String("attribute_exists(#id) AND #status <> :full_paid"),
			UpdateExpression:    aws.String("SET #status = :full_paid, #paid_at = :at, #updated_at = :at"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#status":     "status",
				"#paid_at":    "paid_at",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":full_paid": str(string(entities.InvoiceStatusFullPaid)),
				":at":        at,
			},
		},
	})
	for _, id := range requestIDs {
		items = append(items, types.TransactWriteItem{
			Update: &types.Update{
				TableName:           aws.String(r.requestsTable),
				Key:                 idKey(id),
				ConditionExpression: aws.String("attribute_exists(#id)"),
				UpdateExpression:    aws.String("SET #status = :paid, #updated_at = :at"),
				ExpressionAttributeNames: map[string]string{
					"#id":         "id",
					"#status":     "status",
					"#updated_at": "updated_at",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":paid": str(string(entities.ServiceRequestStatusPaid)),
					":at":   at,
				},
			},
		})
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: items,
	})
	if isTransactionConditionFailed(err) {
		return interfaces.ErrConditionFailed
	}
	return err
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	it := invoiceItem{
		ID:            inv.ID,
		Name:          inv.Name,
		RequestIDs:    inv.RequestIDs,
		Tip:           formatDecimal(inv.Tip),
		Status:        string(inv.Status),
		ListenerUsers: toListenerItems(inv.ListenerUsers),
		CreatedAt:     formatTime(inv.CreatedAt),
		UpdatedAt:     formatTime(inv.UpdatedAt),
	}
	if inv.PaidAt != nil {
		it.PaidAt = formatTime(*inv.PaidAt)
	}
	return it
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	inv := entities.Invoice{
		ID:            it.ID,
		Name:          it.Name,
		RequestIDs:    it.RequestIDs,
		Tip:           parseDecimal(it.Tip),
		Status:        entities.InvoiceStatus(it.Status),
		ListenerUsers: fromListenerItems(it.ListenerUsers),
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
	if it.PaidAt != "" {
		paidAt := parseTime(it.PaidAt)
		inv.PaidAt = &paidAt
	}
	return inv
}
