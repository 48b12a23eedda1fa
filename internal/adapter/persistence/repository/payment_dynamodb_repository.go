package repository

import (
	"context"
	"fmt"

	"equine_billing/internal/domain/entities"
	"equine_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	paymentsInvoiceIDIndex  = "invoice_id-index"
	approversCreatorIDIndex = "creator_id-index"

	// BatchGetItem reads at most 100 keys per call.
	batchGetLimit = 100
	// Retries of unprocessed keys before giving up.
	batchGetRetries = 5
)

type paymentItem struct {
	ID                string `dynamodbav:"id"`
	InvoiceID         string `dynamodbav:"invoice_id"`
	PayerID           string `dynamodbav:"payer_id"`
	PaymentApproverID string `dynamodbav:"payment_approver_id,omitempty"`
	ServiceProviderID string `dynamodbav:"service_provider_id,omitempty"`
	ChargeID          string `dynamodbav:"charge_id,omitempty"`
	Amount            string `dynamodbav:"amount"`
	Tip               string `dynamodbav:"tip"`
	IsPaidOutsideApp  bool   `dynamodbav:"is_paid_outside_app"`
	CreatedAt         string `dynamodbav:"created_at"`
}

type paymentApproverItem struct {
	ID        string `dynamodbav:"id"`
	CreatorID string `dynamodbav:"creator_id"`
	UserID    string `dynamodbav:"user_id"`
	Name      string `dynamodbav:"name,omitempty"`
	AvatarURL string `dynamodbav:"avatar_url,omitempty"`
	Amount    string `dynamodbav:"amount,omitempty"`
}

// PaymentDynamoRepository persists payments in DynamoDB. Payment ids are
// derived from invoice and payer, so the create condition keeps one
// payment per payer per invoice.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_id-index (PK: invoice_id)
type PaymentDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb DynamoAPI, tableName string) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		if isConditionalCheckFailed(err) {
			return entities.Payment{}, interfaces.ErrAlreadyExists
		}
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	var it paymentItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, true, &it)
	if err != nil || !found {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

// ListByIDs reads the payments with the given ids using strongly consistent
// reads. Missing ids are skipped.
func (r *PaymentDynamoRepository) ListByIDs(ctx context.Context, ids []string) ([]entities.Payment, error) {
	var payments []entities.Payment
	for start := 0; start < len(ids); start += batchGetLimit {
		chunk := ids[start:min(start+batchGetLimit, len(ids))]
		keys := make([]map[string]types.AttributeValue, 0, len(chunk))
		for _, id := range chunk {
			keys = append(keys, idKey(id))
		}

		pending := map[string]types.KeysAndAttributes{
			r.tableName: {Keys: keys, ConsistentRead: aws.Bool(true)},
		}
		for attempt := 0; len(pending) > 0; attempt++ {
			if attempt == batchGetRetries {
				return nil, fmt.Errorf("batch get payments: %d keys left unprocessed", len(pending[r.tableName].Keys))
			}
			out, err := r.ddb.BatchGetItem(ctx, &dynamodb.BatchGetItemInput{RequestItems: pending})
			if err != nil {
				return nil, err
			}
			for _, item := range out.Responses[r.tableName] {
				var it paymentItem
				if err := attributevalue.UnmarshalMap(item, &it); err != nil {
					return nil, err
				}
				payments = append(payments, fromPaymentItem(it))
			}
			pending = out.UnprocessedKeys
		}
	}
	return payments, nil
}

func (r *PaymentDynamoRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, paymentsInvoiceIDIndex, "invoice_id", invoiceID)
	if err != nil {
		return nil, err
	}
	payments := make([]entities.Payment, 0, len(raw))
	for _, item := range raw {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		payments = append(payments, fromPaymentItem(it))
	}
	return payments, nil
}

// PaymentApproverDynamoRepository reads the approvers each payer registered.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: creator_id-index (PK: creator_id)
type PaymentApproverDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IPaymentApproverRepository = (*PaymentApproverDynamoRepository)(nil)

func NewPaymentApproverDynamoRepository(ddb DynamoAPI, tableName string) *PaymentApproverDynamoRepository {
	return &PaymentApproverDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *PaymentApproverDynamoRepository) ListByCreatorID(ctx context.Context, creatorID string) ([]entities.PaymentApprover, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, approversCreatorIDIndex, "creator_id", creatorID)
	if err != nil {
		return nil, err
	}
	approvers := make([]entities.PaymentApprover, 0, len(raw))
	for _, item := range raw {
		var it paymentApproverItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		approvers = append(approvers, entities.PaymentApprover{
			ID:        it.ID,
			CreatorID: it.CreatorID,
			UserID:    it.UserID,
			Name:      it.Name,
			AvatarURL: it.AvatarURL,
			Amount:    parseDecimal(it.Amount),
		})
	}
	return approvers, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                p.ID,
		InvoiceID:         p.InvoiceID,
		PayerID:           p.PayerID,
		PaymentApproverID: p.PaymentApproverID,
		ServiceProviderID: p.ServiceProviderID,
		ChargeID:          p.ChargeID,
		Amount:            formatDecimal(p.Amount),
		Tip:               formatDecimal(p.Tip),
		IsPaidOutsideApp:  p.IsPaidOutsideApp,
		CreatedAt:         formatTime(p.CreatedAt),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:                it.ID,
		InvoiceID:         it.InvoiceID,
		PayerID:           it.PayerID,
		PaymentApproverID: it.PaymentApproverID,
		ServiceProviderID: it.ServiceProviderID,
		ChargeID:          it.ChargeID,
		Amount:            parseDecimal(it.Amount),
		Tip:               parseDecimal(it.Tip),
		IsPaidOutsideApp:  it.IsPaidOutsideApp,
		CreatedAt:         parseTime(it.CreatedAt),
	}
}
