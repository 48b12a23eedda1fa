package repository

import (
	"context"
	"errors"
	"time"

	"equine_billing/internal/domain/entities"
	"equine_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const serviceRequestsHorseDateIndex = "horse_id-request_date-index"

type serviceRequestItem struct {
	ID                string             `dynamodbav:"id"`
	HorseID           string             `dynamodbav:"horse_id"`
	HorseBarnName     string             `dynamodbav:"horse_barn_name,omitempty"`
	HorseDisplayName  string             `dynamodbav:"horse_display_name,omitempty"`
	ShowID            string             `dynamodbav:"show_id,omitempty"`
	CompetitionClass  string             `dynamodbav:"competition_class,omitempty"`
	ServiceProviderID string             `dynamodbav:"service_provider_id"`
	AssignerID        string             `dynamodbav:"assigner_id,omitempty"`
	CreatorID         string             `dynamodbav:"creator_id,omitempty"`
	Instruction       string             `dynamodbav:"instruction,omitempty"`
	ProviderNote      string             `dynamodbav:"provider_note,omitempty"`
	Services          []serviceLineItem  `dynamodbav:"services"`
	Status            string             `dynamodbav:"status"`
	IsCustomRequest   bool               `dynamodbav:"is_custom_request"`
	DismissedBy       []string           `dynamodbav:"dismissed_by,omitempty"`
	ListenerUsers     []listenerUserItem `dynamodbav:"listener_users,omitempty"`
	RequestDate       string             `dynamodbav:"request_date"`
	CreatedAt         string             `dynamodbav:"created_at"`
	UpdatedAt         string             `dynamodbav:"updated_at"`
}

type serviceLineItem struct {
	ID       string `dynamodbav:"id,omitempty"`
	Name     string `dynamodbav:"name"`
	Rate     string `dynamodbav:"rate"`
	Quantity int    `dynamodbav:"quantity"`
}

type listenerUserItem struct {
	UserID   string `dynamodbav:"user_id"`
	UserType string `dynamodbav:"user_type"`
}

// ServiceRequestDynamoRepository persists service requests in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: horse_id-request_date-index (PK: horse_id, SK: request_date)
type ServiceRequestDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceRequestRepository = (*ServiceRequestDynamoRepository)(nil)

func NewServiceRequestDynamoRepository(ddb DynamoAPI, tableName string) *ServiceRequestDynamoRepository {
	return &ServiceRequestDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceRequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceRequest, error) {
	var it serviceRequestItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, true, &it)
	if err != nil || !found {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

// ListPage returns up to limit requests after the request afterID. Horse
// queries use the horse index newest first; other queries scan the table.
func (r *ServiceRequestDynamoRepository) ListPage(ctx context.Context, q interfaces.ServiceRequestQuery, afterID string, limit int) ([]entities.ServiceRequest, error) {
	start, err := r.startKey(ctx, q, afterID)
	if err != nil {
		return nil, err
	}

	values := map[string]types.AttributeValue{}
	var page pageFunc
	if q.HorseID != "" {
		values[":horse_id"] = str(q.HorseID)
		cond := rangeCondition("horse_id = :horse_id", "request_date", q.RequestFrom, q.RequestTo, values)
		page = func(ctx context.Context, start map[string]types.AttributeValue) ([]map[string]types.AttributeValue, map[string]types.AttributeValue, error) {
			out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
				TableName:                 aws.String(r.tableName),
				IndexName:                 aws.String(serviceRequestsHorseDateIndex),
				KeyConditionExpression:    aws.String(cond),
				ExpressionAttributeValues: values,
				ScanIndexForward:          aws.Bool(false),
				ExclusiveStartKey:         start,
				Limit:                     pageLimit(limit),
			})
			if err != nil {
				return nil, nil, err
			}
			return out.Items, out.LastEvaluatedKey, nil
		}
	} else {
		filter := rangeCondition("", "request_date", q.RequestFrom, q.RequestTo, values)
		page = func(ctx context.Context, start map[string]types.AttributeValue) ([]map[string]types.AttributeValue, map[string]types.AttributeValue, error) {
			in := &dynamodb.ScanInput{
				TableName:         aws.String(r.tableName),
				ExclusiveStartKey: start,
				Limit:             pageLimit(limit),
			}
			if filter != "" {
				in.FilterExpression = aws.String(filter)
				in.ExpressionAttributeValues = values
			}
			out, err := r.ddb.Scan(ctx, in)
			if err != nil {
				return nil, nil, err
			}
			return out.Items, out.LastEvaluatedKey, nil
		}
	}

	raw, err := collect(ctx, limit, start, page)
	if err != nil {
		return nil, err
	}
	return unmarshalServiceRequests(raw)
}

// startKey rebuilds the ExclusiveStartKey of the request a page ended on.
func (r *ServiceRequestDynamoRepository) startKey(ctx context.Context, q interfaces.ServiceRequestQuery, afterID string) (map[string]types.AttributeValue, error) {
	if afterID == "" {
		return nil, nil
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(afterID),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, nil
	}
	if q.HorseID != "" {
		return keyOf(out.Item, "id", "horse_id", "request_date"), nil
	}
	return keyOf(out.Item, "id"), nil
}

// UpdateStatus moves a request from one status to another. Returns
// ErrConditionFailed when the stored status is no longer from.
func (r *ServiceRequestDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.ServiceRequestStatus, at time.Time) (entities.ServiceRequest, error) {
	return r.update(ctx, id, "#status = :from",
		"SET #status = :to, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":from":       str(string(from)),
			":to":         str(string(to)),
			":updated_at": str(formatTime(at)),
		},
		map[string]string{"#status": "status", "#updated_at": "updated_at"},
	)
}

func (r *ServiceRequestDynamoRepository) UpdateAssigner(ctx context.Context, id, assignerID string, at time.Time) (entities.ServiceRequest, error) {
	return r.update(ctx, id, "",
		"SET #assigner_id = :assigner_id, #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":assigner_id": str(assignerID),
			":updated_at":  str(formatTime(at)),
		},
		map[string]string{"#assigner_id": "assigner_id", "#updated_at": "updated_at"},
	)
}

func (r *ServiceRequestDynamoRepository) AddDismissedBy(ctx context.Context, id, providerID string, at time.Time) error {
	_, err := r.update(ctx, id, "",
		"SET #dismissed_by = list_append(if_not_exists(#dismissed_by, :empty), :provider), #updated_at = :updated_at",
		map[string]types.AttributeValue{
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":provider":   &types.AttributeValueMemberL{Value: []types.AttributeValue{str(providerID)}},
			":updated_at": str(formatTime(at)),
		},
		map[string]string{"#dismissed_by": "dismissed_by", "#updated_at": "updated_at"},
	)
	return err
}

func (r *ServiceRequestDynamoRepository) UpdateListeners(ctx context.Context, id string, listeners []entities.ListenerUser) error {
	av, err := attributevalue.Marshal(toListenerItems(listeners))
	if err != nil {
		return err
	}
	_, err = r.update(ctx, id, "",
		"SET #listener_users = :listeners",
		map[string]types.AttributeValue{":listeners": av},
		map[string]string{"#listener_users": "listener_users"},
	)
	return err
}

// MarkInvoiced sets every listed request to invoiced. Paid and missing
// requests are left untouched.
func (r *ServiceRequestDynamoRepository) MarkInvoiced(ctx context.Context, ids []string, at time.Time) error {
	for _, id := range ids {
		_, err := r.update(ctx, id, "#status <> :paid",
			"SET #status = :invoiced, #updated_at = :updated_at",
			map[string]types.AttributeValue{
				":paid":       str(string(entities.ServiceRequestStatusPaid)),
				":invoiced":   str(string(entities.ServiceRequestStatusInvoiced)),
				":updated_at": str(formatTime(at)),
			},
			map[string]string{"#status": "status", "#updated_at": "updated_at"},
		)
		if err != nil && !errors.Is(err, interfaces.ErrConditionFailed) {
			return err
		}
	}
	return nil
}

func (r *ServiceRequestDynamoRepository) update(
	ctx context.Context,
	id string,
	condition string,
	updateExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.ServiceRequest, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       idKey(id),
		ConditionExpression:       aws.String(joinAnd("attribute_exists(#id)", condition)),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.ServiceRequest{}, interfaces.ErrConditionFailed
		}
		return entities.ServiceRequest{}, err
	}
	var it serviceRequestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ServiceRequest{}, err
	}
	return fromServiceRequestItem(it), nil
}

func unmarshalServiceRequests(raw []map[string]types.AttributeValue) ([]entities.ServiceRequest, error) {
	out := make([]entities.ServiceRequest, 0, len(raw))
	for _, item := range raw {
		var it serviceRequestItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		out = append(out, fromServiceRequestItem(it))
	}
	return out, nil
}

func toServiceRequestItem(req entities.ServiceRequest) serviceRequestItem {
	it := serviceRequestItem{
		ID:                req.ID,
		HorseID:           req.HorseID,
		HorseBarnName:     req.HorseBarnName,
		HorseDisplayName:  req.HorseDisplayName,
		ShowID:            req.ShowID,
		CompetitionClass:  req.CompetitionClass,
		ServiceProviderID: req.ServiceProviderID,
		AssignerID:        req.AssignerID,
		CreatorID:         req.CreatorID,
		Instruction:       req.Instruction,
		ProviderNote:      req.ProviderNote,
		Status:            string(req.Status),
		IsCustomRequest:   req.IsCustomRequest,
		DismissedBy:       req.DismissedBy,
		ListenerUsers:     toListenerItems(req.ListenerUsers),
		RequestDate:       formatTime(req.RequestDate),
		CreatedAt:         formatTime(req.CreatedAt),
		UpdatedAt:         formatTime(req.UpdatedAt),
	}
	for _, s := range req.Services {
		it.Services = append(it.Services, serviceLineItem{ID: s.ID, Name: s.Name, Rate: formatDecimal(s.Rate), Quantity: s.Quantity})
	}
	return it
}

func fromServiceRequestItem(it serviceRequestItem) entities.ServiceRequest {
	req := entities.ServiceRequest{
		ID:                it.ID,
		HorseID:           it.HorseID,
		HorseBarnName:     it.HorseBarnName,
		HorseDisplayName:  it.HorseDisplayName,
		ShowID:            it.ShowID,
		CompetitionClass:  it.CompetitionClass,
		ServiceProviderID: it.ServiceProviderID,
		AssignerID:        it.AssignerID,
		CreatorID:         it.CreatorID,
		Instruction:       it.Instruction,
		ProviderNote:      it.ProviderNote,
		Status:            entities.ServiceRequestStatus(it.Status),
		IsCustomRequest:   it.IsCustomRequest,
		DismissedBy:       it.DismissedBy,
		ListenerUsers:     fromListenerItems(it.ListenerUsers),
		RequestDate:       parseTime(it.RequestDate),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
	for _, s := range it.Services {
		req.Services = append(req.Services, entities.ServiceLine{ID: s.ID, Name: s.Name, Rate: parseDecimal(s.Rate), Quantity: s.Quantity})
	}
	return req
}

func toListenerItems(ls []entities.ListenerUser) []listenerUserItem {
	out := make([]listenerUserItem, 0, len(ls))
	for _, l := range ls {
		out = append(out, listenerUserItem{UserID: l.UserID, UserType: string(l.UserType)})
	}
	return out
}

func fromListenerItems(items []listenerUserItem) []entities.ListenerUser {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.ListenerUser, 0, len(items))
	for _, l := range items {
		out = append(out, entities.ListenerUser{UserID: l.UserID, UserType: entities.UserType(l.UserType)})
	}
	return out
}
