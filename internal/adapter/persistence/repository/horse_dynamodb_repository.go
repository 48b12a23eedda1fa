package repository

import (
	"context"

	"equine_billing/internal/domain/entities"
	"equine_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const horseOwnersHorseIDIndex = "horse_id-index"

type horseItem struct {
	ID          string   `dynamodbav:"id"`
	BarnName    string   `dynamodbav:"barn_name"`
	DisplayName string   `dynamodbav:"display_name,omitempty"`
	AvatarURL   string   `dynamodbav:"avatar_url,omitempty"`
	TrainerID   string   `dynamodbav:"trainer_id,omitempty"`
	CreatorID   string   `dynamodbav:"creator_id,omitempty"`
	LeaserID    string   `dynamodbav:"leaser_id,omitempty"`
	OwnerIDs    []string `dynamodbav:"owner_ids,omitempty"`
	IsDeleted   bool     `dynamodbav:"is_deleted"`
	CreatedAt   string   `dynamodbav:"created_at"`
}

type horseOwnerItem struct {
	ID         string `dynamodbav:"id"`
	HorseID    string `dynamodbav:"horse_id"`
	UserID     string `dynamodbav:"user_id"`
	Name       string `dynamodbav:"name,omitempty"`
	AvatarURL  string `dynamodbav:"avatar_url,omitempty"`
	Percentage string `dynamodbav:"percentage"`
	CreatedAt  string `dynamodbav:"created_at"`
}

type serviceShowItem struct {
	ID        string `dynamodbav:"id"`
	Name      string `dynamodbav:"name"`
	CreatedAt string `dynamodbav:"created_at"`
}

// HorseDynamoRepository reads horses.
//
// Table requirements:
//   - PK: id (string)
type HorseDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IHorseRepository = (*HorseDynamoRepository)(nil)

func NewHorseDynamoRepository(ddb DynamoAPI, tableName string) *HorseDynamoRepository {
	return &HorseDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *HorseDynamoRepository) GetByID(ctx context.Context, id string) (entities.Horse, error) {
	var it horseItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, false, &it)
	if err != nil || !found {
		return entities.Horse{}, err
	}
	return entities.Horse{
		ID:          it.ID,
		BarnName:    it.BarnName,
		DisplayName: it.DisplayName,
		AvatarURL:   it.AvatarURL,
		TrainerID:   it.TrainerID,
		CreatorID:   it.CreatorID,
		LeaserID:    it.LeaserID,
		OwnerIDs:    it.OwnerIDs,
		IsDeleted:   it.IsDeleted,
		CreatedAt:   parseTime(it.CreatedAt),
	}, nil
}

// HorseOwnerDynamoRepository reads co-ownership records.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: horse_id-index (PK: horse_id)
type HorseOwnerDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IHorseOwnerRepository = (*HorseOwnerDynamoRepository)(nil)

func NewHorseOwnerDynamoRepository(ddb DynamoAPI, tableName string) *HorseOwnerDynamoRepository {
	return &HorseOwnerDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *HorseOwnerDynamoRepository) ListByHorseID(ctx context.Context, horseID string) ([]entities.HorseOwner, error) {
	raw, err := queryIndex(ctx, r.ddb, r.tableName, horseOwnersHorseIDIndex, "horse_id", horseID)
	if err != nil {
		return nil, err
	}
	owners := make([]entities.HorseOwner, 0, len(raw))
	for _, item := range raw {
		var it horseOwnerItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return nil, err
		}
		owners = append(owners, entities.HorseOwner{
			ID:         it.ID,
			HorseID:    it.HorseID,
			UserID:     it.UserID,
			Name:       it.Name,
			AvatarURL:  it.AvatarURL,
			Percentage: parseDecimal(it.Percentage),
			CreatedAt:  parseTime(it.CreatedAt),
		})
	}
	return owners, nil
}

// ServiceShowDynamoRepository reads shows.
type ServiceShowDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IServiceShowRepository = (*ServiceShowDynamoRepository)(nil)

func NewServiceShowDynamoRepository(ddb DynamoAPI, tableName string) *ServiceShowDynamoRepository {
	return &ServiceShowDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *ServiceShowDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServiceShow, error) {
	var it serviceShowItem
	found, err := getItem(ctx, r.ddb, r.tableName, id, false, &it)
	if err != nil || !found {
		return entities.ServiceShow{}, err
	}
	return entities.ServiceShow{ID: it.ID, Name: it.Name, CreatedAt: parseTime(it.CreatedAt)}, nil
}

// getItem loads the item with the given id into out. A missing item is not an error.
func getItem(ctx context.Context, ddb DynamoAPI, table, id string, consistent bool, out any) (bool, error) {
	if id == "" {
		return false, nil
	}
	res, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(table),
		Key:            idKey(id),
		ConsistentRead: aws.Bool(consistent),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, err
	}
	return true, nil
}

// queryIndex reads every item of a GSI partition.
func queryIndex(ctx context.Context, ddb DynamoAPI, table, index, attr, value string) ([]map[string]types.AttributeValue, error) {
	return collect(ctx, 0, nil, func(ctx context.Context, start map[string]types.AttributeValue) ([]map[string]types.AttributeValue, map[string]types.AttributeValue, error) {
		out, err := ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:                 aws.String(table),
			IndexName:                 aws.String(index),
			KeyConditionExpression:    aws.String("#k = :v"),
			ExpressionAttributeNames:  map[string]string{"#k": attr},
			ExpressionAttributeValues: map[string]types.AttributeValue{":v": str(value)},
			ExclusiveStartKey:         start,
		})
		if err != nil {
			return nil, nil, err
		}
		return out.Items, out.LastEvaluatedKey, nil
	})
}
