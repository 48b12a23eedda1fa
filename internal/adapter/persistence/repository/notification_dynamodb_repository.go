package repository

import (
	"context"

	"equine_billing/internal/domain/entities"
	"equine_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

type notificationItem struct {
	ID         string                  `dynamodbav:"id"`
	ReceiverID string                  `dynamodbav:"receiver_id"`
	Message    string                  `dynamodbav:"message"`
	Creator    notificationCreatorItem `dynamodbav:"creator"`
	IsRead     bool                    `dynamodbav:"is_read"`
	CreatedAt  string                  `dynamodbav:"created_at"`
	UpdatedAt  string                  `dynamodbav:"updated_at"`
}

type notificationCreatorItem struct {
	UserID    string `dynamodbav:"user_id"`
	Name      string `dynamodbav:"name"`
	AvatarURL string `dynamodbav:"avatar_url,omitempty"`
}

// NotificationDynamoRepository stores in-app notifications.
type NotificationDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.INotificationRepository = (*NotificationDynamoRepository)(nil)

func NewNotificationDynamoRepository(ddb DynamoAPI, tableName string) *NotificationDynamoRepository {
	return &NotificationDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *NotificationDynamoRepository) Create(ctx context.Context, n entities.Notification) error {
	av, err := attributevalue.MarshalMap(notificationItem{
		ID:         n.ID,
		ReceiverID: n.ReceiverID,
		Message:    n.Message,
		Creator: notificationCreatorItem{
			UserID:    n.Creator.UserID,
			Name:      n.Creator.Name,
			AvatarURL: n.Creator.AvatarURL,
		},
		IsRead:    n.IsRead,
		CreatedAt: formatTime(n.CreatedAt),
		UpdatedAt: formatTime(n.UpdatedAt),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if isConditionalCheckFailed(err) {
		return interfaces.ErrAlreadyExists
	}
	return err
}
