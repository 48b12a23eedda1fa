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

type userItem struct {
	ID              string               `dynamodbav:"id"`
	Email           string               `dynamodbav:"email"`
	Type            string               `dynamodbav:"type"`
	Token           string               `dynamodbav:"token,omitempty"`
	HorseManager    *horseManagerItem    `dynamodbav:"horse_manager,omitempty"`
	ServiceProvider *serviceProviderItem `dynamodbav:"service_provider,omitempty"`
	CreatedAt       string               `dynamodbav:"created_at"`
}

type horseManagerItem struct {
	Name      string        `dynamodbav:"name"`
	AvatarURL string        `dynamodbav:"avatar_url,omitempty"`
	Phone     string        `dynamodbav:"phone,omitempty"`
	Location  string        `dynamodbav:"location,omitempty"`
	Customer  *customerItem `dynamodbav:"customer,omitempty"`
}

type serviceProviderItem struct {
	Name      string       `dynamodbav:"name"`
	AvatarURL string       `dynamodbav:"avatar_url,omitempty"`
	Phone     string       `dynamodbav:"phone,omitempty"`
	Location  string       `dynamodbav:"location,omitempty"`
	Account   *accountItem `dynamodbav:"account,omitempty"`
}

type customerItem struct {
	ID            string     `dynamodbav:"id"`
	DefaultSource string     `dynamodbav:"default_source,omitempty"`
	Cards         []cardItem `dynamodbav:"cards,omitempty"`
}

type cardItem struct {
	ID       string `dynamodbav:"id"`
	Brand    string `dynamodbav:"brand"`
	Last4    string `dynamodbav:"last4"`
	ExpMonth int64  `dynamodbav:"exp_month"`
	ExpYear  int64  `dynamodbav:"exp_year"`
}

type accountItem struct {
	ID             string `dynamodbav:"id"`
	Email          string `dynamodbav:"email,omitempty"`
	ChargesEnabled bool   `dynamodbav:"charges_enabled"`
	PayoutsEnabled bool   `dynamodbav:"payouts_enabled"`
}

// UserDynamoRepository reads user profiles and stores billing customers.
//
// Table requirements:
//   - PK: id (string)
type UserDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb DynamoAPI, tableName string) *UserDynamoRepository {
	return &UserDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.User, error) {
	if id == "" {
		return entities.User{}, nil
	}
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       idKey(id),
	})
	if err != nil {
		return entities.User{}, err
	}
	if len(out.Item) == 0 {
		return entities.User{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.User{}, err
	}
	return fromUserItem(it), nil
}

// UpdateCustomer replaces the manager profile's customer. A nil customer
// removes it. Returns ErrConditionFailed when the user has no manager profile.
func (r *UserDynamoRepository) UpdateCustomer(ctx context.Context, userID string, c *entities.BillingCustomer) error {
	in := &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 idKey(userID),
		ConditionExpression: aws.String("attribute_exists(#hm)"),
		ExpressionAttributeNames: map[string]string{
			"#hm":       "horse_manager",
			"#customer": "customer",
		},
	}
	if c == nil {
		in.UpdateExpression = aws.String("REMOVE #hm.#customer")
	} else {
		av, err := attributevalue.Marshal(toCustomerItem(*c))
		if err != nil {
			return err
		}
		in.UpdateExpression = aws.String("SET #hm.#customer = :customer")
		in.ExpressionAttributeValues = map[string]types.AttributeValue{":customer": av}
	}

	if _, err := r.ddb.UpdateItem(ctx, in); err != nil {
		if isConditionalCheckFailed(err) {
			return interfaces.ErrConditionFailed
		}
		return err
	}
	return nil
}

func toUserItem(u entities.User) userItem {
	it := userItem{
		ID:        u.ID,
		Email:     u.Email,
		Type:      string(u.Type),
		Token:     u.Token,
		CreatedAt: formatTime(u.CreatedAt),
	}
	if hm := u.HorseManager; hm != nil {
		it.HorseManager = &horseManagerItem{Name: hm.Name, AvatarURL: hm.AvatarURL, Phone: hm.Phone, Location: hm.Location}
		if hm.Customer != nil {
			c := toCustomerItem(*hm.Customer)
			it.HorseManager.Customer = &c
		}
	}
	if sp := u.ServiceProvider; sp != nil {
		it.ServiceProvider = &serviceProviderItem{Name: sp.Name, AvatarURL: sp.AvatarURL, Phone: sp.Phone, Location: sp.Location}
		if a := sp.Account; a != nil {
			it.ServiceProvider.Account = &accountItem{ID: a.ID, Email: a.Email, ChargesEnabled: a.ChargesEnabled, PayoutsEnabled: a.PayoutsEnabled}
		}
	}
	return it
}

func fromUserItem(it userItem) entities.User {
	u := entities.User{
		ID:        it.ID,
		Email:     it.Email,
		Type:      entities.UserType(it.Type),
		Token:     it.Token,
		CreatedAt: parseTime(it.CreatedAt),
	}
	if hm := it.HorseManager; hm != nil {
		u.HorseManager = &entities.HorseManager{UserID: it.ID, Name: hm.Name, AvatarURL: hm.AvatarURL, Phone: hm.Phone, Location: hm.Location}
		if hm.Customer != nil {
			c := fromCustomerItem(*hm.Customer)
			u.HorseManager.Customer = &c
		}
	}
	if sp := it.ServiceProvider; sp != nil {
		u.ServiceProvider = &entities.ServiceProvider{UserID: it.ID, Name: sp.Name, AvatarURL: sp.AvatarURL, Phone: sp.Phone, Location: sp.Location}
		if a := sp.Account; a != nil {
			u.ServiceProvider.Account = &entities.PayoutAccount{ID: a.ID, Email: a.Email, ChargesEnabled: a.ChargesEnabled, PayoutsEnabled: a.PayoutsEnabled}
		}
	}
	return u
}

func toCustomerItem(c entities.BillingCustomer) customerItem {
	it := customerItem{ID: c.ID, DefaultSource: c.DefaultSource}
	for _, card := range c.Cards {
		it.Cards = append(it.Cards, cardItem{ID: card.ID, Brand: card.Brand, Last4: card.Last4, ExpMonth: card.ExpMonth, ExpYear: card.ExpYear})
	}
	return it
}

func fromCustomerItem(it customerItem) entities.BillingCustomer {
	c := entities.BillingCustomer{ID: it.ID, DefaultSource: it.DefaultSource}
	for _, card := range it.Cards {
		c.Cards = append(c.Cards, entities.Card{ID: card.ID, Brand: card.Brand, Last4: card.Last4, ExpMonth: card.ExpMonth, ExpYear: card.ExpYear})
	}
	return c
}
