package payments

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"equine_billing/internal/domain/entities"
	"equine_billing/internal/usecase/interfaces"
	"equine_billing/pkg/logger"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/client"
)

var (
	ErrMissingStripeSecretKey = errors.New("missing STRIPE_SECRET_KEY")
	ErrProcessorNotConfigured = errors.New("payment processor not configured")
)

// StripeProcessor moves money through Stripe: charges on customer cards,
// transfers to connected accounts, and customer and account upkeep. In mock
// mode every call succeeds with generated ids and nothing leaves the process.
type StripeProcessor struct {
	api      *client.API
	mockMode bool
}

var _ interfaces.IPaymentProcessor = (*StripeProcessor)(nil)

// Retries reuse the idempotency key, so a replayed charge is not duplicated.
const maxNetworkRetries = 2

func NewStripeProcessor(secretKey string, mockMode bool) (*StripeProcessor, error) {
	if mockMode {
		logger.FromContext(context.Background()).Info("[payment][processor] mock mode enabled")
		return &StripeProcessor{mockMode: true}, nil
	}
	if strings.TrimSpace(secretKey) == "" {
		return nil, ErrMissingStripeSecretKey
	}
	backends := &stripe.Backends{
		API: stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
			MaxNetworkRetries: stripe.Int64(maxNetworkRetries),
		}),
		Connect: stripe.GetBackend(stripe.ConnectBackend),
		Uploads: stripe.GetBackend(stripe.UploadsBackend),
	}
	return newStripeProcessor(client.New(secretKey, backends)), nil
}

func newStripeProcessor(api *client.API) *StripeProcessor {
	return &StripeProcessor{api: api}
}

func (p *StripeProcessor) ready() error {
	if p == nil || (!p.mockMode && p.api == nil) {
		return ErrProcessorNotConfigured
	}
	return nil
}

func mockID(prefix string) string {
	return prefix + "_mock_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
}

// CreateCharge charges the customer's default card, or a one-off source token
// when one is given. The returned id is the charge id.
func (p *StripeProcessor) CreateCharge(ctx context.Context, req entities.ChargeRequest) (string, error) {
	log := logger.FromContext(ctx).WithField("amount", req.AmountMinor).WithField("customer_id", req.CustomerID)
	if err := p.ready(); err != nil {
		return "", err
	}
	if p.mockMode {
		id := mockID("ch")
		log.WithField("charge_id", id).Info("[payment][processor] mock charge")
		return id, nil
	}

	params := &stripe.ChargeParams{
		Amount:        stripe.Int64(req.AmountMinor),
		Currency:      stripe.String(req.Currency),
		TransferGroup: stripe.String(req.GroupKey),
		Description:   stripe.String(req.Description),
	}
	if req.SourceToken != "" {
		if err := params.SetSource(req.SourceToken); err != nil {
			return "", err
		}
	} else {
		params.Customer = stripe.String(req.CustomerID)
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.IdempotencyKey)

	ch, err := p.api.Charges.New(params)
	if err != nil {
		log.WithError(err).Error("[payment][processor] charge failed")
		return "", err
	}
	log.WithField("charge_id", ch.ID).Info("[payment][processor] charge created")
	return ch.ID, nil
}

// CreateTransfer pays part of a charge out to a connected account.
func (p *StripeProcessor) CreateTransfer(ctx context.Context, req entities.TransferRequest) (string, error) {
	log := logger.FromContext(ctx).WithField("amount", req.AmountMinor).WithField("destination", req.Destination)
	if err := p.ready(); err != nil {
		return "", err
	}
	if p.mockMode {
		id := mockID("tr")
		log.WithField("transfer_id", id).Info("[payment][processor] mock transfer")
		return id, nil
	}

	params := &stripe.TransferParams{
		Amount:            stripe.Int64(req.AmountMinor),
		Currency:          stripe.String(req.Currency),
		Destination:       stripe.String(req.Destination),
		SourceTransaction: stripe.String(req.ChargeID),
		TransferGroup:     stripe.String(req.GroupKey),
	}
	params.Context = ctx
	params.SetIdempotencyKey(req.IdempotencyKey)

	tr, err := p.api.Transfers.New(params)
	if err != nil {
		log.WithError(err).Error("[payment][processor] transfer failed")
		return "", err
	}
	log.WithField("transfer_id", tr.ID).Info("[payment][processor] transfer created")
	return tr.ID, nil
}

func (p *StripeProcessor) CreateCustomer(ctx context.Context, email, token string) (entities.BillingCustomer, error) {
	if err := p.ready(); err != nil {
		return entities.BillingCustomer{}, err
	}
	if p.mockMode {
		return entities.BillingCustomer{ID: mockID("cus")}, nil
	}

	params := &stripe.CustomerParams{Email: stripe.String(email)}
	if token != "" {
		params.Source = stripe.String(token)
	}
	params.Context = ctx
	c, err := p.api.Customers.New(params)
	if err != nil {
		return entities.BillingCustomer{}, err
	}
	return p.RetrieveCustomer(ctx, c.ID)
}

// RetrieveCustomer reads the customer with its cards and default source.
func (p *StripeProcessor) RetrieveCustomer(ctx context.Context, customerID string) (entities.BillingCustomer, error) {
	if err := p.ready(); err != nil {
		return entities.BillingCustomer{}, err
	}
	if p.mockMode {
		return entities.BillingCustomer{ID: customerID}, nil
	}

	params := &stripe.CustomerParams{}
	params.Context = ctx
	c, err := p.api.Customers.Get(customerID, params)
	if err != nil {
		return entities.BillingCustomer{}, err
	}
	out := entities.BillingCustomer{ID: c.ID}
	if c.DefaultSource != nil {
		out.DefaultSource = c.DefaultSource.ID
	}

	list := &stripe.CardListParams{Customer: stripe.String(customerID)}
	list.Context = ctx
	it := p.api.Cards.List(list)
	for it.Next() {
		out.Cards = append(out.Cards, toCard(it.Card()))
	}
	if err := it.Err(); err != nil {
		return entities.BillingCustomer{}, err
	}
	return out, nil
}

func (p *StripeProcessor) DeleteCustomer(ctx context.Context, customerID string) error {
	if err := p.ready(); err != nil {
		return err
	}
	if p.mockMode {
		return nil
	}
	params := &stripe.CustomerParams{}
	params.Context = ctx
	_, err := p.api.Customers.Del(customerID, params)
	return err
}

func (p *StripeProcessor) AddCard(ctx context.Context, customerID, token string) (entities.Card, error) {
	if err := p.ready(); err != nil {
		return entities.Card{}, err
	}
	if p.mockMode {
		return entities.Card{ID: mockID("card")}, nil
	}
	params := &stripe.CardParams{Customer: stripe.String(customerID), Token: stripe.String(token)}
	params.Context = ctx
	c, err := p.api.Cards.New(params)
	if err != nil {
		return entities.Card{}, err
	}
	return toCard(c), nil
}

func (p *StripeProcessor) DeleteCard(ctx context.Context, customerID, cardID string) error {
	if err := p.ready(); err != nil {
		return err
	}
	if p.mockMode {
		return nil
	}
	params := &stripe.CardParams{Customer: stripe.String(customerID)}
	params.Context = ctx
	_, err := p.api.Cards.Del(cardID, params)
	return err
}

func (p *StripeProcessor) SetDefaultCard(ctx context.Context, customerID, cardID string) (entities.BillingCustomer, error) {
	if err := p.ready(); err != nil {
		return entities.BillingCustomer{}, err
	}
	if p.mockMode {
		return entities.BillingCustomer{ID: customerID, DefaultSource: cardID}, nil
	}
	params := &stripe.CustomerParams{DefaultSource: stripe.String(cardID)}
	params.Context = ctx
	if _, err := p.api.Customers.Update(customerID, params); err != nil {
		return entities.BillingCustomer{}, err
	}
	return p.RetrieveCustomer(ctx, customerID)
}

func (p *StripeProcessor) RetrieveAccount(ctx context.Context, accountID string) (entities.PayoutAccount, error) {
	if err := p.ready(); err != nil {
		return entities.PayoutAccount{}, err
	}
	if p.mockMode {
		return entities.PayoutAccount{ID: accountID, ChargesEnabled: true, PayoutsEnabled: true}, nil
	}
	params := &stripe.AccountParams{}
	params.Context = ctx
	a, err := p.api.Accounts.GetByID(accountID, params)
	if err != nil {
		return entities.PayoutAccount{}, err
	}
	return entities.PayoutAccount{ID: a.ID, Email: a.Email, ChargesEnabled: a.ChargesEnabled, PayoutsEnabled: a.PayoutsEnabled}, nil
}

// RejectAccount closes a connected account of a deleted user.
func (p *StripeProcessor) RejectAccount(ctx context.Context, accountID string) error {
	if err := p.ready(); err != nil {
		return err
	}
	if p.mockMode {
		return nil
	}
	params := &stripe.AccountRejectParams{Reason: stripe.String("fraud")}
	params.Context = ctx
	_, err := p.api.Accounts.Reject(accountID, params)
	return err
}

func (p *StripeProcessor) CreateLoginLink(ctx context.Context, accountID string) (string, error) {
	if err := p.ready(); err != nil {
		return "", err
	}
	if p.mockMode {
		return fmt.Sprintf("https://connect.stripe.com/express/mock/%s?t=%d", accountID, time.Now().Unix()), nil
	}
	params := &stripe.LoginLinkParams{Account: stripe.String(accountID)}
	params.Context = ctx
	l, err := p.api.LoginLinks.New(params)
	if err != nil {
		return "", err
	}
	return l.URL, nil
}

func toCard(c *stripe.Card) entities.Card {
	return entities.Card{ID: c.ID, Brand: string(c.Brand), Last4: c.Last4, ExpMonth: c.ExpMonth, ExpYear: c.ExpYear}
}
