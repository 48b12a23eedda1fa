package usecase

import (
	"context"
	"errors"
	"strings"

	"equine_billing/internal/domain/entities"
	"equine_billing/internal/usecase/interfaces"
	"equine_billing/pkg/logger"
)

var (
	ErrNoCustomer      = errors.New("no billing customer")
	ErrNoPayoutAccount = errors.New("no payout account")
	ErrInvalidCard     = errors.New("invalid card")
)

// IBillingProfileUseCase manages a manager's processor customer and cards
// and a provider's payout account.
type IBillingProfileUseCase interface {
	CreateCustomer(ctx context.Context, userID string) (entities.BillingCustomer, error)
	AddCard(ctx context.Context, userID, token string) (entities.BillingCustomer, error)
	ChangeDefaultCard(ctx context.Context, userID, cardID string) (entities.BillingCustomer, error)
	DeleteCard(ctx context.Context, userID, cardID string) (entities.BillingCustomer, error)
	PayoutAccount(ctx context.Context, userID string) (entities.PayoutAccount, error)
	ExpressLoginLink(ctx context.Context, userID string) (string, error)
	HandleUserDeleted(ctx context.Context, customerID, accountID string) error
}

type BillingProfileUseCase struct {
	users     interfaces.IUserRepository
	resolver  *EntityResolver
	processor interfaces.IPaymentProcessor
}

var _ IBillingProfileUseCase = (*BillingProfileUseCase)(nil)

func NewBillingProfileUseCase(users interfaces.IUserRepository, resolver *EntityResolver, processor interfaces.IPaymentProcessor) *BillingProfileUseCase {
	return &BillingProfileUseCase{users: users, resolver: resolver, processor: processor}
}

// CreateCustomer returns the user's existing customer or registers a new one.
func (u *BillingProfileUseCase) CreateCustomer(ctx context.Context, userID string) (entities.BillingCustomer, error) {
	user, ok := u.resolver.FetchUser(ctx, userID)
	if !ok || user.HorseManager == nil {
		return entities.BillingCustomer{}, entities.NotFound("Invalid user id")
	}
	if c := user.HorseManager.Customer; c != nil && c.ID != "" {
		return *c, nil
	}

	customer, err := u.processor.CreateCustomer(ctx, user.Email, "")
	if err != nil {
		return entities.BillingCustomer{}, entities.ExternalFailure("Could not create customer", err)
	}
	return u.store(ctx, user.ID, customer)
}

func (u *BillingProfileUseCase) AddCard(ctx context.Context, userID, token string) (entities.BillingCustomer, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.BillingCustomer{}, entities.NewDomainError(entities.KindInvalidInput, "Invalid card", ErrInvalidCard)
	}
	customerID, err := u.customerID(ctx, userID)
	if err != nil {
		return entities.BillingCustomer{}, err
	}
	if _, err := u.processor.AddCard(ctx, customerID, token); err != nil {
		return entities.BillingCustomer{}, entities.NewDomainError(entities.KindInvalidInput, "Invalid card", err)
	}
	return u.refresh(ctx, userID, customerID)
}

func (u *BillingProfileUseCase) ChangeDefaultCard(ctx context.Context, userID, cardID string) (entities.BillingCustomer, error) {
	cardID = strings.TrimSpace(cardID)
	if cardID == "" {
		return entities.BillingCustomer{}, entities.NewDomainError(entities.KindInvalidInput, "Invalid card id", ErrInvalidCard)
	}
	customerID, err := u.customerID(ctx, userID)
	if err != nil {
		return entities.BillingCustomer{}, err
	}
	customer, err := u.processor.SetDefaultCard(ctx, customerID, cardID)
	if err != nil {
		return entities.BillingCustomer{}, entities.NewDomainError(entities.KindInvalidInput, "Invalid card id", err)
	}
	return u.store(ctx, userID, customer)
}

func (u *BillingProfileUseCase) DeleteCard(ctx context.Context, userID, cardID string) (entities.BillingCustomer, error) {
	customerID, err := u.customerID(ctx, userID)
	if err != nil {
		return entities.BillingCustomer{}, err
	}
	if err := u.processor.DeleteCard(ctx, customerID, strings.TrimSpace(cardID)); err != nil {
		return entities.BillingCustomer{}, entities.NewDomainError(entities.KindInvalidInput, "Invalid card id", err)
	}
	return u.refresh(ctx, userID, customerID)
}

func (u *BillingProfileUseCase) PayoutAccount(ctx context.Context, userID string) (entities.PayoutAccount, error) {
	accountID, err := u.accountID(ctx, userID)
	if err != nil {
		return entities.PayoutAccount{}, err
	}
	acct, err := u.processor.RetrieveAccount(ctx, accountID)
	if err != nil {
		return entities.PayoutAccount{}, entities.ExternalFailure("Could not read payout account", err)
	}
	return acct, nil
}

func (u *BillingProfileUseCase) ExpressLoginLink(ctx context.Context, userID string) (string, error) {
	accountID, err := u.accountID(ctx, userID)
	if err != nil {
		return "", err
	}
	url, err := u.processor.CreateLoginLink(ctx, accountID)
	if err != nil {
		return "", entities.ExternalFailure("Could not create login link", err)
	}
	return url, nil
}

// HandleUserDeleted releases the processor resources of a deleted user.
// Both steps run even if one fails.
func (u *BillingProfileUseCase) HandleUserDeleted(ctx context.Context, customerID, accountID string) error {
	var errs []error
	if customerID = strings.TrimSpace(customerID); customerID != "" {
		if err := u.processor.DeleteCustomer(ctx, customerID); err != nil {
			errs = append(errs, err)
		}
	}
	if accountID = strings.TrimSpace(accountID); accountID != "" {
		if err := u.processor.RejectAccount(ctx, accountID); err != nil {
			errs = append(errs, err)
		}
	}
	if err := errors.Join(errs...); err != nil {
		logger.FromContext(ctx).WithError(err).Error("[billing_profile] user cleanup failed")
		return entities.ExternalFailure("Could not release billing resources", err)
	}
	return nil
}

func (u *BillingProfileUseCase) customerID(ctx context.Context, userID string) (string, error) {
	user, ok := u.resolver.FetchUser(ctx, userID)
	if !ok || user.HorseManager == nil {
		return "", entities.NotFound("Invalid user id")
	}
	c := user.HorseManager.Customer
	if c == nil || c.ID == "" {
		return "", entities.InvalidState("No billing customer exists", ErrNoCustomer)
	}
	return c.ID, nil
}

func (u *BillingProfileUseCase) accountID(ctx context.Context, userID string) (string, error) {
	user, ok := u.resolver.FetchUser(ctx, userID)
	if !ok || user.ServiceProvider == nil {
		return "", entities.NotFound("Invalid user id")
	}
	id := user.ServiceProvider.PayoutAccountID()
	if id == "" {
		return "", entities.InvalidState("No payout account exists", ErrNoPayoutAccount)
	}
	return id, nil
}

func (u *BillingProfileUseCase) refresh(ctx context.Context, userID, customerID string) (entities.BillingCustomer, error) {
	customer, err := u.processor.RetrieveCustomer(ctx, customerID)
	if err != nil {
		return entities.BillingCustomer{}, entities.ExternalFailure("Could not read customer", err)
	}
	return u.store(ctx, userID, customer)
}

func (u *BillingProfileUseCase) store(ctx context.Context, userID string, customer entities.BillingCustomer) (entities.BillingCustomer, error) {
	if err := u.users.UpdateCustomer(ctx, userID, &customer); err != nil {
		return entities.BillingCustomer{}, entities.ExternalFailure("Could not save customer", err)
	}
	return customer, nil
}
