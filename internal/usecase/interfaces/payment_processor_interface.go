package interfaces

import (
	"context"
	"equine_billing/internal/domain/entities"
)

// IPaymentProcessor abstracts the external payment processor: charges
// against stored customers, transfers to connected payout accounts and
// customer/card management.
type IPaymentProcessor interface {
	CreateCharge(ctx context.Context, req entities.ChargeRequest) (chargeID string, err error)
	CreateTransfer(ctx context.Context, req entities.TransferRequest) (transferID string, err error)

	CreateCustomer(ctx context.Context, email, token string) (entities.BillingCustomer, error)
	RetrieveCustomer(ctx context.Context, customerID string) (entities.BillingCustomer, error)
	DeleteCustomer(ctx context.Context, customerID string) error
	AddCard(ctx context.Context, customerID, token string) (entities.Card, error)
	DeleteCard(ctx context.Context, customerID, cardID string) error
	SetDefaultCard(ctx context.Context, customerID, cardID string) (entities.BillingCustomer, error)

	RetrieveAccount(ctx context.Context, accountID string) (entities.PayoutAccount, error)
	RejectAccount(ctx context.Context, accountID string) error
	CreateLoginLink(ctx context.Context, accountID string) (string, error)
}
