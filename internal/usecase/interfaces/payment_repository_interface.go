package interfaces

import (
	"context"
	"equine_billing/internal/domain/entities"
)

// IPaymentRepository abstracts persistence for payments.
//
// Create fails with ErrAlreadyExists when a payment with the same ID exists.
// ListByIDs reads strongly consistent and skips missing IDs.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByIDs(ctx context.Context, ids []string) ([]entities.Payment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error)
}

type IPaymentApproverRepository interface {
	ListByCreatorID(ctx context.Context, creatorID string) ([]entities.PaymentApprover, error)
}
