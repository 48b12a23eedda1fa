package interfaces

import (
	"context"
	"equine_billing/internal/domain/entities"
	"time"
)

// InvoiceQuery narrows a page scan. Zero values do not filter.
type InvoiceQuery struct {
	Status      entities.InvoiceStatus
	CreatedFrom time.Time
	CreatedTo   time.Time
}

// IInvoiceRepository abstracts persistence for invoices.
//
// MarkFullPaid atomically sets every listed request to paid and the invoice
// to fullPaid with paidAt. It fails with ErrConditionFailed and writes
// nothing when the invoice is already fullPaid.
type IInvoiceRepository interface {
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListPage(ctx context.Context, q InvoiceQuery, afterID string, limit int) ([]entities.Invoice, error)
	UpdateListeners(ctx context.Context, id string, listeners []entities.ListenerUser) error
	MarkFullPaid(ctx context.Context, invoiceID string, requestIDs []string, paidAt time.Time) error
}
