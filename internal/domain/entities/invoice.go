package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusDraft    InvoiceStatus = "draft"
	InvoiceStatusPending  InvoiceStatus = "pending"
	InvoiceStatusFullPaid InvoiceStatus = "fullPaid"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusPending, InvoiceStatusFullPaid:
		return true
	}
	return false
}

// PaymentProgress is the read-time settlement state of an invoice.
type PaymentProgress string

const (
	PaymentProgressUnpaid        PaymentProgress = "unpaid"
	PaymentProgressPartiallyPaid PaymentProgress = "partiallyPaid"
	PaymentProgressFullPaid      PaymentProgress = "fullPaid"
)

// Invoice bundles an immutable set of service requests. Amount, Requests,
// Payers and PaymentApprovers are derived on read.
type Invoice struct {
	ID            string
	Name          string
	RequestIDs    []string
	Amount        decimal.Decimal
	Tip           decimal.Decimal
	Status        InvoiceStatus
	ListenerUsers []ListenerUser
	PaidAt        *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Requests         []ServiceRequest
	Payers           []Payer
	PaymentApprovers []PaymentApprover
}

func (i Invoice) IsFullPaid() bool {
	return i.Status == InvoiceStatusFullPaid
}

func (i Invoice) Payer(userID string) (Payer, bool) {
	for _, p := range i.Payers {
		if p.UserID == userID {
			return p, true
		}
	}
	return Payer{}, false
}

// PrimaryServiceProviderID is the provider on the first hydrated request.
func (i Invoice) PrimaryServiceProviderID() string {
	if len(i.Requests) == 0 {
		return ""
	}
	return i.Requests[0].ServiceProviderID
}

func (i Invoice) HydratedRequestIDs() []string {
	ids := make([]string, 0, len(i.Requests))
	for _, r := range i.Requests {
		ids = append(ids, r.ID)
	}
	return ids
}

func (i Invoice) Progress(paymentCount int) PaymentProgress {
	switch {
	case i.IsFullPaid() || (len(i.Payers) > 0 && paymentCount >= len(i.Payers)):
		return PaymentProgressFullPaid
	case paymentCount > 0:
		return PaymentProgressPartiallyPaid
	default:
		return PaymentProgressUnpaid
	}
}
