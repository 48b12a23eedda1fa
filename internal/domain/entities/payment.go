package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var paymentNamespace = uuid.MustParse("5f0b7c1e-3a43-4d1b-9c51-7a6f1b2e8d90")

// PaymentID is derived from the invoice and payer so a payer can hold at
// most one payment per invoice.
func PaymentID(invoiceID, payerID string) string {
	return uuid.NewSHA1(paymentNamespace, []byte(invoiceID+":"+payerID)).String()
}

// Payment records one payer's settlement of an invoice. Amount and Tip
// are the payer's share including the application fee.
type Payment struct {
	ID                string
	InvoiceID         string
	PayerID           string
	PaymentApproverID string
	ServiceProviderID string
	ChargeID          string
	Amount            decimal.Decimal
	Tip               decimal.Decimal
	IsPaidOutsideApp  bool
	CreatedAt         time.Time
}

// Transfer is a payout to one provider's connected account, in cents.
type Transfer struct {
	UserID      string
	Destination string
	AmountMinor int64
}

type ChargeRequest struct {
	AmountMinor    int64
	Currency       string
	CustomerID     string
	SourceToken    string
	GroupKey       string
	IdempotencyKey string
	Description    string
}

type TransferRequest struct {
	AmountMinor    int64
	Currency       string
	ChargeID       string
	Destination    string
	GroupKey       string
	IdempotencyKey string
}
