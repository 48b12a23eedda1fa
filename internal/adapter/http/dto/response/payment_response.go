package response

import (
	"time"

	"equine_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	ID                string          `json:"id"`
	InvoiceID         string          `json:"invoice_id"`
	PayerID           string          `json:"payer_id"`
	PaymentApproverID string          `json:"payment_approver_id,omitempty"`
	ServiceProviderID string          `json:"service_provider_id"`
	ChargeID          string          `json:"charge_id,omitempty"`
	Amount            decimal.Decimal `json:"amount"`
	Tip               decimal.Decimal `json:"tip"`
	IsPaidOutsideApp  bool            `json:"is_paid_outside_app"`
	CreatedAt         time.Time       `json:"created_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                p.ID,
		InvoiceID:         p.InvoiceID,
		PayerID:           p.PayerID,
		PaymentApproverID: p.PaymentApproverID,
		ServiceProviderID: p.ServiceProviderID,
		ChargeID:          p.ChargeID,
		Amount:            p.Amount,
		Tip:               p.Tip,
		IsPaidOutsideApp:  p.IsPaidOutsideApp,
		CreatedAt:         p.CreatedAt,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}
