package response

import (
	"time"

	"equine_billing/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PayerResponse struct {
	UserID     string          `json:"user_id"`
	Name       string          `json:"name"`
	AvatarURL  string          `json:"avatar_url,omitempty"`
	Percentage decimal.Decimal `json:"percentage"`
}

func FromPayer(p entities.Payer) PayerResponse {
	return PayerResponse{UserID: p.UserID, Name: p.Name, AvatarURL: p.AvatarURL, Percentage: p.Percentage}
}

type PaymentApproverResponse struct {
	ID        string          `json:"id"`
	CreatorID string          `json:"creator_id"`
	UserID    string          `json:"user_id"`
	Name      string          `json:"name"`
	AvatarURL string          `json:"avatar_url,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
}

type InvoiceResponse struct {
	ID               string                    `json:"id"`
	Name             string                    `json:"name"`
	RequestIDs       []string                  `json:"request_ids"`
	Amount           decimal.Decimal           `json:"amount"`
	Tip              decimal.Decimal           `json:"tip"`
	Status           string                    `json:"status"`
	PaidAt           *time.Time                `json:"paid_at,omitempty"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
	Requests         []ServiceRequestResponse  `json:"requests"`
	Payers           []PayerResponse           `json:"payers"`
	PaymentApprovers []PaymentApproverResponse `json:"payment_approvers"`
}

func FromInvoice(i entities.Invoice) InvoiceResponse {
	res := InvoiceResponse{
		ID:               i.ID,
		Name:             i.Name,
		RequestIDs:       i.RequestIDs,
		Amount:           i.Amount,
		Tip:              i.Tip,
		Status:           string(i.Status),
		PaidAt:           i.PaidAt,
		CreatedAt:        i.CreatedAt,
		UpdatedAt:        i.UpdatedAt,
		Requests:         make([]ServiceRequestResponse, 0, len(i.Requests)),
		Payers:           make([]PayerResponse, 0, len(i.Payers)),
		PaymentApprovers: make([]PaymentApproverResponse, 0, len(i.PaymentApprovers)),
	}
	for _, r := range i.Requests {
		res.Requests = append(res.Requests, FromServiceRequest(r))
	}
	for _, p := range i.Payers {
		res.Payers = append(res.Payers, FromPayer(p))
	}
	for _, a := range i.PaymentApprovers {
		res.PaymentApprovers = append(res.PaymentApprovers, PaymentApproverResponse{
			ID: a.ID, CreatorID: a.CreatorID, UserID: a.UserID, Name: a.Name, AvatarURL: a.AvatarURL, Amount: a.Amount,
		})
	}
	return res
}

type InvoiceExportResponse struct {
	FileName string `json:"file_name"`
	Count    int    `json:"count"`
	URL      string `json:"url,omitempty"`
	Emailed  bool   `json:"emailed"`
}

type PaymentStatusResponse struct {
	InvoiceID string `json:"invoice_id"`
	Status    string `json:"status"`
}
