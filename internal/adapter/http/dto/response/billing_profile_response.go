package response

import "equine_billing/internal/domain/entities"

type CardResponse struct {
	ID       string `json:"id"`
	Brand    string `json:"brand"`
	Last4    string `json:"last4"`
	ExpMonth int64  `json:"exp_month"`
	ExpYear  int64  `json:"exp_year"`
	Default  bool   `json:"default"`
}

type BillingCustomerResponse struct {
	ID            string         `json:"id"`
	DefaultSource string         `json:"default_source,omitempty"`
	Cards         []CardResponse `json:"cards"`
}

func FromBillingCustomer(c entities.BillingCustomer) BillingCustomerResponse {
	res := BillingCustomerResponse{ID: c.ID, DefaultSource: c.DefaultSource, Cards: make([]CardResponse, 0, len(c.Cards))}
	for _, card := range c.Cards {
		res.Cards = append(res.Cards, CardResponse{
			ID:       card.ID,
			Brand:    card.Brand,
			Last4:    card.Last4,
			ExpMonth: card.ExpMonth,
			ExpYear:  card.ExpYear,
			Default:  card.ID == c.DefaultSource,
		})
	}
	return res
}

type PayoutAccountResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email,omitempty"`
	ChargesEnabled bool   `json:"charges_enabled"`
	PayoutsEnabled bool   `json:"payouts_enabled"`
}

func FromPayoutAccount(a entities.PayoutAccount) PayoutAccountResponse {
	return PayoutAccountResponse{ID: a.ID, Email: a.Email, ChargesEnabled: a.ChargesEnabled, PayoutsEnabled: a.PayoutsEnabled}
}

type LoginLinkResponse struct {
	URL string `json:"url"`
}
