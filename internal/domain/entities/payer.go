package entities

import "github.com/shopspring/decimal"

// Payer is a user responsible for a percentage share of a bill.
type Payer struct {
	UserID     string
	Name       string
	AvatarURL  string
	Percentage decimal.Decimal
}

func PayerFromManager(m HorseManager, percentage decimal.Decimal) Payer {
	return Payer{UserID: m.UserID, Name: m.Name, AvatarURL: m.AvatarURL, Percentage: percentage}
}

func PayerFromOwner(o HorseOwner, percentage decimal.Decimal) Payer {
	return Payer{UserID: o.UserID, Name: o.Name, AvatarURL: o.AvatarURL, Percentage: percentage}
}

// PaymentApprover is a user a payer has authorized to pay on their behalf.
type PaymentApprover struct {
	ID        string
	CreatorID string
	UserID    string
	Name      string
	AvatarURL string
	Amount    decimal.Decimal
}
