package entities

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// ToMinorUnits converts a currency amount to integer cents, discarding fractional cents.
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Floor().IntPart()
}

func FromMinorUnits(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}

// WithApplicationFee grosses amount up by feePercent.
func WithApplicationFee(amount, feePercent decimal.Decimal) decimal.Decimal {
	return amount.Mul(hundred.Add(feePercent)).Div(hundred)
}

// Share returns percentage% of amount.
func Share(amount, percentage decimal.Decimal) decimal.Decimal {
	return amount.Mul(percentage).Div(hundred)
}
