package utils

import "github.com/shopspring/decimal"

// MinorUnits converts a decimal amount to integer minor units (cents),
// rounding to two places first so 50.00 becomes 5000.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Round(2).Mul(decimal.NewFromInt(100)).IntPart()
}
