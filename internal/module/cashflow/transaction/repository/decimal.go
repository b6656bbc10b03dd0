package repository

import "github.com/shopspring/decimal"

// decimalFromFloat converts a SQL aggregate's float64 result back to a
// two-decimal fixed-point amount.
func decimalFromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}
