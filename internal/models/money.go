package models

import "github.com/shopspring/decimal"

// RoundMoney normalizes a monetary value to exactly two fractional digits.
// Every write path, create and update alike, must go through this before
// validation so stored amounts never drift from the decimal(10,2) columns.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
