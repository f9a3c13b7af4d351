package common

import "github.com/shopspring/decimal"

// WeeklyAllowance is every member's fixed stake budget per matchup week.
const WeeklyAllowance = 100.0

// Round2 rounds a money amount to cents using decimal math, never float
// arithmetic.
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// Round4 rounds odds to the precision they are stored at.
func Round4(v float64) float64 {
	return decimal.NewFromFloat(v).Round(4).InexactFloat64()
}

// Payout computes stake × decimal odds, rounded to cents.
func Payout(stake, decimalOdds float64) float64 {
	return decimal.NewFromFloat(stake).
		Mul(decimal.NewFromFloat(decimalOdds)).
		Round(2).
		InexactFloat64()
}
