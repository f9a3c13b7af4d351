package oddsService

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AmericanToDecimal converts American odds to decimal odds.
// +150 -> 2.5, -200 -> 1.5.
func AmericanToDecimal(american int) float64 {
	if american > 0 {
		return decimal.NewFromInt(int64(american)).
			Div(decimal.NewFromInt(100)).
			Add(decimal.NewFromInt(1)).
			Round(4).InexactFloat64()
	}
	return decimal.NewFromInt(100).
		Div(decimal.NewFromInt(int64(-american))).
		Add(decimal.NewFromInt(1)).
		Round(4).InexactFloat64()
}

// DecimalToAmerican is the inverse conversion, used when a provider only
// quotes decimal prices. 2.5 -> +150, 1.5 -> -200.
func DecimalToAmerican(dec float64) int {
	d := decimal.NewFromFloat(dec)
	one := decimal.NewFromInt(1)
	if d.LessThanOrEqual(one) {
		return 0
	}
	if d.GreaterThanOrEqual(decimal.NewFromFloat(2.0)) {
		return int(d.Sub(one).Mul(decimal.NewFromInt(100)).Round(0).IntPart())
	}
	return -int(decimal.NewFromInt(100).Div(d.Sub(one)).Round(0).IntPart())
}

// CombinedDecimalOdds multiplies leg decimal odds into the parlay price.
func CombinedDecimalOdds(legOdds []float64) float64 {
	product := decimal.NewFromInt(1)
	for _, o := range legOdds {
		product = product.Mul(decimal.NewFromFloat(o))
	}
	return product.Round(4).InexactFloat64()
}

// FormatAmerican renders odds the way books print them: +150 / -110.
func FormatAmerican(odds int) string {
	if odds > 0 {
		return fmt.Sprintf("+%d", odds)
	}
	return fmt.Sprintf("%d", odds)
}
