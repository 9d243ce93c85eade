package view

import (
	"github.com/shopspring/decimal"
)

// DefaultDecimalPlaces is the number of fraction digits shown for results.
const DefaultDecimalPlaces int32 = 2

// Format renders value with at most places fraction digits, rounding half
// to even and dropping trailing zeros: 2.5 stays "2.5", 0.0666 becomes
// "0.07" and 3.00 becomes "3".
func Format(value decimal.Decimal, places int32) string {
	if places < 0 {
		places = DefaultDecimalPlaces
	}

	rounded := value.RoundBank(places)
	if rounded.IsZero() {
		return "0"
	}
	return rounded.String()
}

// Record pairs an accepted expression with its formatted result.
func Record(expression, result string) string {
	return expression + " = " + result
}
