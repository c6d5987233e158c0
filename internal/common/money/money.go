// Package money holds the numeric helpers shared by the calculators:
// currency rounding and human-readable amount formatting.
package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.MustParse("en-CA"))

// Round2 rounds to 2 decimal places, the precision used for every currency
// and percentage output field.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Format renders an amount with thousands separators and 2 decimals,
// e.g. 15000 -> "15,000.00".
func Format(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// Finite reports whether every value is a finite real number. Calculators
// must never surface NaN or infinities; they return an error result instead.
func Finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
