// Package display renders averaged values as the strings shown in comparison tables.
package display

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/farcloser/phare/internal/types"
)

// NotAvailable is rendered for any missing value.
const NotAvailable = "N/A"

const secondThresholdMs = 1000

// Value formats an audit value in its unit.
// Milliseconds switch to seconds with two decimals at one second, unitless values get three decimals.
func Value(value *float64, unit types.Unit) string {
	if value == nil {
		return NotAvailable
	}

	switch unit {
	case types.UnitMilliseconds:
		if *value >= secondThresholdMs {
			return Fixed(*value/secondThresholdMs, 2) + "s"
		}

		return Fixed(*value, 0) + "ms"
	default:
		return Fixed(*value, 3)
	}
}

// Category formats a 0-100 category average with one decimal.
func Category(value *float64) string {
	if value == nil {
		return NotAvailable
	}

	return Fixed(*value, 1)
}

// For formats a value according to its definition.
func For(def types.MetricDefinition, value *float64) string {
	if def.IsCategory {
		return Category(value)
	}

	return Value(value, def.Unit)
}

// Fixed renders value with the given number of decimals.
// Ties on the exact binary value round away from zero, so 1.125 gives "1.13" while 1.005 gives "1.00".
func Fixed(value float64, decimals int) string {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return strconv.FormatFloat(value, 'f', decimals, 64)
	}

	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	const precision = 256

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)

	scaled := new(big.Float).SetPrec(precision).SetFloat64(value)
	scaled.Mul(scaled, new(big.Float).SetPrec(precision).SetInt(scale))
	scaled.Add(scaled, big.NewFloat(0.5))

	// Int truncates, which is floor for a positive value.
	digits, _ := scaled.Int(nil)
	text := digits.String()

	if decimals <= 0 {
		return sign + text
	}

	if len(text) <= decimals {
		text = strings.Repeat("0", decimals-len(text)+1) + text
	}

	return sign + text[:len(text)-decimals] + "." + text[len(text)-decimals:]
}
