// Package aggregate averages extracted values and classifies before/after deltas.
package aggregate

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/farcloser/phare/internal/display"
	"github.com/farcloser/phare/internal/types"
)

const notAvailable = "N/A"

// Average returns the arithmetic mean of the non-nil finite values, or nil if there are none.
func Average(values []*float64) *float64 {
	present := numeric(values)
	if len(present) == 0 {
		return nil
	}

	mean := stat.Mean(present, nil)

	return &mean
}

// Spread returns the sample standard deviation of the non-nil finite values.
// It needs at least two values, otherwise nil.
func Spread(values []*float64) *float64 {
	present := numeric(values)
	if len(present) < 2 {
		return nil
	}

	deviation := stat.StdDev(present, nil)

	return &deviation
}

// Compute returns after minus before, classified against the direction of the metric.
// A zero delta is always good, whatever the direction.
func Compute(before, after *float64, higherIsBetter bool) types.Delta {
	if before == nil || after == nil {
		return types.Delta{Text: notAvailable, Class: types.ClassNeutral}
	}

	delta := *after - *before

	class := types.ClassBad
	if delta == 0 || (delta > 0) == higherIsBetter {
		class = types.ClassGood
	}

	return types.Delta{
		Value: &delta,
		Text:  signed(delta),
		Class: class,
	}
}

func signed(delta float64) string {
	if delta >= 0 {
		// math.Abs folds negative zero.
		return "+" + display.Fixed(math.Abs(delta), 2)
	}

	return display.Fixed(delta, 2)
}

func numeric(values []*float64) []float64 {
	present := make([]float64, 0, len(values))

	for _, value := range values {
		if value == nil || math.IsNaN(*value) || math.IsInf(*value, 0) {
			continue
		}

		present = append(present, *value)
	}

	return present
}
