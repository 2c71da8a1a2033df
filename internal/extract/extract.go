// Package extract reads comparable values out of parsed Lighthouse reports.
package extract

import (
	"math"

	"github.com/farcloser/phare/internal/types"
)

// Value returns the comparable value for key, or nil when the report does not expose a finite number for it.
// Categories are scaled from 0-1 to 0-100. Audits are returned as their raw numericValue.
func Value(report *types.Report, key string, isCategory bool) *float64 {
	if report == nil {
		return nil
	}

	if isCategory {
		category, ok := report.Categories[key]
		if !ok || !finite(category.Score) {
			return nil
		}

		scaled := *category.Score * 100

		return &scaled
	}

	audit, ok := report.Audits[key]
	if !ok || !finite(audit.NumericValue) {
		return nil
	}

	value := *audit.NumericValue

	return &value
}

// Values maps Value over reports, keeping nil entries.
func Values(reports []*types.Report, key string, isCategory bool) []*float64 {
	values := make([]*float64, 0, len(reports))
	for _, report := range reports {
		values = append(values, Value(report, key, isCategory))
	}

	return values
}

// PerRunScores returns the category score of every report exposing one, rounded to two decimals, in input order.
// Reports without the score are dropped, so the index of a score does not identify a run.
func PerRunScores(reports []*types.Report, key string) []float64 {
	scores := make([]float64, 0, len(reports))

	for _, report := range reports {
		value := Value(report, key, true)
		if value == nil {
			continue
		}

		scores = append(scores, math.Round(*value*100)/100)
	}

	return scores
}

func finite(value *float64) bool {
	return value != nil && !math.IsNaN(*value) && !math.IsInf(*value, 0)
}
