// Package output provides shared result serialization for phare JSON output.
package output

import (
	"github.com/farcloser/phare"
	"github.com/farcloser/phare/internal/extract"
	"github.com/farcloser/phare/internal/types"
)

// ComparisonToMap converts a comparison into the canonical map structure used for JSON serialization.
// Devices without reports are omitted.
func ComparisonToMap(comparison *phare.Comparison) map[string]any {
	meta := map[string]any{
		"counts": map[string]any{
			"before_desktop": comparison.Counts.BeforeDesktop,
			"after_desktop":  comparison.Counts.AfterDesktop,
			"before_mobile":  comparison.Counts.BeforeMobile,
			"after_mobile":   comparison.Counts.AfterMobile,
		},
	}

	if device := comparison.Desktop; device != nil {
		meta[device.Device.String()] = DeviceToMap(device)
	}

	if device := comparison.Mobile; device != nil {
		meta[device.Device.String()] = DeviceToMap(device)
	}

	return meta
}

// DeviceToMap converts a device comparison to a map.
func DeviceToMap(device *phare.DeviceComparison) map[string]any {
	perf := device.Performance

	return map[string]any{
		"performance": map[string]any{
			"before":        optional(perf.Before),
			"after":         optional(perf.After),
			"before_text":   perf.BeforeText,
			"after_text":    perf.AfterText,
			"delta":         optional(perf.Delta.Value),
			"delta_text":    perf.Delta.Text,
			"delta_class":   perf.Delta.Class.String(),
			"before_spread": optional(perf.BeforeSpread),
			"after_spread":  optional(perf.AfterSpread),
		},
		"categories": RowsToList(device.Categories),
		"metrics":    RowsToList(device.Metrics),
		"runs": map[string]any{
			"before": scoresToList(device.BeforeRuns),
			"after":  scoresToList(device.AfterRuns),
		},
	}
}

// RowsToList converts summary rows to a list of maps, keeping row order.
func RowsToList(rows []types.SummaryRow) []any {
	list := make([]any, 0, len(rows))

	for _, row := range rows {
		list = append(list, map[string]any{
			"key":         row.Definition.Key,
			"label":       row.Definition.Label,
			"unit":        string(row.Definition.Unit),
			"before":      optional(row.Before),
			"after":       optional(row.After),
			"before_text": row.BeforeText,
			"after_text":  row.AfterText,
			"delta":       optional(row.Delta.Value),
			"delta_text":  row.Delta.Text,
			"delta_class": row.Delta.Class.String(),
		})
	}

	return list
}

// ReportToMap converts the extracted values of a single report to a map.
func ReportToMap(report *types.Report) map[string]any {
	categories := map[string]any{}
	for _, def := range phare.Categories() {
		categories[def.Key] = optional(extract.Value(report, def.Key, true))
	}

	audits := map[string]any{}
	for _, def := range phare.Metrics() {
		audits[def.Key] = optional(extract.Value(report, def.Key, false))
	}

	return map[string]any{
		"name":               report.Name,
		"final_url":          report.FinalURL,
		"fetch_time":         report.FetchTime,
		"lighthouse_version": report.LighthouseVersion,
		"form_factor":        report.FormFactor,
		"categories":         categories,
		"audits":             audits,
	}
}

// optional unwraps a nullable value so that printers see either nil or a number.
func optional(value *float64) any {
	if value == nil {
		return nil
	}

	return *value
}

func scoresToList(scores []float64) []any {
	list := make([]any, 0, len(scores))
	for _, score := range scores {
		list = append(list, score)
	}

	return list
}
