//nolint:wrapcheck
package main

import (
	"fmt"
	"os"

	"github.com/farcloser/primordium/format"

	"github.com/farcloser/phare"
	"github.com/farcloser/phare/internal/chart"
	"github.com/farcloser/phare/internal/display"
	"github.com/farcloser/phare/internal/extract"
	"github.com/farcloser/phare/internal/output"
	"github.com/farcloser/phare/internal/types"
)

func outputComparison(comparison *phare.Comparison, formatName string, debug bool, chartWidth int) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	if debug {
		return formatter.PrintAll([]*format.Data{{
			Object: "comparison",
			Meta:   output.ComparisonToMap(comparison),
		}}, os.Stdout)
	}

	counts := comparison.Counts
	data := []*format.Data{{
		Object: "inputs",
		Meta: map[string]any{
			"desktop": fmt.Sprintf("%d before, %d after", counts.BeforeDesktop, counts.AfterDesktop),
			"mobile":  fmt.Sprintf("%d before, %d after", counts.BeforeMobile, counts.AfterMobile),
		},
	}}

	for _, device := range []*phare.DeviceComparison{comparison.Desktop, comparison.Mobile} {
		if device == nil {
			continue
		}

		data = append(data, &format.Data{
			Object: device.Device.String(),
			Meta:   buildFriendlyDevice(device, chartWidth),
		})
	}

	return formatter.PrintAll(data, os.Stdout)
}

// buildFriendlyDevice creates a user-friendly summary of one device comparison.
func buildFriendlyDevice(device *phare.DeviceComparison, chartWidth int) map[string]any {
	perf := device.Performance

	meta := map[string]any{
		"summary": fmt.Sprintf("performance %s -> %s (%s, %s)",
			perf.BeforeText, perf.AfterText, perf.Delta.Text, perf.Delta.Class),
		"categories": rowLines(device.Categories),
		"metrics":    rowLines(device.Metrics),
	}

	if perf.BeforeSpread != nil || perf.AfterSpread != nil {
		meta["spread"] = fmt.Sprintf("before ±%s, after ±%s",
			display.Category(perf.BeforeSpread), display.Category(perf.AfterSpread))
	}

	if lines := chart.Pair(device.BeforeRuns, device.AfterRuns, chartWidth); len(lines) > 0 {
		runs := make([]any, 0, len(lines))
		for _, line := range lines {
			runs = append(runs, line)
		}

		meta["runs"] = runs
	}

	return meta
}

func rowLines(rows []types.SummaryRow) []any {
	lines := make([]any, 0, len(rows))

	for _, row := range rows {
		marker := "  "

		switch row.Delta.Class {
		case types.ClassGood:
			marker = "++"
		case types.ClassBad:
			marker = "!!"
		case types.ClassNeutral:
		}

		lines = append(lines, fmt.Sprintf("%s %s: %s -> %s (%s, %s)",
			marker, row.Definition.Label, row.BeforeText, row.AfterText, row.Delta.Text, row.Delta.Class))
	}

	return lines
}

func outputReports(reports []*types.Report, formatName string, debug bool) error {
	formatter, err := format.GetFormatter(formatName)
	if err != nil {
		return err
	}

	data := make([]*format.Data, 0, len(reports))

	for _, report := range reports {
		meta := output.ReportToMap(report)
		if !debug {
			meta = buildFriendlyReport(report)
		}

		data = append(data, &format.Data{
			Object: report.Path,
			Meta:   meta,
		})
	}

	return formatter.PrintAll(data, os.Stdout)
}

// buildFriendlyReport lists every compared value of a single report, formatted for display.
func buildFriendlyReport(report *types.Report) map[string]any {
	values := make([]any, 0, len(phare.Categories())+len(phare.Metrics()))

	for _, def := range append(phare.Categories(), phare.Metrics()...) {
		value := extract.Value(report, def.Key, def.IsCategory)
		values = append(values, fmt.Sprintf("%s: %s", def.Label, display.For(def, value)))
	}

	meta := map[string]any{
		"values": values,
	}

	props := map[string]any{}

	if report.FinalURL != "" {
		props["url"] = report.FinalURL
	}

	if report.FormFactor != "" {
		props["form_factor"] = report.FormFactor
	}

	if report.FetchTime != "" {
		props["fetched"] = report.FetchTime
	}

	if report.LighthouseVersion != "" {
		props["lighthouse"] = report.LighthouseVersion
	}

	if len(props) > 0 {
		meta["properties"] = props
	}

	return meta
}
