package phare

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/farcloser/phare/internal/aggregate"
	"github.com/farcloser/phare/internal/display"
	"github.com/farcloser/phare/internal/extract"
	"github.com/farcloser/phare/internal/ingest"
	"github.com/farcloser/phare/internal/types"
)

/*
Usage:

comparison, err := phare.Compare(ctx, phare.Inputs{
    BeforeDesktop: []string{"before/desktop"},
    AfterDesktop:  []string{"after/desktop"},
})
if errors.Is(err, phare.ErrUnreadableReports) {
    // a file could not be read, or is not JSON: nothing was compared
}

for _, row := range comparison.Desktop.Categories {
    fmt.Printf("%s: %s -> %s (%s, %s)\n", row.Definition.Label, row.BeforeText, row.AfterText, row.Delta.Text, row.Delta.Class)
}

// Already parsed reports
comparison := phare.BuildComparison(beforeDesktop, afterDesktop, nil, nil)

*/

// Aliases so that callers outside this module can build and read comparisons.
type (
	Report           = types.Report
	Category         = types.Category
	Audit            = types.Audit
	MetricDefinition = types.MetricDefinition
	SummaryRow       = types.SummaryRow
	Delta            = types.Delta
	Class            = types.Class
)

// ErrUnreadableReports is returned when any input file cannot be read or is not valid JSON.
var ErrUnreadableReports = ingest.ErrUnreadable

// Inputs is the snapshot of files a comparison runs on. Paths may be files or directories.
type Inputs struct {
	BeforeDesktop []string
	AfterDesktop  []string
	BeforeMobile  []string
	AfterMobile   []string

	Workers int // concurrent reads per group (default: 1)
}

// Counts holds the number of reports in each input group.
type Counts struct {
	BeforeDesktop int
	AfterDesktop  int
	BeforeMobile  int
	AfterMobile   int
}

// PerformanceSummary is the headline performance comparison of a device.
type PerformanceSummary struct {
	Before     *float64
	After      *float64
	BeforeText string
	AfterText  string
	Delta      types.Delta

	// Sample standard deviation across runs, nil with fewer than two runs.
	BeforeSpread *float64
	AfterSpread  *float64
}

// DeviceComparison holds everything compared for a single device.
type DeviceComparison struct {
	Device      Device
	Categories  []types.SummaryRow
	Metrics     []types.SummaryRow
	Performance PerformanceSummary

	// Per-run performance scores. Index i of BeforeRuns and AfterRuns are not the same run.
	BeforeRuns []float64
	AfterRuns  []float64

	// Paths of reports recording a form factor other than Device.
	Mismatched []string
}

// Comparison is the full result. A device without any report on either side is nil.
type Comparison struct {
	Desktop *DeviceComparison
	Mobile  *DeviceComparison
	Counts  Counts
}

// Compare reads the four groups of reports concurrently and compares them.
// On any error it returns no comparison at all.
func Compare(ctx context.Context, inputs Inputs) (*Comparison, error) {
	groups := [][]string{inputs.BeforeDesktop, inputs.AfterDesktop, inputs.BeforeMobile, inputs.AfterMobile}
	parsed := make([][]*types.Report, len(groups))

	group, ctx := errgroup.WithContext(ctx)

	for idx, paths := range groups {
		group.Go(func() error {
			files, err := ingest.Collect(paths)
			if err != nil {
				return err
			}

			reports, err := ingest.ParseFiles(ctx, files, inputs.Workers)
			if err != nil {
				return err
			}

			parsed[idx] = reports

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return BuildComparison(parsed[0], parsed[1], parsed[2], parsed[3]), nil
}

// BuildComparison compares already parsed reports. It is pure and deterministic.
func BuildComparison(beforeDesktop, afterDesktop, beforeMobile, afterMobile []*types.Report) *Comparison {
	return &Comparison{
		Desktop: buildDevice(DeviceDesktop, beforeDesktop, afterDesktop),
		Mobile:  buildDevice(DeviceMobile, beforeMobile, afterMobile),
		Counts: Counts{
			BeforeDesktop: len(beforeDesktop),
			AfterDesktop:  len(afterDesktop),
			BeforeMobile:  len(beforeMobile),
			AfterMobile:   len(afterMobile),
		},
	}
}

// BuildRows compares before and after for every definition, keeping definition order.
func BuildRows(before, after []*types.Report, defs []types.MetricDefinition) []types.SummaryRow {
	rows := make([]types.SummaryRow, 0, len(defs))

	for _, def := range defs {
		beforeAvg := aggregate.Average(extract.Values(before, def.Key, def.IsCategory))
		afterAvg := aggregate.Average(extract.Values(after, def.Key, def.IsCategory))

		rows = append(rows, types.SummaryRow{
			Definition: def,
			Before:     beforeAvg,
			After:      afterAvg,
			BeforeText: display.For(def, beforeAvg),
			AfterText:  display.For(def, afterAvg),
			Delta:      aggregate.Compute(beforeAvg, afterAvg, def.HigherIsBetter()),
		})
	}

	return rows
}

// PerRunScores returns the performance score of each report that has one, in input order.
func PerRunScores(reports []*types.Report) []float64 {
	return extract.PerRunScores(reports, CategoryPerformance)
}

func buildDevice(device Device, before, after []*types.Report) *DeviceComparison {
	if len(before) == 0 && len(after) == 0 {
		return nil
	}

	return &DeviceComparison{
		Device:      device,
		Categories:  BuildRows(before, after, Categories()),
		Metrics:     BuildRows(before, after, Metrics()),
		Performance: summarizePerformance(before, after),
		BeforeRuns:  PerRunScores(before),
		AfterRuns:   PerRunScores(after),
		Mismatched:  mismatchedPaths(device, before, after),
	}
}

func mismatchedPaths(device Device, groups ...[]*types.Report) []string {
	var paths []string

	for _, reports := range groups {
		for _, report := range FormFactorMismatches(reports, device) {
			paths = append(paths, report.Path)
		}
	}

	return paths
}

func summarizePerformance(before, after []*types.Report) PerformanceSummary {
	beforeValues := extract.Values(before, CategoryPerformance, true)
	afterValues := extract.Values(after, CategoryPerformance, true)

	beforeAvg := aggregate.Average(beforeValues)
	afterAvg := aggregate.Average(afterValues)

	return PerformanceSummary{
		Before:       beforeAvg,
		After:        afterAvg,
		BeforeText:   display.Category(beforeAvg),
		AfterText:    display.Category(afterAvg),
		Delta:        aggregate.Compute(beforeAvg, afterAvg, true),
		BeforeSpread: aggregate.Spread(beforeValues),
		AfterSpread:  aggregate.Spread(afterValues),
	}
}
