package extract_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farcloser/phare/internal/extract"
	"github.com/farcloser/phare/internal/types"
)

func ptr(v float64) *float64 {
	return &v
}

func withScore(name string, score *float64) *types.Report {
	return &types.Report{
		Name:       name,
		Categories: map[string]types.Category{"performance": {Score: score}},
	}
}

func TestValueCategory(t *testing.T) {
	t.Parallel()

	report := &types.Report{
		Categories: map[string]types.Category{
			"performance":   {Score: ptr(0.8)},
			"accessibility": {Score: nil},
			"seo":           {Score: ptr(math.NaN())},
		},
	}

	got := extract.Value(report, "performance", true)
	require.NotNil(t, got)
	assert.InDelta(t, 80, *got, 1e-9)

	assert.Nil(t, extract.Value(report, "accessibility", true), "absent score")
	assert.Nil(t, extract.Value(report, "seo", true), "non finite score")
	assert.Nil(t, extract.Value(report, "best-practices", true), "absent category")
	assert.Nil(t, extract.Value(report, "performance", false), "categories are not audits")
}

func TestValueAudit(t *testing.T) {
	t.Parallel()

	report := &types.Report{
		Audits: map[string]types.Audit{
			"first-contentful-paint":  {NumericValue: ptr(1234.5)},
			"cumulative-layout-shift": {NumericValue: ptr(0.02)},
			"interactive":             {NumericValue: ptr(math.Inf(1))},
			"speed-index":             {},
		},
	}

	got := extract.Value(report, "first-contentful-paint", false)
	require.NotNil(t, got)
	assert.InDelta(t, 1234.5, *got, 1e-9)

	got = extract.Value(report, "cumulative-layout-shift", false)
	require.NotNil(t, got)
	assert.InDelta(t, 0.02, *got, 1e-12, "audits are not scaled")

	assert.Nil(t, extract.Value(report, "interactive", false))
	assert.Nil(t, extract.Value(report, "speed-index", false))
	assert.Nil(t, extract.Value(report, "total-blocking-time", false))
}

func TestValueEmptyReport(t *testing.T) {
	t.Parallel()

	assert.Nil(t, extract.Value(nil, "performance", true))
	assert.Nil(t, extract.Value(&types.Report{}, "performance", true))
	assert.Nil(t, extract.Value(&types.Report{}, "interactive", false))
}

func TestValuesKeepsMissing(t *testing.T) {
	t.Parallel()

	values := extract.Values([]*types.Report{withScore("a", ptr(0.5)), withScore("b", nil)}, "performance", true)
	require.Len(t, values, 2)
	assert.NotNil(t, values[0])
	assert.Nil(t, values[1])
}

func TestPerRunScores(t *testing.T) {
	t.Parallel()

	reports := []*types.Report{
		withScore("run-1", ptr(0.8)),
		withScore("run-2", nil),
		{Name: "run-3"},
		withScore("run-4", ptr(0.123456)),
	}

	assert.Equal(t, []float64{80, 12.35}, extract.PerRunScores(reports, "performance"))
}

func TestPerRunScoresEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, extract.PerRunScores(nil, "performance"))
}
