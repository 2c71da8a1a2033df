package output_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farcloser/phare"
	"github.com/farcloser/phare/internal/output"
	"github.com/farcloser/phare/internal/types"
)

func ptr(v float64) *float64 {
	return &v
}

func TestComparisonToMap(t *testing.T) {
	t.Parallel()

	before := &types.Report{Name: "before.json", Categories: map[string]types.Category{"performance": {Score: ptr(0.8)}}}
	after := &types.Report{Name: "after.json", Categories: map[string]types.Category{"performance": {Score: ptr(0.95)}}}

	meta := output.ComparisonToMap(phare.BuildComparison([]*types.Report{before}, []*types.Report{after}, nil, nil))

	assert.NotContains(t, meta, "mobile")
	require.Contains(t, meta, "desktop")

	desktop, ok := meta["desktop"].(map[string]any)
	require.True(t, ok)

	perf, ok := desktop["performance"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "+15.00", perf["delta_text"])
	assert.Equal(t, "good", perf["delta_class"])
	assert.Nil(t, perf["before_spread"])

	categories, ok := desktop["categories"].([]any)
	require.True(t, ok)
	require.Len(t, categories, 3)

	accessibility, ok := categories[1].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "accessibility", accessibility["key"])
	assert.Nil(t, accessibility["before"], "missing values are plain nil")
	assert.Equal(t, "neutral", accessibility["delta_class"])

	// The canonical map must serialize.
	encoded, err := json.Marshal(meta)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"before":null`)
	assert.Contains(t, string(encoded), `"before_desktop":1`)
}

func TestReportToMap(t *testing.T) {
	t.Parallel()

	report := &types.Report{
		Name:       "run.json",
		FormFactor: "desktop",
		Audits:     map[string]types.Audit{"speed-index": {NumericValue: ptr(1234)}},
	}

	meta := output.ReportToMap(report)

	audits, ok := meta["audits"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 1234.0, audits["speed-index"], 1e-9)
	assert.Nil(t, audits["interactive"])
	assert.Len(t, audits, len(phare.Metrics()))
	assert.Equal(t, "desktop", meta["form_factor"])
}
