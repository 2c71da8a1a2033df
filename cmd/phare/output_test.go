package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farcloser/phare"
	"github.com/farcloser/phare/internal/types"
)

func ptr(v float64) *float64 {
	return &v
}

func TestBuildFriendlyDevice(t *testing.T) {
	t.Parallel()

	before := []*types.Report{
		{Name: "run-1.json", Categories: map[string]types.Category{"performance": {Score: ptr(0.6)}}},
		{Name: "run-2.json", Categories: map[string]types.Category{"performance": {Score: ptr(0.8)}}},
	}
	after := []*types.Report{
		{Name: "run-1.json", Categories: map[string]types.Category{"performance": {Score: ptr(0.5)}}},
	}

	meta := buildFriendlyDevice(phare.BuildComparison(before, after, nil, nil).Desktop, 10)

	assert.Equal(t, "performance 70.0 -> 50.0 (-20.00, bad)", meta["summary"])
	assert.Equal(t, "before ±14.1, after ±N/A", meta["spread"])

	categories, ok := meta["categories"].([]any)
	require.True(t, ok)
	assert.Equal(t, "!! Performance: 70.0 -> 50.0 (-20.00, bad)", categories[0])
	assert.Equal(t, "   Accessibility: N/A -> N/A (N/A, neutral)", categories[1])

	runs, ok := meta["runs"].([]any)
	require.True(t, ok)
	assert.Len(t, runs, 2)
}

func TestBuildFriendlyReport(t *testing.T) {
	t.Parallel()

	meta := buildFriendlyReport(&types.Report{
		Name:       "run.json",
		FinalURL:   "https://example.com/",
		Categories: map[string]types.Category{"performance": {Score: ptr(0.42)}},
		Audits:     map[string]types.Audit{"interactive": {NumericValue: ptr(3456)}},
	})

	values, ok := meta["values"].([]any)
	require.True(t, ok)
	assert.Contains(t, values, "Performance: 42.0")
	assert.Contains(t, values, "Time to Interactive: 3.46s")
	assert.Contains(t, values, "Speed Index: N/A")

	props, ok := meta["properties"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://example.com/", props["url"])
	assert.NotContains(t, props, "form_factor")
}
